package recommender

import "errors"

var (
	// ErrInsufficientData: the inventory is below the minimum size or there
	// are no non-owned candidates left. Callers should prompt the user, not
	// attempt scoring.
	ErrInsufficientData = errors.New("not enough data to train a model")

	// ErrDegenerateTrainingSet: all training labels ended up in one class.
	// No model is persisted in that case.
	ErrDegenerateTrainingSet = errors.New("training set contains a single class")

	// ErrModelLoad: a persisted snapshot is unreadable or incompatible with
	// the current feature layout. Recovered locally by retraining.
	ErrModelLoad = errors.New("failed to load persisted model")
)
