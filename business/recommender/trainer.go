package recommender

import (
	"fmt"
	"math"
	"time"
)

// Training hyperparameters. Full-batch gradient descent on the logistic loss
// with a small L2 penalty; iteration count is bounded so training stays well
// under a second for inventory-sized data.
const (
	maxTrainIterations = 1000
	learningRate       = 0.1
	l2Penalty          = 0.001
	convergenceEps     = 1e-7
)

// LogisticModel is a probabilistic binary classifier over scaled feature
// vectors: P(owned-like) = sigmoid(w·x + b).
type LogisticModel struct {
	Weights featureVector `json:"weights"`
	Bias    float64       `json:"bias"`
}

// TrainedModel pairs the fitted classifier with the scaler it was fitted
// against and the inventory identity it belongs to.
type TrainedModel struct {
	Scaler        Scaler        `json:"scaler"`
	Model         LogisticModel `json:"model"`
	InventoryHash uint64        `json:"inventory_hash"`
	TrainedAt     time.Time     `json:"trained_at"`
}

// train fits scaler + classifier on the labeled samples. Deterministic for a
// fixed sample sequence: weights start at zero and the descent has no
// stochastic step.
func train(samples []Sample, inventoryHash uint64) (*TrainedModel, error) {
	positives, negatives := 0, 0
	for _, s := range samples {
		if s.Label > 0.5 {
			positives++
		} else {
			negatives++
		}
	}
	if positives == 0 || negatives == 0 {
		return nil, fmt.Errorf("%d positives, %d negatives: %w",
			positives, negatives, ErrDegenerateTrainingSet)
	}

	scaler := fitScaler(samples)

	scaled := make([]featureVector, len(samples))
	for i, s := range samples {
		scaled[i] = scaler.transform(s.X)
	}

	var model LogisticModel
	n := float64(len(samples))

	prevLoss := 0.0
	for iter := 0; iter < maxTrainIterations; iter++ {
		var gradW featureVector
		gradB := 0.0
		loss := 0.0

		for i, s := range samples {
			p := sigmoid(dot(model.Weights, scaled[i]) + model.Bias)
			err := p - s.Label

			for j := range featureDim {
				gradW[j] += err * scaled[i][j]
			}
			gradB += err

			// numerically safe cross-entropy term
			if s.Label > 0.5 {
				loss += -safeLog(p)
			} else {
				loss += -safeLog(1 - p)
			}
		}

		for j := range featureDim {
			gradW[j] = gradW[j]/n + l2Penalty*model.Weights[j]
			model.Weights[j] -= learningRate * gradW[j]
		}
		model.Bias -= learningRate * (gradB / n)

		loss /= n
		if iter > 0 && math.Abs(prevLoss-loss) < convergenceEps {
			break
		}
		prevLoss = loss
	}

	return &TrainedModel{
		Scaler:        scaler,
		Model:         model,
		InventoryHash: inventoryHash,
		TrainedAt:     time.Now(),
	}, nil
}

// predict returns the positive-class probability for a raw (unscaled) vector.
func (tm *TrainedModel) predict(x featureVector) float64 {
	scaled := tm.Scaler.transform(x)
	return sigmoid(dot(tm.Model.Weights, scaled) + tm.Model.Bias)
}

func safeLog(v float64) float64 {
	const floor = 1e-12
	if v < floor {
		v = floor
	}
	return math.Log(v)
}
