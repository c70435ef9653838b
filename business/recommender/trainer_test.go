package recommender

import (
	"errors"
	"testing"
)

// separableSamples builds a trivially separable set: positives light up the
// floral indicator, negatives the leather indicator.
func separableSamples() []Sample {
	var positive, negative featureVector
	positive[0] = 1  // floral
	negative[12] = 1 // leather

	samples := make([]Sample, 0, 8)
	for i := 0; i < 4; i++ {
		samples = append(samples, Sample{X: positive, Label: 1})
		samples = append(samples, Sample{X: negative, Label: 0})
	}
	return samples
}

func TestTrainDegenerateSets(t *testing.T) {
	var x featureVector

	allPositive := []Sample{{X: x, Label: 1}, {X: x, Label: 1}}
	if _, err := train(allPositive, 0); !errors.Is(err, ErrDegenerateTrainingSet) {
		t.Errorf("all-positive err = %v, want ErrDegenerateTrainingSet", err)
	}

	allNegative := []Sample{{X: x, Label: 0}, {X: x, Label: 0}}
	if _, err := train(allNegative, 0); !errors.Is(err, ErrDegenerateTrainingSet) {
		t.Errorf("all-negative err = %v, want ErrDegenerateTrainingSet", err)
	}
}

func TestTrainSeparable(t *testing.T) {
	tm, err := train(separableSamples(), 7)
	if err != nil {
		t.Fatalf("train: %v", err)
	}
	if tm.InventoryHash != 7 {
		t.Errorf("InventoryHash = %d, want 7", tm.InventoryHash)
	}

	var positive, negative featureVector
	positive[0] = 1
	negative[12] = 1

	pPos := tm.predict(positive)
	pNeg := tm.predict(negative)

	if pPos <= pNeg {
		t.Errorf("positive-like scored %v, negative-like %v; want positive higher", pPos, pNeg)
	}
	if pPos <= 0.5 {
		t.Errorf("positive-like probability = %v, want > 0.5", pPos)
	}
	if pNeg >= 0.5 {
		t.Errorf("negative-like probability = %v, want < 0.5", pNeg)
	}
}

func TestPredictInUnitInterval(t *testing.T) {
	tm, err := train(separableSamples(), 0)
	if err != nil {
		t.Fatalf("train: %v", err)
	}

	var extreme featureVector
	for i := range extreme {
		extreme[i] = 1
	}

	for _, x := range []featureVector{{}, extreme} {
		p := tm.predict(x)
		if p < 0 || p > 1 {
			t.Errorf("predict = %v, outside [0,1]", p)
		}
	}
}

func TestTrainDeterministic(t *testing.T) {
	a, err := train(separableSamples(), 0)
	if err != nil {
		t.Fatalf("train: %v", err)
	}
	b, err := train(separableSamples(), 0)
	if err != nil {
		t.Fatalf("train: %v", err)
	}

	if a.Model != b.Model {
		t.Error("two runs over identical samples produced different weights")
	}
	if a.Scaler != b.Scaler {
		t.Error("two runs over identical samples produced different scalers")
	}
}
