package recommender

import "math"

func dot(a, b featureVector) float64 {
	sum := 0.0
	for i := range featureDim {
		sum += a[i] * b[i]
	}
	return sum
}

func sigmoid(z float64) float64 {
	// clamp to keep exp well-behaved for extreme margins
	if z > 35 {
		return 1
	}
	if z < -35 {
		return 0
	}
	return 1.0 / (1.0 + math.Exp(-z))
}

// Scaler standardizes each dimension to zero mean / unit variance, fitted on
// the training vectors.
type Scaler struct {
	Mean featureVector `json:"mean"`
	Std  featureVector `json:"std"`
}

const minStd = 1e-12

func fitScaler(samples []Sample) Scaler {
	var sc Scaler
	n := float64(len(samples))
	if n == 0 {
		for i := range featureDim {
			sc.Std[i] = 1
		}
		return sc
	}

	for _, s := range samples {
		for i := range featureDim {
			sc.Mean[i] += s.X[i]
		}
	}
	for i := range featureDim {
		sc.Mean[i] /= n
	}

	for _, s := range samples {
		for i := range featureDim {
			d := s.X[i] - sc.Mean[i]
			sc.Std[i] += d * d
		}
	}
	for i := range featureDim {
		sc.Std[i] = math.Sqrt(sc.Std[i] / n)
		// constant dimensions scale to 0 instead of exploding
		if sc.Std[i] < minStd {
			sc.Std[i] = 1
		}
	}

	return sc
}

func (sc Scaler) transform(x featureVector) featureVector {
	var out featureVector
	for i := range featureDim {
		out[i] = (x[i] - sc.Mean[i]) / sc.Std[i]
	}
	return out
}
