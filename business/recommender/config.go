package recommender

const (
	defaultNegativeSamplesRatio = 2
	defaultMinInventorySize     = 2
	defaultMinProbability       = 0.5
	defaultMaxPerCategory       = 2
	defaultTopN                 = 6
	defaultRandomSeed           = 42
)

type Config struct {
	// NegativeSamplesRatio: negatives drawn per owned perfume.
	NegativeSamplesRatio int

	// MinInventorySize: smallest inventory a model may be trained from.
	MinInventorySize int

	// MinProbability: hard cutoff; candidates scoring below it are dropped,
	// not down-weighted.
	MinProbability float64

	// MaxPerCategory: diversity cap per primary accord in the final list.
	MaxPerCategory int

	// TopN: maximum number of recommendations returned.
	TopN int

	// RandomSeed makes negative sampling reproducible for a fixed
	// (inventory, catalog) pair.
	RandomSeed int64
}

func DefaultConfig() Config {
	return Config{
		NegativeSamplesRatio: defaultNegativeSamplesRatio,
		MinInventorySize:     defaultMinInventorySize,
		MinProbability:       defaultMinProbability,
		MaxPerCategory:       defaultMaxPerCategory,
		TopN:                 defaultTopN,
		RandomSeed:           defaultRandomSeed,
	}
}

// normalized fills zero values with defaults so a partially populated Config
// from the caller still behaves sanely.
func (c Config) normalized() Config {
	if c.NegativeSamplesRatio <= 0 {
		c.NegativeSamplesRatio = defaultNegativeSamplesRatio
	}
	if c.MinInventorySize <= 0 {
		c.MinInventorySize = defaultMinInventorySize
	}
	if c.MinProbability <= 0 {
		c.MinProbability = defaultMinProbability
	}
	if c.MaxPerCategory <= 0 {
		c.MaxPerCategory = defaultMaxPerCategory
	}
	if c.TopN <= 0 {
		c.TopN = defaultTopN
	}
	if c.RandomSeed == 0 {
		c.RandomSeed = defaultRandomSeed
	}
	return c
}
