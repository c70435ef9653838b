package recommender

import (
	"strings"

	"scentify/domain"
)

// featureDim is the fixed width of every encoded perfume:
// 30 accord indicators, 4 seasonality scores, 2 occasion scores,
// longevity, sillage, gender. The order below is load-bearing: persisted
// models are only valid against vectors built in this exact layout.
const featureDim = 39

type featureVector [featureDim]float64

// accordVocabulary is the fixed accord tag set. Indicator positions in the
// feature vector follow this order.
var accordVocabulary = [...]string{
	"floral", "fresh", "woody", "citrus", "oriental", "spicy",
	"sweet", "gourmand", "fruity", "aromatic", "green", "aquatic",
	"leather", "powdery", "herbal", "amber", "musk", "vanilla",
	"rose", "jasmine", "lavender", "bergamot", "sandalwood", "patchouli",
	"oud", "vetiver", "tobacco", "animalic", "earthy", "smoky",
}

var longevityScores = map[string]float64{
	"very weak":    0.1,
	"weak":         0.3,
	"moderate":     0.5,
	"long lasting": 0.7,
	"eternal":      0.9,
}

var sillageScores = map[string]float64{
	"intimate": 0.2,
	"moderate": 0.5,
	"strong":   0.7,
	"enormous": 0.9,
}

var genderScores = map[string]float64{
	"male":   0.0,
	"unisex": 0.5,
	"female": 1.0,
}

// ordinalDefault is used for longevity, sillage and gender when the catalog
// record carries an unknown or empty value.
const ordinalDefault = 0.5

// encodeFeatures maps a perfume record into its fixed-length vector. Missing
// or malformed fields fall back to documented defaults; this never fails.
func encodeFeatures(p domain.Perfume) featureVector {
	var x featureVector

	accords := make(map[string]struct{}, len(p.Accords))
	for _, a := range p.Accords {
		accords[strings.ToLower(strings.TrimSpace(a))] = struct{}{}
	}

	for i, accord := range accordVocabulary {
		if _, ok := accords[accord]; ok {
			x[i] = 1.0
		}
	}

	// seasonality (missing keys stay 0)
	x[30] = scoreFromMap(p.Seasonality, "winter")
	x[31] = scoreFromMap(p.Seasonality, "fall")
	x[32] = scoreFromMap(p.Seasonality, "spring")
	x[33] = scoreFromMap(p.Seasonality, "summer")

	// occasion
	x[34] = scoreFromMap(p.Occasion, "day")
	x[35] = scoreFromMap(p.Occasion, "night")

	x[36] = ordinalScore(longevityScores, p.Longevity)
	x[37] = ordinalScore(sillageScores, p.Sillage)
	x[38] = ordinalScore(genderScores, p.Gender)

	return x
}

// scoreFromMap reads a normalized [0,1] score out of a JSON map column.
// Anything absent or non-numeric counts as 0; out-of-range values are clamped.
func scoreFromMap(m map[string]interface{}, key string) float64 {
	if m == nil {
		return 0
	}

	v, ok := m[key]
	if !ok {
		return 0
	}

	var f float64
	switch n := v.(type) {
	case float64:
		f = n
	case int:
		f = float64(n)
	default:
		return 0
	}

	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}

func ordinalScore(scale map[string]float64, value string) float64 {
	if s, ok := scale[strings.ToLower(strings.TrimSpace(value))]; ok {
		return s
	}
	return ordinalDefault
}

// primaryAccord is the default category function for the diversity filter:
// the record's first known vocabulary accord, or its first accord at all,
// or "unclassified" when it has none.
func primaryAccord(p domain.Perfume) string {
	for _, a := range p.Accords {
		tag := strings.ToLower(strings.TrimSpace(a))
		for _, known := range accordVocabulary {
			if tag == known {
				return tag
			}
		}
	}

	if len(p.Accords) > 0 {
		return strings.ToLower(strings.TrimSpace(p.Accords[0]))
	}

	return "unclassified"
}
