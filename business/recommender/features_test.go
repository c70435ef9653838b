package recommender

import (
	"testing"

	"scentify/domain"

	"gorm.io/datatypes"
)

func TestEncodeFeaturesKnownFields(t *testing.T) {
	p := domain.Perfume{
		ID:      1,
		Accords: datatypes.JSONSlice[string]{"Floral", "woody"},
		Seasonality: datatypes.JSONMap{
			"winter": 0.8,
			"summer": 0.2,
		},
		Occasion: datatypes.JSONMap{
			"day": 0.6,
		},
		Longevity: "long lasting",
		Sillage:   "strong",
		Gender:    "female",
	}

	x := encodeFeatures(p)

	if x[0] != 1.0 {
		t.Errorf("floral indicator = %v, want 1", x[0])
	}
	if x[2] != 1.0 {
		t.Errorf("woody indicator = %v, want 1", x[2])
	}
	if x[1] != 0.0 {
		t.Errorf("fresh indicator = %v, want 0", x[1])
	}
	if x[30] != 0.8 {
		t.Errorf("winter = %v, want 0.8", x[30])
	}
	if x[33] != 0.2 {
		t.Errorf("summer = %v, want 0.2", x[33])
	}
	if x[34] != 0.6 {
		t.Errorf("day = %v, want 0.6", x[34])
	}
	if x[35] != 0.0 {
		t.Errorf("night = %v, want 0", x[35])
	}
	if x[36] != 0.7 {
		t.Errorf("longevity = %v, want 0.7", x[36])
	}
	if x[37] != 0.7 {
		t.Errorf("sillage = %v, want 0.7", x[37])
	}
	if x[38] != 1.0 {
		t.Errorf("gender = %v, want 1", x[38])
	}

	for i, v := range x {
		if v < 0 || v > 1 {
			t.Errorf("dimension %d = %v, outside [0,1]", i, v)
		}
	}
}

func TestEncodeFeaturesDefaults(t *testing.T) {
	x := encodeFeatures(domain.Perfume{ID: 2})

	for i := 0; i < 36; i++ {
		if x[i] != 0 {
			t.Errorf("dimension %d = %v, want 0 for empty record", i, x[i])
		}
	}
	for _, i := range []int{36, 37, 38} {
		if x[i] != ordinalDefault {
			t.Errorf("dimension %d = %v, want default %v", i, x[i], ordinalDefault)
		}
	}
}

func TestEncodeFeaturesUnknownOrdinals(t *testing.T) {
	p := domain.Perfume{
		Longevity: "forever",
		Sillage:   "nuclear",
		Gender:    "robot",
	}
	x := encodeFeatures(p)

	for _, i := range []int{36, 37, 38} {
		if x[i] != ordinalDefault {
			t.Errorf("dimension %d = %v, want default for unknown value", i, x[i])
		}
	}
}

func TestScoreFromMapClamping(t *testing.T) {
	m := datatypes.JSONMap{
		"over":    3.0,
		"under":   -1.0,
		"weird":   "high",
		"integer": 1,
	}

	if got := scoreFromMap(m, "over"); got != 1 {
		t.Errorf("over = %v, want clamped 1", got)
	}
	if got := scoreFromMap(m, "under"); got != 0 {
		t.Errorf("under = %v, want clamped 0", got)
	}
	if got := scoreFromMap(m, "weird"); got != 0 {
		t.Errorf("weird = %v, want 0 for non-numeric", got)
	}
	if got := scoreFromMap(m, "integer"); got != 1 {
		t.Errorf("integer = %v, want 1", got)
	}
	if got := scoreFromMap(m, "missing"); got != 0 {
		t.Errorf("missing = %v, want 0", got)
	}
	if got := scoreFromMap(nil, "any"); got != 0 {
		t.Errorf("nil map = %v, want 0", got)
	}
}

func TestPrimaryAccord(t *testing.T) {
	cases := []struct {
		name    string
		accords []string
		want    string
	}{
		{"known vocabulary first", []string{"floral", "woody"}, "floral"},
		{"skips unknown for known", []string{"mystery", "woody"}, "woody"},
		{"unknown only", []string{"mystery"}, "mystery"},
		{"empty", nil, "unclassified"},
	}

	for _, tc := range cases {
		p := domain.Perfume{Accords: datatypes.JSONSlice[string](tc.accords)}
		if got := primaryAccord(p); got != tc.want {
			t.Errorf("%s: primaryAccord = %q, want %q", tc.name, got, tc.want)
		}
	}
}
