package domain

// Recommendation is one entry of the recommender's output, ready for rendering.
type Recommendation struct {
	PerfumeID   uint64  `json:"perfume_id"`
	Brand       string  `json:"brand"`
	Name        string  `json:"name"`
	Probability float64 `json:"probability"`
	Confidence  string  `json:"confidence"`
	Reasoning   string  `json:"reasoning"`
}

type AccordCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// ModelInsights summarizes the user's collection and whether a model can be trained.
type ModelInsights struct {
	InventorySize  int           `json:"inventory_size"`
	CanTrain       bool          `json:"can_train"`
	TopAccords     []AccordCount `json:"top_accords"`
	DiversityScore float64       `json:"diversity_score"`
}
