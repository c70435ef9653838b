package recommender

import (
	"context"
	"testing"

	"scentify/domain"

	"gorm.io/datatypes"
)

type fakeCatalogRepo struct {
	perfumes []domain.Perfume
}

func (f *fakeCatalogRepo) FindAll(ctx context.Context) ([]domain.Perfume, error) {
	return f.perfumes, nil
}

type fakeInventoryRepo struct {
	owned []domain.Perfume
}

func (f *fakeInventoryRepo) FindPerfumesByUser(ctx context.Context, userID uint) ([]domain.Perfume, error) {
	return f.owned, nil
}

type memStore struct {
	snaps map[uint]*Snapshot
	saves int
}

func newMemStore() *memStore {
	return &memStore{snaps: make(map[uint]*Snapshot)}
}

func (m *memStore) Load(ctx context.Context, userID uint) (*Snapshot, error) {
	return m.snaps[userID], nil
}

func (m *memStore) Save(ctx context.Context, userID uint, snap *Snapshot) error {
	m.snaps[userID] = snap
	m.saves++
	return nil
}

func scenarioPerfume(id uint64, gender string, accords ...string) domain.Perfume {
	return domain.Perfume{
		ID:      id,
		Brand:   "House",
		Name:    "No. " + string(rune('A'+id)),
		Accords: datatypes.JSONSlice[string](accords),
		Gender:  gender,
	}
}

// scenarioFixture: a small floral/woody-leaning collection against a catalog
// that mixes close matches and clear misses.
func scenarioFixture() (owned, catalog []domain.Perfume) {
	owned = []domain.Perfume{
		scenarioPerfume(1, "female", "floral", "sweet"),
		scenarioPerfume(2, "unisex", "woody", "earthy"),
		scenarioPerfume(3, "female", "floral", "fresh"),
	}

	candidates := []domain.Perfume{
		scenarioPerfume(10, "female", "floral", "rose"),
		scenarioPerfume(11, "female", "floral", "jasmine"),
		scenarioPerfume(12, "female", "floral", "powdery"),
		scenarioPerfume(13, "unisex", "woody", "sandalwood"),
		scenarioPerfume(14, "unisex", "woody", "vetiver"),
		scenarioPerfume(15, "female", "fresh", "citrus"),
		scenarioPerfume(16, "male", "leather", "tobacco"),
		scenarioPerfume(17, "male", "leather", "animalic"),
		scenarioPerfume(18, "male", "smoky", "oud"),
		scenarioPerfume(19, "unisex", "gourmand", "vanilla"),
	}

	catalog = append(append([]domain.Perfume{}, owned...), candidates...)
	return owned, catalog
}

func newTestService(owned, catalog []domain.Perfume, store ModelStore) *Service {
	return NewService(
		&fakeCatalogRepo{perfumes: catalog},
		&fakeInventoryRepo{owned: owned},
		store,
		DefaultConfig(),
	)
}

func TestRecommendEndToEnd(t *testing.T) {
	owned, catalog := scenarioFixture()
	svc := newTestService(owned, catalog, newMemStore())

	recs, err := svc.Recommend(context.Background(), 1)
	if err != nil {
		t.Fatalf("Recommend: %v", err)
	}

	cfg := DefaultConfig()
	if len(recs) > cfg.TopN {
		t.Errorf("got %d recommendations, cap is %d", len(recs), cfg.TopN)
	}

	ownedIDs := map[uint64]struct{}{1: {}, 2: {}, 3: {}}
	byID := make(map[uint64]domain.Perfume)
	for _, p := range catalog {
		byID[p.ID] = p
	}

	categoryCounts := make(map[string]int)
	for i, r := range recs {
		if _, isOwned := ownedIDs[r.PerfumeID]; isOwned {
			t.Errorf("owned perfume %d recommended", r.PerfumeID)
		}
		if r.Probability < cfg.MinProbability {
			t.Errorf("perfume %d at %v, below cutoff %v", r.PerfumeID, r.Probability, cfg.MinProbability)
		}
		if r.Confidence == "" || r.Reasoning == "" {
			t.Errorf("perfume %d missing confidence or reasoning", r.PerfumeID)
		}
		if i > 0 && recs[i].Probability > recs[i-1].Probability {
			t.Errorf("recommendations out of order at index %d", i)
		}
		categoryCounts[primaryAccord(byID[r.PerfumeID])]++
	}

	for category, count := range categoryCounts {
		if count > cfg.MaxPerCategory {
			t.Errorf("category %s appears %d times, cap is %d", category, count, cfg.MaxPerCategory)
		}
	}
}

func TestRecommendDeterministic(t *testing.T) {
	owned, catalog := scenarioFixture()

	first, err := newTestService(owned, catalog, newMemStore()).Recommend(context.Background(), 1)
	if err != nil {
		t.Fatalf("Recommend: %v", err)
	}
	second, err := newTestService(owned, catalog, newMemStore()).Recommend(context.Background(), 1)
	if err != nil {
		t.Fatalf("Recommend: %v", err)
	}

	if len(first) != len(second) {
		t.Fatalf("runs returned %d vs %d recommendations", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("index %d differs across identical runs: %+v vs %+v", i, first[i], second[i])
		}
	}
}

func TestRecommendInsufficientInventory(t *testing.T) {
	_, catalog := scenarioFixture()

	for _, size := range []int{0, 1} {
		svc := newTestService(catalog[:size], catalog, newMemStore())
		_, err := svc.Recommend(context.Background(), 1)
		if !IsInsufficientData(err) {
			t.Errorf("inventory size %d: err = %v, want insufficient-data", size, err)
		}
	}
}

func TestRecommendReusesPersistedModel(t *testing.T) {
	owned, catalog := scenarioFixture()
	store := newMemStore()
	svc := newTestService(owned, catalog, store)

	if _, err := svc.Recommend(context.Background(), 1); err != nil {
		t.Fatalf("first Recommend: %v", err)
	}
	if store.saves != 1 {
		t.Fatalf("saves = %d after first call, want 1", store.saves)
	}

	if _, err := svc.Recommend(context.Background(), 1); err != nil {
		t.Fatalf("second Recommend: %v", err)
	}
	if store.saves != 1 {
		t.Errorf("saves = %d after unchanged inventory, want reuse (still 1)", store.saves)
	}
}

func TestRecommendRetrainsOnInventoryChange(t *testing.T) {
	owned, catalog := scenarioFixture()
	store := newMemStore()
	invRepo := &fakeInventoryRepo{owned: owned}
	svc := NewService(&fakeCatalogRepo{perfumes: catalog}, invRepo, store, DefaultConfig())

	if _, err := svc.Recommend(context.Background(), 1); err != nil {
		t.Fatalf("first Recommend: %v", err)
	}

	// growing the inventory changes its identity, so the snapshot is stale
	invRepo.owned = append(invRepo.owned, catalog[5])
	if _, err := svc.Recommend(context.Background(), 1); err != nil {
		t.Fatalf("second Recommend: %v", err)
	}

	if store.saves != 2 {
		t.Errorf("saves = %d, want retrain after inventory change", store.saves)
	}
}

func TestStaleSnapshotRejected(t *testing.T) {
	owned, _ := scenarioFixture()
	hash := inventoryHash(owned)

	if reusable(nil, hash) {
		t.Error("nil snapshot reported reusable")
	}

	snap := &Snapshot{Version: snapshotVersion, FeatureDim: featureDim, InventoryHash: hash}
	if !reusable(snap, hash) {
		t.Error("matching snapshot reported stale")
	}

	wrongDim := &Snapshot{Version: snapshotVersion, FeatureDim: featureDim - 1, InventoryHash: hash}
	if reusable(wrongDim, hash) {
		t.Error("snapshot with wrong feature dim reported reusable")
	}

	wrongVersion := &Snapshot{Version: snapshotVersion + 1, FeatureDim: featureDim, InventoryHash: hash}
	if reusable(wrongVersion, hash) {
		t.Error("snapshot with wrong version reported reusable")
	}

	wrongHash := &Snapshot{Version: snapshotVersion, FeatureDim: featureDim, InventoryHash: hash + 1}
	if reusable(wrongHash, hash) {
		t.Error("snapshot with wrong inventory hash reported reusable")
	}
}

func TestInventoryHashOrderIndependent(t *testing.T) {
	a := []domain.Perfume{{ID: 1}, {ID: 2}, {ID: 3}}
	b := []domain.Perfume{{ID: 3}, {ID: 1}, {ID: 2}}

	if inventoryHash(a) != inventoryHash(b) {
		t.Error("hash depends on inventory order")
	}
	if inventoryHash(a) == inventoryHash(a[:2]) {
		t.Error("different inventories hash equal")
	}
}

func TestInsights(t *testing.T) {
	owned, catalog := scenarioFixture()
	svc := newTestService(owned, catalog, newMemStore())

	insights, err := svc.Insights(context.Background(), 1)
	if err != nil {
		t.Fatalf("Insights: %v", err)
	}

	if insights.InventorySize != 3 {
		t.Errorf("InventorySize = %d, want 3", insights.InventorySize)
	}
	if !insights.CanTrain {
		t.Error("CanTrain = false for 3-perfume inventory")
	}
	if len(insights.TopAccords) == 0 {
		t.Fatal("TopAccords empty")
	}
	if insights.TopAccords[0].Name != "floral" || insights.TopAccords[0].Count != 2 {
		t.Errorf("top accord = %+v, want floral x2", insights.TopAccords[0])
	}

	// two primary accords (floral, woody) over three perfumes
	want := 2.0 / 3.0
	if diff := insights.DiversityScore - want; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("DiversityScore = %v, want %v", insights.DiversityScore, want)
	}
}

func TestInsightsEmptyInventory(t *testing.T) {
	_, catalog := scenarioFixture()
	svc := newTestService(nil, catalog, newMemStore())

	insights, err := svc.Insights(context.Background(), 1)
	if err != nil {
		t.Fatalf("Insights: %v", err)
	}

	if insights.InventorySize != 0 || insights.CanTrain {
		t.Errorf("insights = %+v, want empty untrainable inventory", insights)
	}
	if insights.DiversityScore != 0 {
		t.Errorf("DiversityScore = %v, want 0 for empty inventory", insights.DiversityScore)
	}
}
