package inventory

import (
	"context"
	"errors"
	"testing"

	"scentify/domain"
)

type fakeInventoryRepo struct {
	items map[uint64]bool
}

func newFakeInventoryRepo(ids ...uint64) *fakeInventoryRepo {
	items := make(map[uint64]bool)
	for _, id := range ids {
		items[id] = true
	}
	return &fakeInventoryRepo{items: items}
}

func (f *fakeInventoryRepo) Add(ctx context.Context, item *domain.InventoryItem) error {
	f.items[item.PerfumeID] = true
	return nil
}

func (f *fakeInventoryRepo) Remove(ctx context.Context, userID uint, perfumeID uint64) error {
	delete(f.items, perfumeID)
	return nil
}

func (f *fakeInventoryRepo) Exists(ctx context.Context, userID uint, perfumeID uint64) (bool, error) {
	return f.items[perfumeID], nil
}

func (f *fakeInventoryRepo) FindPerfumesByUser(ctx context.Context, userID uint) ([]domain.Perfume, error) {
	out := make([]domain.Perfume, 0, len(f.items))
	for id := range f.items {
		out = append(out, domain.Perfume{ID: id})
	}
	return out, nil
}

type fakePerfumeLookup struct {
	known map[uint64]domain.Perfume
}

func (f *fakePerfumeLookup) FindByID(ctx context.Context, id uint64) (domain.Perfume, error) {
	if p, ok := f.known[id]; ok {
		return p, nil
	}
	return domain.Perfume{}, errors.New("perfume not found")
}

type recordingInteractionRepo struct {
	events []domain.Interaction
}

func (r *recordingInteractionRepo) Save(ctx context.Context, interaction domain.Interaction) error {
	r.events = append(r.events, interaction)
	return nil
}

func testService(ownedIDs ...uint64) (*Service, *fakeInventoryRepo, *recordingInteractionRepo) {
	invRepo := newFakeInventoryRepo(ownedIDs...)
	perfumes := &fakePerfumeLookup{known: map[uint64]domain.Perfume{
		1: {ID: 1, Brand: "House", Name: "Iris"},
		2: {ID: 2, Brand: "House", Name: "Oud"},
	}}
	interactions := &recordingInteractionRepo{}
	return NewService(invRepo, perfumes, interactions), invRepo, interactions
}

func TestAddPerfume(t *testing.T) {
	svc, invRepo, interactions := testService()

	got, err := svc.AddPerfume(context.Background(), 1, 1)
	if err != nil {
		t.Fatalf("AddPerfume: %v", err)
	}
	if got.Name != "Iris" {
		t.Errorf("returned perfume = %+v, want the resolved record", got)
	}
	if !invRepo.items[1] {
		t.Error("inventory item not written")
	}
	if len(interactions.events) != 1 || interactions.events[0].EventType != domain.InteractionAdd {
		t.Errorf("interactions = %+v, want one add event", interactions.events)
	}
}

func TestAddPerfumeDuplicate(t *testing.T) {
	svc, _, _ := testService(1)

	_, err := svc.AddPerfume(context.Background(), 1, 1)
	if !errors.Is(err, ErrAlreadyOwned) {
		t.Errorf("err = %v, want ErrAlreadyOwned", err)
	}
}

func TestAddPerfumeUnknown(t *testing.T) {
	svc, _, _ := testService()

	_, err := svc.AddPerfume(context.Background(), 1, 99)
	if err == nil {
		t.Error("adding an unknown perfume succeeded")
	}
}

func TestRemovePerfume(t *testing.T) {
	svc, invRepo, interactions := testService(2)

	if err := svc.RemovePerfume(context.Background(), 1, 2); err != nil {
		t.Fatalf("RemovePerfume: %v", err)
	}
	if invRepo.items[2] {
		t.Error("inventory item still present")
	}
	if len(interactions.events) != 1 || interactions.events[0].EventType != domain.InteractionRemove {
		t.Errorf("interactions = %+v, want one remove event", interactions.events)
	}
}

func TestRemovePerfumeNotOwned(t *testing.T) {
	svc, _, _ := testService()

	err := svc.RemovePerfume(context.Background(), 1, 2)
	if !errors.Is(err, ErrNotOwned) {
		t.Errorf("err = %v, want ErrNotOwned", err)
	}
}
