package activity

import (
	"context"
	"testing"

	"scentify/domain"
)

type fakeInteractionRepo struct {
	saved     []domain.Interaction
	lastLimit int
}

func (f *fakeInteractionRepo) Save(ctx context.Context, interaction domain.Interaction) error {
	f.saved = append(f.saved, interaction)
	return nil
}

func (f *fakeInteractionRepo) FindByUser(ctx context.Context, userID uint, limit int) ([]domain.Interaction, error) {
	f.lastLimit = limit
	return f.saved, nil
}

func TestRecordValidEvent(t *testing.T) {
	repo := &fakeInteractionRepo{}
	svc := NewService(repo)

	err := svc.Record(context.Background(), domain.Interaction{
		UserID:    1,
		PerfumeID: 2,
		EventType: domain.InteractionClick,
	})
	if err != nil {
		t.Fatalf("Record: %v", err)
	}
	if len(repo.saved) != 1 {
		t.Errorf("saved %d interactions, want 1", len(repo.saved))
	}
}

func TestRecordRejectsUnknownEventType(t *testing.T) {
	repo := &fakeInteractionRepo{}
	svc := NewService(repo)

	err := svc.Record(context.Background(), domain.Interaction{
		UserID:    1,
		PerfumeID: 2,
		EventType: "sniffed",
	})
	if err == nil {
		t.Error("unknown event type accepted")
	}
	if len(repo.saved) != 0 {
		t.Error("invalid interaction reached the repository")
	}
}

func TestHistoryDefaultLimit(t *testing.T) {
	repo := &fakeInteractionRepo{}
	svc := NewService(repo)

	if _, err := svc.History(context.Background(), 1, 0); err != nil {
		t.Fatalf("History: %v", err)
	}
	if repo.lastLimit != 50 {
		t.Errorf("limit = %d, want default 50", repo.lastLimit)
	}
}
