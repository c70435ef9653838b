package domain

import (
	"time"

	"gorm.io/datatypes"
)

// Interaction types mirror what the UI can report.
const (
	InteractionView     = "view"
	InteractionClick    = "click"
	InteractionFavorite = "favorite"
	InteractionAdd      = "add"
	InteractionRemove   = "remove"
)

type Interaction struct {
	ID        uint64            `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    uint              `gorm:"column:user_id;not null" json:"user_id"`
	PerfumeID uint64            `gorm:"column:perfume_id;not null" json:"perfume_id"`
	EventType string            `gorm:"column:event_type;not null" json:"event_type"`
	Context   datatypes.JSONMap `gorm:"column:context;type:jsonb" json:"context"`
	CreatedAt time.Time         `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Interaction) TableName() string {
	return "interactions"
}

// PerfumeRanking is a per-perfume click count used for popularity ordering.
type PerfumeRanking struct {
	PerfumeID uint64 `gorm:"column:perfume_id" json:"perfume_id"`
	Clicks    int64  `gorm:"column:clicks" json:"clicks"`
}
