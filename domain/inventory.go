package domain

import (
	"time"
)

// CREATE TABLE public.inventory_items (
//     id          BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
//     user_id     BIGINT NOT NULL,
//     perfume_id  BIGINT NOT NULL,
//     created_at  TIMESTAMPTZ DEFAULT NOW(),
//     UNIQUE (user_id, perfume_id)
// );

type InventoryItem struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    uint      `gorm:"column:user_id;not null;uniqueIndex:idx_inventory_user_perfume" json:"user_id"`
	PerfumeID uint64    `gorm:"column:perfume_id;not null;uniqueIndex:idx_inventory_user_perfume" json:"perfume_id"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (InventoryItem) TableName() string {
	return "inventory_items"
}
