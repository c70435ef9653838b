package domain

import (
	"time"

	"gorm.io/datatypes"
)

// CREATE TABLE public.perfumes (
//     id              BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
//     external_id     TEXT UNIQUE,
//     brand           TEXT,
//     name            TEXT,
//     accords         JSONB,
//     seasonality     JSONB,
//     occasion        JSONB,
//     longevity       TEXT,
//     sillage         TEXT,
//     gender          TEXT,
//     image_url       TEXT,
//     created_at      TIMESTAMPTZ DEFAULT NOW()
// );

type Perfume struct {
	ID         uint64                      `gorm:"primaryKey;autoIncrement" json:"id"`
	ExternalID string                      `gorm:"column:external_id;uniqueIndex" json:"external_id"`
	Brand      string                      `gorm:"column:brand;type:text" json:"brand"`
	Name       string                      `gorm:"column:name;type:text" json:"name"`
	Accords    datatypes.JSONSlice[string] `gorm:"column:accords;type:jsonb" json:"accords"`

	// Seasonality keys: winter, fall, spring, summer. Occasion keys: day, night.
	// Values are already normalized to [0, 1]; missing keys are fine.
	Seasonality datatypes.JSONMap `gorm:"column:seasonality;type:jsonb" json:"seasonality"`
	Occasion    datatypes.JSONMap `gorm:"column:occasion;type:jsonb" json:"occasion"`

	Longevity string    `gorm:"column:longevity;type:text" json:"longevity"`
	Sillage   string    `gorm:"column:sillage;type:text" json:"sillage"`
	Gender    string    `gorm:"column:gender;type:text" json:"gender"`
	ImageURL  string    `gorm:"column:image_url;type:text" json:"image_url"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
}

func (Perfume) TableName() string {
	return "perfumes"
}
