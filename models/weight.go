package models

import (
	"gorm.io/gorm"
)

// WeightSample keeps one weight reading per user per calendar day;
// logging twice on the same day overwrites the earlier value.
type WeightSample struct {
	gorm.Model
	UserID   uint    `gorm:"not null;uniqueIndex:idx_weight_user_day" json:"user_id"`
	DateKey  string  `gorm:"size:10;not null;uniqueIndex:idx_weight_user_day" json:"date_key"`
	WeightKg float64 `gorm:"not null" json:"weight_kg"`
}
