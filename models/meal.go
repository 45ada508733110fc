package models

import (
	"gorm.io/gorm"
)

// Meal is one logged food entry. Macros are a snapshot taken at log time
// (already scaled to the chosen serving and quantity); entries are never
// edited afterwards, only deleted.
//
// DateKey is the device-local calendar day (YYYY-MM-DD) the client stamped
// when logging. The server never re-derives it from timestamps, so meals
// stay attributed to the day the user saw.
type Meal struct {
	gorm.Model
	UserID uint `gorm:"index;not null" json:"user_id"`

	Name         string  `gorm:"not null" json:"name"`
	DateKey      string  `gorm:"size:10;index;not null" json:"date_key"`
	TimeLabel    string  `gorm:"size:16" json:"time_label"`
	ServingLabel string  `json:"serving_label"`
	ServingGrams float64 `json:"serving_grams"`

	Calories int     `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`

	DataConfidence string `gorm:"size:8" json:"data_confidence"`           // "exact" | "proxy" | "none"
	ScanConfidence string `gorm:"size:8" json:"scan_confidence,omitempty"` // "high" | "medium" | "low", scanned entries only
	Source         string `gorm:"size:16" json:"source,omitempty"`         // "wafct" | "local" | "scan"
}
