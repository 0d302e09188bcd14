package models

import "time"

// Design represents a reusable cake design customers can order from.
type Design struct {
	ID          uint      `gorm:"column:id;primaryKey;autoIncrement"`
	Name        string    `gorm:"column:name;not null"`
	Description *string   `gorm:"column:description"`
	BaseFlavor  string    `gorm:"column:base_flavor;not null"`
	Size        string    `gorm:"column:size;not null"`
	Category    *string   `gorm:"column:category"`
	ImageURL    *string   `gorm:"column:image_url"`
	Available   bool      `gorm:"column:available;not null;default:true"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time `gorm:"column:updated_at;autoUpdateTime"`
}
