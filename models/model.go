package models

import "time"

// Model is the base for every persisted entity. IDs are integers assigned
// by the store.
type Model struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
