package models

import "time"

// Base is the base model for all entities.
// IDs are auto-increment integers; the descending id is the default sort
// order for archive listings. CreatedAt is set once at insert time.
type Base struct {
	ID        uint      `json:"id"         gorm:"primaryKey;autoIncrement"`
	CreatedAt time.Time `json:"created_at"`
}
