package model

import "time"

// RequestLog is one audit entry per completed authenticated request.
// Entries are append-only: never updated, deleted only by cascade when the
// owning user is removed.
type RequestLog struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"not null;index"`
	Endpoint  string    `json:"endpoint" gorm:"size:255;not null"`
	CreatedAt time.Time `json:"created_at"`

	// Relations
	User User `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}
