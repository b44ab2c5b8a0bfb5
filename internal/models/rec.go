package models

import (
	"time"
)

// Rec is a submitted learning resource recommendation.
type Rec struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	UserID     uint      `gorm:"not null;index" json:"user_id"`
	User       User      `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	Title      string    `gorm:"not null" json:"title"`
	Author     string    `json:"author"`
	Type       string    `gorm:"size:32;not null;index" json:"type"`
	Link       string    `json:"link"`
	Summary    string    `gorm:"type:text" json:"summary"`
	Status     string    `json:"status"` // opaque, client supplied
	Reason     string    `gorm:"type:text" json:"reason"`
	SubmitTime time.Time `gorm:"autoCreateTime;index" json:"submit_time"`
}

// RecView is a rec joined with the name of its owner.
type RecView struct {
	Rec
	OwnerName string `json:"owner_name"`
}
