package models

import (
	"time"
)

// Like and Dislike are append-only rows; totals are SUM(count) per rec.
// A user may hold several rows for the same rec.
type Like struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	User      User      `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	RecID     uint      `gorm:"not null;index" json:"rec_id"`
	Rec       Rec       `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	Count     int       `gorm:"not null;default:1" json:"count"`
	CreatedAt time.Time `json:"created_at"`
}

type Dislike struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	User      User      `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	RecID     uint      `gorm:"not null;index" json:"rec_id"`
	Rec       Rec       `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	Count     int       `gorm:"not null;default:1" json:"count"`
	CreatedAt time.Time `json:"created_at"`
}

// EngagementKind selects between the likes and dislikes tables.
type EngagementKind string

const (
	EngagementLike    EngagementKind = "like"
	EngagementDislike EngagementKind = "dislike"
)

// Table returns the table backing the kind.
func (k EngagementKind) Table() string {
	if k == EngagementDislike {
		return "dislikes"
	}
	return "likes"
}

// EngagementTotal is the aggregated count of one kind for one rec.
type EngagementTotal struct {
	RecID uint  `json:"rec_id"`
	Total int64 `json:"total"`
}

// Engagement is the kind-agnostic view of a single like or dislike row.
type Engagement struct {
	ID        uint           `json:"id"`
	Kind      EngagementKind `json:"kind"`
	UserID    uint           `json:"user_id"`
	RecID     uint           `json:"rec_id"`
	Count     int            `json:"count"`
	CreatedAt time.Time      `json:"created_at"`
}
