package models

import (
	"time"
)

type Comment struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	User      User      `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	RecID     uint      `gorm:"not null;index" json:"rec_id"`
	Rec       Rec       `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	Comment   string    `gorm:"column:comment;type:text;not null" json:"comment"`
	CreatedAt time.Time `json:"created_at"`
}

// CommentView is a comment joined with the commenter's name.
type CommentView struct {
	Comment
	UserName string `json:"user_name"`
}
