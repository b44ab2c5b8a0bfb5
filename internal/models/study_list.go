package models

import (
	"time"
)

// StudyList is a user's saved-for-later membership of a rec.
type StudyList struct {
	UserID    uint      `gorm:"primaryKey;autoIncrement:false" json:"user_id"`
	User      User      `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	RecID     uint      `gorm:"primaryKey;autoIncrement:false;index" json:"rec_id"`
	Rec       Rec       `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	CreatedAt time.Time `json:"created_at"`
}

func (StudyList) TableName() string {
	return "study_list"
}
