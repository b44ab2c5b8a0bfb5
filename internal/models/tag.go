package models

// Tag is a free-text label attached to a rec. The same label may appear
// more than once on a rec.
type Tag struct {
	ID    uint   `gorm:"primaryKey" json:"id"`
	RecID uint   `gorm:"not null;index" json:"rec_id"`
	Rec   Rec    `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	Tag   string `gorm:"not null;index" json:"tag"`
}
