package repository

import "gorm.io/gorm"

// Repositories bundles every repository over one shared pool.
type Repositories struct {
	Recs       RecRepository
	Users      UserRepository
	Comments   CommentRepository
	StudyList  StudyListRepository
	Engagement EngagementRepository
}

func New(db *gorm.DB) *Repositories {
	return &Repositories{
		Recs:       NewRecRepository(db),
		Users:      NewUserRepository(db),
		Comments:   NewCommentRepository(db),
		StudyList:  NewStudyListRepository(db),
		Engagement: NewEngagementRepository(db),
	}
}
