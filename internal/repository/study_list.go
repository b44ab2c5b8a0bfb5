package repository

import (
	"context"
	"fmt"

	"studyrecs/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// StudyListRepository manages the recs a user saved for later.
type StudyListRepository interface {
	List(ctx context.Context, userID uint) ([]models.RecView, error)
	Add(ctx context.Context, userID, recID uint) (*models.StudyList, error)
	Remove(ctx context.Context, userID, recID uint) (int64, error)
}

type studyListRepository struct {
	db *gorm.DB
}

func NewStudyListRepository(db *gorm.DB) StudyListRepository {
	return &studyListRepository{db: db}
}

// List returns the saved recs, newest rec first.
func (r *studyListRepository) List(ctx context.Context, userID uint) ([]models.RecView, error) {
	recs := []models.RecView{}
	err := r.db.WithContext(ctx).
		Table("study_list").
		Select("recs.*, users.name AS owner_name").
		Joins("JOIN recs ON recs.id = study_list.rec_id").
		Joins("JOIN users ON users.id = recs.user_id").
		Where("study_list.user_id = ?", userID).
		Order("study_list.rec_id DESC").
		Scan(&recs).Error
	if err != nil {
		return nil, fmt.Errorf("list study list of user %d: %w", userID, err)
	}
	return recs, nil
}

// Add saves the rec for the user. Saving twice keeps the first row.
func (r *studyListRepository) Add(ctx context.Context, userID, recID uint) (*models.StudyList, error) {
	entry := models.StudyList{UserID: userID, RecID: recID}
	res := r.db.WithContext(ctx).
		Omit(clause.Associations).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&entry)
	if res.Error != nil {
		return nil, fmt.Errorf("add to study list: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		if err := r.db.WithContext(ctx).
			Where("user_id = ? AND rec_id = ?", userID, recID).
			First(&entry).Error; err != nil {
			return nil, fmt.Errorf("load study list entry: %w", err)
		}
	}
	return &entry, nil
}

// Remove deletes the membership and reports how many rows went away.
// Removing an absent membership is not an error.
func (r *studyListRepository) Remove(ctx context.Context, userID, recID uint) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("user_id = ? AND rec_id = ?", userID, recID).
		Delete(&models.StudyList{})
	if res.Error != nil {
		return 0, fmt.Errorf("remove from study list: %w", res.Error)
	}
	return res.RowsAffected, nil
}
