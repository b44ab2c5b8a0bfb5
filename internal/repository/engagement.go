package repository

import (
	"context"
	"fmt"

	"studyrecs/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// EngagementRepository records likes and dislikes. Rows are never merged:
// every Add inserts a unit row and totals are summed at read time.
type EngagementRepository interface {
	Add(ctx context.Context, kind models.EngagementKind, userID, recID uint) (*models.Engagement, error)
	Remove(ctx context.Context, kind models.EngagementKind, userID, recID uint) (int64, error)
	Total(ctx context.Context, kind models.EngagementKind, recID uint) (int64, error)
}

type engagementRepository struct {
	db *gorm.DB
}

func NewEngagementRepository(db *gorm.DB) EngagementRepository {
	return &engagementRepository{db: db}
}

func (r *engagementRepository) Add(ctx context.Context, kind models.EngagementKind, userID, recID uint) (*models.Engagement, error) {
	db := r.db.WithContext(ctx).Omit(clause.Associations)

	out := &models.Engagement{Kind: kind, UserID: userID, RecID: recID, Count: 1}
	switch kind {
	case models.EngagementDislike:
		row := models.Dislike{UserID: userID, RecID: recID, Count: 1}
		if err := db.Create(&row).Error; err != nil {
			return nil, fmt.Errorf("insert dislike: %w", err)
		}
		out.ID, out.CreatedAt = row.ID, row.CreatedAt
	default:
		row := models.Like{UserID: userID, RecID: recID, Count: 1}
		if err := db.Create(&row).Error; err != nil {
			return nil, fmt.Errorf("insert like: %w", err)
		}
		out.ID, out.CreatedAt = row.ID, row.CreatedAt
	}
	return out, nil
}

// Remove deletes every row the user holds for the rec.
func (r *engagementRepository) Remove(ctx context.Context, kind models.EngagementKind, userID, recID uint) (int64, error) {
	var model interface{} = &models.Like{}
	if kind == models.EngagementDislike {
		model = &models.Dislike{}
	}
	res := r.db.WithContext(ctx).
		Where("user_id = ? AND rec_id = ?", userID, recID).
		Delete(model)
	if res.Error != nil {
		return 0, fmt.Errorf("remove %s: %w", kind, res.Error)
	}
	return res.RowsAffected, nil
}

// Total sums the counts for the rec. A rec with no rows totals zero.
func (r *engagementRepository) Total(ctx context.Context, kind models.EngagementKind, recID uint) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).
		Table(kind.Table()).
		Select("COALESCE(SUM(count), 0)").
		Where("rec_id = ?", recID).
		Row().Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("total %ss of rec %d: %w", kind, recID, err)
	}
	return total, nil
}
