package repository

import (
	"context"
	"fmt"

	"studyrecs/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CommentRepository defines interface for comment operations
type CommentRepository interface {
	Create(ctx context.Context, comment *models.Comment) error
	ListByRec(ctx context.Context, recID uint) ([]models.CommentView, error)
}

type commentRepository struct {
	db *gorm.DB
}

// NewCommentRepository creates a new CommentRepository
func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) Create(ctx context.Context, comment *models.Comment) error {
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(comment).Error; err != nil {
		return fmt.Errorf("insert comment: %w", err)
	}
	return nil
}

// ListByRec returns the rec's comments oldest first, with commenter names.
func (r *commentRepository) ListByRec(ctx context.Context, recID uint) ([]models.CommentView, error) {
	comments := []models.CommentView{}
	err := r.db.WithContext(ctx).
		Table("comments").
		Select("comments.*, users.name AS user_name").
		Joins("JOIN users ON users.id = comments.user_id").
		Where("comments.rec_id = ?", recID).
		Order("comments.created_at ASC, comments.id ASC").
		Scan(&comments).Error
	if err != nil {
		return nil, fmt.Errorf("list comments of rec %d: %w", recID, err)
	}
	return comments, nil
}
