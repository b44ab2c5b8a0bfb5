package repository

import (
	"context"
	"fmt"
	"time"

	"studyrecs/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// RecRepository defines the read and write operations on recs and their tags.
type RecRepository interface {
	ListRecent(ctx context.Context, limit int) ([]models.RecView, error)
	ListByType(ctx context.Context, recType string, limit int) ([]models.RecView, error)
	FilterByTags(ctx context.Context, tags []string) ([]models.RecView, error)
	Search(ctx context.Context, keywords []string) ([]models.RecView, error)
	GetByID(ctx context.Context, id uint) (*models.RecView, error)
	ListTags(ctx context.Context, recID uint) ([]string, error)
	Create(ctx context.Context, rec *models.Rec, tags []string) ([]models.Tag, error)
}

type recRepository struct {
	db *gorm.DB
}

// NewRecRepository creates a new RecRepository
func NewRecRepository(db *gorm.DB) RecRepository {
	return &recRepository{db: db}
}

// withOwner selects recs joined with the owning user's name.
func (r *recRepository) withOwner(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("recs").
		Select("recs.*, users.name AS owner_name").
		Joins("JOIN users ON users.id = recs.user_id")
}

func (r *recRepository) ListRecent(ctx context.Context, limit int) ([]models.RecView, error) {
	recs := []models.RecView{}
	err := r.withOwner(ctx).
		Order("recs.submit_time DESC, recs.id DESC").
		Limit(limit).
		Scan(&recs).Error
	if err != nil {
		return nil, fmt.Errorf("list recent recs: %w", err)
	}
	return recs, nil
}

func (r *recRepository) ListByType(ctx context.Context, recType string, limit int) ([]models.RecView, error) {
	recs := []models.RecView{}
	err := r.withOwner(ctx).
		Where("recs.type = ?", recType).
		Order("recs.submit_time DESC, recs.id DESC").
		Limit(limit).
		Scan(&recs).Error
	if err != nil {
		return nil, fmt.Errorf("list recs by type: %w", err)
	}
	return recs, nil
}

// FilterByTags returns recs carrying any of the tags, each rec once.
func (r *recRepository) FilterByTags(ctx context.Context, tags []string) ([]models.RecView, error) {
	recs := []models.RecView{}
	if len(tags) == 0 {
		return recs, nil
	}

	cond, args := BuildTagFilter(tags)
	err := r.withOwner(ctx).
		Joins("JOIN tags ON tags.rec_id = recs.id").
		Where(cond, args...).
		Group("recs.id, users.id").
		Order("recs.submit_time DESC").
		Scan(&recs).Error
	if err != nil {
		return nil, fmt.Errorf("filter recs by tags: %w", err)
	}
	return recs, nil
}

// Search runs BuildSearchQuery directly on the pool because the statement
// reuses positional placeholders, which gorm's ? expansion cannot express.
// Going around gorm skips its callbacks, so the statement is handed to the
// gorm logger by hand to keep it in the slow-query and error log.
func (r *recRepository) Search(ctx context.Context, keywords []string) ([]models.RecView, error) {
	if len(keywords) == 0 {
		return []models.RecView{}, nil
	}

	query, args := BuildSearchQuery(keywords)
	tx := r.db.WithContext(ctx)
	begin := time.Now()
	recs, err := scanSearch(ctx, tx, query, args)
	tx.Logger.Trace(ctx, begin, func() (string, int64) {
		return tx.Dialector.Explain(query, args...), int64(len(recs))
	}, err)
	if err != nil {
		return nil, err
	}
	return recs, nil
}

func scanSearch(ctx context.Context, tx *gorm.DB, query string, args []interface{}) ([]models.RecView, error) {
	recs := []models.RecView{}
	rows, err := tx.Statement.ConnPool.QueryContext(ctx, query, args...)
	if err != nil {
		return recs, fmt.Errorf("search recs: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var rec models.RecView
		if err := tx.ScanRows(rows, &rec); err != nil {
			return recs, fmt.Errorf("scan search row: %w", err)
		}
		recs = append(recs, rec)
	}
	if err := rows.Err(); err != nil {
		return recs, fmt.Errorf("search recs: %w", err)
	}
	return recs, nil
}

func (r *recRepository) GetByID(ctx context.Context, id uint) (*models.RecView, error) {
	var rec models.RecView
	res := r.withOwner(ctx).Where("recs.id = ?", id).Limit(1).Scan(&rec)
	if res.Error != nil {
		return nil, fmt.Errorf("get rec %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, fmt.Errorf("rec %d: %w", id, ErrNotFound)
	}
	return &rec, nil
}

func (r *recRepository) ListTags(ctx context.Context, recID uint) ([]string, error) {
	tags := []string{}
	err := r.db.WithContext(ctx).
		Model(&models.Tag{}).
		Where("rec_id = ?", recID).
		Order("id ASC").
		Pluck("tag", &tags).Error
	if err != nil {
		return nil, fmt.Errorf("list tags of rec %d: %w", recID, err)
	}
	return tags, nil
}

// Create inserts the rec and one row per tag in a single transaction. The
// tag rows reference the primary key returned by the rec insert.
func (r *recRepository) Create(ctx context.Context, rec *models.Rec, tags []string) ([]models.Tag, error) {
	created := []models.Tag{}
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(rec).Error; err != nil {
			return fmt.Errorf("insert rec: %w", err)
		}
		if len(tags) == 0 {
			return nil
		}

		rows := make([]models.Tag, 0, len(tags))
		for _, t := range tags {
			rows = append(rows, models.Tag{RecID: rec.ID, Tag: t})
		}
		if err := tx.Omit(clause.Associations).Create(&rows).Error; err != nil {
			return fmt.Errorf("insert tags: %w", err)
		}
		created = rows
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}
