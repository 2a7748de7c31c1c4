package postgres

import (
	"context"

	"github.com/yoockh/portfolio/internal/models"
	"gorm.io/gorm"
)

type ToolRepository interface {
	List(ctx context.Context, f ListFilter) ([]models.Tool, error)
	GetByID(ctx context.Context, id uint) (*models.Tool, error)
	Create(ctx context.Context, t *models.Tool) error
	Save(ctx context.Context, t *models.Tool) error
	Delete(ctx context.Context, id uint) error
	Reorder(ctx context.Context, items []OrderUpdate) error
}

type toolRepo struct {
	t orderedTable[models.Tool]
}

func NewToolRepo(db *gorm.DB) ToolRepository {
	return &toolRepo{t: orderedTable[models.Tool]{db: db, searchCols: []string{"name"}}}
}

func (r *toolRepo) List(ctx context.Context, f ListFilter) ([]models.Tool, error) {
	return r.t.list(ctx, f)
}

func (r *toolRepo) GetByID(ctx context.Context, id uint) (*models.Tool, error) {
	return r.t.get(ctx, id)
}

func (r *toolRepo) Create(ctx context.Context, t *models.Tool) error { return r.t.create(ctx, t) }

func (r *toolRepo) Save(ctx context.Context, t *models.Tool) error { return r.t.save(ctx, t) }

func (r *toolRepo) Delete(ctx context.Context, id uint) error { return r.t.delete(ctx, id) }

func (r *toolRepo) Reorder(ctx context.Context, items []OrderUpdate) error {
	return r.t.reorder(ctx, items)
}
