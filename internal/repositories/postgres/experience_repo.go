package postgres

import (
	"context"

	"github.com/yoockh/portfolio/internal/models"
	"gorm.io/gorm"
)

type ExperienceRepository interface {
	List(ctx context.Context, f ListFilter) ([]models.Experience, error)
	GetByID(ctx context.Context, id uint) (*models.Experience, error)
	Create(ctx context.Context, e *models.Experience) error
	Save(ctx context.Context, e *models.Experience) error
	Delete(ctx context.Context, id uint) error
	Reorder(ctx context.Context, items []OrderUpdate) error
}

type experienceRepo struct {
	t orderedTable[models.Experience]
}

func NewExperienceRepo(db *gorm.DB) ExperienceRepository {
	return &experienceRepo{t: orderedTable[models.Experience]{db: db, searchCols: []string{"name", "company"}}}
}

func (r *experienceRepo) List(ctx context.Context, f ListFilter) ([]models.Experience, error) {
	return r.t.list(ctx, f)
}

func (r *experienceRepo) GetByID(ctx context.Context, id uint) (*models.Experience, error) {
	return r.t.get(ctx, id)
}

func (r *experienceRepo) Create(ctx context.Context, e *models.Experience) error {
	return r.t.create(ctx, e)
}

func (r *experienceRepo) Save(ctx context.Context, e *models.Experience) error {
	return r.t.save(ctx, e)
}

func (r *experienceRepo) Delete(ctx context.Context, id uint) error { return r.t.delete(ctx, id) }

func (r *experienceRepo) Reorder(ctx context.Context, items []OrderUpdate) error {
	return r.t.reorder(ctx, items)
}
