package postgres

import (
	"context"

	"github.com/yoockh/portfolio/internal/models"
	"gorm.io/gorm"
)

type SkillRepository interface {
	List(ctx context.Context, f ListFilter) ([]models.Skill, error)
	GetByID(ctx context.Context, id uint) (*models.Skill, error)
	Create(ctx context.Context, s *models.Skill) error
	Save(ctx context.Context, s *models.Skill) error
	Delete(ctx context.Context, id uint) error
	Reorder(ctx context.Context, items []OrderUpdate) error
}

type skillRepo struct {
	t orderedTable[models.Skill]
}

func NewSkillRepo(db *gorm.DB) SkillRepository {
	return &skillRepo{t: orderedTable[models.Skill]{db: db, searchCols: []string{"name"}}}
}

func (r *skillRepo) List(ctx context.Context, f ListFilter) ([]models.Skill, error) {
	return r.t.list(ctx, f)
}

func (r *skillRepo) GetByID(ctx context.Context, id uint) (*models.Skill, error) {
	return r.t.get(ctx, id)
}

func (r *skillRepo) Create(ctx context.Context, s *models.Skill) error { return r.t.create(ctx, s) }

func (r *skillRepo) Save(ctx context.Context, s *models.Skill) error { return r.t.save(ctx, s) }

func (r *skillRepo) Delete(ctx context.Context, id uint) error { return r.t.delete(ctx, id) }

func (r *skillRepo) Reorder(ctx context.Context, items []OrderUpdate) error {
	return r.t.reorder(ctx, items)
}
