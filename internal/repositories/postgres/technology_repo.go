package postgres

import (
	"context"

	"github.com/yoockh/portfolio/internal/models"
	"gorm.io/gorm"
)

type TechnologyRepository interface {
	Search(ctx context.Context, query string, limit int) ([]models.Technology, error)
	GetByID(ctx context.Context, id uint) (*models.Technology, error)
	GetByName(ctx context.Context, name string) (*models.Technology, error)
	Create(ctx context.Context, t *models.Technology) error
	Save(ctx context.Context, t *models.Technology) error
	Delete(ctx context.Context, id uint) error
}

type technologyRepo struct {
	db *gorm.DB
}

func NewTechnologyRepo(db *gorm.DB) TechnologyRepository {
	return &technologyRepo{db: db}
}

func (r *technologyRepo) Search(ctx context.Context, query string, limit int) ([]models.Technology, error) {
	q := search(conn(ctx, r.db).Model(&models.Technology{}), query, []string{"name"})
	var rows []models.Technology
	err := page(q.Order("name ASC"), ListFilter{Limit: limit}).Find(&rows).Error
	return rows, mapErr(err)
}

func (r *technologyRepo) GetByID(ctx context.Context, id uint) (*models.Technology, error) {
	var t models.Technology
	if err := conn(ctx, r.db).Where("id = ?", id).Take(&t).Error; err != nil {
		return nil, mapErr(err)
	}
	return &t, nil
}

func (r *technologyRepo) GetByName(ctx context.Context, name string) (*models.Technology, error) {
	var t models.Technology
	if err := conn(ctx, r.db).Where("name = ?", name).Take(&t).Error; err != nil {
		return nil, mapErr(err)
	}
	return &t, nil
}

func (r *technologyRepo) Create(ctx context.Context, t *models.Technology) error {
	return mapErr(conn(ctx, r.db).Create(t).Error)
}

func (r *technologyRepo) Save(ctx context.Context, t *models.Technology) error {
	return mapErr(conn(ctx, r.db).Save(t).Error)
}

// Delete removes the technology and detaches it from every project.
func (r *technologyRepo) Delete(ctx context.Context, id uint) error {
	return NewTransactor(r.db).WithinTx(ctx, func(ctx context.Context) error {
		if err := conn(ctx, r.db).Where("technology_id = ?", id).Delete(&models.ProjectTechnology{}).Error; err != nil {
			return mapErr(err)
		}
		return affected(conn(ctx, r.db).Where("id = ?", id).Delete(&models.Technology{}))
	})
}
