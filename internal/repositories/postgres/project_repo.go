package postgres

import (
	"context"

	"github.com/yoockh/portfolio/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProjectRepository interface {
	List(ctx context.Context, f ListFilter) ([]models.Project, error)
	GetByID(ctx context.Context, id uint) (*models.Project, error)
	Create(ctx context.Context, p *models.Project) error
	Save(ctx context.Context, p *models.Project) error
	Delete(ctx context.Context, id uint) error
	Reorder(ctx context.Context, items []OrderUpdate) error

	ListTechnologies(ctx context.Context, projectID uint) ([]models.ProjectTechnology, error)
	GetTechnology(ctx context.Context, projectID, technologyID uint) (*models.ProjectTechnology, error)
	AttachTechnology(ctx context.Context, pt *models.ProjectTechnology) error
	SaveTechnology(ctx context.Context, pt *models.ProjectTechnology) error
	DetachTechnology(ctx context.Context, projectID, technologyID uint) error
}

type projectRepo struct {
	db *gorm.DB
	t  orderedTable[models.Project]
}

func withTechnologies(q *gorm.DB) *gorm.DB {
	return q.Preload("Technologies", bySortOrder).Preload("Technologies.Technology")
}

func NewProjectRepo(db *gorm.DB) ProjectRepository {
	return &projectRepo{
		db: db,
		t:  orderedTable[models.Project]{db: db, searchCols: []string{"name"}, preload: withTechnologies},
	}
}

func (r *projectRepo) List(ctx context.Context, f ListFilter) ([]models.Project, error) {
	return r.t.list(ctx, f)
}

func (r *projectRepo) GetByID(ctx context.Context, id uint) (*models.Project, error) {
	return r.t.get(ctx, id)
}

func (r *projectRepo) Create(ctx context.Context, p *models.Project) error {
	return r.t.create(ctx, p)
}

func (r *projectRepo) Save(ctx context.Context, p *models.Project) error { return r.t.save(ctx, p) }

// Delete removes the project and its technology join rows. Technologies stay.
func (r *projectRepo) Delete(ctx context.Context, id uint) error {
	return NewTransactor(r.db).WithinTx(ctx, func(ctx context.Context) error {
		if err := conn(ctx, r.db).Where("project_id = ?", id).Delete(&models.ProjectTechnology{}).Error; err != nil {
			return mapErr(err)
		}
		return r.t.delete(ctx, id)
	})
}

func (r *projectRepo) Reorder(ctx context.Context, items []OrderUpdate) error {
	return r.t.reorder(ctx, items)
}

func (r *projectRepo) ListTechnologies(ctx context.Context, projectID uint) ([]models.ProjectTechnology, error) {
	var rows []models.ProjectTechnology
	err := bySortOrder(conn(ctx, r.db).Preload("Technology")).
		Where("project_id = ?", projectID).
		Find(&rows).Error
	return rows, mapErr(err)
}

func (r *projectRepo) GetTechnology(ctx context.Context, projectID, technologyID uint) (*models.ProjectTechnology, error) {
	var row models.ProjectTechnology
	err := conn(ctx, r.db).Preload("Technology").
		Where("project_id = ? AND technology_id = ?", projectID, technologyID).
		Take(&row).Error
	if err != nil {
		return nil, mapErr(err)
	}
	return &row, nil
}

func (r *projectRepo) AttachTechnology(ctx context.Context, pt *models.ProjectTechnology) error {
	return mapErr(conn(ctx, r.db).Omit(clause.Associations).Create(pt).Error)
}

func (r *projectRepo) SaveTechnology(ctx context.Context, pt *models.ProjectTechnology) error {
	return mapErr(conn(ctx, r.db).Omit(clause.Associations).Save(pt).Error)
}

func (r *projectRepo) DetachTechnology(ctx context.Context, projectID, technologyID uint) error {
	return affected(conn(ctx, r.db).
		Where("project_id = ? AND technology_id = ?", projectID, technologyID).
		Delete(&models.ProjectTechnology{}))
}
