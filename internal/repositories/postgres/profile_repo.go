package postgres

import (
	"context"

	"github.com/yoockh/portfolio/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProfileRepository interface {
	List(ctx context.Context, f ListFilter) ([]models.Profile, error)
	GetByID(ctx context.Context, id uint) (*models.Profile, error)
	GetByAccountID(ctx context.Context, accountID uint) (*models.Profile, error)
	// First returns the lowest profile id and the number of profiles.
	First(ctx context.Context) (id uint, total int64, err error)
	Exists(ctx context.Context, id uint) (bool, error)
	// LoadPage fetches the profile with every collection the page renders,
	// each in display order, in a fixed number of queries.
	LoadPage(ctx context.Context, id uint) (*models.Profile, error)
	Create(ctx context.Context, p *models.Profile) error
	Save(ctx context.Context, p *models.Profile) error
	Delete(ctx context.Context, id uint) error
}

type profileRepo struct {
	db *gorm.DB
}

func NewProfileRepo(db *gorm.DB) ProfileRepository {
	return &profileRepo{db: db}
}

func (r *profileRepo) List(ctx context.Context, f ListFilter) ([]models.Profile, error) {
	q := conn(ctx, r.db).Model(&models.Profile{}).Preload("Account")
	q = search(q, f.Query, nil, "account_id IN (SELECT a.id FROM accounts a WHERE LOWER(a.username) LIKE ?)")
	var rows []models.Profile
	err := page(q.Order("id ASC"), f).Find(&rows).Error
	return rows, mapErr(err)
}

func (r *profileRepo) GetByID(ctx context.Context, id uint) (*models.Profile, error) {
	var p models.Profile
	err := conn(ctx, r.db).Preload("Account").Where("id = ?", id).Take(&p).Error
	if err != nil {
		return nil, mapErr(err)
	}
	return &p, nil
}

func (r *profileRepo) GetByAccountID(ctx context.Context, accountID uint) (*models.Profile, error) {
	var p models.Profile
	err := conn(ctx, r.db).Where("account_id = ?", accountID).Take(&p).Error
	if err != nil {
		return nil, mapErr(err)
	}
	return &p, nil
}

func (r *profileRepo) First(ctx context.Context) (uint, int64, error) {
	var total int64
	if err := conn(ctx, r.db).Model(&models.Profile{}).Count(&total).Error; err != nil {
		return 0, 0, mapErr(err)
	}
	if total == 0 {
		return 0, 0, nil
	}
	var p models.Profile
	if err := conn(ctx, r.db).Select("id").Order("id ASC").Take(&p).Error; err != nil {
		return 0, 0, mapErr(err)
	}
	return p.ID, total, nil
}

func (r *profileRepo) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	err := conn(ctx, r.db).Model(&models.Profile{}).Where("id = ?", id).Count(&count).Error
	return count > 0, mapErr(err)
}

func (r *profileRepo) LoadPage(ctx context.Context, id uint) (*models.Profile, error) {
	var p models.Profile
	err := conn(ctx, r.db).
		Preload("Account", publicAccount).
		Preload("Experiences", bySortOrder).
		Preload("Skills", bySortOrder).
		Preload("Tools", bySortOrder).
		Preload("Projects", bySortOrder).
		Preload("Projects.Technologies", bySortOrder).
		Preload("Projects.Technologies.Technology").
		Where("id = ?", id).
		Take(&p).Error
	if err != nil {
		return nil, mapErr(err)
	}
	return &p, nil
}

func (r *profileRepo) Create(ctx context.Context, p *models.Profile) error {
	return mapErr(conn(ctx, r.db).Omit(clause.Associations).Create(p).Error)
}

func (r *profileRepo) Save(ctx context.Context, p *models.Profile) error {
	return mapErr(conn(ctx, r.db).Omit(clause.Associations).Save(p).Error)
}

// Delete removes the profile and every row it owns.
func (r *profileRepo) Delete(ctx context.Context, id uint) error {
	return NewTransactor(r.db).WithinTx(ctx, func(ctx context.Context) error {
		db := conn(ctx, r.db)
		projects := db.Model(&models.Project{}).Select("id").Where("profile_id = ?", id)
		if err := db.Where("project_id IN (?)", projects).Delete(&models.ProjectTechnology{}).Error; err != nil {
			return mapErr(err)
		}
		for _, child := range []any{&models.Project{}, &models.Tool{}, &models.Skill{}, &models.Experience{}, &models.Contact{}} {
			if err := db.Where("profile_id = ?", id).Delete(child).Error; err != nil {
				return mapErr(err)
			}
		}
		return affected(db.Where("id = ?", id).Delete(&models.Profile{}))
	})
}

// publicAccount keeps the page to the columns it renders.
func publicAccount(db *gorm.DB) *gorm.DB {
	return db.Select("id", "username", "first_name", "last_name", "email")
}
