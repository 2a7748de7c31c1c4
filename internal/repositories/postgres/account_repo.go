package postgres

import (
	"context"

	"github.com/yoockh/portfolio/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type AccountRepository interface {
	List(ctx context.Context, f ListFilter) ([]models.Account, error)
	GetByID(ctx context.Context, id uint) (*models.Account, error)
	GetByUsername(ctx context.Context, username string) (*models.Account, error)
	Create(ctx context.Context, a *models.Account) error
	Save(ctx context.Context, a *models.Account) error
	// Delete removes only the account row; callers delete the profile first.
	Delete(ctx context.Context, id uint) error
}

type accountRepo struct {
	db *gorm.DB
}

func NewAccountRepo(db *gorm.DB) AccountRepository {
	return &accountRepo{db: db}
}

func (r *accountRepo) List(ctx context.Context, f ListFilter) ([]models.Account, error) {
	q := search(conn(ctx, r.db).Model(&models.Account{}), f.Query, []string{"username", "email", "first_name", "last_name"})
	var rows []models.Account
	err := page(q.Order("username ASC"), f).Find(&rows).Error
	return rows, mapErr(err)
}

func (r *accountRepo) GetByID(ctx context.Context, id uint) (*models.Account, error) {
	var a models.Account
	if err := conn(ctx, r.db).Preload("Profile").Where("id = ?", id).Take(&a).Error; err != nil {
		return nil, mapErr(err)
	}
	return &a, nil
}

func (r *accountRepo) GetByUsername(ctx context.Context, username string) (*models.Account, error) {
	var a models.Account
	if err := conn(ctx, r.db).Where("username = ?", username).Take(&a).Error; err != nil {
		return nil, mapErr(err)
	}
	return &a, nil
}

func (r *accountRepo) Create(ctx context.Context, a *models.Account) error {
	return mapErr(conn(ctx, r.db).Omit(clause.Associations).Create(a).Error)
}

func (r *accountRepo) Save(ctx context.Context, a *models.Account) error {
	return mapErr(conn(ctx, r.db).Omit(clause.Associations).Save(a).Error)
}

func (r *accountRepo) Delete(ctx context.Context, id uint) error {
	return affected(conn(ctx, r.db).Where("id = ?", id).Delete(&models.Account{}))
}
