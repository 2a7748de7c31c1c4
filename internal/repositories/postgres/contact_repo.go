package postgres

import (
	"context"

	"github.com/yoockh/portfolio/internal/models"
	"gorm.io/gorm"
)

// ContactRepository has no update: contact messages are immutable once created.
type ContactRepository interface {
	Insert(ctx context.Context, c *models.Contact) error
	List(ctx context.Context, f ListFilter) ([]models.Contact, error)
	GetByID(ctx context.Context, id uint) (*models.Contact, error)
	Delete(ctx context.Context, id uint) error
}

type contactRepo struct {
	db *gorm.DB
}

func NewContactRepo(db *gorm.DB) ContactRepository {
	return &contactRepo{db: db}
}

func (r *contactRepo) Insert(ctx context.Context, c *models.Contact) error {
	return mapErr(conn(ctx, r.db).Create(c).Error)
}

func (r *contactRepo) List(ctx context.Context, f ListFilter) ([]models.Contact, error) {
	q := conn(ctx, r.db).Model(&models.Contact{})
	if f.ProfileID != 0 {
		q = q.Where("profile_id = ?", f.ProfileID)
	}
	q = search(q, f.Query, []string{"name", "email", "subject"})
	var rows []models.Contact
	err := page(q.Order("created_at DESC").Order("id DESC"), f).Find(&rows).Error
	return rows, mapErr(err)
}

func (r *contactRepo) GetByID(ctx context.Context, id uint) (*models.Contact, error) {
	var c models.Contact
	if err := conn(ctx, r.db).Where("id = ?", id).Take(&c).Error; err != nil {
		return nil, mapErr(err)
	}
	return &c, nil
}

func (r *contactRepo) Delete(ctx context.Context, id uint) error {
	return affected(conn(ctx, r.db).Where("id = ?", id).Delete(&models.Contact{}))
}
