package services

import (
	"context"

	"github.com/yoockh/portfolio/internal/models"
	pgrepo "github.com/yoockh/portfolio/internal/repositories/postgres"
	"github.com/yoockh/portfolio/internal/utils"
)

// ContactService is the admin side of contact messages: they can be read and
// deleted, never edited.
type ContactService interface {
	List(ctx context.Context, f ListFilter) ([]models.Contact, error)
	Get(ctx context.Context, id uint) (*models.Contact, error)
	Delete(ctx context.Context, id uint) error
}

type contactService struct {
	contacts pgrepo.ContactRepository
}

func NewContactService(contacts pgrepo.ContactRepository) ContactService {
	return &contactService{contacts: contacts}
}

func (s *contactService) List(ctx context.Context, f ListFilter) ([]models.Contact, error) {
	rows, err := s.contacts.List(ctx, f)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, "ContactService.List", "failed to list contacts", err)
	}
	return rows, nil
}

func (s *contactService) Get(ctx context.Context, id uint) (*models.Contact, error) {
	c, err := s.contacts.GetByID(ctx, id)
	return c, utils.Repo("ContactService.Get", "contact", err)
}

func (s *contactService) Delete(ctx context.Context, id uint) error {
	return utils.Repo("ContactService.Delete", "contact", s.contacts.Delete(ctx, id))
}
