package services

import (
	"context"
	"errors"
	"strings"

	"github.com/yoockh/portfolio/internal/models"
	pgrepo "github.com/yoockh/portfolio/internal/repositories/postgres"
	"github.com/yoockh/portfolio/internal/utils"
)

type TechnologyService interface {
	// Search matches q against technology names; it backs autocomplete.
	Search(ctx context.Context, q string, limit int) ([]models.Technology, error)
	Get(ctx context.Context, id uint) (*models.Technology, error)
	Create(ctx context.Context, name string) (*models.Technology, error)
	Rename(ctx context.Context, id uint, name string) (*models.Technology, error)
	Delete(ctx context.Context, id uint) error
}

type technologyService struct {
	technologies pgrepo.TechnologyRepository
}

func NewTechnologyService(technologies pgrepo.TechnologyRepository) TechnologyService {
	return &technologyService{technologies: technologies}
}

func (s *technologyService) Search(ctx context.Context, q string, limit int) ([]models.Technology, error) {
	rows, err := s.technologies.Search(ctx, strings.TrimSpace(q), limit)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, "TechnologyService.Search", "failed to search technologies", err)
	}
	return rows, nil
}

func (s *technologyService) Get(ctx context.Context, id uint) (*models.Technology, error) {
	t, err := s.technologies.GetByID(ctx, id)
	return t, utils.Repo("TechnologyService.Get", "technology", err)
}

func (s *technologyService) checkName(ctx context.Context, op, name string, self uint) error {
	other, err := s.technologies.GetByName(ctx, name)
	switch {
	case errors.Is(err, utils.ErrNotFound):
		return nil
	case err != nil:
		return utils.E(utils.CodeInternal, op, "failed to check technology name", err)
	case other.ID != self:
		return utils.E(utils.CodeConflict, op, "technology already exists", utils.ErrConflict)
	}
	return nil
}

func (s *technologyService) Create(ctx context.Context, name string) (*models.Technology, error) {
	const op = "TechnologyService.Create"

	t := &models.Technology{Name: strings.TrimSpace(name)}
	if err := models.Validate(t); err != nil {
		return nil, utils.E(utils.CodeInvalidArgument, op, err.Error(), err)
	}
	if err := s.checkName(ctx, op, t.Name, 0); err != nil {
		return nil, err
	}
	if err := s.technologies.Create(ctx, t); err != nil {
		return nil, utils.Repo(op, "technology", err)
	}
	return t, nil
}

func (s *technologyService) Rename(ctx context.Context, id uint, name string) (*models.Technology, error) {
	const op = "TechnologyService.Rename"

	t, err := s.technologies.GetByID(ctx, id)
	if err != nil {
		return nil, utils.Repo(op, "technology", err)
	}
	t.Name = strings.TrimSpace(name)
	if err := models.Validate(t); err != nil {
		return nil, utils.E(utils.CodeInvalidArgument, op, err.Error(), err)
	}
	if err := s.checkName(ctx, op, t.Name, t.ID); err != nil {
		return nil, err
	}
	if err := s.technologies.Save(ctx, t); err != nil {
		return nil, utils.Repo(op, "technology", err)
	}
	return t, nil
}

func (s *technologyService) Delete(ctx context.Context, id uint) error {
	return utils.Repo("TechnologyService.Delete", "technology", s.technologies.Delete(ctx, id))
}
