package services

import (
	"context"

	"github.com/yoockh/portfolio/internal/models"
	pgrepo "github.com/yoockh/portfolio/internal/repositories/postgres"
	"github.com/yoockh/portfolio/internal/utils"
)

type ExperienceService interface {
	List(ctx context.Context, f ListFilter) ([]models.Experience, error)
	Get(ctx context.Context, id uint) (*models.Experience, error)
	Create(ctx context.Context, e *models.Experience) (*models.Experience, error)
	Update(ctx context.Context, id uint, e *models.Experience) (*models.Experience, error)
	Delete(ctx context.Context, id uint) error
	Reorder(ctx context.Context, items []OrderUpdate) error
}

type experienceService struct {
	experiences pgrepo.ExperienceRepository
	profiles    pgrepo.ProfileRepository
}

func NewExperienceService(experiences pgrepo.ExperienceRepository, profiles pgrepo.ProfileRepository) ExperienceService {
	return &experienceService{experiences: experiences, profiles: profiles}
}

func (s *experienceService) List(ctx context.Context, f ListFilter) ([]models.Experience, error) {
	rows, err := s.experiences.List(ctx, f)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, "ExperienceService.List", "failed to list experiences", err)
	}
	return rows, nil
}

func (s *experienceService) Get(ctx context.Context, id uint) (*models.Experience, error) {
	e, err := s.experiences.GetByID(ctx, id)
	return e, utils.Repo("ExperienceService.Get", "experience", err)
}

func (s *experienceService) Create(ctx context.Context, e *models.Experience) (*models.Experience, error) {
	const op = "ExperienceService.Create"

	if e == nil {
		return nil, utils.E(utils.CodeInvalidArgument, op, "experience is required", nil)
	}
	e.ID = 0
	if err := models.Validate(e); err != nil {
		return nil, utils.E(utils.CodeInvalidArgument, op, err.Error(), err)
	}
	if err := requireProfile(ctx, s.profiles, op, e.ProfileID); err != nil {
		return nil, err
	}
	if err := s.experiences.Create(ctx, e); err != nil {
		return nil, utils.Repo(op, "experience", err)
	}
	return e, nil
}

func (s *experienceService) Update(ctx context.Context, id uint, e *models.Experience) (*models.Experience, error) {
	const op = "ExperienceService.Update"

	if e == nil {
		return nil, utils.E(utils.CodeInvalidArgument, op, "experience is required", nil)
	}
	if _, err := s.experiences.GetByID(ctx, id); err != nil {
		return nil, utils.Repo(op, "experience", err)
	}
	e.ID = id
	if err := models.Validate(e); err != nil {
		return nil, utils.E(utils.CodeInvalidArgument, op, err.Error(), err)
	}
	if err := requireProfile(ctx, s.profiles, op, e.ProfileID); err != nil {
		return nil, err
	}
	if err := s.experiences.Save(ctx, e); err != nil {
		return nil, utils.Repo(op, "experience", err)
	}
	return e, nil
}

func (s *experienceService) Delete(ctx context.Context, id uint) error {
	return utils.Repo("ExperienceService.Delete", "experience", s.experiences.Delete(ctx, id))
}

func (s *experienceService) Reorder(ctx context.Context, items []OrderUpdate) error {
	const op = "ExperienceService.Reorder"
	if err := validateOrders(op, items); err != nil {
		return err
	}
	return reorderErr(op, s.experiences.Reorder(ctx, items))
}
