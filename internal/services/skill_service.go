package services

import (
	"context"

	"github.com/yoockh/portfolio/internal/models"
	pgrepo "github.com/yoockh/portfolio/internal/repositories/postgres"
	"github.com/yoockh/portfolio/internal/utils"
)

type SkillService interface {
	List(ctx context.Context, f ListFilter) ([]models.Skill, error)
	Get(ctx context.Context, id uint) (*models.Skill, error)
	Create(ctx context.Context, sk *models.Skill) (*models.Skill, error)
	Update(ctx context.Context, id uint, sk *models.Skill) (*models.Skill, error)
	Delete(ctx context.Context, id uint) error
	Reorder(ctx context.Context, items []OrderUpdate) error
}

type skillService struct {
	skills   pgrepo.SkillRepository
	profiles pgrepo.ProfileRepository
}

func NewSkillService(skills pgrepo.SkillRepository, profiles pgrepo.ProfileRepository) SkillService {
	return &skillService{skills: skills, profiles: profiles}
}

func (s *skillService) List(ctx context.Context, f ListFilter) ([]models.Skill, error) {
	rows, err := s.skills.List(ctx, f)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, "SkillService.List", "failed to list skills", err)
	}
	return rows, nil
}

func (s *skillService) Get(ctx context.Context, id uint) (*models.Skill, error) {
	sk, err := s.skills.GetByID(ctx, id)
	return sk, utils.Repo("SkillService.Get", "skill", err)
}

// Create rejects a percentage outside [0,100] rather than clamping it.
func (s *skillService) Create(ctx context.Context, sk *models.Skill) (*models.Skill, error) {
	const op = "SkillService.Create"

	if sk == nil {
		return nil, utils.E(utils.CodeInvalidArgument, op, "skill is required", nil)
	}
	sk.ID = 0
	if err := models.Validate(sk); err != nil {
		return nil, utils.E(utils.CodeInvalidArgument, op, err.Error(), err)
	}
	if err := requireProfile(ctx, s.profiles, op, sk.ProfileID); err != nil {
		return nil, err
	}
	if err := s.skills.Create(ctx, sk); err != nil {
		return nil, utils.Repo(op, "skill", err)
	}
	return sk, nil
}

func (s *skillService) Update(ctx context.Context, id uint, sk *models.Skill) (*models.Skill, error) {
	const op = "SkillService.Update"

	if sk == nil {
		return nil, utils.E(utils.CodeInvalidArgument, op, "skill is required", nil)
	}
	if _, err := s.skills.GetByID(ctx, id); err != nil {
		return nil, utils.Repo(op, "skill", err)
	}
	sk.ID = id
	if err := models.Validate(sk); err != nil {
		return nil, utils.E(utils.CodeInvalidArgument, op, err.Error(), err)
	}
	if err := requireProfile(ctx, s.profiles, op, sk.ProfileID); err != nil {
		return nil, err
	}
	if err := s.skills.Save(ctx, sk); err != nil {
		return nil, utils.Repo(op, "skill", err)
	}
	return sk, nil
}

func (s *skillService) Delete(ctx context.Context, id uint) error {
	return utils.Repo("SkillService.Delete", "skill", s.skills.Delete(ctx, id))
}

func (s *skillService) Reorder(ctx context.Context, items []OrderUpdate) error {
	const op = "SkillService.Reorder"
	if err := validateOrders(op, items); err != nil {
		return err
	}
	return reorderErr(op, s.skills.Reorder(ctx, items))
}
