package services

import (
	"context"
	"errors"
	"strings"

	"github.com/yoockh/portfolio/internal/models"
	pgrepo "github.com/yoockh/portfolio/internal/repositories/postgres"
	"github.com/yoockh/portfolio/internal/storage"
	"github.com/yoockh/portfolio/internal/utils"
)

type ProjectInput struct {
	ProfileID   uint   `json:"profile_id" form:"profile_id"`
	Name        string `json:"name" form:"name"`
	Description string `json:"description" form:"description"`
	LiveLink    string `json:"live_link" form:"live_link"`
	GitHubLink  string `json:"github_link" form:"github_link"`
	Order       int    `json:"order" form:"order"`
}

type ProjectService interface {
	List(ctx context.Context, f ListFilter) ([]models.Project, error)
	Get(ctx context.Context, id uint) (*models.Project, error)
	Create(ctx context.Context, in ProjectInput, image *Upload) (*models.Project, error)
	Update(ctx context.Context, id uint, in ProjectInput, image *Upload) (*models.Project, error)
	Delete(ctx context.Context, id uint) error
	Reorder(ctx context.Context, items []OrderUpdate) error

	ListTechnologies(ctx context.Context, projectID uint) ([]models.ProjectTechnology, error)
	AttachTechnology(ctx context.Context, projectID, technologyID uint, order int) (*models.ProjectTechnology, error)
	SetTechnologyOrder(ctx context.Context, projectID, technologyID uint, order int) (*models.ProjectTechnology, error)
	DetachTechnology(ctx context.Context, projectID, technologyID uint) error
}

type projectService struct {
	projects     pgrepo.ProjectRepository
	technologies pgrepo.TechnologyRepository
	profiles     pgrepo.ProfileRepository
	tx           pgrepo.Transactor
	uploader     storage.Uploader
	guard        *FileGuard
}

func NewProjectService(
	projects pgrepo.ProjectRepository,
	technologies pgrepo.TechnologyRepository,
	profiles pgrepo.ProfileRepository,
	tx pgrepo.Transactor,
	uploader storage.Uploader,
	guard *FileGuard,
) ProjectService {
	return &projectService{
		projects:     projects,
		technologies: technologies,
		profiles:     profiles,
		tx:           tx,
		uploader:     uploader,
		guard:        guard,
	}
}

func (in ProjectInput) apply(p *models.Project) {
	p.ProfileID = in.ProfileID
	p.Name = strings.TrimSpace(in.Name)
	p.Description = strings.TrimSpace(in.Description)
	p.LiveLink = strings.TrimSpace(in.LiveLink)
	p.GitHubLink = strings.TrimSpace(in.GitHubLink)
	p.Order = in.Order
}

func (s *projectService) List(ctx context.Context, f ListFilter) ([]models.Project, error) {
	rows, err := s.projects.List(ctx, f)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, "ProjectService.List", "failed to list projects", err)
	}
	return rows, nil
}

func (s *projectService) Get(ctx context.Context, id uint) (*models.Project, error) {
	p, err := s.projects.GetByID(ctx, id)
	return p, utils.Repo("ProjectService.Get", "project", err)
}

func (s *projectService) prepare(ctx context.Context, op string, next *models.Project, image *Upload) ([]pendingUpload, error) {
	var ups []pendingUpload
	if image != nil {
		next.Image = image.FileName
		ups = append(ups, pendingUpload{field: &next.Image, prefix: models.PrefixProjectImages, up: image})
	}
	if err := models.Validate(next); err != nil {
		return nil, utils.E(utils.CodeInvalidArgument, op, err.Error(), err)
	}
	if err := checkUploadSize(op, ups); err != nil {
		return nil, err
	}
	if err := requireProfile(ctx, s.profiles, op, next.ProfileID); err != nil {
		return nil, err
	}
	return ups, nil
}

func (s *projectService) Create(ctx context.Context, in ProjectInput, image *Upload) (*models.Project, error) {
	const op = "ProjectService.Create"

	next := &models.Project{}
	in.apply(next)
	ups, err := s.prepare(ctx, op, next, image)
	if err != nil {
		return nil, err
	}
	stored, err := storeUploads(ctx, op, s.uploader, s.guard, ups)
	if err != nil {
		return nil, err
	}
	if err := s.projects.Create(ctx, next); err != nil {
		s.guard.Remove(ctx, op, stored...)
		return nil, utils.Repo(op, "project", err)
	}
	return next, nil
}

func (s *projectService) Update(ctx context.Context, id uint, in ProjectInput, image *Upload) (*models.Project, error) {
	const op = "ProjectService.Update"

	cur, err := s.projects.GetByID(ctx, id)
	if err != nil {
		return nil, utils.Repo(op, "project", err)
	}
	next := *cur
	in.apply(&next)
	ups, err := s.prepare(ctx, op, &next, image)
	if err != nil {
		return nil, err
	}
	stored, err := storeUploads(ctx, op, s.uploader, s.guard, ups)
	if err != nil {
		return nil, err
	}

	var prev *models.Project
	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		p, err := s.projects.GetByID(ctx, id)
		if err != nil {
			return err
		}
		prev = p
		return s.projects.Save(ctx, &next)
	})
	if err != nil {
		s.guard.Remove(ctx, op, stored...)
		return nil, utils.Repo(op, "project", err)
	}
	s.guard.AfterUpdate(ctx, op, prev, &next)
	return &next, nil
}

// Delete removes the project, its image and its technology links. The
// technologies themselves are shared and stay.
func (s *projectService) Delete(ctx context.Context, id uint) error {
	const op = "ProjectService.Delete"

	var deleted *models.Project
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		p, err := s.projects.GetByID(ctx, id)
		if err != nil {
			return err
		}
		deleted = p
		return s.projects.Delete(ctx, id)
	})
	if err != nil {
		return utils.Repo(op, "project", err)
	}
	s.guard.AfterDelete(ctx, op, deleted)
	return nil
}

func (s *projectService) Reorder(ctx context.Context, items []OrderUpdate) error {
	const op = "ProjectService.Reorder"
	if err := validateOrders(op, items); err != nil {
		return err
	}
	return reorderErr(op, s.projects.Reorder(ctx, items))
}

func (s *projectService) ListTechnologies(ctx context.Context, projectID uint) ([]models.ProjectTechnology, error) {
	const op = "ProjectService.ListTechnologies"

	if _, err := s.projects.GetByID(ctx, projectID); err != nil {
		return nil, utils.Repo(op, "project", err)
	}
	rows, err := s.projects.ListTechnologies(ctx, projectID)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to list project technologies", err)
	}
	return rows, nil
}

// AttachTechnology links a technology to a project once; a second link for
// the same pair is a CONFLICT.
func (s *projectService) AttachTechnology(ctx context.Context, projectID, technologyID uint, order int) (*models.ProjectTechnology, error) {
	const op = "ProjectService.AttachTechnology"

	pt := &models.ProjectTechnology{ProjectID: projectID, TechnologyID: technologyID, Order: order}
	if err := models.Validate(pt); err != nil {
		return nil, utils.E(utils.CodeInvalidArgument, op, err.Error(), err)
	}
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		if _, err := s.projects.GetByID(ctx, projectID); err != nil {
			return utils.Repo(op, "project", err)
		}
		tech, err := s.technologies.GetByID(ctx, technologyID)
		if err != nil {
			return utils.Repo(op, "technology", err)
		}
		_, err = s.projects.GetTechnology(ctx, projectID, technologyID)
		switch {
		case err == nil:
			return utils.E(utils.CodeConflict, op, "technology already attached to project", utils.ErrConflict)
		case !errors.Is(err, utils.ErrNotFound):
			return utils.E(utils.CodeInternal, op, "failed to check project technology", err)
		}
		if err := s.projects.AttachTechnology(ctx, pt); err != nil {
			return utils.Repo(op, "project technology", err)
		}
		pt.Technology = tech
		return nil
	})
	if err != nil {
		return nil, err
	}
	return pt, nil
}

func (s *projectService) SetTechnologyOrder(ctx context.Context, projectID, technologyID uint, order int) (*models.ProjectTechnology, error) {
	const op = "ProjectService.SetTechnologyOrder"

	if order < 0 {
		return nil, utils.E(utils.CodeInvalidArgument, op, "order must be >= 0", nil)
	}
	pt, err := s.projects.GetTechnology(ctx, projectID, technologyID)
	if err != nil {
		return nil, utils.Repo(op, "project technology", err)
	}
	pt.Order = order
	if err := s.projects.SaveTechnology(ctx, pt); err != nil {
		return nil, utils.Repo(op, "project technology", err)
	}
	return pt, nil
}

func (s *projectService) DetachTechnology(ctx context.Context, projectID, technologyID uint) error {
	return utils.Repo("ProjectService.DetachTechnology", "project technology",
		s.projects.DetachTechnology(ctx, projectID, technologyID))
}
