package services

import (
	"context"
	"strings"

	"github.com/yoockh/portfolio/internal/models"
	pgrepo "github.com/yoockh/portfolio/internal/repositories/postgres"
	"github.com/yoockh/portfolio/internal/storage"
	"github.com/yoockh/portfolio/internal/utils"
)

// ToolInput carries the editable, non-file fields of a tool.
type ToolInput struct {
	ProfileID uint   `json:"profile_id" form:"profile_id"`
	Name      string `json:"name" form:"name"`
	Order     int    `json:"order" form:"order"`
}

type ToolService interface {
	List(ctx context.Context, f ListFilter) ([]models.Tool, error)
	Get(ctx context.Context, id uint) (*models.Tool, error)
	Create(ctx context.Context, in ToolInput, icon *Upload) (*models.Tool, error)
	Update(ctx context.Context, id uint, in ToolInput, icon *Upload) (*models.Tool, error)
	Delete(ctx context.Context, id uint) error
	Reorder(ctx context.Context, items []OrderUpdate) error
}

type toolService struct {
	tools    pgrepo.ToolRepository
	profiles pgrepo.ProfileRepository
	tx       pgrepo.Transactor
	uploader storage.Uploader
	guard    *FileGuard
}

func NewToolService(tools pgrepo.ToolRepository, profiles pgrepo.ProfileRepository, tx pgrepo.Transactor, uploader storage.Uploader, guard *FileGuard) ToolService {
	return &toolService{tools: tools, profiles: profiles, tx: tx, uploader: uploader, guard: guard}
}

func (s *toolService) List(ctx context.Context, f ListFilter) ([]models.Tool, error) {
	rows, err := s.tools.List(ctx, f)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, "ToolService.List", "failed to list tools", err)
	}
	return rows, nil
}

func (s *toolService) Get(ctx context.Context, id uint) (*models.Tool, error) {
	t, err := s.tools.GetByID(ctx, id)
	return t, utils.Repo("ToolService.Get", "tool", err)
}

func (in ToolInput) apply(t *models.Tool) {
	t.ProfileID = in.ProfileID
	t.Name = strings.TrimSpace(in.Name)
	t.Order = in.Order
}

// prepare validates next with the icon's file name standing in for the
// stored key, so the extension rule applies to what was uploaded.
func (s *toolService) prepare(ctx context.Context, op string, next *models.Tool, icon *Upload) ([]pendingUpload, error) {
	var ups []pendingUpload
	if icon != nil {
		next.Image = icon.FileName
		ups = append(ups, pendingUpload{field: &next.Image, prefix: models.PrefixToolIcons, up: icon})
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

func (s *toolService) Create(ctx context.Context, in ToolInput, icon *Upload) (*models.Tool, error) {
	const op = "ToolService.Create"

	next := &models.Tool{}
	in.apply(next)
	ups, err := s.prepare(ctx, op, next, icon)
	if err != nil {
		return nil, err
	}
	stored, err := storeUploads(ctx, op, s.uploader, s.guard, ups)
	if err != nil {
		return nil, err
	}
	if err := s.tools.Create(ctx, next); err != nil {
		s.guard.Remove(ctx, op, stored...)
		return nil, utils.Repo(op, "tool", err)
	}
	return next, nil
}

func (s *toolService) Update(ctx context.Context, id uint, in ToolInput, icon *Upload) (*models.Tool, error) {
	const op = "ToolService.Update"

	cur, err := s.tools.GetByID(ctx, id)
	if err != nil {
		return nil, utils.Repo(op, "tool", err)
	}
	next := *cur
	in.apply(&next)
	ups, err := s.prepare(ctx, op, &next, icon)
	if err != nil {
		return nil, err
	}
	stored, err := storeUploads(ctx, op, s.uploader, s.guard, ups)
	if err != nil {
		return nil, err
	}

	var prev *models.Tool
	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		p, err := s.tools.GetByID(ctx, id)
		if err != nil {
			return err
		}
		prev = p
		return s.tools.Save(ctx, &next)
	})
	if err != nil {
		s.guard.Remove(ctx, op, stored...)
		return nil, utils.Repo(op, "tool", err)
	}
	s.guard.AfterUpdate(ctx, op, prev, &next)
	return &next, nil
}

func (s *toolService) Delete(ctx context.Context, id uint) error {
	const op = "ToolService.Delete"

	var deleted *models.Tool
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		t, err := s.tools.GetByID(ctx, id)
		if err != nil {
			return err
		}
		deleted = t
		return s.tools.Delete(ctx, id)
	})
	if err != nil {
		return utils.Repo(op, "tool", err)
	}
	s.guard.AfterDelete(ctx, op, deleted)
	return nil
}

func (s *toolService) Reorder(ctx context.Context, items []OrderUpdate) error {
	const op = "ToolService.Reorder"
	if err := validateOrders(op, items); err != nil {
		return err
	}
	return reorderErr(op, s.tools.Reorder(ctx, items))
}

