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

// ProfileInput carries the editable, non-file fields of a profile.
type ProfileInput struct {
	Designation        string `json:"designation" form:"designation"`
	Description        string `json:"description" form:"description"`
	AboutMe            string `json:"about_me" form:"about_me"`
	ContactDescription string `json:"contact_description" form:"contact_description"`
	Phone              string `json:"phone" form:"phone"`
	Experience         string `json:"experience" form:"experience"`
	Location           string `json:"location" form:"location"`
	GitHub             string `json:"github" form:"github"`
	LinkedIn           string `json:"linkedin" form:"linkedin"`
	Instagram          string `json:"instagram" form:"instagram"`
	Facebook           string `json:"facebook" form:"facebook"`
}

// ProfileFiles holds replacement uploads; a nil field keeps the stored file.
type ProfileFiles struct {
	Image1 *Upload
	Image2 *Upload
	CV     *Upload
}

type ProfileService interface {
	List(ctx context.Context, f ListFilter) ([]models.Profile, error)
	Get(ctx context.Context, id uint) (*models.Profile, error)
	GetByAccount(ctx context.Context, accountID uint) (*models.Profile, error)
	Create(ctx context.Context, accountID uint, in ProfileInput, files ProfileFiles) (*models.Profile, error)
	Update(ctx context.Context, id uint, in ProfileInput, files ProfileFiles) (*models.Profile, error)
	Delete(ctx context.Context, id uint) error
}

type profileService struct {
	profiles pgrepo.ProfileRepository
	accounts pgrepo.AccountRepository
	tx       pgrepo.Transactor
	uploader storage.Uploader
	guard    *FileGuard
}

func NewProfileService(
	profiles pgrepo.ProfileRepository,
	accounts pgrepo.AccountRepository,
	tx pgrepo.Transactor,
	uploader storage.Uploader,
	guard *FileGuard,
) ProfileService {
	return &profileService{profiles: profiles, accounts: accounts, tx: tx, uploader: uploader, guard: guard}
}

func (in ProfileInput) apply(p *models.Profile) {
	p.Designation = strings.TrimSpace(in.Designation)
	p.Description = strings.TrimSpace(in.Description)
	p.AboutMe = strings.TrimSpace(in.AboutMe)
	p.ContactDescription = strings.TrimSpace(in.ContactDescription)
	p.Phone = strings.TrimSpace(in.Phone)
	p.Experience = strings.TrimSpace(in.Experience)
	p.Location = strings.TrimSpace(in.Location)
	p.GitHub = strings.TrimSpace(in.GitHub)
	p.LinkedIn = strings.TrimSpace(in.LinkedIn)
	p.Instagram = strings.TrimSpace(in.Instagram)
	p.Facebook = strings.TrimSpace(in.Facebook)
}

func (f ProfileFiles) pending(p *models.Profile) []pendingUpload {
	var ups []pendingUpload
	add := func(field *string, prefix string, up *Upload) {
		if up == nil {
			return
		}
		*field = up.FileName
		ups = append(ups, pendingUpload{field: field, prefix: prefix, up: up})
	}
	add(&p.Image1, models.PrefixProfileImages, f.Image1)
	add(&p.Image2, models.PrefixProfileImages, f.Image2)
	add(&p.CV, models.PrefixCVs, f.CV)
	return ups
}

func (s *profileService) List(ctx context.Context, f ListFilter) ([]models.Profile, error) {
	rows, err := s.profiles.List(ctx, f)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, "ProfileService.List", "failed to list profiles", err)
	}
	return rows, nil
}

func (s *profileService) Get(ctx context.Context, id uint) (*models.Profile, error) {
	p, err := s.profiles.GetByID(ctx, id)
	return p, utils.Repo("ProfileService.Get", "profile", err)
}

func (s *profileService) GetByAccount(ctx context.Context, accountID uint) (*models.Profile, error) {
	const op = "ProfileService.GetByAccount"

	if _, err := s.accounts.GetByID(ctx, accountID); err != nil {
		return nil, utils.Repo(op, "account", err)
	}
	p, err := s.profiles.GetByAccountID(ctx, accountID)
	return p, utils.Repo(op, "profile", err)
}

// Create adds the profile of an existing account. Each account has at most one.
func (s *profileService) Create(ctx context.Context, accountID uint, in ProfileInput, files ProfileFiles) (*models.Profile, error) {
	const op = "ProfileService.Create"

	if _, err := s.accounts.GetByID(ctx, accountID); err != nil {
		return nil, utils.Repo(op, "account", err)
	}
	_, err := s.profiles.GetByAccountID(ctx, accountID)
	switch {
	case err == nil:
		return nil, utils.E(utils.CodeConflict, op, "account already has a profile", utils.ErrConflict)
	case !errors.Is(err, utils.ErrNotFound):
		return nil, utils.E(utils.CodeInternal, op, "failed to check existing profile", err)
	}

	next := &models.Profile{AccountID: accountID}
	in.apply(next)
	ups := files.pending(next)
	if err := models.Validate(next); err != nil {
		return nil, utils.E(utils.CodeInvalidArgument, op, err.Error(), err)
	}
	if err := checkUploadSize(op, ups); err != nil {
		return nil, err
	}
	stored, err := storeUploads(ctx, op, s.uploader, s.guard, ups)
	if err != nil {
		return nil, err
	}
	if err := s.profiles.Create(ctx, next); err != nil {
		s.guard.Remove(ctx, op, stored...)
		return nil, utils.Repo(op, "profile", err)
	}
	return next, nil
}

// Update replaces the profile fields. Files superseded by a new upload are
// removed from storage once the update has committed.
func (s *profileService) Update(ctx context.Context, id uint, in ProfileInput, files ProfileFiles) (*models.Profile, error) {
	const op = "ProfileService.Update"

	cur, err := s.profiles.GetByID(ctx, id)
	if err != nil {
		return nil, utils.Repo(op, "profile", err)
	}
	next := *cur
	next.Account = nil
	in.apply(&next)
	ups := files.pending(&next)
	if err := models.Validate(&next); err != nil {
		return nil, utils.E(utils.CodeInvalidArgument, op, err.Error(), err)
	}
	if err := checkUploadSize(op, ups); err != nil {
		return nil, err
	}
	stored, err := storeUploads(ctx, op, s.uploader, s.guard, ups)
	if err != nil {
		return nil, err
	}

	var prev *models.Profile
	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		p, err := s.profiles.GetByID(ctx, id)
		if err != nil {
			return err
		}
		prev = p
		return s.profiles.Save(ctx, &next)
	})
	if err != nil {
		s.guard.Remove(ctx, op, stored...)
		return nil, utils.Repo(op, "profile", err)
	}
	s.guard.AfterUpdate(ctx, op, prev, &next)
	return &next, nil
}

func (s *profileService) Delete(ctx context.Context, id uint) error {
	const op = "ProfileService.Delete"

	var files []string
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		var err error
		files, err = deleteProfile(ctx, s.profiles, id)
		return err
	})
	if err != nil {
		return utils.Repo(op, "profile", err)
	}
	s.guard.Remove(ctx, op, files...)
	return nil
}

// deleteProfile deletes the profile with everything it owns and returns the
// stored files that were referenced by the deleted rows.
func deleteProfile(ctx context.Context, profiles pgrepo.ProfileRepository, id uint) ([]string, error) {
	p, err := profiles.LoadPage(ctx, id)
	if err != nil {
		return nil, err
	}
	owners := []models.FileOwner{p}
	for i := range p.Tools {
		owners = append(owners, &p.Tools[i])
	}
	for i := range p.Projects {
		owners = append(owners, &p.Projects[i])
	}
	if err := profiles.Delete(ctx, id); err != nil {
		return nil, err
	}
	return OwnedFiles(owners...), nil
}
