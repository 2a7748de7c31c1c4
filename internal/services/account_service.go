package services

import (
	"context"
	"errors"
	"strings"

	"github.com/yoockh/portfolio/internal/models"
	pgrepo "github.com/yoockh/portfolio/internal/repositories/postgres"
	"github.com/yoockh/portfolio/internal/utils"
)

type AccountInput struct {
	Username  string `json:"username"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	IsStaff   bool   `json:"is_staff"`
	// Password is required on create; empty on update keeps the current one.
	Password string `json:"password"`
}

type AccountService interface {
	List(ctx context.Context, f ListFilter) ([]models.Account, error)
	Get(ctx context.Context, id uint) (*models.Account, error)
	Create(ctx context.Context, in AccountInput) (*models.Account, error)
	Update(ctx context.Context, id uint, in AccountInput) (*models.Account, error)
	Delete(ctx context.Context, id uint) error
	Authenticate(ctx context.Context, username, password string) (*models.Account, error)
}

type accountService struct {
	accounts pgrepo.AccountRepository
	profiles pgrepo.ProfileRepository
	tx       pgrepo.Transactor
	guard    *FileGuard
}

func NewAccountService(accounts pgrepo.AccountRepository, profiles pgrepo.ProfileRepository, tx pgrepo.Transactor, guard *FileGuard) AccountService {
	return &accountService{accounts: accounts, profiles: profiles, tx: tx, guard: guard}
}

func (in AccountInput) apply(a *models.Account) {
	a.Username = strings.TrimSpace(in.Username)
	a.Email = strings.TrimSpace(in.Email)
	a.FirstName = strings.TrimSpace(in.FirstName)
	a.LastName = strings.TrimSpace(in.LastName)
	a.IsStaff = in.IsStaff
}

func (s *accountService) List(ctx context.Context, f ListFilter) ([]models.Account, error) {
	rows, err := s.accounts.List(ctx, f)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, "AccountService.List", "failed to list accounts", err)
	}
	return rows, nil
}

func (s *accountService) Get(ctx context.Context, id uint) (*models.Account, error) {
	a, err := s.accounts.GetByID(ctx, id)
	return a, utils.Repo("AccountService.Get", "account", err)
}

func (s *accountService) checkUsername(ctx context.Context, op, username string, self uint) error {
	other, err := s.accounts.GetByUsername(ctx, username)
	switch {
	case errors.Is(err, utils.ErrNotFound):
		return nil
	case err != nil:
		return utils.E(utils.CodeInternal, op, "failed to check username", err)
	case other.ID != self:
		return utils.E(utils.CodeConflict, op, "username already taken", utils.ErrConflict)
	}
	return nil
}

func (s *accountService) setPassword(op string, a *models.Account, password string) error {
	hash, err := utils.HashPassword(password)
	if errors.Is(err, utils.ErrPasswordTooShort) {
		return utils.E(utils.CodeInvalidArgument, op, "password must be at least 8 characters", err)
	}
	if err != nil {
		return utils.E(utils.CodeInternal, op, "failed to hash password", err)
	}
	a.PasswordHash = hash
	return nil
}

func (s *accountService) Create(ctx context.Context, in AccountInput) (*models.Account, error) {
	const op = "AccountService.Create"

	a := &models.Account{}
	in.apply(a)
	if err := models.Validate(a); err != nil {
		return nil, utils.E(utils.CodeInvalidArgument, op, err.Error(), err)
	}
	if err := s.setPassword(op, a, in.Password); err != nil {
		return nil, err
	}
	if err := s.checkUsername(ctx, op, a.Username, 0); err != nil {
		return nil, err
	}
	if err := s.accounts.Create(ctx, a); err != nil {
		return nil, utils.Repo(op, "account", err)
	}
	return a, nil
}

func (s *accountService) Update(ctx context.Context, id uint, in AccountInput) (*models.Account, error) {
	const op = "AccountService.Update"

	a, err := s.accounts.GetByID(ctx, id)
	if err != nil {
		return nil, utils.Repo(op, "account", err)
	}
	in.apply(a)
	if err := models.Validate(a); err != nil {
		return nil, utils.E(utils.CodeInvalidArgument, op, err.Error(), err)
	}
	if in.Password != "" {
		if err := s.setPassword(op, a, in.Password); err != nil {
			return nil, err
		}
	}
	if err := s.checkUsername(ctx, op, a.Username, a.ID); err != nil {
		return nil, err
	}
	if err := s.accounts.Save(ctx, a); err != nil {
		return nil, utils.Repo(op, "account", err)
	}
	return a, nil
}

// Delete removes the account together with its profile and every file the
// profile tree referenced.
func (s *accountService) Delete(ctx context.Context, id uint) error {
	const op = "AccountService.Delete"

	var files []string
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		if _, err := s.accounts.GetByID(ctx, id); err != nil {
			return err
		}
		p, err := s.profiles.GetByAccountID(ctx, id)
		switch {
		case err == nil:
			if files, err = deleteProfile(ctx, s.profiles, p.ID); err != nil {
				return err
			}
		case !errors.Is(err, utils.ErrNotFound):
			return err
		}
		return s.accounts.Delete(ctx, id)
	})
	if err != nil {
		return utils.Repo(op, "account", err)
	}
	s.guard.Remove(ctx, op, files...)
	return nil
}

func (s *accountService) Authenticate(ctx context.Context, username, password string) (*models.Account, error) {
	const op = "AccountService.Authenticate"

	if strings.TrimSpace(username) == "" || password == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "username and password are required", nil)
	}
	a, err := s.accounts.GetByUsername(ctx, strings.TrimSpace(username))
	if errors.Is(err, utils.ErrNotFound) {
		return nil, utils.E(utils.CodeUnauthorized, op, "invalid credentials", nil)
	}
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to load account", err)
	}
	if err := utils.CheckPassword(a.PasswordHash, password); err != nil {
		return nil, utils.E(utils.CodeUnauthorized, op, "invalid credentials", nil)
	}
	return a, nil
}
