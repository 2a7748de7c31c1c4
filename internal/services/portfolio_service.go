package services

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/yoockh/portfolio/internal/cache"
	"github.com/yoockh/portfolio/internal/models"
	pgrepo "github.com/yoockh/portfolio/internal/repositories/postgres"
	"github.com/yoockh/portfolio/internal/utils"
	"gorm.io/datatypes"
)

// Page data is cached under PageCacheKey plus the current generation.
// InvalidatePage bumps the generation, so a snapshot loaded before a write
// can only land under a key nobody reads anymore.
const (
	PageCacheKey      = "page"
	pageGenerationKey = "page:generation"
)

func pageKey(gen int64) string {
	return PageCacheKey + ":" + strconv.FormatInt(gen, 10)
}

// MsgContactSent confirms a stored contact message to the visitor.
const MsgContactSent = "Your message has been sent successfully! I will get back to you soon."

// MsgNoProfile is shown to visitors when a contact form arrives and no
// profile exists to own it.
const MsgNoProfile = "Could not submit form, no user profile found."

// PageData is everything the public page renders. Profile is nil when no
// profile exists yet.
type PageData struct {
	ProfileID uint            `json:"profile_id"`
	Profile   *models.Profile `json:"profile"`
}

type ContactInput struct {
	Name      string `form:"name"`
	Email     string `form:"email"`
	Subject   string `form:"subject"`
	Message   string `form:"message"`
	ClientIP  string `form:"-"`
	UserAgent string `form:"-"`
}

type PortfolioOptions struct {
	// ProfileID selects the profile shown on the page. Zero picks the lowest id.
	ProfileID uint
	CacheTTL  time.Duration
}

type PortfolioService interface {
	ResolveProfileID(ctx context.Context) (uint, error)
	Page(ctx context.Context) (*PageData, error)
	SubmitContact(ctx context.Context, in ContactInput) (*models.Contact, error)
	InvalidatePage(ctx context.Context)
}

type portfolioService struct {
	profiles pgrepo.ProfileRepository
	contacts pgrepo.ContactRepository
	cache    cache.Cache
	opts     PortfolioOptions
	logger   *logrus.Logger
}

func NewPortfolioService(
	profiles pgrepo.ProfileRepository,
	contacts pgrepo.ContactRepository,
	c cache.Cache,
	opts PortfolioOptions,
	l *logrus.Logger,
) PortfolioService {
	if l == nil {
		l = logrus.New()
	}
	return &portfolioService{profiles: profiles, contacts: contacts, cache: c, opts: opts, logger: l}
}

// ResolveProfileID returns the configured profile id, or the lowest existing
// one when none is configured. Zero means there is no profile to show.
func (s *portfolioService) ResolveProfileID(ctx context.Context) (uint, error) {
	const op = "PortfolioService.ResolveProfileID"

	if s.opts.ProfileID != 0 {
		ok, err := s.profiles.Exists(ctx, s.opts.ProfileID)
		if err != nil {
			return 0, utils.E(utils.CodeInternal, op, "failed to check profile", err)
		}
		if !ok {
			return 0, nil
		}
		return s.opts.ProfileID, nil
	}
	id, total, err := s.profiles.First(ctx)
	if err != nil {
		return 0, utils.E(utils.CodeInternal, op, "failed to select profile", err)
	}
	if total > 1 {
		s.logger.WithFields(logrus.Fields{
			"profiles":   total,
			"profile_id": id,
		}).Warn("several profiles exist and PROFILE_ID is not set; showing the lowest id")
	}
	return id, nil
}

func (s *portfolioService) Page(ctx context.Context) (*PageData, error) {
	const op = "PortfolioService.Page"

	gen, cacheable := s.pageGeneration(ctx, op)
	if cacheable {
		var cached PageData
		hit, err := s.cache.GetJSON(ctx, pageKey(gen), &cached)
		if err != nil {
			s.logger.WithError(err).WithField("op", op).Warn("page cache read failed")
		} else if hit {
			return &cached, nil
		}
	}

	id, err := s.ResolveProfileID(ctx)
	if err != nil {
		return nil, err
	}
	data := &PageData{ProfileID: id}
	if id != 0 {
		p, err := s.profiles.LoadPage(ctx, id)
		switch {
		case errors.Is(err, utils.ErrNotFound):
			data.ProfileID = 0
		case err != nil:
			return nil, utils.E(utils.CodeInternal, op, "failed to load page", err)
		default:
			data.Profile = p
		}
	}

	if !cacheable || data.Profile == nil {
		return data, nil
	}
	// an admin write during the load moved the generation on
	if now, ok := s.pageGeneration(ctx, op); !ok || now != gen {
		return data, nil
	}
	if err := s.cache.SetJSON(ctx, pageKey(gen), data, s.opts.CacheTTL); err != nil {
		s.logger.WithError(err).WithField("op", op).Warn("page cache write failed")
	}
	return data, nil
}

// pageGeneration reports false when there is no usable cache.
func (s *portfolioService) pageGeneration(ctx context.Context, op string) (int64, bool) {
	if s.cache == nil {
		return 0, false
	}
	gen, err := s.cache.Generation(ctx, pageGenerationKey)
	if err != nil {
		s.logger.WithError(err).WithField("op", op).Warn("page cache generation read failed")
		return 0, false
	}
	return gen, true
}

// SubmitContact stores a message for the selected profile. With no profile
// nothing is stored and the error carries MsgNoProfile.
func (s *portfolioService) SubmitContact(ctx context.Context, in ContactInput) (*models.Contact, error) {
	const op = "PortfolioService.SubmitContact"

	id, err := s.ResolveProfileID(ctx)
	if err != nil {
		return nil, err
	}
	if id == 0 {
		return nil, utils.E(utils.CodeNotFound, op, MsgNoProfile, utils.ErrNotFound)
	}

	c := &models.Contact{
		ProfileID: id,
		Name:      strings.TrimSpace(in.Name),
		Email:     strings.TrimSpace(in.Email),
		Subject:   strings.TrimSpace(in.Subject),
		Message:   strings.TrimSpace(in.Message),
	}
	if err := models.Validate(c); err != nil {
		return nil, utils.E(utils.CodeInvalidArgument, op, err.Error(), err)
	}
	if in.ClientIP != "" || in.UserAgent != "" {
		meta, err := json.Marshal(models.ContactMeta{ClientIP: in.ClientIP, UserAgent: in.UserAgent})
		if err == nil {
			c.Meta = datatypes.JSON(meta)
		}
	}
	if err := s.contacts.Insert(ctx, c); err != nil {
		return nil, utils.Repo(op, "contact", err)
	}
	s.logger.WithFields(logrus.Fields{"op": op, "profile_id": id, "contact_id": c.ID}).Info("contact message stored")
	return c, nil
}

func (s *portfolioService) InvalidatePage(ctx context.Context) {
	if s.cache == nil {
		return
	}
	gen, err := s.cache.Bump(ctx, pageGenerationKey)
	if err != nil {
		s.logger.WithError(err).Warn("page cache invalidation failed")
		return
	}
	if err := s.cache.Del(ctx, pageKey(gen-1)); err != nil {
		s.logger.WithError(err).Debug("dropping previous page generation failed")
	}
}
