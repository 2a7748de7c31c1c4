package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yoockh/portfolio/internal/cache"
	"github.com/yoockh/portfolio/internal/logger"
	"github.com/yoockh/portfolio/internal/models"
	pgrepo "github.com/yoockh/portfolio/internal/repositories/postgres"
	"github.com/yoockh/portfolio/internal/utils"
)

func (e *env) portfolioService(c cache.Cache, opts PortfolioOptions) PortfolioService {
	return NewPortfolioService(e.profiles, e.contacts, c, opts, logger.Discard())
}

func validContact() ContactInput {
	return ContactInput{Name: "Visitor", Email: "visitor@example.com", Subject: "Hello", Message: "Nice work", ClientIP: "10.0.0.1"}
}

func TestPortfolioService_SubmitContact(t *testing.T) {
	ctx := context.Background()

	t.Run("stores one message for the profile", func(t *testing.T) {
		e := newEnv(t)
		p := e.seedProfile(t, "ana")

		c, err := e.portfolioService(nil, PortfolioOptions{}).SubmitContact(ctx, validContact())
		require.NoError(t, err)
		assert.Equal(t, p.ID, c.ProfileID)
		assert.JSONEq(t, `{"client_ip":"10.0.0.1"}`, string(c.Meta))

		var n int64
		require.NoError(t, e.db.Model(&models.Contact{}).Where("profile_id = ?", p.ID).Count(&n).Error)
		assert.EqualValues(t, 1, n)
	})

	t.Run("no profile stores nothing", func(t *testing.T) {
		e := newEnv(t)

		_, err := e.portfolioService(nil, PortfolioOptions{}).SubmitContact(ctx, validContact())
		require.Error(t, err)
		assert.True(t, utils.IsCode(err, utils.CodeNotFound))
		assert.Equal(t, MsgNoProfile, utils.PublicMessage(err))

		var n int64
		require.NoError(t, e.db.Model(&models.Contact{}).Count(&n).Error)
		assert.Zero(t, n)
	})

	t.Run("invalid fields store nothing", func(t *testing.T) {
		e := newEnv(t)
		e.seedProfile(t, "ana")

		in := validContact()
		in.Email = "not-an-email"
		in.Subject = ""
		_, err := e.portfolioService(nil, PortfolioOptions{}).SubmitContact(ctx, in)
		require.Error(t, err)
		assert.True(t, utils.IsCode(err, utils.CodeInvalidArgument))
		assert.Contains(t, utils.PublicMessage(err), "email")
		assert.Contains(t, utils.PublicMessage(err), "subject is required")

		var n int64
		require.NoError(t, e.db.Model(&models.Contact{}).Count(&n).Error)
		assert.Zero(t, n)
	})
}

func TestPortfolioService_ResolveProfileID(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)

	id, err := e.portfolioService(nil, PortfolioOptions{}).ResolveProfileID(ctx)
	require.NoError(t, err)
	assert.Zero(t, id)

	first := e.seedProfile(t, "ana")
	second := e.seedProfile(t, "bo")

	id, err = e.portfolioService(nil, PortfolioOptions{}).ResolveProfileID(ctx)
	require.NoError(t, err)
	assert.Equal(t, first.ID, id)

	id, err = e.portfolioService(nil, PortfolioOptions{ProfileID: second.ID}).ResolveProfileID(ctx)
	require.NoError(t, err)
	assert.Equal(t, second.ID, id)

	id, err = e.portfolioService(nil, PortfolioOptions{ProfileID: 999}).ResolveProfileID(ctx)
	require.NoError(t, err)
	assert.Zero(t, id)
}

func TestPortfolioService_PageOrderedAndCached(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	p := e.seedProfile(t, "ana")
	require.NoError(t, e.db.Create(&[]models.Skill{
		{ProfileID: p.ID, Name: "Third", Percentage: 10, Order: 3},
		{ProfileID: p.ID, Name: "First", Percentage: 90, Order: 1},
		{ProfileID: p.ID, Name: "Second", Percentage: 50, Order: 2},
	}).Error)

	mem := cache.NewMemoryCache(time.Minute, time.Minute)
	svc := e.portfolioService(mem, PortfolioOptions{CacheTTL: time.Minute})

	page, err := svc.Page(ctx)
	require.NoError(t, err)
	require.NotNil(t, page.Profile)
	require.Len(t, page.Profile.Skills, 3)
	assert.Equal(t, []string{"First", "Second", "Third"}, []string{
		page.Profile.Skills[0].Name, page.Profile.Skills[1].Name, page.Profile.Skills[2].Name,
	})
	require.NotNil(t, page.Profile.Account)
	assert.Equal(t, "ana", page.Profile.Account.Username)

	require.NoError(t, e.db.Model(&models.Profile{}).Where("id = ?", p.ID).Update("location", "Bandung").Error)

	cached, err := svc.Page(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Jakarta", cached.Profile.Location, "served from cache")

	svc.InvalidatePage(ctx)
	fresh, err := svc.Page(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Bandung", fresh.Profile.Location)
}

// writeDuringLoad runs once, after LoadPage has read its snapshot.
type writeDuringLoad struct {
	pgrepo.ProfileRepository
	write func()
}

func (r *writeDuringLoad) LoadPage(ctx context.Context, id uint) (*models.Profile, error) {
	p, err := r.ProfileRepository.LoadPage(ctx, id)
	if r.write != nil {
		w := r.write
		r.write = nil
		w()
	}
	return p, err
}

func TestPortfolioService_InvalidateDuringLoad(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	p := e.seedProfile(t, "ana")

	profiles := &writeDuringLoad{ProfileRepository: e.profiles}
	svc := NewPortfolioService(profiles, e.contacts, cache.NewMemoryCache(time.Minute, time.Minute),
		PortfolioOptions{CacheTTL: time.Minute}, logger.Discard())
	profiles.write = func() {
		require.NoError(t, e.db.Model(&models.Profile{}).Where("id = ?", p.ID).Update("designation", "Staff Engineer").Error)
		svc.InvalidatePage(ctx)
	}

	first, err := svc.Page(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Backend Engineer", first.Profile.Designation)

	second, err := svc.Page(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Staff Engineer", second.Profile.Designation)

	// the fresh page is cached again
	require.NoError(t, e.db.Model(&models.Profile{}).Where("id = ?", p.ID).Update("designation", "Principal").Error)
	third, err := svc.Page(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Staff Engineer", third.Profile.Designation)
}

func TestPortfolioService_EmptyPage(t *testing.T) {
	e := newEnv(t)

	page, err := e.portfolioService(cache.NewMemoryCache(time.Minute, time.Minute), PortfolioOptions{}).Page(context.Background())
	require.NoError(t, err)
	assert.Nil(t, page.Profile)
	assert.Zero(t, page.ProfileID)
}
