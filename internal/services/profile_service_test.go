package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yoockh/portfolio/internal/models"
	"github.com/yoockh/portfolio/internal/utils"
)

func profileInput(p *models.Profile) ProfileInput {
	return ProfileInput{
		Designation: p.Designation,
		Description: p.Description,
		AboutMe:     p.AboutMe,
		Experience:  p.Experience,
		Location:    p.Location,
		GitHub:      p.GitHub,
	}
}

func TestProfileService_UpdateReplacesImage(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	p := e.seedProfile(t, "ana")
	svc := e.profileService()

	got, err := svc.Update(ctx, p.ID, profileInput(p), ProfileFiles{Image1: upload("New Hero.JPG", "img")})
	require.NoError(t, err)

	assert.NotEqual(t, p.Image1, got.Image1)
	assert.Regexp(t, `^profile_images/new-hero-[0-9a-f]{8}\.jpg$`, got.Image1)
	assert.False(t, e.store.has(p.Image1), "old image removed")
	assert.True(t, e.store.has(got.Image1), "new image kept")
	assert.True(t, e.store.has(p.Image2))
	assert.True(t, e.store.has(p.CV))

	stored, err := e.profiles.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, got.Image1, stored.Image1)
}

func TestProfileService_UpdateWithoutFilesDeletesNothing(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	p := e.seedProfile(t, "ana")

	in := profileInput(p)
	in.Location = "Bandung"
	got, err := e.profileService().Update(ctx, p.ID, in, ProfileFiles{})
	require.NoError(t, err)

	assert.Equal(t, "Bandung", got.Location)
	assert.Empty(t, e.store.deleted)
}

func TestProfileService_InvalidUpdateStoresNothing(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	p := e.seedProfile(t, "ana")

	in := profileInput(p)
	in.GitHub = "not a url"
	_, err := e.profileService().Update(ctx, p.ID, in, ProfileFiles{CV: upload("cv.pdf", "pdf")})
	require.Error(t, err)

	assert.True(t, utils.IsCode(err, utils.CodeInvalidArgument))
	assert.Contains(t, utils.PublicMessage(err), "github")
	assert.Len(t, e.store.keys(), 3)
	assert.Empty(t, e.store.deleted)
}

func TestProfileService_Create(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	svc := e.profileService()

	acc := &models.Account{Username: "bo"}
	require.NoError(t, e.accounts.Create(ctx, acc))

	in := ProfileInput{Designation: "Dev", Description: "d", AboutMe: "a", Experience: "1 year", Location: "Here"}

	_, err := svc.Create(ctx, acc.ID, in, ProfileFiles{Image1: upload("a.jpg", "1")})
	require.Error(t, err)
	assert.True(t, utils.IsCode(err, utils.CodeInvalidArgument))
	assert.Empty(t, e.store.keys())

	files := ProfileFiles{Image1: upload("a.jpg", "1"), Image2: upload("b.jpg", "2"), CV: upload("cv.pdf", "3")}
	p, err := svc.Create(ctx, acc.ID, in, files)
	require.NoError(t, err)
	assert.NotZero(t, p.ID)
	assert.Len(t, e.store.keys(), 3)

	files = ProfileFiles{Image1: upload("a.jpg", "1"), Image2: upload("b.jpg", "2"), CV: upload("cv.pdf", "3")}
	_, err = svc.Create(ctx, acc.ID, in, files)
	assert.True(t, utils.IsCode(err, utils.CodeConflict))

	_, err = svc.Create(ctx, 999, in, files)
	assert.True(t, utils.IsCode(err, utils.CodeNotFound))
}

func TestProfileService_DeleteRemovesOwnedFiles(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	p := e.seedProfile(t, "ana")
	other := e.seedProfile(t, "bo")

	_, err := e.toolService().Create(ctx, ToolInput{ProfileID: p.ID, Name: "Go"}, upload("go.svg", "<svg/>"))
	require.NoError(t, err)
	_, err = e.projectService().Create(ctx, ProjectInput{ProfileID: p.ID, Name: "App", Description: "d"}, upload("app.png", "png"))
	require.NoError(t, err)

	require.NoError(t, e.profileService().Delete(ctx, p.ID))

	assert.ElementsMatch(t, []string{other.Image1, other.Image2, other.CV}, e.store.keys())
	_, err = e.profiles.GetByID(ctx, p.ID)
	assert.ErrorIs(t, err, utils.ErrNotFound)

	err = e.profileService().Delete(ctx, p.ID)
	assert.True(t, utils.IsCode(err, utils.CodeNotFound))
}
