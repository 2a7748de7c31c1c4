package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yoockh/portfolio/internal/models"
	"github.com/yoockh/portfolio/internal/utils"
)

func TestProjectService_DeleteKeepsTechnologies(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	p := e.seedProfile(t, "ana")
	svc := e.projectService()
	techs := NewTechnologyService(e.technologies)

	goTech, err := techs.Create(ctx, "Go")
	require.NoError(t, err)
	pg, err := techs.Create(ctx, "PostgreSQL")
	require.NoError(t, err)

	proj, err := svc.Create(ctx, ProjectInput{ProfileID: p.ID, Name: "App", Description: "An app", LiveLink: "https://app.example.com"}, upload("shot.png", "png"))
	require.NoError(t, err)
	require.True(t, e.store.has(proj.Image))

	_, err = svc.AttachTechnology(ctx, proj.ID, goTech.ID, 1)
	require.NoError(t, err)
	_, err = svc.AttachTechnology(ctx, proj.ID, pg.ID, 0)
	require.NoError(t, err)

	rows, err := svc.ListTechnologies(ctx, proj.ID)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "PostgreSQL", rows[0].Technology.Name)

	require.NoError(t, svc.Delete(ctx, proj.ID))

	assert.False(t, e.store.has(proj.Image))
	var joins int64
	require.NoError(t, e.db.Model(&models.ProjectTechnology{}).Count(&joins).Error)
	assert.Zero(t, joins)
	_, err = techs.Get(ctx, goTech.ID)
	assert.NoError(t, err)
	_, err = techs.Get(ctx, pg.ID)
	assert.NoError(t, err)
}

func TestProjectService_AttachTwiceConflicts(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	p := e.seedProfile(t, "ana")
	svc := e.projectService()

	tech, err := NewTechnologyService(e.technologies).Create(ctx, "Go")
	require.NoError(t, err)
	proj, err := svc.Create(ctx, ProjectInput{ProfileID: p.ID, Name: "App", Description: "d"}, upload("a.png", "png"))
	require.NoError(t, err)

	_, err = svc.AttachTechnology(ctx, proj.ID, tech.ID, 0)
	require.NoError(t, err)
	_, err = svc.AttachTechnology(ctx, proj.ID, tech.ID, 5)
	require.Error(t, err)
	assert.True(t, utils.IsCode(err, utils.CodeConflict))

	_, err = svc.AttachTechnology(ctx, proj.ID, 999, 0)
	assert.True(t, utils.IsCode(err, utils.CodeNotFound))

	pt, err := svc.SetTechnologyOrder(ctx, proj.ID, tech.ID, 3)
	require.NoError(t, err)
	assert.Equal(t, 3, pt.Order)

	require.NoError(t, svc.DetachTechnology(ctx, proj.ID, tech.ID))
	err = svc.DetachTechnology(ctx, proj.ID, tech.ID)
	assert.True(t, utils.IsCode(err, utils.CodeNotFound))
}

func TestProjectService_UpdateReplacesImage(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	p := e.seedProfile(t, "ana")
	svc := e.projectService()

	proj, err := svc.Create(ctx, ProjectInput{ProfileID: p.ID, Name: "App", Description: "d"}, upload("a.png", "png"))
	require.NoError(t, err)
	old := proj.Image

	in := ProjectInput{ProfileID: p.ID, Name: "App v2", Description: "d"}
	got, err := svc.Update(ctx, proj.ID, in, upload("b.png", "png"))
	require.NoError(t, err)
	assert.False(t, e.store.has(old))
	assert.True(t, e.store.has(got.Image))

	got2, err := svc.Update(ctx, proj.ID, in, nil)
	require.NoError(t, err)
	assert.Equal(t, got.Image, got2.Image)
	assert.True(t, e.store.has(got.Image))
}

func TestProjectService_CreateRequiresImage(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	p := e.seedProfile(t, "ana")

	_, err := e.projectService().Create(ctx, ProjectInput{ProfileID: p.ID, Name: "App", Description: "d"}, nil)
	require.Error(t, err)
	assert.True(t, utils.IsCode(err, utils.CodeInvalidArgument))
	assert.Contains(t, utils.PublicMessage(err), "image is required")
}
