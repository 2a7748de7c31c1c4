package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yoockh/portfolio/internal/models"
	"github.com/yoockh/portfolio/internal/utils"
)

func TestAccountService_CreateAndAuthenticate(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	svc := e.accountService()

	_, err := svc.Create(ctx, AccountInput{Username: "admin", Password: "short"})
	assert.True(t, utils.IsCode(err, utils.CodeInvalidArgument))

	acc, err := svc.Create(ctx, AccountInput{Username: "admin", Email: "admin@example.com", IsStaff: true, Password: "correct horse"})
	require.NoError(t, err)
	assert.NotEmpty(t, acc.PasswordHash)
	assert.NotEqual(t, "correct horse", acc.PasswordHash)

	_, err = svc.Create(ctx, AccountInput{Username: "admin", Password: "another pass"})
	assert.True(t, utils.IsCode(err, utils.CodeConflict))

	got, err := svc.Authenticate(ctx, "admin", "correct horse")
	require.NoError(t, err)
	assert.Equal(t, acc.ID, got.ID)

	_, err = svc.Authenticate(ctx, "admin", "wrong password")
	assert.True(t, utils.IsCode(err, utils.CodeUnauthorized))
	_, err = svc.Authenticate(ctx, "nobody", "correct horse")
	assert.True(t, utils.IsCode(err, utils.CodeUnauthorized))
}

func TestAccountService_UpdateKeepsPasswordWhenEmpty(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	svc := e.accountService()

	acc, err := svc.Create(ctx, AccountInput{Username: "admin", Password: "correct horse"})
	require.NoError(t, err)

	_, err = svc.Update(ctx, acc.ID, AccountInput{Username: "admin", FirstName: "Ana"})
	require.NoError(t, err)
	_, err = svc.Authenticate(ctx, "admin", "correct horse")
	require.NoError(t, err)

	_, err = svc.Update(ctx, acc.ID, AccountInput{Username: "admin", Password: "battery staple"})
	require.NoError(t, err)
	_, err = svc.Authenticate(ctx, "admin", "battery staple")
	require.NoError(t, err)
}

func TestAccountService_DeleteCascades(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	p := e.seedProfile(t, "ana")

	tool, err := e.toolService().Create(ctx, ToolInput{ProfileID: p.ID, Name: "Go"}, upload("go.svg", "<svg/>"))
	require.NoError(t, err)
	require.NoError(t, e.db.Create(&models.Skill{ProfileID: p.ID, Name: "Go", Percentage: 90}).Error)

	require.NoError(t, e.accountService().Delete(ctx, p.AccountID))

	assert.Empty(t, e.store.keys())
	assert.Contains(t, e.store.deleted, tool.Image)

	var n int64
	require.NoError(t, e.db.Model(&models.Skill{}).Count(&n).Error)
	assert.Zero(t, n)
	require.NoError(t, e.db.Model(&models.Profile{}).Count(&n).Error)
	assert.Zero(t, n)
	require.NoError(t, e.db.Model(&models.Account{}).Count(&n).Error)
	assert.Zero(t, n)
}

func TestAccountService_DeleteWithoutProfile(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	svc := e.accountService()

	acc, err := svc.Create(ctx, AccountInput{Username: "solo", Password: "correct horse"})
	require.NoError(t, err)
	require.NoError(t, svc.Delete(ctx, acc.ID))

	err = svc.Delete(ctx, acc.ID)
	assert.True(t, utils.IsCode(err, utils.CodeNotFound))
}
