package services

import (
	"bytes"
	"context"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yoockh/portfolio/internal/logger"
	"github.com/yoockh/portfolio/internal/models"
)

func TestStaleFiles(t *testing.T) {
	a := &models.Profile{Image1: "profile_images/a.jpg", Image2: "profile_images/about.jpg", CV: "cvs/cv.pdf"}

	t.Run("replaced file is stale", func(t *testing.T) {
		b := *a
		b.Image1 = "profile_images/b.jpg"
		assert.Equal(t, []string{"profile_images/a.jpg"}, StaleFiles(a, &b))
	})

	t.Run("same file is kept", func(t *testing.T) {
		b := *a
		assert.Empty(t, StaleFiles(a, &b))
	})

	t.Run("new record has nothing stale", func(t *testing.T) {
		assert.Empty(t, StaleFiles(nil, a))
	})

	t.Run("path moved to another field is kept", func(t *testing.T) {
		b := *a
		b.Image1 = a.Image2
		b.Image2 = a.Image1
		assert.Empty(t, StaleFiles(a, &b))
	})

	t.Run("empty paths are ignored", func(t *testing.T) {
		assert.Empty(t, StaleFiles(&models.Tool{}, &models.Tool{Image: "tool_icons/go.svg"}))
	})
}

func TestOwnedFiles(t *testing.T) {
	got := OwnedFiles(
		&models.Tool{Image: "tool_icons/go.svg"},
		&models.Project{Image: "project_images/app.png"},
		nil,
	)
	assert.ElementsMatch(t, []string{"tool_icons/go.svg", "project_images/app.png"}, got)
}

func TestOwnedFilesTypedNil(t *testing.T) {
	var (
		profile *models.Profile
		tool    *models.Tool
		project *models.Project
	)
	require.NotPanics(t, func() {
		assert.Empty(t, OwnedFiles(profile, tool, project))
		assert.Empty(t, StaleFiles(profile, &models.Profile{CV: "cvs/a.pdf"}))
		assert.Equal(t, []string{"tool_icons/go.svg"}, StaleFiles(&models.Tool{Image: "tool_icons/go.svg"}, tool))
	})
}

func TestFileGuardLogsAndContinues(t *testing.T) {
	var buf bytes.Buffer
	store := newMemStore("a", "b")
	store.failDelete = true
	g := NewFileGuard(store, logger.NewWithOutput(&buf, "debug", "json"))

	g.Remove(context.Background(), "Test.Remove", "a", "", "b")

	assert.True(t, store.has("a"))
	assert.Contains(t, buf.String(), "file cleanup failed")
	assert.Contains(t, buf.String(), `"op":"Test.Remove"`)
}

func TestFileGuardNil(t *testing.T) {
	var g *FileGuard
	require.NotPanics(t, func() { g.Remove(context.Background(), "op", "x") })

	g = NewFileGuard(nil, logrus.New())
	require.NotPanics(t, func() { g.AfterDelete(context.Background(), "op", &models.Tool{Image: "x"}) })
}
