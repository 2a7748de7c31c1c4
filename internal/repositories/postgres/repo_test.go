package postgres

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yoockh/portfolio/internal/models"
	"github.com/yoockh/portfolio/internal/testutil"
	"github.com/yoockh/portfolio/internal/utils"
	"gorm.io/gorm"
)

func seedProject(t *testing.T, db *gorm.DB, profileID uint, name string, order int, techs ...string) *models.Project {
	t.Helper()
	p := &models.Project{ProfileID: profileID, Name: name, Description: "d", Image: "project_images/" + name + ".png", Order: order}
	require.NoError(t, db.Create(p).Error)
	for i, name := range techs {
		var tech models.Technology
		require.NoError(t, db.Where(models.Technology{Name: name}).FirstOrCreate(&tech).Error)
		// reversed order so badge order differs from insertion order
		require.NoError(t, db.Create(&models.ProjectTechnology{ProjectID: p.ID, TechnologyID: tech.ID, Order: len(techs) - i}).Error)
	}
	return p
}

func TestProfileRepo_LoadPageOrdersEveryCollection(t *testing.T) {
	db := testutil.NewDB(t)
	ctx := context.Background()
	prof := testutil.SeedProfile(t, db, "ana")

	for _, o := range []int{3, 1, 2} {
		require.NoError(t, db.Create(&models.Experience{ProfileID: prof.ID, Name: "job", Company: "co", Order: o}).Error)
		require.NoError(t, db.Create(&models.Skill{ProfileID: prof.ID, Name: "go", Percentage: 90, Order: o}).Error)
		require.NoError(t, db.Create(&models.Tool{ProfileID: prof.ID, Name: "vim", Image: "tool_icons/vim.svg", Order: o}).Error)
	}
	seedProject(t, db, prof.ID, "second", 2, "Go", "Postgres")
	seedProject(t, db, prof.ID, "first", 1, "Redis")

	page, err := NewProfileRepo(db).LoadPage(ctx, prof.ID)
	require.NoError(t, err)

	orders := func(n int, get func(i int) int) []int {
		out := make([]int, n)
		for i := range out {
			out[i] = get(i)
		}
		return out
	}
	assert.Equal(t, []int{1, 2, 3}, orders(len(page.Experiences), func(i int) int { return page.Experiences[i].Order }))
	assert.Equal(t, []int{1, 2, 3}, orders(len(page.Skills), func(i int) int { return page.Skills[i].Order }))
	assert.Equal(t, []int{1, 2, 3}, orders(len(page.Tools), func(i int) int { return page.Tools[i].Order }))

	require.Len(t, page.Projects, 2)
	assert.Equal(t, "first", page.Projects[0].Name)
	assert.Equal(t, "second", page.Projects[1].Name)

	techs := page.Projects[1].Technologies
	require.Len(t, techs, 2)
	require.NotNil(t, techs[0].Technology)
	assert.Equal(t, "Postgres", techs[0].Technology.Name)
	assert.Equal(t, "Go", techs[1].Technology.Name)

	require.NotNil(t, page.Account)
	assert.Equal(t, "ana", page.Account.Username)
	assert.Equal(t, "ana@example.com", page.Account.Email)
	assert.False(t, page.Account.IsStaff, "staff flag stays out of the page")
	assert.True(t, page.Account.CreatedAt.IsZero())
}

func TestProfileRepo_First(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewProfileRepo(db)

	id, total, err := repo.First(context.Background())
	require.NoError(t, err)
	assert.Zero(t, id)
	assert.Zero(t, total)

	a := testutil.SeedProfile(t, db, "ana")
	testutil.SeedProfile(t, db, "ben")

	id, total, err = repo.First(context.Background())
	require.NoError(t, err)
	assert.Equal(t, a.ID, id)
	assert.EqualValues(t, 2, total)
}

func TestProfileRepo_DeleteCascades(t *testing.T) {
	db := testutil.NewDB(t)
	ctx := context.Background()
	prof := testutil.SeedProfile(t, db, "ana")
	require.NoError(t, db.Create(&models.Skill{ProfileID: prof.ID, Name: "go", Percentage: 50}).Error)
	require.NoError(t, db.Create(&models.Contact{ProfileID: prof.ID, Name: "n", Email: "n@example.com", Subject: "s", Message: "m"}).Error)
	seedProject(t, db, prof.ID, "app", 1, "Go")

	require.NoError(t, NewProfileRepo(db).Delete(ctx, prof.ID))

	for _, m := range []any{&models.Profile{}, &models.Skill{}, &models.Contact{}, &models.Project{}, &models.ProjectTechnology{}} {
		var n int64
		require.NoError(t, db.Model(m).Count(&n).Error)
		assert.Zero(t, n, "%T rows left", m)
	}
	var techs int64
	require.NoError(t, db.Model(&models.Technology{}).Count(&techs).Error)
	assert.EqualValues(t, 1, techs)

	assert.ErrorIs(t, NewProfileRepo(db).Delete(ctx, prof.ID), utils.ErrNotFound)
}

func TestProjectRepo_DeleteKeepsTechnologies(t *testing.T) {
	db := testutil.NewDB(t)
	ctx := context.Background()
	prof := testutil.SeedProfile(t, db, "ana")
	p := seedProject(t, db, prof.ID, "app", 1, "Go", "Redis")

	require.NoError(t, NewProjectRepo(db).Delete(ctx, p.ID))

	var joins, techs int64
	require.NoError(t, db.Model(&models.ProjectTechnology{}).Count(&joins).Error)
	require.NoError(t, db.Model(&models.Technology{}).Count(&techs).Error)
	assert.Zero(t, joins)
	assert.EqualValues(t, 2, techs)
}

func TestProjectRepo_DuplicatePairConflicts(t *testing.T) {
	db := testutil.NewDB(t)
	ctx := context.Background()
	prof := testutil.SeedProfile(t, db, "ana")
	p := seedProject(t, db, prof.ID, "app", 1, "Go")
	tech, err := NewTechnologyRepo(db).GetByName(ctx, "Go")
	require.NoError(t, err)

	err = NewProjectRepo(db).AttachTechnology(ctx, &models.ProjectTechnology{ProjectID: p.ID, TechnologyID: tech.ID})
	require.Error(t, err)
	assert.True(t, errors.Is(err, utils.ErrConflict), "got %v", err)
}

func TestOrderedRepo_ListSearchAndReorder(t *testing.T) {
	db := testutil.NewDB(t)
	ctx := context.Background()
	ana := testutil.SeedProfile(t, db, "ana")
	ben := testutil.SeedProfile(t, db, "ben")
	repo := NewExperienceRepo(db)

	a := &models.Experience{ProfileID: ana.ID, Name: "Engineer", Company: "Acme", Order: 1}
	b := &models.Experience{ProfileID: ana.ID, Name: "BSc", Company: "University", Order: 2}
	c := &models.Experience{ProfileID: ben.ID, Name: "Designer", Company: "Studio", Order: 1}
	for _, e := range []*models.Experience{a, b, c} {
		require.NoError(t, repo.Create(ctx, e))
	}

	rows, err := repo.List(ctx, ListFilter{ProfileID: ana.ID})
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, a.ID, rows[0].ID)

	rows, err = repo.List(ctx, ListFilter{Query: "univ"})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, b.ID, rows[0].ID)

	rows, err = repo.List(ctx, ListFilter{Query: "BEN"})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, c.ID, rows[0].ID)

	require.NoError(t, repo.Reorder(ctx, []OrderUpdate{{ID: a.ID, Order: 5}, {ID: b.ID, Order: 0}}))
	rows, err = repo.List(ctx, ListFilter{ProfileID: ana.ID})
	require.NoError(t, err)
	assert.Equal(t, []uint{b.ID, a.ID}, []uint{rows[0].ID, rows[1].ID})

	err = repo.Reorder(ctx, []OrderUpdate{{ID: a.ID, Order: 9}, {ID: 999, Order: 1}})
	assert.ErrorIs(t, err, utils.ErrNotFound)
	got, err := repo.GetByID(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, 5, got.Order, "failed batch must not apply partially")
}

func TestTransactor_RollsBack(t *testing.T) {
	db := testutil.NewDB(t)
	ctx := context.Background()
	repo := NewTechnologyRepo(db)

	boom := errors.New("boom")
	err := NewTransactor(db).WithinTx(ctx, func(ctx context.Context) error {
		require.NoError(t, repo.Create(ctx, &models.Technology{Name: "Go"}))
		return boom
	})
	assert.ErrorIs(t, err, boom)

	_, err = repo.GetByName(ctx, "Go")
	assert.ErrorIs(t, err, utils.ErrNotFound)
}

func TestContactRepo_NewestFirst(t *testing.T) {
	db := testutil.NewDB(t)
	ctx := context.Background()
	prof := testutil.SeedProfile(t, db, "ana")
	repo := NewContactRepo(db)

	first := &models.Contact{ProfileID: prof.ID, Name: "a", Email: "a@example.com", Subject: "hi", Message: "m"}
	second := &models.Contact{ProfileID: prof.ID, Name: "b", Email: "b@example.com", Subject: "hello", Message: "m"}
	require.NoError(t, repo.Insert(ctx, first))
	require.NoError(t, repo.Insert(ctx, second))
	assert.False(t, first.CreatedAt.IsZero())

	rows, err := repo.List(ctx, ListFilter{ProfileID: prof.ID})
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, second.ID, rows[0].ID)

	require.NoError(t, repo.Delete(ctx, first.ID))
	_, err = repo.GetByID(ctx, first.ID)
	assert.ErrorIs(t, err, utils.ErrNotFound)
}
