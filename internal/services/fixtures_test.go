package services

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"sync"
	"testing"

	"github.com/yoockh/portfolio/internal/logger"
	"github.com/yoockh/portfolio/internal/models"
	pgrepo "github.com/yoockh/portfolio/internal/repositories/postgres"
	"github.com/yoockh/portfolio/internal/testutil"
	"gorm.io/gorm"
)

// memStore is an in-memory storage.Storage.
type memStore struct {
	mu         sync.Mutex
	files      map[string][]byte
	deleted    []string
	failDelete bool
}

func newMemStore(keys ...string) *memStore {
	m := &memStore{files: map[string][]byte{}}
	for _, k := range keys {
		m.files[k] = []byte("x")
	}
	return m
}

func (m *memStore) Upload(_ context.Context, key, _ string, r io.Reader) (string, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.files[key] = b
	return key, nil
}

func (m *memStore) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failDelete {
		return errors.New("bucket unavailable")
	}
	delete(m.files, key)
	m.deleted = append(m.deleted, key)
	return nil
}

func (m *memStore) URL(key string) string { return "/media/" + key }

func (m *memStore) has(key string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.files[key]
	return ok
}

func (m *memStore) keys() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, 0, len(m.files))
	for k := range m.files {
		out = append(out, k)
	}
	return out
}

func upload(name, body string) *Upload {
	return &Upload{FileName: name, ContentType: "application/octet-stream", Size: int64(len(body)), Body: bytes.NewBufferString(body)}
}

type env struct {
	db    *gorm.DB
	store *memStore
	guard *FileGuard

	profiles     pgrepo.ProfileRepository
	accounts     pgrepo.AccountRepository
	tools        pgrepo.ToolRepository
	projects     pgrepo.ProjectRepository
	technologies pgrepo.TechnologyRepository
	contacts     pgrepo.ContactRepository
	tx           pgrepo.Transactor
}

func newEnv(t *testing.T) *env {
	t.Helper()
	db := testutil.NewDB(t)
	store := newMemStore()
	return &env{
		db:           db,
		store:        store,
		guard:        NewFileGuard(store, logger.Discard()),
		profiles:     pgrepo.NewProfileRepo(db),
		accounts:     pgrepo.NewAccountRepo(db),
		tools:        pgrepo.NewToolRepo(db),
		projects:     pgrepo.NewProjectRepo(db),
		technologies: pgrepo.NewTechnologyRepo(db),
		contacts:     pgrepo.NewContactRepo(db),
		tx:           pgrepo.NewTransactor(db),
	}
}

// seedProfile creates a profile whose files exist in the store.
func (e *env) seedProfile(t *testing.T, username string) *models.Profile {
	t.Helper()
	p := testutil.SeedProfile(t, e.db, username)
	for _, f := range p.FileFields() {
		e.store.files[f.Path] = []byte("x")
	}
	return p
}

func (e *env) profileService() ProfileService {
	return NewProfileService(e.profiles, e.accounts, e.tx, e.store, e.guard)
}

func (e *env) toolService() ToolService {
	return NewToolService(e.tools, e.profiles, e.tx, e.store, e.guard)
}

func (e *env) projectService() ProjectService {
	return NewProjectService(e.projects, e.technologies, e.profiles, e.tx, e.store, e.guard)
}

func (e *env) accountService() AccountService {
	return NewAccountService(e.accounts, e.profiles, e.tx, e.guard)
}

func hasPrefix(keys []string, prefix string) bool {
	for _, k := range keys {
		if strings.HasPrefix(k, prefix) {
			return true
		}
	}
	return false
}
