package services

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/yoockh/portfolio/internal/models"
	"github.com/yoockh/portfolio/internal/storage"
)

// FileGuard removes uploaded files that no record references any more.
// Removal is best effort: failures are logged and never reach the caller.
type FileGuard struct {
	store  storage.Deleter
	logger *logrus.Logger
}

func NewFileGuard(store storage.Deleter, l *logrus.Logger) *FileGuard {
	if l == nil {
		l = logrus.New()
	}
	return &FileGuard{store: store, logger: l}
}

// StaleFiles lists the files of prev that next no longer references. A nil
// prev (the record is new) yields nothing.
func StaleFiles(prev, next models.FileOwner) []string {
	if prev == nil {
		return nil
	}
	keep := map[string]struct{}{}
	if next != nil {
		for _, f := range next.FileFields() {
			if f.Path != "" {
				keep[f.Path] = struct{}{}
			}
		}
	}
	var out []string
	seen := map[string]struct{}{}
	for _, f := range prev.FileFields() {
		if f.Path == "" {
			continue
		}
		if _, ok := keep[f.Path]; ok {
			continue
		}
		if _, ok := seen[f.Path]; ok {
			continue
		}
		seen[f.Path] = struct{}{}
		out = append(out, f.Path)
	}
	return out
}

// OwnedFiles lists every file set on the given records.
func OwnedFiles(owners ...models.FileOwner) []string {
	var out []string
	for _, o := range owners {
		if o == nil {
			continue
		}
		out = append(out, StaleFiles(o, nil)...)
	}
	return out
}

// Remove deletes the given stored paths. op names the triggering operation in logs.
func (g *FileGuard) Remove(ctx context.Context, op string, paths ...string) {
	if g == nil || g.store == nil {
		return
	}
	for _, p := range paths {
		if p == "" {
			continue
		}
		if err := g.store.Delete(ctx, p); err != nil {
			g.logger.WithFields(logrus.Fields{
				"op":    op,
				"path":  p,
				"error": err.Error(),
			}).Warn("file cleanup failed")
			continue
		}
		g.logger.WithFields(logrus.Fields{"op": op, "path": p}).Debug("file removed")
	}
}

// AfterUpdate removes the files prev held that next replaced.
func (g *FileGuard) AfterUpdate(ctx context.Context, op string, prev, next models.FileOwner) {
	g.Remove(ctx, op, StaleFiles(prev, next)...)
}

// AfterDelete removes every file the deleted records held.
func (g *FileGuard) AfterDelete(ctx context.Context, op string, deleted ...models.FileOwner) {
	g.Remove(ctx, op, OwnedFiles(deleted...)...)
}
