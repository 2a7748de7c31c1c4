package postgres

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// orderedTable holds the queries shared by the per-profile, sort_order ranked
// tables: experiences, skills, tools and projects.
type orderedTable[T any] struct {
	db         *gorm.DB
	searchCols []string
	preload    func(*gorm.DB) *gorm.DB
}

func (t orderedTable[T]) query(ctx context.Context) *gorm.DB {
	q := conn(ctx, t.db).Model(new(T))
	if t.preload != nil {
		q = t.preload(q)
	}
	return q
}

func (t orderedTable[T]) list(ctx context.Context, f ListFilter) ([]T, error) {
	q := t.query(ctx)
	if f.ProfileID != 0 {
		q = q.Where("profile_id = ?", f.ProfileID)
	}
	q = search(q, f.Query, t.searchCols, ownerUsernameMatch)
	var rows []T
	err := page(bySortOrder(q), f).Find(&rows).Error
	return rows, mapErr(err)
}

func (t orderedTable[T]) get(ctx context.Context, id uint) (*T, error) {
	var row T
	if err := t.query(ctx).Where("id = ?", id).Take(&row).Error; err != nil {
		return nil, mapErr(err)
	}
	return &row, nil
}

func (t orderedTable[T]) create(ctx context.Context, row *T) error {
	return mapErr(conn(ctx, t.db).Omit(clause.Associations).Create(row).Error)
}

func (t orderedTable[T]) save(ctx context.Context, row *T) error {
	return mapErr(conn(ctx, t.db).Omit(clause.Associations).Save(row).Error)
}

func (t orderedTable[T]) delete(ctx context.Context, id uint) error {
	return affected(conn(ctx, t.db).Where("id = ?", id).Delete(new(T)))
}

// reorder applies every update or none; an unknown id fails the batch.
func (t orderedTable[T]) reorder(ctx context.Context, items []OrderUpdate) error {
	return NewTransactor(t.db).WithinTx(ctx, func(ctx context.Context) error {
		for _, it := range items {
			res := conn(ctx, t.db).Model(new(T)).Where("id = ?", it.ID).Update("sort_order", it.Order)
			if err := affected(res); err != nil {
				return err
			}
		}
		return nil
	})
}
