package postgres

import (
	"strings"

	"gorm.io/gorm"
)

const (
	defaultListLimit = 100
	maxListLimit     = 500
)

// ListFilter narrows admin list views.
type ListFilter struct {
	ProfileID uint
	Query     string
	Limit     int
	Offset    int
}

// OrderUpdate sets the display order of one row.
type OrderUpdate struct {
	ID    uint `json:"id"`
	Order int  `json:"order"`
}

// ownerUsernameMatch matches rows whose owning profile belongs to an account
// with a username like the bound pattern.
const ownerUsernameMatch = "profile_id IN (SELECT p.id FROM profiles p JOIN accounts a ON a.id = p.account_id WHERE LOWER(a.username) LIKE ?)"

func likePattern(q string) string {
	return "%" + strings.ToLower(strings.TrimSpace(q)) + "%"
}

// search ORs a case-insensitive LIKE over cols, plus any raw conditions that
// take the pattern as their only argument.
func search(q *gorm.DB, query string, cols []string, raw ...string) *gorm.DB {
	if strings.TrimSpace(query) == "" {
		return q
	}
	pat := likePattern(query)
	parts := make([]string, 0, len(cols)+len(raw))
	args := make([]any, 0, len(cols)+len(raw))
	for _, c := range cols {
		parts = append(parts, "LOWER("+c+") LIKE ?")
		args = append(args, pat)
	}
	for _, r := range raw {
		parts = append(parts, r)
		args = append(args, pat)
	}
	return q.Where("("+strings.Join(parts, " OR ")+")", args...)
}

func page(q *gorm.DB, f ListFilter) *gorm.DB {
	limit := f.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}
	q = q.Limit(limit)
	if f.Offset > 0 {
		q = q.Offset(f.Offset)
	}
	return q
}

func bySortOrder(db *gorm.DB) *gorm.DB {
	return db.Order("sort_order ASC").Order("id ASC")
}
