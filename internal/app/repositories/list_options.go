package repositories

import (
	"fmt"
	"strings"

	"github.com/kdanquah/regportal/internal/app/models"
)

// ListFilter narrows and orders a listing. All values are user input and are
// only ever bound as query parameters; sort keys pass through an allow-list
// before touching SQL.
type ListFilter struct {
	// Status filters by approval status; empty or "all" matches everything.
	Status string
	// Search is a free-text substring match over id/name/email fields.
	Search string
	// SortKey is a logical sort name mapped to a physical column.
	SortKey string
	// SortDesc orders descending when true.
	SortDesc bool

	Offset uint64
	Limit  int
}

// StatusFilterValid reports whether the status filter value is usable.
func (f ListFilter) StatusFilterValid() bool {
	if f.Status == "" || f.Status == "all" {
		return true
	}
	return models.ApprovalStatus(f.Status).IsValid()
}

// sortColumn resolves a logical sort key against an allow-list. Unknown keys
// fall back to the default column rather than erroring, matching the fixed
// dropdowns the admin screens present.
func sortColumn(allowed map[string]string, key, fallback string) string {
	if col, ok := allowed[key]; ok {
		return col
	}
	return fallback
}

// orderClause builds an ORDER BY over an allow-listed column. Direction is a
// boolean, never user text.
func orderClause(allowed map[string]string, key, fallback string, desc bool) string {
	col := sortColumn(allowed, key, fallback)
	dir := "ASC"
	if desc {
		dir = "DESC"
	}
	return fmt.Sprintf(" ORDER BY %s %s", col, dir)
}

// likePattern wraps a search term for a substring ILIKE match, escaping the
// pattern metacharacters so user input stays literal.
func likePattern(term string) string {
	replacer := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + replacer.Replace(term) + "%"
}
