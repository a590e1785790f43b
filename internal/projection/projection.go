// Package projection derives the views rendered by the dashboard from the
// file collection: the filtered and sorted listing of the current folder and
// the aggregate statistics behind the analytics page.
//
// Every function here is pure. Inputs are never mutated and returned slices
// hold copies of the records.
package projection

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"cloudbox/internal/domain"
)

// Project returns the records visible in currentPath that match searchText,
// ordered by key.
//
// A record is visible when it is not trashed, its name contains searchText
// case-insensitively and its path starts with currentPath. The path test is a
// plain string prefix, so "/Photos" also matches "/Photos2".
func Project(records []domain.FileRecord, currentPath, searchText string, key domain.SortKey) []domain.FileRecord {
	needle := strings.ToLower(searchText)

	out := make([]domain.FileRecord, 0, len(records))
	for i := range records {
		r := &records[i]
		if r.Trashed() {
			continue
		}
		if !strings.Contains(strings.ToLower(r.Name), needle) {
			continue
		}
		if !strings.HasPrefix(r.Path, currentPath) {
			continue
		}
		out = append(out, r.Clone())
	}

	Sort(out, key)
	return out
}

// Sort orders records in place by key. The sort is stable: records with equal
// keys keep their relative order.
func Sort(records []domain.FileRecord, key domain.SortKey) {
	less := lessFunc(key)
	sort.SliceStable(records, func(i, j int) bool {
		return less(&records[i], &records[j])
	})
}

func lessFunc(key domain.SortKey) func(a, b *domain.FileRecord) bool {
	switch key {
	case domain.SortByName:
		c := newCollator()
		return func(a, b *domain.FileRecord) bool {
			return c.CompareString(a.Name, b.Name) < 0
		}
	case domain.SortBySize:
		return func(a, b *domain.FileRecord) bool {
			return a.SizeOrZero() > b.SizeOrZero()
		}
	case domain.SortByDate:
		return func(a, b *domain.FileRecord) bool {
			return a.ModifiedAt.After(b.ModifiedAt)
		}
	case domain.SortByType:
		c := newCollator()
		return func(a, b *domain.FileRecord) bool {
			return c.CompareString(a.MIMEType, b.MIMEType) < 0
		}
	}
	// unknown keys keep input order
	return func(a, b *domain.FileRecord) bool { return false }
}

// newCollator returns a fresh collator. collate.Collator keeps internal
// buffers and must not be shared between goroutines.
func newCollator() *collate.Collator {
	return collate.New(language.English)
}

// Favorites returns non-trashed favorite records ordered by key.
func Favorites(records []domain.FileRecord, key domain.SortKey) []domain.FileRecord {
	return selectActive(records, key, func(r *domain.FileRecord) bool { return r.Favorite })
}

// SharedItems returns non-trashed shared records ordered by key.
func SharedItems(records []domain.FileRecord, key domain.SortKey) []domain.FileRecord {
	return selectActive(records, key, func(r *domain.FileRecord) bool { return r.Shared })
}

func selectActive(records []domain.FileRecord, key domain.SortKey, keep func(*domain.FileRecord) bool) []domain.FileRecord {
	out := make([]domain.FileRecord, 0)
	for i := range records {
		r := &records[i]
		if r.Trashed() || !keep(r) {
			continue
		}
		out = append(out, r.Clone())
	}
	Sort(out, key)
	return out
}

// Trash returns trashed records, most recently trashed first. Records
// without a trash timestamp go last.
func Trash(records []domain.FileRecord) []domain.FileRecord {
	out := make([]domain.FileRecord, 0)
	for i := range records {
		if records[i].Trashed() {
			out = append(out, records[i].Clone())
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i].TrashedAt, out[j].TrashedAt
		if a == nil || b == nil {
			return a != nil && b == nil
		}
		return a.After(*b)
	})
	return out
}

// Breadcrumbs splits path into navigation steps starting at Home ("/").
func Breadcrumbs(path string) []domain.Breadcrumb {
	crumbs := []domain.Breadcrumb{{Name: "Home", Path: "/"}}

	parts := make([]string, 0)
	for _, p := range strings.Split(path, "/") {
		if p != "" {
			parts = append(parts, p)
		}
	}
	for i, p := range parts {
		crumbs = append(crumbs, domain.Breadcrumb{
			Name: p,
			Path: "/" + strings.Join(parts[:i+1], "/"),
		})
	}
	return crumbs
}
