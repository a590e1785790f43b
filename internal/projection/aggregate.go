package projection

import (
	"cloudbox/internal/domain"
)

// TopN bounds the recent and largest lists.
const TopN = 5

// Aggregate computes the analytics statistics over every non-trashed record.
// Path and search scoping do not apply.
func Aggregate(records []domain.FileRecord) domain.Aggregates {
	agg := domain.Aggregates{}

	active := make([]domain.FileRecord, 0, len(records))
	sized := make([]domain.FileRecord, 0)
	for i := range records {
		r := &records[i]
		if r.Trashed() {
			agg.Trashed++
			continue
		}

		agg.Total++
		if r.IsFolder() {
			agg.Folders++
		} else {
			agg.Files++
		}
		if r.Shared {
			agg.Shared++
		}
		if r.Favorite {
			agg.Favorites++
		}
		agg.UsedBytes += r.SizeOrZero()

		active = append(active, r.Clone())
		if r.SizeOrZero() > 0 {
			sized = append(sized, r.Clone())
		}
	}

	agg.Categories = Usage(active)
	agg.Recent = top(active, domain.SortByDate)
	agg.Largest = top(sized, domain.SortBySize)
	return agg
}

// Recent returns the n most recently modified non-trashed records.
func Recent(records []domain.FileRecord, n int) []domain.FileRecord {
	out := selectActive(records, domain.SortByDate, func(*domain.FileRecord) bool { return true })
	if n >= 0 && len(out) > n {
		out = out[:n]
	}
	return out
}

// top sorts records in place and keeps the first TopN.
func top(records []domain.FileRecord, key domain.SortKey) []domain.FileRecord {
	Sort(records, key)
	if len(records) > TopN {
		records = records[:TopN]
	}
	return records
}
