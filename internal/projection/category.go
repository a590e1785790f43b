package projection

import (
	"strings"

	"github.com/dustin/go-humanize"

	"cloudbox/internal/domain"
)

var categoryOrder = []domain.Category{
	domain.CategoryImages,
	domain.CategoryVideos,
	domain.CategoryAudio,
	domain.CategoryDocuments,
	domain.CategoryArchives,
	domain.CategoryOthers,
}

var documentMarkers = []string{"pdf", "msword", "officedocument", "spreadsheet", "presentation", "opendocument"}
var archiveMarkers = []string{"zip", "rar", "tar", "gzip", "7z"}

// Categorize maps a record kind and content type to a dashboard category.
func Categorize(mimeType string, kind domain.Kind) domain.Category {
	if kind == domain.KindFolder {
		return domain.CategoryFolders
	}

	mimeType = strings.ToLower(mimeType)
	switch {
	case mimeType == "":
		return domain.CategoryOthers
	case strings.HasPrefix(mimeType, "image/"):
		return domain.CategoryImages
	case strings.HasPrefix(mimeType, "video/"):
		return domain.CategoryVideos
	case strings.HasPrefix(mimeType, "audio/"):
		return domain.CategoryAudio
	case strings.HasPrefix(mimeType, "text/"), containsAny(mimeType, documentMarkers):
		return domain.CategoryDocuments
	case containsAny(mimeType, archiveMarkers):
		return domain.CategoryArchives
	}
	return domain.CategoryOthers
}

func containsAny(s string, markers []string) bool {
	for _, m := range markers {
		if strings.Contains(s, m) {
			return true
		}
	}
	return false
}

// Usage groups non-trashed files by category. Folders are skipped. Every
// category is present in the result, in a fixed order.
func Usage(records []domain.FileRecord) []domain.CategoryUsage {
	index := make(map[domain.Category]int, len(categoryOrder))
	out := make([]domain.CategoryUsage, len(categoryOrder))
	for i, c := range categoryOrder {
		index[c] = i
		out[i].Category = c
	}

	for i := range records {
		r := &records[i]
		if r.Trashed() || r.IsFolder() {
			continue
		}
		u := &out[index[Categorize(r.MIMEType, r.Kind)]]
		u.Count++
		u.Bytes += r.SizeOrZero()
	}
	return out
}

// FormatSize renders a byte count for display. A missing size renders as "0 B".
func FormatSize(size *int64) string {
	if size == nil || *size <= 0 {
		return "0 B"
	}
	return humanize.IBytes(uint64(*size))
}
