package domain

type QuotaInfo struct {
	TotalSpace     int64   `json:"total_space"`
	UsedSpace      int64   `json:"used_space"`
	AvailableSpace int64   `json:"available_space"`
	UsagePercent   float64 `json:"usage_percent"`
}

type Category string

const (
	CategoryFolders   Category = "folders"
	CategoryImages    Category = "images"
	CategoryVideos    Category = "videos"
	CategoryAudio     Category = "audio"
	CategoryDocuments Category = "documents"
	CategoryArchives  Category = "archives"
	CategoryOthers    Category = "others"
)

// CategoryUsage содержит статистику по одной категории файлов
type CategoryUsage struct {
	Category Category `json:"category"`
	Count    int      `json:"count"`
	Bytes    int64    `json:"bytes"`
}

// Aggregates содержит сводную статистику по коллекции без учета корзины
type Aggregates struct {
	Total      int             `json:"total"`
	Files      int             `json:"files"`
	Folders    int             `json:"folders"`
	Shared     int             `json:"shared"`
	Favorites  int             `json:"favorites"`
	Trashed    int             `json:"trashed"`
	UsedBytes  int64           `json:"used_bytes"`
	Recent     []FileRecord    `json:"recent"`
	Largest    []FileRecord    `json:"largest"`
	Categories []CategoryUsage `json:"categories"`
}
