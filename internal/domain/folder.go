package domain

// Breadcrumb представляет элемент навигации по пути
type Breadcrumb struct {
	Name string `json:"name"`
	Path string `json:"path"`
}

// FolderContent представляет результат проекции для текущего пути
type FolderContent struct {
	Path        string       `json:"path"`
	Search      string       `json:"search,omitempty"`
	Sort        SortKey      `json:"sort"`
	Breadcrumbs []Breadcrumb `json:"breadcrumbs"`
	Items       []FileRecord `json:"items"`
}

// CreateFolderRequest представляет запрос на создание папки
type CreateFolderRequest struct {
	Name       string `json:"name"`
	ParentPath string `json:"parent_path"`
}
