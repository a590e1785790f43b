package domain

import (
	"strings"
	"time"
)

type Kind string

const (
	KindFile   Kind = "file"
	KindFolder Kind = "folder"
)

// State описывает жизненный цикл записи: активная или в корзине
type State string

const (
	StateActive  State = "active"
	StateTrashed State = "trashed"
)

// FileRecord представляет файл или папку в коллекции
type FileRecord struct {
	ID         string     `json:"id" yaml:"id"`
	Name       string     `json:"name" yaml:"name"`
	Kind       Kind       `json:"kind" yaml:"kind"`
	Size       *int64     `json:"size,omitempty" yaml:"size,omitempty"`
	MIMEType   string     `json:"mime_type,omitempty" yaml:"mime_type,omitempty"`
	ModifiedAt time.Time  `json:"modified_at" yaml:"modified_at"`
	Favorite   bool       `json:"favorite" yaml:"favorite"`
	Shared     bool       `json:"shared" yaml:"shared"`
	State      State      `json:"state" yaml:"state"`
	TrashedAt  *time.Time `json:"trashed_at,omitempty" yaml:"trashed_at,omitempty"`
	Path       string     `json:"path" yaml:"path"`
	Thumbnail  string     `json:"thumbnail,omitempty" yaml:"thumbnail,omitempty"`
	Share      *ShareInfo `json:"share,omitempty" yaml:"share,omitempty"`
}

func (f *FileRecord) IsFolder() bool {
	return f.Kind == KindFolder
}

func (f *FileRecord) Trashed() bool {
	return f.State == StateTrashed
}

// SizeOrZero возвращает размер, отсутствующий размер считается нулевым
func (f *FileRecord) SizeOrZero() int64 {
	if f.Size == nil {
		return 0
	}
	return *f.Size
}

// Parent возвращает путь родителя: путь без последнего сегмента
func (f *FileRecord) Parent() string {
	idx := strings.LastIndex(f.Path, "/")
	if idx <= 0 {
		return "/"
	}
	return f.Path[:idx]
}

// Normalize приводит запись к инвариантам модели: у папок нет размера,
// типа содержимого и превью, пустое состояние означает активную запись.
func (f *FileRecord) Normalize() {
	if f.Kind == "" {
		f.Kind = KindFile
	}
	if f.Kind == KindFolder {
		f.Size = nil
		f.MIMEType = ""
		f.Thumbnail = ""
	}
	if f.State == "" {
		f.State = StateActive
	}
	if f.State == StateActive {
		f.TrashedAt = nil
	}
}

// Clone возвращает глубокую копию записи
func (f FileRecord) Clone() FileRecord {
	out := f
	if f.Size != nil {
		size := *f.Size
		out.Size = &size
	}
	if f.TrashedAt != nil {
		t := *f.TrashedAt
		out.TrashedAt = &t
	}
	if f.Share != nil {
		share := f.Share.Clone()
		out.Share = &share
	}
	return out
}

// NewFolder создает запись новой папки внутри parentPath
func NewFolder(id, name, parentPath string, now time.Time) FileRecord {
	return FileRecord{
		ID:         id,
		Name:       name,
		Kind:       KindFolder,
		ModifiedAt: now,
		State:      StateActive,
		Path:       JoinPath(parentPath, name),
	}
}

// JoinPath склеивает путь родителя и имя
func JoinPath(parent, name string) string {
	parent = strings.TrimRight(parent, "/")
	return parent + "/" + name
}
