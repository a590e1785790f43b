package repository

import (
	"context"
	"fmt"
	"sync"
	"time"

	"cloudbox/internal/domain"
)

// FileRepository хранит коллекцию файлов и папок в памяти.
// Все методы возвращают копии записей, внутренний срез наружу не отдается.
type FileRepository struct {
	mu    sync.RWMutex
	files []domain.FileRecord
	index map[string]int
	now   func() time.Time
}

func NewFileRepository(seed []domain.FileRecord) (*FileRepository, error) {
	r := &FileRepository{
		files: make([]domain.FileRecord, 0, len(seed)),
		index: make(map[string]int, len(seed)),
		now:   time.Now,
	}

	for _, rec := range seed {
		rec = rec.Clone()
		rec.Normalize()
		if rec.ID == "" {
			return nil, fmt.Errorf("seed record %q has no id", rec.Name)
		}
		if _, exists := r.index[rec.ID]; exists {
			return nil, fmt.Errorf("duplicate record id %q", rec.ID)
		}
		r.index[rec.ID] = len(r.files)
		r.files = append(r.files, rec)
	}

	return r, nil
}

// WithClock подменяет источник времени, используется в тестах
func (r *FileRepository) WithClock(now func() time.Time) *FileRepository {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.now = now
	return r
}

// List возвращает снимок всей коллекции в исходном порядке
func (r *FileRepository) List(ctx context.Context) []domain.FileRecord {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.FileRecord, len(r.files))
	for i := range r.files {
		out[i] = r.files[i].Clone()
	}
	return out
}

// Counts возвращает количество активных записей и записей в корзине
func (r *FileRepository) Counts() (active, trashed int) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.files {
		if r.files[i].Trashed() {
			trashed++
		} else {
			active++
		}
	}
	return active, trashed
}

func (r *FileRepository) GetByID(ctx context.Context, id string) (*domain.FileRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i, ok := r.index[id]
	if !ok {
		return nil, fmt.Errorf("file %s: %w", id, domain.ErrNotFound)
	}
	rec := r.files[i].Clone()
	return &rec, nil
}

// Create добавляет новую запись в конец коллекции
func (r *FileRepository) Create(ctx context.Context, rec domain.FileRecord) (*domain.FileRecord, error) {
	rec = rec.Clone()
	rec.Normalize()

	r.mu.Lock()
	defer r.mu.Unlock()

	if rec.ID == "" {
		return nil, fmt.Errorf("record id is required")
	}
	if _, exists := r.index[rec.ID]; exists {
		return nil, fmt.Errorf("record %s already exists", rec.ID)
	}

	r.index[rec.ID] = len(r.files)
	r.files = append(r.files, rec)

	out := rec.Clone()
	return &out, nil
}

// ExistsAtPath проверяет, есть ли активная запись с таким путем
func (r *FileRepository) ExistsAtPath(ctx context.Context, path string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.files {
		if !r.files[i].Trashed() && r.files[i].Path == path {
			return true
		}
	}
	return false
}

// update применяет fn к записи с указанным id под блокировкой
func (r *FileRepository) update(id string, fn func(*domain.FileRecord)) (*domain.FileRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i, ok := r.index[id]
	if !ok {
		return nil, fmt.Errorf("file %s: %w", id, domain.ErrNotFound)
	}
	fn(&r.files[i])

	out := r.files[i].Clone()
	return &out, nil
}

func (r *FileRepository) ToggleFavorite(ctx context.Context, id string) (*domain.FileRecord, error) {
	return r.update(id, func(f *domain.FileRecord) {
		f.Favorite = !f.Favorite
	})
}

// UpdateShare помечает запись как общую и сохраняет метаданные доступа
func (r *FileRepository) UpdateShare(ctx context.Context, id string, share domain.ShareInfo) (*domain.FileRecord, error) {
	return r.update(id, func(f *domain.FileRecord) {
		s := share.Clone()
		f.Shared = true
		f.Share = &s
	})
}

func (r *FileRepository) Unshare(ctx context.Context, id string) (*domain.FileRecord, error) {
	return r.update(id, func(f *domain.FileRecord) {
		f.Shared = false
		f.Share = nil
	})
}

// MoveToTrash помечает записи как удаленные, не меняя id и путь.
// Неизвестные id пропускаются. Возвращает количество измененных записей.
func (r *FileRepository) MoveToTrash(ctx context.Context, ids []string) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	changed := 0
	for _, id := range ids {
		i, ok := r.index[id]
		if !ok || r.files[i].Trashed() {
			continue
		}
		t := now
		r.files[i].State = domain.StateTrashed
		r.files[i].TrashedAt = &t
		changed++
	}
	return changed
}

// Restore возвращает записи из корзины
func (r *FileRepository) Restore(ctx context.Context, ids []string) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	changed := 0
	for _, id := range ids {
		i, ok := r.index[id]
		if !ok || !r.files[i].Trashed() {
			continue
		}
		r.files[i].State = domain.StateActive
		r.files[i].TrashedAt = nil
		changed++
	}
	return changed
}

// DeletePermanently удаляет записи из коллекции
func (r *FileRepository) DeletePermanently(ctx context.Context, ids []string) int {
	remove := make(map[string]bool, len(ids))
	for _, id := range ids {
		remove[id] = true
	}
	return r.removeWhere(func(f *domain.FileRecord) bool {
		return remove[f.ID]
	})
}

// EmptyTrash удаляет все записи, находящиеся в корзине
func (r *FileRepository) EmptyTrash(ctx context.Context) int {
	return r.removeWhere(func(f *domain.FileRecord) bool {
		return f.Trashed()
	})
}

// PurgeTrashedBefore удаляет записи, помещенные в корзину раньше cutoff
func (r *FileRepository) PurgeTrashedBefore(ctx context.Context, cutoff time.Time) []domain.FileRecord {
	purged := make([]domain.FileRecord, 0)
	r.removeWhere(func(f *domain.FileRecord) bool {
		if f.Trashed() && f.TrashedAt != nil && f.TrashedAt.Before(cutoff) {
			purged = append(purged, f.Clone())
			return true
		}
		return false
	})
	return purged
}

// removeWhere удаляет подходящие записи с сохранением порядка остальных
func (r *FileRepository) removeWhere(match func(*domain.FileRecord) bool) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	kept := r.files[:0]
	removed := 0
	for i := range r.files {
		if match(&r.files[i]) {
			removed++
			continue
		}
		kept = append(kept, r.files[i])
	}
	// обнуляем хвост, чтобы не держать ссылки на удаленные записи
	for i := len(kept); i < len(r.files); i++ {
		r.files[i] = domain.FileRecord{}
	}
	r.files = kept

	if removed > 0 {
		r.index = make(map[string]int, len(r.files))
		for i := range r.files {
			r.index[r.files[i].ID] = i
		}
	}
	return removed
}
