package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"cloudbox/internal/domain"
	"cloudbox/internal/logging"
	"cloudbox/internal/metrics"
	"cloudbox/internal/projection"
	"cloudbox/internal/repository"
)

// SettingsStore хранит сохраняемые настройки: флаги сессии и темы, период хранения корзины
type SettingsStore interface {
	GetPreferences(ctx context.Context) (*domain.Preferences, error)
	SavePreferences(ctx context.Context, prefs *domain.Preferences) error
	GetTrashSettings(ctx context.Context) (*domain.TrashSettings, error)
	SaveTrashSettings(ctx context.Context, settings *domain.TrashSettings) error
}

type TrashService struct {
	fileRepo *repository.FileRepository
	settings SettingsStore
	now      func() time.Time
}

func NewTrashService(fileRepo *repository.FileRepository, settings SettingsStore) *TrashService {
	return &TrashService{
		fileRepo: fileRepo,
		settings: settings,
		now:      time.Now,
	}
}

// GetTrashItems получает список элементов в корзине
func (s *TrashService) GetTrashItems(ctx context.Context) ([]domain.TrashItem, error) {
	settings, err := s.settings.GetTrashSettings(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get trash settings: %w", err)
	}
	retention := settings.Retention()
	now := s.now()

	trashed := projection.Trash(s.fileRepo.List(ctx))
	items := make([]domain.TrashItem, 0, len(trashed))
	for _, rec := range trashed {
		item := domain.TrashItem{FileRecord: rec}
		if rec.TrashedAt != nil {
			left := rec.TrashedAt.Add(retention).Sub(now)
			if left < 0 {
				left = 0
			}
			item.ExpiresIn = formatDuration(left)
		}
		items = append(items, item)
	}
	return items, nil
}

// MoveToTrash перемещает элементы в корзину
func (s *TrashService) MoveToTrash(ctx context.Context, ids []string) (int, error) {
	if len(ids) == 0 {
		return 0, fmt.Errorf("%w: at least one id is required", domain.ErrInvalidRequest)
	}

	n := s.fileRepo.MoveToTrash(ctx, ids)
	s.recordMutation(ctx, "move_to_trash", len(ids), n)
	return n, nil
}

// RestoreFromTrash восстанавливает элементы из корзины
func (s *TrashService) RestoreFromTrash(ctx context.Context, ids []string) (int, error) {
	if len(ids) == 0 {
		return 0, fmt.Errorf("%w: at least one id is required", domain.ErrInvalidRequest)
	}

	n := s.fileRepo.Restore(ctx, ids)
	s.recordMutation(ctx, "restore", len(ids), n)
	return n, nil
}

// DeletePermanently окончательно удаляет элементы из коллекции
func (s *TrashService) DeletePermanently(ctx context.Context, ids []string) (int, error) {
	if len(ids) == 0 {
		return 0, fmt.Errorf("%w: at least one id is required", domain.ErrInvalidRequest)
	}

	n := s.fileRepo.DeletePermanently(ctx, ids)
	s.recordMutation(ctx, "delete_permanently", len(ids), n)
	return n, nil
}

// EmptyTrash удаляет все элементы корзины
func (s *TrashService) EmptyTrash(ctx context.Context) (int, error) {
	n := s.fileRepo.EmptyTrash(ctx)
	s.recordMutation(ctx, "empty_trash", n, n)
	return n, nil
}

func (s *TrashService) GetSettings(ctx context.Context) (*domain.TrashSettings, error) {
	return s.settings.GetTrashSettings(ctx)
}

// UpdateRetentionPeriod обновляет период хранения файлов в корзине
func (s *TrashService) UpdateRetentionPeriod(ctx context.Context, period string) (*domain.TrashSettings, error) {
	d, err := time.ParseDuration(period)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidPeriod, err)
	}
	if d <= 0 {
		return nil, fmt.Errorf("%w: must be positive", domain.ErrInvalidPeriod)
	}

	settings := &domain.TrashSettings{RetentionPeriod: d.String()}
	if err := s.settings.SaveTrashSettings(ctx, settings); err != nil {
		return nil, fmt.Errorf("failed to save trash settings: %w", err)
	}
	return settings, nil
}

// AutoCleanup удаляет элементы, которые находятся в корзине дольше периода хранения
func (s *TrashService) AutoCleanup(ctx context.Context) (int, error) {
	settings, err := s.settings.GetTrashSettings(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to get trash settings: %w", err)
	}

	cutoff := s.now().Add(-settings.Retention())
	purged := s.fileRepo.PurgeTrashedBefore(ctx, cutoff)
	if len(purged) == 0 {
		return 0, nil
	}

	metrics.RecordTrashPurge(len(purged))
	metrics.SetCollectionSize(s.fileRepo.Counts())

	logger := logging.WithContext(ctx)
	for _, rec := range purged {
		logger.Info("trash item expired",
			zap.String("id", rec.ID),
			zap.String("path", rec.Path))
	}
	return len(purged), nil
}

func (s *TrashService) recordMutation(ctx context.Context, op string, requested, changed int) {
	metrics.RecordMutation(op)
	metrics.SetCollectionSize(s.fileRepo.Counts())
	logging.WithContext(ctx).Info("trash operation",
		zap.String("op", op),
		zap.Int("requested", requested),
		zap.Int("changed", changed))
}

// formatDuration форматирует продолжительность в человекочитаемый формат
func formatDuration(d time.Duration) string {
	days := d / (24 * time.Hour)
	hours := (d % (24 * time.Hour)) / time.Hour
	minutes := (d % time.Hour) / time.Minute

	if days > 0 {
		return fmt.Sprintf("%d days %d hours", days, hours)
	} else if hours > 0 {
		return fmt.Sprintf("%d hours %d minutes", hours, minutes)
	}
	return fmt.Sprintf("%d minutes", minutes)
}
