package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"cloudbox/internal/domain"
	"cloudbox/internal/logging"
	"cloudbox/internal/metrics"
	"cloudbox/internal/projection"
	"cloudbox/internal/repository"
)

type FileService struct {
	fileRepo *repository.FileRepository
	now      func() time.Time
}

func NewFileService(fileRepo *repository.FileRepository) *FileService {
	return &FileService{
		fileRepo: fileRepo,
		now:      time.Now,
	}
}

// ListParams задает параметры представления списка файлов
type ListParams struct {
	Path   string
	Search string
	Sort   domain.SortKey
}

// ListFiles строит проекцию коллекции для текущего пути, строки поиска и сортировки
func (s *FileService) ListFiles(ctx context.Context, params ListParams) (*domain.FolderContent, error) {
	if params.Path == "" {
		params.Path = "/"
	}

	start := time.Now()
	items := projection.Project(s.fileRepo.List(ctx), params.Path, params.Search, params.Sort)
	metrics.ObserveProjection("list", time.Since(start))

	logging.WithContext(ctx).Debug("listed files",
		zap.String("path", params.Path),
		zap.String("search", params.Search),
		zap.Stringer("sort", params.Sort),
		zap.Int("count", len(items)))

	return &domain.FolderContent{
		Path:        params.Path,
		Search:      params.Search,
		Sort:        params.Sort,
		Breadcrumbs: projection.Breadcrumbs(params.Path),
		Items:       items,
	}, nil
}

func (s *FileService) GetFile(ctx context.Context, id string) (*domain.FileRecord, error) {
	return s.fileRepo.GetByID(ctx, id)
}

func (s *FileService) Favorites(ctx context.Context, key domain.SortKey) []domain.FileRecord {
	start := time.Now()
	defer func() { metrics.ObserveProjection("favorites", time.Since(start)) }()
	return projection.Favorites(s.fileRepo.List(ctx), key)
}

func (s *FileService) Shared(ctx context.Context, key domain.SortKey) []domain.FileRecord {
	start := time.Now()
	defer func() { metrics.ObserveProjection("shared", time.Since(start)) }()
	return projection.SharedItems(s.fileRepo.List(ctx), key)
}

func (s *FileService) Recent(ctx context.Context, limit int) []domain.FileRecord {
	if limit <= 0 {
		limit = projection.TopN
	}
	return projection.Recent(s.fileRepo.List(ctx), limit)
}

// CreateFolder создает запись папки. Содержимое не хранится, создается только запись.
func (s *FileService) CreateFolder(ctx context.Context, req domain.CreateFolderRequest) (*domain.FileRecord, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" || strings.Contains(name, "/") || name == "." || name == ".." {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidName, req.Name)
	}

	parent := strings.TrimSpace(req.ParentPath)
	if parent == "" {
		parent = "/"
	}
	if !strings.HasPrefix(parent, "/") {
		return nil, fmt.Errorf("%w: parent path must be absolute", domain.ErrInvalidRequest)
	}

	folder := domain.NewFolder(uuid.NewString(), name, parent, s.now())
	if s.fileRepo.ExistsAtPath(ctx, folder.Path) {
		return nil, fmt.Errorf("%s: %w", folder.Path, domain.ErrAlreadyExists)
	}

	created, err := s.fileRepo.Create(ctx, folder)
	if err != nil {
		return nil, fmt.Errorf("failed to create folder: %w", err)
	}

	metrics.RecordMutation("create_folder")
	s.updateGauges()
	logging.WithContext(ctx).Info("folder created",
		zap.String("id", created.ID),
		zap.String("path", created.Path))

	return created, nil
}

func (s *FileService) ToggleFavorite(ctx context.Context, id string) (*domain.FileRecord, error) {
	rec, err := s.fileRepo.ToggleFavorite(ctx, id)
	if err != nil {
		return nil, err
	}
	metrics.RecordMutation("toggle_favorite")
	return rec, nil
}

func (s *FileService) updateGauges() {
	metrics.SetCollectionSize(s.fileRepo.Counts())
}
