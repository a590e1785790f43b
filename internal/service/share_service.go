package service

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"go.uber.org/zap"

	"cloudbox/internal/domain"
	"cloudbox/internal/logging"
	"cloudbox/internal/metrics"
	"cloudbox/internal/repository"
)

// ShareService управляет метаданными общего доступа.
// Права доступа не проверяются, сохраняются только метаданные для отображения.
type ShareService struct {
	fileRepo *repository.FileRepository
	now      func() time.Time
}

func NewShareService(fileRepo *repository.FileRepository) *ShareService {
	return &ShareService{
		fileRepo: fileRepo,
		now:      time.Now,
	}
}

func generateToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.URLEncoding.EncodeToString(b), nil
}

// ShareFile проверяет запрос и сохраняет метаданные доступа к записи
func (s *ShareService) ShareFile(ctx context.Context, id string, req domain.ShareRequest) (*domain.FileRecord, error) {
	info, err := s.buildShareInfo(req)
	if err != nil {
		return nil, err
	}

	// Публичная ссылка сохраняет токен, если он уже был выдан
	if info.Public {
		current, err := s.fileRepo.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if current.Share != nil && current.Share.Token != "" {
			info.Token = current.Share.Token
		} else {
			token, err := generateToken()
			if err != nil {
				return nil, fmt.Errorf("failed to generate share token: %w", err)
			}
			info.Token = token
		}
	}

	rec, err := s.fileRepo.UpdateShare(ctx, id, info)
	if err != nil {
		return nil, err
	}

	metrics.RecordMutation("share")
	logging.WithContext(ctx).Info("record shared",
		zap.String("id", id),
		zap.Int("recipients", len(info.Recipients)),
		zap.String("permission", string(info.Permission)),
		zap.Bool("public", info.Public))

	return rec, nil
}

func (s *ShareService) Unshare(ctx context.Context, id string) (*domain.FileRecord, error) {
	rec, err := s.fileRepo.Unshare(ctx, id)
	if err != nil {
		return nil, err
	}
	metrics.RecordMutation("unshare")
	return rec, nil
}

func (s *ShareService) buildShareInfo(req domain.ShareRequest) (domain.ShareInfo, error) {
	permission := req.Permission
	if permission == "" {
		permission = domain.PermissionView
	}
	if !permission.Valid() {
		return domain.ShareInfo{}, fmt.Errorf("%w: unknown permission %q", domain.ErrInvalidShare, req.Permission)
	}

	recipients := make([]string, 0, len(req.Emails))
	seen := make(map[string]bool, len(req.Emails))
	for _, raw := range req.Emails {
		email := strings.ToLower(strings.TrimSpace(raw))
		if email == "" {
			continue
		}
		addr, err := mail.ParseAddress(email)
		if err != nil || addr.Address != email {
			return domain.ShareInfo{}, fmt.Errorf("%w: invalid email %q", domain.ErrInvalidShare, raw)
		}
		if !seen[email] {
			seen[email] = true
			recipients = append(recipients, email)
		}
	}

	if len(recipients) == 0 && !req.IsPublic {
		return domain.ShareInfo{}, fmt.Errorf("%w: at least one recipient or a public link is required", domain.ErrInvalidShare)
	}

	if req.ExpiresAt != nil && !req.ExpiresAt.After(s.now()) {
		return domain.ShareInfo{}, fmt.Errorf("%w: expiry must be in the future", domain.ErrInvalidShare)
	}

	return domain.ShareInfo{
		Recipients: recipients,
		Permission: permission,
		ExpiresAt:  req.ExpiresAt,
		Public:     req.IsPublic,
	}, nil
}
