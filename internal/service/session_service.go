package service

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"go.uber.org/zap"

	"cloudbox/internal/domain"
	"cloudbox/internal/logging"
)

// SessionService реализует демонстрационную сессию: вход принимает любые
// непустые учетные данные и только выставляет сохраняемый флаг.
type SessionService struct {
	settings SettingsStore

	mu          sync.RWMutex
	defaultUser domain.User
	user        domain.User
}

func NewSessionService(settings SettingsStore, user domain.User) *SessionService {
	return &SessionService{
		settings:    settings,
		defaultUser: user,
		user:        user,
	}
}

// Current возвращает настройки и профиль, если сессия активна
func (s *SessionService) Current(ctx context.Context) (*domain.Session, error) {
	prefs, err := s.settings.GetPreferences(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get preferences: %w", err)
	}

	session := &domain.Session{Preferences: *prefs}
	if prefs.Authenticated {
		user := s.currentUser()
		session.User = &user
	}
	return session, nil
}

// IsAuthenticated сообщает, выставлен ли флаг сессии
func (s *SessionService) IsAuthenticated(ctx context.Context) (bool, error) {
	prefs, err := s.settings.GetPreferences(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to get preferences: %w", err)
	}
	return prefs.Authenticated, nil
}

func (s *SessionService) Login(ctx context.Context, req domain.LoginRequest) (*domain.Session, error) {
	if strings.TrimSpace(req.Email) == "" || req.Password == "" {
		return nil, fmt.Errorf("%w: email and password are required", domain.ErrInvalidRequest)
	}

	s.mu.Lock()
	s.user = s.defaultUser
	s.mu.Unlock()

	if err := s.setAuthenticated(ctx, true); err != nil {
		return nil, err
	}
	logging.WithContext(ctx).Info("session started", zap.String("email", req.Email))
	return s.Current(ctx)
}

func (s *SessionService) Signup(ctx context.Context, req domain.SignupRequest) (*domain.Session, error) {
	switch {
	case strings.TrimSpace(req.FullName) == "",
		strings.TrimSpace(req.Username) == "",
		strings.TrimSpace(req.Email) == "",
		req.Password == "":
		return nil, fmt.Errorf("%w: all fields are required", domain.ErrInvalidRequest)
	case req.Password != req.ConfirmPassword:
		return nil, fmt.Errorf("%w: passwords do not match", domain.ErrInvalidRequest)
	}

	s.mu.Lock()
	s.user = s.defaultUser
	s.user.Name = strings.TrimSpace(req.FullName)
	s.user.Email = strings.TrimSpace(req.Email)
	s.user.Username = strings.TrimSpace(req.Username)
	s.mu.Unlock()

	if err := s.setAuthenticated(ctx, true); err != nil {
		return nil, err
	}
	logging.WithContext(ctx).Info("account created", zap.String("username", req.Username))
	return s.Current(ctx)
}

func (s *SessionService) Logout(ctx context.Context) error {
	return s.setAuthenticated(ctx, false)
}

// UpdateProfile меняет имя, email и логин в профиле текущей сессии
func (s *SessionService) UpdateProfile(ctx context.Context, patch domain.User) (*domain.User, error) {
	ok, err := s.IsAuthenticated(ctx)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if name := strings.TrimSpace(patch.Name); name != "" {
		s.user.Name = name
	}
	if email := strings.TrimSpace(patch.Email); email != "" {
		s.user.Email = email
	}
	if username := strings.TrimSpace(patch.Username); username != "" {
		s.user.Username = username
	}
	user := s.user
	return &user, nil
}

// SetTheme сохраняет тему. Пустое значение переключает текущую тему.
func (s *SessionService) SetTheme(ctx context.Context, theme domain.Theme) (*domain.Preferences, error) {
	prefs, err := s.settings.GetPreferences(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get preferences: %w", err)
	}

	switch {
	case theme == "" && prefs.Theme == domain.ThemeDark:
		prefs.Theme = domain.ThemeLight
	case theme == "":
		prefs.Theme = domain.ThemeDark
	case theme.Valid():
		prefs.Theme = theme
	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidTheme, theme)
	}

	if err := s.settings.SavePreferences(ctx, prefs); err != nil {
		return nil, fmt.Errorf("failed to save preferences: %w", err)
	}
	return prefs, nil
}

func (s *SessionService) setAuthenticated(ctx context.Context, value bool) error {
	prefs, err := s.settings.GetPreferences(ctx)
	if err != nil {
		return fmt.Errorf("failed to get preferences: %w", err)
	}
	prefs.Authenticated = value
	if err := s.settings.SavePreferences(ctx, prefs); err != nil {
		return fmt.Errorf("failed to save preferences: %w", err)
	}
	return nil
}

func (s *SessionService) currentUser() domain.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user
}
