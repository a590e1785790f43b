package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/jmoiron/sqlx"

	"cloudbox/internal/domain"
)

// settingsRowID - в таблице настроек одна строка, приложение однопользовательское
const settingsRowID = 1

type settingsRow struct {
	ID              int64     `db:"id"`
	Authenticated   bool      `db:"authenticated"`
	Theme           string    `db:"theme"`
	RetentionPeriod string    `db:"retention_period"`
	UpdatedAt       time.Time `db:"updated_at"`
}

func defaultSettingsRow() settingsRow {
	return settingsRow{
		ID:              settingsRowID,
		Theme:           string(domain.ThemeLight),
		RetentionPeriod: domain.DefaultRetentionPeriod,
	}
}

func (row settingsRow) preferences() *domain.Preferences {
	return &domain.Preferences{
		Authenticated: row.Authenticated,
		Theme:         domain.Theme(row.Theme),
		UpdatedAt:     row.UpdatedAt,
	}
}

func (row settingsRow) trashSettings() *domain.TrashSettings {
	return &domain.TrashSettings{
		RetentionPeriod: row.RetentionPeriod,
		UpdatedAt:       row.UpdatedAt,
	}
}

// SettingsRepository хранит настройки в PostgreSQL
type SettingsRepository struct {
	db *sqlx.DB
}

func NewSettingsRepository(db *sqlx.DB) *SettingsRepository {
	return &SettingsRepository{db: db}
}

func (r *SettingsRepository) get(ctx context.Context) (*settingsRow, error) {
	var row settingsRow
	err := r.db.GetContext(ctx, &row,
		`SELECT id, authenticated, theme, retention_period, updated_at FROM settings WHERE id = $1`,
		settingsRowID)
	if err != nil {
		// Если настройки не найдены, создаем настройки по умолчанию
		if errors.Is(err, sql.ErrNoRows) {
			if err := r.createDefault(ctx); err != nil {
				return nil, fmt.Errorf("failed to create default settings: %w", err)
			}
			return r.get(ctx)
		}
		return nil, fmt.Errorf("failed to get settings: %w", err)
	}
	return &row, nil
}

func (r *SettingsRepository) createDefault(ctx context.Context) error {
	row := defaultSettingsRow()
	query := `
        INSERT INTO settings (id, authenticated, theme, retention_period)
        VALUES (:id, :authenticated, :theme, :retention_period)
        ON CONFLICT (id) DO NOTHING`

	_, err := r.db.NamedExecContext(ctx, query, row)
	return err
}

func (r *SettingsRepository) GetPreferences(ctx context.Context) (*domain.Preferences, error) {
	row, err := r.get(ctx)
	if err != nil {
		return nil, err
	}
	return row.preferences(), nil
}

func (r *SettingsRepository) SavePreferences(ctx context.Context, prefs *domain.Preferences) error {
	if _, err := r.get(ctx); err != nil {
		return err
	}

	query := `
        UPDATE settings
        SET authenticated = $1,
            theme = $2,
            updated_at = CURRENT_TIMESTAMP
        WHERE id = $3
        RETURNING updated_at`

	if err := r.db.QueryRowContext(ctx, query, prefs.Authenticated, string(prefs.Theme), settingsRowID).Scan(&prefs.UpdatedAt); err != nil {
		return fmt.Errorf("failed to update preferences: %w", err)
	}
	return nil
}

func (r *SettingsRepository) GetTrashSettings(ctx context.Context) (*domain.TrashSettings, error) {
	row, err := r.get(ctx)
	if err != nil {
		return nil, err
	}
	return row.trashSettings(), nil
}

func (r *SettingsRepository) SaveTrashSettings(ctx context.Context, settings *domain.TrashSettings) error {
	if _, err := r.get(ctx); err != nil {
		return err
	}

	query := `
        UPDATE settings
        SET retention_period = $1,
            updated_at = CURRENT_TIMESTAMP
        WHERE id = $2
        RETURNING updated_at`

	if err := r.db.QueryRowContext(ctx, query, settings.RetentionPeriod, settingsRowID).Scan(&settings.UpdatedAt); err != nil {
		return fmt.Errorf("failed to update trash settings: %w", err)
	}
	return nil
}

// MemorySettingsRepository хранит настройки в памяти процесса,
// используется когда база данных не настроена
type MemorySettingsRepository struct {
	mu  sync.Mutex
	row settingsRow
}

func NewMemorySettingsRepository() *MemorySettingsRepository {
	row := defaultSettingsRow()
	row.UpdatedAt = time.Now()
	return &MemorySettingsRepository{row: row}
}

func (r *MemorySettingsRepository) GetPreferences(ctx context.Context) (*domain.Preferences, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.row.preferences(), nil
}

func (r *MemorySettingsRepository) SavePreferences(ctx context.Context, prefs *domain.Preferences) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.row.Authenticated = prefs.Authenticated
	r.row.Theme = string(prefs.Theme)
	r.row.UpdatedAt = time.Now()
	prefs.UpdatedAt = r.row.UpdatedAt
	return nil
}

func (r *MemorySettingsRepository) GetTrashSettings(ctx context.Context) (*domain.TrashSettings, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.row.trashSettings(), nil
}

func (r *MemorySettingsRepository) SaveTrashSettings(ctx context.Context, settings *domain.TrashSettings) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.row.RetentionPeriod = settings.RetentionPeriod
	r.row.UpdatedAt = time.Now()
	settings.UpdatedAt = r.row.UpdatedAt
	return nil
}
