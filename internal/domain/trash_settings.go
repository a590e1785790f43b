// trash_settings.go

package domain

import "time"

const DefaultRetentionPeriod = "720h"

// TrashSettings представляет настройки корзины
type TrashSettings struct {
	RetentionPeriod string    `json:"retention_period" db:"retention_period"`
	UpdatedAt       time.Time `json:"updated_at" db:"updated_at"`
}

// Retention возвращает период хранения, при ошибке разбора используется значение по умолчанию
func (s TrashSettings) Retention() time.Duration {
	d, err := time.ParseDuration(s.RetentionPeriod)
	if err != nil || d <= 0 {
		d, _ = time.ParseDuration(DefaultRetentionPeriod)
	}
	return d
}

// TrashItem представляет элемент в корзине (может быть файлом или папкой)
type TrashItem struct {
	FileRecord
	ExpiresIn string `json:"expires_in"` // Это поле вычисляемое
}
