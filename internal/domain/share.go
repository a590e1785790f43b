package domain

import "time"

type Permission string

const (
	PermissionView     Permission = "view"
	PermissionEdit     Permission = "edit"
	PermissionDownload Permission = "download"
)

func (p Permission) Valid() bool {
	switch p {
	case PermissionView, PermissionEdit, PermissionDownload:
		return true
	}
	return false
}

// ShareInfo содержит метаданные общего доступа к записи
type ShareInfo struct {
	Recipients []string   `json:"recipients" yaml:"recipients"`
	Permission Permission `json:"permission" yaml:"permission"`
	ExpiresAt  *time.Time `json:"expires_at,omitempty" yaml:"expires_at,omitempty"`
	Public     bool       `json:"public" yaml:"public"`
	Token      string     `json:"token,omitempty" yaml:"token,omitempty"` // только для публичной ссылки
}

func (s ShareInfo) Clone() ShareInfo {
	out := s
	if s.Recipients != nil {
		out.Recipients = append([]string(nil), s.Recipients...)
	}
	if s.ExpiresAt != nil {
		t := *s.ExpiresAt
		out.ExpiresAt = &t
	}
	return out
}

// ShareRequest представляет запрос на предоставление доступа
type ShareRequest struct {
	Emails     []string   `json:"emails"`
	Permission Permission `json:"permission"`
	ExpiresAt  *time.Time `json:"expires_at,omitempty"`
	Password   string     `json:"password,omitempty"`
	IsPublic   bool       `json:"is_public"`
}
