package domain

import "time"

type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

func (t Theme) Valid() bool {
	return t == ThemeLight || t == ThemeDark
}

// Preferences содержит два сохраняемых флага: признак сессии и тему
type Preferences struct {
	Authenticated bool      `json:"authenticated" db:"authenticated"`
	Theme         Theme     `json:"theme" db:"theme"`
	UpdatedAt     time.Time `json:"updated_at" db:"updated_at"`
}

type User struct {
	ID       string    `json:"id" yaml:"id"`
	Name     string    `json:"name" yaml:"name"`
	Email    string    `json:"email" yaml:"email"`
	Username string    `json:"username" yaml:"username"`
	Avatar   string    `json:"avatar" yaml:"avatar"`
	JoinDate time.Time `json:"join_date" yaml:"join_date"`
	Plan     string    `json:"plan" yaml:"plan"`
}

type SignupRequest struct {
	FullName        string `json:"full_name"`
	Username        string `json:"username"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Session возвращается клиенту после входа и при запросе состояния
type Session struct {
	Preferences Preferences `json:"preferences"`
	User        *User       `json:"user,omitempty"`
}
