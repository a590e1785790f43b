package domain

import (
	"fmt"
	"strings"
)

// SortKey задает порядок сортировки списка файлов
type SortKey int

const (
	SortByName SortKey = iota
	SortBySize
	SortByDate
	SortByType
)

var sortKeyNames = [...]string{
	SortByName: "name",
	SortBySize: "size",
	SortByDate: "date",
	SortByType: "type",
}

func (k SortKey) String() string {
	if k < 0 || int(k) >= len(sortKeyNames) {
		return fmt.Sprintf("SortKey(%d)", int(k))
	}
	return sortKeyNames[k]
}

// ParseSortKey разбирает ключ сортировки, пустая строка означает сортировку по имени
func ParseSortKey(s string) (SortKey, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return SortByName, nil
	}
	for i, name := range sortKeyNames {
		if name == s {
			return SortKey(i), nil
		}
	}
	return SortByName, fmt.Errorf("%w: %q", ErrInvalidSortKey, s)
}

func (k SortKey) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *SortKey) UnmarshalText(text []byte) error {
	parsed, err := ParseSortKey(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}
