package repository

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"cloudbox/internal/domain"
)

//go:embed seed/default.yaml
var defaultSeed []byte

// Seed описывает начальное состояние: коллекцию и профиль пользователя
type Seed struct {
	Files []domain.FileRecord `yaml:"files"`
	User  domain.User         `yaml:"user"`
}

// LoadSeed читает seed из YAML файла, при пустом пути используется встроенный seed
func LoadSeed(path string) (*Seed, error) {
	data := defaultSeed
	if path != "" {
		var err error
		data, err = os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read seed file: %w", err)
		}
	}
	return ParseSeed(data)
}

func ParseSeed(data []byte) (*Seed, error) {
	var seed Seed
	if err := yaml.Unmarshal(data, &seed); err != nil {
		return nil, fmt.Errorf("failed to parse seed: %w", err)
	}

	for i := range seed.Files {
		f := &seed.Files[i]
		switch f.Kind {
		case "", domain.KindFile, domain.KindFolder:
		default:
			return nil, fmt.Errorf("record %q: unknown kind %q", f.ID, f.Kind)
		}
		switch f.State {
		case "", domain.StateActive, domain.StateTrashed:
		default:
			return nil, fmt.Errorf("record %q: unknown state %q", f.ID, f.State)
		}
		f.Normalize()
	}

	return &seed, nil
}
