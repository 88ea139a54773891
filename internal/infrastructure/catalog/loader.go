package catalog

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/nutritrack/backend/internal/domain"
)

//go:embed foods.yaml
var defaultCatalog []byte

type catalogFile struct {
	Foods []domain.FoodRecord `yaml:"foods"`
}

// Load reads the food catalog from a YAML file. An empty path loads the
// catalog bundled with the binary.
func Load(path string) ([]domain.FoodRecord, error) {
	if path == "" {
		return Parse(defaultCatalog)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: reading %s: %v", domain.ErrInvalidCatalog, path, err)
	}
	return Parse(data)
}

// Parse decodes and validates a YAML food catalog
func Parse(data []byte) ([]domain.FoodRecord, error) {
	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidCatalog, err)
	}

	for i, food := range file.Foods {
		if err := food.Validate(); err != nil {
			return nil, fmt.Errorf("%w: entry %d: %v", domain.ErrInvalidCatalog, i, err)
		}
	}

	if file.Foods == nil {
		file.Foods = []domain.FoodRecord{}
	}
	return file.Foods, nil
}
