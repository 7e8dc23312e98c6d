package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/idilsaglam/listmanager/internal/model"
)

// Read-only seed data. The file is parsed once at startup and handed to
// Store.Load; nothing is ever written back.

// LoadFixture reads seed items from a .json, .yaml or .yml file.
func LoadFixture(path string) ([]model.Item, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fixture: %w", err)
	}

	var items []model.Item
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		if err := json.Unmarshal(b, &items); err != nil {
			return nil, fmt.Errorf("json unmarshal: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(b, &items); err != nil {
			return nil, fmt.Errorf("yaml unmarshal: %w", err)
		}
	default:
		return nil, fmt.Errorf("fixture %s: unsupported extension %q", path, ext)
	}

	for i := range items {
		items[i].Title = strings.TrimSpace(items[i].Title)
		items[i].Subtitle = strings.TrimSpace(items[i].Subtitle)
		if fe := model.Validate(items[i].Title, items[i].Subtitle); !fe.Valid() {
			return nil, fmt.Errorf("fixture item %d: %s", i+1, strings.Join(fe.Messages(), " "))
		}
	}
	if items == nil {
		items = []model.Item{}
	}
	return items, nil
}
