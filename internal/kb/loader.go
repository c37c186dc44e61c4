package kb

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/amrwatch/analyzer/internal/models"
)

// LoadSeed parses YAML seed bytes into validated storage entries.
func LoadSeed(data []byte) ([]*models.KnowledgeBaseEntry, error) {
	var file SeedFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse knowledge base seed: %w", err)
	}

	entries := make([]*models.KnowledgeBaseEntry, 0, len(file.Entries))
	for _, s := range file.Entries {
		entry, err := MapToEntry(s)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// LoadSeedFile reads and parses a YAML seed file from disk.
func LoadSeedFile(path string) ([]*models.KnowledgeBaseEntry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read knowledge base seed %s: %w", path, err)
	}
	return LoadSeed(data)
}
