package formats

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// YAMLLevel represents the YAML structure for a level file.
type YAMLLevel struct {
	ID          string            `yaml:"id"`
	Name        string            `yaml:"name"`
	Author      string            `yaml:"author,omitempty"`
	Description string            `yaml:"description,omitempty"`
	Grid        []string          `yaml:"grid"` // Rows of level symbols, walls included
	Metadata    map[string]string `yaml:"metadata,omitempty"`
}

// ParseYAML parses a YAML level file.
func ParseYAML(data []byte) (Level, error) {
	var yl YAMLLevel
	if err := yaml.Unmarshal(data, &yl); err != nil {
		return Level{}, fmt.Errorf("yaml unmarshal: %w", err)
	}

	if len(yl.Grid) == 0 {
		return Level{}, formatError(CodeMissingHeader, "level has no grid")
	}

	rows, cols, placements, err := parseGrid(yl.Grid)
	if err != nil {
		return Level{}, err
	}

	return Level{
		ID:          yl.ID,
		Name:        yl.Name,
		Author:      yl.Author,
		Description: yl.Description,
		Rows:        rows,
		Cols:        cols,
		Placements:  placements,
		Metadata:    yl.Metadata,
	}, nil
}
