package transport

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ReadFile loads an instance from path. Files ending in .yaml or .yml are
// decoded with ReadYAML, anything else with ReadText.
func ReadFile(path string) (*Problem, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var p *Problem
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		p, err = ReadYAML(f)
	default:
		p, err = ReadText(f)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return p, nil
}
