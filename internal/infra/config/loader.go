package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/aalvaropc/carlens/internal/domain"
)

// Load reads <root>/carlens.yaml and applies it on top of the defaults.
// A missing file is reported as not_found together with the defaults, so
// callers may choose to carry on.
func Load(root string) (domain.Config, error) {
	cfg := domain.DefaultConfig()

	path := filepath.Join(root, FileName)
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, &domain.OpError{
			Op:   "config.load",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}

	return Parse(path, b)
}

// Parse decodes a carlens.yaml document.
func Parse(path string, b []byte) (domain.Config, error) {
	cfg := domain.DefaultConfig()

	var y yamlConfig
	if err := yaml.Unmarshal(b, &y); err != nil {
		return cfg, &domain.OpError{
			Op:   "config.load",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}

	return apply(path, cfg, y.Carlens)
}

// ResolvePath anchors a relative data path at the workspace root.
func ResolvePath(root, p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(root, p)
}
