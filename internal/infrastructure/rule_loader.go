package infrastructure

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/Victor-armando18/beverage-commercial/internal/domain"
	cerrors "github.com/Victor-armando18/beverage-commercial/internal/errors"
	"github.com/Victor-armando18/beverage-commercial/internal/infrastructure/yaml"
	"github.com/Victor-armando18/beverage-commercial/internal/interfaces"
)

//go:embed rules/*.yaml
var embeddedRules embed.FS

// FileRuleLoader reads <version>_rules.yaml (or .json) from a directory, or
// from the rule packs compiled into the binary when no directory is set. When
// path names a file, that single pack is used for its declared version.
type FileRuleLoader struct {
	fsys fs.FS
	file string
}

func NewFileRuleLoader(path string) interfaces.RulePackLoader {
	if path == "" {
		sub, _ := fs.Sub(embeddedRules, "rules")
		return &FileRuleLoader{fsys: sub}
	}
	if info, err := os.Stat(path); err == nil && !info.IsDir() {
		return &FileRuleLoader{file: path}
	}
	return &FileRuleLoader{fsys: os.DirFS(path)}
}

func (l *FileRuleLoader) Load(ctx context.Context, version string) (*domain.RulePackDefinition, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if l.file != "" {
		return l.loadFile(version)
	}

	for _, ext := range []string{".yaml", ".yml", ".json"} {
		filename := fmt.Sprintf("%s_rules%s", version, ext)
		data, err := fs.ReadFile(l.fsys, filename)
		if err != nil {
			continue
		}
		def, err := yaml.DecodeRulePack(data)
		if err != nil {
			return nil, cerrors.WrapWithContext(cerrors.ErrCodeInvalidRequest,
				"invalid rule pack", err, map[string]any{"file": filepath.Base(filename)})
		}
		if def.Version != version {
			return nil, cerrors.NewWithContext(cerrors.ErrCodeInvalidRequest,
				fmt.Sprintf("rule pack declares version %q", def.Version),
				map[string]any{"file": filename, "expected": version})
		}
		return def, nil
	}

	return nil, cerrors.NewWithContext(cerrors.ErrCodeNotFound, "rule pack not found",
		map[string]any{"version": version})
}

func (l *FileRuleLoader) loadFile(version string) (*domain.RulePackDefinition, error) {
	def, err := yaml.LoadRulePack(l.file)
	if err != nil {
		return nil, cerrors.WrapWithContext(cerrors.ErrCodeInvalidRequest,
			"invalid rule pack", err, map[string]any{"file": l.file})
	}
	if def.Version != version {
		return nil, cerrors.NewWithContext(cerrors.ErrCodeNotFound,
			fmt.Sprintf("rule pack file holds version %q", def.Version),
			map[string]any{"file": l.file, "version": version})
	}
	return def, nil
}
