package runner

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"

	"github.com/bmatcuk/doublestar/v4"
	"go.uber.org/zap"

	"github.com/donaldgifford/hbslint/internal/config"
)

// discover expands paths into the list of files to lint. Directories are
// walked recursively and filtered by extension; files named explicitly are
// always kept unless excluded. Unreadable paths are returned as errors and
// do not stop discovery of the rest.
func discover(paths []string, cfg *config.LintConfig, logger *zap.Logger) ([]string, []error) {
	var (
		files []string
		errs  []error
	)
	seen := make(map[string]bool)

	add := func(path string) {
		clean := filepath.Clean(path)
		if seen[clean] {
			return
		}
		seen[clean] = true
		files = append(files, path)
	}

	for _, root := range paths {
		info, err := os.Stat(root)
		if err != nil {
			errs = append(errs, err)
			continue
		}

		if !info.IsDir() {
			if excluded(cfg.Exclude, root, "") {
				logger.Debug(LogMsgPathExcluded, zap.String(LogKeyPath, root))
				continue
			}
			add(root)
			continue
		}

		err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}

			rel, relErr := filepath.Rel(root, path)
			if relErr != nil {
				rel = ""
			}

			if d.IsDir() {
				if path != root && excluded(cfg.Exclude, path, rel) {
					logger.Debug(LogMsgPathExcluded, zap.String(LogKeyPath, path))
					return filepath.SkipDir
				}
				return nil
			}

			if !slices.Contains(cfg.Extensions, filepath.Ext(path)) {
				return nil
			}
			if excluded(cfg.Exclude, path, rel) {
				logger.Debug(LogMsgPathExcluded, zap.String(LogKeyPath, path))
				return nil
			}
			add(path)
			return nil
		})
		if err != nil {
			errs = append(errs, fmt.Errorf("walking %s: %w", root, err))
		}
	}

	return files, errs
}

// excluded reports whether path, or its form relative to the walk root,
// matches any exclude pattern. Patterns use forward slashes on every
// platform.
func excluded(patterns []string, path, rel string) bool {
	candidates := []string{filepath.ToSlash(filepath.Clean(path))}
	if rel != "" && rel != "." {
		candidates = append(candidates, filepath.ToSlash(rel))
	}

	for _, pattern := range patterns {
		for _, c := range candidates {
			// Patterns are validated when the config loads.
			if ok, _ := doublestar.Match(pattern, c); ok {
				return true
			}
		}
	}
	return false
}
