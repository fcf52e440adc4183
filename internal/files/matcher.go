// Package files resolves working directories and glob patterns into
// concrete file sets for the batch scripts and listing commands.
package files

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"ssf/internal/log"
	"ssf/pkg/types"

	"github.com/gobwas/glob"
)

// matcher wraps a compiled glob. Patterns without a separator match
// the base name; patterns containing "/" match right-anchored against
// the trailing path components, the way the listing and batch
// commands document it.
type matcher struct {
	pattern  glob.Glob
	segments int // 0 when matching base names only
}

func newMatcher(pattern string) (*matcher, error) {
	if strings.ContainsRune(pattern, '/') {
		g, err := glob.Compile(pattern, '/')
		if err != nil {
			return nil, fmt.Errorf("invalid pattern %q: %w", pattern, err)
		}
		return &matcher{pattern: g, segments: strings.Count(pattern, "/") + 1}, nil
	}
	g, err := glob.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid pattern %q: %w", pattern, err)
	}
	return &matcher{pattern: g}, nil
}

func (m *matcher) matches(name, path string) bool {
	if m.segments == 0 {
		return m.pattern.Match(name)
	}
	comps := strings.Split(filepath.ToSlash(path), "/")
	if len(comps) < m.segments {
		return false
	}
	tail := strings.Join(comps[len(comps)-m.segments:], "/")
	return m.pattern.Match(tail)
}

// Match resolves root and pattern into a set of regular files. In
// recursive mode the pattern is applied to every descendant; otherwise
// only to direct children of root. Hidden-prefixed entries are matched
// by "*" like any other name; that is the glob library's behavior, not
// a special case here. An empty result is not an error.
func Match(root, pattern string, recursive bool) ([]types.FileInfo, error) {
	return scan(root, pattern, recursive, false)
}

// ListEntries is the listing-only variant of Match: directories are
// included in the result.
func ListEntries(root, pattern string, recursive bool) ([]types.FileInfo, error) {
	return scan(root, pattern, recursive, true)
}

func scan(root, pattern string, recursive, includeDirs bool) ([]types.FileInfo, error) {
	m, err := newMatcher(pattern)
	if err != nil {
		return nil, err
	}

	var matched []types.FileInfo

	if !recursive {
		entries, err := os.ReadDir(root)
		if err != nil {
			return nil, fmt.Errorf("failed to read directory %s: %w", root, err)
		}
		for _, entry := range entries {
			if entry.IsDir() && !includeDirs {
				continue
			}
			if !m.matches(entry.Name(), entry.Name()) {
				continue
			}
			info, err := entry.Info()
			if err != nil {
				log.Debug("skipping %s: %v", entry.Name(), err)
				continue
			}
			matched = append(matched, types.NewFileInfo(filepath.Join(root, entry.Name()), info))
		}
		return matched, nil
	}

	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == root {
				return fmt.Errorf("failed to read directory %s: %w", root, err)
			}
			log.Debug("skipping %s: %v", path, err)
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if path == root {
			return nil
		}
		if d.IsDir() && !includeDirs {
			return nil
		}
		rel, relErr := filepath.Rel(root, path)
		if relErr != nil {
			rel = path
		}
		if !m.matches(d.Name(), rel) {
			return nil
		}
		info, infoErr := d.Info()
		if infoErr != nil {
			log.Debug("skipping %s: %v", path, infoErr)
			return nil
		}
		matched = append(matched, types.NewFileInfo(path, info))
		return nil
	})
	if err != nil {
		return nil, err
	}
	return matched, nil
}

// Exclude drops every file whose name or path matches any of the
// given patterns, using the same glob semantics Match applies. The
// order of the surviving files is preserved. Invalid exclusion
// patterns are skipped with a warning rather than failing the batch.
func Exclude(matched []types.FileInfo, patterns []string) []types.FileInfo {
	if len(patterns) == 0 {
		return matched
	}

	matchers := make([]*matcher, 0, len(patterns))
	for _, p := range patterns {
		m, err := newMatcher(p)
		if err != nil {
			log.Warn("ignoring exclude pattern %q: %v", p, err)
			continue
		}
		matchers = append(matchers, m)
	}

	filtered := make([]types.FileInfo, 0, len(matched))
	for _, file := range matched {
		excluded := false
		for _, m := range matchers {
			if m.matches(file.Name, file.Path) {
				excluded = true
				break
			}
		}
		if !excluded {
			filtered = append(filtered, file)
		}
	}
	return filtered
}
