package cache

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"randbg/internal/domain"
)

// FileCache persists the most recent selection as a single line of plain
// text. A missing file means no selection has been recorded yet; any other
// read failure is fatal, since silently ignoring it would defeat the
// avoid-repeat guarantee.
type FileCache struct {
	logger *zap.Logger
	path   string
}

// NewFileCache creates a cache backed by the configured cache file
func NewFileCache(logger *zap.Logger, cfg domain.Config) *FileCache {
	return &FileCache{logger: logger, path: cfg.GetCacheFile()}
}

// Read returns the previously applied wallpaper path, or "" on first run
func (c *FileCache) Read() (string, error) {
	data, err := os.ReadFile(c.path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", fmt.Errorf("%w: %v", domain.ErrCacheRead, err)
	}

	previous := strings.TrimSpace(string(data))
	if previous != "" {
		c.logger.Info("Previously used wallpaper", zap.String("path", previous))
	}
	return previous, nil
}

// Write replaces the cache content with path. The content goes to a
// temporary file first and is renamed into place, so an interrupted run
// cannot leave a half-written cache behind.
func (c *FileCache) Write(path string) error {
	tmp, err := os.CreateTemp(filepath.Dir(c.path), ".randbg-*")
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrCacheWrite, err)
	}

	_, werr := tmp.WriteString(path)
	werr = multierr.Append(werr, tmp.Close())
	if werr != nil {
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("%w: %v", domain.ErrCacheWrite, werr)
	}

	if err := os.Rename(tmp.Name(), c.path); err != nil {
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("%w: %v", domain.ErrCacheWrite, err)
	}

	c.logger.Debug("Cache updated", zap.String("path", path))
	return nil
}
