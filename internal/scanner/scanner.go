package scanner

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"randbg/internal/domain"
)

// supportedExtensions is the set of image types eligible for selection.
// Extensions are matched case-insensitively.
var supportedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".bmp":  true,
}

// DirScanner lists wallpaper candidates from a single directory
type DirScanner struct {
	logger *zap.Logger
}

// NewDirScanner creates a new directory scanner
func NewDirScanner(logger *zap.Logger) *DirScanner {
	return &DirScanner{logger: logger}
}

// Scan returns the supported image files directly inside dir,
// non-recursively, in directory order
func (s *DirScanner) Scan(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", domain.ErrDirectoryNotFound, dir)
		}
		return nil, fmt.Errorf("failed to read %s: %w", dir, err)
	}

	var candidates []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if !supportedExtensions[strings.ToLower(filepath.Ext(entry.Name()))] {
			continue
		}
		candidates = append(candidates, filepath.Join(dir, entry.Name()))
	}

	if len(candidates) == 0 {
		return nil, fmt.Errorf("%w in %s", domain.ErrNoCandidates, dir)
	}

	s.logger.Debug("Wallpaper folder scanned",
		zap.String("dir", dir),
		zap.Int("candidates", len(candidates)))

	return candidates, nil
}
