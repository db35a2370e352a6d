package domain

import "context"

//go:generate mockgen -source=interfaces.go -destination=mocks/interfaces_mock.go -package=mocks

// Config defines the interface for application configuration
type Config interface {
	// GetCacheFile returns the path of the recent-selection cache file
	GetCacheFile() string

	// GetWallpaperFolder returns the directory scanned for wallpapers
	GetWallpaperFolder() string

	// GetChangerCommand returns the external command used to apply a wallpaper
	GetChangerCommand() string
}

// Scanner lists the image files eligible for selection
type Scanner interface {
	// Scan returns the supported image files directly inside dir,
	// non-recursively. Zero matches is an error, not an empty slice.
	Scan(dir string) ([]string, error)
}

// Cache persists the path of the most recently applied wallpaper
type Cache interface {
	// Read returns the cached path, or "" when no cache exists yet
	Read() (string, error)

	// Write replaces the full cache content with path
	Write(path string) error
}

// Rand draws uniform random indexes.
// Injected so tests can fix the draw deterministically.
type Rand interface {
	// IntN returns a uniform value in [0, n). n must be positive.
	IntN(n int) int
}

// Selector picks one candidate, avoiding the excluded path when possible
type Selector interface {
	// Select draws one path from candidates. exclude is removed from the
	// draw unless it is the only candidate left.
	Select(candidates []string, exclude string) (string, error)
}

// Applier invokes the external wallpaper changer
type Applier interface {
	// Apply sets the wallpaper to imagePath and blocks until the changer exits
	Apply(ctx context.Context, imagePath string) error
}

// Notifier posts desktop notifications about the run outcome
type Notifier interface {
	// Changed announces a successfully applied wallpaper
	Changed(imagePath string) error

	// Warn posts a sticky warning message that stays until dismissed
	Warn(body string) error
}
