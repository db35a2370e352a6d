package domain

import "errors"

// Sentinel errors for the failure stages of a run. Components wrap these
// with fmt.Errorf and %w; callers check them with errors.Is.
var (
	// ErrDirectoryNotFound indicates the wallpaper folder does not exist
	ErrDirectoryNotFound = errors.New("wallpaper folder not found")

	// ErrNoCandidates indicates the folder holds no supported image files
	ErrNoCandidates = errors.New("no wallpaper candidates found")

	// ErrCacheRead indicates the cache file exists but could not be read
	ErrCacheRead = errors.New("cannot read wallpaper cache")

	// ErrCacheWrite indicates the new selection could not be persisted
	ErrCacheWrite = errors.New("cannot write wallpaper cache")

	// ErrApplyCommand indicates the changer failed to launch or exited non-zero
	ErrApplyCommand = errors.New("wallpaper changer failed")
)
