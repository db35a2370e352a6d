package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

// Environment variable names. All are optional.
const (
	EnvCacheFile       = "RB_CACHE_FILE"
	EnvWallpaperFolder = "RB_WALLPAPER_FOLDER"
	EnvChangerCommand  = "RB_WALLPAPER_CHANGER"
)

const (
	defaultCacheFile       = "~/.wallpaper"
	defaultWallpaperFolder = "~/Pictures/wallpapers"
	defaultChangerCommand  = "swww"
)

// AppConfig holds the configuration resolved for one run
type AppConfig struct {
	logger          *zap.Logger
	cacheFile       string
	wallpaperFolder string
	changerCommand  string
}

// NewAppConfig resolves configuration from the environment once at startup.
// A .env file in the working directory is loaded first, best effort, and
// never overrides variables already present in the environment.
func NewAppConfig(logger *zap.Logger) *AppConfig {
	_ = godotenv.Load()

	cacheFile := expandPath(getenvOrDefault(EnvCacheFile, defaultCacheFile))
	wallpaperFolder := expandPath(getenvOrDefault(EnvWallpaperFolder, defaultWallpaperFolder))
	changerCommand := getenvOrDefault(EnvChangerCommand, defaultChangerCommand)

	logger.Info("Configuration loaded",
		zap.String("cacheFile", cacheFile),
		zap.String("wallpaperFolder", wallpaperFolder),
		zap.String("changerCommand", changerCommand))

	return &AppConfig{
		logger:          logger,
		cacheFile:       cacheFile,
		wallpaperFolder: wallpaperFolder,
		changerCommand:  changerCommand,
	}
}

// getenvOrDefault reads key from the environment; absent or empty values
// resolve to def
func getenvOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// expandPath expands environment variables and a leading ~ in path
func expandPath(path string) string {
	path = os.ExpandEnv(path)
	if len(path) > 0 && path[0] == '~' {
		home, err := os.UserHomeDir()
		if err == nil {
			path = filepath.Join(home, path[1:])
		}
	}
	return path
}

// GetCacheFile returns the path of the recent-selection cache file
func (c *AppConfig) GetCacheFile() string {
	return c.cacheFile
}

// GetWallpaperFolder returns the directory scanned for wallpapers
func (c *AppConfig) GetWallpaperFolder() string {
	return c.wallpaperFolder
}

// GetChangerCommand returns the external command used to apply a wallpaper
func (c *AppConfig) GetChangerCommand() string {
	return c.changerCommand
}
