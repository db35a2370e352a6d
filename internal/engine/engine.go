package engine

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"randbg/internal/domain"
)

// Engine runs one wallpaper rotation: read the cache, scan the folder,
// pick a candidate, apply it, record the pick.
type Engine struct {
	logger   *zap.Logger
	cfg      domain.Config
	scanner  domain.Scanner
	cache    domain.Cache
	selector domain.Selector
	applier  domain.Applier
	notifier domain.Notifier
}

// NewEngine creates the orchestration engine
func NewEngine(
	logger *zap.Logger,
	cfg domain.Config,
	scan domain.Scanner,
	cache domain.Cache,
	sel domain.Selector,
	apply domain.Applier,
	notif domain.Notifier,
) *Engine {
	return &Engine{
		logger:   logger,
		cfg:      cfg,
		scanner:  scan,
		cache:    cache,
		selector: sel,
		applier:  apply,
		notifier: notif,
	}
}

// Run performs a single rotation. The cache is only updated after the
// changer reported success, so it always names a wallpaper that was
// actually applied.
func (e *Engine) Run(ctx context.Context) error {
	previous, err := e.cache.Read()
	if err != nil {
		return err
	}

	folder := e.cfg.GetWallpaperFolder()
	candidates, err := e.scanner.Scan(folder)
	if err != nil {
		if errors.Is(err, domain.ErrNoCandidates) || errors.Is(err, domain.ErrDirectoryNotFound) {
			e.logger.Warn("No images found", zap.String("folder", folder))
			_ = e.notifier.Warn(fmt.Sprintf("No images found in %s", folder))
		}
		return err
	}

	selected, err := e.selector.Select(candidates, previous)
	if err != nil {
		return err
	}

	if err := e.applier.Apply(ctx, selected); err != nil {
		return err
	}

	// Bookkeeping only: the wallpaper is already on screen, so a failed
	// cache write downgrades to a warning and the run still succeeds.
	if err := e.cache.Write(selected); err != nil {
		e.logger.Warn("Failed to update wallpaper cache", zap.Error(err))
	}

	_ = e.notifier.Changed(selected)

	e.logger.Info("Wallpaper successfully changed", zap.String("path", selected))
	return nil
}
