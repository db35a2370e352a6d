package applier

import (
	"context"
	"fmt"
	"os/exec"
	"strings"

	"go.uber.org/zap"

	"randbg/internal/domain"
)

// changerTemplate describes the invocation shape of a known wallpaper
// changer. %s is replaced with the image path.
type changerTemplate struct {
	Binary string
	Args   []string
}

// knownChangers holds the changers whose argument conventions we carry.
// swww needs its img subcommand plus the transition settings; everything
// else is invoked with the image path as its only argument.
var knownChangers = []changerTemplate{
	{Binary: "swww", Args: []string{
		"img",
		"--transition-type", "any",
		"--transition-step", "30",
		"--transition-duration", "3",
		"--transition-fps", "165",
		"%s",
	}},
}

// CommandApplier shells out to the configured wallpaper changer and blocks
// until it exits
type CommandApplier struct {
	logger  *zap.Logger
	command string
}

// NewCommandApplier creates an applier for the configured changer command
func NewCommandApplier(logger *zap.Logger, cfg domain.Config) *CommandApplier {
	return &CommandApplier{logger: logger, command: cfg.GetChangerCommand()}
}

// buildArgs resolves the argument list for the configured changer
func (a *CommandApplier) buildArgs(imagePath string) []string {
	for _, tpl := range knownChangers {
		if tpl.Binary != a.command {
			continue
		}
		args := make([]string, len(tpl.Args))
		for i, arg := range tpl.Args {
			args[i] = strings.ReplaceAll(arg, "%s", imagePath)
		}
		return args
	}
	return []string{imagePath}
}

// Apply sets the wallpaper to imagePath. A launch failure or a non-zero
// exit reports the changer's combined output in the error.
func (a *CommandApplier) Apply(ctx context.Context, imagePath string) error {
	args := a.buildArgs(imagePath)

	a.logger.Debug("Applying wallpaper",
		zap.String("command", a.command),
		zap.Strings("args", args))

	cmd := exec.CommandContext(ctx, a.command, args...)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("%w: %s: %v (output: %s)",
			domain.ErrApplyCommand, a.command, err, strings.TrimSpace(string(output)))
	}

	a.logger.Info("Wallpaper set successfully",
		zap.String("command", a.command),
		zap.String("path", imagePath))

	return nil
}
