package tui

import (
	"context"
	"fmt"
	"os/exec"

	"github.com/atotto/clipboard"
	"github.com/tesso57/festdays/internal/application/settings"
	"github.com/tesso57/festdays/internal/application/usecase"
	"go.uber.org/zap"
)

// OSShareCmd allows mocking the native share command.
var OSShareCmd = func(ctx context.Context, name string, args ...string) *exec.Cmd {
	return exec.CommandContext(ctx, name, args...) //nolint:gosec
}

var clipboardWriteAll = clipboard.WriteAll

type commandSharer struct {
	command string
}

// Share runs the configured command with the title, text and URL as
// arguments and waits for it to exit.
func (c commandSharer) Share(ctx context.Context, p usecase.Payload) error {
	cmd := OSShareCmd(ctx, c.command, p.Title, p.Text, p.URL)
	if cmd == nil {
		return fmt.Errorf("share command unavailable")
	}
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("run %s: %w (%s)", c.command, err, out)
	}
	return nil
}

type systemClipboard struct{}

func (systemClipboard) WriteAll(text string) error {
	return clipboardWriteAll(text)
}

// NewShareService wires the platform share targets from the settings. Without
// a share command the clipboard is used.
func NewShareService(cfg settings.Settings, logger *zap.Logger) usecase.ShareService {
	var native usecase.NativeSharer
	if cfg.Share.Command != "" {
		native = commandSharer{command: cfg.Share.Command}
	}
	return usecase.NewShareService(native, systemClipboard{}, cfg.ShareURL(), logger)
}
