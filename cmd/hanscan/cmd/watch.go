package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	fswatch "github.com/corey/hanscan/internal/adapters/fsnotify"
	"github.com/corey/hanscan/internal/pkg/logger"
	"github.com/corey/hanscan/internal/ports"
)

var watchCmd = &cobra.Command{
	Use:   "watch [path]",
	Short: "Scan, then rescan whenever a source file changes",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runWatch,
}

func init() {
	addScanFlags(watchCmd)
}

func runWatch(c *cobra.Command, args []string) error {
	root, err := scanRoot(args)
	if err != nil {
		return err
	}
	settings, err := resolveSettings(c, root)
	if err != nil {
		return err
	}
	if err := logger.Init(settings.LogLevel, "console"); err != nil {
		return err
	}
	defer logger.Sync()

	scanner, cleanup, err := buildScanner(root, settings)
	if err != nil {
		return err
	}
	defer cleanup()

	exclude := strings.Join(settings.Exclude, ",")
	out := c.OutOrStdout()

	rescan := func() {
		results, scanErr := scanner.Scan(root, exclude)
		if scanErr != nil {
			logger.Error("scan failed", zap.Error(scanErr))
			return
		}
		fmt.Fprintf(out, "%s── %s ──%s\n", colorGray, time.Now().Format("15:04:05"), colorReset)
		if renderErr := renderResults(out, root, results, settings.Format); renderErr != nil {
			logger.Error("render failed", zap.Error(renderErr))
		}
	}

	rescan()

	// Change events funnel into a single rescan loop; bursts between rescans
	// coalesce into one pass.
	kick := make(chan struct{}, 1)
	var watcher ports.Watcher
	watcher, err = fswatch.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Stop()

	err = watcher.Watch(root, func(path string) {
		logger.Debug("source changed", zap.String("path", path))
		select {
		case kick <- struct{}{}:
		default:
		}
	})
	if err != nil {
		return err
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	fmt.Fprintf(out, "%swatching %s (ctrl-c to stop)%s\n", colorGray, root, colorReset)

	for {
		select {
		case <-kick:
			rescan()
		case <-stop:
			return nil
		}
	}
}
