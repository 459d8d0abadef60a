package cmd

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/corey/hanscan/internal/adapters/boltcache"
	"github.com/corey/hanscan/internal/config"
	"github.com/corey/hanscan/internal/pkg/logger"
	"github.com/corey/hanscan/internal/ports"
	"github.com/corey/hanscan/internal/scan"
)

var scanCmd = &cobra.Command{
	Use:   "scan [path]",
	Short: "Scan a source tree once and print every match",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runScan,
}

func init() {
	addScanFlags(scanCmd)
}

// addScanFlags registers the flags shared by scan and watch.
func addScanFlags(c *cobra.Command) {
	c.Flags().StringP("exclude", "e", "", "comma-separated ignore patterns, added on top of .gitignore rules")
	c.Flags().StringP("script", "s", "", "script range to match: a named block (see 'hanscan scripts') or hex bounds like 4E00-9FA5")
	c.Flags().IntP("jobs", "j", 0, "parallel file scans (0 = one per CPU)")
	c.Flags().StringP("format", "f", "", "output format: text, json, or ndjson")
	c.Flags().Bool("cache", false, "reuse results for unchanged files via .hanscan/cache.db")
	c.Flags().String("log-level", "", "log level: debug, info, warn, error")
}

// scanRoot resolves the positional path argument, defaulting to the cwd.
func scanRoot(args []string) (string, error) {
	root := "."
	if len(args) > 0 {
		root = args[0]
	}
	return filepath.Abs(root)
}

// resolveSettings merges defaults, the root's .hanscan.toml, and any flags
// the user set, in that order.
func resolveSettings(c *cobra.Command, root string) (config.Settings, error) {
	s := config.Defaults()

	if path := config.Find(root); path != "" {
		cfg, err := config.Load(path)
		if err != nil {
			return s, err
		}
		cfg.Apply(&s)
	}

	flags := c.Flags()
	if flags.Changed("script") {
		s.Script, _ = flags.GetString("script")
	}
	if flags.Changed("jobs") {
		s.Jobs, _ = flags.GetInt("jobs")
	}
	if flags.Changed("format") {
		s.Format, _ = flags.GetString("format")
	}
	if flags.Changed("cache") {
		s.Cache, _ = flags.GetBool("cache")
	}
	if flags.Changed("log-level") {
		s.LogLevel, _ = flags.GetString("log-level")
	}
	if flags.Changed("exclude") {
		extra, _ := flags.GetString("exclude")
		s.Exclude = append(s.Exclude, scan.SplitExcludes(extra)...)
	}

	return s, s.Validate()
}

// buildScanner assembles the engine (and optional cache) from settings.
func buildScanner(root string, s config.Settings) (*scan.Scanner, func(), error) {
	cleanup := func() {}

	var cache ports.Cache
	if s.Cache {
		cacheDir := filepath.Join(root, ".hanscan")
		if err := os.MkdirAll(cacheDir, 0o755); err != nil {
			return nil, cleanup, err
		}
		bc, err := boltcache.Open(filepath.Join(cacheDir, "cache.db"))
		if err != nil {
			return nil, cleanup, err
		}
		cache = bc
		cleanup = func() { _ = bc.Close() }
	}

	scanner, err := scan.New(scan.Options{
		Script: s.Script,
		Jobs:   s.Jobs,
		Cache:  cache,
	})
	if err != nil {
		cleanup()
		return nil, func() {}, err
	}
	return scanner, cleanup, nil
}

func runScan(c *cobra.Command, args []string) error {
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

	results, err := scanner.Scan(root, strings.Join(settings.Exclude, ","))
	if err != nil {
		return err
	}

	return renderResults(c.OutOrStdout(), root, results, settings.Format)
}
