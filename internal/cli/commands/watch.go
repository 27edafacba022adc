package commands

import (
	"fmt"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/fsnotify/fsnotify"
	"github.com/fusion17com/dxf-cleaner/internal/cleaner"
	"github.com/spf13/cobra"
)

// NewWatchCommand creates the watch command.
func NewWatchCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "watch <dir>",
		Short: "Watch a directory and clean DXF files as they arrive",
		Long: `Watch a directory and clean each .dxf file that is created or modified in
it. Files are processed one at a time in arrival order. Stop with Ctrl-C.`,
		Example: `  dxfclean watch incoming --output-dir cleaned`,
		Args:    cobra.ExactArgs(1),
		RunE:    runWatch,
	}
}

func runWatch(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := getConfig(ctx)
	r := getRenderer(ctx)
	log := getLogger(ctx)

	dir := args[0]
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}
	log.Info("watching directory", "dir", dir)

	opts := cleaner.Options{OutputDir: cfg.OutputDir, Suffix: cfg.Suffix, Logger: log}
	suffix := cfg.Suffix
	if suffix == "" {
		suffix = cleaner.DefaultSuffix
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) {
				continue
			}
			if !watchable(event.Name, suffix) {
				continue
			}
			log.Debug("file event", "op", event.Op.String(), "path", event.Name)

			res, err := cleaner.Clean(event.Name, opts)
			if err != nil {
				r.Errorf("%s: %v", event.Name, err)
				continue
			}
			for _, w := range res.Warnings {
				r.Warningf("%s: %s", event.Name, w)
			}
			r.Successf("%s -> %s (%d layers, %d entities)",
				event.Name, res.OutputPath, res.Layers, res.Entities)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			r.Errorf("watch: %v", err)
		}
	}
}

// watchable filters events down to DXF sources: already-cleaned files and
// the writer's temporary files are skipped so outputs never feed back in.
func watchable(path, suffix string) bool {
	base := filepath.Base(path)
	if strings.HasPrefix(base, ".") {
		return false
	}
	if !strings.EqualFold(filepath.Ext(base), ".dxf") {
		return false
	}
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	return !strings.HasSuffix(stem, suffix)
}
