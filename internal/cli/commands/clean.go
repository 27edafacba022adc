package commands

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/fusion17com/dxf-cleaner/internal/cleaner"
	"github.com/fusion17com/dxf-cleaner/internal/cli/config"
	"github.com/spf13/cobra"
)

// CleanOptions holds options for the clean command.
type CleanOptions struct {
	Force bool // overwrite existing outputs
}

// cleanReport is the JSON shape of one processed file.
type cleanReport struct {
	Input    string   `json:"input"`
	Output   string   `json:"output,omitempty"`
	Layers   int      `json:"layers,omitempty"`
	Entities int      `json:"entities,omitempty"`
	Warnings []string `json:"warnings,omitempty"`
	Error    string   `json:"error,omitempty"`
}

// NewCleanCommand creates the clean command.
func NewCleanCommand() *cobra.Command {
	opts := &CleanOptions{}
	cmd := &cobra.Command{
		Use:   "clean <file>...",
		Short: "Clean one or more DXF files",
		Long: `Rebuild each DXF file with only the layer table and the LINE, CIRCLE,
and ARC entities, writing <name>` + config.DefaultSuffix + `.dxf into the output directory.

Files are processed sequentially; one file failing does not stop the rest
of the batch.`,
		Example: `  # Clean a single drawing into ./Output
  dxfclean clean floorplan.dxf

  # Clean a batch into a custom directory and archive the sources
  dxfclean clean --output-dir cleaned --archive-dir done *.dxf`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runClean(cmd, args, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.Force, "force", false, "Overwrite existing output files")

	return cmd
}

func runClean(cmd *cobra.Command, args []string, opts *CleanOptions) error {
	ctx := cmd.Context()
	cfg := getConfig(ctx)
	r := getRenderer(ctx)
	log := getLogger(ctx)

	cleanOpts := cleaner.Options{OutputDir: cfg.OutputDir, Suffix: cfg.Suffix, Logger: log}

	var reports []cleanReport
	failed := 0
	for _, path := range args {
		report := cleanReport{Input: path}

		outPath := filepath.Join(cfg.OutputDir, cleaner.OutputName(path, cfg.Suffix))
		if !opts.Force {
			if _, err := os.Stat(outPath); err == nil {
				report.Error = "output exists, use --force to overwrite"
				reports = append(reports, report)
				r.Warningf("%s: output %s exists, skipping (use --force to overwrite)", path, outPath)
				continue
			}
		}

		log.Debug("cleaning file", "path", path)
		res, err := cleaner.Clean(path, cleanOpts)
		if err != nil {
			failed++
			report.Error = err.Error()
			reports = append(reports, report)
			r.Errorf("%s: %v", path, err)
			continue
		}

		report.Output = res.OutputPath
		report.Layers = res.Layers
		report.Entities = res.Entities
		for _, w := range res.Warnings {
			report.Warnings = append(report.Warnings, w.String())
			r.Warningf("%s: %s", path, w)
		}

		if cfg.ArchiveDir != "" {
			if err := archive(path, cfg.ArchiveDir); err != nil {
				r.Warningf("%s: %v", path, err)
			} else {
				log.Debug("archived input", "path", path, "dir", cfg.ArchiveDir)
			}
		}

		reports = append(reports, report)
		if !r.IsJSON() {
			r.Successf("%s -> %s (%d layers, %d entities)", path, res.OutputPath, res.Layers, res.Entities)
		}
	}

	if r.IsJSON() {
		if err := r.JSON(reports); err != nil {
			return err
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d files failed", failed, len(args))
	}
	return nil
}

// archive moves a processed input into dir, copying across filesystems when
// rename is not possible.
func archive(path, dir string) error {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("archive %s: %w", path, err)
	}
	dst := filepath.Join(dir, filepath.Base(path))
	if err := os.Rename(path, dst); err == nil {
		return nil
	}

	src, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("archive %s: %w", path, err)
	}
	defer src.Close()

	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("archive %s: %w", path, err)
	}
	if _, err := io.Copy(out, src); err != nil {
		out.Close()
		os.Remove(dst)
		return fmt.Errorf("archive %s: %w", path, err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("archive %s: %w", path, err)
	}
	return os.Remove(path)
}
