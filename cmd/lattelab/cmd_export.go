package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/spboyer/lattelab/internal/config"
	"github.com/spboyer/lattelab/internal/reporting"
	"github.com/spboyer/lattelab/internal/service"
)

func newExportCommand() *cobra.Command {
	var (
		suite     string
		all       bool
		outDir    string
		formatRaw string
		compress  bool
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export suite snapshots to files",
		Long: `Export the current snapshot of one suite (or every suite with --all)
as JSON, markdown, or HTML. Suites that have never been simulated are
generated on first access, exactly as the API does.

With --compress each file is wrapped in a zstd stream and named with a
.zst suffix.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := reporting.ParseFormat(formatRaw)
			if err != nil {
				return err
			}

			settings, err := config.Load()
			if err != nil {
				return fmt.Errorf("loading settings: %w", err)
			}
			svc, closeStore, err := buildService(settings)
			if err != nil {
				return err
			}
			defer closeStore() //nolint:errcheck

			suites := []string{suite}
			if all {
				suites = svc.Catalog().SuiteIDs()
			}

			if err := os.MkdirAll(outDir, 0o755); err != nil {
				return fmt.Errorf("creating output directory: %w", err)
			}

			group, ctx := errgroup.WithContext(cmd.Context())
			for _, id := range suites {
				group.Go(func() error {
					path, err := exportSuite(ctx, svc, id, outDir, format, compress)
					if err != nil {
						return err
					}
					fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
					return nil
				})
			}
			return group.Wait()
		},
	}

	cmd.Flags().StringVar(&suite, "suite", "output", "Suite to export")
	cmd.Flags().BoolVar(&all, "all", false, "Export every suite in the catalog")
	cmd.Flags().StringVarP(&outDir, "out", "o", ".", "Output directory")
	cmd.Flags().StringVar(&formatRaw, "format", "json", "Output format: json, md, html")
	cmd.Flags().BoolVar(&compress, "compress", false, "Wrap output in a zstd stream")

	return cmd
}

func exportSuite(ctx context.Context, svc *service.Service, suite, outDir string, format reporting.Format, compress bool) (string, error) {
	payload, err := svc.GetSnapshot(ctx, suite)
	if err != nil {
		return "", fmt.Errorf("snapshot for %q: %w", suite, err)
	}

	name := suite + "." + format.Ext()
	if compress {
		name += ".zst"
	}
	path := filepath.Join(outDir, name)

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close() //nolint:errcheck

	if err := reporting.Export(f, svc.Catalog().Label(suite), payload, format, compress); err != nil {
		return "", fmt.Errorf("exporting %q: %w", suite, err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("closing %s: %w", path, err)
	}
	return path, nil
}
