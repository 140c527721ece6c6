package cli

import (
	"bytes"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rjsky311/GHS-label-quick-search/internal/application/export"
	"github.com/rjsky311/GHS-label-quick-search/internal/infrastructure/monitoring/logging"
)

func newExportCmd() *cobra.Command {
	var format, out string

	cmd := &cobra.Command{
		Use:     "export <query>...",
		Short:   "Search and write the results as an XLSX or CSV file",
		Example: "  ghsq export --format csv --out labels.csv 64-17-5 67-64-1",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := export.ParseFormat(format)
			if err != nil {
				return err
			}
			if out == "" {
				out = f.Filename()
			}

			cliCtx, err := GetCLIContext(cmd)
			if err != nil {
				return err
			}
			backend, err := cliCtx.Backend()
			if err != nil {
				return err
			}
			defer backend.Close()

			ctx, cancel := commandContext(cmd, cliCtx)
			defer cancel()

			results, err := backend.Search(ctx, args)
			if err != nil {
				return err
			}

			var buf bytes.Buffer
			if err := backend.Export(ctx, f, results, &buf); err != nil {
				return err
			}
			if err := os.WriteFile(out, buf.Bytes(), 0o644); err != nil {
				return fmt.Errorf("write %s: %w", out, err)
			}

			cliCtx.Logger.Info("export written",
				logging.String("file", out),
				logging.String("format", string(f)),
				logging.Int("rows", len(results)))
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %d rows to %s\n", len(results), out)
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", string(export.FormatXLSX), "file format (xlsx, csv)")
	cmd.Flags().StringVar(&out, "out", "", "output file (default: ghs_results.<format>)")
	return cmd
}
