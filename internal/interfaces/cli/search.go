package cli

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/rjsky311/GHS-label-quick-search/internal/application/export"
	"github.com/rjsky311/GHS-label-quick-search/internal/infrastructure/monitoring/logging"
	"github.com/rjsky311/GHS-label-quick-search/pkg/types/ghs"
)

func newSearchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "search <query>...",
		Short: "Look up GHS labels by CAS number or chemical name",
		Example: "  ghsq search 64-17-5 67-64-1\n" +
			"  ghsq search ethanol 乙醇 -o json\n" +
			"  ghsq --server https://ghs.example.com search 7647-01-0",
		Args: cobra.MinimumNArgs(1),
		RunE: runSearch,
	}
}

func runSearch(cmd *cobra.Command, args []string) error {
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

	found := 0
	for _, r := range results {
		if r.Found {
			found++
		}
	}
	cliCtx.Logger.Debug("search completed",
		logging.Int("queries", len(args)),
		logging.Int("found", found))

	return printResults(cmd.OutOrStdout(), cliCtx.OutputFormat, results)
}

func newNameCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "name <query>",
		Short: "List dictionary entries whose name contains the query",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
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

			matches, err := backend.SearchByName(ctx, strings.Join(args, " "))
			if err != nil {
				return err
			}
			return printNameMatches(cmd.OutOrStdout(), cliCtx.OutputFormat, matches)
		},
	}
}

func newPictogramsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pictograms",
		Short: "Print the GHS pictogram reference table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
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

			table, err := backend.Pictograms(ctx)
			if err != nil {
				return err
			}
			return printPictograms(cmd.OutOrStdout(), cliCtx.OutputFormat, table)
		},
	}
}

// ---------------------------------------------------------------------------
// Formatting
// ---------------------------------------------------------------------------

func printResults(w io.Writer, format string, results []ghs.Result) error {
	switch format {
	case OutputJSON:
		return printJSON(w, results)
	case OutputTable:
		rows := make([][]string, len(results))
		for i, r := range results {
			row := export.Row(r, "; ")
			row[4] = colorizeSignal(r.SignalWord, row[4])
			if !r.Found {
				row[5] = color.RedString(notFoundText(r))
			}
			rows[i] = row
		}
		_, err := io.WriteString(w, FormatTable([]string{"CAS No.", "Name", "名稱", "Pictograms", "Signal", "Hazards"}, rows))
		return err
	}

	for i, r := range results {
		if i > 0 {
			fmt.Fprintln(w)
		}
		writeResultText(w, r)
	}
	return nil
}

func writeResultText(w io.Writer, r ghs.Result) {
	header := r.CASNumber
	if name := displayName(r); name != "" {
		header += "  " + name
	}
	if r.Query != "" {
		header += fmt.Sprintf("  (query: %s)", r.Query)
	}
	fmt.Fprintln(w, header)

	if !r.Found {
		fmt.Fprintf(w, "  %s\n", color.RedString(notFoundText(r)))
		return
	}

	cells := export.Row(r, "\n    ")
	fmt.Fprintf(w, "  Signal:     %s\n", colorizeSignal(r.SignalWord, cells[4]))
	fmt.Fprintf(w, "  Pictograms: %s\n", cells[3])
	fmt.Fprintf(w, "  Hazards:\n    %s\n", cells[5])
	if r.HasMultipleClassifications {
		fmt.Fprintf(w, "  Other classifications: %d\n", len(r.OtherClassifications))
	}
}

func displayName(r ghs.Result) string {
	switch {
	case r.NameEN != "" && r.NameZH != "":
		return r.NameEN + " (" + r.NameZH + ")"
	case r.NameEN != "":
		return r.NameEN
	}
	return r.NameZH
}

// colorizeSignal paints text by the severity of the English signal word.
func colorizeSignal(signal, text string) string {
	switch strings.ToLower(signal) {
	case "danger":
		return color.RedString(text)
	case "warning":
		return color.YellowString(text)
	default:
		return text
	}
}

func notFoundText(r ghs.Result) string {
	if r.Error != "" {
		return "not found: " + r.Error
	}
	return "not found"
}

func printNameMatches(w io.Writer, format string, matches []ghs.NameMatch) error {
	if matches == nil {
		matches = []ghs.NameMatch{}
	}
	switch format {
	case OutputJSON:
		return printJSON(w, ghs.NameSearchResponse{Results: matches})
	case OutputTable:
		rows := make([][]string, len(matches))
		for i, m := range matches {
			alias := ""
			if m.Alias {
				alias = "yes"
			}
			rows[i] = []string{m.CASNumber, m.NameEN, m.NameZH, alias}
		}
		_, err := io.WriteString(w, FormatTable([]string{"CAS No.", "Name", "名稱", "Alias"}, rows))
		return err
	}

	if len(matches) == 0 {
		fmt.Fprintln(w, "no matches")
		return nil
	}
	for _, m := range matches {
		fmt.Fprintf(w, "%-12s %s  %s\n", m.CASNumber, m.NameEN, m.NameZH)
	}
	return nil
}

func printPictograms(w io.Writer, format string, table map[string]ghs.Pictogram) error {
	if format == OutputJSON {
		return printJSON(w, table)
	}

	codes := make([]string, 0, len(table))
	for code := range table {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	rows := make([][]string, len(codes))
	for i, code := range codes {
		p := table[code]
		rows[i] = []string{p.Code, p.Icon, p.Name, p.NameZh}
	}
	_, err := io.WriteString(w, FormatTable([]string{"Code", "Icon", "Name", "名稱"}, rows))
	return err
}
