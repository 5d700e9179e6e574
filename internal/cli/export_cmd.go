package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alexanderramin/moneybae/internal/export"
	"github.com/spf13/cobra"
)

func newExportCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export a ledger or PTO year to an .xlsx workbook",
	}

	cmd.AddCommand(
		newExportLedgerCmd(app),
		newExportPTOCmd(app),
	)

	return cmd
}

func newExportLedgerCmd(app *App) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "ledger <id>",
		Short: "Export a ledger's bills, incomes and summary",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			id, err := resolveLedgerID(ctx, app, args[0])
			if err != nil {
				return err
			}
			detail, err := app.Ledgers.Detail(ctx, id)
			if err != nil {
				return err
			}
			if out == "" {
				out = fmt.Sprintf("ledger-%s.xlsx", detail.Ledger.Date.Format("2006-01"))
			}
			if err := writeFile(out, func(w io.Writer) error { return export.Ledger(w, detail) }); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", out)
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "Output path (default ledger-YYYY-MM.xlsx)")

	return cmd
}

func newExportPTOCmd(app *App) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "pto <year|id>",
		Short: "Export a PTO year's plans, holidays and summary",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			id, err := resolvePTOID(ctx, app, args[0])
			if err != nil {
				return err
			}
			detail, err := app.PTO.Detail(ctx, id)
			if err != nil {
				return err
			}
			if out == "" {
				out = fmt.Sprintf("pto-%d.xlsx", detail.PTO.Year)
			}
			if err := writeFile(out, func(w io.Writer) error { return export.PTOYear(w, detail) }); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", out)
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "Output path (default pto-YYYY.xlsx)")

	return cmd
}

// writeFile creates path and streams the export into it. A failed export
// removes the partial file.
func writeFile(path string, write func(io.Writer) error) (err error) {
	if !strings.HasSuffix(strings.ToLower(path), ".xlsx") {
		return fmt.Errorf("export path %q must end in .xlsx", path)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("closing %s: %w", path, cerr)
		}
		if err != nil {
			_ = os.Remove(path)
		}
	}()
	return write(f)
}
