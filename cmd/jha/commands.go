package main

import (
	"fmt"
	"os"
	"path/filepath"
	"text/tabwriter"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/ukaji3/jha-go/pkg/jha/lookup"
	"github.com/ukaji3/jha-go/pkg/jha/models"
	"github.com/ukaji3/jha-go/pkg/jha/output"
	"github.com/ukaji3/jha-go/pkg/jha/session"
	"github.com/ukaji3/jha-go/pkg/jha/views"
)

func (a *app) overviewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "overview",
		Short: "Print the landing sheet text",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			wb, err := a.load()
			if err != nil {
				return err
			}
			v, err := views.Overview(wb)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, p := range append(v.Paragraphs, v.Shapes...) {
				fmt.Fprintf(out, "%s\n\n", p)
			}
			return nil
		},
	}
}

func (a *app) sheetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sheets",
		Short: "List sheets with their row and column counts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			wb, err := a.load()
			if err != nil {
				return err
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "#\tSHEET\tROWS\tCOLUMNS")
			for _, s := range views.Sheets(wb) {
				fmt.Fprintf(tw, "%d\t%s\t%d\t%d\n", s.Index, s.Name, s.Rows, s.Columns)
			}
			return tw.Flush()
		},
	}
}

func (a *app) divisionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "divisions",
		Short: "List selectable divisions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			wb, err := a.load()
			if err != nil {
				return err
			}
			divisions, err := views.Divisions(wb)
			if err != nil {
				return err
			}
			for _, d := range divisions[1:] {
				fmt.Fprintln(cmd.OutOrStdout(), d)
			}
			return nil
		},
	}
}

func (a *app) searchCmd() *cobra.Command {
	var division string
	cmd := &cobra.Command{
		Use:   "search",
		Short: "Show tasks, hazards and controls of a division as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			wb, err := a.load()
			if err != nil {
				return err
			}
			v, err := views.Search(wb, division, session.NewEditor())
			if err != nil {
				return err
			}
			return a.printJSON(cmd, v)
		},
	}
	cmd.Flags().StringVarP(&division, "division", "d", lookup.NoSelection, "Division to show")
	return cmd
}

func (a *app) analyticsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "analytics",
		Short: "Count key tasks per division",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			wb, err := a.load()
			if err != nil {
				return err
			}
			v, err := views.Analytics(wb)
			if err != nil {
				return err
			}
			if !v.Available {
				log.Warn().Msg("No Division column detected in the key JHA sheet")
			}
			return a.printJSON(cmd, v)
		},
	}
}

func (a *app) exportCmd() *cobra.Command {
	var (
		division   string
		format     string
		outputPath string
		edits      = make(map[session.Field]*string, len(session.Fields))
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the combined task, hazards and controls of a division",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := output.ParseFormat(format)
			if err != nil {
				return err
			}
			if lookup.IsNoSelection(division) {
				return fmt.Errorf("--division is required")
			}
			wb, err := a.load()
			if err != nil {
				return err
			}

			ed := session.NewEditor()
			if _, err := views.Search(wb, division, ed); err != nil {
				return err
			}
			for _, field := range session.Fields {
				if cmd.Flags().Changed(string(field)) {
					if err := ed.Set(field, *edits[field]); err != nil {
						return err
					}
				}
			}

			res, err := output.Combined(ed.Record(), f)
			if err != nil {
				return err
			}
			path := outputPath
			if path == "" {
				path = res.Filename
			}
			if err := os.WriteFile(path, res.Data, 0644); err != nil {
				return fmt.Errorf("failed to write output: %w", err)
			}
			log.Info().Str("path", path).Str("division", division).Msg("Exported")
			return nil
		},
	}

	cmd.Flags().StringVarP(&division, "division", "d", "", "Division to export")
	cmd.Flags().StringVar(&format, "format", string(output.FormatCSV), "Export format: csv, xlsx, or pdf")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: suggested name)")
	for _, field := range session.Fields {
		edits[field] = cmd.Flags().String(string(field), "", fmt.Sprintf("Replace the %s text", field))
	}
	return cmd
}

func (a *app) dumpCmd() *cobra.Command {
	var dir string
	cmd := &cobra.Command{
		Use:   "dump",
		Short: "Write every sheet as CSV plus the whole workbook as one Excel file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			wb, err := a.load()
			if err != nil {
				return err
			}
			if err := writeSheetFiles(wb, dir); err != nil {
				return fmt.Errorf("failed to write sheet files: %w", err)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&dir, "output", "o", ".", "Output directory")
	return cmd
}

func writeSheetFiles(wb *models.Workbook, dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	results := make([]*output.Result, 0, len(wb.SheetNames)+1)
	for i, name := range wb.SheetNames {
		res, err := output.SheetCSV(name, wb.TableAt(i))
		if err != nil {
			return err
		}
		results = append(results, res)
	}
	res, err := output.WorkbookXLSX(wb)
	if err != nil {
		return err
	}
	results = append(results, res)

	for _, res := range results {
		filename := filepath.Join(dir, res.Filename)
		if err := os.WriteFile(filename, res.Data, 0644); err != nil {
			return err
		}
		log.Debug().Str("path", filename).Msg("Wrote file")
	}
	return nil
}
