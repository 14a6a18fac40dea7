// Package main provides the CLI entry point for the JHA viewer.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/ukaji3/jha-go/internal/config"
	"github.com/ukaji3/jha-go/pkg/jha"
	"github.com/ukaji3/jha-go/pkg/jha/models"
)

// app holds the settings shared by every subcommand.
type app struct {
	cfg    *config.Config
	file   string
	pretty bool
}

func main() {
	config.SetupEnvironment()

	if err := newRootCmd(config.LoadConfig()).Execute(); err != nil {
		log.Error().Err(err).Msg("jha failed")
		os.Exit(1)
	}
}

func newRootCmd(cfg *config.Config) *cobra.Command {
	a := &app{cfg: cfg}

	rootCmd := &cobra.Command{
		Use:   "jha",
		Short: "Browse and export Job Hazard Analysis workbooks",
		Long: `jha reads a "JHA by Division" workbook and shows tasks, primary hazards
and primary controls per division. Edited selections export as CSV, Excel
or PDF.`,
		SilenceUsage: true,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&a.file, "file", "f", "", "Workbook path (default: search --dir)")
	flags.StringVar(&a.cfg.Dir, "dir", a.cfg.Dir, "Directory searched for the workbook")
	flags.BoolVar(&a.pretty, "pretty", false, "Pretty-print JSON output")

	rootCmd.AddCommand(
		a.serveCmd(),
		a.overviewCmd(),
		a.sheetsCmd(),
		a.divisionsCmd(),
		a.searchCmd(),
		a.analyticsCmd(),
		a.exportCmd(),
		a.dumpCmd(),
	)
	return rootCmd
}

// workbookPath returns --file when given, otherwise the workbook found in
// the configured directory.
func (a *app) workbookPath() (string, error) {
	if a.file != "" {
		return a.file, nil
	}
	return jha.FindFile(a.cfg.Dir, a.cfg.File)
}

func (a *app) load() (*models.Workbook, error) {
	path, err := a.workbookPath()
	if err != nil {
		return nil, err
	}
	return jha.Load(path, a.cfg.Options())
}

func (a *app) printJSON(cmd *cobra.Command, v interface{}) error {
	var (
		data []byte
		err  error
	)
	if a.pretty {
		data, err = json.MarshalIndent(v, "", "  ")
	} else {
		data, err = json.Marshal(v)
	}
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return err
}
