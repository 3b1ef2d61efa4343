package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/huh/spinner"
	"github.com/spf13/cobra"

	"github.com/ytget/audion/internal/config"
	"github.com/ytget/audion/internal/export"
	"github.com/ytget/audion/internal/logger"
	"github.com/ytget/audion/internal/session"
)

var (
	exportOut       string
	exportNoSummary bool
	exportPrompt    bool
	exportProgress  bool
	exportSelection playlistFlags
)

// EmptyExportWarning is printed instead of failing when nothing was selected
const EmptyExportWarning = "warning: no playlist to export"

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export a playlist as CSV and a text summary without opening the UI",
	Example: `  audion export --library songs.xlsx --pick 1,4,7 --out ./out
  audion export --genre Pop --all`,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "output directory; defaults to "+config.EnvExportDir+" or the Downloads folder")
	exportCmd.Flags().BoolVar(&exportNoSummary, "no-summary", false, "write only the CSV file")
	exportCmd.Flags().BoolVarP(&exportPrompt, "interactive", "i", false, "choose songs from a checklist in the terminal")
	exportCmd.Flags().BoolVar(&exportProgress, "progress", false, "show a spinner while writing files")
	exportSelection.register(exportCmd)
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	env := config.LoadEnv()
	if err := initHeadlessLogger(env); err != nil {
		return err
	}
	defer logger.Sync()

	rng := newRNG()
	svc := session.NewService(loadLibrary(cmd, env, rng), export.NewService(), rng)
	if err := exportSelection.apply(svc); err != nil {
		return err
	}
	if exportPrompt {
		if err := promptSongs(svc); err != nil {
			return err
		}
	}

	dir := config.ResolveExportDir(exportOut, env.ExportDir)
	var written []string
	write := func(ctx context.Context) error {
		csvPath, err := svc.ExportCSV(dir)
		if err != nil {
			return fmt.Errorf("export csv: %w", err)
		}
		written = append(written, csvPath)

		if exportNoSummary {
			return nil
		}
		summaryPath, err := svc.ExportSummary(dir)
		if err != nil {
			return fmt.Errorf("export summary: %w", err)
		}
		written = append(written, summaryPath)
		return nil
	}

	var err error
	if exportProgress {
		err = spinner.New().Title("Exporting...").Context(cmd.Context()).ActionWithErr(write).Run()
	} else {
		err = write(cmd.Context())
	}
	for _, path := range written {
		fmt.Fprintln(cmd.OutOrStdout(), path)
	}
	if errors.Is(err, export.ErrEmptyPlaylist) {
		fmt.Fprintln(cmd.ErrOrStderr(), EmptyExportWarning)
		return nil
	}
	return err
}

// promptSongs lets the user tick songs of the filtered list. Songs already
// selected by flags start checked.
func promptSongs(svc *session.Service) error {
	visible := svc.Visible()
	if len(visible) == 0 {
		return nil
	}

	options := make([]huh.Option[string], len(visible))
	for i, song := range visible {
		label := fmt.Sprintf("%s | %s (%s)", song.Title, song.Artist, song.Mood)
		options[i] = huh.NewOption(label, song.ID)
	}

	var picked []string
	for _, song := range svc.Queue() {
		picked = append(picked, song.ID)
	}
	err := huh.NewMultiSelect[string]().
		Title("Choose songs to export").
		Height(15).
		Options(options...).
		Value(&picked).
		Run()
	if err != nil {
		return fmt.Errorf("song selection: %w", err)
	}

	svc.ClearPlaylist()
	for _, id := range picked {
		if err := svc.AddToPlaylist(id); err != nil {
			return err
		}
	}
	return nil
}
