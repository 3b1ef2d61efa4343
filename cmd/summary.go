package cmd

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/ytget/audion/internal/config"
	"github.com/ytget/audion/internal/export"
	"github.com/ytget/audion/internal/logger"
	"github.com/ytget/audion/internal/session"
	"github.com/ytget/audion/internal/stats"
)

var (
	summaryTop       int
	summaryRecommend int
	summarySelection playlistFlags
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Print library statistics and, with a selection, the playlist summary",
	RunE:  runSummary,
}

func init() {
	summaryCmd.Flags().IntVar(&summaryTop, "top", 5, "number of genres and artists to list")
	summaryCmd.Flags().IntVar(&summaryRecommend, "recommend", 0, "also suggest this many songs for the playlist")
	summarySelection.register(summaryCmd)
	rootCmd.AddCommand(summaryCmd)
}

func runSummary(cmd *cobra.Command, args []string) error {
	env := config.LoadEnv()
	if err := initHeadlessLogger(env); err != nil {
		return err
	}
	defer logger.Sync()

	rng := newRNG()
	svc := session.NewService(loadLibrary(cmd, env, rng), export.NewService(), rng)
	if err := summarySelection.apply(svc); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	writeLibraryStats(out, svc)

	queue := svc.Queue()
	if len(queue) == 0 {
		return nil
	}
	fmt.Fprintln(out)
	fmt.Fprintln(out, export.RenderSummary(queue, time.Now()))
	fmt.Fprintln(out)
	fmt.Fprintln(out, stats.Insight(queue, svc.Summary()))

	if summaryRecommend > 0 {
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Recommended:")
		for _, song := range svc.Recommendations(summaryRecommend) {
			fmt.Fprintf(out, "  %s | %s (%s)\n", song.Title, song.Artist, song.Mood)
		}
	}
	return nil
}

func writeLibraryStats(out io.Writer, svc *session.Service) {
	ls := svc.LibraryStats()
	songs := svc.Library().Songs()

	fmt.Fprintf(out, "Songs: %d\n", ls.Songs)
	fmt.Fprintf(out, "Average length: %s\n", stats.FormatMinutes(ls.AvgMin))
	fmt.Fprintf(out, "Languages: %d\n", ls.Languages)
	writeBuckets(out, "Top genres", stats.CountBy(songs, stats.FieldGenre, summaryTop))
	writeBuckets(out, "Top artists", stats.CountBy(songs, stats.FieldArtist, summaryTop))
	writeBuckets(out, "Moods", stats.CountBy(songs, stats.FieldMood, 0))
}

func writeBuckets(out io.Writer, title string, buckets []stats.Bucket) {
	if len(buckets) == 0 {
		return
	}
	fmt.Fprintf(out, "%s:\n", title)
	for _, b := range buckets {
		fmt.Fprintf(out, "  %-24s %d\n", b.Label, b.Count)
	}
}
