package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ytget/audion/internal/library"
	"github.com/ytget/audion/internal/session"
)

// ErrRowOutOfRange is returned when --pick names a row the library does not have
var ErrRowOutOfRange = errors.New("row out of range")

// playlistFlags selects library rows for headless commands
type playlistFlags struct {
	picks    []int
	all      bool
	genre    string
	language string
	query    string
}

func (f *playlistFlags) register(cmd *cobra.Command) {
	cmd.Flags().IntSliceVarP(&f.picks, "pick", "p", nil, "1-based rows of the filtered list to add to the playlist")
	cmd.Flags().BoolVar(&f.all, "all", false, "add every song that matches the filter")
	cmd.Flags().StringVar(&f.genre, "genre", "", "only songs of this genre")
	cmd.Flags().StringVar(&f.language, "language", "", "only songs in this language")
	cmd.Flags().StringVarP(&f.query, "query", "q", "", "case-insensitive title or artist search")
}

func (f *playlistFlags) reset() {
	*f = playlistFlags{}
}

// apply filters the session and adds the selected rows to its playlist
func (f *playlistFlags) apply(svc *session.Service) error {
	svc.ApplyFilter(library.Filter{Language: f.language, Genre: f.genre, Query: f.query})
	visible := svc.Visible()

	if f.all {
		for _, song := range visible {
			if err := svc.AddToPlaylist(song.ID); err != nil {
				return err
			}
		}
	}
	for _, n := range f.picks {
		if n < 1 || n > len(visible) {
			return fmt.Errorf("pick %d of %d songs: %w", n, len(visible), ErrRowOutOfRange)
		}
		if err := svc.AddToPlaylist(visible[n-1].ID); err != nil {
			return err
		}
	}
	return nil
}
