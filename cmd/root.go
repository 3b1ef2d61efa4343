package cmd

import (
	"fmt"
	"math/rand/v2"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/ytget/audion/internal/config"
	"github.com/ytget/audion/internal/library"
	"github.com/ytget/audion/internal/logger"
)

// Version is set during build via -ldflags "-X github.com/ytget/audion/cmd.Version=X.Y.Z"
var Version = "dev"

var (
	libraryPath string
	seed        uint64
)

var rootCmd = &cobra.Command{
	Use:     "audion",
	Short:   "Audion is a desktop playlist analyzer for spreadsheet song libraries.",
	Long:    "Audion loads a song spreadsheet, tags every song with a mood, and lets you build a playlist, inspect its stats and export it. Without a subcommand the desktop UI is started.",
	Version: Version,
	RunE:    runGUI,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&libraryPath, "library", "l", "", "song spreadsheet (.xlsx or .csv); overrides "+config.EnvLibrary)
	rootCmd.PersistentFlags().Uint64Var(&seed, "seed", 0, "seed for simulated audio features and recommendations (0 = random)")
}

// Execute executes the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// newRNG returns a seeded source, time-based unless --seed is set
func newRNG() *rand.Rand {
	s := seed
	if s == 0 {
		s = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(s, s>>1|1))
}

// initHeadlessLogger configures logging for commands that run without preferences
func initHeadlessLogger(env config.Env) error {
	if err := logger.InitLogger(env.LoggerConfig()); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	return nil
}

// loadLibrary resolves the spreadsheet path and loads it, falling back to the
// built-in sample. The fallback is reported on stderr.
func loadLibrary(cmd *cobra.Command, env config.Env, rng *rand.Rand) *library.Library {
	path := config.ResolveLibraryPath(libraryPath, env.LibraryPath)
	lib, usedSample, err := library.NewLoader(rng).LoadOrSample(path)
	if usedSample {
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: using sample library: %v\n", err)
	}
	return lib
}
