package cmd

import (
	"fmt"

	"fyne.io/fyne/v2/app"
	"github.com/spf13/cobra"

	"github.com/ytget/audion/internal/config"
	"github.com/ytget/audion/internal/export"
	"github.com/ytget/audion/internal/library"
	"github.com/ytget/audion/internal/logger"
	"github.com/ytget/audion/internal/session"
	"github.com/ytget/audion/internal/ui"
)

const (
	AppID   = "com.ytget.audion"
	AppName = "Audion"
)

// runGUI starts the desktop application
func runGUI(cmd *cobra.Command, args []string) error {
	env := config.LoadEnv()
	if libraryPath != "" {
		env.LibraryPath = libraryPath
	}

	// Create new Fyne app
	myApp := app.NewWithID(AppID)
	myApp.Settings().SetTheme(ui.NewAudionTheme())

	settings := config.NewSettings(myApp).WithEnv(env)
	if err := logger.InitLogger(settings.LoggerConfig()); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer logger.Sync()

	logger.Info("starting Audion",
		logger.String("version", Version),
		logger.Bool("dotenv", env.DotenvLoaded),
		logger.String("library", settings.GetLibraryPath()))

	rng := newRNG()
	loader := library.NewLoader(rng)
	lib, usedSample, err := loader.LoadOrSample(settings.GetLibraryPath())

	svc := session.NewService(lib, export.NewService(), rng)

	myWindow := myApp.NewWindow(fmt.Sprintf("%s v%s", AppName, Version))
	root := ui.NewRootUI(myWindow, myApp, svc, settings, loader)
	root.LoadLibrary(lib, usedSample, err)

	// Show and run
	myWindow.ShowAndRun()
	return nil
}
