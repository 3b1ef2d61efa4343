package ui

import (
	"path/filepath"

	"fyne.io/fyne/v2"

	"github.com/ytget/audion/internal/platform"
)

const (
	AppIcon = "audion.png"
)

// logoCandidates are the places the window icon is looked up, in order
var logoCandidates = []string{
	AppIcon,
	filepath.Join("assets", AppIcon),
}

// LoadLogoResource loads the logo from the first existing candidate path.
// The icon is optional; callers fall back to a text header when it is missing.
func LoadLogoResource() (fyne.Resource, error) {
	path, ok := platform.FindFirstExisting(logoCandidates...)
	if !ok {
		path = AppIcon
	}
	return fyne.LoadResourceFromPath(path)
}
