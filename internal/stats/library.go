package stats

import (
	"github.com/ytget/audion/internal/library"
)

// LibraryStats feeds the library stat cards
type LibraryStats struct {
	Songs     int
	AvgMin    float64
	Languages int
}

// ForLibrary computes the library-wide stat cards
func ForLibrary(lib *library.Library) LibraryStats {
	if lib == nil {
		return LibraryStats{}
	}
	return LibraryStats{
		Songs:     lib.Len(),
		AvgMin:    lib.AverageDuration(),
		Languages: len(lib.Languages()),
	}
}
