package session

// Package session holds the browsing state behind the UI: the loaded library,
// the active filter and its visible rows, and the playlist being built. Every
// mutation pushes a Snapshot to the registered callback so stat cards and the
// status bar can refresh. A Service is not safe for concurrent use; drive it
// from the Fyne main goroutine.
