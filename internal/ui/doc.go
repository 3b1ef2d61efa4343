package ui

// Package ui contains the Fyne-based desktop user interface for the application.
// It wires user interactions to the browsing session and renders the song table,
// live stats, the playback queue, recommendation and export dialogs, and the
// Wrapped dashboard charts. All UI strings are localized via Localization.
