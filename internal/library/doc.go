package library

// Package library loads the song spreadsheet into memory, parses durations,
// tags every row with a mood and simulated audio features, and filters the
// resulting table for display. When the spreadsheet cannot be used a small
// built-in sample keeps the application runnable.
