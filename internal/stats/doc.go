package stats

// Package stats computes aggregate figures over songs: playlist summaries,
// library stat cards, insight text, chart series, and mood-contrast
// recommendations. Functions take plain song slices and never mutate them.
