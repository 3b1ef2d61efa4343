package mood

// Package mood assigns heuristic mood labels to songs from their title and
// genre text and simulates simple audio features for the dashboard charts.
// Every function here is pure: the only randomness comes from an injected
// *rand.Rand.
