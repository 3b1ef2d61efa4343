package model

// Package model defines domain data structures used across the app: songs
// loaded from the library spreadsheet, heuristic mood labels, simulated audio
// features, and the user-curated playlist. Structures are designed for direct
// binding in the UI and explicit membership transitions.
