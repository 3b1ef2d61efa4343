package platform

// Package platform contains OS integration glue: filesystem helpers, default
// locations for the library and exports, and revealing or opening exported
// files with the desktop's own tools.
