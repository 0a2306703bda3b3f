package platform

// Package platform contains OS integration glue: filesystem helpers and
// opening or revealing exported files with the system tools.
