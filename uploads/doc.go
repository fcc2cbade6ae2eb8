// Package uploads stores catalog images on the local file system.
//
// Images are decoded and shrunk to fit MaxDimension before they are
// written, so the directory only ever holds files the static server can
// hand out as-is.
package uploads
