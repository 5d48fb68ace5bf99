package web

import (
	"embed"
	"io/fs"
)

// FS contains all embedded web assets.
// The patterns are relative to this file's directory (the 'web' directory).
//
//go:embed static/*
var FS embed.FS

// StaticFS returns the embedded static directory with the "static/" prefix removed.
func StaticFS() fs.FS {
	sub, err := fs.Sub(FS, "static")
	if err != nil {
		// fs.Sub only fails on an invalid path, and "static" is a literal.
		panic(err)
	}
	return sub
}
