// Package configs embeds the default catalog data and its JSON schemas.
package configs

import (
	"embed"
	"io/fs"
)

//go:embed catalog/*.json schemas/*.json
var files embed.FS

// Catalog returns the bundled catalog JSON files
func Catalog() fs.FS {
	sub, _ := fs.Sub(files, "catalog")
	return sub
}

// Schemas returns the bundled JSON schemas
func Schemas() fs.FS {
	sub, _ := fs.Sub(files, "schemas")
	return sub
}
