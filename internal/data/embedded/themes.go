// Package embedded provides access to embedded theme catalog files.
package embedded

import "embed"

// ThemeFS contains the embedded theme catalog YAML files.
//
//go:embed themes/*.yaml
var ThemeFS embed.FS

// ThemeOrder lists the catalog keys in their canonical order. Scoring ties
// resolve in favor of the earliest entry, so this order is part of the
// selection contract.
var ThemeOrder = []string{
	"corporate",
	"modern",
	"healthcare",
	"finance",
	"security",
	"education",
	"startup",
	"government",
	"consulting",
	"minimal",
}

// ThemePath returns the embedded file path for a catalog key.
func ThemePath(key string) string {
	return "themes/" + key + ".yaml"
}
