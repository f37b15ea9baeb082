// Package gamedata provides the embedded level, player and pursuer definitions.
package gamedata

import "embed"

// dataFS embeds all JSON files from this directory at build time.
//
//go:embed *.json
var dataFS embed.FS
