// Package builtin embeds the level pack shipped with the binary.
package builtin

import "embed"

// FS holds the builtin level files at its root.
//
//go:embed *.l1t *.yaml
var FS embed.FS
