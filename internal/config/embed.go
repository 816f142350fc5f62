package config

import "embed"

// dataFS embeds the default configuration at build time.
//
//go:embed defaults.json
var dataFS embed.FS
