// Package migrations embeds the dispatch store schema.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
