// Package migrations embute os scripts SQL versionados pelo goose.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
