// Package migrations embeds the goose migration scripts so the setup command
// and integration tests can apply them without a checkout of this repo.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
