// Package migrations embeds the goose SQL migrations of the listings and
// time_slots tables. cmd/api applies them when MIGRATE_ON_START is set and
// the repo integration tests apply them in TestMain.
package migrations

import "embed"

// FS holds every *.sql migration file, embedded at compile time.
//
//go:embed *.sql
var FS embed.FS
