// Package migrations embeds the forum schema into the binary.
//
// The store layout is exactly five tables: users, questions, replies,
// question_follows and question_likes.
package migrations

import (
	"embed"

	"github.com/nerrad567/questions-core/internal/infrastructure/database"
)

//go:embed *.sql
var migrationsFS embed.FS

// Source returns the embedded schema migrations.
func Source() database.MigrationSource {
	return database.MigrationSource{FS: migrationsFS, Dir: "."}
}
