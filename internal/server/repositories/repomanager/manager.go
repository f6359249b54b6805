package repomanager

import (
	"context"
	"database/sql"

	"github.com/svortega/authms/internal/dbx"
	"github.com/svortega/authms/internal/server/repositories/users"
)

// RepositoryManager vends repository implementations bound to a DB handle
// and owns schema migrations.
type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
}
