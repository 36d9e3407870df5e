package pgsql

import (
	portsrepo "github.com/blogrest/blog_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider wires the pgx-backed repositories behind their port
// interfaces.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		UserRepo:    newPgxUserRepository(dbPool),
		PostRepo:    newPgxPostRepository(dbPool),
		CommentRepo: newPgxCommentRepository(dbPool),
	}
}
