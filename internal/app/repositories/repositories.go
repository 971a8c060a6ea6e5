package repositories

import (
	"github.com/emre/advisehub/internal/db"
)

// Repositories bundles all repository instances
type Repositories struct {
	SnapshotRepository *SnapshotRepository
	AdvisingRepository *AdvisingRepository
	BypassRepository   *BypassRepository
}

// NewRepositories creates all repositories sharing one database handle
func NewRepositories(database *db.PostgresDB) *Repositories {
	return &Repositories{
		SnapshotRepository: NewSnapshotRepository(database),
		AdvisingRepository: NewAdvisingRepository(database),
		BypassRepository:   NewBypassRepository(database),
	}
}
