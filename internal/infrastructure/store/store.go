package store

import (
	"fmt"

	"github.com/nutritrack/backend/internal/domain"
)

// Store types accepted by Open
const (
	TypeMemory   = "memory"
	TypePostgres = "postgres"
)

// Store is a profile repository that holds resources until closed
type Store interface {
	domain.ProfileRepository
	Close() error
}

// Open returns the store selected by storeType
func Open(storeType, dsn string) (Store, error) {
	switch storeType {
	case TypeMemory:
		return NewMemoryStore(), nil
	case TypePostgres:
		s, err := OpenPostgres(dsn)
		if err != nil {
			return nil, err
		}
		return s, nil
	default:
		return nil, fmt.Errorf("unknown store type %q", storeType)
	}
}
