package storage

import (
	"context"

	"github.com/ugordi/gladialore-admin/internal/model"
)

// Storage defines the interface for admin session persistence
type Storage interface {
	// Session operations
	SaveSession(ctx context.Context, session *model.Session) error
	GetSession(ctx context.Context, id model.SessionID) (*model.Session, error)
	DeleteSession(ctx context.Context, id model.SessionID) error
}
