package redis

import (
	"fmt"

	"github.com/ugordi/gladialore-admin/internal/model"
)

// Key prefix for all admin panel data
const keyPrefix = "gladmin"

// sessionKey returns the Redis key for a Session
func sessionKey(id model.SessionID) string {
	return fmt.Sprintf("%s:session:%s", keyPrefix, id)
}
