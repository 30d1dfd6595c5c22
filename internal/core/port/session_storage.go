package port

import "github.com/Stalyer/six-cities/internal/core/store"

// SessionStoragePort хранит клиентский стор для каждой браузерной сессии.
type SessionStoragePort interface {
	Get(sessionID string) (*store.Store, bool)
	Save(sessionID string, st *store.Store)
	Delete(sessionID string)
}
