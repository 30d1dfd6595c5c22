package session

import (
	"time"

	"github.com/Stalyer/six-cities/internal/core/store"
	"github.com/karlseguin/ccache/v3"
)

// CcacheSessionStorage хранит сторы сессий в памяти процесса.
// Каждое обращение продлевает жизнь сессии на ttl.
// При переполнении вытесняются давно не использованные сессии.
type CcacheSessionStorage struct {
	cache *ccache.Cache[*store.Store]
	ttl   time.Duration
}

func NewCcacheSessionStorage(maxSize int64, ttl time.Duration) *CcacheSessionStorage {
	return &CcacheSessionStorage{
		cache: ccache.New(ccache.Configure[*store.Store]().MaxSize(maxSize)),
		ttl:   ttl,
	}
}

func (s *CcacheSessionStorage) Get(sessionID string) (*store.Store, bool) {
	item := s.cache.Get(sessionID)
	if item == nil {
		return nil, false
	}
	if item.Expired() {
		s.cache.Delete(sessionID)
		return nil, false
	}
	item.Extend(s.ttl)
	return item.Value(), true
}

func (s *CcacheSessionStorage) Save(sessionID string, st *store.Store) {
	s.cache.Set(sessionID, st, s.ttl)
}

func (s *CcacheSessionStorage) Delete(sessionID string) {
	s.cache.Delete(sessionID)
}

// Close останавливает фоновую горутину кэша.
func (s *CcacheSessionStorage) Close() {
	s.cache.Stop()
}
