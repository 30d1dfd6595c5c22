package store

import (
	"context"
	"sync"
)

// Action - синхронная мутация состояния. Каждое действие применяется целиком под блокировкой.
type Action interface {
	Reduce(state *State)
}

// Store - клиентский стор одной браузерной сессии.
// К одной сессии могут одновременно прийти несколько запросов, поэтому доступ защищен мьютексом.
type Store struct {
	mu    sync.RWMutex
	state State

	cancelOfferLoad context.CancelFunc
	notifications   []string
}

func New() *Store {
	return &Store{state: InitialState()}
}

// Dispatch применяет действия по порядку.
func (s *Store) Dispatch(actions ...Action) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, a := range actions {
		a.Reduce(&s.state)
	}
}

// GetState возвращает копию текущего состояния.
func (s *Store) GetState() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.clone()
}

// StartOfferLoad отменяет незавершенную загрузку предыдущего предложения
// и начинает новое поколение для offerID.
func (s *Store) StartOfferLoad(ctx context.Context, offerID int) (context.Context, uint64) {
	loadCtx, cancel := context.WithCancel(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cancelOfferLoad != nil {
		s.cancelOfferLoad()
	}
	s.cancelOfferLoad = cancel
	RequestOffer{OfferID: offerID}.Reduce(&s.state)
	return loadCtx, s.state.OfferProcess.Generation
}

// FinishOfferLoad освобождает контекст загрузки, если поколение еще актуально.
func (s *Store) FinishOfferLoad(generation uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state.OfferProcess.Generation == generation && s.cancelOfferLoad != nil {
		s.cancelOfferLoad()
		s.cancelOfferLoad = nil
	}
}

// Notify кладет всплывающее уведомление в очередь сессии.
func (s *Store) Notify(message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notifications = append(s.notifications, message)
}

// TakeNotifications забирает накопленные уведомления; каждое показывается один раз.
func (s *Store) TakeNotifications() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := s.notifications
	s.notifications = nil
	return n
}
