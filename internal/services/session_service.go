package services

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"busticket/internal/booking"
	"busticket/internal/config"
	"busticket/internal/domain"
	"busticket/internal/domain/models"
	"busticket/internal/utils"
)

const sessionTTL = 30 * time.Minute

// session pairs a draft with its owner and a per-session lock so gin's
// concurrent handlers apply draft operations one at a time.
type session struct {
	mu      sync.Mutex
	id      string
	userID  int64
	draft   *booking.Draft
	touched time.Time
}

// SessionService keeps in-progress drafts server-side, keyed by session id.
// Abandoning a session (or letting it expire) drops the draft without
// persisting anything; only Submit reaches the database.
type SessionService struct {
	Policy      config.Policy
	Coordinator booking.Coordinator

	mu       sync.Mutex
	sessions map[string]*session
	stop     chan struct{}
	stopOnce sync.Once
}

func NewSessionService(policy config.Policy, coord booking.Coordinator) *SessionService {
	s := &SessionService{
		Policy:      policy,
		Coordinator: coord,
		sessions:    map[string]*session{},
		stop:        make(chan struct{}),
	}
	go s.sweep()
	return s
}

// Create starts a draft session for a selected offer.
func (s *SessionService) Create(userID int64, offer models.RouteOffer, params models.SearchParams) (string, *booking.Draft) {
	sess := &session{
		id:      uuid.NewString(),
		userID:  userID,
		draft:   booking.NewDraft(offer, params, s.Policy),
		touched: time.Now(),
	}

	s.mu.Lock()
	s.sessions[sess.id] = sess
	s.mu.Unlock()

	return sess.id, sess.draft
}

// With runs fn against the session's draft under its lock. The callback's
// error passes through untouched so domain errors keep their type.
func (s *SessionService) With(id string, userID int64, fn func(*booking.Draft) error) (*booking.Draft, error) {
	sess, err := s.lookup(id, userID)
	if err != nil {
		return nil, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()
	sess.touched = time.Now()

	if err := fn(sess.draft); err != nil {
		return sess.draft, err
	}
	return sess.draft, nil
}

// Submit runs the coordinator against the session's draft. On success the
// session is removed (the draft is cleared); on failure it stays for a retry.
func (s *SessionService) Submit(ctx context.Context, id string, userID int64) (models.ConfirmedBooking, error) {
	sess, err := s.lookup(id, userID)
	if err != nil {
		return models.ConfirmedBooking{}, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()
	sess.touched = time.Now()

	confirmed, err := s.Coordinator.Submit(ctx, sess.draft, userID)
	if err != nil {
		return models.ConfirmedBooking{}, err
	}

	s.mu.Lock()
	delete(s.sessions, id)
	s.mu.Unlock()

	utils.LogEvent(s.Coordinator.RequestID, "booking", "submit", "booking confirmed id="+confirmed.Reference)
	return confirmed, nil
}

// Abandon drops the session without persisting anything.
func (s *SessionService) Abandon(id string, userID int64) error {
	if _, err := s.lookup(id, userID); err != nil {
		return err
	}
	s.mu.Lock()
	delete(s.sessions, id)
	s.mu.Unlock()
	return nil
}

func (s *SessionService) lookup(id string, userID int64) (*session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok {
		return nil, domain.NotFoundError{Resource: "draft session"}
	}
	if sess.userID != userID {
		return nil, domain.NotFoundError{Resource: "draft session"}
	}
	return sess, nil
}

// Close stops the TTL sweeper.
func (s *SessionService) Close() {
	s.stopOnce.Do(func() { close(s.stop) })
}

func (s *SessionService) sweep() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-s.stop:
			return
		case <-ticker.C:
			cutoff := time.Now().Add(-sessionTTL)
			s.mu.Lock()
			for id, sess := range s.sessions {
				if sess.touched.Before(cutoff) {
					delete(s.sessions, id)
				}
			}
			s.mu.Unlock()
		}
	}
}
