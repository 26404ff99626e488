package booking

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"virasat/internal/catalog"
	"virasat/internal/notifications"
	"virasat/pkg/logger"

	"github.com/google/uuid"
)

// Error definitions. All of these are recoverable conditions surfaced as
// values; nothing in the booking flow panics or uses errors for control flow.
var (
	ErrEventNotFound     = errors.New("event not found")
	ErrSessionNotFound   = errors.New("booking session not found")
	ErrTierNotFound      = errors.New("seating tier not found")
	ErrTierSoldOut       = errors.New("seating tier is sold out")
	ErrInvalidTransition = errors.New("action not allowed in current step")
)

// EventSource is the catalog surface the booking flow needs.
type EventSource interface {
	EventByID(id int) (catalog.Event, bool)
}

// Service drives the multi-step booking flow: seating selection, review,
// simulated payment and confirmation.
type Service interface {
	// SetNotificationProducer injects the optional confirmation publisher
	SetNotificationProducer(p notifications.Producer)
	CreateSession(ctx context.Context, eventID int) (*SessionResponse, error)
	GetSession(ctx context.Context, sessionID string) (*SessionResponse, error)
	Tiers() []SeatingTier
	SelectTier(ctx context.Context, sessionID, tierID string) (*SessionResponse, error)
	AdjustQuantity(ctx context.Context, sessionID string, quantity int) (*SessionResponse, error)
	Confirm(ctx context.Context, sessionID string) (*SessionResponse, error)
	Restart(ctx context.Context, sessionID string) (*SessionResponse, error)
	Close()
}

type service struct {
	events   EventSource
	payments PaymentProcessor
	producer notifications.Producer
	store    *sessionStore
	tiers    []SeatingTier
	log      *logger.Logger
	stop     chan struct{}
}

const sweepInterval = time.Minute

func NewService(events EventSource, payments PaymentProcessor, sessionTTL time.Duration) Service {
	s := &service{
		events:   events,
		payments: payments,
		store:    newSessionStore(sessionTTL),
		tiers:    DefaultTiers(),
		log:      logger.GetDefault(),
		stop:     make(chan struct{}),
	}
	go s.sweepLoop()
	return s
}

func (s *service) SetNotificationProducer(p notifications.Producer) {
	s.producer = p
}

func (s *service) sweepLoop() {
	ticker := time.NewTicker(sweepInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			if removed := s.store.sweep(); removed > 0 {
				s.log.Debug("swept expired booking sessions", "removed", removed)
			}
		case <-s.stop:
			return
		}
	}
}

// Close stops the session sweeper.
func (s *service) Close() {
	close(s.stop)
}

// CreateSession opens a booking session for an event. An unknown event id is
// a NotFound error, never a silent substitution of a different event.
func (s *service) CreateSession(ctx context.Context, eventID int) (*SessionResponse, error) {
	event, ok := s.events.EventByID(eventID)
	if !ok {
		return nil, ErrEventNotFound
	}

	now := time.Now()
	sess := &Session{
		ID:        uuid.NewString(),
		EventID:   event.ID,
		Quantity:  MinQuantity,
		Step:      StepSelectSeating,
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.store.put(sess)
	s.log.LogSessionCreated(ctx, sess.ID, event.ID)

	return sess.ToResponse(event), nil
}

func (s *service) GetSession(ctx context.Context, sessionID string) (*SessionResponse, error) {
	sess, ok := s.store.get(sessionID)
	if !ok {
		return nil, ErrSessionNotFound
	}

	// Reads take the session lock too: a response built mid-transition could
	// pair the old tier with the new quantity.
	sess.mu.Lock()
	defer sess.mu.Unlock()
	return s.toResponse(sess), nil
}

// Tiers returns the static seating catalog.
func (s *service) Tiers() []SeatingTier {
	out := make([]SeatingTier, len(s.tiers))
	copy(out, s.tiers)
	return out
}

func (s *service) tierByID(id string) (SeatingTier, bool) {
	for _, t := range s.tiers {
		if t.ID == id {
			return t, true
		}
	}
	return SeatingTier{}, false
}

func (s *service) SelectTier(ctx context.Context, sessionID, tierID string) (*SessionResponse, error) {
	sess, ok := s.store.get(sessionID)
	if !ok {
		return nil, ErrSessionNotFound
	}
	tier, ok := s.tierByID(tierID)
	if !ok {
		return nil, ErrTierNotFound
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()
	if err := sess.SelectTier(tier); err != nil {
		return nil, err
	}
	return s.toResponse(sess), nil
}

func (s *service) AdjustQuantity(ctx context.Context, sessionID string, quantity int) (*SessionResponse, error) {
	sess, ok := s.store.get(sessionID)
	if !ok {
		return nil, ErrSessionNotFound
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()
	if err := sess.AdjustQuantity(quantity); err != nil {
		return nil, err
	}
	return s.toResponse(sess), nil
}

// Confirm runs the review step through the payment processor and, on
// success, marks the session confirmed with its display reference. The
// simulated processor never fails, but a processor error (including context
// cancellation) returns the session to review rather than leaving it wedged
// in the payment step.
func (s *service) Confirm(ctx context.Context, sessionID string) (*SessionResponse, error) {
	sess, ok := s.store.get(sessionID)
	if !ok {
		return nil, ErrSessionNotFound
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()
	if err := sess.BeginPayment(); err != nil {
		return nil, err
	}

	result, err := s.payments.Process(ctx, sess.ID, sess.TotalPrice())
	if err != nil {
		sess.FailPayment()
		return nil, fmt.Errorf("payment failed: %w", err)
	}

	reference := newBookingRef()
	if err := sess.Complete(reference, result.ProcessedAt); err != nil {
		return nil, err
	}
	s.log.LogBookingConfirmed(ctx, sess.ID, reference, sess.EventID, sess.TotalPrice())

	s.publishConfirmation(sess)

	return s.toResponse(sess), nil
}

func (s *service) Restart(ctx context.Context, sessionID string) (*SessionResponse, error) {
	sess, ok := s.store.get(sessionID)
	if !ok {
		return nil, ErrSessionNotFound
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()
	if err := sess.Restart(); err != nil {
		return nil, err
	}
	return s.toResponse(sess), nil
}

// publishConfirmation sends the confirmation message when a producer is
// configured. Fire and forget: a publish failure never fails the booking.
func (s *service) publishConfirmation(sess *Session) {
	if s.producer == nil {
		return
	}

	event, _ := s.events.EventByID(sess.EventID)
	confirmation := &notifications.BookingConfirmation{
		SessionID:   sess.ID,
		Reference:   sess.Reference,
		EventID:     sess.EventID,
		EventTitle:  event.Title,
		EventDay:    event.Day,
		TierID:      sess.Tier.ID,
		TierName:    sess.Tier.Name,
		Quantity:    sess.Quantity,
		TotalPrice:  sess.TotalPrice(),
		ConfirmedAt: *sess.ConfirmedAt,
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := s.producer.PublishBookingConfirmation(ctx, confirmation); err != nil {
			s.log.WithError(err).Warn("failed to publish booking confirmation")
		}
	}()
}

func (s *service) toResponse(sess *Session) *SessionResponse {
	// The event resolved at session creation; a miss here would mean the
	// immutable catalog changed, which cannot happen in-process.
	event, _ := s.events.EventByID(sess.EventID)
	return sess.ToResponse(event)
}

func newBookingRef() string {
	return "VRS-" + strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:10])
}
