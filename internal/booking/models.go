package booking

import (
	"sync"
	"time"

	"virasat/internal/catalog"
)

// Quantity bounds per booking. Requests outside the range are clamped, not
// rejected.
const (
	MinQuantity = 1
	MaxQuantity = 10
)

// ClampQuantity clamps n to [MinQuantity, MaxQuantity].
func ClampQuantity(n int) int {
	if n < MinQuantity {
		return MinQuantity
	}
	if n > MaxQuantity {
		return MaxQuantity
	}
	return n
}

// SeatingTier is one of the four fixed seating categories. The tier table is
// static for the process lifetime; Available and Total are never decremented
// by a booking, since no real inventory exists behind the simulated flow.
type SeatingTier struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	Price         int      `json:"price"`
	OriginalPrice int      `json:"original_price"`
	Available     int      `json:"available"`
	Total         int      `json:"total"`
	Perks         []string `json:"perks"`
}

// IsSoldOut reports whether the tier has no availability left.
func (t SeatingTier) IsSoldOut() bool {
	return t.Available <= 0
}

// AvailabilityFraction returns available/total in [0,1].
func (t SeatingTier) AvailabilityFraction() float64 {
	if t.Total <= 0 {
		return 0
	}
	return float64(t.Available) / float64(t.Total)
}

// AvailabilityBand is the urgency signal derived from remaining availability.
type AvailabilityBand string

const (
	BandHigh   AvailabilityBand = "HIGH"   // more than 50% left
	BandMedium AvailabilityBand = "MEDIUM" // 25% to 50% left
	BandLow    AvailabilityBand = "LOW"    // less than 25% left
)

// AvailabilityBand buckets the availability fraction into the three bands the
// booking UI renders.
func (t SeatingTier) AvailabilityBand() AvailabilityBand {
	f := t.AvailabilityFraction()
	switch {
	case f > 0.5:
		return BandHigh
	case f >= 0.25:
		return BandMedium
	default:
		return BandLow
	}
}

// DefaultTiers returns the festival's fixed seating catalog.
func DefaultTiers() []SeatingTier {
	return []SeatingTier{
		{
			ID:            "vip",
			Name:          "VIP",
			Description:   "Front-row cushioned seating with artist meet-and-greet access.",
			Price:         3500,
			OriginalPrice: 4500,
			Available:     12,
			Total:         20,
			Perks:         []string{"Front-row seating", "Artist meet & greet", "Complimentary dinner", "Festival merchandise kit"},
		},
		{
			ID:            "premium",
			Name:          "Premium",
			Description:   "Reserved seating in the first ten rows with dedicated entry.",
			Price:         2500,
			OriginalPrice: 3200,
			Available:     18,
			Total:         60,
			Perks:         []string{"Reserved seating", "Dedicated entry gate", "Complimentary refreshments"},
		},
		{
			ID:            "standard",
			Name:          "Standard",
			Description:   "Reserved chair seating in the main enclosure.",
			Price:         1500,
			OriginalPrice: 1800,
			Available:     30,
			Total:         140,
			Perks:         []string{"Reserved chair seating", "Programme booklet"},
		},
		{
			ID:            "traditional",
			Name:          "Traditional",
			Description:   "Open floor seating on durries, the classic mehfil experience.",
			Price:         800,
			OriginalPrice: 1000,
			Available:     85,
			Total:         100,
			Perks:         []string{"Floor seating on durries", "Closest to the stage apron"},
		},
	}
}

// Session is the ephemeral per-booking state machine instance. It lives in
// process memory only and is never serialized; it is discarded when the
// session store's TTL sweep collects it.
type Session struct {
	ID          string       `json:"id"`
	EventID     int          `json:"event_id"`
	Tier        *SeatingTier `json:"tier,omitempty"`
	Quantity    int          `json:"quantity"`
	Step        Step         `json:"step"`
	Reference   string       `json:"reference,omitempty"`
	ConfirmedAt *time.Time   `json:"confirmed_at,omitempty"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`

	mu sync.Mutex
}

// SelectTier moves the session from seat selection to review. Sold-out tiers
// are rejected here as a guard, not just disabled in the UI.
func (s *Session) SelectTier(t SeatingTier) error {
	if s.Step != StepSelectSeating {
		return ErrInvalidTransition
	}
	if t.IsSoldOut() {
		return ErrTierSoldOut
	}
	tier := t
	s.Tier = &tier
	s.Step = StepReview
	s.touch()
	return nil
}

// AdjustQuantity sets the ticket count, silently clamped to the valid range.
func (s *Session) AdjustQuantity(n int) error {
	if s.Step != StepReview {
		return ErrInvalidTransition
	}
	s.Quantity = ClampQuantity(n)
	s.touch()
	return nil
}

// BeginPayment moves the session from review into the payment step.
func (s *Session) BeginPayment() error {
	if s.Step != StepReview || s.Tier == nil {
		return ErrInvalidTransition
	}
	s.Step = StepPayment
	s.touch()
	return nil
}

// FailPayment returns the session from the payment step to review after a
// processor error, keeping the tier and quantity so the client can retry.
func (s *Session) FailPayment() error {
	if s.Step != StepPayment {
		return ErrInvalidTransition
	}
	s.Step = StepReview
	s.touch()
	return nil
}

// Complete marks the session confirmed with its display reference.
func (s *Session) Complete(reference string, at time.Time) error {
	if s.Step != StepPayment {
		return ErrInvalidTransition
	}
	s.Step = StepConfirmed
	s.Reference = reference
	s.ConfirmedAt = &at
	s.touch()
	return nil
}

// Restart is the "change seating" action: a full reset back to seat
// selection, discarding the selected tier and quantity. Confirmed sessions
// are terminal and cannot restart.
func (s *Session) Restart() error {
	if !s.Step.CanRestart() {
		return ErrInvalidTransition
	}
	s.Tier = nil
	s.Quantity = MinQuantity
	s.Step = StepSelectSeating
	s.touch()
	return nil
}

// TotalPrice derives the session total: tier price times quantity. No taxes,
// fees or discounts are modeled.
func (s *Session) TotalPrice() int {
	if s.Tier == nil {
		return 0
	}
	return s.Tier.Price * s.Quantity
}

func (s *Session) touch() {
	s.UpdatedAt = time.Now()
}

// updatedAt reads the last-transition time under the session lock; the
// store's TTL checks run concurrently with handler writes.
func (s *Session) updatedAt() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.UpdatedAt
}

// Request/response DTOs

type CreateSessionRequest struct {
	EventID int `json:"event_id" validate:"required,min=1"`
}

type SelectTierRequest struct {
	TierID string `json:"tier_id" validate:"required"`
}

// AdjustQuantityRequest carries no validation tags: out-of-range quantities
// are clamped by the session, not rejected at the boundary.
type AdjustQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// SessionResponse is the booking session as presented to the client,
// including the resolved event and derived totals.
type SessionResponse struct {
	ID          string        `json:"id"`
	Event       catalog.Event `json:"event"`
	Step        Step          `json:"step"`
	Tier        *SeatingTier  `json:"tier,omitempty"`
	Quantity    int           `json:"quantity"`
	TotalPrice  int           `json:"total_price"`
	Reference   string        `json:"reference,omitempty"`
	ConfirmedAt *time.Time    `json:"confirmed_at,omitempty"`
	CreatedAt   time.Time     `json:"created_at"`
}

// ToResponse builds the client view of the session.
func (s *Session) ToResponse(event catalog.Event) *SessionResponse {
	return &SessionResponse{
		ID:          s.ID,
		Event:       event,
		Step:        s.Step,
		Tier:        s.Tier,
		Quantity:    s.Quantity,
		TotalPrice:  s.TotalPrice(),
		Reference:   s.Reference,
		ConfirmedAt: s.ConfirmedAt,
		CreatedAt:   s.CreatedAt,
	}
}
