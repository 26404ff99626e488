package booking

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// PaymentResult describes a completed (simulated) payment.
type PaymentResult struct {
	TransactionID string    `json:"transaction_id"`
	Amount        int       `json:"amount"`
	ProcessedAt   time.Time `json:"processed_at"`
}

// PaymentProcessor is the boundary behind which a real payment gateway would
// live. The simulated processor always succeeds after a fixed delay; a real
// implementation would introduce failure and retry semantics behind the same
// interface.
type PaymentProcessor interface {
	Process(ctx context.Context, sessionID string, amount int) (*PaymentResult, error)
}

// SimulatedProcessor completes every payment after a configurable delay.
// Tests inject a zero delay to run synchronously.
type SimulatedProcessor struct {
	delay time.Duration
}

func NewSimulatedProcessor(delay time.Duration) *SimulatedProcessor {
	return &SimulatedProcessor{delay: delay}
}

func (p *SimulatedProcessor) Process(ctx context.Context, sessionID string, amount int) (*PaymentResult, error) {
	if p.delay > 0 {
		select {
		case <-time.After(p.delay):
		case <-ctx.Done():
			return nil, fmt.Errorf("payment interrupted: %w", ctx.Err())
		}
	}

	return &PaymentResult{
		TransactionID: "TXN-" + strings.ToUpper(uuid.NewString()[:13]),
		Amount:        amount,
		ProcessedAt:   time.Now(),
	}, nil
}
