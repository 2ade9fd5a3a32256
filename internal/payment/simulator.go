package payment

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"
)

const successRate = 0.9

// declineReasons are the plausible operator-side failures the simulator
// draws from when a payment does not go through.
var declineReasons = []string{
	"insufficient balance",
	"number not recognized by operator",
	"service temporarily unavailable",
	"transaction cancelled by user",
}

// Simulator stands in for a real mobile-money gateway: it suspends the
// caller for a processing delay, then reports success or a decline with the
// same contract shape a live integration would have.
type Simulator struct {
	delay time.Duration

	mu  sync.Mutex
	rng *rand.Rand
}

// NewSimulator builds a Simulator with the given processing delay. rng may
// be seeded for deterministic tests; when nil a time-seeded source is used.
func NewSimulator(delay time.Duration, rng *rand.Rand) *Simulator {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Simulator{delay: delay, rng: rng}
}

// Process runs one simulated payment attempt. All outcomes, including input
// rejections and context expiry, come back as a tagged Result.
func (s *Simulator) Process(ctx context.Context, req Request) Result {
	if err := sleepOrDone(ctx, s.delay); err != nil {
		return Result{Success: false, Error: "payment timed out"}
	}

	if req.PhoneNumber == "" || len(normalizePhone(req.PhoneNumber)) < 8 {
		return Result{Success: false, Error: "invalid phone number"}
	}
	if req.Amount <= 0 {
		return Result{Success: false, Error: "invalid amount"}
	}

	s.mu.Lock()
	ok := s.rng.Float64() < successRate
	var draw int
	if ok {
		draw = s.rng.Intn(900000) + 100000
	} else {
		draw = s.rng.Intn(len(declineReasons))
	}
	s.mu.Unlock()

	if !ok {
		return Result{Success: false, Error: declineReasons[draw]}
	}

	return Result{
		Success:       true,
		TransactionID: fmt.Sprintf("TXN%06d", draw),
		Amount:        req.Amount,
		PhoneNumber:   req.PhoneNumber,
		OrderNumber:   req.OrderNumber,
		Method:        req.Method,
		Message:       fmt.Sprintf("payment of %.0f FCFA completed via %s", req.Amount, strings.ToUpper(string(req.Method))),
	}
}

// sleepOrDone waits for d or returns early on context cancellation.
func sleepOrDone(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
