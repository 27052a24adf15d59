package service

import (
	"context"
	"sync"
	"time"

	"custody-treasury/config"
	"custody-treasury/internal/core/ports"
	"custody-treasury/pkg/apperror"

	"github.com/rs/zerolog"
)

// GuardrailServiceImpl implements ports.Guardrail. Checks are side-effect
// free: a denied request leaves the spend window untouched. Only RecordSpend
// mutates state, and the treasury facade calls it after a confirmed send.
type GuardrailServiceImpl struct {
	cfg     config.GuardrailConfig
	window  ports.SpendWindowStore
	allowed map[string]struct{}
	denied  map[string]struct{}
	log     zerolog.Logger
}

// NewGuardrailService creates a new GuardrailServiceImpl. A nil window store
// falls back to an in-process window, suitable for single-instance
// deployments and tests.
func NewGuardrailService(cfg config.GuardrailConfig, window ports.SpendWindowStore, log zerolog.Logger) *GuardrailServiceImpl {
	if window == nil {
		window = newMemorySpendWindow()
	}
	allowed := make(map[string]struct{}, len(cfg.AllowedAddresses))
	for _, a := range cfg.AllowedAddresses {
		allowed[a] = struct{}{}
	}
	denied := make(map[string]struct{}, len(cfg.DeniedAddresses))
	for _, a := range cfg.DeniedAddresses {
		denied[a] = struct{}{}
	}
	return &GuardrailServiceImpl{
		cfg:     cfg,
		window:  window,
		allowed: allowed,
		denied:  denied,
		log:     log.With().Str("component", "guardrail").Logger(),
	}
}

// CheckSend evaluates a single outbound transfer against the spend policy.
func (s *GuardrailServiceImpl) CheckSend(ctx context.Context, destination string, amount uint64, caller string) ports.Decision {
	if _, ok := s.denied[destination]; ok {
		return s.deny(destination, amount, caller, apperror.ReasonDenyListed)
	}
	if len(s.allowed) > 0 {
		if _, ok := s.allowed[destination]; !ok {
			return s.deny(destination, amount, caller, apperror.ReasonNotInAllowList)
		}
	}

	if amount > s.perCallLimit(caller) {
		return s.deny(destination, amount, caller, apperror.ReasonExceedsPerCallLimit)
	}

	if exceeded, err := s.windowExceeded(ctx, amount, caller); err != nil {
		// A broken window store fails closed: blocking spends beats
		// silently losing the ceiling.
		s.log.Error().Err(err).Str("caller", caller).Msg("spend window read failed")
		return s.deny(destination, amount, caller, apperror.ReasonExceedsWindowLimit)
	} else if exceeded {
		return s.deny(destination, amount, caller, apperror.ReasonExceedsWindowLimit)
	}

	return ports.Decision{Allowed: true}
}

// CheckOperationBudget evaluates whether a multi-transfer operation's
// estimated total fits in the caller's remaining window. It does not apply
// the per-call ceiling; each constituent send is checked individually.
func (s *GuardrailServiceImpl) CheckOperationBudget(ctx context.Context, estimatedAmount uint64, caller string) ports.Decision {
	exceeded, err := s.windowExceeded(ctx, estimatedAmount, caller)
	if err != nil {
		s.log.Error().Err(err).Str("caller", caller).Msg("spend window read failed")
		return ports.Decision{Allowed: false, Reason: apperror.ReasonExceedsWindowLimit}
	}
	if exceeded {
		s.log.Warn().
			Uint64("estimated_amount", estimatedAmount).
			Str("caller", caller).
			Msg("operation budget denied")
		return ports.Decision{Allowed: false, Reason: apperror.ReasonExceedsWindowLimit}
	}
	return ports.Decision{Allowed: true}
}

// RecordSpend adds a completed spend to the caller's window. Failures are
// logged, not returned: the transfer has already happened.
func (s *GuardrailServiceImpl) RecordSpend(ctx context.Context, amount uint64, caller string) {
	total, err := s.window.Add(ctx, caller, amount, s.cfg.WindowDuration)
	if err != nil {
		s.log.Error().Err(err).
			Uint64("amount", amount).
			Str("caller", caller).
			Msg("failed to record spend")
		return
	}
	s.log.Debug().
		Uint64("amount", amount).
		Uint64("window_total", total).
		Str("caller", caller).
		Msg("spend recorded")
}

func (s *GuardrailServiceImpl) perCallLimit(caller string) uint64 {
	if limit, ok := s.cfg.CallerOverrides[caller]; ok {
		return limit
	}
	return s.cfg.MaxPerCall
}

func (s *GuardrailServiceImpl) windowExceeded(ctx context.Context, amount uint64, caller string) (bool, error) {
	if s.cfg.WindowMax == 0 {
		return false, nil
	}
	current, err := s.window.Current(ctx, caller, s.cfg.WindowDuration)
	if err != nil {
		return false, err
	}
	return current+amount > s.cfg.WindowMax, nil
}

func (s *GuardrailServiceImpl) deny(destination string, amount uint64, caller string, reason string) ports.Decision {
	s.log.Warn().
		Str("destination", destination).
		Uint64("amount", amount).
		Str("caller", caller).
		Str("reason", reason).
		Msg("send denied")
	return ports.Decision{Allowed: false, Reason: reason}
}

// memorySpendWindow is the in-process fallback for ports.SpendWindowStore.
// Same fixed-window scheme as the Redis store.
type memorySpendWindow struct {
	mu      sync.Mutex
	windows map[string]*memoryWindow
}

type memoryWindow struct {
	id    int64
	total uint64
}

func newMemorySpendWindow() *memorySpendWindow {
	return &memorySpendWindow{windows: make(map[string]*memoryWindow)}
}

func (m *memorySpendWindow) Current(_ context.Context, caller string, window time.Duration) (uint64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	w, ok := m.windows[caller]
	if !ok || w.id != windowID(window) {
		return 0, nil
	}
	return w.total, nil
}

func (m *memorySpendWindow) Add(_ context.Context, caller string, amount uint64, window time.Duration) (uint64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	id := windowID(window)
	w, ok := m.windows[caller]
	if !ok || w.id != id {
		w = &memoryWindow{id: id}
		m.windows[caller] = w
	}
	w.total += amount
	return w.total, nil
}

func windowID(window time.Duration) int64 {
	if window <= 0 {
		return 0
	}
	return time.Now().Unix() / int64(window.Seconds())
}
