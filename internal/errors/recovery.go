package errors

import "go.uber.org/zap"

// RecoveryStrategy attempts to restore service after a failure of one
// category. The context carries whatever the reporting site knows about
// the failure (frame id, document id, api type). Strategies report
// their own outcome; the handler only records that an attempt ran.
type RecoveryStrategy func(ctx map[string]any) error

// RegisterRecovery configures the strategy invoked for a category.
// Registering nil removes the strategy. Later registrations replace
// earlier ones; recovery wiring happens once at bootstrap.
func (h *Handler) RegisterRecovery(category Category, strategy RecoveryStrategy) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if strategy == nil {
		delete(h.strategies, category)
		return
	}
	h.strategies[category] = strategy
}

// AttemptRecovery runs the strategy registered for category, if any.
// It returns true when an attempt was made, not when the attempt
// succeeded: a strategy's own failure is logged and the caller still
// sees true. No registered strategy returns false. Never panics.
func (h *Handler) AttemptRecovery(category Category, ctx map[string]any) (attempted bool) {
	defer func() {
		if r := recover(); r != nil {
			h.log.Warn("recovery strategy panicked",
				zap.String("category", category.String()),
				zap.Any("panic", r))
		}
	}()

	h.mu.RLock()
	strategy, ok := h.strategies[category]
	h.mu.RUnlock()
	if !ok {
		return false
	}

	attempted = true
	if err := strategy(ctx); err != nil {
		h.log.Warn("recovery attempt failed",
			zap.String("category", category.String()),
			zap.Error(err))
	}
	return attempted
}
