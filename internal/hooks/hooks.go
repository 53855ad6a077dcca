// Package hooks provides the extension contract around the side-effecting
// reconciliation steps: a synchronous before/after callback registry whose
// handlers may rewrite the mutable event payload before the core proceeds.
package hooks

import (
	"context"
	"sync"
)

const (
	BeforeVendorFetch       = "before.vendor.fetch"
	AfterVendorFetch        = "after.vendor.fetch"
	BeforeAvailabilityCheck = "before.availability.check"
	AfterAvailabilityCheck  = "after.availability.check"
	BeforeWalletCreate      = "before.wallet.create"
	AfterWalletCreate       = "after.wallet.create"
	BeforeBankAccountAdd    = "before.bank_account.add"
	CheckBankInfoSynchrony  = "check.bank_info.synchrony"
)

type HandlerFunc func(ctx context.Context, payload any) error

type Registry struct {
	mu       sync.RWMutex
	handlers map[string][]HandlerFunc
}

func NewRegistry() *Registry {
	return &Registry{handlers: make(map[string][]HandlerFunc)}
}

func (r *Registry) Register(event string, handler HandlerFunc) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.handlers[event] = append(r.handlers[event], handler)
}

// Fire invokes the handlers registered for event in registration order and
// waits for each to finish. The first handler error aborts the step.
func (r *Registry) Fire(ctx context.Context, event string, payload any) error {
	r.mu.RLock()
	handlers := r.handlers[event]
	r.mu.RUnlock()

	for _, handler := range handlers {
		if err := handler(ctx, payload); err != nil {
			return err
		}
	}

	return nil
}
