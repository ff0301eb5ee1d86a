package gateways

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"paydispatch/internal/domain/entities"
	"paydispatch/internal/usecase/interfaces"
)

// ErrUnsupportedGateway is returned by Create for a selector with no
// registered factory. It indicates a configuration mistake, not bad user
// data, and is the only error path out of the registry.
var ErrUnsupportedGateway = errors.New("unsupported payment gateway")

// Factory builds one independent gateway instance wired to the given
// audit sink. Factories must be side-effect-free: two calls never share
// mutable state.
type Factory func(sink interfaces.IAuditSink) interfaces.IPaymentGateway

// builtins maps the selectors of the families shipped with this package.
// Each family file adds itself here from its own init; adding a family
// means adding one file, nothing else is edited.
var builtins = map[entities.GatewaySelector]Factory{}

func registerBuiltin(selector entities.GatewaySelector, f Factory) {
	builtins[selector] = f
}

// Registry resolves gateway selectors to fully-composed gateway families.
//
// Lookups vastly outnumber registrations (registration normally happens
// once at startup), hence the RWMutex.

type Registry struct {
	mu        sync.RWMutex
	factories map[entities.GatewaySelector]Factory
	sink      interfaces.IAuditSink
}

var _ interfaces.IGatewayFactory = (*Registry)(nil)

// NewRegistry returns a registry preloaded with the built-in families.
// All families created through it write their audit trail to sink.
func NewRegistry(sink interfaces.IAuditSink) *Registry {
	r := &Registry{
		factories: make(map[entities.GatewaySelector]Factory, len(builtins)),
		sink:      sink,
	}
	for selector, f := range builtins {
		r.factories[selector] = f
	}
	return r
}

// Register maps a selector to a factory, replacing any previous mapping.
// Intended for startup wiring (custom families, live processor overrides).
func (r *Registry) Register(selector entities.GatewaySelector, f Factory) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.factories[selector] = f
}

// Create returns an independent gateway family for the selector, or
// ErrUnsupportedGateway when none is registered.
func (r *Registry) Create(selector entities.GatewaySelector) (interfaces.IPaymentGateway, error) {
	r.mu.RLock()
	f, ok := r.factories[selector]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedGateway, selector)
	}
	return f(r.sink), nil
}

// Selectors lists the registered selectors in stable order.
func (r *Registry) Selectors() []entities.GatewaySelector {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]entities.GatewaySelector, 0, len(r.factories))
	for selector := range r.factories {
		out = append(out, selector)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
