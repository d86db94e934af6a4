// Package registry maps provider identifiers from site settings to the
// variant that implements them.
package registry

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/davidbz/nepersonaj/internal/domain"
)

// Named is implemented by every provider variant.
type Named interface {
	Name() string
}

// Registry implements the text and image provider registry interfaces.
type Registry[P Named] struct {
	mu        sync.RWMutex
	providers map[string]P
}

// NewRegistry creates a new provider registry.
func NewRegistry[P Named]() *Registry[P] {
	return &Registry[P]{
		mu:        sync.RWMutex{},
		providers: make(map[string]P),
	}
}

// Register adds a provider to the registry.
func (r *Registry[P]) Register(_ context.Context, provider P) error {
	if any(provider) == nil {
		return errors.New("provider cannot be nil")
	}

	name := provider.Name()
	if name == "" {
		return errors.New("provider name cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.providers[name]; exists {
		return fmt.Errorf("provider %s already registered", name)
	}

	r.providers[name] = provider

	return nil
}

// Get retrieves a provider by name.
func (r *Registry[P]) Get(_ context.Context, providerName string) (P, error) {
	var zero P

	if providerName == "" {
		return zero, fmt.Errorf("%w: provider name cannot be empty", domain.ErrUnsupportedProvider)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	provider, exists := r.providers[providerName]
	if !exists {
		return zero, fmt.Errorf("%w: %s", domain.ErrUnsupportedProvider, providerName)
	}

	return provider, nil
}

// List returns all registered provider names in sorted order.
func (r *Registry[P]) List(_ context.Context) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.providers))
	for name := range r.providers {
		names = append(names, name)
	}
	sort.Strings(names)

	return names, nil
}

var (
	_ domain.TextProviderRegistry  = (*Registry[domain.TextProvider])(nil)
	_ domain.ImageProviderRegistry = (*Registry[domain.ImageProvider])(nil)
)
