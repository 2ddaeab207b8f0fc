package filter

import (
	"fmt"
	"maps"
	"slices"
	"sync"

	"github.com/s0up4200/lfm/lastfm"
)

// Manager holds named filter presets and applies filters to search results
type Manager struct {
	compiler Compiler
	filters  map[string]CompiledFilter
	mu       sync.RWMutex
}

// ManagerOption configures a filter manager
type ManagerOption func(*Manager)

// WithCompiler sets a custom compiler
func WithCompiler(compiler Compiler) ManagerOption {
	return func(m *Manager) {
		m.compiler = compiler
	}
}

// NewManager creates a new filter manager
func NewManager(opts ...ManagerOption) *Manager {
	m := &Manager{
		compiler: NewExprCompiler(WithCache(100)),
		filters:  make(map[string]CompiledFilter),
	}

	for _, opt := range opts {
		opt(m)
	}

	return m
}

// RegisterFilter registers a new filter or updates an existing one
func (m *Manager) RegisterFilter(name, expression string) error {
	filter, err := m.compiler.Compile(expression)
	if err != nil {
		return fmt.Errorf("failed to compile filter '%s': %w", name, err)
	}

	m.mu.Lock()
	m.filters[name] = filter
	m.mu.Unlock()

	return nil
}

// RegisterFilters registers multiple filters at once. Nothing is
// registered if any of them fails to compile.
func (m *Manager) RegisterFilters(filters map[string]string) error {
	compiled := make(map[string]CompiledFilter, len(filters))

	for name, expr := range filters {
		filter, err := m.compiler.Compile(expr)
		if err != nil {
			return fmt.Errorf("failed to compile filter '%s': %w", name, err)
		}
		compiled[name] = filter
	}

	m.mu.Lock()
	maps.Copy(m.filters, compiled)
	m.mu.Unlock()

	return nil
}

// UnregisterFilter removes a filter
func (m *Manager) UnregisterFilter(name string) {
	m.mu.Lock()
	delete(m.filters, name)
	m.mu.Unlock()
}

// GetFilter returns a compiled filter by name
func (m *Manager) GetFilter(name string) (CompiledFilter, bool) {
	m.mu.RLock()
	filter, exists := m.filters[name]
	m.mu.RUnlock()
	return filter, exists
}

// ListFilters returns all registered filter names, sorted
func (m *Manager) ListFilters() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return slices.Sorted(maps.Keys(m.filters))
}

// ApplyPreset filters a search result with a registered filter
func (m *Manager) ApplyPreset(name string, result *lastfm.SearchResult) (*lastfm.SearchResult, error) {
	filter, exists := m.GetFilter(name)
	if !exists {
		return nil, fmt.Errorf("filter '%s' not found", name)
	}
	return Apply(filter, result)
}

// ApplyExpression compiles expression and filters a search result with it
func (m *Manager) ApplyExpression(expression string, result *lastfm.SearchResult) (*lastfm.SearchResult, error) {
	filter, err := m.compiler.Compile(expression)
	if err != nil {
		return nil, err
	}
	return Apply(filter, result)
}

// Apply returns a copy of result keeping only matching artists, tracks and
// albums. Pagination metadata is left as reported by the API. Top is kept
// if it still matches, otherwise it is chosen again from what remains.
func Apply(filter CompiledFilter, result *lastfm.SearchResult) (*lastfm.SearchResult, error) {
	if result == nil {
		return nil, nil
	}

	artists, err := Items(filter, result.Result.Artists)
	if err != nil {
		return nil, err
	}
	tracks, err := Items(filter, result.Result.Tracks)
	if err != nil {
		return nil, err
	}
	albums, err := Items(filter, result.Result.Albums)
	if err != nil {
		return nil, err
	}

	filtered := &lastfm.SearchResult{
		Meta: result.Meta,
		Result: lastfm.SearchMatches{
			Artists: artists,
			Tracks:  tracks,
			Albums:  albums,
			Top:     result.Result.Top,
		},
	}

	if top := result.Result.Top; top != nil {
		keep, err := filter.Match(ItemFrom(top))
		if err != nil {
			return nil, err
		}
		if !keep {
			filtered.Result.Top = lastfm.TopResult(result.Meta.Query, artists, tracks, albums)
		}
	}

	return filtered, nil
}

// Items returns the entries of results that match filter, in order
func Items[T lastfm.Result](filter CompiledFilter, results []T) ([]T, error) {
	matches := make([]T, 0, len(results))
	for _, r := range results {
		ok, err := filter.Match(ItemFrom(r))
		if err != nil {
			return nil, err
		}
		if ok {
			matches = append(matches, r)
		}
	}
	return matches, nil
}
