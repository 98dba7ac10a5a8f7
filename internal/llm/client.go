package llm

import (
	"context"
	"sort"
)

// Client is the capability every chat backend exposes: produce a text
// completion for a single prompt string.
type Client interface {
	Chat(ctx context.Context, prompt string) (string, error)
}

// Registry maps model names to clients. Entries are registered during
// startup and read-only afterwards, so lookups need no locking.
type Registry struct {
	clients map[string]Client
}

func NewRegistry() *Registry {
	return &Registry{clients: make(map[string]Client)}
}

func (r *Registry) Register(name string, c Client) {
	r.clients[name] = c
}

func (r *Registry) Get(name string) (Client, bool) {
	c, ok := r.clients[name]
	return c, ok
}

// Names returns the registered model names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.clients))
	for name := range r.clients {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
