package registry

import (
	"fmt"
	"sync"
)

// Registry holds named indexers and retrievers registered by backend
// plugins. Lookup keys have the form "<provider>/<name>", where provider
// identifies the backend plugin and name is typically a collection name.
//
// A Registry is safe for concurrent use.
type Registry struct {
	mu         sync.RWMutex
	indexers   map[string]Indexer
	retrievers map[string]Retriever
}

// New returns an empty Registry.
func New() *Registry {
	return &Registry{
		indexers:   make(map[string]Indexer),
		retrievers: make(map[string]Retriever),
	}
}

// global is the process-wide registry used by the package-level functions.
// Plugins register into it once at initialization time.
var global = New()

// Default returns the process-wide registry.
func Default() *Registry {
	return global
}

// Key builds the canonical lookup key for a provider and name.
func Key(provider, name string) string {
	return provider + "/" + name
}

// RegisterIndexer registers an indexer under "<provider>/<name>".
// Registering the same key twice is an error: plugin initialization is a
// one-shot operation and a silent overwrite would hide misconfiguration.
func (r *Registry) RegisterIndexer(provider, name string, idx Indexer) error {
	key := Key(provider, name)
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.indexers[key]; ok {
		return fmt.Errorf("registry: indexer %q already registered", key)
	}
	r.indexers[key] = idx
	return nil
}

// RegisterRetriever registers a retriever under "<provider>/<name>".
func (r *Registry) RegisterRetriever(provider, name string, ret Retriever) error {
	key := Key(provider, name)
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.retrievers[key]; ok {
		return fmt.Errorf("registry: retriever %q already registered", key)
	}
	r.retrievers[key] = ret
	return nil
}

// Indexer returns the indexer registered under "<provider>/<name>", or nil
// if none is registered.
func (r *Registry) Indexer(provider, name string) Indexer {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.indexers[Key(provider, name)]
}

// Retriever returns the retriever registered under "<provider>/<name>", or
// nil if none is registered.
func (r *Registry) Retriever(provider, name string) Retriever {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.retrievers[Key(provider, name)]
}

// RegisterIndexer registers an indexer in the process-wide registry.
func RegisterIndexer(provider, name string, idx Indexer) error {
	return global.RegisterIndexer(provider, name, idx)
}

// RegisterRetriever registers a retriever in the process-wide registry.
func RegisterRetriever(provider, name string, ret Retriever) error {
	return global.RegisterRetriever(provider, name, ret)
}

// LookupIndexer returns an indexer from the process-wide registry, or nil.
func LookupIndexer(provider, name string) Indexer {
	return global.Indexer(provider, name)
}

// LookupRetriever returns a retriever from the process-wide registry, or nil.
func LookupRetriever(provider, name string) Retriever {
	return global.Retriever(provider, name)
}
