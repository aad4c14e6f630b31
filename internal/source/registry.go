package source

import (
	"errors"
	"io"
	"log/slog"
	"sync/atomic"
)

// Exclusion records a definition that was skipped because one of its base
// URLs points at a rejected host.
type Exclusion struct {
	Name   string `json:"name"`
	URL    string `json:"url"`
	Host   string `json:"host"`
	Reason string `json:"reason"`
}

// Registry holds the scraper instances accepted during population.
// It is populated once with RegisterAll and read concurrently afterwards.
type Registry struct {
	policy    *Policy
	logger    *slog.Logger
	populated atomic.Bool
	state     atomic.Pointer[registryState]
}

type registryState struct {
	instances  []*Instance
	exclusions []Exclusion
}

var emptyState = &registryState{}

// Option configures a Registry.
type Option func(*Registry)

// WithLogger sets the logger used during population.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Registry) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// NewRegistry returns an empty registry filtering definitions through
// policy. A nil policy rejects nothing.
func NewRegistry(policy *Policy, opts ...Option) *Registry {
	r := &Registry{
		policy: policy,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Policy returns the rejection policy the registry filters with.
func (r *Registry) Policy() *Policy {
	return r.policy
}

// RegisterAll validates, filters and constructs every entry, in order, and
// publishes the resulting collection.
//
// An invalid definition aborts the pass with an *InvalidDefinitionError and
// nothing is published. Definitions with a rejected base URL are skipped and
// listed by Exclusions. RegisterAll may be called only once per Registry;
// later calls return ErrAlreadyPopulated, even after a failed pass.
func (r *Registry) RegisterAll(entries []Entry) error {
	if !r.populated.CompareAndSwap(false, true) {
		return ErrAlreadyPopulated
	}

	state := &registryState{
		instances: make([]*Instance, 0, len(entries)),
	}
	for _, entry := range entries {
		inst, excl, err := r.register(entry)
		if err != nil {
			r.logger.Error("scraper definition rejected",
				"name", entry.Name,
				"error", err)
			return err
		}
		if excl != nil {
			r.logger.Info("skipping scraper bound to rejected source",
				"name", excl.Name,
				"host", excl.Host,
				"reason", excl.Reason)
			state.exclusions = append(state.exclusions, *excl)
			continue
		}
		r.logger.Debug("registered scraper",
			"name", inst.Name(),
			"base_urls", inst.BaseURLs())
		state.instances = append(state.instances, inst)
	}

	r.state.Store(state)
	return nil
}

func (r *Registry) register(entry Entry) (*Instance, *Exclusion, error) {
	if entry.Definition == nil {
		return nil, nil, &InvalidDefinitionError{Name: entry.Name, Reason: ErrNilDefinition}
	}
	if entry.Name == "" {
		return nil, nil, &InvalidDefinitionError{Reason: ErrEmptyName}
	}

	urls, err := ValidateBaseURLs(entry.Definition.BaseURLs())
	if err != nil {
		var invalid *InvalidDefinitionError
		if errors.As(err, &invalid) {
			return nil, nil, invalid.named(entry.Name)
		}
		return nil, nil, err
	}

	for _, u := range urls {
		if reason, rejected := r.policy.Reason(u); rejected {
			return nil, &Exclusion{
				Name:   entry.Name,
				URL:    u,
				Host:   HostOf(u),
				Reason: reason,
			}, nil
		}
	}

	scraper := entry.Definition.New(entry.Name)
	if scraper == nil {
		return nil, nil, &InvalidDefinitionError{Name: entry.Name, Reason: ErrNilScraper}
	}
	if setter, ok := scraper.(BaseURLSetter); ok {
		setter.SetBaseURLs(urls)
	}
	return newInstance(entry.Name, urls, scraper), nil, nil
}

func (r *Registry) load() *registryState {
	if s := r.state.Load(); s != nil {
		return s
	}
	return emptyState
}

// FindByURL returns the first registered instance with a base URL on the
// same host as rawURL. It returns a *RejectedSourceError when the host is
// rejected, and (nil, nil) when no instance serves the host.
func (r *Registry) FindByURL(rawURL string) (*Instance, error) {
	if err := r.policy.RejectIfRejected(rawURL); err != nil {
		return nil, err
	}

	host := HostOf(rawURL)
	if host == "" {
		return nil, nil
	}
	for _, inst := range r.load().instances {
		if inst.servesHost(host) {
			return inst, nil
		}
	}
	return nil, nil
}

// FindByName returns the first registered instance whose logical name
// equals name exactly.
func (r *Registry) FindByName(name string) (*Instance, bool) {
	for _, inst := range r.load().instances {
		if inst.name == name {
			return inst, true
		}
	}
	return nil, false
}

// Instances returns the registered instances in registration order.
func (r *Registry) Instances() []*Instance {
	instances := r.load().instances
	out := make([]*Instance, len(instances))
	copy(out, instances)
	return out
}

// Exclusions returns the definitions skipped because of the rejection
// table, in discovery order.
func (r *Registry) Exclusions() []Exclusion {
	exclusions := r.load().exclusions
	out := make([]Exclusion, len(exclusions))
	copy(out, exclusions)
	return out
}

// Len returns the number of registered instances.
func (r *Registry) Len() int {
	return len(r.load().instances)
}
