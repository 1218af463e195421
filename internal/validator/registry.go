package validator

import (
	"sort"

	"deedcheck/internal/validator/deed"
)

// Registry maps rule keys to Validator implementations.
type Registry struct {
	validators map[string]Validator
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{validators: make(map[string]Validator)}
}

// NewDefaultRegistry creates a Registry holding every builtin deed validator.
func NewDefaultRegistry() *Registry {
	r := NewRegistry()
	for _, v := range deed.AllBuiltinValidators() {
		r.Register(v)
	}
	return r
}

// Register adds a validator to the registry, replacing any with the same key.
func (r *Registry) Register(v Validator) {
	r.validators[v.RuleKey()] = v
}

// Get returns the validator for a given rule key, or nil if not found.
func (r *Registry) Get(key string) Validator {
	return r.validators[key]
}

// All returns all registered validators ordered by rule key.
func (r *Registry) All() []Validator {
	out := make([]Validator, 0, len(r.validators))
	for _, v := range r.validators {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].RuleKey() < out[j].RuleKey() })
	return out
}
