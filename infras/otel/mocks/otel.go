// Package mocks holds an in-memory otel.Otel that keeps every scope it opens,
// so tests can assert on span names, attributes and traced errors.
package mocks

import (
	"context"
	"docai/infras/otel"
	"sync"
)

type Otel struct {
	mu     sync.Mutex
	scopes []*Scope
}

func (o *Otel) NewScope(ctx context.Context, _, spanName string) (context.Context, otel.Scope) {
	scope := NewScope()
	scope.Name = spanName

	o.mu.Lock()
	o.scopes = append(o.scopes, scope)
	o.mu.Unlock()

	return ctx, scope
}

// Scopes returns the scopes opened so far, oldest first.
func (o *Otel) Scopes() []*Scope {
	o.mu.Lock()
	defer o.mu.Unlock()

	return append([]*Scope(nil), o.scopes...)
}

// Find returns the first scope with the given span name.
func (o *Otel) Find(spanName string) (*Scope, bool) {
	for _, scope := range o.Scopes() {
		if scope.Name == spanName {
			return scope, true
		}
	}

	return nil, false
}

func NewOtel() *Otel {
	return &Otel{}
}

type Scope struct {
	mu         sync.Mutex
	Name       string
	Ended      bool
	Events     []string
	Errors     []error
	Attributes map[string]any
}

func (s *Scope) End() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.Ended = true
}

func (s *Scope) TraceError(err error) {
	if err == nil {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.Errors = append(s.Errors, err)
}

func (s *Scope) TraceIfError(err error) {
	s.TraceError(err)
}

func (s *Scope) AddEvent(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.Events = append(s.Events, name)
}

func (s *Scope) SetAttribute(key string, value any) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.Attributes[key] = value
}

func (s *Scope) SetAttributes(attributes map[string]any) {
	for key, value := range attributes {
		s.SetAttribute(key, value)
	}
}

func (s *Scope) Attribute(key string) any {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.Attributes[key]
}

func NewScope() *Scope {
	return &Scope{Attributes: map[string]any{}}
}
