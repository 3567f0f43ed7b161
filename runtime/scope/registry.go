package scope

import (
	"fmt"
	"reflect"
)

// Registry owns one TargetScope per target. Pointer targets are keyed by
// address, other comparable targets by value.
type Registry struct {
	host   Host
	scopes map[interface{}]*TargetScope
	order  []*TargetScope
}

// Scope returns the scope of target, creating it on first use.
func (r *Registry) Scope(target interface{}) *TargetScope {
	if target == nil {
		panic("scope: target is nil")
	}
	if !reflect.ValueOf(target).Comparable() {
		panic(fmt.Sprintf("scope: target %T is not comparable", target))
	}
	if ret, ok := r.scopes[target]; ok {
		return ret
	}
	ret := New(target, r.host)
	r.scopes[target] = ret
	r.order = append(r.order, ret)
	r.host.Logger().WithField("target", fmt.Sprintf("%T", target)).Debug("scope created")
	return ret
}

// Lookup returns the scope of target without creating it.
func (r *Registry) Lookup(target interface{}) (*TargetScope, bool) {
	if target == nil || !reflect.ValueOf(target).Comparable() {
		return nil, false
	}
	ret, ok := r.scopes[target]
	return ret, ok
}

// Scopes returns the scopes in creation order.
func (r *Registry) Scopes() []*TargetScope {
	return append([]*TargetScope{}, r.order...)
}

// Len returns the number of scopes.
func (r *Registry) Len() int {
	return len(r.order)
}

// Release releases and forgets every scope.
func (r *Registry) Release() {
	for _, s := range r.order {
		s.Release()
	}
	r.scopes = map[interface{}]*TargetScope{}
	r.order = nil
}

// NewRegistry creates an empty registry.
func NewRegistry(host Host) *Registry {
	return &Registry{host: host, scopes: map[interface{}]*TargetScope{}}
}
