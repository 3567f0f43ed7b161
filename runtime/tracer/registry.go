package tracer

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"
	"sync"

	"github.com/viant/x"

	"github.com/viant/motion/model"
)

var (
	// ErrNotTracer is returned when registering a value implementing no tracer hook.
	ErrNotTracer = errors.New("type implements no tracer hook")
	// ErrUnknownTracer is returned when no type is registered under a name.
	ErrUnknownTracer = errors.New("unknown tracer")
)

var hookTypes = []reflect.Type{
	reflect.TypeOf((*model.PlanAddedTracer)(nil)).Elem(),
	reflect.TypeOf((*model.NamedPlanAddedTracer)(nil)).Elem(),
	reflect.TypeOf((*model.NamedPlanRemovedTracer)(nil)).Elem(),
	reflect.TypeOf((*model.PerformerCreatedTracer)(nil)).Elem(),
	reflect.TypeOf((*model.PlansCommittedTracer)(nil)).Elem(),
	reflect.TypeOf((*model.PerformersCreatedTracer)(nil)).Elem(),
}

// Registry keeps tracer types addressable by name. A name is the qualified
// type name, either with the full package path
// ("github.com/acme/audit.Tracer") or with the package name only
// ("audit.Tracer"). Lookup instantiates a new zero valued tracer.
type Registry struct {
	x.Registry
	mux     sync.RWMutex
	imports map[string]string
	names   map[string]bool
}

// Register adds the type of prototype. Pointer prototypes register their
// element type; instances are always created as pointers.
func (r *Registry) Register(prototype interface{}) error {
	if prototype == nil {
		return fmt.Errorf("tracer prototype is nil")
	}
	rType := reflect.TypeOf(prototype)
	if rType.Kind() == reflect.Ptr {
		rType = rType.Elem()
	}
	if rType.Name() == "" {
		return fmt.Errorf("tracer type %v is not named", rType)
	}
	if !implementsHook(reflect.PtrTo(rType)) {
		return fmt.Errorf("%w: %v", ErrNotTracer, rType)
	}
	dataType := x.NewType(rType)
	key := rType.PkgPath() + "." + rType.Name()

	r.mux.Lock()
	defer r.mux.Unlock()
	if pkgPath := rType.PkgPath(); pkgPath != "" {
		alias := pkgPath
		if idx := strings.LastIndex(pkgPath, "/"); idx != -1 {
			alias = pkgPath[idx+1:]
		}
		if _, ok := r.imports[alias]; !ok {
			r.imports[alias] = pkgPath
		}
	}
	r.names[key] = true
	r.Registry.Register(dataType)
	return nil
}

// Lookup creates a tracer of the type registered under name.
func (r *Registry) Lookup(name string) (interface{}, error) {
	key := r.key(name)
	r.mux.RLock()
	registered := r.names[key]
	r.mux.RUnlock()
	if !registered {
		return nil, fmt.Errorf("%w: %s", ErrUnknownTracer, name)
	}
	dataType := r.Registry.Lookup(key)
	if dataType == nil || dataType.Type == nil {
		return nil, fmt.Errorf("%w: %s", ErrUnknownTracer, name)
	}
	return reflect.New(dataType.Type).Interface(), nil
}

// Names returns the qualified names of registered tracers, sorted.
func (r *Registry) Names() []string {
	r.mux.RLock()
	defer r.mux.RUnlock()
	result := make([]string, 0, len(r.names))
	for name := range r.names {
		result = append(result, name)
	}
	sort.Strings(result)
	return result
}

func (r *Registry) key(name string) string {
	idx := strings.LastIndex(name, ".")
	if idx == -1 {
		return name
	}
	pkg, typeName := name[:idx], name[idx+1:]
	r.mux.RLock()
	pkgPath, ok := r.imports[pkg]
	r.mux.RUnlock()
	if ok {
		pkg = pkgPath
	}
	return pkg + "." + typeName
}

func implementsHook(rType reflect.Type) bool {
	for _, hook := range hookTypes {
		if rType.Implements(hook) {
			return true
		}
	}
	return false
}

// NewRegistry creates an empty tracer registry.
func NewRegistry(options ...x.RegistryOption) *Registry {
	return &Registry{
		Registry: *x.NewRegistry(options...),
		imports:  map[string]string{},
		names:    map[string]bool{},
	}
}

var registry = NewRegistry()

// Register adds the tracer type of prototype to the default registry.
func Register(prototype interface{}) error {
	return registry.Register(prototype)
}

// Lookup creates a tracer registered with the default registry.
func Lookup(name string) (interface{}, error) {
	return registry.Lookup(name)
}

// Names returns the names registered with the default registry.
func Names() []string {
	return registry.Names()
}
