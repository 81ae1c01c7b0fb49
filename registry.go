package morph

import (
	"context"
	"reflect"
	"sync"
)

// namedStrategy is a registered strategy with its type erased so struct
// plans can hold strategies for unrelated field types side by side.
type namedStrategy struct {
	name   StrategyName
	typ    reflect.Type
	encode func(field reflect.Value) (Node, error)
	decode func(v Value) (reflect.Value, error)
}

var (
	strategies   = make(map[StrategyName]namedStrategy)
	strategiesMu sync.RWMutex
)

func init() {
	registerBuiltins()
}

// Register binds strategy S to name for fields of type T, so struct types
// using Tagged can select it with `morph:"<name>"`. Registering an existing
// name replaces it.
//
//	morph.Register[time.Duration, morph.DurationSeconds[morph.Float, morph.Flexible]]("lenient_seconds")
func Register[T any, S Strategy[T]](name StrategyName) {
	register[T, S](name, true)
}

func register[T any, S Strategy[T]](name StrategyName, emit bool) {
	var s S
	ns := namedStrategy{
		name: name,
		typ:  reflect.TypeFor[T](),
		encode: func(field reflect.Value) (Node, error) {
			return s.EncodeAs(field.Interface().(T))
		},
		decode: func(v Value) (reflect.Value, error) {
			out, err := s.DecodeAs(v)
			if err != nil {
				return reflect.Value{}, err
			}
			return reflect.ValueOf(&out).Elem(), nil
		},
	}

	strategiesMu.Lock()
	strategies[name] = ns
	strategiesMu.Unlock()

	// Plans bind strategies by name at build time.
	resetPlans()

	if emit {
		emitStrategyRegistered(context.Background(), string(name), ns.typ.String())
	}
}

// lookupStrategy returns the strategy registered under name.
func lookupStrategy(name StrategyName) (namedStrategy, bool) {
	strategiesMu.RLock()
	defer strategiesMu.RUnlock()
	ns, ok := strategies[name]
	return ns, ok
}

// ResetRegistry drops every registered strategy except the builtins and
// clears the struct plan cache.
// This is primarily useful for test isolation.
func ResetRegistry() {
	strategiesMu.Lock()
	strategies = make(map[StrategyName]namedStrategy)
	strategiesMu.Unlock()
	registerBuiltins()
}

var (
	plans   = make(map[reflect.Type]*structPlan)
	plansMu sync.RWMutex
)

// planFor returns a cached struct plan or builds a new one.
func planFor[T any]() (*structPlan, error) {
	typ := reflect.TypeFor[T]()

	// Fast path: read-lock cache check
	plansMu.RLock()
	if cached, ok := plans[typ]; ok {
		plansMu.RUnlock()
		return cached, nil
	}
	plansMu.RUnlock()

	// Slow path: build and cache with write-lock
	plansMu.Lock()
	defer plansMu.Unlock()

	// Double-check pattern
	if cached, ok := plans[typ]; ok {
		return cached, nil
	}

	plan, err := buildPlan[T]()
	if err != nil {
		return nil, err
	}

	plans[typ] = plan
	return plan, nil
}

func resetPlans() {
	plansMu.Lock()
	defer plansMu.Unlock()
	plans = make(map[reflect.Type]*structPlan)
}
