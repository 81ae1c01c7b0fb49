package morph

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/zoobzio/sentinel"
)

func init() {
	// Register the strategy tag with sentinel
	sentinel.Tag("morph")
}

// Tagged encodes a struct as a map of its exported fields, applying the
// strategy each field names in its morph tag. Untagged fields use the host's
// natural encoding. Wire names follow the json tag; `json:"-"` skips a field.
//
//	type Job struct {
//	    Name    string        `json:"name"`
//	    Timeout time.Duration `json:"timeout" morph:"duration_seconds"`
//	    Started time.Time     `json:"started" morph:"timestamp_from_any"`
//	}
//
//	data, err := morph.Marshal[morph.Tagged[Job]](ctx, json.New(), job)
//
// Unknown wire keys are ignored and absent keys leave the field zero.
type Tagged[T any] struct{}

// structPlan describes how to encode and decode every field of a struct type.
type structPlan struct {
	typeName string
	fields   []fieldPlan
	byName   map[string]int
}

// fieldPlan describes how to move a single field to and from the wire.
type fieldPlan struct {
	index    []int          // reflect.Value.FieldByIndex access path
	name     string         // Go field name for error messages
	wire     string         // key on the wire
	strategy *namedStrategy // nil for natural encoding
}

func (Tagged[T]) EncodeAs(v T) (Node, error) {
	plan, err := planFor[T]()
	if err != nil {
		return Node{}, err
	}
	rv := reflect.ValueOf(&v).Elem()
	entries := make([]NodeEntry, 0, len(plan.fields))
	for _, f := range plan.fields {
		field := rv.FieldByIndex(f.index)
		var n Node
		if f.strategy != nil {
			n, err = f.strategy.encode(field)
		} else {
			n, err = naturalNode(field)
		}
		if err != nil {
			return Node{}, atKey(err, f.wire)
		}
		entries = append(entries, NodeEntry{Key: StringNode(f.wire), Value: n})
	}
	return MapNode(entries), nil
}

func (Tagged[T]) DecodeAs(v Value) (T, error) {
	var out T
	plan, err := planFor[T]()
	if err != nil {
		return out, err
	}
	if v.Kind() != KindMap {
		return out, invalidShape(v, "map of "+plan.typeName)
	}
	entries, err := v.Entries()
	if err != nil {
		return out, err
	}
	rv := reflect.ValueOf(&out).Elem()
	for _, e := range entries {
		i, ok := plan.byName[e.Key.Text()]
		if !ok {
			continue
		}
		f := plan.fields[i]
		field := rv.FieldByIndex(f.index)
		if f.strategy != nil {
			decoded, err := f.strategy.decode(e.Value)
			if err != nil {
				var zero T
				return zero, atKey(err, f.wire)
			}
			field.Set(decoded)
			continue
		}
		if err := naturalDecode(field, e.Value); err != nil {
			var zero T
			return zero, atKey(err, f.wire)
		}
	}
	return out, nil
}

// naturalNode defers a field to the host unless it supplies its own node.
func naturalNode(field reflect.Value) (Node, error) {
	if field.CanAddr() {
		if m, ok := field.Addr().Interface().(NodeMarshaler); ok {
			return m.MarshalNode()
		}
	}
	if m, ok := field.Interface().(NodeMarshaler); ok {
		return m.MarshalNode()
	}
	return NativeNode(field.Interface()), nil
}

func naturalDecode(field reflect.Value, v Value) error {
	ptr := field.Addr().Interface()
	if u, ok := ptr.(NodeUnmarshaler); ok {
		return u.UnmarshalNode(v)
	}
	return v.Decode(ptr)
}

// buildPlan creates the field plan for struct type T by scanning its tags.
func buildPlan[T any]() (*structPlan, error) {
	rt := reflect.TypeFor[T]()
	if rt.Kind() != reflect.Struct {
		return nil, newConfigError(ErrStrategyType, "tagged", rt.String())
	}

	meta := sentinel.Scan[T]()
	plan := &structPlan{
		typeName: meta.TypeName,
		byName:   make(map[string]int, len(meta.Fields)),
	}

	for _, field := range meta.Fields {
		sf := rt.FieldByIndex(field.Index)
		if !sf.IsExported() {
			continue
		}
		wire, skip := wireName(sf)
		if skip {
			continue
		}

		fp := fieldPlan{
			index: field.Index,
			name:  field.Name,
			wire:  wire,
		}

		if val, ok := field.Tags["morph"]; ok && val != "" {
			ns, found := lookupStrategy(StrategyName(val))
			if !found {
				return nil, newConfigError(ErrUnknownStrategy, val, field.Name)
			}
			if ns.typ != field.ReflectType {
				return nil, &ConfigError{
					Err:      ErrStrategyType,
					Field:    field.Name,
					Strategy: fmt.Sprintf("%s for %s, field is %s", val, ns.typ, field.ReflectType),
				}
			}
			fp.strategy = &ns
		}

		plan.byName[wire] = len(plan.fields)
		plan.fields = append(plan.fields, fp)
	}

	return plan, nil
}

// wireName reads the field's key from its json tag.
func wireName(sf reflect.StructField) (name string, skip bool) {
	tag, ok := sf.Tag.Lookup("json")
	if !ok {
		return sf.Name, false
	}
	name, _, _ = strings.Cut(tag, ",")
	switch name {
	case "-":
		return "", true
	case "":
		return sf.Name, false
	}
	return name, false
}
