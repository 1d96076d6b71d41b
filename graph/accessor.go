package graph

import (
	"context"
	"fmt"
	"reflect"
	"time"

	"github.com/99designs/gqlgen/graphql"
	"github.com/google/uuid"
)

// The accessors below implement the two-branch read the generated code
// attaches to every output field: a keyed record is read by wire name,
// a typed instance by property name. Records store wire representation,
// so the record-to-value direction is lenient; the instance-to-wire
// direction always projects enums into their wire string form.

// PropertyResolver returns the accessor for a plain field.
func PropertyResolver(wireName, propName string) FieldResolver {
	return func(_ context.Context, source any, _ map[string]any) (any, error) {
		if rec, ok := asRecord(source); ok {
			return rec[wireName], nil
		}
		return readProperty(source, propName), nil
	}
}

// TimeResolver returns the accessor for a date-time field. The record
// branch parses the stored string form, passing null through untouched.
func TimeResolver(wireName, propName string) FieldResolver {
	return func(_ context.Context, source any, _ map[string]any) (any, error) {
		if rec, ok := asRecord(source); ok {
			v := rec[wireName]
			switch v := v.(type) {
			case nil:
				return nil, nil
			case time.Time:
				return v, nil
			default:
				t, err := graphql.UnmarshalTime(v)
				if err != nil {
					return nil, fmt.Errorf("graph: field %q: %w", wireName, err)
				}
				return t, nil
			}
		}
		return readProperty(source, propName), nil
	}
}

// IDResolver returns the accessor for an ID field. The record branch
// coerces the stored value to its canonical string form; the instance
// branch projects uuid values to strings.
func IDResolver(wireName, propName string) FieldResolver {
	return func(_ context.Context, source any, _ map[string]any) (any, error) {
		if rec, ok := asRecord(source); ok {
			v := rec[wireName]
			if v == nil {
				return nil, nil
			}
			s, err := graphql.UnmarshalID(v)
			if err != nil {
				return nil, fmt.Errorf("graph: field %q: %w", wireName, err)
			}
			return s, nil
		}
		v := readProperty(source, propName)
		if id, ok := v.(uuid.UUID); ok {
			return id.String(), nil
		}
		return v, nil
	}
}

// EnumResolver returns the accessor for an enum field. When typed is
// false the record branch returns the stored wire string unchanged;
// when the consuming runtime expects a live enum value, the accessor
// looks up the matching constant by wire string and fails if none
// matches. The instance branch always projects to the wire string.
func EnumResolver(wireName, propName, enumName string, typed bool) FieldResolver {
	return func(_ context.Context, source any, _ map[string]any) (any, error) {
		if rec, ok := asRecord(source); ok {
			v := rec[wireName]
			if v == nil || !typed {
				return v, nil
			}
			s, ok := v.(string)
			if !ok {
				s = fmt.Sprint(v)
			}
			if e, ok := Types.Enum(enumName); ok {
				if ev := e.Value(s); ev != nil {
					return ev.Value, nil
				}
			}
			return nil, NewInvalidEnumValueError(enumName, s)
		}
		v := readProperty(source, propName)
		if v == nil {
			return nil, nil
		}
		return enumWireForm(v), nil
	}
}

// EnumListResolver returns the accessor for a list-of-enum field. The
// instance branch maps each element to its wire string, tolerating a
// null list.
func EnumListResolver(wireName, propName string) FieldResolver {
	return func(_ context.Context, source any, _ map[string]any) (any, error) {
		if rec, ok := asRecord(source); ok {
			return rec[wireName], nil
		}
		v := readProperty(source, propName)
		if v == nil {
			return nil, nil
		}
		rv := reflect.ValueOf(v)
		if rv.Kind() != reflect.Slice || rv.IsNil() {
			return nil, nil
		}
		names := make([]string, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			names[i] = enumWireForm(rv.Index(i).Interface())
		}
		return names, nil
	}
}

// MethodResolver returns the dispatch accessor for a resolver-marked
// method. It looks up the composite "ClassName.methodName" key in the
// process-wide resolver registry and forwards the call unmodified,
// failing with a MissingResolverError if no callback was registered.
func MethodResolver(key string) FieldResolver {
	return func(ctx context.Context, source any, args map[string]any) (any, error) {
		return Resolvers.Resolve(ctx, key, source, args)
	}
}

// asRecord reports whether the runtime value is a keyed record.
func asRecord(source any) (map[string]any, bool) {
	rec, ok := source.(map[string]any)
	return rec, ok
}

// readProperty reads the named property off a typed instance: an
// exported struct field first, then a zero-argument method of the same
// name. A missing property or nil source reads as null.
func readProperty(source any, name string) any {
	if source == nil {
		return nil
	}
	rv := reflect.Indirect(reflect.ValueOf(source))
	if !rv.IsValid() {
		return nil
	}
	if rv.Kind() == reflect.Struct {
		if f := rv.FieldByName(name); f.IsValid() && f.CanInterface() {
			return f.Interface()
		}
	}
	// Computed getters. Methods are looked up on the original value so
	// pointer receivers still match.
	m := reflect.ValueOf(source).MethodByName(name)
	if m.IsValid() && m.Type().NumIn() == 0 && m.Type().NumOut() == 1 {
		return m.Call(nil)[0].Interface()
	}
	return nil
}

// enumWireForm projects an enum constant into its wire string form.
func enumWireForm(v any) string {
	if s, ok := v.(fmt.Stringer); ok {
		return s.String()
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.String {
		return rv.String()
	}
	return fmt.Sprint(v)
}
