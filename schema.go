package validino

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"strings"
	"time"
)

// Schema validates a mapping with one sub-validator per key and aggregates
// every failure into a single *Invalid.
//
// Singular keys run first in sorted order, then groups (plural keys) in
// sorted order of their key tuples. A group receives the current values of
// its keys as a []any, after any singular coercion, and must return a slice
// of the same length that is spread back over those keys.
//
// A Schema holds no state between calls and is safe for concurrent use.
type Schema struct {
	fields       map[string]Validator
	groups       []group
	msg          Msg
	allowMissing bool
	allowExtra   bool
	filterExtra  bool
	keys         []string
}

type group struct {
	keys []string
	v    Validator
}

func (g group) label() string {
	return strings.Join(g.keys, ",")
}

// SchemaOption configures a Schema.
type SchemaOption func(*Schema)

// WithMessage sets the message specification for schema-level failures
// (kinds schema.error, schema.extra, schema.missing, schema.type).
func WithMessage(msg Msg) SchemaOption {
	return func(s *Schema) {
		s.msg = msg
	}
}

// AllowMissing controls whether declared keys may be absent from the input.
// The default is true.
func AllowMissing(allow bool) SchemaOption {
	return func(s *Schema) {
		s.allowMissing = allow
	}
}

// AllowExtra controls whether undeclared keys may appear in the input.
// The default is true.
func AllowExtra(allow bool) SchemaOption {
	return func(s *Schema) {
		s.allowExtra = allow
	}
}

// FilterExtra controls whether undeclared keys are dropped from the result.
// The default is true; with false they pass through unvalidated.
func FilterExtra(filter bool) SchemaOption {
	return func(s *Schema) {
		s.filterExtra = filter
	}
}

// WithGroup adds a cross-field validator over keys. Failures are filed under
// the comma-joined keys unless the validator reports a field of its own.
func WithGroup(v Validator, keys ...string) SchemaOption {
	return func(s *Schema) {
		s.groups = append(s.groups, group{keys: slices.Clone(keys), v: v})
	}
}

// NewSchema creates a Schema from per-key validators.
func NewSchema(fields map[string]Validator, opts ...SchemaOption) *Schema {
	s := &Schema{
		fields:       maps.Clone(fields),
		allowMissing: true,
		allowExtra:   true,
		filterExtra:  true,
	}
	if s.fields == nil {
		s.fields = map[string]Validator{}
	}
	for _, opt := range opts {
		opt(s)
	}

	slices.SortStableFunc(s.groups, func(a, b group) int {
		return slices.Compare(a.keys, b.keys)
	})

	declared := make(map[string]struct{}, len(s.fields))
	for k := range s.fields {
		declared[k] = struct{}{}
	}
	for _, g := range s.groups {
		for _, k := range g.keys {
			declared[k] = struct{}{}
		}
	}
	s.keys = sortedKeys(declared)

	emitSchemaCreated(context.Background(), len(s.keys), len(s.groups))
	return s
}

// Keys returns the declared keys in sorted order.
func (s *Schema) Keys() []string {
	return slices.Clone(s.keys)
}

// Validate applies the schema to value, which must be a mapping with string
// keys or nil.
func (s *Schema) Validate(value any, c Context) (any, error) {
	return s.ValidateContext(context.Background(), value, c)
}

// ValidateMap is Validate with a typed result.
func (s *Schema) ValidateMap(data map[string]any, c Context) (map[string]any, error) {
	out, err := s.Validate(data, c)
	if err != nil {
		return nil, err
	}
	return out.(map[string]any), nil
}

// ValidateContext is Validate, emitting start and completion signals on ctx.
func (s *Schema) ValidateContext(ctx context.Context, value any, c Context) (any, error) {
	start := time.Now()
	emitSchemaStart(ctx, len(s.keys))

	out, err := s.apply(value, c)

	errorCount := 0
	if inv, ok := AsInvalid(err); ok {
		errorCount = len(inv.Errors())
	}
	emitSchemaComplete(ctx, len(s.keys), errorCount, time.Since(start), err)

	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Schema) apply(value any, c Context) (map[string]any, error) {
	data := map[string]any{}
	if value != nil {
		m, ok := asMap(value)
		if !ok {
			return nil, fail(s.msg, "schema.type", "expected a mapping")
		}
		if m != nil {
			data = m
		}
	}

	if !s.allowExtra || !s.allowMissing {
		if err := s.checkKeys(data); err != nil {
			return nil, err
		}
	}

	result := map[string]any{}
	if !s.filterExtra {
		result = maps.Clone(data)
	}
	lookup := func(k string) any {
		if v, ok := result[k]; ok {
			return v
		}
		return data[k]
	}

	errs := Mapping{}
	for _, k := range sortedKeys(s.fields) {
		out, err := s.fields[k].Validate(lookup(k), c)
		if err != nil {
			if err := file(errs, k, err); err != nil {
				return nil, err
			}
			continue
		}
		result[k] = out
	}

	for _, g := range s.groups {
		values := make([]any, len(g.keys))
		for i, k := range g.keys {
			values[i] = lookup(k)
		}
		out, err := g.v.Validate(values, c)
		if err != nil {
			if err := file(errs, g.label(), err); err != nil {
				return nil, err
			}
			continue
		}
		items, ok := asSlice(out)
		if !ok || len(items) != len(g.keys) {
			return nil, newConfigError(ErrGroupShape, g.label(), fmt.Sprintf("%T", out))
		}
		for i, k := range g.keys {
			result[k] = items[i]
		}
	}

	if len(errs) > 0 {
		if _, ok := errs[RootKey]; !ok {
			errs[RootKey] = Message(render(s.msg, "schema.error", "Problems were found in the submitted data.", nil))
		}
		return nil, NewInvalid(errs)
	}
	return result, nil
}

// checkKeys rejects undeclared or absent keys before any field runs.
func (s *Schema) checkKeys(data map[string]any) error {
	if !s.allowExtra {
		for k := range data {
			if !slices.Contains(s.keys, k) {
				return fail(s.msg, "schema.extra", "extra keys in input")
			}
		}
	}
	if !s.allowMissing {
		for _, k := range s.keys {
			if _, ok := data[k]; !ok {
				return fail(s.msg, "schema.missing", "missing keys in input")
			}
		}
	}
	return nil
}

// file records a validation failure under key, or under the failure's own
// field override. Other errors are returned to abort the schema.
func file(errs Mapping, key string, err error) error {
	inv, ok := AsInvalid(err)
	if !ok {
		return err
	}
	if field, has := inv.Field(); has {
		key = field
	}
	errs[key] = toContent(inv.unpack())
	return nil
}
