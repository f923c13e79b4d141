package validino

import (
	"errors"
	"reflect"
	"slices"
	"strings"
	"sync"

	"github.com/mitchellh/mapstructure"
	"github.com/zoobzio/sentinel"
)

func init() {
	sentinel.Tag("json")
	sentinel.Tag("hash")
}

// bindPlan describes how validated keys land in a struct type.
type bindPlan struct {
	typeName string
	keys     []string
	hashes   map[string]HashAlgo
	err      error
}

var bindPlans sync.Map // reflect.Type -> *bindPlan

// planFor scans T once and caches the result.
func planFor[T any]() *bindPlan {
	rt := reflect.TypeFor[T]()
	if p, ok := bindPlans.Load(rt); ok {
		return p.(*bindPlan)
	}

	meta := sentinel.Scan[T]()
	plan := &bindPlan{
		typeName: meta.TypeName,
		hashes:   map[string]HashAlgo{},
	}
	for _, field := range meta.Fields {
		tag := func(name string) (string, bool) {
			if v, ok := field.Tags[name]; ok {
				return v, true
			}
			if rt.Kind() != reflect.Struct || len(field.Index) == 0 {
				return "", false
			}
			return rt.FieldByIndex(field.Index).Tag.Lookup(name)
		}

		jsonTag, _ := tag("json")
		key, ok := jsonKey(field.Name, jsonTag)
		if !ok {
			continue
		}
		plan.keys = append(plan.keys, key)

		if algo, ok := tag("hash"); ok && plan.err == nil {
			if !IsValidHashAlgo(HashAlgo(algo)) {
				plan.err = newConfigError(ErrHash, key, algo)
				continue
			}
			plan.hashes[key] = HashAlgo(algo)
		}
	}
	slices.Sort(plan.keys)

	actual, _ := bindPlans.LoadOrStore(rt, plan)
	return actual.(*bindPlan)
}

// jsonKey resolves the map key for a field from its json tag.
func jsonKey(name, tag string) (string, bool) {
	if tag == "-" {
		return "", false
	}
	key, _, _ := strings.Cut(tag, ",")
	if key == "" {
		key = name
	}
	return key, true
}

// StructKeys returns the sorted map keys that Bind fills for struct type T.
func StructKeys[T any]() []string {
	return slices.Clone(planFor[T]().keys)
}

// Bind validates data with s and decodes the result into a T.
//
// Every schema key must name a field of T (by json tag, or field name when
// untagged). Fields tagged hash:"<algo>" receive the hash of their
// validated value.
//
//	type Signup struct {
//	    Email    string `json:"email"`
//	    Password string `json:"password" hash:"argon2"`
//	}
//	user, err := validino.Bind[Signup](schema, form, nil)
func Bind[T any](s *Schema, data map[string]any, c Context) (T, error) {
	var out T

	plan := planFor[T]()
	if plan.err != nil {
		return out, plan.err
	}
	for _, k := range s.Keys() {
		if !slices.Contains(plan.keys, k) {
			return out, newConfigError(ErrUnknownField, k, plan.typeName)
		}
	}

	clean, err := s.ValidateMap(data, c)
	if err != nil {
		return out, err
	}

	for _, k := range sortedKeys(plan.hashes) {
		raw, ok := clean[k]
		if !ok {
			continue
		}
		h, _ := HasherFor(plan.hashes[k])
		hashed, err := Hash(h, nil).Validate(raw, c)
		if err != nil {
			return out, bindHashError(k, err)
		}
		clean[k] = hashed
	}

	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName: "json",
		Result:  &out,
	})
	if err != nil {
		return out, newTransformError(ErrBind, "bind", "", err)
	}
	if err := dec.Decode(clean); err != nil {
		return out, newTransformError(ErrBind, "bind", "", err)
	}
	return out, nil
}

func bindHashError(field string, err error) error {
	var te *TransformError
	if errors.As(err, &te) {
		te.Field = field
		return te
	}
	return newTransformError(ErrHash, "hash", field, err)
}
