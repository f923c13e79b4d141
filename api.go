// Package validino provides composable validation and coercion of plain data.
//
// A Validator takes a value and an ambient Context and returns either the
// (possibly transformed) value or an error. Validation failures are always
// reported as *Invalid, which carries a mapping from field keys to messages.
//
// # Composition
//
// Validators are built bottom-up from small constructors and combinators:
//
//	age := validino.Chain{
//	    validino.Strip,
//	    validino.ToInteger(validino.Text("age must be a number")),
//	    validino.Clamp(18, 130, validino.Messages{"min": "too young"}),
//	}
//
// The combinators differ in what each step receives and what they return:
//
//   - AllOf: run in sequence, each receiving the previous output
//   - Either: first alternative that succeeds wins, else the last failure
//   - Check: run for side effects, return the input unchanged
//   - Excursion: run destructively, return a snapshot of the input
//
// # Schemas
//
// A Schema applies named sub-validators to a map and aggregates every
// field failure into one *Invalid:
//
//	signup := validino.NewSchema(map[string]validino.Validator{
//	    "email":    validino.Chain{validino.Strip, validino.NotEmpty(nil)},
//	    "password": validino.ClampLength(8, validino.NoLimit, nil),
//	    "confirm":  validino.ClampLength(8, validino.NoLimit, nil),
//	},
//	    validino.WithGroup(validino.FieldsEqual(validino.Text("passwords differ")), "confirm", "password"),
//	    validino.AllowExtra(false),
//	)
//
//	clean, err := signup.Validate(form, nil)
//	if inv, ok := validino.AsInvalid(err); ok {
//	    render(inv.UnpackErrors()) // map[string]any{"": "Problems were found...", "email": "..."}
//	}
//
// Singular keys always run before groups, so cross-field checks see coerced
// sibling values.
//
// # Messages
//
// Every constructor accepts a Msg: nil for the built-in default, Text for a
// single template, or Messages keyed by failure kind ("min", "maxlen",
// "schema.missing", ...). Templates may reference {min}, {max} and {length}.
//
// # Codecs
//
// Raw payloads are decoded through a Codec before validation. The json, yaml,
// msgpack and bson sub-packages provide implementations:
//
//	clean, err := signup.ValidateBytes(ctx, json.New(), body, nil)
package validino

// Context carries ambient data to context-aware validators, such as a
// database handle or a set of known identifiers. A nil Context is valid.
type Context map[string]any

// Validator checks and optionally transforms a value.
//
// A failed validation returns an *Invalid. Any other error aborts the
// surrounding schema instead of being aggregated.
type Validator interface {
	Validate(value any, c Context) (any, error)
}

// Func adapts a context-aware function to a Validator.
type Func func(value any, c Context) (any, error)

// Validate calls f.
func (f Func) Validate(value any, c Context) (any, error) {
	return f(value, c)
}

// Transform adapts a plain one-argument function to a Validator.
// The context is ignored and a Transform never fails.
type Transform func(value any) any

// Validate calls t with value.
func (t Transform) Validate(value any, _ Context) (any, error) {
	return t(value), nil
}

// Chain is a sequence of validators applied with AllOf.
type Chain []Validator

// Validate runs the chain in order.
func (ch Chain) Validate(value any, c Context) (any, error) {
	return AllOf(ch...).Validate(value, c)
}

// ContextValidator marks fn as a validator that consumes the ambient context.
func ContextValidator(fn func(value any, c Context) (any, error)) Validator {
	return Func(fn)
}
