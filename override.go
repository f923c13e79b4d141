package validino

// Override interfaces let values bypass reflection when a validator needs
// their size or truth value. Validators check for these before falling back
// to the reflected kind of the value.

// Sizer reports a length for ClampLength.
type Sizer interface {
	// Len returns the number of elements the value holds.
	Len() int
}

// Truther reports a truth value for ToBoolean, OnlyOneOf and falsy checks.
type Truther interface {
	// Truth reports whether the value counts as present.
	Truth() bool
}
