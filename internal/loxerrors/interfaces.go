package loxerrors

// errors.Unwrap relies on an anonymous interface; this one lets the error
// types assert they keep the cause chain intact.
type unwrapInterface interface {
	Unwrap() error
}

// diagnostic is implemented by errors which carry a source position.
type diagnostic interface {
	Diagnostic() Diagnostic
}
