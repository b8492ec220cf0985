package typename

import "reflect"

// probe exists only so that every requested type produces a distinct
// instantiated function signature. It is never called.
func probe[T any](T) {}

// signatureOf returns the rendered signature of probe instantiated at T.
// The type name appears between a fixed prefix and suffix shared by every
// instantiation within one toolchain; the framing is discovered by
// calibration, not assumed.
func signatureOf[T any]() string {
	return reflect.TypeOf(probe[T]).String()
}

// signatureOfType returns the rendered signature for a reflect.Type,
// built with reflect.FuncOf so it shares the framing of signatureOf.
func signatureOfType(t reflect.Type) string {
	return reflect.FuncOf([]reflect.Type{t}, nil, false).String()
}
