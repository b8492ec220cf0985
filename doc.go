// Package typename derives short, human-readable names for Go types by
// introspecting the rendered signature of a generic function instantiated
// with each type.
//
// Names are computed once per distinct type, cached for the lifetime of
// the process, and returned as immutable [Name] values. Repeated calls
// return the identical cached instance, so a name costs a single map load
// after first use. This suits libraries that need automatic type names
// for logging, serialization keys, diagnostics, or registries without
// manual per-type registration.
//
// # Quick Start
//
//	name := typename.For[OrderCreated]()
//	fmt.Println(name)        // "mypkg.OrderCreated"
//	fmt.Println(name.Base()) // "OrderCreated"
//
//	// Dynamic variant for values of unknown static type.
//	typename.Of(v)
//
// # Calibration
//
// The framing around a type name inside a signature is not hardcoded. At
// package init the library renders the signature of a single anchor type,
// the empty struct, locates its known literal "struct {}", and derives
// the prefix and suffix lengths shared by every signature the active
// toolchain produces. A runtime that renders signatures differently
// calibrates to its own framing automatically; a grammar with no
// recognizable anchor fails at program start rather than producing
// corrupted names later.
//
// # Toolchain contract
//
// Extracted names are passed through exactly as the toolchain renders
// them: package qualifiers, pointer markers, and the category keywords of
// unnamed composites ("struct { ... }", "interface { ... }") stay inside
// the name, and generic type arguments carry full import paths. Callers
// that need an undecorated name use [Name.Base], [Name.Indirect], or a
// [Strategy].
//
// Subpackages build on the extracted names: typeid derives stable hash
// and UUID identifiers, namelog attaches names to zap and slog records,
// and registry maps names to factories for unmarshaling.
package typename
