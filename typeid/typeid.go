// Package typeid derives stable identifiers from extracted type names.
//
// Identifiers are pure functions of the name the active toolchain renders
// for a type, so they are stable across processes and binaries built with
// the same toolchain. They are not stable across toolchains that render
// names differently; persist the name itself when that matters.
package typeid

import (
	"hash/fnv"

	"github.com/google/uuid"

	"github.com/namekit/typename"
)

// Namespace is the UUID namespace used by [UUID] and [UUIDOf]. Replace it
// before the first identifier is derived to partition identifiers between
// applications.
var Namespace = uuid.NameSpaceOID

// ID returns a stable 64-bit identifier for T: the FNV-64a hash of T's
// extracted name.
func ID[T any]() uint64 {
	return hashName(typename.For[T]())
}

// IDOf returns the identifier for the dynamic type of v, or 0 when v is
// nil.
func IDOf(v any) uint64 {
	n := typename.Of(v)
	if n == nil {
		return 0
	}
	return hashName(n)
}

// UUID returns a deterministic name-based UUID for T, derived from T's
// extracted name in [Namespace].
func UUID[T any]() uuid.UUID {
	return uuid.NewSHA1(Namespace, []byte(typename.For[T]().String()))
}

// UUIDOf returns the UUID for the dynamic type of v, or uuid.Nil when v
// is nil.
func UUIDOf(v any) uuid.UUID {
	n := typename.Of(v)
	if n == nil {
		return uuid.Nil
	}
	return uuid.NewSHA1(Namespace, []byte(n.String()))
}

func hashName(n *typename.Name) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(n.String()))
	return h.Sum64()
}
