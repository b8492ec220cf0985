package typename

import (
	"log/slog"
	"strings"
)

// Name is an extracted type name. Instances are created once per distinct
// type and cached for the lifetime of the process; obtain them through
// [For], [ForType], or [Of].
type Name struct {
	value string
	cstr  []byte
}

func newName(value string) *Name {
	buf := make([]byte, len(value)+1)
	copy(buf, value)
	return &Name{value: value, cstr: buf}
}

// String returns the name exactly as the toolchain renders it, including
// any pointer markers, category keywords, and package qualifiers.
func (n *Name) String() string { return n.value }

// Len returns the length of the name in bytes, excluding the terminator.
func (n *Name) Len() int { return len(n.value) }

// Bytes returns the backing buffer: the name followed by a single NUL
// byte, sized exactly Len()+1. The buffer is shared by every caller and
// must not be modified. Intended for C-style consumers.
func (n *Name) Bytes() []byte { return n.cstr }

// Indirect returns the name with leading pointer markers trimmed.
//
//	"*typename.Example" → "typename.Example"
func (n *Name) Indirect() string {
	return strings.TrimLeft(n.value, "*")
}

// Base returns the undecorated name: leading pointer markers trimmed and
// the outer package qualifier removed. Type arguments of generic types
// keep their own qualifiers.
//
//	"*testtypes.Example" → "Example"
//	"testtypes.Box[int]" → "Box[int]"
//	"int"                → "int"
//
// Unnamed composites (slices, maps, struct literals) have no outer
// qualifier and are returned with pointer markers trimmed only.
func (n *Name) Base() string {
	s := strings.TrimLeft(n.value, "*")
	head := s
	if i := strings.IndexByte(s, '['); i >= 0 {
		head = s[:i]
	}
	if i := strings.LastIndexByte(head, '.'); i >= 0 {
		return s[i+1:]
	}
	return s
}

// Qualified reports whether the outer name carries a package qualifier.
func (n *Name) Qualified() bool {
	return n.Base() != n.Indirect()
}

// LogValue implements [slog.LogValuer], logging the name as a string.
func (n *Name) LogValue() slog.Value {
	return slog.StringValue(n.value)
}
