package typename

import (
	"reflect"
	"strconv"
	"sync"
)

// cache deduplicates extracted names per distinct type. Values are *Name
// and are never removed.
var cache sync.Map // reflect.Type → *Name

// For returns the extracted name for type T. The first call for a
// distinct T computes and caches the name; every later call returns the
// identical cached instance.
//
//	typename.For[int]()            // "int"
//	typename.For[*pkg.Example]()   // "*pkg.Example"
//	typename.For[pkg.Box[int]]()   // "pkg.Box[int]"
//	typename.For[struct{}]()       // "struct {}"
func For[T any]() *Name {
	key := reflect.TypeOf((*T)(nil)).Elem()
	if cached, ok := cache.Load(key); ok {
		return cached.(*Name)
	}
	n := newName(extract(signatureOf[T]()))
	cached, _ := cache.LoadOrStore(key, n)
	return cached.(*Name)
}

// ForType returns the extracted name for the reflect.Type t. It shares
// the cache with [For]: ForType(reflect.TypeFor[T]()) returns the same
// instance as For[T]().
func ForType(t reflect.Type) *Name {
	if cached, ok := cache.Load(t); ok {
		return cached.(*Name)
	}
	n := newName(extract(signatureOfType(t)))
	cached, _ := cache.LoadOrStore(t, n)
	return cached.(*Name)
}

// Of returns the extracted name for the dynamic type of v. Of returns
// nil when v is nil, since a nil interface carries no dynamic type.
func Of(v any) *Name {
	t := reflect.TypeOf(v)
	if t == nil {
		return nil
	}
	return ForType(t)
}

// extract returns the bounded region of sig: the substring between the
// calibrated prefix and suffix.
func extract(sig string) string {
	raw := len(sig) - calibration.prefix - calibration.suffix
	if raw < 0 {
		panic("typename: signature " + strconv.Quote(sig) +
			" is shorter than the calibrated framing")
	}
	return sig[calibration.prefix : calibration.prefix+raw]
}
