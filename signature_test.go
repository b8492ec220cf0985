package typename

import (
	"reflect"
	"testing"

	"github.com/namekit/typename/internal/testtypes"
)

func TestSignatureOf_Deterministic(t *testing.T) {
	if a, b := signatureOf[int](), signatureOf[int](); a != b {
		t.Errorf("signatures differ across calls: %q vs %q", a, b)
	}
}

func TestSignatureOf_DistinctTypes(t *testing.T) {
	sigs := map[string]string{
		"int":     signatureOf[int](),
		"int32":   signatureOf[int32](),
		"example": signatureOf[testtypes.Example](),
		"pointer": signatureOf[*testtypes.Example](),
	}

	seen := make(map[string]string, len(sigs))
	for name, sig := range sigs {
		if prev, ok := seen[sig]; ok {
			t.Errorf("types %s and %s collide on signature %q", prev, name, sig)
		}
		seen[sig] = name
	}
}

// The reflect.Type-keyed source must share the generic source's framing,
// or ForType and For would desynchronize.
func TestSignatureOfType_MatchesGeneric(t *testing.T) {
	tests := []struct {
		name    string
		generic string
		typed   string
	}{
		{"int", signatureOf[int](), signatureOfType(reflect.TypeOf((*int)(nil)).Elem())},
		{"struct", signatureOf[testtypes.Example](), signatureOfType(reflect.TypeOf((*testtypes.Example)(nil)).Elem())},
		{"interface", signatureOf[testtypes.Greeter](), signatureOfType(reflect.TypeOf((*testtypes.Greeter)(nil)).Elem())},
		{"anchor", signatureOf[struct{}](), signatureOfType(reflect.TypeOf((*struct{})(nil)).Elem())},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.generic != tt.typed {
				t.Errorf("generic %q, typed %q", tt.generic, tt.typed)
			}
		})
	}
}
