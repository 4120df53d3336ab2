package conv

import (
	"reflect"
	"testing"
)

func TestToFloat64(t *testing.T) {
	tests := []struct {
		name   string
		in     any
		want   float64
		wantOK bool
	}{
		{name: "float64", in: 1.5, want: 1.5, wantOK: true},
		{name: "int", in: 3, want: 3, wantOK: true},
		{name: "int64", in: int64(7), want: 7, wantOK: true},
		{name: "bool true", in: true, want: 1, wantOK: true},
		{name: "string", in: "x", want: 0, wantOK: false},
		{name: "nil", in: nil, want: 0, wantOK: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ToFloat64(tt.in)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("ToFloat64(%v) = (%f, %v), want (%f, %v)", tt.in, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestSliceAnyToString(t *testing.T) {
	got := SliceAnyToString([]any{"a", 2, "c", true})
	want := []string{"a", "2", "c", "1"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("SliceAnyToString() = %v, want %v", got, want)
	}

	if got := SliceAnyToString(nil); got != nil {
		t.Errorf("SliceAnyToString(nil) = %v, want nil", got)
	}
	if got := SliceAnyToString("not a slice"); got != nil {
		t.Errorf("SliceAnyToString(non-slice) = %v, want nil", got)
	}
}

func TestConfigGet(t *testing.T) {
	m := map[string]any{"name": "fanout", "dedup": true}

	if got := ConfigGet[string](m, "name", ""); got != "fanout" {
		t.Errorf("ConfigGet(name) = %q, want fanout", got)
	}
	if got := ConfigGet[bool](m, "dedup", false); !got {
		t.Error("ConfigGet(dedup) = false, want true")
	}
	if got := ConfigGet[string](m, "missing", "fallback"); got != "fallback" {
		t.Errorf("ConfigGet(missing) = %q, want fallback", got)
	}
	if got := ConfigGet[int](m, "name", 9); got != 9 {
		t.Errorf("type mismatch should fall back, got %d", got)
	}
}

func TestConfigGetInt(t *testing.T) {
	m := map[string]any{
		"int":     5,
		"float64": 7.0,
		"string":  "x",
	}

	if got := ConfigGetInt(m, "int", 0); got != 5 {
		t.Errorf("ConfigGetInt(int) = %d, want 5", got)
	}
	if got := ConfigGetInt(m, "float64", 0); got != 7 {
		t.Errorf("ConfigGetInt(float64) = %d, want 7", got)
	}
	if got := ConfigGetInt(m, "string", 3); got != 3 {
		t.Errorf("ConfigGetInt(string) = %d, want fallback 3", got)
	}
	if got := ConfigGetInt(nil, "any", 2); got != 2 {
		t.Errorf("ConfigGetInt(nil map) = %d, want 2", got)
	}
}
