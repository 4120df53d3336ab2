package text

import (
	"strings"
	"testing"
)

func TestNormalizer_Normalize(t *testing.T) {
	n := NewNormalizer()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "empty input",
			input: "",
			want:  "",
		},
		{
			name:  "whitespace only",
			input: "   \t  \n ",
			want:  "",
		},
		{
			name:  "punctuation and digits stripped",
			input: "!!! 123 ??? 456",
			want:  "",
		},
		{
			name:  "stop words only",
			input: "la de los y el en",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := n.Normalize(tt.input); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizer_CaseAndPunctuationInsensitive(t *testing.T) {
	n := NewNormalizer()

	// Different casing/punctuation of the same words must normalize identically.
	a := n.Normalize("Masaje Relajante, con Piedras!")
	b := n.Normalize("masaje relajante con piedras")
	if a != b {
		t.Errorf("case/punctuation variants differ: %q vs %q", a, b)
	}
	if a == "" {
		t.Fatal("expected non-empty normalization")
	}
}

func TestNormalizer_StopWordsRemoved(t *testing.T) {
	n := NewNormalizer()

	// The surrounding stop words must not change the result.
	withStops := n.Normalize("la playa y el mar")
	without := n.Normalize("playa mar")
	if withStops != without {
		t.Errorf("stop words leaked: %q vs %q", withStops, without)
	}

	for _, tok := range strings.Fields(withStops) {
		if n.IsStopWord(tok) {
			t.Errorf("output contains stop word %q", tok)
		}
	}
}

func TestNormalizer_StemsCollapsePlurals(t *testing.T) {
	n := NewNormalizer()

	tests := []struct{ a, b string }{
		{"playa", "playas"},
		{"masaje relajante", "masajes relajantes"},
		{"piedra caliente", "piedras calientes"},
	}
	for _, tt := range tests {
		got, want := n.Normalize(tt.a), n.Normalize(tt.b)
		if got != want {
			t.Errorf("Normalize(%q)=%q, Normalize(%q)=%q; want equal stems", tt.a, got, tt.b, want)
		}
	}
}

func TestNormalizer_NormalizeAll(t *testing.T) {
	n := NewNormalizer()

	in := []string{"La Playa", "", "el mar"}
	out := n.NormalizeAll(in)
	if len(out) != len(in) {
		t.Fatalf("NormalizeAll length = %d, want %d", len(out), len(in))
	}
	if out[1] != "" {
		t.Errorf("empty input should stay empty, got %q", out[1])
	}
	if out[0] != n.Normalize("La Playa") {
		t.Errorf("NormalizeAll[0] = %q, want %q", out[0], n.Normalize("La Playa"))
	}
}
