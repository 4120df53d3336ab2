package utils

import "testing"

func TestMergeLabel(t *testing.T) {
	tests := []struct {
		name     string
		existing Label
		incoming Label
		want     Label
	}{
		{
			name:     "both present accumulate",
			existing: Label{Value: "content", Source: "recall"},
			incoming: Label{Value: "collaborative", Source: "recall"},
			want:     Label{Value: "content|collaborative", Source: "recall,recall"},
		},
		{
			name:     "empty existing takes incoming",
			existing: Label{},
			incoming: Label{Value: "x", Source: "rule"},
			want:     Label{Value: "x", Source: "rule"},
		},
		{
			name:     "empty incoming keeps existing",
			existing: Label{Value: "x", Source: "rule"},
			incoming: Label{},
			want:     Label{Value: "x", Source: "rule"},
		},
		{
			name:     "missing incoming source keeps existing source",
			existing: Label{Value: "a", Source: "recall"},
			incoming: Label{Value: "b"},
			want:     Label{Value: "a|b", Source: "recall"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MergeLabel(tt.existing, tt.incoming); got != tt.want {
				t.Errorf("MergeLabel() = %+v, want %+v", got, tt.want)
			}
		})
	}
}
