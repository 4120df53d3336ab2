package recall

import (
	"context"
	"errors"
	"testing"

	"github.com/rushteam/hotelrec/core"
)

type stubSource struct {
	name  string
	items []*core.Item
	err   error
}

func (s *stubSource) Name() string { return s.name }

func (s *stubSource) Recall(_ context.Context, _ *core.RecommendContext) ([]*core.Item, error) {
	return s.items, s.err
}

func TestFanout_MergesAndDedups(t *testing.T) {
	fanout := &Fanout{
		Sources: []Source{
			&stubSource{name: "one", items: []*core.Item{core.NewItem("a"), core.NewItem("b")}},
			&stubSource{name: "two", items: []*core.Item{core.NewItem("b"), core.NewItem("c")}},
		},
		Dedup: true,
	}

	items, err := fanout.Process(context.Background(), &core.RecommendContext{}, nil)
	if err != nil {
		t.Fatalf("Process() error = %v", err)
	}

	seen := make(map[string]int)
	for _, it := range items {
		seen[it.ID]++
	}
	if len(seen) != 3 {
		t.Errorf("got %d unique items, want 3: %v", len(seen), seen)
	}
	for id, n := range seen {
		if n > 1 {
			t.Errorf("item %s appears %d times after dedup", id, n)
		}
	}
}

func TestFanout_SourceErrorDoesNotBreakOthers(t *testing.T) {
	fanout := &Fanout{
		Sources: []Source{
			&stubSource{name: "broken", err: errors.New("boom")},
			&stubSource{name: "ok", items: []*core.Item{core.NewItem("a")}},
		},
		Dedup: true,
	}

	items, err := fanout.Process(context.Background(), &core.RecommendContext{}, nil)
	if err != nil {
		t.Fatalf("Process() error = %v", err)
	}
	if len(items) != 1 || items[0].ID != "a" {
		t.Errorf("got %v, want single item a", items)
	}
}

func TestFanout_LabelsRecallSource(t *testing.T) {
	fanout := &Fanout{
		Sources: []Source{
			&stubSource{name: "content", items: []*core.Item{core.NewItem("a")}},
		},
	}
	items, err := fanout.Process(context.Background(), &core.RecommendContext{}, nil)
	if err != nil {
		t.Fatalf("Process() error = %v", err)
	}
	lbl, ok := items[0].Labels["recall_source"]
	if !ok || lbl.Value != "content" {
		t.Errorf("recall_source label = %v, want content", lbl)
	}
}

func TestFanout_PriorityMerge(t *testing.T) {
	high := core.NewItem("a")
	high.Score = 0.9
	low := core.NewItem("a")
	low.Score = 0.1

	fanout := &Fanout{
		Sources: []Source{
			&stubSource{name: "first", items: []*core.Item{high}},
			&stubSource{name: "second", items: []*core.Item{low, core.NewItem("b")}},
		},
		Dedup:         true,
		MergeStrategy: "priority",
	}

	items, err := fanout.Process(context.Background(), &core.RecommendContext{}, nil)
	if err != nil {
		t.Fatalf("Process() error = %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("got %d items, want 2", len(items))
	}
	for _, it := range items {
		if it.ID == "a" && it.Score != 0.9 {
			t.Errorf("duplicate a resolved to score %f, want 0.9 (higher priority source)", it.Score)
		}
	}
}

func TestFanout_NoSources(t *testing.T) {
	fanout := &Fanout{}
	items, err := fanout.Process(context.Background(), &core.RecommendContext{}, nil)
	if err != nil || items != nil {
		t.Errorf("Process() = (%v, %v), want (nil, nil)", items, err)
	}
}
