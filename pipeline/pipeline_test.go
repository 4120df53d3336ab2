package pipeline

import (
	"context"
	"errors"
	"testing"

	"github.com/rushteam/hotelrec/core"
)

type stubNode struct {
	name string
	kind Kind
	fn   func(items []*core.Item) ([]*core.Item, error)
}

func (n *stubNode) Name() string { return n.name }
func (n *stubNode) Kind() Kind   { return n.kind }

func (n *stubNode) Process(
	_ context.Context,
	_ *core.RecommendContext,
	items []*core.Item,
) ([]*core.Item, error) {
	return n.fn(items)
}

func TestPipeline_Run(t *testing.T) {
	p := &Pipeline{
		Nodes: []Node{
			&stubNode{name: "gen", kind: KindRecall, fn: func(_ []*core.Item) ([]*core.Item, error) {
				return []*core.Item{core.NewItem("a"), core.NewItem("b"), core.NewItem("c")}, nil
			}},
			&stubNode{name: "drop_first", kind: KindFilter, fn: func(items []*core.Item) ([]*core.Item, error) {
				return items[1:], nil
			}},
		},
	}

	out, err := p.Run(context.Background(), &core.RecommendContext{}, nil)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if len(out) != 2 || out[0].ID != "b" {
		t.Errorf("Run() = %v, want [b c]", out)
	}
}

func TestPipeline_RunStopsOnError(t *testing.T) {
	boom := errors.New("boom")
	ran := false
	p := &Pipeline{
		Nodes: []Node{
			&stubNode{name: "fail", kind: KindRecall, fn: func(_ []*core.Item) ([]*core.Item, error) {
				return nil, boom
			}},
			&stubNode{name: "after", kind: KindReRank, fn: func(items []*core.Item) ([]*core.Item, error) {
				ran = true
				return items, nil
			}},
		},
	}

	if _, err := p.Run(context.Background(), &core.RecommendContext{}, nil); !errors.Is(err, boom) {
		t.Errorf("Run() error = %v, want boom", err)
	}
	if ran {
		t.Error("node after failing node should not run")
	}
}

func TestNodeFactory(t *testing.T) {
	factory := NewNodeFactory()
	factory.Register("stub", func(config map[string]any) (Node, error) {
		return &stubNode{name: "stub", kind: KindRecall, fn: func(items []*core.Item) ([]*core.Item, error) {
			return items, nil
		}}, nil
	})

	node, err := factory.Build("stub", nil)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if node.Name() != "stub" {
		t.Errorf("node name = %s, want stub", node.Name())
	}

	if _, err := factory.Build("unknown", nil); err == nil {
		t.Error("unknown type should fail")
	}
}

func TestConfig_BuildPipeline(t *testing.T) {
	factory := NewNodeFactory()
	factory.Register("stub", func(config map[string]any) (Node, error) {
		return &stubNode{name: "stub", kind: KindRecall, fn: func(items []*core.Item) ([]*core.Item, error) {
			return items, nil
		}}, nil
	})

	cfg := &Config{}
	cfg.Pipeline.Name = "test"
	cfg.Pipeline.Nodes = []NodeConfig{{Type: "stub"}, {Type: "stub"}}

	p, err := cfg.BuildPipeline(factory)
	if err != nil {
		t.Fatalf("BuildPipeline() error = %v", err)
	}
	if len(p.Nodes) != 2 {
		t.Errorf("pipeline has %d nodes, want 2", len(p.Nodes))
	}

	cfg.Pipeline.Nodes = append(cfg.Pipeline.Nodes, NodeConfig{Type: "missing"})
	if _, err := cfg.BuildPipeline(factory); err == nil {
		t.Error("unknown node type should fail build")
	}
}
