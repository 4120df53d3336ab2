package config

import (
	"context"
	"testing"

	"github.com/rushteam/hotelrec/core"
	"github.com/rushteam/hotelrec/pipeline"
)

type stubCatalogStore struct{ products []core.Product }

func (s *stubCatalogStore) GetCatalog(_ context.Context) ([]core.Product, error) {
	return s.products, nil
}

type stubRatingStore struct{ records []core.Rating }

func (s *stubRatingStore) GetRatings(_ context.Context) ([]core.Rating, error) {
	return s.records, nil
}

func testDeps() Deps {
	return Deps{
		Catalog: &stubCatalogStore{},
		Ratings: &stubRatingStore{},
	}
}

func TestNewFactory_BuildsNodes(t *testing.T) {
	factory := NewFactory(testDeps())

	tests := []struct {
		name     string
		nodeType string
		config   map[string]any
	}{
		{
			name:     "content recall",
			nodeType: "recall.content",
			config:   map[string]any{"top_n": 3},
		},
		{
			name:     "collaborative recall",
			nodeType: "recall.collaborative",
			config:   map[string]any{"min_records": 10},
		},
		{
			name:     "fanout with both sources",
			nodeType: "recall.fanout",
			config: map[string]any{
				"dedup": true,
				"sources": []any{
					map[string]any{"type": "content", "top_n": 2},
					map[string]any{"type": "collaborative"},
				},
			},
		},
		{
			name:     "filter node",
			nodeType: "filter",
			config: map[string]any{
				"filters": []any{
					map[string]any{"type": "consumed"},
					map[string]any{"type": "rule", "expr": "item.score > 0.1"},
				},
			},
		},
		{
			name:     "topn rerank",
			nodeType: "rerank.topn",
			config:   map[string]any{"n": 10},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			node, err := factory.Build(tt.nodeType, tt.config)
			if err != nil {
				t.Fatalf("Build(%s) error = %v", tt.nodeType, err)
			}
			if node == nil {
				t.Fatalf("Build(%s) returned nil node", tt.nodeType)
			}
			if node.Name() == "" {
				t.Errorf("node has empty name")
			}
		})
	}
}

func TestNewFactory_UnknownTypes(t *testing.T) {
	factory := NewFactory(testDeps())

	if _, err := factory.Build("rank.lr", nil); err == nil {
		t.Error("unknown node type should fail")
	}
	if _, err := factory.Build("recall.fanout", map[string]any{
		"sources": []any{map[string]any{"type": "magic"}},
	}); err == nil {
		t.Error("unknown fanout source type should fail")
	}
	if _, err := factory.Build("filter", map[string]any{
		"filters": []any{map[string]any{"type": "magic"}},
	}); err == nil {
		t.Error("unknown filter type should fail")
	}
}

func TestNewFactory_MissingDeps(t *testing.T) {
	factory := NewFactory(Deps{})

	if _, err := factory.Build("recall.content", nil); err == nil {
		t.Error("recall.content without catalog store should fail")
	}
	if _, err := factory.Build("recall.collaborative", nil); err == nil {
		t.Error("recall.collaborative without rating store should fail")
	}
}

func TestValidatePipelineConfig(t *testing.T) {
	cfg := &pipeline.Config{}
	cfg.Pipeline.Nodes = []pipeline.NodeConfig{{Type: "rerank.topn"}}
	if err := ValidatePipelineConfig(cfg); err != nil {
		t.Errorf("registered type should validate, got %v", err)
	}

	cfg.Pipeline.Nodes = append(cfg.Pipeline.Nodes, pipeline.NodeConfig{Type: "rank.xgb"})
	if err := ValidatePipelineConfig(cfg); err == nil {
		t.Error("unregistered type should fail validation")
	}
}
