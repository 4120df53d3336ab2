package config

import (
	"fmt"
	"time"

	"github.com/rushteam/hotelrec/core"
	"github.com/rushteam/hotelrec/filter"
	"github.com/rushteam/hotelrec/pipeline"
	"github.com/rushteam/hotelrec/pkg/conv"
	"github.com/rushteam/hotelrec/recall"
	"github.com/rushteam/hotelrec/rerank"
	"github.com/rushteam/hotelrec/text"
)

// Deps 是配置驱动构建 Node 时需要注入的外部依赖。
// 召回节点需要数据快照来源，无法单靠配置文件构建。
type Deps struct {
	// Catalog 产品目录快照来源（内容召回）
	Catalog core.CatalogStore

	// Ratings 评分日志快照来源（协同召回、已消费过滤）
	Ratings core.RatingStore

	// Normalizer 西语文本归一化器，nil 时自动创建
	Normalizer *text.Normalizer
}

// NewFactory 返回一个包含所有内置 Node 的工厂，召回节点绑定 deps 中的数据来源。
func NewFactory(deps Deps) *pipeline.NodeFactory {
	if deps.Normalizer == nil {
		deps.Normalizer = text.NewNormalizer()
	}

	factory := pipeline.NewNodeFactory()

	// 注册 Recall Nodes
	factory.Register("recall.content", func(config map[string]any) (pipeline.Node, error) {
		return buildContentNode(deps, config)
	})
	factory.Register("recall.collaborative", func(config map[string]any) (pipeline.Node, error) {
		return buildCollaborativeNode(deps, config)
	})
	factory.Register("recall.fanout", func(config map[string]any) (pipeline.Node, error) {
		return buildFanoutNode(deps, config)
	})

	// 注册 Filter Nodes
	factory.Register("filter", func(config map[string]any) (pipeline.Node, error) {
		return buildFilterNode(deps, config)
	})

	// 注册 ReRank Nodes
	factory.Register("rerank.topn", buildTopNNode)

	return factory
}

func buildContentNode(deps Deps, config map[string]any) (pipeline.Node, error) {
	if deps.Catalog == nil {
		return nil, fmt.Errorf("recall.content requires a catalog store")
	}
	return &recall.ContentRecall{
		Store:      deps.Catalog,
		Normalizer: deps.Normalizer,
		TopN:       conv.ConfigGetInt(config, "top_n", 0),
		SeedsKey:   conv.ConfigGet[string](config, "seeds_key", ""),
	}, nil
}

func buildCollaborativeNode(deps Deps, config map[string]any) (pipeline.Node, error) {
	if deps.Ratings == nil {
		return nil, fmt.Errorf("recall.collaborative requires a rating store")
	}
	return &recall.CollaborativeRecall{
		Store:      deps.Ratings,
		MinRecords: conv.ConfigGetInt(config, "min_records", 0),
	}, nil
}

func buildFanoutNode(deps Deps, config map[string]any) (pipeline.Node, error) {
	sourcesConfig, ok := config["sources"].([]any)
	if !ok {
		return nil, fmt.Errorf("sources not found or invalid")
	}

	sources := make([]recall.Source, 0, len(sourcesConfig))
	for _, sc := range sourcesConfig {
		sourceMap, ok := sc.(map[string]any)
		if !ok {
			continue
		}
		sourceType := conv.ConfigGet[string](sourceMap, "type", "")
		switch sourceType {
		case "content":
			node, err := buildContentNode(deps, sourceMap)
			if err != nil {
				return nil, err
			}
			sources = append(sources, node.(*recall.ContentRecall))
		case "collaborative":
			node, err := buildCollaborativeNode(deps, sourceMap)
			if err != nil {
				return nil, err
			}
			sources = append(sources, node.(*recall.CollaborativeRecall))
		default:
			return nil, fmt.Errorf("unknown source type: %s", sourceType)
		}
	}

	fanout := &recall.Fanout{
		Sources:       sources,
		Dedup:         conv.ConfigGet[bool](config, "dedup", true),
		MergeStrategy: conv.ConfigGet[string](config, "merge_strategy", ""),
	}
	if sec := conv.ConfigGetInt(config, "timeout", 0); sec > 0 {
		fanout.Timeout = time.Duration(sec) * time.Second
	}
	if n := conv.ConfigGetInt(config, "max_concurrent", 0); n > 0 {
		fanout.MaxConcurrent = n
	}
	return fanout, nil
}

func buildFilterNode(deps Deps, config map[string]any) (pipeline.Node, error) {
	filtersConfig, ok := config["filters"].([]any)
	if !ok {
		return nil, fmt.Errorf("filters not found or invalid")
	}

	filters := make([]filter.Filter, 0, len(filtersConfig))
	for _, fc := range filtersConfig {
		filterMap, ok := fc.(map[string]any)
		if !ok {
			continue
		}
		filterType := conv.ConfigGet[string](filterMap, "type", "")
		switch filterType {
		case "consumed":
			if deps.Ratings == nil {
				return nil, fmt.Errorf("filter consumed requires a rating store")
			}
			filters = append(filters, filter.NewConsumedFilter(deps.Ratings))

		case "rule":
			expr := conv.ConfigGet[string](filterMap, "expr", "")
			filters = append(filters, filter.NewRuleFilter(expr))

		default:
			return nil, fmt.Errorf("unknown filter type: %s", filterType)
		}
	}

	return &filter.FilterNode{Filters: filters}, nil
}

func buildTopNNode(config map[string]any) (pipeline.Node, error) {
	return &rerank.TopNNode{N: conv.ConfigGetInt(config, "n", 0)}, nil
}

func init() {
	// 无依赖的 Node 直接注册进全局注册表，召回/过滤节点需要 Deps，用 NewFactory 构建。
	Register("rerank.topn", buildTopNNode)
}
