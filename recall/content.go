package recall

import (
	"context"
	"sort"

	"github.com/rushteam/hotelrec/core"
	"github.com/rushteam/hotelrec/pipeline"
	"github.com/rushteam/hotelrec/pkg/conv"
	"github.com/rushteam/hotelrec/pkg/utils"
	"github.com/rushteam/hotelrec/text"
	"github.com/rushteam/hotelrec/vector"
)

// DefaultTopN 是每个种子产品默认召回的相似产品数。
const DefaultTopN = 5

type scoredIndex struct {
	index int
	score float64
}

// selectByContent 在目录上执行内容召回：归一化描述 → TF-IDF → 相似度矩阵 →
// 逐种子取 TopN → 按首次出现顺序去重合并。
// 未知种子跳过不报错；全部种子未知时返回空结果。
func selectByContent(
	normalizer *text.Normalizer,
	catalog []core.Product,
	seedNames []string,
	topN int,
) ([]scoredIndex, error) {
	if topN <= 0 {
		topN = DefaultTopN
	}

	cleaned := make([]string, len(catalog))
	for i, p := range catalog {
		cleaned[i] = normalizer.Normalize(p.Description)
	}

	model, err := vector.Build(cleaned)
	if err != nil {
		return nil, err
	}
	sim := model.SimilarityMatrix()

	// 产品名是唯一键；重名时以首行为准
	nameIndex := make(map[string]int, len(catalog))
	for i, p := range catalog {
		if _, ok := nameIndex[p.Name]; !ok {
			nameIndex[p.Name] = i
		}
	}

	selected := make([]scoredIndex, 0, topN*len(seedNames))
	picked := make(map[int]struct{}, topN*len(seedNames))
	for _, seed := range seedNames {
		seedIdx, ok := nameIndex[seed]
		if !ok {
			continue // 单个未知种子：跳过，不中断整批
		}

		row := sim[seedIdx]
		order := make([]int, len(row))
		for i := range order {
			order[i] = i
		}
		// 稳定排序：相似度相同按原始行序决胜
		sort.SliceStable(order, func(a, b int) bool {
			return row[order[a]] > row[order[b]]
		})

		taken := 0
		for _, idx := range order {
			if taken >= topN {
				break
			}
			if idx == seedIdx {
				continue // 种子永远不推荐给自己
			}
			taken++
			if _, ok := picked[idx]; ok {
				continue
			}
			picked[idx] = struct{}{}
			selected = append(selected, scoredIndex{index: idx, score: row[idx]})
		}
	}
	return selected, nil
}

// RecommendByContent 是内容路径的纯函数入口：
// 给定目录快照、种子产品名与 TopN，返回按选中顺序排列、已去重的产品行。
// 工作用的归一化描述列不外泄，输出仍是原始 (name, description)。
func RecommendByContent(
	normalizer *text.Normalizer,
	catalog []core.Product,
	seedNames []string,
	topN int,
) ([]core.Product, error) {
	selected, err := selectByContent(normalizer, catalog, seedNames, topN)
	if err != nil {
		return nil, err
	}
	out := make([]core.Product, 0, len(selected))
	for _, s := range selected {
		out = append(out, catalog[s.index])
	}
	return out, nil
}

// ContentRecall 是基于内容的召回源（Content-Based Recommendation）。
//
// 核心思想：“描述文本相似的产品，互为候选”。每次召回都在目录快照上从零
// 重建 TF-IDF 模型，不持久化任何跨调用状态。
//
// 种子来源：rctx.Params[SeedsKey]（[]string 或 []any）。
type ContentRecall struct {
	Store      core.CatalogStore
	Normalizer *text.Normalizer

	// TopN 每个种子召回的相似产品数，<=0 时取 DefaultTopN
	TopN int

	// SeedsKey 从 RecommendContext.Params 读取种子产品名的 key，默认 "seed_products"
	SeedsKey string
}

func (r *ContentRecall) Name() string        { return "recall.content" }
func (r *ContentRecall) Kind() pipeline.Kind { return pipeline.KindRecall }

// Process 实现 Node 接口，直接调用 Recall
func (r *ContentRecall) Process(
	ctx context.Context,
	rctx *core.RecommendContext,
	_ []*core.Item,
) ([]*core.Item, error) {
	return r.Recall(ctx, rctx)
}

// Recall 实现 Source 接口
func (r *ContentRecall) Recall(
	ctx context.Context,
	rctx *core.RecommendContext,
) ([]*core.Item, error) {
	if r.Store == nil || r.Normalizer == nil || rctx == nil {
		return nil, nil
	}

	var seeds []string
	if rctx.Params != nil {
		key := r.SeedsKey
		if key == "" {
			key = "seed_products"
		}
		if raw, ok := rctx.Params[key]; ok {
			if list, ok := raw.([]string); ok {
				seeds = list
			} else {
				seeds = conv.SliceAnyToString(raw)
			}
		}
	}
	if len(seeds) == 0 {
		return nil, nil
	}

	catalog, err := r.Store.GetCatalog(ctx)
	if err != nil {
		return nil, err
	}

	selected, err := selectByContent(r.Normalizer, catalog, seeds, r.TopN)
	if err != nil {
		return nil, err
	}

	out := make([]*core.Item, 0, len(selected))
	for _, s := range selected {
		p := catalog[s.index]
		it := core.NewItem(p.Name)
		it.Score = s.score
		it.Meta["description"] = p.Description
		it.PutLabel("recall_source", utils.Label{Value: "content", Source: "recall"})
		out = append(out, it)
	}
	return out, nil
}
