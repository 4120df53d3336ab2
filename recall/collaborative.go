package recall

import (
	"context"

	"github.com/rushteam/hotelrec/core"
	"github.com/rushteam/hotelrec/pipeline"
	"github.com/rushteam/hotelrec/pkg/utils"
)

// DefaultMinRecords 是协同推荐要求的评分日志最小行数。
const DefaultMinRecords = 5

// DifferentItems 计算目标客户 A 与代表客户 B 消费集合的差。
//
// 非对称解析：|A| > |B| 时返回 A−B，否则返回 B−A——推荐集始终是
// “篮子更大的一方有而另一方没有的产品”。这是沿用的启发式，不保证
// 严格意义上的 “对目标来说是新产品”。
func DifferentItems(itemsA, itemsB map[string]struct{}) map[string]struct{} {
	large, small := itemsB, itemsA
	if len(itemsA) > len(itemsB) {
		large, small = itemsA, itemsB
	}
	out := make(map[string]struct{})
	for id := range large {
		if _, ok := small[id]; !ok {
			out[id] = struct{}{}
		}
	}
	return out
}

// RecommendByConsumption 是协同路径的纯函数入口。
//
// 算法：评分日志 → 透视(sum) → 0/1 消费矩阵 → 客户余弦相似度 →
// 均值截断选代表客户 → 消费集合差 → 回表物化推荐行。
// 物化时保持日志原始行序，按产品名去重（同名首行胜出）。
//
// 错误：len(records) < minRecords 返回 core.ErrInsufficientData；
// 目标客户不在日志中返回 core.ErrUnknownEntity；
// 代表客户选不出来返回 core.ErrNoCandidate。
func RecommendByConsumption(
	records []core.Rating,
	target string,
	minRecords int,
) ([]core.Rating, error) {
	if minRecords <= 0 {
		minRecords = DefaultMinRecords
	}
	if len(records) < minRecords {
		return nil, core.ErrInsufficientData
	}

	matrix := BuildInteractionMatrix(records)
	if !matrix.HasCustomer(target) {
		return nil, core.ErrUnknownEntity
	}
	consumption := matrix.Binarize()
	sim := CustomerSimilarity(consumption)

	representative, err := sim.PickRepresentative(target)
	if err != nil {
		return nil, err
	}

	itemsTarget := consumption.ConsumedSet(target)
	itemsRepresentative := consumption.ConsumedSet(representative)
	recommendIDs := DifferentItems(itemsTarget, itemsRepresentative)

	// 回表：筛选产品命中的日志行，按产品名去重，保持原始行序
	seenName := make(map[string]struct{}, len(recommendIDs))
	out := make([]core.Rating, 0, len(recommendIDs))
	for _, r := range records {
		if _, ok := recommendIDs[r.ProductID]; !ok {
			continue
		}
		if _, ok := seenName[r.ProductName]; ok {
			continue
		}
		seenName[r.ProductName] = struct{}{}
		out = append(out, r)
	}
	return out, nil
}

// CollaborativeRecall 是基于用户的协同过滤召回源（User-based CF）。
//
// 核心思想：“消费行为相似的客户，会喜欢相似的产品”。与常见的加权 TopK
// 邻居不同，这里只取一个代表性相似客户（见 PickRepresentative），然后
// 推荐集合差里的产品。每次召回都在评分日志快照上从零重建矩阵。
type CollaborativeRecall struct {
	Store core.RatingStore

	// MinRecords 评分日志最小行数，<=0 时取 DefaultMinRecords
	MinRecords int
}

func (r *CollaborativeRecall) Name() string        { return "recall.collaborative" }
func (r *CollaborativeRecall) Kind() pipeline.Kind { return pipeline.KindRecall }

// Process 实现 Node 接口，直接调用 Recall
func (r *CollaborativeRecall) Process(
	ctx context.Context,
	rctx *core.RecommendContext,
	_ []*core.Item,
) ([]*core.Item, error) {
	return r.Recall(ctx, rctx)
}

// Recall 实现 Source 接口
func (r *CollaborativeRecall) Recall(
	ctx context.Context,
	rctx *core.RecommendContext,
) ([]*core.Item, error) {
	if r.Store == nil || rctx == nil || rctx.CustomerID == "" {
		return nil, nil
	}

	records, err := r.Store.GetRatings(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := RecommendByConsumption(records, rctx.CustomerID, r.MinRecords)
	if err != nil {
		return nil, err
	}

	out := make([]*core.Item, 0, len(rows))
	for _, row := range rows {
		it := core.NewItem(row.ProductID)
		it.Meta["producto"] = row.ProductName
		it.PutLabel("recall_source", utils.Label{Value: "collaborative", Source: "recall"})
		out = append(out, it)
	}
	return out, nil
}
