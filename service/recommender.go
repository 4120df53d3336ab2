package service

import (
	"context"

	"github.com/rushteam/hotelrec/core"
	"github.com/rushteam/hotelrec/recall"
	"github.com/rushteam/hotelrec/text"
)

// Recommender 是推荐引擎的门面（外部契约），快照进、推荐行出。
// 两条推荐路径互相独立，可以分开调用：
//   - ContentRecommend：按产品描述的 TF-IDF 相似度推荐
//   - CollaborativeRecommend：按消费行为相似的代表客户推荐
//
// Recommender 不持久化跨调用状态，每次调用都在传入快照上从零计算。
// 并发安全：Normalizer 只读，可被多个 goroutine 共享。
type Recommender struct {
	normalizer *text.Normalizer
}

// NewRecommender 创建推荐引擎门面。
func NewRecommender() *Recommender {
	return &Recommender{normalizer: text.NewNormalizer()}
}

// ContentRecommend 基于内容推荐：给定产品目录快照和若干种子产品名，
// 返回每个种子的 TopN 相似产品，按选中顺序去重合并。
//
// 未知种子跳过不报错，全部种子未知时返回空结果；
// 目录归一化后没有可向量化文本时返回 core.ErrEmptyCorpus。
func (r *Recommender) ContentRecommend(
	ctx context.Context,
	catalog []core.Product,
	seeds []string,
	topN int,
) ([]core.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return recall.RecommendByContent(r.normalizer, catalog, seeds, topN)
}

// CollaborativeRecommend 基于消费推荐：给定评分日志快照和目标客户 ID，
// 返回推荐产品名列表（按日志原始行序、同名去重）。
//
// 错误：日志行数不足返回 core.ErrInsufficientData；目标客户不在日志中
// 返回 core.ErrUnknownEntity；选不出代表客户返回 core.ErrNoCandidate。
func (r *Recommender) CollaborativeRecommend(
	ctx context.Context,
	records []core.Rating,
	target string,
) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	rows, err := recall.RecommendByConsumption(records, target, 0)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(rows))
	for _, row := range rows {
		names = append(names, row.ProductName)
	}
	return names, nil
}
