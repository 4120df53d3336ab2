package filter

import (
	"context"

	"github.com/rushteam/hotelrec/core"
)

// ConsumedFilter 是已消费过滤器，过滤掉目标客户已经消费过的产品。
// 从评分日志中取出该客户的历史行，按产品 ID 和产品名两个维度匹配：
// 内容召回的 Item 以产品名为 ID，协同召回的 Item 以产品 ID 为 ID。
type ConsumedFilter struct {
	// Store 用于读取评分日志快照
	Store core.RatingStore
}

// NewConsumedFilter 创建一个已消费过滤器。
func NewConsumedFilter(store core.RatingStore) *ConsumedFilter {
	return &ConsumedFilter{Store: store}
}

func (f *ConsumedFilter) Name() string {
	return "filter.consumed"
}

func (f *ConsumedFilter) ShouldFilter(
	ctx context.Context,
	rctx *core.RecommendContext,
	item *core.Item,
) (bool, error) {
	if item == nil {
		return true, nil
	}
	if rctx == nil || rctx.CustomerID == "" || f.Store == nil {
		return false, nil
	}

	records, err := f.Store.GetRatings(ctx)
	if err != nil {
		return false, err
	}

	for _, r := range records {
		if r.CustomerID != rctx.CustomerID {
			continue
		}
		if item.ID == r.ProductID || item.ID == r.ProductName {
			return true, nil
		}
	}
	return false, nil
}
