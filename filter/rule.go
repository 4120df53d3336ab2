package filter

import (
	"context"

	"github.com/rushteam/hotelrec/core"
	"github.com/rushteam/hotelrec/pkg/dsl"
)

// RuleFilter 是规则过滤器，基于 CEL 表达式判断是否过滤。
// 表达式返回 true 时该物品被过滤掉。
//
// 示例：
//   - `item.score < 0.1` → 过滤掉相似度过低的产品
//   - `label.recall_source == "collaborative"` → 过滤掉协同召回的产品
type RuleFilter struct {
	// Expr 是 CEL 表达式，空表达式不过滤任何物品
	Expr string
}

// NewRuleFilter 创建一个规则过滤器。
func NewRuleFilter(expr string) *RuleFilter {
	return &RuleFilter{Expr: expr}
}

func (f *RuleFilter) Name() string {
	return "filter.rule"
}

func (f *RuleFilter) ShouldFilter(
	_ context.Context,
	rctx *core.RecommendContext,
	item *core.Item,
) (bool, error) {
	if item == nil {
		return true, nil
	}
	if f.Expr == "" {
		return false, nil
	}

	eval := dsl.NewEval(item, rctx)
	return eval.Evaluate(f.Expr)
}
