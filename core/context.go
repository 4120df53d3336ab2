package core

import "github.com/rushteam/hotelrec/pkg/utils"

// RecommendContext 承载客户/场景/请求信息，贯穿整个 Pipeline 透传。
type RecommendContext struct {
	CustomerID string // 目标客户 ID（协同路径必填）
	Scene      string

	// Labels 是客户级标签，可驱动整个 Pipeline 行为
	Labels map[string]utils.Label

	// Params 请求级上下文参数，包含：
	// - seed_products: 内容推荐的种子产品名列表
	// - top_n: 每个种子取多少个相似产品
	Params map[string]any
}

// PutLabel 写入客户级 Label。
func (rctx *RecommendContext) PutLabel(key string, lbl utils.Label) {
	if rctx.Labels == nil {
		rctx.Labels = make(map[string]utils.Label)
	}
	if old, ok := rctx.Labels[key]; ok {
		rctx.Labels[key] = utils.MergeLabel(old, lbl)
		return
	}
	rctx.Labels[key] = lbl
}

// GetLabel 获取客户级 Label。
func (rctx *RecommendContext) GetLabel(key string) (utils.Label, bool) {
	if rctx.Labels == nil {
		return utils.Label{}, false
	}
	lbl, ok := rctx.Labels[key]
	return lbl, ok
}
