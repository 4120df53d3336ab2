package core

import "context"

// Product 是目录快照中的一行：名称（唯一键）+ 自由文本描述。
// 快照在一次推荐调用内不可变。
type Product struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Rating 是评分日志中的一行：客户对产品的一次消费/评分。
// 同一 (customer, product) 的多条记录在透视时按 sum 聚合。
type Rating struct {
	ConsumptionID string  `json:"consumption_id,omitempty"` // 原始消费记录 ID（可选）
	CustomerID    string  `json:"customer_id"`
	CustomerName  string  `json:"customer_name,omitempty"`
	ProductID     string  `json:"product_id"`
	ProductName   string  `json:"product_name"`
	Score         float64 `json:"score"`
}

// CatalogStore 提供目录快照。
//
// 设计原则：
//   - 定义在领域层（core），由基础设施层（recall 适配器 / 上层 API）实现
//   - 每次调用返回完整快照，引擎对底层记录存储保持无状态
type CatalogStore interface {
	// GetCatalog 获取产品目录快照（有序）
	GetCatalog(ctx context.Context) ([]Product, error)
}

// RatingStore 提供评分日志快照。
type RatingStore interface {
	// GetRatings 获取评分日志快照（有序）
	GetRatings(ctx context.Context) ([]Rating, error)
}
