package recall

import (
	"context"
	"encoding/json"

	"github.com/rushteam/hotelrec/core"
)

// StoreCatalogAdapter 把 core.Store 适配为 core.CatalogStore。
// 目录快照以 JSON 数组整体存取：{KeyPrefix}:catalog。
// 从 Redis/内存等存储中读取推荐所需的快照数据。
type StoreCatalogAdapter struct {
	store core.Store

	// KeyPrefix 是存储 key 的前缀
	KeyPrefix string
}

// NewStoreCatalogAdapter 创建一个基于 core.Store 的目录快照适配器。
func NewStoreCatalogAdapter(s core.Store, keyPrefix string) *StoreCatalogAdapter {
	if keyPrefix == "" {
		keyPrefix = "hotel"
	}
	return &StoreCatalogAdapter{store: s, KeyPrefix: keyPrefix}
}

func (a *StoreCatalogAdapter) Name() string { return "store_catalog_adapter" }

func (a *StoreCatalogAdapter) GetCatalog(ctx context.Context) ([]core.Product, error) {
	data, err := a.store.Get(ctx, a.KeyPrefix+":catalog")
	if err != nil {
		if core.IsStoreNotFound(err) {
			return []core.Product{}, nil
		}
		return nil, err
	}

	var result []core.Product
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, err
	}
	return result, nil
}

var _ core.CatalogStore = (*StoreCatalogAdapter)(nil)

// StoreRatingAdapter 把 core.Store 适配为 core.RatingStore。
// 评分日志快照以 JSON 数组整体存取：{KeyPrefix}:ratings。
type StoreRatingAdapter struct {
	store core.Store

	// KeyPrefix 是存储 key 的前缀
	KeyPrefix string
}

// NewStoreRatingAdapter 创建一个基于 core.Store 的评分日志适配器。
func NewStoreRatingAdapter(s core.Store, keyPrefix string) *StoreRatingAdapter {
	if keyPrefix == "" {
		keyPrefix = "hotel"
	}
	return &StoreRatingAdapter{store: s, KeyPrefix: keyPrefix}
}

func (a *StoreRatingAdapter) Name() string { return "store_rating_adapter" }

func (a *StoreRatingAdapter) GetRatings(ctx context.Context) ([]core.Rating, error) {
	data, err := a.store.Get(ctx, a.KeyPrefix+":ratings")
	if err != nil {
		if core.IsStoreNotFound(err) {
			return []core.Rating{}, nil
		}
		return nil, err
	}

	var result []core.Rating
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, err
	}
	return result, nil
}

var _ core.RatingStore = (*StoreRatingAdapter)(nil)

// SetupCatalogSnapshot 辅助函数：把目录快照写入 Store。
// 使用 StoreCatalogAdapter + MemoryStore 时，可以用它方便地准备测试/演示数据。
func SetupCatalogSnapshot(ctx context.Context, a *StoreCatalogAdapter, catalog []core.Product) error {
	data, err := json.Marshal(catalog)
	if err != nil {
		return err
	}
	return a.store.Set(ctx, a.KeyPrefix+":catalog", data)
}

// SetupRatingSnapshot 辅助函数：把评分日志快照写入 Store。
func SetupRatingSnapshot(ctx context.Context, a *StoreRatingAdapter, records []core.Rating) error {
	data, err := json.Marshal(records)
	if err != nil {
		return err
	}
	return a.store.Set(ctx, a.KeyPrefix+":ratings", data)
}
