// Package hotelrec 是一个酒店增值服务推荐引擎（Hotel Services Recommender）。
//
// 设计要点：
// - 两条推荐路径：内容（TF-IDF 描述相似度）与协同（消费行为相似客户）
// - Pipeline-first: 推荐逻辑通过 Node 串联（Recall → Filter → ReRank）
// - Labels-first: labels 全链路透传与标准化 merge，支持 explain / 观测 / 策略驱动
// - 快照计算: 每次调用在目录/评分日志快照上从零计算，不持久化模型状态
package hotelrec

import "github.com/rushteam/hotelrec/pipeline"

// 轻量 facade：便于用户直接 import "hotelrec" 使用核心抽象。
type Pipeline = pipeline.Pipeline
type Node = pipeline.Node
type Kind = pipeline.Kind

const (
	KindRecall = pipeline.KindRecall
	KindFilter = pipeline.KindFilter
	KindReRank = pipeline.KindReRank
)
