// Package store 提供 core.Store 的具体实现：内存（开发/测试）与 Redis（生产）。
// 推荐引擎只消费快照数据（产品目录、评分日志），通过 recall 包的适配器
// 从这里的存储读取。
package store
