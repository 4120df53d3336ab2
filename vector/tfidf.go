// Package vector 实现语料的 TF-IDF 稀疏表示与余弦相似度矩阵。
// 词表完全由本次调用的语料推导，跨调用不持久化任何状态。
package vector

import (
	"math"
	"sort"
	"strings"

	"github.com/rushteam/hotelrec/core"
)

// Model 是一次 Build 调用的产物：确定序词表 + 每个文档一个 L2 归一化的稀疏向量。
type Model struct {
	// Vocabulary 是语料中出现过的全部词项，字典序（确定性输出）
	Vocabulary []string

	// Vectors 与输入语料逐位对应；空文档得到空向量
	Vectors []map[string]float64
}

// Build 在已归一化的语料上构建 TF-IDF 模型。
//
// 权重：tf(t,d) 为原始词频，idf(t) = ln((1+N)/(1+df(t))) + 1（平滑 IDF），
// 每个文档向量做 L2 归一化。
// 语料清洗后没有任何词项时返回 core.ErrEmptyCorpus：调用方应将其转译为
// “数据不足”而不是崩溃。
func Build(corpus []string) (*Model, error) {
	n := len(corpus)

	counts := make([]map[string]float64, n)
	df := make(map[string]int)
	for i, doc := range corpus {
		counts[i] = make(map[string]float64)
		for _, term := range strings.Fields(doc) {
			counts[i][term]++
		}
		for term := range counts[i] {
			df[term]++
		}
	}

	if len(df) == 0 {
		return nil, core.ErrEmptyCorpus
	}

	vocab := make([]string, 0, len(df))
	for term := range df {
		vocab = append(vocab, term)
	}
	sort.Strings(vocab)

	idf := make(map[string]float64, len(df))
	for term, d := range df {
		idf[term] = math.Log(float64(1+n)/float64(1+d)) + 1
	}

	vectors := make([]map[string]float64, n)
	for i, tf := range counts {
		vec := make(map[string]float64, len(tf))
		var norm float64
		for term, f := range tf {
			w := f * idf[term]
			vec[term] = w
			norm += w * w
		}
		if norm > 0 {
			norm = math.Sqrt(norm)
			for term := range vec {
				vec[term] /= norm
			}
		}
		vectors[i] = vec
	}

	return &Model{Vocabulary: vocab, Vectors: vectors}, nil
}

// Cosine 计算两个稀疏向量的余弦相似度。
// 任一向量为零向量时返回 0。
func Cosine(a, b map[string]float64) float64 {
	if len(a) > len(b) {
		a, b = b, a
	}
	var dot, normA, normB float64
	for term, va := range a {
		normA += va * va
		if vb, ok := b[term]; ok {
			dot += va * vb
		}
	}
	for _, vb := range b {
		normB += vb * vb
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}

// SimilarityMatrix 计算全量文档两两余弦相似度。
// 输出方阵对称；非零向量的对角线为 1，零向量整行（含对角线）为 0。
func (m *Model) SimilarityMatrix() [][]float64 {
	n := len(m.Vectors)
	sim := make([][]float64, n)
	for i := range sim {
		sim[i] = make([]float64, n)
	}
	for i := 0; i < n; i++ {
		if len(m.Vectors[i]) > 0 {
			sim[i][i] = 1
		}
		for j := i + 1; j < n; j++ {
			s := Cosine(m.Vectors[i], m.Vectors[j])
			sim[i][j] = s
			sim[j][i] = s
		}
	}
	return sim
}
