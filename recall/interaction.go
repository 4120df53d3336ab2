package recall

import (
	"math"
	"sort"

	"github.com/rushteam/hotelrec/core"
)

// InteractionMatrix 是客户×产品的交互矩阵：评分日志按 (customer, product)
// 透视，碰撞时按 sum 聚合。缺失格子隐式为 0。
// 行列轴保持首次出现顺序，保证同一快照下输出确定。
type InteractionMatrix struct {
	Customers []string
	Products  []string

	cells map[string]map[string]float64 // customerID -> productID -> 累计评分
}

// BuildInteractionMatrix 将评分日志透视为交互矩阵。
func BuildInteractionMatrix(records []core.Rating) *InteractionMatrix {
	m := &InteractionMatrix{
		cells: make(map[string]map[string]float64),
	}
	seenProduct := make(map[string]struct{})
	for _, r := range records {
		row, ok := m.cells[r.CustomerID]
		if !ok {
			row = make(map[string]float64)
			m.cells[r.CustomerID] = row
			m.Customers = append(m.Customers, r.CustomerID)
		}
		row[r.ProductID] += r.Score
		if _, ok := seenProduct[r.ProductID]; !ok {
			seenProduct[r.ProductID] = struct{}{}
			m.Products = append(m.Products, r.ProductID)
		}
	}
	return m
}

// Value 返回 (customer, product) 格子的值，缺失时为 0。
func (m *InteractionMatrix) Value(customerID, productID string) float64 {
	return m.cells[customerID][productID]
}

// HasCustomer 判断客户是否出现在本次快照中。
func (m *InteractionMatrix) HasCustomer(customerID string) bool {
	_, ok := m.cells[customerID]
	return ok
}

// Binarize 将矩阵阈值化为消费矩阵：严格正的格子取 1，其余为 0。
// 注意这里刻意把“评了低分”与“从未消费”折叠为同一状态（0/1 只表达是否
// 消费过）——这是沿用的近似，不是待修的缺陷。幂等：binarize∘binarize = binarize。
func (m *InteractionMatrix) Binarize() *InteractionMatrix {
	out := &InteractionMatrix{
		Customers: append([]string(nil), m.Customers...),
		Products:  append([]string(nil), m.Products...),
		cells:     make(map[string]map[string]float64, len(m.cells)),
	}
	for customerID, row := range m.cells {
		binRow := make(map[string]float64, len(row))
		for productID, v := range row {
			if v > 0 {
				binRow[productID] = 1
			} else {
				binRow[productID] = 0
			}
		}
		out.cells[customerID] = binRow
	}
	return out
}

// Row 以 Products 轴的顺序返回客户的稠密行向量。
func (m *InteractionMatrix) Row(customerID string) []float64 {
	row := make([]float64, len(m.Products))
	cells := m.cells[customerID]
	for i, productID := range m.Products {
		row[i] = cells[productID]
	}
	return row
}

// ConsumedSet 返回客户行中非零格子对应的产品集合。
func (m *InteractionMatrix) ConsumedSet(customerID string) map[string]struct{} {
	out := make(map[string]struct{})
	for productID, v := range m.cells[customerID] {
		if v != 0 {
			out[productID] = struct{}{}
		}
	}
	return out
}

// CustomerSimilarityMatrix 是客户×客户的余弦相似度方阵。
// 对称；非零行对角线为 1，零交互客户整行为 0（余弦对零向量定义为 0，
// 保证相似度计算对任何输入都是全函数）。
type CustomerSimilarityMatrix struct {
	Customers []string
	Values    [][]float64

	index map[string]int
}

// CustomerSimilarity 在消费矩阵（0/1）上计算客户两两余弦相似度。
func CustomerSimilarity(consumption *InteractionMatrix) *CustomerSimilarityMatrix {
	n := len(consumption.Customers)
	sim := &CustomerSimilarityMatrix{
		Customers: append([]string(nil), consumption.Customers...),
		Values:    make([][]float64, n),
		index:     make(map[string]int, n),
	}
	rows := make([][]float64, n)
	norms := make([]float64, n)
	for i, customerID := range sim.Customers {
		sim.index[customerID] = i
		rows[i] = consumption.Row(customerID)
		for _, v := range rows[i] {
			norms[i] += v * v
		}
		norms[i] = math.Sqrt(norms[i])
		sim.Values[i] = make([]float64, n)
	}
	for i := 0; i < n; i++ {
		if norms[i] == 0 {
			continue
		}
		sim.Values[i][i] = 1
		for j := i + 1; j < n; j++ {
			if norms[j] == 0 {
				continue
			}
			var dot float64
			for k := range rows[i] {
				dot += rows[i][k] * rows[j][k]
			}
			s := dot / (norms[i] * norms[j])
			sim.Values[i][j] = s
			sim.Values[j][i] = s
		}
	}
	return sim
}

// Row 返回客户的相似度行向量（与 Customers 轴对齐）。
func (s *CustomerSimilarityMatrix) Row(customerID string) ([]float64, bool) {
	i, ok := s.index[customerID]
	if !ok {
		return nil, false
	}
	return s.Values[i], true
}

// PickRepresentative 为目标客户挑选代表性相似客户。
//
// 排名最靠前的一两个客户通常与目标几乎重合，推荐不出新东西；因此按相似度
// 降序排列后取第一个相似度小于等于行均值的客户——“相似但有差异”的邻居。
// 均值在整行（含自相似）上计算；目标自身不参与候选扫描，避免把自己选成
// 自己的代表。相同相似度按原始行序（稳定排序）决胜。
func (s *CustomerSimilarityMatrix) PickRepresentative(target string) (string, error) {
	row, ok := s.Row(target)
	if !ok {
		return "", core.ErrUnknownEntity
	}

	var mean float64
	for _, v := range row {
		mean += v
	}
	mean /= float64(len(row))

	order := make([]int, len(row))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return row[order[a]] > row[order[b]]
	})

	for _, i := range order {
		if s.Customers[i] == target {
			continue
		}
		if row[i] <= mean {
			return s.Customers[i], nil
		}
	}
	return "", core.ErrNoCandidate
}
