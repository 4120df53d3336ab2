// Package text 实现产品描述的西班牙语归一化管线：
// 小写 → 去除非字母字符 → 分词 → 去停用词 → Snowball 词干化。
package text

import (
	"regexp"
	"strings"

	"github.com/kljensen/snowball/spanish"
)

// Normalizer 是不可变的文本归一化器。
// 停用词表与正则在构造时加载一次，进程内复用；Normalize 本身无状态，可并发调用。
type Normalizer struct {
	nonLetter  *regexp.Regexp
	whitespace *regexp.Regexp
	stopWords  map[string]struct{}
}

// NewNormalizer 构造一个西班牙语 Normalizer。
// 构造成本（正则编译、停用词表）只付一次，建议进程级单例注入。
func NewNormalizer() *Normalizer {
	stop := make(map[string]struct{}, len(spanishStopWords))
	for _, w := range spanishStopWords {
		stop[w] = struct{}{}
	}
	return &Normalizer{
		// 保留拉丁字母、西班牙语重音字母与空白，其余全部去掉
		nonLetter:  regexp.MustCompile(`[^a-zA-Záéíóúñü\s]`),
		whitespace: regexp.MustCompile(`\s+`),
		stopWords:  stop,
	}
}

// Normalize 将自由文本归一化为词干序列（以单个空格连接，保持原词序）。
// 清洗后为空时返回空串，不报错；非西班牙语文本按相同规则处理，质量自然降级。
func (n *Normalizer) Normalize(text string) string {
	text = strings.ToLower(text)
	text = n.nonLetter.ReplaceAllString(text, "")
	text = n.whitespace.ReplaceAllString(text, " ")

	tokens := strings.Fields(text)
	stems := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if _, ok := n.stopWords[tok]; ok {
			continue
		}
		stems = append(stems, spanish.Stem(tok, false))
	}
	return strings.Join(stems, " ")
}

// NormalizeAll 逐条归一化语料，保持输入顺序。
func (n *Normalizer) NormalizeAll(texts []string) []string {
	out := make([]string, len(texts))
	for i, t := range texts {
		out[i] = n.Normalize(t)
	}
	return out
}

// IsStopWord 判断 token 是否在停用词表中（供调试/观测使用）。
func (n *Normalizer) IsStopWord(token string) bool {
	_, ok := n.stopWords[strings.ToLower(token)]
	return ok
}
