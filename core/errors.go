package core

// DomainError 是领域层的统一错误类型。
//
// 设计原则：
//   - 所有领域层错误都使用此类型
//   - 提供错误代码（Code）和消息（Message）
//   - 支持错误检查函数（IsXXX）
//
// 使用场景：
//   - Store 错误：NOT_FOUND
//   - 推荐错误：EMPTY_CORPUS, INSUFFICIENT_DATA, UNKNOWN_ENTITY, NO_CANDIDATE
type DomainError struct {
	Code    string // 错误代码（如 "NOT_FOUND", "EMPTY_CORPUS"）
	Message string // 错误消息
	Module  string // 模块名称（如 "store", "vector", "recall"）
}

func (e *DomainError) Error() string {
	return e.Message
}

// GetDomainError 获取 DomainError，如果不是则返回 nil
func GetDomainError(err error) *DomainError {
	if err == nil {
		return nil
	}
	if domainErr, ok := err.(*DomainError); ok {
		return domainErr
	}
	return nil
}

// NewDomainError 创建新的领域错误
func NewDomainError(module, code, message string) *DomainError {
	return &DomainError{
		Module:  module,
		Code:    code,
		Message: message,
	}
}

// 错误代码常量
const (
	ErrorCodeNotFound         = "NOT_FOUND"          // 资源不存在
	ErrorCodeEmptyCorpus      = "EMPTY_CORPUS"       // 语料为空，无法建立词表
	ErrorCodeInsufficientData = "INSUFFICIENT_DATA"  // 评分数据不足，无法推荐
	ErrorCodeUnknownEntity    = "UNKNOWN_ENTITY"     // 产品名或客户 ID 不在快照中
	ErrorCodeNoCandidate      = "NO_CANDIDATE"       // 找不到代表性相似客户
)

// 模块名称常量
const (
	ModuleStore  = "store"  // 存储模块
	ModuleVector = "vector" // 向量模块
	ModuleRecall = "recall" // 召回模块
)

// 推荐链路的预定义错误。调用方用 IsXXX 判断，不应依赖消息文本。
var (
	// ErrEmptyCorpus 表示归一化之后没有任何可向量化的文本
	ErrEmptyCorpus = NewDomainError(ModuleVector, ErrorCodeEmptyCorpus, "vector: corpus has no usable terms")

	// ErrInsufficientData 表示评分日志小于最小行数阈值
	ErrInsufficientData = NewDomainError(ModuleRecall, ErrorCodeInsufficientData, "recall: rating log below minimum size")

	// ErrUnknownEntity 表示目标实体不在本次快照中
	ErrUnknownEntity = NewDomainError(ModuleRecall, ErrorCodeUnknownEntity, "recall: entity not present in snapshot")

	// ErrNoCandidate 表示按均值截断后没有可选的代表客户
	ErrNoCandidate = NewDomainError(ModuleRecall, ErrorCodeNoCandidate, "recall: no representative candidate below mean")
)

func hasCode(err error, code string) bool {
	if domainErr := GetDomainError(err); domainErr != nil {
		return domainErr.Code == code
	}
	return false
}

// IsNotFound 检查错误是否为 NOT_FOUND
func IsNotFound(err error) bool { return hasCode(err, ErrorCodeNotFound) }

// IsEmptyCorpus 检查错误是否为 EMPTY_CORPUS
func IsEmptyCorpus(err error) bool { return hasCode(err, ErrorCodeEmptyCorpus) }

// IsInsufficientData 检查错误是否为 INSUFFICIENT_DATA
func IsInsufficientData(err error) bool { return hasCode(err, ErrorCodeInsufficientData) }

// IsUnknownEntity 检查错误是否为 UNKNOWN_ENTITY
func IsUnknownEntity(err error) bool { return hasCode(err, ErrorCodeUnknownEntity) }

// IsNoCandidate 检查错误是否为 NO_CANDIDATE
func IsNoCandidate(err error) bool { return hasCode(err, ErrorCodeNoCandidate) }
