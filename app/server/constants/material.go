package constants

const (
	MaterialDefaultCategory = "general"
	MaterialTitleMaxLength  = 200
	MaterialCategoryMaxLen  = 50
)

// 列表分页的默认值
const (
	PaginationDefaultSkip  = 0
	PaginationDefaultLimit = 100
)

const PaginationMaxLimit = 100
