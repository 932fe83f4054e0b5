package handlers

import "material-site/app/server/constants"

// parsePagination 缺省或无效的参数使用默认值， limit 不超过上限
func (a *App) parsePagination(skip *int, limit *int) (int, int) {
	parsedSkip := constants.PaginationDefaultSkip
	parsedLimit := constants.PaginationDefaultLimit

	if skip != nil && *skip > 0 {
		parsedSkip = *skip
	}

	if limit != nil && *limit > 0 {
		parsedLimit = *limit
	}
	if parsedLimit > constants.PaginationMaxLimit {
		parsedLimit = constants.PaginationMaxLimit
	}

	return parsedSkip, parsedLimit
}
