package constants

import "time"

const (
	CacheKeyMaterial = "cms:material:%d"
)

const (
	CacheExpireMaterial = 1 * time.Hour
)

// 已删除的资料在缓存中留下的标记，读取时视为不存在
const (
	CacheMaterialTombstone = "deleted"
)
