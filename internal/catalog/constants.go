package catalog

import "time"

// DefaultCacheSize is the default maximum number of cache entries
const DefaultCacheSize = 2000

// DefaultCacheTTL is the default time-to-live for cache entries
const DefaultCacheTTL = 10 * time.Minute

const (
	keySep  = ":"
	keyList = "*"
)

// Log messages
const (
	LogMsgCacheFilled      = "Catalog cache filled"
	LogMsgCacheInvalidated = "Catalog cache invalidated"
)
