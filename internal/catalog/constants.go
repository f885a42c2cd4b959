package catalog

import "time"

// Name index cache sizing
const (
	NameIndexCacheSize = 64
	NameIndexCacheTTL  = 30 * time.Second
)

// Log messages
const (
	LogMsgCatalogValidationFailed = "catalog failed validation on load"
)
