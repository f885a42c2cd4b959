package config

const (
	// Configuration file paths
	ConfigPathCatalogSeedDir = "configs/catalogs/"
	ConfigPathCatalogSchema  = "configs/catalogs/schema.json"
)
