package models

// StoreConfig is the editable storefront configuration kept in config.json.
type StoreConfig struct {
	AdminPassword string `json:"adminPassword"`
	FallbackImage string `json:"fallbackImage"`
}

// PublicConfig is the view of StoreConfig that may leave the server.
// The admin password must never appear here.
type PublicConfig struct {
	FallbackImage string `json:"fallbackImage"`
}
