// Package constants holds provider names shared between config and infra.
package constants

// Runtime environment names.
const (
	EnvDevelop    = "develop"
	EnvProduction = "production"
)

// Pub/Sub provider selection.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Location source provider selection.
const (
	LocationProviderDevice = "device"
	LocationProviderWeb    = "web"
	LocationProviderMock   = "mock"
)
