// Package constants defines configuration tokens shared between config and infra.
package constants

// Event publisher providers.
const (
	PubSubProviderNoop   = "noop"
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
	PubSubProviderKafka  = "kafka"
)

// Storage drivers.
const (
	StorageDriverPostgres = "postgres"
	StorageDriverMemory   = "memory"
)

// Event names published by the hiring ledger.
const (
	EventHireRecorded      = "hire.recorded"
	EventHireStatusChanged = "hire.status_changed"
)

// Deployment environments (env.env).
const (
	EnvLocal      = "local"
	EnvDevelop    = "develop"
	EnvProduction = "production"
)
