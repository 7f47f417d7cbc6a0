// Package constants centralizes provider names shared by config parsing and
// the fx wiring.
package constants

// Identity provider names.
const (
	AuthProviderMemory   = "memory"
	AuthProviderFirebase = "firebase"
)

// Profile store provider names.
const (
	StoreProviderMemory    = "memory"
	StoreProviderFirestore = "firestore"
	StoreProviderPostgres  = "postgres"
)

// Pub/Sub provider names.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)
