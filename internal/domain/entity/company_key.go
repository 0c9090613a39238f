package entity

// CompanyKeyLength is the exact length of every issued company key.
const CompanyKeyLength = 9

// CompanyKey is a pre-seeded registry entry binding a key to a company.
// Entries are issued out-of-band and never created by the application.
type CompanyKey struct {
	Key     string
	Company string
}
