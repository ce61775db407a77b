package models

// Credential is one entry of the credential store. Hash and Salt are hex.
type Credential struct {
	Email string
	Hash  string
	Salt  string
	Role  Role
}
