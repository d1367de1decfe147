package models

// VaultStatus summarises the vault without unlocking it.
type VaultStatus struct {
	AppVersion  string
	Initialized bool
	Generation  uint64
	SecretID    int64
	KDF         string
	Values      int
}
