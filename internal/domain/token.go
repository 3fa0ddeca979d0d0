package domain

// TokenMeta holds the creation time reference for a token mint.
// Entry classification measures the early-entry window from CreatedAt.
type TokenMeta struct {
	Mint      string `json:"mint"`
	CreatedAt uint64 `json:"created_at"` // Unix timestamp in seconds
}
