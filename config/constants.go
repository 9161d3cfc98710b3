package config

const (
	DefaultDifficulty  = 3
	DefaultRewardLabel = "Verification Credit"

	// A SHA-256 hex digest has 64 characters.
	MaxDifficulty = 64
)

var defaultIssuers = []Issuer{
	{ID: "U001", Name: "Oxford University"},
	{ID: "U002", Name: "MIT"},
	{ID: "U003", Name: "IIT Madras"},
	{ID: "U004", Name: "Stanford University"},
}
