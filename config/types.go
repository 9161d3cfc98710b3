package config

// Issuer is a university allowed to stage and mine certificates.
type Issuer struct {
	ID   string `yaml:"id"`
	Name string `yaml:"name"`
}

// IssuersFile is the top-level structure for issuers.yml
type IssuersFile struct {
	Issuers []Issuer `yaml:"issuers"`
}

// ChainConfig holds the [chain] section of config.ini
type ChainConfig struct {
	Difficulty  int    `ini:"difficulty"`
	RewardLabel string `ini:"reward_label"`
}
