package config

import (
	"os"
	"sort"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/ini.v1"
	"gopkg.in/yaml.v3"

	"github.com/mezonai/certledger/logx"
)

// IssuerRegistry maps issuer ID to display name. It is reference data
// handed to the chain at construction and never mutated by it.
type IssuerRegistry map[string]string

// Name returns the display name for id and whether id is authorised.
func (r IssuerRegistry) Name(id string) (string, bool) {
	name, ok := r[id]
	return name, ok
}

// IDs returns the registered IDs in sorted order.
func (r IssuerRegistry) IDs() []string {
	ids := make([]string, 0, len(r))
	for id := range r {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func (r IssuerRegistry) Clone() IssuerRegistry {
	out := make(IssuerRegistry, len(r))
	for id, name := range r {
		out[id] = name
	}
	return out
}

// DefaultIssuers returns the pre-registered trusted universities.
func DefaultIssuers() IssuerRegistry {
	reg := make(IssuerRegistry, len(defaultIssuers))
	for _, is := range defaultIssuers {
		reg[is.ID] = is.Name
	}
	return reg
}

// NewIssuerRegistry validates a list of issuers and indexes it by ID.
func NewIssuerRegistry(issuers []Issuer) (IssuerRegistry, error) {
	reg := make(IssuerRegistry, len(issuers))
	for i, is := range issuers {
		id := strings.TrimSpace(is.ID)
		name := strings.TrimSpace(is.Name)
		if id == "" {
			return nil, errors.Errorf("issuer #%d: id cannot be empty", i)
		}
		if name == "" {
			return nil, errors.Errorf("issuer %s: name cannot be empty", id)
		}
		if _, dup := reg[id]; dup {
			return nil, errors.Errorf("issuer %s: duplicate id", id)
		}
		reg[id] = name
	}
	return reg, nil
}

// LoadIssuers reads and parses an issuers.yml file
func LoadIssuers(path string) (IssuerRegistry, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open issuers file %s", path)
	}
	defer file.Close()

	var f IssuersFile
	if err := yaml.NewDecoder(file).Decode(&f); err != nil {
		return nil, errors.Wrapf(err, "decode issuers file %s", path)
	}
	if len(f.Issuers) == 0 {
		return nil, errors.Errorf("issuers file %s lists no issuers", path)
	}

	reg, err := NewIssuerRegistry(f.Issuers)
	if err != nil {
		return nil, errors.Wrapf(err, "issuers file %s", path)
	}
	logx.Info("CONFIG", "Loaded ", len(reg), " issuers from ", path)
	return reg, nil
}

// LoadChainConfig reads chain settings from an .ini file. Keys missing
// from the [chain] section keep their defaults.
func LoadChainConfig(path string) (*ChainConfig, error) {
	cfg, err := ini.Load(path)
	if err != nil {
		return nil, errors.Wrapf(err, "load chain config %s", path)
	}
	chainCfg := &ChainConfig{
		Difficulty:  DefaultDifficulty,
		RewardLabel: DefaultRewardLabel,
	}
	if err := cfg.Section("chain").MapTo(chainCfg); err != nil {
		return nil, errors.Wrapf(err, "map [chain] section of %s", path)
	}
	if err := ValidateDifficulty(chainCfg.Difficulty); err != nil {
		return nil, errors.Wrapf(err, "chain config %s", path)
	}
	if strings.TrimSpace(chainCfg.RewardLabel) == "" {
		chainCfg.RewardLabel = DefaultRewardLabel
	}
	return chainCfg, nil
}

func ValidateDifficulty(d int) error {
	if d < 0 || d > MaxDifficulty {
		return errors.Errorf("difficulty must be within [0, %d], got %d", MaxDifficulty, d)
	}
	return nil
}
