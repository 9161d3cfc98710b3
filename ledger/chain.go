package ledger

import (
	"fmt"
	"sync"
	"time"

	"github.com/mezonai/certledger/block"
	"github.com/mezonai/certledger/certificate"
	"github.com/mezonai/certledger/config"
	"github.com/mezonai/certledger/errors"
	"github.com/mezonai/certledger/events"
	"github.com/mezonai/certledger/logx"
	"github.com/mezonai/certledger/monitoring"
	"github.com/mezonai/certledger/pow"
	"github.com/mezonai/certledger/utils"
)

type Options struct {
	Difficulty  int                   // leading zero hex digits required; negative means 0
	RewardLabel string                // "" means config.DefaultRewardLabel
	Issuers     config.IssuerRegistry // nil means config.DefaultIssuers()
	Bus         *events.EventBus      // optional
	Now         func() time.Time      // nil means time.Now
}

func DefaultOptions() Options {
	return Options{
		Difficulty:  config.DefaultDifficulty,
		RewardLabel: config.DefaultRewardLabel,
		Issuers:     config.DefaultIssuers(),
	}
}

// Chain is an append-only sequence of mined blocks plus the batch of
// entries waiting for the next one. All access goes through mu; callers
// only ever receive copies of internal state.
type Chain struct {
	mu sync.Mutex

	blocks  []*block.Block
	pending []certificate.Entry

	difficulty  int
	rewardLabel string
	issuers     config.IssuerRegistry

	miner *pow.Miner
	bus   *events.EventBus
	now   func() time.Time
}

func NewChain(opts Options) *Chain {
	if opts.Difficulty < 0 {
		opts.Difficulty = 0
	}
	if opts.RewardLabel == "" {
		opts.RewardLabel = config.DefaultRewardLabel
	}
	if opts.Issuers == nil {
		opts.Issuers = config.DefaultIssuers()
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	c := &Chain{
		blocks:      []*block.Block{block.NewGenesis(opts.Now())},
		difficulty:  opts.Difficulty,
		rewardLabel: opts.RewardLabel,
		issuers:     opts.Issuers.Clone(),
		miner:       pow.NewMiner(opts.Bus),
		bus:         opts.Bus,
		now:         opts.Now,
	}
	monitoring.SetChainHeight(len(c.blocks))
	monitoring.SetPendingSize(0)
	logx.Info("LEDGER", fmt.Sprintf("Chain created | genesis=%s | difficulty=%d | issuers=%d", utils.ShortenHash(c.blocks[0].Hash), c.difficulty, len(c.issuers)))
	return c
}

// AddCertificate stages a certificate issued by issuerID. The record's
// institution is the issuer's registered name; invalid UTF-8 in any field
// is replaced with U+FFFD before staging. Unknown issuers get an
// unauthorized error and the pending batch is left as it was.
func (c *Chain) AddCertificate(issuerID, studentName, course, year string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	institution, ok := c.issuers.Name(issuerID)
	if !ok {
		monitoring.RecordRejected(monitoring.RejectedUnauthorizedAdd)
		logx.Warn("LEDGER", fmt.Sprintf("Unauthorized certificate attempt | issuer_id=%s", issuerID))
		return errors.NewError(errors.ErrCodeUnauthorized, errors.ErrMsgUnauthorizedAdd)
	}

	cert := certificate.Certificate{
		StudentName: studentName,
		Course:      course,
		Institution: institution,
		Year:        year,
	}.ToValidUTF8()
	c.pending = append(c.pending, certificate.NewCertificateEntry(cert))

	monitoring.SetPendingSize(len(c.pending))
	logx.Info("LEDGER", fmt.Sprintf("Certificate added by %s | student=%s | pending=%d", institution, cert.StudentName, len(c.pending)))
	c.bus.Publish(events.NewCertificateStaged(issuerID, cert.StudentName, len(c.pending)))
	return nil
}

// MinePending seals the pending batch, plus a reward entry for issuerID,
// into a new block and returns its hash. The call blocks until the
// proof-of-work search finishes.
//
// An unknown issuerID discards the whole pending batch before returning
// the unauthorized error.
func (c *Chain) MinePending(issuerID string) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	institution, ok := c.issuers.Name(issuerID)
	if !ok {
		discarded := len(c.pending)
		c.pending = nil
		monitoring.RecordRejected(monitoring.RejectedUnauthorizedMine)
		monitoring.RecordDiscarded(discarded)
		monitoring.SetPendingSize(0)
		logx.Warn("LEDGER", fmt.Sprintf("Unauthorized mining attempt, pending batch cleared | issuer_id=%s | discarded=%d", issuerID, discarded))
		c.bus.Publish(events.NewPendingDiscarded(issuerID, discarded))
		return "", errors.NewError(errors.ErrCodeUnauthorized, errors.ErrMsgUnauthorizedMine)
	}

	entries := make([]certificate.Entry, 0, len(c.pending)+1)
	entries = append(entries, c.pending...)
	entries = append(entries, certificate.NewRewardEntry(issuerID, c.rewardLabel))

	tip := c.blocks[len(c.blocks)-1]
	b := block.New(uint64(len(c.blocks)), c.now(), entries, tip.Hash)
	c.miner.Mine(b, c.difficulty)

	c.blocks = append(c.blocks, b)
	sealed := len(c.pending)
	c.pending = nil

	monitoring.RecordCertificatesSealed(sealed)
	monitoring.SetChainHeight(len(c.blocks))
	monitoring.SetPendingSize(0)
	logx.Info("LEDGER", fmt.Sprintf("Block validated by %s | index=%d | hash=%s | prev=%s | certificates=%d",
		institution, b.Index, utils.ShortenHash(b.Hash), utils.ShortenHash(b.PreviousHash), sealed))
	return b.Hash, nil
}

func (c *Chain) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.blocks)
}

func (c *Chain) Difficulty() int {
	return c.difficulty
}

// Issuers returns a copy of the authorised issuer table.
func (c *Chain) Issuers() config.IssuerRegistry {
	return c.issuers.Clone()
}

// Pending returns a copy of the staged entries.
func (c *Chain) Pending() []certificate.Entry {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]certificate.Entry, len(c.pending))
	copy(out, c.pending)
	return out
}
