package pow

import (
	"fmt"
	"strings"
	"time"

	"github.com/mezonai/certledger/block"
	"github.com/mezonai/certledger/events"
	"github.com/mezonai/certledger/logx"
	"github.com/mezonai/certledger/monitoring"
)

const ZeroSymbol = '0'

// MeetsDifficulty reports whether the first difficulty characters of hash
// are all ZeroSymbol.
func MeetsDifficulty(hash string, difficulty int) bool {
	if difficulty <= 0 {
		return true
	}
	if len(hash) < difficulty {
		return false
	}
	for i := 0; i < difficulty; i++ {
		if hash[i] != ZeroSymbol {
			return false
		}
	}
	return true
}

// LeadingZeros counts the ZeroSymbol prefix of hash.
func LeadingZeros(hash string) int {
	return len(hash) - len(strings.TrimLeft(hash, string(ZeroSymbol)))
}

type Miner struct {
	bus *events.EventBus
}

// NewMiner returns a miner that announces every sealed block on bus.
// bus may be nil.
func NewMiner(bus *events.EventBus) *Miner {
	return &Miner{bus: bus}
}

// Mine searches nonces upward from the block's current nonce until the
// digest satisfies difficulty, then stores the nonce and digest on b and
// returns it. There is no upper bound on the search.
func (m *Miner) Mine(b *block.Block, difficulty int) *block.Block {
	if difficulty < 0 {
		difficulty = 0
	}
	start := time.Now()

	h := b.Header
	hash := block.Digest(h)
	hashes := uint64(1)
	for !MeetsDifficulty(hash, difficulty) {
		h.Nonce++
		hash = block.Digest(h)
		hashes++
	}

	b.Nonce = h.Nonce
	b.Hash = hash

	elapsed := time.Since(start)
	monitoring.RecordBlockMined(elapsed, hashes)
	logx.Info("POW", fmt.Sprintf("Block mined: index=%d hash=%s nonce=%d difficulty=%d hashes=%d elapsed=%s",
		b.Index, b.Hash, b.Nonce, difficulty, hashes, elapsed))
	m.bus.Publish(events.NewBlockMined(b.Index, b.Hash, b.Nonce, elapsed))
	return b
}

// Verify reports whether b's stored hash is its true digest and satisfies
// difficulty.
func Verify(b *block.Block, difficulty int) bool {
	return b.Hash == b.RecomputeHash() && MeetsDifficulty(b.Hash, difficulty)
}
