package block

import (
	"time"

	"github.com/mezonai/certledger/certificate"
)

// GenesisPrevHash stands in for the missing predecessor of block 0.
const GenesisPrevHash = "0"

type Block struct {
	Header
	Hash string // Digest(Header) at the time the block was sealed
}

// New assembles a block with nonce 0 and its digest already computed.
func New(index uint64, timestamp time.Time, entries []certificate.Entry, previousHash string) *Block {
	b := &Block{
		Header: Header{
			Index:        index,
			Timestamp:    timestamp.Round(0),
			Entries:      entries,
			PreviousHash: previousHash,
			Nonce:        0,
		},
	}
	b.Hash = Digest(b.Header)
	return b
}

// NewGenesis builds block 0. It is hashed but never mined.
func NewGenesis(timestamp time.Time) *Block {
	return New(0, timestamp, []certificate.Entry{certificate.NewNoteEntry(certificate.GenesisNote)}, GenesisPrevHash)
}

// RecomputeHash returns the digest of the block's current fields without
// touching the stored Hash.
func (b *Block) RecomputeHash() string {
	return Digest(b.Header)
}

// Clone returns a copy that shares nothing mutable with b.
func (b *Block) Clone() *Block {
	cp := *b
	cp.Entries = make([]certificate.Entry, len(b.Entries))
	copy(cp.Entries, b.Entries)
	return &cp
}

func (b *Block) IsGenesis() bool {
	return b.Index == 0
}
