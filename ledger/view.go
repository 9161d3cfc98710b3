package ledger

import (
	"time"

	"github.com/holiman/uint256"

	"github.com/mezonai/certledger/block"
	"github.com/mezonai/certledger/certificate"
	"github.com/mezonai/certledger/pow"
)

// BlockView is a read-only snapshot of one block for display.
type BlockView struct {
	Index        uint64              `json:"index"`
	Timestamp    time.Time           `json:"timestamp"`
	Entries      []certificate.Entry `json:"certificates"`
	Hash         string              `json:"hash"`
	PreviousHash string              `json:"previous_hash"`
	Nonce        uint64              `json:"nonce"`
}

func newBlockView(b *block.Block) BlockView {
	entries := make([]certificate.Entry, len(b.Entries))
	copy(entries, b.Entries)
	return BlockView{
		Index:        b.Index,
		Timestamp:    b.Timestamp,
		Entries:      entries,
		Hash:         b.Hash,
		PreviousHash: b.PreviousHash,
		Nonce:        b.Nonce,
	}
}

// Render returns every block in chain order.
func (c *Chain) Render() []BlockView {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]BlockView, 0, len(c.blocks))
	for _, b := range c.blocks {
		out = append(out, newBlockView(b))
	}
	return out
}

func (c *Chain) Latest() BlockView {
	c.mu.Lock()
	defer c.mu.Unlock()
	return newBlockView(c.blocks[len(c.blocks)-1])
}

// LookupByStudent returns every sealed certificate whose student name
// equals name exactly, in chain order. No match yields an empty slice.
func (c *Chain) LookupByStudent(name string) []certificate.Certificate {
	c.mu.Lock()
	defer c.mu.Unlock()

	found := []certificate.Certificate{}
	for _, b := range c.blocks {
		for _, e := range b.Entries {
			if cert, ok := e.Certificate(); ok && cert.StudentName == name {
				found = append(found, cert)
			}
		}
	}
	return found
}

// TotalWork sums 16^z over mined blocks, z being the number of leading
// zero hex digits of each block hash.
func (c *Chain) TotalWork() *uint256.Int {
	c.mu.Lock()
	defer c.mu.Unlock()

	total := uint256.NewInt(0)
	for _, b := range c.blocks[1:] {
		z := pow.LeadingZeros(b.Hash)
		if z > 63 {
			z = 63
		}
		work := new(uint256.Int).Lsh(uint256.NewInt(1), uint(4*z))
		total.Add(total, work)
	}
	return total
}
