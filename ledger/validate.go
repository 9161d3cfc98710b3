package ledger

import (
	"fmt"
)

type ValidationReason string

const (
	ReasonHashMismatch ValidationReason = "hash mismatch"
	ReasonBrokenLink   ValidationReason = "broken link"

	// The digest encodes every invalid UTF-8 byte as \ufffd, so a matching
	// hash does not vouch for such an entry.
	ReasonInvalidEncoding ValidationReason = "invalid encoding"
)

// ValidationError names the first block that failed integrity checks.
type ValidationError struct {
	Index  int
	Reason ValidationReason
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("block %d: %s", e.Index, e.Reason)
}

// Validate recomputes every non-genesis block's digest and checks it
// against the stored one, checks that its entries are valid UTF-8, then
// checks the link to its predecessor. It
// stops at the first violation and never repairs anything.
func (c *Chain) Validate() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := 1; i < len(c.blocks); i++ {
		curr := c.blocks[i]
		prev := c.blocks[i-1]

		if curr.Hash != curr.RecomputeHash() {
			return &ValidationError{Index: i, Reason: ReasonHashMismatch}
		}
		for _, e := range curr.Entries {
			if !e.ValidUTF8() {
				return &ValidationError{Index: i, Reason: ReasonInvalidEncoding}
			}
		}
		if curr.PreviousHash != prev.Hash {
			return &ValidationError{Index: i, Reason: ReasonBrokenLink}
		}
	}
	return nil
}

func (c *Chain) IsValid() bool {
	return c.Validate() == nil
}
