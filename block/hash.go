package block

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/mezonai/certledger/certificate"
	"github.com/mezonai/certledger/jsonx"
)

// Header holds every field covered by a block digest.
type Header struct {
	Index        uint64
	Timestamp    time.Time
	Entries      []certificate.Entry
	PreviousHash string
	Nonce        uint64
}

// Digest returns the lowercase hex SHA-256 of the canonical encoding of h.
// The fields are encoded as nested maps, and jsonx sorts map keys, so two
// logically equal headers always hash to the same value. Every invalid
// UTF-8 byte in a string encodes as \ufffd, so such strings can collide;
// callers store valid UTF-8 only.
func Digest(h Header) string {
	payloads := make([]interface{}, len(h.Entries))
	for i, e := range h.Entries {
		payloads[i] = e.Payload()
	}
	data, err := jsonx.Marshal(map[string]interface{}{
		"index":         h.Index,
		"timestamp":     h.Timestamp.UnixNano(),
		"certificates":  payloads,
		"previous_hash": h.PreviousHash,
		"nonce":         h.Nonce,
	})
	if err != nil {
		// Payloads are strings and string maps; anything else is a bug
		// and must not hash as empty input.
		panic(fmt.Sprintf("block: encode header %d: %v", h.Index, err))
	}
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
