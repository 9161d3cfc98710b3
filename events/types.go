package events

import (
	"time"
)

// EventType is an enum-like string type for ledger events
type EventType string

const (
	EventCertificateStaged EventType = "CertificateStaged"
	EventBlockMined        EventType = "BlockMined"
	EventPendingDiscarded  EventType = "PendingDiscarded"
)

// LedgerEvent represents anything observable that happens to the chain
type LedgerEvent interface {
	Type() EventType
	Timestamp() time.Time
}

// CertificateStaged is emitted when an authorised issuer adds a record
// to the pending batch.
type CertificateStaged struct {
	issuerID    string
	studentName string
	pending     int
	timestamp   time.Time
}

func NewCertificateStaged(issuerID, studentName string, pending int) *CertificateStaged {
	return &CertificateStaged{
		issuerID:    issuerID,
		studentName: studentName,
		pending:     pending,
		timestamp:   time.Now(),
	}
}

func (e *CertificateStaged) Type() EventType      { return EventCertificateStaged }
func (e *CertificateStaged) Timestamp() time.Time { return e.timestamp }
func (e *CertificateStaged) IssuerID() string     { return e.issuerID }
func (e *CertificateStaged) StudentName() string  { return e.studentName }
func (e *CertificateStaged) Pending() int         { return e.pending }

// BlockMined is the completion signal of a proof-of-work search.
type BlockMined struct {
	index     uint64
	blockHash string
	nonce     uint64
	elapsed   time.Duration
	timestamp time.Time
}

func NewBlockMined(index uint64, blockHash string, nonce uint64, elapsed time.Duration) *BlockMined {
	return &BlockMined{
		index:     index,
		blockHash: blockHash,
		nonce:     nonce,
		elapsed:   elapsed,
		timestamp: time.Now(),
	}
}

func (e *BlockMined) Type() EventType        { return EventBlockMined }
func (e *BlockMined) Timestamp() time.Time   { return e.timestamp }
func (e *BlockMined) Index() uint64          { return e.index }
func (e *BlockMined) BlockHash() string      { return e.blockHash }
func (e *BlockMined) Nonce() uint64          { return e.nonce }
func (e *BlockMined) Elapsed() time.Duration { return e.elapsed }

// PendingDiscarded is emitted when an unauthorised mining attempt wipes
// the pending batch.
type PendingDiscarded struct {
	issuerID  string
	discarded int
	timestamp time.Time
}

func NewPendingDiscarded(issuerID string, discarded int) *PendingDiscarded {
	return &PendingDiscarded{
		issuerID:  issuerID,
		discarded: discarded,
		timestamp: time.Now(),
	}
}

func (e *PendingDiscarded) Type() EventType      { return EventPendingDiscarded }
func (e *PendingDiscarded) Timestamp() time.Time { return e.timestamp }
func (e *PendingDiscarded) IssuerID() string     { return e.issuerID }
func (e *PendingDiscarded) Discarded() int       { return e.discarded }
