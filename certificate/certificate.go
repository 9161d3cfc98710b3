package certificate

import (
	"strings"
	"unicode/utf8"

	"github.com/mezonai/certledger/jsonx"
)

const (
	GenesisNote  = "Genesis Block: Academic Certificates"
	RewardIssuer = "System"
)

// Certificate is an issued academic record. Institution is always the
// display name of the issuer that staged it.
type Certificate struct {
	StudentName string `json:"student_name"`
	Course      string `json:"course"`
	Institution string `json:"institution"`
	Year        string `json:"year"`
}

// Fields returns the record as a plain mapping. Hashing goes through this
// form so that field order never influences the digest.
func (c Certificate) Fields() map[string]string {
	return map[string]string{
		"student_name": c.StudentName,
		"course":       c.Course,
		"institution":  c.Institution,
		"year":         c.Year,
	}
}

// ToValidUTF8 replaces every run of invalid UTF-8 bytes in each field
// with U+FFFD. The digest encoder cannot tell invalid bytes apart, so
// only valid strings are stored.
func (c Certificate) ToValidUTF8() Certificate {
	return Certificate{
		StudentName: toValidUTF8(c.StudentName),
		Course:      toValidUTF8(c.Course),
		Institution: toValidUTF8(c.Institution),
		Year:        toValidUTF8(c.Year),
	}
}

func toValidUTF8(s string) string {
	return strings.ToValidUTF8(s, string(utf8.RuneError))
}

// Reward credits the issuer that mined a block.
type Reward struct {
	Issuer string `json:"issuer"`
	To     string `json:"to"`
	Reward string `json:"reward"`
}

func (r Reward) Fields() map[string]string {
	return map[string]string{
		"issuer": r.Issuer,
		"to":     r.To,
		"reward": r.Reward,
	}
}

type Kind uint8

const (
	KindCertificate Kind = iota
	KindReward
	KindNote
)

func (k Kind) String() string {
	switch k {
	case KindCertificate:
		return "certificate"
	case KindReward:
		return "reward"
	case KindNote:
		return "note"
	default:
		return "unknown"
	}
}

// Entry is one line of a block: a certificate, a mining reward, or a
// free-text note (only the genesis block carries one).
type Entry struct {
	kind        Kind
	certificate Certificate
	reward      Reward
	note        string
}

func NewCertificateEntry(c Certificate) Entry {
	return Entry{kind: KindCertificate, certificate: c}
}

func NewRewardEntry(issuerID, label string) Entry {
	return Entry{kind: KindReward, reward: Reward{Issuer: RewardIssuer, To: issuerID, Reward: label}}
}

func NewNoteEntry(note string) Entry {
	return Entry{kind: KindNote, note: note}
}

func (e Entry) Kind() Kind { return e.kind }

func (e Entry) Certificate() (Certificate, bool) {
	return e.certificate, e.kind == KindCertificate
}

func (e Entry) Reward() (Reward, bool) {
	return e.reward, e.kind == KindReward
}

func (e Entry) Note() (string, bool) {
	return e.note, e.kind == KindNote
}

// ValidUTF8 reports whether every string the entry carries is valid UTF-8.
func (e Entry) ValidUTF8() bool {
	switch e.kind {
	case KindCertificate:
		return allValid(e.certificate.Fields())
	case KindReward:
		return allValid(e.reward.Fields())
	default:
		return utf8.ValidString(e.note)
	}
}

func allValid(fields map[string]string) bool {
	for _, v := range fields {
		if !utf8.ValidString(v) {
			return false
		}
	}
	return true
}

// Payload is the value that gets hashed and displayed for this entry.
func (e Entry) Payload() interface{} {
	switch e.kind {
	case KindCertificate:
		return e.certificate.Fields()
	case KindReward:
		return e.reward.Fields()
	default:
		return e.note
	}
}

func (e Entry) MarshalJSON() ([]byte, error) {
	return jsonx.Marshal(e.Payload())
}
