package block

import (
	"testing"
	"time"

	fuzz "github.com/google/gofuzz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mezonai/certledger/certificate"
)

var ts = time.Date(2024, 6, 1, 12, 0, 0, 123456789, time.UTC)

func aliceEntries() []certificate.Entry {
	return []certificate.Entry{
		certificate.NewCertificateEntry(certificate.Certificate{
			StudentName: "Alice Kumar", Course: "CS101", Institution: "MIT", Year: "2024",
		}),
		certificate.NewRewardEntry("U002", "Verification Credit"),
	}
}

func TestNewSetsNonceAndHash(t *testing.T) {
	b := New(1, ts, aliceEntries(), "abc")

	assert.Equal(t, uint64(0), b.Nonce)
	assert.Len(t, b.Hash, 64)
	assert.Equal(t, Digest(b.Header), b.Hash)
	assert.Equal(t, b.Hash, b.RecomputeHash())
}

func TestGenesis(t *testing.T) {
	g := NewGenesis(ts)

	assert.True(t, g.IsGenesis())
	assert.Equal(t, GenesisPrevHash, g.PreviousHash)
	require.Len(t, g.Entries, 1)
	note, ok := g.Entries[0].Note()
	require.True(t, ok)
	assert.Equal(t, certificate.GenesisNote, note)
	assert.Equal(t, g.Hash, g.RecomputeHash())
}

func TestDigestDeterministic(t *testing.T) {
	h := Header{Index: 3, Timestamp: ts, Entries: aliceEntries(), PreviousHash: "ff", Nonce: 17}

	first := Digest(h)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Digest(h))
	}

	// Same logical certificate, fields assigned in a different order.
	var c certificate.Certificate
	c.Year = "2024"
	c.Institution = "MIT"
	c.Course = "CS101"
	c.StudentName = "Alice Kumar"
	h2 := h
	h2.Entries = []certificate.Entry{certificate.NewCertificateEntry(c), aliceEntries()[1]}
	assert.Equal(t, first, Digest(h2))
}

func TestDigestDeterministicFuzz(t *testing.T) {
	f := fuzz.New().NilChance(0)
	for i := 0; i < 200; i++ {
		var c certificate.Certificate
		var prev string
		var index, nonce uint64
		f.Fuzz(&c)
		f.Fuzz(&prev)
		f.Fuzz(&index)
		f.Fuzz(&nonce)

		h := Header{
			Index:        index,
			Timestamp:    ts,
			Entries:      []certificate.Entry{certificate.NewCertificateEntry(c)},
			PreviousHash: prev,
			Nonce:        nonce,
		}
		d := Digest(h)
		assert.Len(t, d, 64)
		assert.Equal(t, d, Digest(h))
	}
}

func TestDigestCoversEveryField(t *testing.T) {
	base := Header{Index: 1, Timestamp: ts, Entries: aliceEntries(), PreviousHash: "aa", Nonce: 5}
	want := Digest(base)

	mutations := map[string]func(h *Header){
		"index":     func(h *Header) { h.Index++ },
		"timestamp": func(h *Header) { h.Timestamp = h.Timestamp.Add(time.Nanosecond) },
		"prev":      func(h *Header) { h.PreviousHash = "ab" },
		"nonce":     func(h *Header) { h.Nonce++ },
		"entries": func(h *Header) {
			h.Entries = []certificate.Entry{certificate.NewCertificateEntry(certificate.Certificate{
				StudentName: "Alice Kumar", Course: "CS101", Institution: "MIT", Year: "2025",
			})}
		},
		"entry order": func(h *Header) {
			h.Entries = []certificate.Entry{h.Entries[1], h.Entries[0]}
		},
	}
	for name, mutate := range mutations {
		t.Run(name, func(t *testing.T) {
			h := base
			h.Entries = append([]certificate.Entry(nil), base.Entries...)
			mutate(&h)
			assert.NotEqual(t, want, Digest(h))
		})
	}
}

func TestRecomputeHashDetectsTamper(t *testing.T) {
	b := New(1, ts, aliceEntries(), "abc")
	stored := b.Hash

	b.Entries[0] = certificate.NewCertificateEntry(certificate.Certificate{
		StudentName: "Alice Kumar", Course: "CS101", Institution: "MIT", Year: "1999",
	})

	assert.Equal(t, stored, b.Hash, "RecomputeHash must not update the stored hash")
	assert.NotEqual(t, stored, b.RecomputeHash())
}

func TestCloneDoesNotAlias(t *testing.T) {
	b := New(1, ts, aliceEntries(), "abc")
	cp := b.Clone()

	cp.Entries[0] = certificate.NewNoteEntry("changed")
	cp.Nonce = 99

	_, ok := b.Entries[0].Certificate()
	assert.True(t, ok)
	assert.Equal(t, uint64(0), b.Nonce)
}

func TestDigestInvalidUTF8Collides(t *testing.T) {
	withYear := func(year string) Header {
		return Header{Index: 1, Timestamp: ts, PreviousHash: "aa", Entries: []certificate.Entry{
			certificate.NewCertificateEntry(certificate.Certificate{StudentName: "Alice", Course: "CS101", Institution: "MIT", Year: year}),
		}}
	}

	assert.Equal(t, Digest(withYear("20\xff")), Digest(withYear("20\xfe")))
	assert.NotEqual(t, Digest(withYear("20\uFFFD")), Digest(withYear("20\xfe")))
}
