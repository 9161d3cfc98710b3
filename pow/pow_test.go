package pow

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mezonai/certledger/block"
	"github.com/mezonai/certledger/certificate"
	"github.com/mezonai/certledger/events"
)

func newBlock() *block.Block {
	entries := []certificate.Entry{
		certificate.NewCertificateEntry(certificate.Certificate{
			StudentName: "Alice", Course: "CS101", Institution: "Oxford University", Year: "2024",
		}),
		certificate.NewRewardEntry("U001", "Verification Credit"),
	}
	return block.New(1, time.Date(2024, 1, 2, 3, 4, 5, 6, time.UTC), entries, "00beef")
}

func TestMeetsDifficulty(t *testing.T) {
	assert.True(t, MeetsDifficulty("abc", 0))
	assert.True(t, MeetsDifficulty("abc", -2))
	assert.True(t, MeetsDifficulty("00a", 2))
	assert.False(t, MeetsDifficulty("00a", 3))
	assert.False(t, MeetsDifficulty("0a0", 2))
	assert.False(t, MeetsDifficulty("0", 2))
}

func TestLeadingZeros(t *testing.T) {
	assert.Equal(t, 0, LeadingZeros("abc"))
	assert.Equal(t, 3, LeadingZeros("000a0"))
	assert.Equal(t, 2, LeadingZeros("00"))
}

func TestMineFindsFirstSatisfyingNonce(t *testing.T) {
	for _, difficulty := range []int{1, 2} {
		b := newBlock()
		mined := NewMiner(nil).Mine(b, difficulty)

		require.Same(t, b, mined)
		assert.True(t, MeetsDifficulty(mined.Hash, difficulty))
		assert.Equal(t, mined.Hash, mined.RecomputeHash())
		assert.True(t, Verify(mined, difficulty))

		// Every smaller nonce must fail, so the search never skipped.
		h := mined.Header
		for n := uint64(0); n < mined.Nonce; n++ {
			h.Nonce = n
			assert.False(t, MeetsDifficulty(block.Digest(h), difficulty), "nonce %d also satisfies difficulty %d", n, difficulty)
		}
	}
}

func TestMineZeroDifficultyKeepsNonce(t *testing.T) {
	b := newBlock()
	hash := b.Hash

	NewMiner(nil).Mine(b, 0)

	assert.Equal(t, uint64(0), b.Nonce)
	assert.Equal(t, hash, b.Hash)
}

func TestMinePublishesBlockMined(t *testing.T) {
	bus := events.NewEventBus()
	_, ch := bus.Subscribe()

	b := NewMiner(bus).Mine(newBlock(), 1)

	select {
	case ev := <-ch:
		mined, ok := ev.(*events.BlockMined)
		require.True(t, ok)
		assert.Equal(t, b.Hash, mined.BlockHash())
		assert.Equal(t, b.Nonce, mined.Nonce())
		assert.Equal(t, uint64(1), mined.Index())
	case <-time.After(time.Second):
		t.Fatal("no BlockMined event")
	}
}

func TestVerifyRejectsTamperedBlock(t *testing.T) {
	b := NewMiner(nil).Mine(newBlock(), 1)
	b.Entries[0] = certificate.NewNoteEntry("forged")
	assert.False(t, Verify(b, 1))
}
