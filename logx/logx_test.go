package logx

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCategoryLines(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(lumberjackLogger)

	Info("POW", "Block mined: ", "00abc")
	Warn("LEDGER", "unauthorized")

	out := buf.String()
	assert.Contains(t, out, "[INFO][POW]")
	assert.Contains(t, out, "Block mined: 00abc")
	assert.Contains(t, out, "[WARN][LEDGER]")
}

func TestErrorfReturnsError(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(lumberjackLogger)

	err := Errorf("crashed: %d", 7)
	assert.EqualError(t, err, "crashed: 7")
	assert.Contains(t, buf.String(), "[ERROR][ERROR]")
}

func TestEnvIntFallback(t *testing.T) {
	t.Setenv("CERTLEDGER_TEST_INT", "")
	assert.Equal(t, 5, envInt("CERTLEDGER_TEST_INT", 5))

	t.Setenv("CERTLEDGER_TEST_INT", "nope")
	assert.Equal(t, 5, envInt("CERTLEDGER_TEST_INT", 5))

	t.Setenv("CERTLEDGER_TEST_INT", "42")
	assert.Equal(t, 42, envInt("CERTLEDGER_TEST_INT", 5))
}

func TestLevelLineFormat(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(lumberjackLogger)

	Debug("EVENTBUS", "no subscribers")
	Error("CMD", "failed ", 3)

	out := buf.String()
	assert.Contains(t, out, levelDebug.color+"[DEBUG][EVENTBUS]"+colorReset+": no subscribers")
	assert.Contains(t, out, levelError.color+"[ERROR][CMD]"+colorReset+": failed 3")
}
