package jsonx

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarshalSortsMapKeys(t *testing.T) {
	a := map[string]interface{}{"year": "2024", "course": "CS101", "student_name": "Alice"}
	b := map[string]interface{}{}
	b["student_name"] = "Alice"
	b["course"] = "CS101"
	b["year"] = "2024"

	outA, err := Marshal(a)
	require.NoError(t, err)
	outB, err := Marshal(b)
	require.NoError(t, err)

	assert.Equal(t, string(outA), string(outB))
	assert.Equal(t, `{"course":"CS101","student_name":"Alice","year":"2024"}`, string(outA))
}

func TestMarshalIndent(t *testing.T) {
	out, err := MarshalIndent(map[string]int{"b": 2, "a": 1}, "", "    ")
	require.NoError(t, err)
	assert.JSONEq(t, `{"a":1,"b":2}`, string(out))
	assert.Contains(t, string(out), "\n    \"a\"")
	assert.Less(t, strings.Index(string(out), `"a"`), strings.Index(string(out), `"b"`))
}
