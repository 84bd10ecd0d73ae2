package report_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/katalvlaran/pathsig/internal/report"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_StampsRun(t *testing.T) {
	a := report.New("signature", 2, 3, 0, 10, []float64{1, 2})
	b := report.New("signature", 2, 3, 0, 10, []float64{1, 2})

	assert.NotEqual(t, uuid.Nil, a.RunID)
	assert.NotEqual(t, a.RunID, b.RunID)
	assert.False(t, a.CreatedAt.IsZero())
}

func TestEncode_Fields(t *testing.T) {
	r := report.New("signature", 1, 2, 0, 3, []float64{1, 0.5})

	var buf bytes.Buffer
	require.NoError(t, r.Encode(&buf))
	out := buf.String()
	for _, key := range []string{`"run_id"`, `"command": "signature"`, `"dim": 1`, `"level": 2`, `"samples": 3`, `"created_at"`} {
		assert.Contains(t, out, key)
	}
	assert.NotContains(t, out, `"window"`, "zero window is omitted")

	got, err := report.Decode(strings.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, r.RunID, got.RunID)
	assert.Equal(t, []float64{1, 0.5}, got.Signature)
	assert.True(t, r.CreatedAt.Equal(got.CreatedAt))
}

func TestWriteFile(t *testing.T) {
	name := filepath.Join(t.TempDir(), "run.json")
	r := report.New("window", 2, 2, 5, 40, nil)
	require.NoError(t, r.WriteFile(name))

	f, err := os.Open(name)
	require.NoError(t, err)
	defer f.Close()
	got, err := report.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, 5, got.Window)

	_, err = report.Decode(strings.NewReader("{"))
	assert.Error(t, err)
}
