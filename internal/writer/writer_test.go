// internal/writer/writer_test.go
package writer

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tamzrod/cppnorm/internal/config"
	"github.com/tamzrod/cppnorm/internal/normalizer"
	"github.com/tamzrod/cppnorm/internal/status"
)

func TestWriter_ChangedFile(t *testing.T) {
	var buf bytes.Buffer
	w := New(&buf, false)

	require.NoError(t, w.Write(normalizer.Result{Path: "src/a.c", Changed: true, Passes: []string{"whitespace", "indent"}}))

	out := buf.String()
	assert.Contains(t, out, "fixed")
	assert.Contains(t, out, "src/a.c")
	assert.Contains(t, out, "whitespace, indent")
	assert.NotContains(t, out, "would fix")
}

func TestWriter_CheckMode(t *testing.T) {
	var buf bytes.Buffer
	w := New(&buf, true)

	require.NoError(t, w.Write(normalizer.Result{Path: "src/a.c", Changed: true}))

	assert.Contains(t, buf.String(), "would fix")
	assert.Contains(t, buf.String(), "src/a.c")
}

func TestWriter_UnchangedFilePrintsNothing(t *testing.T) {
	var buf bytes.Buffer
	w := New(&buf, false)

	require.NoError(t, w.Write(normalizer.Result{Path: "src/a.c"}))

	assert.Empty(t, buf.String())
}

func TestWriter_FailedFile(t *testing.T) {
	var buf bytes.Buffer
	w := New(&buf, false)

	res := normalizer.Result{
		Path:    "src/a.c",
		Changed: true,
		Err:     &normalizer.FileWriteError{Path: "src/a.c", Err: errors.New("read-only file system")},
	}
	require.NoError(t, w.Write(res))

	out := buf.String()
	assert.Contains(t, out, "error")
	assert.Contains(t, out, "read-only file system")
	assert.NotContains(t, out, "fixed")
}

func TestStatusWriter_Summary(t *testing.T) {
	var buf bytes.Buffer
	sw := NewStatusWriter(&buf)

	require.NoError(t, sw.WriteStatus(status.Snapshot{Total: 3, Changed: 1, Failed: 1}))

	out := buf.String()
	assert.Contains(t, out, "3 files checked")
	assert.Contains(t, out, "1 fixed")
	assert.Contains(t, out, "1 failed")
}

func TestStatusWriter_CheckModeWording(t *testing.T) {
	var buf bytes.Buffer
	sw := NewStatusWriter(&buf)

	require.NoError(t, sw.WriteStatus(status.Snapshot{Total: 1, Check: true}))

	assert.Contains(t, buf.String(), "1 file checked")
	assert.Contains(t, buf.String(), "0 would be fixed")
}

func TestBuild_HonoursCheck(t *testing.T) {
	var buf bytes.Buffer
	c := config.Default()
	c.Check = true

	w, sw := Build(c, &buf)
	require.NoError(t, w.Write(normalizer.Result{Path: "a.c", Changed: true}))
	require.NoError(t, sw.WriteStatus(status.Snapshot{Total: 1, Changed: 1, Check: true}))

	assert.Contains(t, buf.String(), "would fix")
}
