package logger

import (
	"bytes"
	"io"
	"os"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

// capture redirects output for the duration of a test.
func capture(t *testing.T, verboseMode bool) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	SetOutput(&buf)
	SetVerbose(verboseMode)
	t.Cleanup(func() {
		SetVerbose(false)
		SetOutput(os.Stderr)
	})
	return &buf
}

func TestSetVerbose(t *testing.T) {
	capture(t, false)
	assert.False(t, IsVerbose())

	SetVerbose(true)
	assert.True(t, IsVerbose())
}

func TestLevels_WhenVerbose(t *testing.T) {
	buf := capture(t, true)

	Debug("fetch %s", "abc")
	Info("run %d started", 1)
	Warn("record %s has no content", "xyz")
	Section("Reindex")

	out := buf.String()
	assert.Contains(t, out, "[DEBUG] fetch abc\n")
	assert.Contains(t, out, "[INFO] run 1 started\n")
	assert.Contains(t, out, "[WARN] record xyz has no content\n")
	assert.Contains(t, out, "=== Reindex ===")
}

func TestLevels_WhenNotVerbose(t *testing.T) {
	buf := capture(t, false)

	Debug("hidden")
	Info("hidden")
	Warn("hidden")
	Section("hidden")

	assert.Empty(t, buf.String())
}

func TestError_AlwaysPrinted(t *testing.T) {
	buf := capture(t, false)

	Error("commit failed: %v", assert.AnError)

	assert.Contains(t, buf.String(), "[ERROR] commit failed: "+assert.AnError.Error())
}

func TestConcurrentAccess(t *testing.T) {
	capture(t, true)
	SetOutput(io.Discard)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func(n int) {
			defer wg.Done()
			Info("message %d", n)
		}(i)
		go func() {
			defer wg.Done()
			SetVerbose(true)
		}()
	}
	wg.Wait()
}
