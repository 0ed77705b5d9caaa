package testutil

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
	"testing"

	"github.com/vk/schoolregistry/internal/console"
	"github.com/vk/schoolregistry/internal/ctxlog"
	"github.com/vk/schoolregistry/internal/registry"
)

// SafeBuffer is a thread-safe buffer for capturing output in tests.
type SafeBuffer struct {
	b  bytes.Buffer
	mu sync.Mutex
}

// Write implements the io.Writer interface for SafeBuffer.
func (b *SafeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.Write(p)
}

// String implements the fmt.Stringer interface for SafeBuffer.
func (b *SafeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.String()
}

// Input joins lines into the stdin a user would type, one answer per line.
func Input(lines ...string) io.Reader {
	if len(lines) == 0 {
		return strings.NewReader("")
	}
	return strings.NewReader(strings.Join(lines, "\n") + "\n")
}

// ConsoleResult holds the outcome of a scripted console session.
type ConsoleResult struct {
	Output    string
	LogOutput string
	Err       error
}

// RunConsole feeds the given lines to a console driving reg and returns
// everything it printed. Debug logs are captured separately and dumped when
// SCHOOLREGISTRY_TEST_LOGS=true.
func RunConsole(t *testing.T, reg *registry.Registry, exportPath string, lines ...string) *ConsoleResult {
	t.Helper()

	out := &SafeBuffer{}
	logs := &SafeBuffer{}
	logger := slog.New(slog.NewTextHandler(logs, &slog.HandlerOptions{Level: slog.LevelDebug}))
	ctx := ctxlog.WithLogger(context.Background(), logger)

	t.Cleanup(func() {
		if os.Getenv("SCHOOLREGISTRY_TEST_LOGS") == "true" {
			t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), logs.String())
		}
	})

	err := console.New(Input(lines...), out, reg, exportPath).Run(ctx)
	return &ConsoleResult{Output: out.String(), LogOutput: logs.String(), Err: err}
}
