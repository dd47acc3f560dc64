//go:build cgo

package z3

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
)

// lockedBuffer tolerates finalizers logging from their own goroutine.
type lockedBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *lockedBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *lockedBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestInteractionLog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "z3.log")
	if !OpenLog(path) {
		t.Fatalf("failed to open log at %s", path)
	}
	t.Cleanup(CloseLog)
	if !IsLogOpen() {
		t.Fatalf("expected log to be open")
	}

	AppendLog("marker-from-test")
	ctx := newTestContext(t)
	_ = must(ctx.MkIntConst("logged"))
	CloseLog()
	if IsLogOpen() {
		t.Fatalf("expected log to be closed")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !bytes.Contains(data, []byte("marker-from-test")) {
		t.Fatalf("expected appended marker in log")
	}
}

func TestAppendLogRequiresOpenLog(t *testing.T) {
	if IsLogOpen() {
		t.Skip("interaction log already open")
	}
	expectContractError(t, func() { AppendLog("nothing") })
	if gatePoisoned() {
		t.Fatalf("AppendLog on a closed log must not poison the gate")
	}
}

func TestAppendLogRacingCloseLog(t *testing.T) {
	if IsLogOpen() {
		t.Skip("interaction log already open")
	}
	path := filepath.Join(t.TempDir(), "z3.log")
	t.Cleanup(CloseLog)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < 100; i++ {
			OpenLog(path)
			CloseLog()
		}
	}()
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				func() {
					defer func() {
						if r := recover(); r != nil {
							if _, ok := r.(*ContractError); !ok {
								panic(r)
							}
						}
					}()
					AppendLog("racing")
				}()
			}
		}()
	}
	wg.Wait()

	if gatePoisoned() {
		t.Fatalf("racing appends must not poison the gate")
	}
}

func TestSetLoggerTracesHandles(t *testing.T) {
	var buf lockedBuffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { SetLogger(nil) })

	ctx := newTestContext(t)
	x := must(ctx.MkIntConst("x"))
	x.Close()

	out := buf.String()
	for _, want := range []string{"z3: new context", "z3: acquire", "z3: release", "kind=ast"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in log output:\n%s", want, out)
		}
	}
}

func TestVersion(t *testing.T) {
	v := Version()
	if strings.Count(v, ".") != 3 {
		t.Fatalf("expected major.minor.build.rev, got %q", v)
	}
}
