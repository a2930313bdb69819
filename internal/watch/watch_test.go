package watch

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/davidlopes/tinge/internal/logging"
)

func TestRun_TriggersOnWrite(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "logo.png")
	require.NoError(t, os.WriteFile(path, []byte("v1"), 0o644))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var calls atomic.Int32
	done := make(chan error, 1)
	go func() {
		done <- Run(ctx, path, 50*time.Millisecond, logging.NewNop(), func(context.Context) error {
			calls.Add(1)
			return nil
		})
	}()

	// Give the watcher time to register before writing.
	time.Sleep(200 * time.Millisecond)
	require.NoError(t, os.WriteFile(path, []byte("v2"), 0o644))

	require.Eventually(t, func() bool { return calls.Load() >= 1 },
		3*time.Second, 20*time.Millisecond, "write did not trigger regeneration")

	cancel()
	assert.ErrorIs(t, <-done, context.Canceled)
}

func TestRun_DebouncesBursts(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "hero.jpg")
	require.NoError(t, os.WriteFile(path, []byte("v1"), 0o644))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var calls atomic.Int32
	go func() {
		_ = Run(ctx, path, 300*time.Millisecond, logging.NewNop(), func(context.Context) error {
			calls.Add(1)
			return nil
		})
	}()

	time.Sleep(200 * time.Millisecond)
	for i := 0; i < 5; i++ {
		require.NoError(t, os.WriteFile(path, []byte{byte(i)}, 0o644))
		time.Sleep(20 * time.Millisecond)
	}

	require.Eventually(t, func() bool { return calls.Load() >= 1 },
		3*time.Second, 20*time.Millisecond)
	// The burst collapses into one call; allow a little slack for separate
	// create/write event pairs.
	assert.LessOrEqual(t, calls.Load(), int32(2))
}

func TestRun_SeparateBurstsFireOncePerBurst(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "logo.png")
	require.NoError(t, os.WriteFile(path, []byte("v1"), 0o644))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var calls atomic.Int32
	go func() {
		_ = Run(ctx, path, 150*time.Millisecond, logging.NewNop(), func(context.Context) error {
			calls.Add(1)
			return nil
		})
	}()

	time.Sleep(200 * time.Millisecond)
	require.NoError(t, os.WriteFile(path, []byte("v2"), 0o644))
	require.Eventually(t, func() bool { return calls.Load() >= 1 },
		3*time.Second, 20*time.Millisecond)
	first := calls.Load()

	// A second burst after the timer already fired must reuse the timer
	// cleanly and collapse to a single additional call.
	for i := 0; i < 3; i++ {
		require.NoError(t, os.WriteFile(path, []byte{byte(i)}, 0o644))
		time.Sleep(20 * time.Millisecond)
	}
	require.Eventually(t, func() bool { return calls.Load() >= first+1 },
		3*time.Second, 20*time.Millisecond)
	time.Sleep(400 * time.Millisecond)
	assert.LessOrEqual(t, calls.Load(), first+2)
}

func TestRun_IgnoresOtherFiles(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "logo.png")
	require.NoError(t, os.WriteFile(path, []byte("v1"), 0o644))

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	var calls atomic.Int32
	go func() {
		_ = Run(ctx, path, 50*time.Millisecond, logging.NewNop(), func(context.Context) error {
			calls.Add(1)
			return nil
		})
	}()

	time.Sleep(200 * time.Millisecond)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.txt"), []byte("x"), 0o644))
	time.Sleep(400 * time.Millisecond)

	assert.Zero(t, calls.Load(), "unrelated file must not trigger")
}

func TestRun_MissingDirectory(t *testing.T) {
	t.Parallel()

	err := Run(context.Background(), filepath.Join(t.TempDir(), "ghost", "img.png"),
		time.Millisecond, logging.NewNop(), func(context.Context) error { return nil })
	require.Error(t, err)
}
