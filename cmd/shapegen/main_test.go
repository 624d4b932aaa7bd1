package main

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"honnef.co/go/polygen/shapectl"
)

func run(t *testing.T, args ...string) (stdout string, err error) {
	t.Helper()
	var out, errb bytes.Buffer
	cmd := newRootCmd(&out, &errb)
	cmd.SetArgs(args)
	err = cmd.Execute()
	return out.String(), err
}

func writeConfig(t *testing.T, dir, name, data string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))
	return path
}

const squareConfig = `
vertices_count: 4
sizes: [10]
export:
  behavior: editor
  targets: [walls/left]
`

func TestRender(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "square.yaml", squareConfig)
	out, err := run(t, "render", path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "<svg "))
	assert.Contains(t, out, `viewBox="-11 -11 22 22"`)
	assert.Contains(t, out, `d="M10,0 L0,-10 L-10,0 L0,10 Z"`)
	assert.Equal(t, 1, strings.Count(out, "<path"))
}

func TestRenderHulls(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, "ring.toml", "vertices_count = 4\nsizes = [10.0]\nring_ratio = 0.5\n")
	out, err := run(t, "render", "--hulls", path)
	require.NoError(t, err)
	assert.Equal(t, 4, strings.Count(out, "<path"))
}

func TestRenderOutline(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "outline.yaml", "ring_ratio: 0\n")
	out, err := run(t, "render", path)
	require.NoError(t, err)
	assert.Contains(t, out, `fill="none"`)
	assert.NotContains(t, out, "Z")
}

func TestRenderToFile(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, "square.yaml", squareConfig)
	svg := filepath.Join(dir, "square.svg")
	out, err := run(t, "render", "-o", svg, path)
	require.NoError(t, err)
	assert.Empty(t, out)
	b, err := os.ReadFile(svg)
	require.NoError(t, err)
	assert.Contains(t, string(b), "</svg>")
}

func TestRenderErrors(t *testing.T) {
	dir := t.TempDir()
	_, err := run(t, "render", filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)

	bad := writeConfig(t, dir, "bad.yaml", "vertices_count: 0\n")
	_, err = run(t, "render", bad)
	assert.Error(t, err)

	_, err = run(t, "render")
	assert.Error(t, err)
}

func TestExport(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, "square.yaml", squareConfig)
	outDir := filepath.Join(dir, "out")

	out, err := run(t, "export", "--dir", outDir, path)
	require.NoError(t, err)
	file := filepath.Join(outDir, "walls", "left.yaml")
	assert.Equal(t, file+"\n", out)

	doc, err := shapectl.ReadExportFile(file)
	require.NoError(t, err)
	assert.Len(t, doc.Points, 4)
}

func TestExportRuntimeDisabled(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, "square.yaml", squareConfig)
	outDir := filepath.Join(dir, "out")

	out, err := run(t, "export", "--dir", outDir, "--context", "runtime", path)
	require.NoError(t, err)
	assert.Empty(t, out)
	_, err = os.Stat(filepath.Join(outDir, "walls", "left.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = run(t, "export", "--context", "server", path)
	assert.Error(t, err)
}

func TestNum(t *testing.T) {
	tests := map[float64]string{
		0:        "0",
		-1e-17:   "0",
		10:       "10",
		-2.5:     "-2.5",
		1.23457:  "1.2346",
		100.0001: "100.0001",
	}
	for in, want := range tests {
		assert.Equal(t, want, num(in), "%g", in)
	}
}

func TestWatchLoop(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, "shape.yaml", squareConfig)
	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	cfg, err := shapectl.LoadConfig(path)
	require.NoError(t, err)
	c := shapectl.New(shapectl.Options{Logger: log})
	require.NoError(t, c.Apply(cfg))
	var events []shapectl.Event
	c.Subscribe(func(ev shapectl.Event) { events = append(events, ev) })

	fsEvents := make(chan fsnotify.Event)
	errs := make(chan error)
	ticks := make(chan time.Time)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error)
	w := &watchLoop{path: path, c: c, log: log}
	go func() { done <- w.run(ctx, fsEvents, errs, ticks) }()

	ticks <- time.Now()
	writeConfig(t, dir, "shape.yaml", "vertices_count: 6\nsizes: [10]\n")
	fsEvents <- fsnotify.Event{Name: filepath.Join(dir, "other.yaml"), Op: fsnotify.Write}
	fsEvents <- fsnotify.Event{Name: path, Op: fsnotify.Write}
	// The loop has finished reloading once it receives the error.
	errs <- assert.AnError
	// A broken file keeps the last good configuration.
	writeConfig(t, dir, "shape.yaml", "vertices_count: [\n")
	fsEvents <- fsnotify.Event{Name: path, Op: fsnotify.Write}
	ticks <- time.Now()
	ticks <- time.Now()
	cancel()
	require.NoError(t, <-done)

	require.Len(t, events, 2)
	assert.Equal(t, 4, events[0].Shape.Len())
	assert.Equal(t, 6, events[1].Shape.Len())
	assert.Equal(t, 6, c.Params().VerticesCount)
}

func TestWatchInterval(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, "square.yaml", squareConfig)
	for _, interval := range []string{"0s", "-1s"} {
		_, err := run(t, "watch", "--interval="+interval, path)
		assert.ErrorContains(t, err, "interval must be positive")
	}
}

func TestWatchLoopStopsWhenDisposed(t *testing.T) {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	c := shapectl.New(shapectl.Options{Logger: log, Context: shapectl.Runtime})
	c.SetExportBehavior(shapectl.ExportRuntime)
	c.SetAutoDispose(true)

	ticks := make(chan time.Time, 1)
	ticks <- time.Now()
	w := &watchLoop{path: "unused", c: c, log: log}
	require.NoError(t, w.run(context.Background(), nil, nil, ticks))
	assert.True(t, c.Disposed())
}
