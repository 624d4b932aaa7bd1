package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"honnef.co/go/polygen/shapectl"
)

func (a *app) watchCmd() *cobra.Command {
	var (
		dir      string
		interval time.Duration
		execCtx  = shapectl.Editor
	)
	cmd := &cobra.Command{
		Use:   "watch <config>",
		Short: "Export a shape whenever its configuration changes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if interval <= 0 {
				return fmt.Errorf("interval must be positive, got %s", interval)
			}
			path, err := filepath.Abs(args[0])
			if err != nil {
				return err
			}
			c, err := a.controller(path, shapectl.Options{
				Context:  execCtx,
				Resolver: shapectl.DirResolver{Dir: dir},
			})
			if err != nil {
				return err
			}

			watcher, err := fsnotify.NewWatcher()
			if err != nil {
				return err
			}
			defer watcher.Close()
			// Watch the directory, as editors often replace files instead
			// of writing to them.
			if err := watcher.Add(filepath.Dir(path)); err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()
			ticker := time.NewTicker(interval)
			defer ticker.Stop()

			a.log.Info("watching", "config", path, "dir", dir)
			w := &watchLoop{path: path, c: c, log: a.log}
			return w.run(ctx, watcher.Events, watcher.Errors, ticker.C)
		},
	}
	cmd.Flags().StringVarP(&dir, "dir", "d", ".", "output `directory`")
	cmd.Flags().DurationVar(&interval, "interval", 100*time.Millisecond, "time between flushes")
	cmd.Flags().Var(contextFlag{&execCtx}, "context", "execution context, editor or runtime")
	return cmd
}

// watchLoop applies changes of a configuration file to a controller and
// flushes the controller on every tick. All work happens on the goroutine
// calling run.
type watchLoop struct {
	path string
	c    *shapectl.Controller
	log  *slog.Logger
}

func (w *watchLoop) run(ctx context.Context, events <-chan fsnotify.Event, errs <-chan error, ticks <-chan time.Time) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != w.path {
				continue
			}
			if ev.Op&fsnotify.Write == fsnotify.Write || ev.Op&fsnotify.Create == fsnotify.Create {
				w.reload()
			}
		case err, ok := <-errs:
			if !ok {
				return nil
			}
			w.log.Warn("watcher error", "err", err)
		case <-ticks:
			if err := w.c.Tick(); err != nil {
				w.log.Error("flush failed", "err", err)
			}
			if w.c.Disposed() {
				w.log.Info("controller disposed, stopping")
				return nil
			}
		}
	}
}

func (w *watchLoop) reload() {
	cfg, err := shapectl.LoadConfig(w.path)
	if err != nil {
		w.log.Error("cannot load config", "err", err)
		return
	}
	if err := w.c.Apply(cfg); err != nil {
		w.log.Error("invalid config", "err", err)
		return
	}
	w.log.Debug("reloaded config", "config", w.path)
}
