package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"sync"
	"syscall"
	"time"

	"github.com/Alia5/shuttlectl/device/shuttle"
	"github.com/Alia5/shuttlectl/internal/actions"
	"github.com/Alia5/shuttlectl/internal/configpaths"
	"github.com/Alia5/shuttlectl/internal/hiddev"
	"github.com/Alia5/shuttlectl/internal/log"
	"github.com/Alia5/shuttlectl/internal/util"

	"github.com/fsnotify/fsnotify"
	toml "github.com/pelletier/go-toml"
)

// Run tracks an attached shuttle device and delivers the mapped actions.
type Run struct {
	Model        string           `help:"Device model to track" enum:"shuttlexpress,shuttlepro" default:"shuttlepro" env:"SHUTTLECTL_MODEL"`
	DryRun       bool             `help:"Log actions instead of delivering them"`
	BindingsFile string           `help:"Bindings file watched for live changes (default: bindings.toml in the config dir)" env:"SHUTTLECTL_BINDINGS_FILE"`
	Bind         actions.Bindings `embed:"" prefix:"bind."`
}

// Run is called by Kong when the run command is executed.
func (r *Run) Run(logger *slog.Logger, rawLogger log.RawLogger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return r.Track(ctx, logger, rawLogger)
}

func (r *Run) Track(ctx context.Context, logger *slog.Logger, rawLogger log.RawLogger) error {
	model, ok := shuttle.LookupModel(r.Model)
	if !ok {
		return fmt.Errorf("unknown device model %q", r.Model)
	}

	// Device-not-found is fatal at startup; everything after this point
	// only ends the loop.
	info, err := hiddev.Find(model.VendorID, model.ProductID)
	if err != nil {
		return fmt.Errorf("locate %s: %w", model.Name, err)
	}
	logger.Info("found device", "model", model.Name, "product", info.Product, "path", info.Path)

	dev, err := info.Open()
	if err != nil {
		return fmt.Errorf("open %s: %w", model.Name, err)
	}

	executor := r.executor(logger)
	mapper := actions.NewMapper(r.Bind)
	tracker := shuttle.NewTracker()

	// Update and Map are read-modify-write over loop-confined state; the
	// mutex only exists because the bindings watcher swaps bindings from
	// its own goroutine.
	var mu sync.Mutex
	r.watchBindings(ctx, logger, func(b actions.Bindings) {
		mu.Lock()
		mapper.SetBindings(b)
		mu.Unlock()
	})

	if util.IsRunFromGUI() {
		go func() {
			time.Sleep(250 * time.Millisecond)
			util.HideConsoleWindow()
		}()
	}

	return hiddev.ReadLoop(ctx, dev, model.ReportSize, logger, func(data []byte) {
		rawLogger.Log(data)

		var rep shuttle.Report
		if err := rep.UnmarshalBinary(data); err != nil {
			return
		}

		mu.Lock()
		defer mu.Unlock()
		for _, ev := range tracker.Update(rep) {
			logger.Debug("event", "event", ev.String())
			for _, a := range mapper.Map(ev) {
				if err := executor.Execute(a); err != nil {
					logger.Error("action failed", "action", a.String(), "error", err)
				}
			}
		}
	})
}

func (r *Run) executor(logger *slog.Logger) actions.Executor {
	if r.DryRun {
		return &actions.LogExecutor{Logger: logger}
	}
	x := &actions.XdotoolExecutor{Logger: logger}
	if !x.Available() {
		logger.Warn("xdotool not found, actions will only be logged")
		return &actions.LogExecutor{Logger: logger}
	}
	return x
}

// watchBindings watches the bindings file and applies it whenever it is
// written. A missing file is fine; it can appear later.
func (r *Run) watchBindings(ctx context.Context, logger *slog.Logger, apply func(actions.Bindings)) {
	path := r.BindingsFile
	if path == "" {
		p, err := configpaths.DefaultBindingsPath()
		if err != nil {
			logger.Debug("no bindings file path available", "error", err)
			return
		}
		path = p
	}

	if b, err := r.loadBindings(path); err == nil {
		apply(b)
		logger.Info("loaded bindings", "path", path)
	} else if !os.IsNotExist(err) {
		logger.Warn("failed to load bindings", "path", path, "error", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		logger.Warn("bindings watcher unavailable", "error", err)
		return
	}
	// Watch the directory: editors replace files on save, which drops a
	// watch placed on the file itself.
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		logger.Warn("cannot watch bindings dir", "dir", filepath.Dir(path), "error", err)
		_ = watcher.Close()
		return
	}

	go func() {
		defer watcher.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-watcher.Events:
				if !ok {
					return
				}
				if ev.Name != path || ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
					continue
				}
				b, err := r.loadBindings(path)
				if err != nil {
					logger.Warn("failed to reload bindings", "path", path, "error", err)
					continue
				}
				apply(b)
				logger.Info("reloaded bindings", "path", path)
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				logger.Warn("bindings watcher error", "error", err)
			}
		}
	}()
}

// loadBindings overlays the file on top of the flag/config-provided
// bindings, so a partial file only overrides what it names.
func (r *Run) loadBindings(path string) (actions.Bindings, error) {
	b := r.Bind
	data, err := os.ReadFile(path)
	if err != nil {
		return b, err
	}
	if err := toml.Unmarshal(data, &b); err != nil {
		return r.Bind, fmt.Errorf("parse bindings: %w", err)
	}
	return b, nil
}
