package watch

import (
	"context"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.scnd.dev/open/rpcgen/command/rpcgen/procedure/pipeline"
	"go.scnd.dev/open/rpcgen/command/rpcgen/procedure/tree"
	"go.scnd.dev/open/rpcgen/package/span"
)

type Watcher struct {
	Pipeline *pipeline.Pipeline
	Debounce time.Duration
	Bindings bool
}

func NewWatcher(pipeline *pipeline.Pipeline, debounce time.Duration, bindings bool) *Watcher {
	return &Watcher{
		Pipeline: pipeline,
		Debounce: debounce,
		Bindings: bindings,
	}
}

// Relevant reports whether a change of path calls for regeneration, and whether the bindings
// have to be regenerated first.
func (r *Watcher) Relevant(path string) (bool, bool) {
	classifier := r.Pipeline.Aggregator.Classifier
	if classifier.IsArtifact(path) {
		return false, false
	}

	// * the generator rewrites the bindings file itself
	if r.Bindings && path == r.Pipeline.Config.BindingsPath() {
		return false, false
	}

	switch classifier.Classify(path) {
	case tree.KindBinding:
		return true, false
	case tree.KindHandler:
		return true, r.Bindings
	}
	if r.Bindings && filepath.Ext(path) == ".rs" {
		return true, true
	}

	return false, false
}

func (r *Watcher) Watch(ctx context.Context) error {
	notify, err := fsnotify.NewWatcher()
	if err != nil {
		return span.NewError(nil, "unable to create file watcher", err)
	}
	defer notify.Close()

	// * watch every directory outside the artifact directory
	directory, err := tree.New(r.Pipeline.Config.RootPath())
	if err != nil {
		return err
	}
	for _, path := range directory.Paths() {
		r.add(notify, path)
	}

	r.generate(ctx, r.Bindings)
	log.Printf("watching %s", r.Pipeline.Config.RootPath())

	timer := time.NewTimer(r.Debounce)
	timer.Stop()
	bindings := false
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-notify.Events:
			if !ok {
				return nil
			}
			r.Pipeline.Reader.Forget(event.Name)
			if event.Has(fsnotify.Create) {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					r.add(notify, event.Name)
				}
			}

			relevant, rebind := r.Relevant(event.Name)
			if !relevant {
				continue
			}
			bindings = bindings || rebind
			timer.Reset(r.Debounce)
		case err, ok := <-notify.Errors:
			if !ok {
				return nil
			}
			log.Printf("warning: file watcher error: %v", err)
		case <-timer.C:
			r.generate(ctx, bindings)
			bindings = false
		}
	}
}

func (r *Watcher) add(notify *fsnotify.Watcher, path string) {
	if r.Pipeline.Aggregator.Classifier.IsArtifact(path + string(filepath.Separator)) {
		return
	}
	if err := notify.Add(path); err != nil {
		log.Printf("warning: unable to watch %s: %v", path, err)
	}
}

func (r *Watcher) generate(ctx context.Context, bindings bool) {
	if _, err := r.Pipeline.Generate(ctx, bindings); err != nil {
		log.Printf("warning: generation failed: %v", err)
	}
}
