// Package batch turns a directory of parameter records into exported
// logs using a worker pool. Each record is parsed, generated, surfaced
// and exported independently; a failure is recorded in its Result and the
// rest of the batch keeps going.
package batch

import (
	"errors"
	"math/rand"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/logforge/internal/export"
	"github.com/Faultbox/logforge/internal/surface"
	"github.com/Faultbox/logforge/internal/trunk"
)

// ErrNoParamFiles means the parameter directory held no records at all.
var ErrNoParamFiles = errors.New("no parameter files found")

// Config holds all shared resources for a batch run.
type Config struct {
	TextureRoot    string
	SceneDir       string
	InterchangeDir string
	Seed           int64 // bark noise seed, shared by every item
	Workers        int   // 0 means one per CPU
	Log            *zap.Logger
}

// Result holds the outcome of processing one parameter record.
type Result struct {
	File      string
	Name      string
	Artifacts export.Artifacts
	Duration  time.Duration
	Err       error
}

// Summary tallies a finished run.
type Summary struct {
	Total     int
	Succeeded int
	Failed    int
	Elapsed   time.Duration
}

// ListParamFiles returns the *.json records in dir sorted by name. An
// empty directory is an error, a batch with nothing to do is a
// misconfiguration.
func ListParamFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, &surface.ExternalResourceError{Path: dir, Err: err}
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		files = append(files, filepath.Join(dir, entry.Name()))
	}
	if len(files) == 0 {
		return nil, &surface.ExternalResourceError{Path: dir, Err: ErrNoParamFiles}
	}

	sort.Strings(files)
	return files, nil
}

// Run processes every parameter file using a worker pool and returns one
// Result per file, in input order. The texture library is scanned once up
// front; a missing library fails the whole run since no item could
// succeed without it.
func Run(cfg Config, files []string) ([]Result, error) {
	log := cfg.Log
	if log == nil {
		log = zap.NewNop()
	}
	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	lib, err := surface.ScanLibrary(cfg.TextureRoot)
	if err != nil {
		return nil, err
	}

	total := len(files)
	results := make([]Result, total)
	var processed atomic.Int64

	start := time.Now()

	// Progress reporter
	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(2 * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				p := processed.Load()
				if p > 0 {
					elapsed := time.Since(start).Seconds()
					log.Info("batch progress",
						zap.Int64("done", p),
						zap.Int("total", total),
						zap.Float64("items_per_sec", float64(p)/elapsed))
				}
			}
		}
	}()

	// Worker pool
	fileChan := make(chan int, workers*2)
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(worker int) {
			defer wg.Done()
			noise := trunk.NewValueNoise(cfg.Seed)
			rng := rand.New(rand.NewSource(time.Now().UnixNano() + int64(worker)))
			for idx := range fileChan {
				results[idx] = processFile(lib, noise, rng, cfg, files[idx])
				if err := results[idx].Err; err != nil {
					log.Warn("item failed",
						zap.String("file", filepath.Base(files[idx])),
						zap.Error(err))
				} else {
					log.Debug("item done",
						zap.String("name", results[idx].Name),
						zap.Duration("took", results[idx].Duration))
				}
				processed.Add(1)
			}
		}(w)
	}

	// Send work
	for i := range files {
		fileChan <- i
	}
	close(fileChan)

	wg.Wait()
	close(done)

	return results, nil
}

// processFile runs the full pipeline for one record: parse, generate,
// resolve textures, export.
func processFile(lib *surface.Library, noise trunk.Noise3, rng *rand.Rand, cfg Config, file string) Result {
	start := time.Now()
	res := Result{File: file}

	params, err := trunk.ParseFile(file)
	if err != nil {
		res.Err = err
		res.Duration = time.Since(start)
		return res
	}
	res.Name = params.Name

	log, err := trunk.Generate(params, noise)
	if err != nil {
		res.Err = err
		res.Duration = time.Since(start)
		return res
	}

	sel, err := surface.ParseSelection(params.Texture)
	if err != nil {
		res.Err = err
		res.Duration = time.Since(start)
		return res
	}
	set, err := sel.Resolve(lib, rng)
	if err != nil {
		res.Err = err
		res.Duration = time.Since(start)
		return res
	}

	exporter := &export.Exporter{
		SceneDir:       cfg.SceneDir,
		InterchangeDir: cfg.InterchangeDir,
	}
	artifacts, err := exporter.Export(log, surface.NewSurfacing(params, set))
	if err != nil {
		res.Err = err
		res.Duration = time.Since(start)
		return res
	}

	res.Artifacts = artifacts
	res.Duration = time.Since(start)
	return res
}

// Summarize tallies the results of a finished run.
func Summarize(results []Result, elapsed time.Duration) Summary {
	s := Summary{Total: len(results), Elapsed: elapsed}
	for _, r := range results {
		if r.Err != nil {
			s.Failed++
		} else {
			s.Succeeded++
		}
	}
	return s
}
