package lab

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"go.uber.org/zap"
)

// Runner tracks named in-flight runs so callers can start experiments
// in the background, poll them, and cancel them. A failed run is
// reported through Wait, never retried.
type Runner struct {
	lab    *Lab
	logger *zap.Logger

	mu   sync.Mutex
	runs map[string]*activeRun
}

type activeRun struct {
	cancel context.CancelFunc
	done   chan struct{}

	result RunResult
	err    error
}

type RunStatus struct {
	RunID    string
	Finished bool
	Err      error
}

func NewRunner(lab *Lab, logger *zap.Logger) (*Runner, error) {
	if lab == nil {
		return nil, errors.New("lab is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Runner{
		lab:    lab,
		logger: logger,
		runs:   make(map[string]*activeRun),
	}, nil
}

// Start launches a run in the background and returns its ID. The ID
// must not collide with another tracked run.
func (r *Runner) Start(cfg RunConfig) (string, error) {
	if err := cfg.validate(); err != nil {
		return "", fmt.Errorf("invalid run config: %w", err)
	}
	if cfg.RunID == "" {
		return "", errors.New("run id is required for background runs")
	}

	ctx, cancel := context.WithCancel(context.Background())
	run := &activeRun{
		cancel: cancel,
		done:   make(chan struct{}),
	}

	r.mu.Lock()
	if _, exists := r.runs[cfg.RunID]; exists {
		r.mu.Unlock()
		cancel()
		return "", fmt.Errorf("run already tracked: %s", cfg.RunID)
	}
	r.runs[cfg.RunID] = run
	r.mu.Unlock()

	go func() {
		defer close(run.done)
		result, err := r.lab.Run(ctx, cfg)
		run.result = result
		run.err = err
		if err != nil && !errors.Is(err, context.Canceled) {
			r.logger.Warn("background run failed", zap.String("run_id", cfg.RunID), zap.Error(err))
		}
	}()
	return cfg.RunID, nil
}

// Status reports whether a tracked run has finished. The second return
// is false for unknown run IDs.
func (r *Runner) Status(runID string) (RunStatus, bool) {
	r.mu.Lock()
	run, ok := r.runs[runID]
	r.mu.Unlock()
	if !ok {
		return RunStatus{}, false
	}

	status := RunStatus{RunID: runID}
	select {
	case <-run.done:
		status.Finished = true
		status.Err = run.err
	default:
	}
	return status, true
}

// Wait blocks until the run finishes and returns its outcome, then
// stops tracking it.
func (r *Runner) Wait(runID string) (RunResult, error) {
	r.mu.Lock()
	run, ok := r.runs[runID]
	r.mu.Unlock()
	if !ok {
		return RunResult{}, fmt.Errorf("unknown run: %s", runID)
	}

	<-run.done

	r.mu.Lock()
	delete(r.runs, runID)
	r.mu.Unlock()
	return run.result, run.err
}

// Stop cancels a tracked run and waits for it to wind down. Stopping
// an unknown run is a no-op.
func (r *Runner) Stop(runID string) {
	r.mu.Lock()
	run, ok := r.runs[runID]
	r.mu.Unlock()
	if !ok {
		return
	}
	run.cancel()
	<-run.done
}

// StopAll cancels every tracked run and waits for all of them.
func (r *Runner) StopAll() {
	r.mu.Lock()
	runs := make([]*activeRun, 0, len(r.runs))
	for _, run := range r.runs {
		runs = append(runs, run)
	}
	r.mu.Unlock()

	for _, run := range runs {
		run.cancel()
	}
	for _, run := range runs {
		<-run.done
	}
}

// Active lists the IDs of tracked runs, sorted.
func (r *Runner) Active() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	ids := make([]string, 0, len(r.runs))
	for id := range r.runs {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
