package msbuild

import (
	"fmt"
	"os"
	"sort"
	"sync"
)

// processRegistry tracks in-flight build processes by build ID so the
// calling transport can cancel them. Entries are removed when the
// build completes.
type processRegistry struct {
	mu    sync.Mutex
	procs map[string]*os.Process
}

func newProcessRegistry() *processRegistry {
	return &processRegistry{
		procs: make(map[string]*os.Process),
	}
}

func (r *processRegistry) register(buildID string, proc *os.Process) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.procs[buildID] = proc
}

func (r *processRegistry) remove(buildID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.procs, buildID)
}

// cancel kills the process registered under buildID
func (r *processRegistry) cancel(buildID string) error {
	r.mu.Lock()
	proc, ok := r.procs[buildID]
	r.mu.Unlock()

	if !ok {
		return fmt.Errorf("no active build with id %s", buildID)
	}

	return proc.Kill()
}

// active returns the registered build IDs in stable order
func (r *processRegistry) active() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	ids := make([]string, 0, len(r.procs))
	for id := range r.procs {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}
