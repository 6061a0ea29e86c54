package service

import (
	"github.com/rs/zerolog/log"
	"github.com/sourcegraph/conc"
)

// TaskSet runs fire-and-forget work on supervised goroutines. Tasks may
// outlive the command that spawned them, but their failures always end up
// in the log instead of vanishing.
type TaskSet struct {
	wg *conc.WaitGroup
}

func NewTaskSet() *TaskSet {
	return &TaskSet{wg: conc.NewWaitGroup()}
}

// Go schedules a detached task. Errors are logged under the task name.
func (t *TaskSet) Go(name string, fn func() error) {
	t.wg.Go(func() {
		if err := fn(); err != nil {
			log.Error().Err(err).Str("task", name).Msg("background task failed")
		}
	})
}

// Wait blocks until all detached tasks have finished. Called on shutdown.
func (t *TaskSet) Wait() {
	if recovered := t.wg.WaitAndRecover(); recovered != nil {
		log.Error().Err(recovered.AsError()).Msg("background task panicked")
	}
}
