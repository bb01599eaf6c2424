// Package task provides frame-driven cooperative tasks. A Task is ticked
// once per game update until it reports completion; there are no
// goroutines involved, so tasks may freely touch game state.
package task

// Task is advanced once per frame. Tick returns true once the task has
// finished; finished tasks are never ticked again by a Runner.
type Task interface {
	Tick() bool
}

// Stopper is implemented by tasks that can finish without succeeding.
// A Sequence ends early when a step finishes stopped.
type Stopper interface {
	Stopped() bool
}

type stop struct{}

func (stop) Tick() bool    { return true }
func (stop) Stopped() bool { return true }

// Stop returns a finished task that ends the Sequence it runs in.
func Stop() Task { return stop{} }

type sequence struct {
	steps   []func() Task
	current Task
	next    int
}

// Sequence runs steps strictly one after another. Each step is built
// lazily, only once the previous step has completed, so a step observes
// every side effect of the steps before it. A step constructor returning
// nil is treated as an already finished step. The sequence ends without
// building further steps once a step finishes stopped.
func Sequence(steps ...func() Task) Task {
	return &sequence{steps: steps}
}

func (s *sequence) Tick() bool {
	for {
		if s.current == nil {
			if s.next >= len(s.steps) {
				return true
			}
			s.current = s.steps[s.next]()
			s.next++
			if s.current == nil {
				continue
			}
		}
		if !s.current.Tick() {
			return false
		}
		if st, ok := s.current.(Stopper); ok && st.Stopped() {
			s.next = len(s.steps)
		}
		s.current = nil
	}
}

// Runner owns a set of live tasks and ticks them in submission order.
type Runner struct {
	tasks []Task
}

func NewRunner() *Runner {
	return &Runner{}
}

// Go schedules t. It is first ticked on the next call to Update.
func (r *Runner) Go(t Task) {
	if t == nil {
		return
	}
	r.tasks = append(r.tasks, t)
}

// Update ticks every scheduled task once and drops the finished ones.
// Tasks scheduled from inside a tick wait for the next Update.
func (r *Runner) Update() {
	pending := r.tasks
	r.tasks = nil
	live := pending[:0]
	for _, t := range pending {
		if !t.Tick() {
			live = append(live, t)
		}
	}
	// r.tasks now only holds tasks added by the ticks above
	r.tasks = append(live, r.tasks...)
}

// Len reports the number of unfinished tasks.
func (r *Runner) Len() int { return len(r.tasks) }
