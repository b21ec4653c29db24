// Package schedule runs delayed and repeating callbacks on the game loop.
//
// The scheduler has no goroutines of its own: the owner calls Advance once
// per frame with the elapsed time, and due callbacks run synchronously on
// the caller's goroutine in due-time order. Callbacks may schedule or
// cancel other tasks, including themselves.
package schedule

import (
	"log"
	"time"
)

// Handle identifies a scheduled task. The zero Handle means "no task" and
// is safe to pass to Cancel.
type Handle uint64

type task struct {
	id       Handle
	due      time.Duration
	interval time.Duration // 0 for one-shot tasks
	seq      uint64
	fn       func()
}

// Scheduler is a frame-driven timer queue. It is not safe for concurrent
// use; everything runs on the game loop goroutine.
type Scheduler struct {
	now    time.Duration
	nextID uint64
	seq    uint64
	tasks  map[Handle]*task
}

// New returns an empty scheduler at time zero.
func New() *Scheduler {
	return &Scheduler{
		nextID: 1,
		tasks:  make(map[Handle]*task),
	}
}

// Now returns the scheduler's elapsed time.
func (s *Scheduler) Now() time.Duration {
	return s.now
}

// Len returns the number of pending tasks.
func (s *Scheduler) Len() int {
	return len(s.tasks)
}

// After runs fn once, d from now. A negative d is treated as zero.
func (s *Scheduler) After(d time.Duration, fn func()) Handle {
	if d < 0 {
		d = 0
	}
	return s.add(d, 0, fn)
}

// Every runs fn every interval, first firing one interval from now.
// A non-positive interval schedules nothing and returns the zero Handle.
func (s *Scheduler) Every(interval time.Duration, fn func()) Handle {
	if interval <= 0 {
		log.Printf("[Scheduler] Warning: refusing repeating task with interval %v", interval)
		return 0
	}
	return s.add(interval, interval, fn)
}

func (s *Scheduler) add(delay, interval time.Duration, fn func()) Handle {
	id := Handle(s.nextID)
	s.nextID++
	s.seq++
	s.tasks[id] = &task{
		id:       id,
		due:      s.now + delay,
		interval: interval,
		seq:      s.seq,
		fn:       fn,
	}
	return id
}

// Cancel stops h from firing again. It reports whether a pending task was
// removed; cancelling the zero Handle or a finished task is a no-op.
func (s *Scheduler) Cancel(h Handle) bool {
	if h == 0 {
		return false
	}
	if _, ok := s.tasks[h]; !ok {
		return false
	}
	delete(s.tasks, h)
	return true
}

// Active reports whether h is still pending.
func (s *Scheduler) Active(h Handle) bool {
	_, ok := s.tasks[h]
	return ok
}

// Advance moves time forward by dt and runs every callback that falls due,
// earliest first. Repeating tasks that fall due several times within dt
// fire once per interval.
func (s *Scheduler) Advance(dt time.Duration) {
	if dt < 0 {
		return
	}
	target := s.now + dt

	for {
		next := s.nextDue(target)
		if next == nil {
			break
		}

		s.now = next.due
		if next.interval > 0 {
			next.due += next.interval
			s.seq++
			next.seq = s.seq
		} else {
			delete(s.tasks, next.id)
		}
		next.fn()
	}

	s.now = target
}

// nextDue finds the earliest task due at or before limit. Ties go to the
// task scheduled first.
func (s *Scheduler) nextDue(limit time.Duration) *task {
	var best *task
	for _, t := range s.tasks {
		if t.due > limit {
			continue
		}
		if best == nil || t.due < best.due || (t.due == best.due && t.seq < best.seq) {
			best = t
		}
	}
	return best
}
