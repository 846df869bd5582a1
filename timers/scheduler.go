// Package timers runs delayed callbacks on simulation time.
//
// Callbacks never run on their own goroutine. The owning system calls
// Advance once per tick and due callbacks fire in (fireAt, scheduling order).
// A callback scheduled on behalf of an entity is dropped if that entity is
// no longer alive when it comes due.
package timers

import (
	"container/heap"

	"github.com/yohamta/donburi"
)

// Handle identifies a scheduled callback so it can be cancelled.
type Handle uint64

type task struct {
	handle Handle
	owner  donburi.Entity
	owned  bool
	fireAt float64
	fn     func()
	index  int
}

type taskQueue []*task

func (q taskQueue) Len() int { return len(q) }

func (q taskQueue) Less(i, j int) bool {
	if q[i].fireAt == q[j].fireAt {
		return q[i].handle < q[j].handle
	}
	return q[i].fireAt < q[j].fireAt
}

func (q taskQueue) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
	q[i].index = i
	q[j].index = j
}

func (q *taskQueue) Push(x any) {
	t := x.(*task)
	t.index = len(*q)
	*q = append(*q, t)
}

func (q *taskQueue) Pop() any {
	old := *q
	n := len(old)
	t := old[n-1]
	old[n-1] = nil
	t.index = -1
	*q = old[:n-1]
	return t
}

// Scheduler is a table of pending callbacks ordered by fire time.
// It is not safe for concurrent use.
type Scheduler struct {
	queue   taskQueue
	byID    map[Handle]*task
	byOwner map[donburi.Entity]map[Handle]struct{}
	next    Handle
}

func NewScheduler() *Scheduler {
	return &Scheduler{
		byID:    make(map[Handle]*task),
		byOwner: make(map[donburi.Entity]map[Handle]struct{}),
	}
}

// Schedule runs fn on the first Advance whose time is >= at.
func (s *Scheduler) Schedule(at float64, fn func()) Handle {
	return s.push(&task{fireAt: at, fn: fn})
}

// ScheduleFor is Schedule bound to owner's lifetime.
func (s *Scheduler) ScheduleFor(owner donburi.Entity, at float64, fn func()) Handle {
	h := s.push(&task{fireAt: at, fn: fn, owner: owner, owned: true})
	set, ok := s.byOwner[owner]
	if !ok {
		set = make(map[Handle]struct{})
		s.byOwner[owner] = set
	}
	set[h] = struct{}{}
	return h
}

func (s *Scheduler) push(t *task) Handle {
	s.next++
	t.handle = s.next
	heap.Push(&s.queue, t)
	s.byID[t.handle] = t
	return t.handle
}

// Cancel removes a pending callback. Unknown or already fired handles are ignored.
func (s *Scheduler) Cancel(h Handle) bool {
	t, ok := s.byID[h]
	if !ok {
		return false
	}
	heap.Remove(&s.queue, t.index)
	s.forget(t)
	return true
}

// CancelOwner drops every pending callback scheduled for owner.
func (s *Scheduler) CancelOwner(owner donburi.Entity) int {
	set := s.byOwner[owner]
	n := 0
	for h := range set {
		if s.Cancel(h) {
			n++
		}
	}
	delete(s.byOwner, owner)
	return n
}

// Advance fires every callback due at or before now. alive is consulted for
// owned callbacks; a nil alive treats every owner as alive. Callbacks may
// schedule further work; anything due by now also fires in this call.
func (s *Scheduler) Advance(now float64, alive func(donburi.Entity) bool) int {
	fired := 0
	for len(s.queue) > 0 && s.queue[0].fireAt <= now {
		t := heap.Pop(&s.queue).(*task)
		s.forget(t)
		if t.owned && alive != nil && !alive(t.owner) {
			continue
		}
		t.fn()
		fired++
	}
	return fired
}

// Pending returns the number of callbacks not yet fired or cancelled.
func (s *Scheduler) Pending() int {
	return len(s.queue)
}

// PendingFor returns the number of callbacks still pending for owner.
func (s *Scheduler) PendingFor(owner donburi.Entity) int {
	return len(s.byOwner[owner])
}

func (s *Scheduler) forget(t *task) {
	delete(s.byID, t.handle)
	if !t.owned {
		return
	}
	if set, ok := s.byOwner[t.owner]; ok {
		delete(set, t.handle)
		if len(set) == 0 {
			delete(s.byOwner, t.owner)
		}
	}
}
