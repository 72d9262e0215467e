// This file is part of Gopher99.
//
// Gopher99 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher99 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher99.  If not, see <https://www.gnu.org/licenses/>.

package scheduler

import (
	"container/heap"
	"sync/atomic"
	"time"
)

// Scheduler is implemented by Loop and Virtual.
type Scheduler interface {
	// Every schedules f to run repeatedly. The first run happens one period
	// from now
	Every(period time.Duration, f func()) *Task

	// After schedules f to run once after the delay
	After(delay time.Duration, f func()) *Task

	// Post schedules f to run as soon as possible
	Post(f func())

	// Now returns the current time according to the scheduler
	Now() time.Time
}

// Task is a scheduled callback. A nil Task is valid and cancelling it has no
// effect.
type Task struct {
	f      func()
	due    time.Time
	period time.Duration
	seq    uint64
	index  int

	cancelled atomic.Bool
}

// Cancel the task. It is safe to cancel a task more than once and to cancel
// a task that has already run.
func (t *Task) Cancel() {
	if t == nil {
		return
	}
	t.cancelled.Store(true)
}

// Cancelled returns true if Cancel() has been called.
func (t *Task) Cancelled() bool {
	if t == nil {
		return true
	}
	return t.cancelled.Load()
}

// Periodic returns true if the task was created with Every().
func (t *Task) Periodic() bool {
	return t != nil && t.period > 0
}

// queue of tasks ordered by due time. tasks with the same due time are
// ordered by the sequence in which they were scheduled.
type queue []*Task

func (q queue) Len() int {
	return len(q)
}

func (q queue) Less(i, j int) bool {
	if q[i].due.Equal(q[j].due) {
		return q[i].seq < q[j].seq
	}
	return q[i].due.Before(q[j].due)
}

func (q queue) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
	q[i].index = i
	q[j].index = j
}

func (q *queue) Push(x any) {
	t := x.(*Task)
	t.index = len(*q)
	*q = append(*q, t)
}

func (q *queue) Pop() any {
	old := *q
	n := len(old)
	t := old[n-1]
	old[n-1] = nil
	t.index = -1
	*q = old[:n-1]
	return t
}

// schedule adds the task to the queue with the next sequence number
func (q *queue) schedule(t *Task, seq *uint64) {
	*seq++
	t.seq = *seq
	heap.Push(q, t)
}

// next removes and returns the next task if it is due at or before the
// specified time. cancelled tasks are discarded.
func (q *queue) next(now time.Time) *Task {
	for q.Len() > 0 {
		t := (*q)[0]
		if t.cancelled.Load() {
			heap.Pop(q)
			continue
		}
		if t.due.After(now) {
			return nil
		}
		return heap.Pop(q).(*Task)
	}
	return nil
}

// peek returns the due time of the next task that hasn't been cancelled
func (q *queue) peek() (time.Time, bool) {
	for q.Len() > 0 {
		t := (*q)[0]
		if t.cancelled.Load() {
			heap.Pop(q)
			continue
		}
		return t.due, true
	}
	return time.Time{}, false
}
