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
	"context"
	"sync"
	"time"
)

// Loop runs tasks in real-time. Tasks are only run while the Run() function
// is active.
type Loop struct {
	crit  sync.Mutex
	queue queue
	seq   uint64

	// signals the Run() function that the queue has changed
	wake chan struct{}
}

// NewLoop is the preferred method of initialisation for the Loop type.
func NewLoop() *Loop {
	return &Loop{
		wake: make(chan struct{}, 1),
	}
}

func (l *Loop) add(t *Task) *Task {
	l.crit.Lock()
	l.queue.schedule(t, &l.seq)
	l.crit.Unlock()

	select {
	case l.wake <- struct{}{}:
	default:
	}

	return t
}

// Every implements the Scheduler interface.
func (l *Loop) Every(period time.Duration, f func()) *Task {
	return l.add(&Task{f: f, due: time.Now().Add(period), period: period})
}

// After implements the Scheduler interface.
func (l *Loop) After(delay time.Duration, f func()) *Task {
	return l.add(&Task{f: f, due: time.Now().Add(delay)})
}

// Post implements the Scheduler interface.
func (l *Loop) Post(f func()) {
	l.add(&Task{f: f, due: time.Now()})
}

// Now implements the Scheduler interface.
func (l *Loop) Now() time.Time {
	return time.Now()
}

// Run tasks as they become due. Returns when the context is done.
//
// A periodic task that runs late is not run again to catch up. The next run
// is scheduled one period from the time it should have run or, if that time
// has also passed, immediately.
func (l *Loop) Run(ctx context.Context) error {
	timer := time.NewTimer(time.Hour)
	defer timer.Stop()

	for {
		l.crit.Lock()
		now := time.Now()
		t := l.queue.next(now)
		due, pending := l.queue.peek()
		l.crit.Unlock()

		if t != nil {
			t.f()
			if t.period > 0 && !t.cancelled.Load() {
				t.due = t.due.Add(t.period)
				if n := time.Now(); t.due.Before(n) {
					t.due = n
				}
				l.add(t)
			}

			// check context between tasks
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			continue
		}

		wait := time.Hour
		if pending {
			wait = max(due.Sub(now), 0)
		}

		if !timer.Stop() {
			select {
			case <-timer.C:
			default:
			}
		}
		timer.Reset(wait)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-l.wake:
		case <-timer.C:
		}
	}
}
