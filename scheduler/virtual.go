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
	"sync"
	"time"
)

// Virtual is a scheduler with a clock that only moves when Advance() is
// called. Tasks run in the goroutine that calls Advance().
type Virtual struct {
	crit  sync.Mutex
	now   time.Time
	queue queue
	seq   uint64
}

// NewVirtual is the preferred method of initialisation for the Virtual type.
// The clock starts at the Unix epoch.
func NewVirtual() *Virtual {
	return &Virtual{
		now: time.Unix(0, 0),
	}
}

func (v *Virtual) add(t *Task) *Task {
	v.crit.Lock()
	defer v.crit.Unlock()
	v.queue.schedule(t, &v.seq)
	return t
}

// Every implements the Scheduler interface.
func (v *Virtual) Every(period time.Duration, f func()) *Task {
	return v.add(&Task{f: f, due: v.Now().Add(period), period: period})
}

// After implements the Scheduler interface.
func (v *Virtual) After(delay time.Duration, f func()) *Task {
	return v.add(&Task{f: f, due: v.Now().Add(delay)})
}

// Post implements the Scheduler interface. The function will run on the next
// call to Advance(), even if the duration is zero.
func (v *Virtual) Post(f func()) {
	v.add(&Task{f: f, due: v.Now()})
}

// Now implements the Scheduler interface.
func (v *Virtual) Now() time.Time {
	v.crit.Lock()
	defer v.crit.Unlock()
	return v.now
}

// Elapsed returns the time since the clock was created.
func (v *Virtual) Elapsed() time.Duration {
	return v.Now().Sub(time.Unix(0, 0))
}

// Advance the clock by the specified duration, running every task that falls
// due in that time. The clock is set to the due time of each task before it
// runs. Tasks scheduled by other tasks are run if they also fall due.
func (v *Virtual) Advance(d time.Duration) {
	v.crit.Lock()
	end := v.now.Add(d)
	v.crit.Unlock()

	for {
		v.crit.Lock()
		t := v.queue.next(end)
		if t == nil {
			v.now = end
			v.crit.Unlock()
			return
		}
		if t.due.After(v.now) {
			v.now = t.due
		}
		v.crit.Unlock()

		t.f()

		if t.period > 0 && !t.cancelled.Load() {
			t.due = t.due.Add(t.period)
			v.add(t)
		}
	}
}

// Pending returns the number of tasks waiting to run, not including tasks
// that have been cancelled but not yet discarded.
func (v *Virtual) Pending() int {
	v.crit.Lock()
	defer v.crit.Unlock()
	n := 0
	for _, t := range v.queue {
		if !t.cancelled.Load() {
			n++
		}
	}
	return n
}
