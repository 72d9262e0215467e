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

package scheduler_test

import (
	"context"
	"testing"
	"time"

	"github.com/jetsetilly/gopher99/scheduler"
	"github.com/jetsetilly/gopher99/test"
)

func TestVirtualOrder(t *testing.T) {
	v := scheduler.NewVirtual()

	var order []string
	v.After(30*time.Millisecond, func() { order = append(order, "c") })
	v.After(10*time.Millisecond, func() { order = append(order, "a") })
	v.After(10*time.Millisecond, func() { order = append(order, "b") })

	v.Advance(5 * time.Millisecond)
	test.ExpectEquality(t, len(order), 0)

	v.Advance(100 * time.Millisecond)
	test.DemandEquality(t, len(order), 3)
	test.ExpectEquality(t, order[0], "a")
	test.ExpectEquality(t, order[1], "b")
	test.ExpectEquality(t, order[2], "c")
	test.ExpectEquality(t, v.Elapsed(), 105*time.Millisecond)
}

func TestVirtualPeriodic(t *testing.T) {
	v := scheduler.NewVirtual()

	var count int
	task := v.Every(17*time.Millisecond, func() { count++ })
	test.ExpectSuccess(t, task.Periodic())

	v.Advance(170 * time.Millisecond)
	test.ExpectEquality(t, count, 10)

	task.Cancel()
	v.Advance(170 * time.Millisecond)
	test.ExpectEquality(t, count, 10)
	test.ExpectEquality(t, v.Pending(), 0)
}

func TestVirtualCancel(t *testing.T) {
	v := scheduler.NewVirtual()

	var ran bool
	task := v.After(time.Second, func() { ran = true })
	task.Cancel()
	task.Cancel()
	v.Advance(2 * time.Second)
	test.ExpectFailure(t, ran)

	// cancelling a nil task is allowed
	var nilTask *scheduler.Task
	nilTask.Cancel()
	test.ExpectSuccess(t, nilTask.Cancelled())
}

// tasks scheduled by other tasks run in the same call to Advance() if they
// fall due
func TestVirtualChained(t *testing.T) {
	v := scheduler.NewVirtual()

	var times []time.Duration
	v.After(100*time.Millisecond, func() {
		times = append(times, v.Elapsed())
		v.After(100*time.Millisecond, func() {
			times = append(times, v.Elapsed())
		})
	})

	v.Advance(time.Second)
	test.DemandEquality(t, len(times), 2)
	test.ExpectEquality(t, times[0], 100*time.Millisecond)
	test.ExpectEquality(t, times[1], 200*time.Millisecond)
}

func TestLoop(t *testing.T) {
	l := scheduler.NewLoop()
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	var count int
	var task *scheduler.Task
	task = l.Every(time.Millisecond, func() {
		count++
		if count == 5 {
			task.Cancel()
			l.Post(func() { close(done) })
		}
	})

	errs := make(chan error, 1)
	go func() {
		errs <- l.Run(ctx)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatalf("loop did not run tasks")
	}

	cancel()
	test.ExpectEquality(t, <-errs, context.Canceled)
	test.ExpectEquality(t, count, 5)
}
