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

package notifications

import (
	"fmt"
	"sync"

	"github.com/jetsetilly/gopher99/logger"
)

// Notice describes events that change the state of the emulation as seen by
// the host application.
type Notice string

// List of defined notifications.
const (
	// the console has been created. the Handle field of the Event is the
	// console instance
	NotifyReady Notice = "NotifyReady"

	// the real-time frame loop has started or stopped
	NotifyStarted Notice = "NotifyStarted"
	NotifyStopped Notice = "NotifyStopped"

	// a screenshot has been taken. the Data field contains the image
	NotifyScreenshot Notice = "NotifyScreenshot"

	// a disk image has been created or changed. the Image field names the
	// image
	NotifyDiskImageChanged Notice = "NotifyDiskImageChanged"

	// the disk image in a drive has changed. the Drive and Image fields are
	// both set
	NotifyDiskDriveChanged Notice = "NotifyDiskDriveChanged"

	// cassette loading from a sound file has started or ended
	NotifyTapeLoadStarted Notice = "NotifyTapeLoadStarted"
	NotifyTapeLoadEnded   Notice = "NotifyTapeLoadEnded"
)

// Event is a notice and any data associated with it.
type Event struct {
	Notice Notice
	Handle any
	Data   []byte
	Drive  string
	Image  string
}

func (ev Event) String() string {
	switch ev.Notice {
	case NotifyDiskImageChanged:
		return fmt.Sprintf("%s (%s)", ev.Notice, ev.Image)
	case NotifyDiskDriveChanged:
		return fmt.Sprintf("%s (%s: %s)", ev.Notice, ev.Drive, ev.Image)
	case NotifyScreenshot:
		return fmt.Sprintf("%s (%d bytes)", ev.Notice, len(ev.Data))
	}
	return string(ev.Notice)
}

// Notify is implemented by anything that wants to receive events from the
// emulation.
type Notify interface {
	Notify(ev Event) error
}

// NotifyFunc allows a plain function to be used as a Notify implementation.
type NotifyFunc func(ev Event) error

// Notify implements the Notify interface.
func (f NotifyFunc) Notify(ev Event) error {
	return f(ev)
}

// Dispatcher sends events to any number of subscribers. Delivery is
// synchronous and in the order in which events are published. Subscribers are
// called in the order in which they subscribed.
//
// A nil Dispatcher is valid and discards all events.
type Dispatcher struct {
	crit   sync.Mutex
	nextID int
	subs   []subscriber
}

type subscriber struct {
	id int
	n  Notify
}

// NewDispatcher is the preferred method of initialisation for the Dispatcher type.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{}
}

// Subscribe adds a new subscriber. The returned function removes the
// subscription.
func (d *Dispatcher) Subscribe(n Notify) func() {
	d.crit.Lock()
	defer d.crit.Unlock()

	id := d.nextID
	d.nextID++
	d.subs = append(d.subs, subscriber{id: id, n: n})

	return func() {
		d.crit.Lock()
		defer d.crit.Unlock()
		for i, s := range d.subs {
			if s.id == id {
				d.subs = append(d.subs[:i], d.subs[i+1:]...)
				return
			}
		}
	}
}

// Publish sends the event to every subscriber. Errors returned by subscribers
// are logged and do not prevent delivery to other subscribers.
func (d *Dispatcher) Publish(ev Event) {
	if d == nil {
		return
	}

	// deliver to a copy of the subscriber list so that a subscriber can
	// unsubscribe during delivery
	d.crit.Lock()
	subs := make([]subscriber, len(d.subs))
	copy(subs, d.subs)
	d.crit.Unlock()

	for _, s := range subs {
		if err := s.n.Notify(ev); err != nil {
			logger.Logf(logger.Allow, "notifications", "%s: %v", ev.Notice, err)
		}
	}
}

// Ready publishes the NotifyReady event.
func (d *Dispatcher) Ready(handle any) {
	d.Publish(Event{Notice: NotifyReady, Handle: handle})
}

// Started publishes the NotifyStarted event.
func (d *Dispatcher) Started() {
	d.Publish(Event{Notice: NotifyStarted})
}

// Stopped publishes the NotifyStopped event.
func (d *Dispatcher) Stopped() {
	d.Publish(Event{Notice: NotifyStopped})
}

// ScreenshotTaken publishes the NotifyScreenshot event.
func (d *Dispatcher) ScreenshotTaken(data []byte) {
	d.Publish(Event{Notice: NotifyScreenshot, Data: data})
}

// DiskImageChanged publishes the NotifyDiskImageChanged event.
func (d *Dispatcher) DiskImageChanged(image string) {
	d.Publish(Event{Notice: NotifyDiskImageChanged, Image: image})
}

// DiskDriveChanged publishes the NotifyDiskDriveChanged event.
func (d *Dispatcher) DiskDriveChanged(drive string, image string) {
	d.Publish(Event{Notice: NotifyDiskDriveChanged, Drive: drive, Image: image})
}
