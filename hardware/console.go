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

package hardware

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/jetsetilly/gopher99/hardware/cpu"
	"github.com/jetsetilly/gopher99/hardware/cru"
	"github.com/jetsetilly/gopher99/hardware/disk"
	"github.com/jetsetilly/gopher99/hardware/keyboard"
	"github.com/jetsetilly/gopher99/hardware/memory"
	"github.com/jetsetilly/gopher99/hardware/memory/memorymap"
	"github.com/jetsetilly/gopher99/hardware/preferences"
	"github.com/jetsetilly/gopher99/hardware/psg"
	"github.com/jetsetilly/gopher99/hardware/speech"
	"github.com/jetsetilly/gopher99/hardware/tape"
	"github.com/jetsetilly/gopher99/hardware/vdp"
	"github.com/jetsetilly/gopher99/logger"
	"github.com/jetsetilly/gopher99/notifications"
	"github.com/jetsetilly/gopher99/paths"
	"github.com/jetsetilly/gopher99/prefs"
	"github.com/jetsetilly/gopher99/scheduler"
	"github.com/jetsetilly/gopher99/softwareloader"
	"github.com/jetsetilly/gopher99/userinput"
)

// VDP is the video display processor as seen by the Console. Both the
// TMS9918A and the F18A satisfy the interface.
type VDP interface {
	memory.Port

	Reset()
	InitFrame(ts time.Time)
	DrawScanline(y int)
	DrawFrame(ts time.Time)
	UpdateCanvas()

	// GPU returns nil if the video display processor has no GPU
	GPU() cpu.ExecutionUnit

	RegsString() string

	GetState() (json.RawMessage, error)
	RestoreState(data json.RawMessage) error
}

// Drive is a storage device. The Console only needs to reset it.
type Drive interface {
	Name() string
	Reset()
}

// Host collates the services provided to the Console by the host program.
type Host struct {
	Prefs *preferences.Preferences

	// the source of keyboard events. can be nil, in which case the keyboard
	// is never pressed except by simulated key presses
	Input keyboard.EventSource

	// the clock that drives the Console. can be nil in which case a
	// scheduler.Loop is created. the Run() function of the loop must be
	// called by the host
	Scheduler scheduler.Scheduler

	// lifecycle notifications are sent to the dispatcher. can be nil
	Notify *notifications.Dispatcher

	// the instruction sets for the processor and for the F18A GPU. a nil
	// value means cpu.NopInstructionSet
	InstructionSet    cpu.InstructionSet
	GPUInstructionSet cpu.InstructionSet
}

// the input source used when Host.Input is nil
type noInput struct{}

func (noInput) AddListener(_ userinput.Channel, _ userinput.Listener) func() {
	return func() {}
}

// Console is the emulated TI-99/4A.
type Console struct {
	prefs  *preferences.Preferences
	input  keyboard.EventSource
	sched  scheduler.Scheduler
	notify *notifications.Dispatcher

	is    cpu.InstructionSet
	gpuIS cpu.InstructionSet

	mem         *memory.Memory
	cpu         cpu.ExecutionUnit
	vdp         VDP
	psg         *psg.PSG
	speech      *speech.TMS5220
	cru         *cru.CRU
	keyboard    *keyboard.Keyboard
	tape        *tape.Tape
	diskDrives  []Drive
	cloudDrives []Drive

	state   State
	running bool

	// cycles per frame and per scanline are multiplied by speed
	speed int

	frameCount    int
	fpsFrameCount int
	lastFpsTime   time.Time

	frameTask  *scheduler.Task
	fpsTask    *scheduler.Task
	typingTask *scheduler.Task

	// the Console stops itself when FrameCount() reaches FramesToRun. a
	// value of zero means there is no limit
	FramesToRun int

	onBreakpoint func(unit cpu.ExecutionUnit)

	// toggled on every call to the paste trap
	pasteToggle bool

	// name of the most recently loaded software
	softwareName string
}

// NewConsole creates and assembles a new Console. The NotifyReady event is
// published with the Console as the handle.
func NewConsole(host Host) (*Console, error) {
	c := &Console{
		prefs:  host.Prefs,
		input:  host.Input,
		sched:  host.Scheduler,
		notify: host.Notify,
		is:     host.InstructionSet,
		gpuIS:  host.GPUInstructionSet,
		speed:  1,
	}

	if c.prefs == nil {
		var err error
		c.prefs, err = preferences.NewPreferences()
		if err != nil {
			return nil, err
		}
	}
	if c.input == nil {
		c.input = noInput{}
	}
	if c.sched == nil {
		c.sched = scheduler.NewLoop()
	}
	if c.is == nil {
		c.is = cpu.NopInstructionSet{}
	}
	if c.gpuIS == nil {
		c.gpuIS = cpu.NopInstructionSet{}
	}

	err := c.Assemble()
	if err != nil {
		return nil, err
	}
	c.Reset(false)

	c.setHooks()
	c.notify.Ready(c)

	return c, nil
}

func (c *Console) String() string {
	return fmt.Sprintf("%s %s", c.state, c.Status())
}

// Assemble creates every hardware component according to the current
// preferences. Any existing components are replaced. The Console is stopped
// if it is running.
func (c *Console) Assemble() error {
	if c.running {
		c.Stop()
	}

	systemROM, err := loadROM(c.prefs.SystemROM.String())
	if err != nil {
		return err
	}
	speechROM, err := loadROM(c.prefs.SpeechROM.String())
	if err != nil {
		return err
	}

	c.mem = memory.NewMemory(systemROM, c.prefs.MemoryExpansion.Get().(bool))

	c.keyboard = keyboard.NewKeyboard(c.input, c.sched,
		c.prefs.PCKeyboard.Get().(bool), c.prefs.ArrowKeysFctn.Get().(bool))
	c.keyboard.SetEmulateJoystick2(c.prefs.Joystick2.Get().(bool))

	c.tape = tape.NewTape(c.notify, nil)
	c.cru = cru.NewCRU(c.keyboard, c.tape)

	proc := cpu.NewProcessor(c.is, c.mem, c.cru)
	proc.SetTrap(kscanAddress, c.pasteTrap)
	c.tape.SetClock(proc.Cycles)
	c.cpu = proc

	vdpName := "TMS9918A"
	if c.prefs.F18A.Get().(bool) {
		vdpName = "F18A"
		c.vdp = vdp.NewF18A(c.gpuIS)
	} else {
		c.vdp = vdp.NewTMS9918A()
	}
	c.mem.AttachPort(memorymap.VDPRead, c.vdp)
	c.mem.AttachPort(memorymap.VDPWrite, c.vdp)

	c.psg = psg.NewPSG()
	c.mem.AttachPort(memorymap.Sound, c.psg)

	c.speech = speech.NewTMS5220(speechROM, c.prefs.Speech.Get().(bool))
	c.mem.AttachPort(memorymap.SpeechRead, c.speech)
	c.mem.AttachPort(memorymap.SpeechWrite, c.speech)

	c.diskDrives = nil
	for i := 1; i <= numDiskDrives; i++ {
		c.diskDrives = append(c.diskDrives, disk.NewDrive(fmt.Sprintf("DSK%d", i), nil, c.notify))
	}

	c.cloudDrives = nil
	if c.prefs.CloudDrives.Get().(bool) {
		for i := 1; i <= numDiskDrives; i++ {
			name := fmt.Sprintf("GDR%d", i)
			c.cloudDrives = append(c.cloudDrives, disk.NewCloudDrive(name, paths.ResourcePath(cloudDrivePath, name), c.notify))
		}
	}

	logger.Logf(logger.Allow, "console", "assembled with %s and %d cloud drives", vdpName, len(c.cloudDrives))

	return nil
}

// number of disk drives and of cloud drives
const numDiskDrives = 3

// cloud drive directories are created under this resource path
const cloudDrivePath = "clouddrives"

// loadROM returns nil if filename is empty
func loadROM(filename string) ([]byte, error) {
	if filename == "" {
		return nil, nil
	}
	ld := softwareloader.NewLoader(filename)
	err := ld.Load()
	if err != nil {
		return nil, err
	}
	return ld.Data, nil
}

// changes to the keyboard preferences are applied immediately. changes to the
// video display processor or to the cloud drives need the console to be
// reassembled
func (c *Console) setHooks() {
	c.prefs.PCKeyboard.SetHookPost(func(v prefs.Value) error {
		c.keyboard.SetPCKeyboardEnabled(v.(bool))
		return nil
	})
	c.prefs.ArrowKeysFctn.SetHookPost(func(v prefs.Value) error {
		c.keyboard.SetMapArrowKeysToFctnSDEXEnabled(v.(bool))
		return nil
	})
	c.prefs.Joystick2.SetHookPost(func(v prefs.Value) error {
		c.keyboard.SetEmulateJoystick2(v.(bool))
		return nil
	})
	c.prefs.Speech.SetHookPost(func(v prefs.Value) error {
		c.speech.SetEnabled(v.(bool))
		return nil
	})
	c.prefs.F18A.SetHookPost(func(_ prefs.Value) error {
		return c.reassemble()
	})
	c.prefs.CloudDrives.SetHookPost(func(_ prefs.Value) error {
		return c.reassemble()
	})
}

// reassemble the console and restart it if it was running
func (c *Console) reassemble() error {
	wasRunning := c.running
	err := c.Assemble()
	if err != nil {
		return err
	}
	c.Reset(false)
	if wasRunning {
		c.Start(false)
	}
	return nil
}

// Reset every component. The cartridge is removed unless keepCart is true.
// The processor starts from the reset vector in the system ROM.
func (c *Console) Reset(keepCart bool) {
	c.mem.Reset(keepCart)
	c.cpu.Reset()
	wp, pc := c.mem.ResetVector()
	c.cpu.SetWP(wp)
	c.cpu.SetPC(pc)
	c.vdp.Reset()
	c.psg.Reset()
	c.speech.Reset()
	c.cru.Reset()
	c.keyboard.Reset()
	c.tape.Reset()
	for _, d := range c.diskDrives {
		d.Reset()
	}
	for _, d := range c.cloudDrives {
		d.Reset()
	}
	c.resetFps()
	c.frameCount = 0
	c.speed = 1
	c.pasteToggle = false
	if !keepCart {
		c.softwareName = ""
	}
	if !c.running {
		c.state = Idle
	}
}

// SetBreakpointCallback sets the function called when a processor reaches
// a breakpoint. The function is called with the processor that stopped.
func (c *Console) SetBreakpointCallback(f func(unit cpu.ExecutionUnit)) {
	c.onBreakpoint = f
}

// the address of the keyboard scanning routine in the system ROM
const kscanAddress = 0x0478

// scratchpad addresses used by the keyboard scanning routine
const (
	keyboardDevice = 0x8374
	gplStatus      = 0x837c
	gplStatusKey   = 0x2000
)

// the paste trap supplies the next pasted character to the keyboard
// scanning routine as though it had been found in the key matrix. a
// character is supplied on every other call so that the routine sees a key
// release between characters
func (c *Console) pasteTrap(_ *cpu.Registers, mem cpu.Memory) {
	if !c.keyboard.IsPasting() {
		return
	}

	c.pasteToggle = !c.pasteToggle
	if !c.pasteToggle {
		return
	}

	w := mem.ReadWord(keyboardDevice)
	device := w >> 8
	if device != 0 && device != 5 {
		return
	}

	code := c.keyboard.GetPasteCharCode()
	if code < 0 {
		return
	}

	mem.WriteWord(keyboardDevice, w&0xff00|uint16(code&0xff))
	mem.WriteWord(gplStatus, mem.ReadWord(gplStatus)|gplStatusKey)
}

// State returns the current state of the Console.
func (c *Console) State() State {
	return c.state
}

// IsRunning returns true if the Console has been started.
func (c *Console) IsRunning() bool {
	return c.running
}

// FrameCount returns the number of frames completed since the last reset.
func (c *Console) FrameCount() int {
	return c.frameCount
}

// Speed returns the cycle multiplier.
func (c *Console) Speed() int {
	return c.speed
}

// Scheduler returns the scheduler that drives the Console.
func (c *Console) Scheduler() scheduler.Scheduler {
	return c.sched
}

// Prefs returns the hardware preferences.
func (c *Console) Prefs() *preferences.Preferences {
	return c.prefs
}

// CPU returns the primary processor.
func (c *Console) CPU() cpu.ExecutionUnit {
	return c.cpu
}

// VDP returns the video display processor.
func (c *Console) VDP() VDP {
	return c.vdp
}

// PSG returns the sound generator.
func (c *Console) PSG() *psg.PSG {
	return c.psg
}

// Speech returns the speech synthesizer.
func (c *Console) Speech() *speech.TMS5220 {
	return c.speech
}

// CRU returns the peripheral interface.
func (c *Console) CRU() *cru.CRU {
	return c.cru
}

// Memory returns the memory.
func (c *Console) Memory() *memory.Memory {
	return c.mem
}

// Keyboard returns the keyboard.
func (c *Console) Keyboard() *keyboard.Keyboard {
	return c.keyboard
}

// Tape returns the cassette deck.
func (c *Console) Tape() *tape.Tape {
	return c.tape
}

// DiskDrives returns the disk drives DSK1 to DSK3.
func (c *Console) DiskDrives() []Drive {
	return c.diskDrives
}

// CloudDrives returns the cloud drives. The list is empty unless the
// cloud drives preference is set.
func (c *Console) CloudDrives() []Drive {
	return c.cloudDrives
}
