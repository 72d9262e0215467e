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
	"bytes"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/jetsetilly/gopher99/hardware/cpu"
	"github.com/jetsetilly/gopher99/hardware/keyboard"
	"github.com/jetsetilly/gopher99/hardware/preferences"
	"github.com/jetsetilly/gopher99/hardware/vdp"
	"github.com/jetsetilly/gopher99/notifications"
	"github.com/jetsetilly/gopher99/scheduler"
	"github.com/jetsetilly/gopher99/softwareloader"
	"github.com/jetsetilly/gopher99/test"
	"github.com/jetsetilly/gopher99/userinput"
)

// the number of scanlines in a frame at normal speed
const scanlinesPerFrame = (cpu.CyclesPerFrame + cpu.CyclesPerScanline - 1) / cpu.CyclesPerScanline

// records the scanlines drawn and the number of canvas updates
type recordingVDP struct {
	VDP
	scanlines []int
	updates   int
}

func (v *recordingVDP) DrawScanline(y int) {
	v.scanlines = append(v.scanlines, y)
	v.VDP.DrawScanline(y)
}

func (v *recordingVDP) UpdateCanvas() {
	v.updates++
	v.VDP.UpdateCanvas()
}

// records the number of cycles requested by each call to Run()
type recordingCPU struct {
	cpu.ExecutionUnit
	runs []int
}

func (r *recordingCPU) Run(cycles int) int {
	r.runs = append(r.runs, cycles)
	return r.ExecutionUnit.Run(cycles)
}

type harness struct {
	console *Console
	input   *userinput.Dispatcher
	sched   *scheduler.Virtual
	notices []notifications.Notice

	// the real processor and the recording wrapper installed in its place
	proc *cpu.Processor
	cpu  *recordingCPU
	vdp  *recordingVDP
}

func newHarness(t *testing.T) *harness {
	t.Helper()

	p, err := preferences.NewPreferencesWithPath(filepath.Join(t.TempDir(), "prefs"))
	test.DemandSuccess(t, err)

	h := &harness{
		input: userinput.NewDispatcher(),
		sched: scheduler.NewVirtual(),
	}

	notify := notifications.NewDispatcher()
	notify.Subscribe(notifications.NotifyFunc(func(ev notifications.Event) error {
		h.notices = append(h.notices, ev.Notice)
		return nil
	}))

	h.console, err = NewConsole(Host{
		Prefs:     p,
		Input:     h.input,
		Scheduler: h.sched,
		Notify:    notify,
	})
	test.DemandSuccess(t, err)
	h.wrap()

	return h
}

// wrap the processor and video display processor of the console so that
// calls to them can be counted. must be called again after the console is
// reassembled
func (h *harness) wrap() {
	h.proc = h.console.cpu.(*cpu.Processor)
	h.cpu = &recordingCPU{ExecutionUnit: h.proc}
	h.console.cpu = h.cpu
	h.vdp = &recordingVDP{VDP: h.console.vdp}
	h.console.vdp = h.vdp
}

func TestReady(t *testing.T) {
	h := newHarness(t)
	test.ExpectEquality(t, len(h.notices), 1)
	test.ExpectEquality(t, h.notices[0], notifications.NotifyReady)
	test.ExpectEquality(t, h.console.State(), Idle)

	// processor starts at the reset vector of the default system ROM
	test.ExpectEquality(t, h.console.PC(), uint16(0x0024))
	test.ExpectEquality(t, h.proc.Registers().WP, uint16(0x83e0))
}

func TestFrameWithSuspendedProcessor(t *testing.T) {
	h := newHarness(t)
	h.console.CPU().SetSuspended(true)

	h.console.Frame()

	test.ExpectEquality(t, len(h.cpu.runs), 0)
	test.ExpectEquality(t, len(h.vdp.scanlines), vdp.Height)
	test.ExpectEquality(t, h.vdp.scanlines[0], 0)
	test.ExpectEquality(t, h.vdp.scanlines[vdp.Height-1], vdp.Height-1)
	test.ExpectEquality(t, h.vdp.updates, 1)
	test.ExpectEquality(t, h.console.FrameCount(), 1)
	test.ExpectEquality(t, h.console.fpsFrameCount, 1)
}

func TestFrameCycleAccounting(t *testing.T) {
	h := newHarness(t)
	h.console.Frame()

	test.ExpectEquality(t, len(h.cpu.runs), scanlinesPerFrame)

	// instructions take ten cycles so every scanline overruns until the
	// overrun is a multiple of ten
	for i, c := range []int{182, 174, 176, 178, 180, 182} {
		test.ExpectEquality(t, h.cpu.runs[i], c, i)
	}

	// the number of cycles actually run never falls short of the frame
	test.ExpectSuccess(t, h.proc.Cycles() >= cpu.CyclesPerFrame)
	test.ExpectSuccess(t, h.proc.Cycles() < cpu.CyclesPerFrame+cpu.CyclesPerScanline)
}

func TestFastFrame(t *testing.T) {
	h := newHarness(t)
	h.console.Start(true)
	test.ExpectEquality(t, h.console.Speed(), 2)

	h.sched.Advance(FramePeriod)
	test.ExpectEquality(t, h.console.FrameCount(), 1)
	test.ExpectEquality(t, h.cpu.runs[0], cpu.CyclesPerScanline*2)

	// the number of scanlines is the same at either speed
	test.ExpectEquality(t, len(h.cpu.runs), scanlinesPerFrame)
}

func TestBreakpointAbortsFrame(t *testing.T) {
	h := newHarness(t)

	var halted cpu.ExecutionUnit
	h.console.SetBreakpointCallback(func(unit cpu.ExecutionUnit) {
		halted = unit
	})

	// the first scanline runs 19 instructions, ending at >004A. the
	// breakpoint is reached during the second scanline
	h.proc.SetBreakpoint(0x0050)
	h.console.Frame()

	test.DemandEquality(t, len(h.vdp.scanlines), 2)
	test.ExpectEquality(t, h.vdp.scanlines[1], 1)
	test.ExpectEquality(t, len(h.cpu.runs), 2)
	test.ExpectEquality(t, h.console.FrameCount(), 0)
	test.ExpectEquality(t, h.vdp.updates, 0)
	test.ExpectEquality(t, h.console.State(), BreakpointHalted)
	test.DemandSuccess(t, halted != nil)
	test.ExpectEquality(t, halted.PC(), uint16(0x0050))

	// the next frame resumes from the breakpoint and completes
	h.proc.ClearBreakpoints()
	h.console.Frame()
	test.ExpectEquality(t, h.console.FrameCount(), 1)
	test.ExpectEquality(t, h.console.State(), Idle)
}

func TestStartStop(t *testing.T) {
	h := newHarness(t)

	h.console.Start(false)
	test.ExpectSuccess(t, h.console.IsRunning())
	test.ExpectSuccess(t, h.console.Keyboard().IsRunning())
	test.ExpectEquality(t, h.console.State(), Running)
	test.ExpectEquality(t, h.sched.Pending(), 2)

	// starting a running console does not create more tasks or change the
	// speed
	h.console.Start(true)
	test.ExpectEquality(t, h.sched.Pending(), 2)
	test.ExpectEquality(t, h.console.Speed(), 1)

	h.sched.Advance(FramePeriod * 3)
	test.ExpectEquality(t, h.console.FrameCount(), 3)

	h.console.Stop()
	test.ExpectFailure(t, h.console.IsRunning())
	test.ExpectFailure(t, h.console.Keyboard().IsRunning())
	test.ExpectSuccess(t, h.console.PSG().IsMuted())
	test.ExpectSuccess(t, h.console.Tape().IsPaused())
	test.ExpectEquality(t, h.console.State(), Idle)

	// no frames are run after Stop()
	h.sched.Advance(time.Second)
	test.ExpectEquality(t, h.console.FrameCount(), 3)
	test.ExpectEquality(t, h.sched.Pending(), 0)

	test.DemandEquality(t, len(h.notices), 3)
	test.ExpectEquality(t, h.notices[1], notifications.NotifyStarted)
	test.ExpectEquality(t, h.notices[2], notifications.NotifyStopped)
}

func TestFramesToRun(t *testing.T) {
	h := newHarness(t)
	h.console.FramesToRun = 2
	h.console.Start(false)
	h.sched.Advance(FramePeriod * 5)
	test.ExpectEquality(t, h.console.FrameCount(), 2)
	test.ExpectFailure(t, h.console.IsRunning())
}

func TestDrawFrame(t *testing.T) {
	h := newHarness(t)
	h.console.DrawFrame()
	test.ExpectEquality(t, h.console.FrameCount(), 0)
	test.ExpectEquality(t, h.console.fpsFrameCount, 1)
	test.ExpectEquality(t, len(h.cpu.runs), 0)
}

func TestStep(t *testing.T) {
	h := newHarness(t)
	h.console.Step()
	test.ExpectEquality(t, h.console.PC(), uint16(0x0026))
	test.DemandEquality(t, len(h.cpu.runs), 1)
	test.ExpectEquality(t, h.cpu.runs[0], 1)
	test.ExpectFailure(t, h.console.IsRunning())
}

func TestStepOver(t *testing.T) {
	h := newHarness(t)

	var halted cpu.ExecutionUnit
	h.console.SetBreakpointCallback(func(unit cpu.ExecutionUnit) {
		halted = unit
		h.console.Stop()
	})

	h.console.StepOver()
	test.ExpectSuccess(t, h.console.IsRunning())

	h.sched.Advance(FramePeriod)
	test.DemandSuccess(t, halted != nil)
	test.ExpectEquality(t, halted.PC(), uint16(0x0028))
	test.ExpectFailure(t, h.console.IsRunning())
	test.ExpectEquality(t, h.console.FrameCount(), 0)

	// the run-to address has been cleared
	h.console.Frame()
	test.ExpectEquality(t, h.console.FrameCount(), 1)
}

func TestGPUIsActiveProcessor(t *testing.T) {
	h := newHarness(t)
	test.DemandSuccess(t, h.console.Prefs().F18A.Set(true))
	h.wrap()

	f18a, ok := h.vdp.VDP.(*vdp.F18A)
	test.DemandSuccess(t, ok)
	test.ExpectFailure(t, strings.Contains(h.console.Status(), "F18A GPU"))

	gpu := f18a.Processor()
	gpu.SetPC(0x4000)
	gpu.SetIdle(false)

	test.ExpectEquality(t, h.console.PC(), uint16(0x4000))
	test.ExpectSuccess(t, strings.Contains(h.console.Status(), "F18A GPU"))

	// stepping runs the GPU only
	h.console.Step()
	test.ExpectEquality(t, gpu.PC(), uint16(0x4002))
	test.ExpectEquality(t, len(h.cpu.runs), 0)

	// a GPU breakpoint aborts the frame
	var halted cpu.ExecutionUnit
	h.console.SetBreakpointCallback(func(unit cpu.ExecutionUnit) {
		halted = unit
	})
	gpu.SetBreakpoint(0x4010)
	h.console.Frame()
	test.ExpectEquality(t, halted, cpu.ExecutionUnit(gpu))
	test.ExpectEquality(t, h.console.FrameCount(), 0)
	test.ExpectEquality(t, len(h.vdp.scanlines), 1)
}

func TestLoadSoftware(t *testing.T) {
	h := newHarness(t)

	rom := make([]byte, 0x2000)
	rom[0] = 0xaa
	h.console.LoadSoftware(&softwareloader.Software{
		Name: "parsec",
		Type: softwareloader.TypeCart,
		ROM:  rom,
	})
	test.ExpectEquality(t, h.console.SoftwareName(), "parsec")

	// no explicit addresses so the reset vector is used
	test.ExpectEquality(t, h.console.PC(), uint16(0x0024))
	test.ExpectEquality(t, h.proc.Registers().WP, uint16(0x83e0))
	test.ExpectEquality(t, h.console.Memory().Read8(0x6000), uint8(0xaa))

	// memory blocks keep the cartridge
	h.console.LoadSoftware(&softwareloader.Software{
		MemoryBlocks: []softwareloader.MemoryBlock{
			{Address: 0xa000, Data: []byte{0x12, 0x34}},
		},
		WorkspaceAddress: 0x8300,
		StartAddress:     0xa000,
	})
	test.ExpectEquality(t, h.console.PC(), uint16(0xa000))
	test.ExpectEquality(t, h.proc.Registers().WP, uint16(0x8300))
	test.ExpectEquality(t, h.console.Memory().ReadWord(0xa000), uint16(0x1234))
	test.ExpectEquality(t, h.console.Memory().Read8(0x6000), uint8(0xaa))

	// without memory blocks the cartridge is removed
	h.console.LoadSoftware(&softwareloader.Software{})
	test.ExpectEquality(t, h.console.Memory().Read8(0x6000), uint8(0x00))
	test.ExpectEquality(t, h.console.SoftwareName(), "")
}

func TestLoadSoftwareWhileRunning(t *testing.T) {
	h := newHarness(t)
	h.console.Start(true)
	h.sched.Advance(FramePeriod)

	h.console.LoadSoftware(&softwareloader.Software{})
	test.ExpectSuccess(t, h.console.IsRunning())
	test.ExpectEquality(t, h.console.FrameCount(), 0)

	// restarted at normal speed
	test.ExpectEquality(t, h.console.Speed(), 1)
}

func TestLoadSoftwareKeyPresses(t *testing.T) {
	h := newHarness(t)
	h.console.LoadSoftware(&softwareloader.Software{
		KeyPresses: "a",
	})

	kb := h.console.Keyboard()
	h.sched.Advance(keyPressDelay - time.Millisecond)
	test.ExpectFailure(t, kb.IsKeyDown(5, 8))
	h.sched.Advance(50 * time.Millisecond)
	test.ExpectSuccess(t, kb.IsKeyDown(5, 8))
	h.sched.Advance(100 * time.Millisecond)
	test.ExpectFailure(t, kb.IsKeyDown(5, 8))
}

func TestStopCancelsKeyPresses(t *testing.T) {
	h := newHarness(t)
	h.console.Start(false)
	h.console.LoadSoftware(&softwareloader.Software{
		KeyPresses: "a",
	})
	h.console.Stop()
	h.sched.Advance(keyPressDelay * 2)
	test.ExpectEquality(t, h.sched.Pending(), 0)
	test.ExpectFailure(t, h.console.Keyboard().IsKeyDown(5, 8))
}

func TestRestoreKeyboardOnly(t *testing.T) {
	h := newHarness(t)
	test.DemandSuccess(t, h.console.Prefs().PCKeyboard.Set(false))
	h.console.Start(false)
	ev, err := userinput.KeyEvent("a")
	test.DemandSuccess(t, err)
	h.input.KeyDown(ev)
	h.input.Paste("hi")

	s, err := h.console.GetState()
	test.DemandSuccess(t, err)
	for _, k := range []string{"tms9900", "memory", "cru", "keyboard", "vdp", "tms9919", "tms5220", "tape"} {
		_, ok := s[k]
		test.ExpectSuccess(t, ok, k)
	}

	r := newHarness(t)
	r.console.CPU().SetPC(0x1234)
	r.console.Memory().Write8(0x8300, 0x55)

	err = r.console.RestoreState(Snapshot{
		"keyboard": s["keyboard"],
		"unknown":  json.RawMessage(`{"ignored":true}`),
	})
	test.DemandSuccess(t, err)

	kb := r.console.Keyboard()
	test.ExpectSuccess(t, kb.IsKeyDown(5, 8))
	test.ExpectSuccess(t, kb.IsPasting())
	test.ExpectEquality(t, kb.IsAlphaLockDown(), h.console.Keyboard().IsAlphaLockDown())

	// other components are untouched
	test.ExpectEquality(t, r.console.PC(), uint16(0x1234))
	test.ExpectEquality(t, r.console.Memory().Read8(0x8300), uint8(0x55))

	// older snapshots used short names for some components
	err = r.console.RestoreState(Snapshot{"cpu": s["tms9900"]})
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, r.console.PC(), uint16(0x0024))

	// malformed component state is an error
	err = r.console.RestoreState(Snapshot{"cru": json.RawMessage("[")})
	test.ExpectFailure(t, err)
}

func TestSaveLoadState(t *testing.T) {
	h := newHarness(t)
	h.console.Memory().Write8(0x8310, 0x99)
	h.console.Step()

	var buf bytes.Buffer
	test.DemandSuccess(t, h.console.SaveState(&buf))

	r := newHarness(t)
	test.DemandSuccess(t, r.console.LoadState(&buf))
	test.ExpectEquality(t, r.console.PC(), uint16(0x0026))
	test.ExpectEquality(t, r.console.Memory().Read8(0x8310), uint8(0x99))

	test.ExpectFailure(t, r.console.LoadState(strings.NewReader("nonsense")))
}

func TestPasteTrap(t *testing.T) {
	h := newHarness(t)
	mem := h.console.Memory()

	// nothing happens when nothing is being pasted
	h.console.pasteTrap(nil, mem)
	test.ExpectEquality(t, mem.ReadWord(keyboardDevice), uint16(0x0000))

	h.console.Keyboard().Paste("A")

	// pasted text starts with a newline which is delivered as a carriage
	// return
	h.console.pasteTrap(nil, mem)
	test.ExpectEquality(t, mem.ReadWord(keyboardDevice), uint16(0x000d))
	test.ExpectEquality(t, mem.ReadWord(gplStatus)&gplStatusKey, uint16(gplStatusKey))

	// alternate calls do not deliver a character
	mem.WriteWord(gplStatus, 0)
	h.console.pasteTrap(nil, mem)
	test.ExpectEquality(t, mem.ReadWord(gplStatus), uint16(0x0000))

	h.console.pasteTrap(nil, mem)
	test.ExpectEquality(t, mem.ReadWord(keyboardDevice), uint16(0x0041))

	// keyboard device 1 is the left side of the split keyboard. pasted
	// characters are not delivered to it
	mem.WriteWord(keyboardDevice, 0x0100)
	h.console.pasteTrap(nil, mem)
	h.console.pasteTrap(nil, mem)
	test.ExpectEquality(t, mem.ReadWord(keyboardDevice), uint16(0x0100))
}

func TestPreferenceHooks(t *testing.T) {
	h := newHarness(t)
	kb := h.console.Keyboard()

	test.DemandSuccess(t, h.console.Prefs().PCKeyboard.Set(false))
	test.ExpectEquality(t, kb.Layout(), keyboard.NativeLayout)
	test.DemandSuccess(t, h.console.Prefs().PCKeyboard.Set(true))
	test.ExpectEquality(t, kb.Layout(), keyboard.RemappedLayout)

	// changing the video display processor reassembles the console and
	// restarts it
	h.console.Start(false)
	test.DemandSuccess(t, h.console.Prefs().F18A.Set(true))
	_, ok := h.console.VDP().(*vdp.F18A)
	test.ExpectSuccess(t, ok)
	test.ExpectSuccess(t, h.console.IsRunning())
	test.ExpectEquality(t, h.sched.Pending(), 2)

	test.DemandSuccess(t, h.console.Prefs().CloudDrives.Set(true))
	test.ExpectEquality(t, len(h.console.CloudDrives()), 3)
	test.ExpectEquality(t, h.console.CloudDrives()[0].Name(), "GDR1")
	test.ExpectEquality(t, len(h.console.DiskDrives()), 3)
}
