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

package keyboard

import (
	"strings"
)

// Cell is a single position in the key matrix.
type Cell struct {
	Col int
	Row int
}

// the dimensions of the key matrix. only rows 3 to 10 are used
const (
	NumColumns = 9
	NumRows    = 11
	firstRow   = 3
	lastRow    = 10
)

// columns reserved for the two joysticks
const (
	Joystick1Column = 6
	Joystick2Column = 7
)

// rows of a joystick column
const (
	rowFire  = 3
	rowLeft  = 4
	rowRight = 5
	rowDown  = 6
	rowUp    = 7
)

// cells in column zero
var (
	cellEquals = Cell{Col: 0, Row: 3}
	cellSpace  = Cell{Col: 0, Row: 4}
	cellEnter  = Cell{Col: 0, Row: 5}
	cellFctn   = Cell{Col: 0, Row: 7}
	cellShift  = Cell{Col: 0, Row: 8}
	cellCtrl   = Cell{Col: 0, Row: 9}
)

// the characters in columns one to five, from row three downwards
var characterColumns = [...]string{
	1: ".LO92SWX",
	2: ",KI83DEC",
	3: "MJU74FRV",
	4: "NHY65GTB",
	5: "/;P01AQZ",
}

// cell returns the matrix cell for a character key. letters must be upper
// case. panics if the character is not on the keyboard
func cell(c byte) Cell {
	switch c {
	case '=':
		return cellEquals
	case ' ':
		return cellSpace
	}
	for col, s := range characterColumns {
		if row := strings.IndexByte(s, c); row >= 0 {
			return Cell{Col: col, Row: firstRow + row}
		}
	}
	panic("keyboard: no matrix cell for character " + string(c))
}

// joystick cells for player one
var (
	cellJ1Fire  = Cell{Col: Joystick1Column, Row: rowFire}
	cellJ1Left  = Cell{Col: Joystick1Column, Row: rowLeft}
	cellJ1Right = Cell{Col: Joystick1Column, Row: rowRight}
	cellJ1Down  = Cell{Col: Joystick1Column, Row: rowDown}
	cellJ1Up    = Cell{Col: Joystick1Column, Row: rowUp}
)

// key is an entry in one of the key tables. the name field is the event code
// for the native layout and the event key for the remapped layout
type key struct {
	name  string
	cells []Cell
}

// the native layout maps physical keys to the key in the same position on
// the emulated keyboard
type nativeTable struct {
	byCode    map[string]*key
	byKeyCode map[int]*key
}

func (tbl *nativeTable) add(code string, keyCode int, cells ...Cell) {
	k := &key{name: code, cells: cells}
	tbl.byCode[code] = k
	if keyCode != 0 {
		if _, ok := tbl.byKeyCode[keyCode]; !ok {
			tbl.byKeyCode[keyCode] = k
		}
	}
}

var native = func() *nativeTable {
	tbl := &nativeTable{
		byCode:    make(map[string]*key),
		byKeyCode: make(map[int]*key),
	}

	for c := byte('A'); c <= 'Z'; c++ {
		tbl.add("Key"+string(c), int(c), cell(c))
	}
	for c := byte('0'); c <= '9'; c++ {
		tbl.add("Digit"+string(c), int(c), cell(c))
		tbl.add("Numpad"+string(c), 96+int(c-'0'), cell(c))
	}

	tbl.add("Period", 190, cell('.'))
	tbl.add("Comma", 188, cell(','))
	tbl.add("Slash", 191, cell('/'))
	tbl.add("Semicolon", 186, cell(';'))
	tbl.add("Equal", 187, cellEquals)
	tbl.add("Space", 32, cellSpace)
	tbl.add("Enter", 13, cellEnter)
	tbl.add("NumpadEnter", 13, cellEnter)
	tbl.add("ShiftLeft", 16, cellShift)
	tbl.add("ShiftRight", 16, cellShift)
	tbl.add("ControlLeft", 17, cellCtrl)
	tbl.add("ControlRight", 17, cellCtrl)
	tbl.add("AltLeft", 18, cellFctn)
	tbl.add("AltRight", 18, cellFctn)
	tbl.add("Backspace", 8, cellFctn, cell('S'))
	tbl.add("Tab", 9, cellJ1Fire)
	tbl.add("ArrowLeft", 37, cellJ1Left)
	tbl.add("ArrowUp", 38, cellJ1Up)
	tbl.add("ArrowRight", 39, cellJ1Right)
	tbl.add("ArrowDown", 40, cellJ1Down)

	// caps lock has no matrix cell but is handled by handleOtherKeys()
	tbl.add("CapsLock", 20)

	return tbl
}()

// the remapped layout maps the character produced by a key to the
// combination of keys that produces the same character on the emulated
// keyboard
var remapped = func() map[string]*key {
	tbl := make(map[string]*key)

	add := func(name string, cells ...Cell) {
		tbl[name] = &key{name: name, cells: cells}
	}

	for c := byte('A'); c <= 'Z'; c++ {
		add(strings.ToLower(string(c)), cell(c))
		add(string(c), cellShift, cell(c))
	}
	for c := byte('0'); c <= '9'; c++ {
		add(string(c), cell(c))
	}
	for _, c := range []byte{'.', ',', '/', ';', '=', ' '} {
		add(string(c), cell(c))
	}

	// characters typed with shift
	for c, base := range map[string]byte{
		"!": '1', "@": '2', "#": '3', "$": '4', "%": '5',
		"^": '6', "&": '7', "*": '8', "(": '9', ")": '0',
		"+": '=', "-": '/', ":": ';', "<": ',', ">": '.',
	} {
		add(c, cellShift, cell(base))
	}

	// characters typed with fctn
	for c, base := range map[string]byte{
		"~": 'W', "[": 'R', "]": 'T', "{": 'F', "}": 'G',
		"_": 'U', "?": 'I', "'": 'O', "\"": 'P', "|": 'A',
		"\\": 'Z', "`": 'C',
	} {
		add(c, cellFctn, cell(base))
	}

	add("Enter", cellEnter)
	add("Shift", cellShift)
	add("Control", cellCtrl)
	add("Alt", cellFctn)
	add("Backspace", cellFctn, cell('S'))
	add("Tab", cellJ1Fire)
	add("ArrowLeft", cellJ1Left)
	add("ArrowUp", cellJ1Up)
	add("ArrowRight", cellJ1Right)
	add("ArrowDown", cellJ1Down)
	add("CapsLock")

	// editing keys are fctn and a digit
	add("Delete", cellFctn, cell('1'))
	add("Insert", cellFctn, cell('2'))
	add("Escape", cellFctn, cell('9'))
	for n := byte(1); n <= 9; n++ {
		add("F"+string('0'+n), cellFctn, cell('0'+n))
	}

	return tbl
}()
