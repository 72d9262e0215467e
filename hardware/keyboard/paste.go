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

// NoPasteChar is returned by GetPasteCharCode() when there is nothing left
// to paste.
const NoPasteChar = -1

// Paste text as though it was being typed. The text is surrounded by
// newlines. Any text currently being pasted is replaced.
func (kb *Keyboard) Paste(text string) {
	s := "\n" + text + "\n"
	kb.pasteBuffer = &s
	kb.pasteIndex = 0
}

// IsPasting returns true if there is text waiting to be pasted.
func (kb *Keyboard) IsPasting() bool {
	return kb.pasteBuffer != nil
}

// GetPasteCharCode returns the next character to be pasted. Characters
// outside of the printable ASCII range are skipped, except for line feed
// which is returned as carriage return. Returns NoPasteChar if there is
// nothing left to paste.
//
// The paste buffer is discarded once the last character has been read.
func (kb *Keyboard) GetPasteCharCode() int {
	charCode := NoPasteChar

	for charCode == NoPasteChar && kb.pasteBuffer != nil && kb.pasteIndex >= 0 && kb.pasteIndex < len(*kb.pasteBuffer) {
		c := (*kb.pasteBuffer)[kb.pasteIndex]
		kb.pasteIndex++
		if c >= 32 && c <= 127 {
			charCode = int(c)
		} else if c == '\n' {
			charCode = '\r'
		}
	}

	if kb.pasteBuffer != nil && kb.pasteIndex >= len(*kb.pasteBuffer) {
		kb.pasteBuffer = nil
	}

	return charCode
}
