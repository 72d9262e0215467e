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

// Package disk implements the disk drives attached to the disk controller
// (DSK1 to DSK3) and the optional cloud drives (GDR1 to GDR3). A disk drive
// holds a sector based Image. A cloud drive stores files in a directory on
// the host.
//
// Changes to images and to the contents of drives are published through the
// notifications package.
package disk
