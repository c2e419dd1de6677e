// This file is part of Gopherway.
//
// Gopherway is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopherway is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopherway.  If not, see <https://www.gnu.org/licenses/>.

// Package logger is the central log for the entire application. Log entries
// are made with the Log() and Logf() functions, identified by a short tag
// naming the sub-system the entry originates from.
//
// The log is kept in memory. SetEcho() additionally copies new entries to an
// io.Writer as they arrive, which is how the -log flag works.
package logger

import (
	"io"
	"sync"
)

// only allowing one central log for the entire application. there's no need
// to allow more than one.
var central *logger

// maximum number of entries in the central logger.
const maxCentral = 256

// entries can arrive from the main flow and from the bus transfer goroutine
// so access to the central logger is mutex protected.
var crit sync.Mutex

func init() {
	central = newLogger(maxCentral)
}

// Log adds an entry to the central logger.
func Log(tag, detail string) {
	crit.Lock()
	defer crit.Unlock()
	central.log(tag, detail)
}

// Logf adds a formatted entry to the central logger.
func Logf(tag, detail string, args ...interface{}) {
	crit.Lock()
	defer crit.Unlock()
	central.logf(tag, detail, args...)
}

// Clear all entries from central logger.
func Clear() {
	crit.Lock()
	defer crit.Unlock()
	central.clear()
}

// Write contents of central logger to io.Writer.
func Write(output io.Writer) {
	crit.Lock()
	defer crit.Unlock()
	central.write(output)
}

// Tail writes the last N entries to io.Writer.
func Tail(output io.Writer, number int) {
	crit.Lock()
	defer crit.Unlock()
	central.tail(output, number)
}

// SetEcho to print new entries to io.Writer as they arrive. A nil writer
// turns echoing off.
func SetEcho(output io.Writer) {
	crit.Lock()
	defer crit.Unlock()
	central.echo = output
}
