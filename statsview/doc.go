// This file is part of emu6502.
//
// emu6502 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// emu6502 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with emu6502.  If not, see <https://www.gnu.org/licenses/>.

// Package statsview serves runtime statistics over HTTP while the emulation
// is running. It is only available when built with the statsview build tag:
//
//	go build -tags statsview
//
// After launch, graphs of the Go runtime statistics can be viewed at:
//
//	localhost:12650/debug/statsview
//
// Without the build tag Launch() does nothing and Available() returns false.
package statsview
