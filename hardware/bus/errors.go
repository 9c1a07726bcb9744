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

package bus

import (
	"errors"
	"fmt"
)

// BusFault is the parent error for all bus faults. Bus faults are only
// raised by a controller in strict mode.
var BusFault = errors.New("bus fault")

// Sentinel errors wrapping BusFault.
var (
	UndrivenRead = fmt.Errorf("%w: no device drove the data bus during a read", BusFault)
	Contention   = fmt.Errorf("%w: more than one device drove the data bus", BusFault)
)
