// This file is part of GopherNES.
//
// GopherNES is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// GopherNES is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with GopherNES.  If not, see <https://www.gnu.org/licenses/>.

package cpu

import (
	"fmt"

	"github.com/jetsetilly/gophernes/curated"
	"github.com/jetsetilly/gophernes/hardware/cpu/execution"
	"github.com/jetsetilly/gophernes/hardware/cpu/instructions"
	"github.com/jetsetilly/gophernes/hardware/cpu/registers"
	"github.com/jetsetilly/gophernes/hardware/instance"
	"github.com/jetsetilly/gophernes/hardware/memory/cpubus"
	"github.com/jetsetilly/gophernes/hardware/preferences"
	"github.com/jetsetilly/gophernes/logger"
)

// Sentinal errors returned by the CPU.
const (
	UnimplementedInstruction = "cpu: unimplemented instruction (%#02x) at (%#04x)"
	Halted                   = "cpu: halted at (%#04x)"
	UnknownOperator          = "cpu: unknown operator (%s)"
)

// CPU implements the 2A03 found in the NES. Register logic is implemented by
// the types in the registers sub-package.
type CPU struct {
	instance *instance.Instance

	PC     registers.ProgramCounter
	A      registers.Register
	X      registers.Register
	Y      registers.Register
	SP     registers.StackPointer
	Status registers.StatusRegister

	// the number of cycles since the last reset
	Cycles uint64

	// some operations only need an accumulator
	acc8  registers.Register
	acc16 registers.ProgramCounter

	mem cpubus.Memory

	// cycleCallback is called for additional emulator functionality
	cycleCallback func() error

	// the result of the last instruction. the result is updated during
	// execution so it can be inspected from the cycle callback
	LastResult execution.Result

	// whether the last memory access by the CPU was a phantom access
	PhantomMemAccess bool

	// the cpu has encountered a KIL instruction or an undocumented opcode
	// under the abort policy. requires a Reset()
	Killed bool
}

// NewCPU is the preferred method of initialisation for the CPU structure. The
// instance argument can be nil, in which case undocumented opcodes are
// emulated and decimal mode is ignored.
func NewCPU(instance *instance.Instance, mem cpubus.Memory) *CPU {
	return &CPU{
		instance: instance,
		mem:      mem,
		PC:       registers.NewProgramCounter(0),
		A:        registers.NewRegister(0, "A"),
		X:        registers.NewRegister(0, "X"),
		Y:        registers.NewRegister(0, "Y"),
		SP:       registers.NewStackPointer(0),
		Status:   registers.NewStatusRegister(),
		acc8:     registers.NewRegister(0, "accumulator"),
		acc16:    registers.NewProgramCounter(0),
	}
}

// Snapshot creates a copy of the CPU in its current state. The copy is not
// connected to any memory or cycle callback.
func (mc *CPU) Snapshot() *CPU {
	n := *mc
	n.mem = nil
	n.cycleCallback = nil
	return &n
}

// Plumb a new instance and memory into the CPU. Used after a snapshot has
// been restored.
func (mc *CPU) Plumb(instance *instance.Instance, mem cpubus.Memory) {
	mc.instance = instance
	mc.mem = mem
}

func (mc *CPU) String() string {
	return fmt.Sprintf("%s=%s %s=%s %s=%s %s=%s %s=%s %s=%s",
		mc.PC.Label(), mc.PC, mc.A.Label(), mc.A,
		mc.X.Label(), mc.X, mc.Y.Label(), mc.Y,
		mc.SP.Label(), mc.SP, mc.Status.Label(), mc.Status)
}

// Clock implements the random.Clock interface.
func (mc *CPU) Clock() uint64 {
	return mc.Cycles
}

// NilCycleCallback can be provided as an argument to ExecuteInstruction().
func NilCycleCallback() error {
	return nil
}

// Reset the CPU as though the reset line has been asserted. The reset
// sequence takes seven cycles and ends with the PC loaded from the reset
// vector. The stack pointer is decremented three times by the sequence, as it
// would be by an interrupt, but nothing is written to the stack.
func (mc *CPU) Reset(cycleCallback func() error) error {
	mc.LastResult.Reset()
	mc.Killed = false
	mc.cycleCallback = cycleCallback
	mc.Cycles = 0

	mc.A.Load(0)
	mc.X.Load(0)
	mc.Y.Load(0)
	mc.SP.Load(0)
	mc.Status.Reset()

	for range 2 {
		if _, err := mc.read8Bit(mc.PC.Address(), true); err != nil {
			return err
		}
	}

	for range 3 {
		if _, err := mc.read8Bit(mc.SP.Address(), true); err != nil {
			return err
		}
		mc.SP.Push()
	}

	address, err := mc.read16Bit(cpubus.Reset)
	if err != nil {
		return err
	}
	mc.PC.Load(address)

	mc.LastResult.Reset()
	logger.Logf(mc.instance, "cpu", "reset: PC=%#04x", address)

	return nil
}

// Interrupt services an NMI or an IRQ. An IRQ is ignored if the interrupt
// disable flag is set. Servicing an interrupt takes seven cycles.
func (mc *CPU) Interrupt(nmi bool, cycleCallback func() error) error {
	if mc.Killed {
		return nil
	}

	if !nmi && mc.Status.InterruptDisable {
		return nil
	}

	mc.cycleCallback = cycleCallback

	for range 2 {
		if _, err := mc.read8Bit(mc.PC.Address(), true); err != nil {
			return err
		}
	}

	if err := mc.push(uint8(mc.PC.Address() >> 8)); err != nil {
		return err
	}
	if err := mc.push(uint8(mc.PC.Address())); err != nil {
		return err
	}
	if err := mc.push(mc.Status.PushValue(false)); err != nil {
		return err
	}
	mc.Status.InterruptDisable = true

	vector := cpubus.IRQ
	if nmi {
		vector = cpubus.NMI
	}

	address, err := mc.read16Bit(vector)
	if err != nil {
		return err
	}
	mc.PC.Load(address)

	return nil
}

// Stall the CPU for a single cycle. Used by the OAM DMA unit, which holds
// the CPU for the duration of a transfer. The cycle is not counted towards
// the last result.
func (mc *CPU) Stall(cycleCallback func() error) error {
	mc.cycleCallback = cycleCallback
	mc.Cycles++
	if mc.cycleCallback == nil {
		return nil
	}
	return mc.cycleCallback()
}

// cycle marks the end of a cycle.
func (mc *CPU) cycle() error {
	mc.Cycles++
	if !mc.LastResult.Final {
		mc.LastResult.Cycles++
	}
	if mc.cycleCallback == nil {
		return nil
	}
	return mc.cycleCallback()
}

// read8Bit returns 8bit value from the specified address
//
// side-effects:
//   - calls cycleCallback after memory read
func (mc *CPU) read8Bit(address uint16, phantom bool) (uint8, error) {
	mc.PhantomMemAccess = phantom

	val, err := mc.mem.Read(address)
	if err != nil {
		return 0, err
	}

	return val, mc.cycle()
}

// write8Bit writes 8 bits to the specified address
//
// side-effects:
//   - calls cycleCallback after memory write
func (mc *CPU) write8Bit(address uint16, value uint8, phantom bool) error {
	mc.PhantomMemAccess = phantom

	err := mc.mem.Write(address, value)
	if err != nil {
		return err
	}

	return mc.cycle()
}

// read16Bit returns 16bit value from the specified address
//
// side-effects:
//   - calls cycleCallback after each 8bit read
func (mc *CPU) read16Bit(address uint16) (uint16, error) {
	lo, err := mc.read8Bit(address, false)
	if err != nil {
		return 0, err
	}

	hi, err := mc.read8Bit(address+1, false)
	if err != nil {
		return 0, err
	}

	return (uint16(hi) << 8) | uint16(lo), nil
}

// read16BitZeroPage returns the 16bit pointer stored in the zero page. the
// high byte of a pointer at $ff is read from $00.
func (mc *CPU) read16BitZeroPage(address uint8) (uint16, error) {
	lo, err := mc.read8Bit(uint16(address), false)
	if err != nil {
		return 0, err
	}

	hi, err := mc.read8Bit(uint16(address+1), false)
	if err != nil {
		return 0, err
	}

	return (uint16(hi) << 8) | uint16(lo), nil
}

// read 8bits from the PC location has a variety of additional side-effects
// depending on context.
type read8BitPCeffect int

const (
	brk read8BitPCeffect = iota
	newOpcode
	loNibble
	hiNibble
)

// read8BitPC reads 8 bits from the memory location pointed to by PC
//
// side-effects:
//   - updates program counter
//   - calls cycleCallback at end of function
//   - updates LastResult.ByteCount
//   - additional side effect updates LastResult as appropriate
func (mc *CPU) read8BitPC(effect read8BitPCeffect) error {
	mc.PhantomMemAccess = false

	v, err := mc.mem.Read(mc.PC.Address())
	if err != nil {
		return err
	}

	mc.PC.Add(1)

	switch effect {
	case brk:
		// the BRK instruction advances the PC by two but the padding byte
		// is not part of the instruction
	case newOpcode:
		mc.LastResult.ByteCount++
		mc.LastResult.Defn = instructions.Lookup(v)
	case loNibble:
		mc.LastResult.ByteCount++
		mc.LastResult.InstructionData = uint16(v)
	case hiNibble:
		mc.LastResult.ByteCount++
		mc.LastResult.InstructionData = (uint16(v) << 8) | mc.LastResult.InstructionData
	}

	return mc.cycle()
}

// read16BitPC reads 16 bits from the memory location pointed to by PC
//
// side-effects:
//   - updates program counter
//   - calls cycleCallback after each 8 bit read
//   - updates LastResult.ByteCount
//   - updates InstructionData field, once before each call to cycleCallback
func (mc *CPU) read16BitPC() error {
	err := mc.read8BitPC(loNibble)
	if err != nil {
		return err
	}
	return mc.read8BitPC(hiNibble)
}

// push value onto the stack
func (mc *CPU) push(value uint8) error {
	err := mc.write8Bit(mc.SP.Address(), value, false)
	if err != nil {
		return err
	}
	mc.SP.Push()
	return nil
}

// pull value from the stack
func (mc *CPU) pull() (uint8, error) {
	mc.SP.Pull()
	return mc.read8Bit(mc.SP.Address(), false)
}

func (mc *CPU) branch(flag bool, address uint16) error {
	// the 8bit offset must be sign extended before it is added to the PC
	if address&0x0080 == 0x0080 {
		address |= 0xff00
	}

	mc.LastResult.BranchSuccess = flag

	if !flag {
		return nil
	}

	oldPC := mc.PC.Address()

	// phantom read
	// +1 cycle
	_, err := mc.read8Bit(mc.PC.Address(), true)
	if err != nil {
		return err
	}

	// the offset is added to the LSB of the PC only. the MSB is corrected in
	// the next cycle if necessary
	mc.PC.Add(address)
	mc.LastResult.PageFault = oldPC&0xff00 != mc.PC.Address()&0xff00
	mc.PC.Load(oldPC&0xff00 | mc.PC.Address()&0x00ff)

	if mc.LastResult.PageFault {
		// phantom read
		// +1 cycle
		_, err := mc.read8Bit(mc.PC.Address(), true)
		if err != nil {
			return err
		}

		if address&0xff00 == 0xff00 {
			mc.PC.Add(0xff00)
		} else {
			mc.PC.Add(0x0100)
		}
	}

	return nil
}

// the illegal opcode policy in effect
func (mc *CPU) illegalPolicy() string {
	if mc.instance == nil || mc.instance.Prefs == nil {
		return preferences.IllegalEmulate
	}
	return mc.instance.Prefs.IllegalPolicy()
}

// whether ADC and SBC honour the decimal flag
func (mc *CPU) decimalArithmetic() bool {
	if !mc.Status.DecimalMode {
		return false
	}
	return mc.instance != nil && mc.instance.Prefs != nil && mc.instance.Prefs.HasBCD()
}

func (mc *CPU) setZN(r registers.Register) {
	mc.Status.Zero = r.IsZero()
	mc.Status.Sign = r.IsNegative()
}

func (mc *CPU) adc(value uint8) {
	if mc.decimalArithmetic() {
		mc.Status.Carry,
			mc.Status.Zero,
			mc.Status.Overflow,
			mc.Status.Sign = mc.A.AddDecimal(value, mc.Status.Carry)
		return
	}
	mc.Status.Carry, mc.Status.Overflow = mc.A.Add(value, mc.Status.Carry)
	mc.setZN(mc.A)
}

func (mc *CPU) sbc(value uint8) {
	if mc.decimalArithmetic() {
		mc.Status.Carry,
			mc.Status.Zero,
			mc.Status.Overflow,
			mc.Status.Sign = mc.A.SubtractDecimal(value, mc.Status.Carry)
		return
	}
	mc.Status.Carry, mc.Status.Overflow = mc.A.Subtract(value, mc.Status.Carry)
	mc.setZN(mc.A)
}

// compare register with value. the result of the comparison is discarded
func (mc *CPU) compare(r registers.Register, value uint8) {
	mc.acc8.Load(r.Value())
	mc.Status.Carry, _ = mc.acc8.Subtract(value, true)
	mc.setZN(mc.acc8)
}

// skip the instruction, consuming the bytes and cycles it would use. the
// operand is read but otherwise ignored
func (mc *CPU) skip(defn *instructions.Definition) error {
	if defn.Bytes > 1 {
		if err := mc.read8BitPC(loNibble); err != nil {
			return err
		}
	}
	if defn.Bytes > 2 {
		if err := mc.read8BitPC(hiNibble); err != nil {
			return err
		}
	}
	for mc.LastResult.Cycles < defn.Cycles {
		if _, err := mc.read8Bit(mc.PC.Address(), true); err != nil {
			return err
		}
	}
	mc.LastResult.Final = true
	return nil
}

// ExecuteInstruction steps CPU forward one instruction. The basic process when
// executing an instruction is this:
//
//  1. read opcode and look up instruction definition
//  2. read operands (if any) according to the addressing mode of the instruction
//  3. using the operator as a guide, perform the instruction on the data
//
// All instructions take at least 2 cycles. After each cycle, the
// cycleCallback() function is run, thereby allowing the rest of the NES
// hardware to operate.
//
// An error is returned if the CPU has been halted. The CPU is halted by the
// KIL instruction or by an undocumented opcode when the illegal opcode policy
// is "abort".
func (mc *CPU) ExecuteInstruction(cycleCallback func() error) error {
	if mc.Killed {
		return curated.Errorf(Halted, mc.PC.Address())
	}

	mc.cycleCallback = cycleCallback

	// prepare new round of results
	mc.LastResult.Reset()
	mc.LastResult.Address = mc.PC.Address()

	// +1 cycle
	err := mc.read8BitPC(newOpcode)
	if err != nil {
		return err
	}
	defn := mc.LastResult.Defn

	if defn.Undocumented {
		switch mc.illegalPolicy() {
		case preferences.IllegalAbort:
			mc.PC.Load(mc.LastResult.Address)
			mc.Killed = true
			mc.LastResult.Final = true
			logger.Logf(mc.instance, "cpu", "halted by undocumented opcode %s at %#04x", defn.Operator, mc.LastResult.Address)
			return curated.Errorf(UnimplementedInstruction, defn.OpCode, mc.LastResult.Address)
		case preferences.IllegalNOP:
			return mc.skip(defn)
		}
	}

	// address is the actual address to use to access memory (after any
	// indexing has taken place)
	var address uint16

	// the address before indexing. used by the SHX family of instructions
	var base uint16

	// value is read from the program for immediate mode, and from memory for
	// all other modes that read. for read-modify-write instructions the
	// value will change during execution and be written back to memory
	var value uint8

	// whether the final address is in a different page to the base address
	var crossed bool

	switch defn.AddressingMode {
	case instructions.Implied:
		if defn.Operator == instructions.Brk {
			// +1 cycle
			err = mc.read8BitPC(brk)
		} else {
			// the byte after the opcode is read but the PC is not incremented
			// +1 cycle
			_, err = mc.read8Bit(mc.PC.Address(), true)
		}
		if err != nil {
			return err
		}

	case instructions.Immediate:
		// +1 cycle
		err = mc.read8BitPC(loNibble)
		if err != nil {
			return err
		}
		value = uint8(mc.LastResult.InstructionData)

	case instructions.Relative:
		// most of the cycles for this addressing mode are consumed in the
		// branch() function
		// +1 cycle
		err = mc.read8BitPC(loNibble)
		if err != nil {
			return err
		}
		address = mc.LastResult.InstructionData

	case instructions.Absolute:
		// the address for JSR is read in the operator switch below
		if defn.Effect != instructions.Subroutine {
			// +2 cycles
			err = mc.read16BitPC()
			if err != nil {
				return err
			}
			address = mc.LastResult.InstructionData
		}

	case instructions.ZeroPage:
		// +1 cycle
		err = mc.read8BitPC(loNibble)
		if err != nil {
			return err
		}
		address = mc.LastResult.InstructionData

	case instructions.Indirect:
		// only used by JMP
		// +2 cycles
		err = mc.read16BitPC()
		if err != nil {
			return err
		}
		indirect := mc.LastResult.InstructionData

		// the high byte of the pointer is always read from the same page
		// as the low byte
		if indirect&0x00ff == 0x00ff {
			mc.LastResult.CPUBug = execution.JmpIndirectAddressingBug
		}

		// +2 cycles
		lo, err := mc.read8Bit(indirect, false)
		if err != nil {
			return err
		}
		hi, err := mc.read8Bit(indirect&0xff00|(indirect+1)&0x00ff, false)
		if err != nil {
			return err
		}
		address = (uint16(hi) << 8) | uint16(lo)

	case instructions.IndexedIndirect: // x indexing
		// +1 cycle
		err = mc.read8BitPC(loNibble)
		if err != nil {
			return err
		}
		zp := uint8(mc.LastResult.InstructionData)

		// phantom read before adjusting the index
		// +1 cycle
		_, err = mc.read8Bit(uint16(zp), true)
		if err != nil {
			return err
		}

		// indexing never leaves the zero page
		mc.acc8.Load(zp)
		mc.acc8.Add(mc.X.Value(), false)
		if mc.acc8.Value() < zp || mc.acc8.Value() == 0xff {
			mc.LastResult.CPUBug = execution.IndexedIndirectAddressingBug
		}

		// +2 cycles
		address, err = mc.read16BitZeroPage(mc.acc8.Value())
		if err != nil {
			return err
		}

	case instructions.IndirectIndexed: // y indexing
		// +1 cycle
		err = mc.read8BitPC(loNibble)
		if err != nil {
			return err
		}
		zp := uint8(mc.LastResult.InstructionData)
		if zp == 0xff {
			mc.LastResult.CPUBug = execution.IndirectIndexedAddressingBug
		}

		// +2 cycles
		base, err = mc.read16BitZeroPage(zp)
		if err != nil {
			return err
		}

		address, crossed, err = mc.indexed(defn, base, mc.Y)
		if err != nil {
			return err
		}

	case instructions.AbsoluteIndexedX:
		// +2 cycles
		err = mc.read16BitPC()
		if err != nil {
			return err
		}
		base = mc.LastResult.InstructionData

		address, crossed, err = mc.indexed(defn, base, mc.X)
		if err != nil {
			return err
		}

	case instructions.AbsoluteIndexedY:
		// +2 cycles
		err = mc.read16BitPC()
		if err != nil {
			return err
		}
		base = mc.LastResult.InstructionData

		address, crossed, err = mc.indexed(defn, base, mc.Y)
		if err != nil {
			return err
		}

	case instructions.ZeroPageIndexedX, instructions.ZeroPageIndexedY:
		// +1 cycle
		err = mc.read8BitPC(loNibble)
		if err != nil {
			return err
		}
		zp := uint8(mc.LastResult.InstructionData)

		// phantom read from base address before index adjustment
		// +1 cycle
		_, err = mc.read8Bit(uint16(zp), true)
		if err != nil {
			return err
		}

		idx := mc.X
		if defn.AddressingMode == instructions.ZeroPageIndexedY {
			idx = mc.Y
		}

		// indexing never leaves the zero page
		mc.acc8.Load(zp)
		mc.acc8.Add(idx.Value(), false)
		address = mc.acc8.Address()
		if mc.acc8.Value() < zp {
			mc.LastResult.CPUBug = execution.ZeroPageIndexBug
		}

	default:
		return fmt.Errorf("cpu: unknown addressing mode for %s", defn.Operator)
	}

	// the value has already been found for implied and immediate modes. for
	// other modes the value is only read for instructions that need it
	if defn.AddressingMode != instructions.Implied && defn.AddressingMode != instructions.Immediate {
		switch defn.Effect {
		case instructions.Read:
			// +1 cycle
			value, err = mc.read8Bit(address, false)
			if err != nil {
				return err
			}

		case instructions.RMW:
			// +1 cycle
			value, err = mc.read8Bit(address, false)
			if err != nil {
				return err
			}

			// the unmodified value is written back before the modified value
			// +1 cycle
			err = mc.write8Bit(address, value, true)
			if err != nil {
				return err
			}
		}
	}

	switch defn.Operator {
	case instructions.Nop, instructions.NOP:

	case instructions.Cli:
		mc.Status.InterruptDisable = false

	case instructions.Sei:
		mc.Status.InterruptDisable = true

	case instructions.Clc:
		mc.Status.Carry = false

	case instructions.Sec:
		mc.Status.Carry = true

	case instructions.Cld:
		mc.Status.DecimalMode = false

	case instructions.Sed:
		mc.Status.DecimalMode = true

	case instructions.Clv:
		mc.Status.Overflow = false

	case instructions.Pha:
		// +1 cycle
		err = mc.push(mc.A.Value())
		if err != nil {
			return err
		}

	case instructions.Php:
		// +1 cycle
		err = mc.push(mc.Status.PushValue(true))
		if err != nil {
			return err
		}

	case instructions.Pla:
		// +1 cycle
		_, err = mc.read8Bit(mc.SP.Address(), true)
		if err != nil {
			return err
		}

		// +1 cycle
		value, err = mc.pull()
		if err != nil {
			return err
		}
		mc.A.Load(value)
		mc.setZN(mc.A)

	case instructions.Plp:
		// +1 cycle
		_, err = mc.read8Bit(mc.SP.Address(), true)
		if err != nil {
			return err
		}

		// +1 cycle
		value, err = mc.pull()
		if err != nil {
			return err
		}
		mc.Status.Load(value)

	case instructions.Txa:
		mc.A.Load(mc.X.Value())
		mc.setZN(mc.A)

	case instructions.Tax:
		mc.X.Load(mc.A.Value())
		mc.setZN(mc.X)

	case instructions.Tay:
		mc.Y.Load(mc.A.Value())
		mc.setZN(mc.Y)

	case instructions.Tya:
		mc.A.Load(mc.Y.Value())
		mc.setZN(mc.A)

	case instructions.Tsx:
		mc.X.Load(mc.SP.Value())
		mc.setZN(mc.X)

	case instructions.Txs:
		// does not affect status register
		mc.SP.Load(mc.X.Value())

	case instructions.Eor:
		mc.A.EOR(value)
		mc.setZN(mc.A)

	case instructions.Ora:
		mc.A.ORA(value)
		mc.setZN(mc.A)

	case instructions.And:
		mc.A.AND(value)
		mc.setZN(mc.A)

	case instructions.Lda:
		mc.A.Load(value)
		mc.setZN(mc.A)

	case instructions.Ldx:
		mc.X.Load(value)
		mc.setZN(mc.X)

	case instructions.Ldy:
		mc.Y.Load(value)
		mc.setZN(mc.Y)

	case instructions.Sta:
		// +1 cycle
		err = mc.write8Bit(address, mc.A.Value(), false)
		if err != nil {
			return err
		}

	case instructions.Stx:
		// +1 cycle
		err = mc.write8Bit(address, mc.X.Value(), false)
		if err != nil {
			return err
		}

	case instructions.Sty:
		// +1 cycle
		err = mc.write8Bit(address, mc.Y.Value(), false)
		if err != nil {
			return err
		}

	case instructions.Inx:
		mc.X.Add(1, false)
		mc.setZN(mc.X)

	case instructions.Iny:
		mc.Y.Add(1, false)
		mc.setZN(mc.Y)

	case instructions.Dex:
		mc.X.Add(0xff, false)
		mc.setZN(mc.X)

	case instructions.Dey:
		mc.Y.Add(0xff, false)
		mc.setZN(mc.Y)

	case instructions.Asl, instructions.Lsr, instructions.Rol, instructions.Ror:
		// the accumulator is the target for the implied addressing mode
		r := &mc.A
		if defn.Effect == instructions.RMW {
			r = &mc.acc8
			r.Load(value)
		}

		switch defn.Operator {
		case instructions.Asl:
			mc.Status.Carry = r.ASL()
		case instructions.Lsr:
			mc.Status.Carry = r.LSR()
		case instructions.Rol:
			mc.Status.Carry = r.ROL(mc.Status.Carry)
		case instructions.Ror:
			mc.Status.Carry = r.ROR(mc.Status.Carry)
		}
		mc.setZN(*r)
		value = r.Value()

	case instructions.Adc:
		mc.adc(value)

	case instructions.Sbc, instructions.SBC:
		mc.sbc(value)

	case instructions.Inc:
		mc.acc8.Load(value)
		mc.acc8.Add(1, false)
		mc.setZN(mc.acc8)
		value = mc.acc8.Value()

	case instructions.Dec:
		mc.acc8.Load(value)
		mc.acc8.Add(0xff, false)
		mc.setZN(mc.acc8)
		value = mc.acc8.Value()

	case instructions.Cmp:
		// CMP is always binary, even in decimal mode
		mc.compare(mc.A, value)

	case instructions.Cpx:
		mc.compare(mc.X, value)

	case instructions.Cpy:
		mc.compare(mc.Y, value)

	case instructions.Bit:
		mc.acc8.Load(value)
		mc.Status.Sign = mc.acc8.IsNegative()
		mc.Status.Overflow = mc.acc8.IsBitV()
		mc.acc8.AND(mc.A.Value())
		mc.Status.Zero = mc.acc8.IsZero()

	case instructions.Jmp:
		mc.PC.Load(address)

	case instructions.Bcc:
		err = mc.branch(!mc.Status.Carry, address)

	case instructions.Bcs:
		err = mc.branch(mc.Status.Carry, address)

	case instructions.Beq:
		err = mc.branch(mc.Status.Zero, address)

	case instructions.Bmi:
		err = mc.branch(mc.Status.Sign, address)

	case instructions.Bne:
		err = mc.branch(!mc.Status.Zero, address)

	case instructions.Bpl:
		err = mc.branch(!mc.Status.Sign, address)

	case instructions.Bvc:
		err = mc.branch(!mc.Status.Overflow, address)

	case instructions.Bvs:
		err = mc.branch(mc.Status.Overflow, address)

	case instructions.Jsr:
		// +1 cycle
		err = mc.read8BitPC(loNibble)
		if err != nil {
			return err
		}

		// the PC now points to the last byte of the JSR instruction. this is
		// the value pushed to the stack. RTS adds one to the pulled value

		// internal operation. the stack is read but not modified
		// +1 cycle
		_, err = mc.read8Bit(mc.SP.Address(), true)
		if err != nil {
			return err
		}

		// +2 cycles
		err = mc.push(uint8(mc.PC.Address() >> 8))
		if err != nil {
			return err
		}
		err = mc.push(uint8(mc.PC.Address()))
		if err != nil {
			return err
		}

		// +1 cycle
		err = mc.read8BitPC(hiNibble)
		if err != nil {
			return err
		}
		mc.PC.Load(mc.LastResult.InstructionData)

	case instructions.Rts:
		// +1 cycle
		_, err = mc.read8Bit(mc.SP.Address(), true)
		if err != nil {
			return err
		}

		// +2 cycles
		lo, err := mc.pull()
		if err != nil {
			return err
		}
		hi, err := mc.pull()
		if err != nil {
			return err
		}
		mc.PC.Load((uint16(hi) << 8) | uint16(lo))

		// +1 cycle
		_, err = mc.read8Bit(mc.PC.Address(), true)
		if err != nil {
			return err
		}
		mc.PC.Add(1)

	case instructions.Brk:
		// +3 cycles
		err = mc.push(uint8(mc.PC.Address() >> 8))
		if err != nil {
			return err
		}
		err = mc.push(uint8(mc.PC.Address()))
		if err != nil {
			return err
		}
		err = mc.push(mc.Status.PushValue(true))
		if err != nil {
			return err
		}

		mc.Status.InterruptDisable = true

		// +2 cycles
		address, err = mc.read16Bit(cpubus.BRK)
		if err != nil {
			return err
		}
		mc.PC.Load(address)

	case instructions.Rti:
		// +1 cycle
		_, err = mc.read8Bit(mc.SP.Address(), true)
		if err != nil {
			return err
		}

		// +1 cycle
		value, err = mc.pull()
		if err != nil {
			return err
		}
		mc.Status.Load(value)

		// +2 cycles
		lo, err := mc.pull()
		if err != nil {
			return err
		}
		hi, err := mc.pull()
		if err != nil {
			return err
		}

		// unlike RTS there is no need to add one to return address
		mc.PC.Load((uint16(hi) << 8) | uint16(lo))

	// undocumented instructions

	case instructions.LAX:
		mc.A.Load(value)
		mc.X.Load(value)
		mc.setZN(mc.A)

	case instructions.SAX:
		mc.acc8.Load(mc.A.Value())
		mc.acc8.AND(mc.X.Value())

		// +1 cycle
		err = mc.write8Bit(address, mc.acc8.Value(), false)
		if err != nil {
			return err
		}

	case instructions.DCP:
		mc.acc8.Load(value)
		mc.acc8.Add(0xff, false)
		value = mc.acc8.Value()
		mc.compare(mc.A, value)

	case instructions.ISC:
		mc.acc8.Load(value)
		mc.acc8.Add(1, false)
		value = mc.acc8.Value()
		mc.sbc(value)

	case instructions.SLO:
		mc.acc8.Load(value)
		mc.Status.Carry = mc.acc8.ASL()
		value = mc.acc8.Value()
		mc.A.ORA(value)
		mc.setZN(mc.A)

	case instructions.RLA:
		mc.acc8.Load(value)
		mc.Status.Carry = mc.acc8.ROL(mc.Status.Carry)
		value = mc.acc8.Value()
		mc.A.AND(value)
		mc.setZN(mc.A)

	case instructions.SRE:
		mc.acc8.Load(value)
		mc.Status.Carry = mc.acc8.LSR()
		value = mc.acc8.Value()
		mc.A.EOR(value)
		mc.setZN(mc.A)

	case instructions.RRA:
		mc.acc8.Load(value)
		mc.Status.Carry = mc.acc8.ROR(mc.Status.Carry)
		value = mc.acc8.Value()
		mc.adc(value)

	case instructions.ANC:
		// bit 7 of the result is copied into the carry flag as though ASL
		// had been performed
		mc.A.AND(value)
		mc.setZN(mc.A)
		mc.Status.Carry = mc.A.IsNegative()

	case instructions.ASR:
		mc.A.AND(value)
		mc.Status.Carry = mc.A.LSR()
		mc.setZN(mc.A)

	case instructions.ARR:
		mc.A.AND(value)
		mc.A.ROR(mc.Status.Carry)
		mc.setZN(mc.A)
		mc.Status.Carry = mc.A.Value()&0x40 == 0x40
		mc.Status.Overflow = (mc.A.Value()>>6)&0x01 != (mc.A.Value()>>5)&0x01

	case instructions.XAA:
		// unstable. the 'magic' constant is taken to be $ff
		mc.A.Load(mc.X.Value())
		mc.A.AND(value)
		mc.setZN(mc.A)

	case instructions.AXS:
		// the subtraction behaves like CMP as far as the flags are concerned
		mc.X.AND(mc.A.Value())
		mc.Status.Carry, _ = mc.X.Subtract(value, true)
		mc.setZN(mc.X)

	case instructions.LAS:
		mc.SP.AND(value)
		mc.A.Load(mc.SP.Value())
		mc.X.Load(mc.SP.Value())
		mc.setZN(mc.A)

	case instructions.AHX, instructions.SHX, instructions.SHY, instructions.TAS:
		switch defn.Operator {
		case instructions.AHX:
			mc.acc8.Load(mc.A.Value())
			mc.acc8.AND(mc.X.Value())
		case instructions.SHX:
			mc.acc8.Load(mc.X.Value())
		case instructions.SHY:
			mc.acc8.Load(mc.Y.Value())
		case instructions.TAS:
			mc.acc8.Load(mc.A.Value())
			mc.acc8.AND(mc.X.Value())
			mc.SP.Load(mc.acc8.Value())
		}

		// the value is ANDed with the high byte of the base address plus
		// one. when the indexing crosses a page the same value replaces the
		// high byte of the address
		mc.acc8.AND(uint8(base>>8) + 1)
		if crossed {
			address = uint16(mc.acc8.Value())<<8 | address&0x00ff
		}

		// +1 cycle
		err = mc.write8Bit(address, mc.acc8.Value(), false)
		if err != nil {
			return err
		}

	case instructions.KIL:
		mc.Killed = true
		logger.Logf(mc.instance, "cpu", "KIL instruction at %#04x", mc.LastResult.Address)

	default:
		return curated.Errorf(UnknownOperator, defn.Operator)
	}

	// error from branch()
	if err != nil {
		return err
	}

	// for RMW instructions: write altered value back to memory
	if defn.Effect == instructions.RMW {
		// +1 cycle
		err = mc.write8Bit(address, value, false)
		if err != nil {
			return err
		}
	}

	mc.LastResult.Final = true

	return nil
}

// indexed adds the index register to the base address, performing the
// phantom read that the CPU makes before the high byte of the address has
// been corrected. the phantom read happens for all write and read-modify-write
// instructions but only when a page is crossed for read instructions.
//
// returns the final address and whether a page was crossed.
func (mc *CPU) indexed(defn *instructions.Definition, base uint16, idx registers.Register) (uint16, bool, error) {
	// add index to LSB of address
	mc.acc16.Load(idx.Address())
	mc.acc16.Add(base & 0x00ff)
	crossed := mc.acc16.Address()&0xff00 == 0x0100

	mc.LastResult.PageFault = defn.PageSensitive && crossed
	if mc.LastResult.PageFault || defn.Effect == instructions.Write || defn.Effect == instructions.RMW {
		// +1 cycle
		_, err := mc.read8Bit((base&0xff00)|(mc.acc16.Address()&0x00ff), true)
		if err != nil {
			return 0, false, err
		}
	}

	// fix MSB of address
	mc.acc16.Add(base & 0xff00)

	return mc.acc16.Address(), crossed, nil
}
