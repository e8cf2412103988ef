package gb

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSnapshotRestoreRoundTrip(t *testing.T) {
	rom := make([]byte, 0x8000)
	bus := NewBus()
	bus.InsertCartridge(NewFlatMBC(rom, true))
	cpu := NewCPU(bus)
	cpu.LoadPostBootState()
	cpu.Reg.SetA(0x99)
	bus.Write(0xC000, 0x11)
	bus.Write(0xFF80, 0x22)
	bus.cart.WriteExternalRAM(0xA010, 0x33)

	data, err := cpu.Snapshot()
	assert.NoError(t, err)
	assert.NotEmpty(t, data)

	restored := NewCPU(NewBus())
	restored.bus.InsertCartridge(NewFlatMBC(make([]byte, 0x8000), true))
	err = restored.Restore(data)
	assert.NoError(t, err)

	assert.Equal(t, cpu.Reg.A(), restored.Reg.A())
	assert.Equal(t, cpu.Reg.PC, restored.Reg.PC)
	assert.Equal(t, cpu.Reg.SP, restored.Reg.SP)
	assert.Equal(t, byte(0x11), restored.bus.Read(0xC000))
	assert.Equal(t, byte(0x22), restored.bus.Read(0xFF80))
	assert.Equal(t, byte(0x33), restored.bus.cart.ReadExternalRAM(0xA010))
}

func TestRestoreLeavesCPUUntouchedOnDecodeError(t *testing.T) {
	cpu := NewCPU(NewBus())
	cpu.LoadPostBootState()
	before := cpu.Reg.A()

	err := cpu.Restore([]byte{0x01, 0x02, 0x03})
	assert.Error(t, err)
	assert.Equal(t, before, cpu.Reg.A(), "a failed Restore must not mutate the CPU")
}
