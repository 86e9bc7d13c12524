package loongarch64

import "context"

// Power-control MMIO magic register, per the original's
// power_controller_write sequencing.
const powerCtrlOffset = 0x80

func (b *Backend) Reboot(ctx context.Context) {
	b.mmioWriteByte(DefaultConfig.IntcBase+powerCtrlOffset, 0x01)
	b.Halt(ctx)
}

func (b *Backend) Shutdown(ctx context.Context) {
	b.mmioWriteByte(DefaultConfig.IntcBase+powerCtrlOffset, 0x02)
	b.Halt(ctx)
}
