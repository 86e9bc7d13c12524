package openrisc64

import "context"

const powerCtrlOffset = 0x30

func (b *Backend) Reboot(ctx context.Context) {
	b.mmioWriteByte(DefaultConfig.IntcBase+powerCtrlOffset, 0x01)
	b.Halt(ctx)
}

func (b *Backend) Shutdown(ctx context.Context) {
	b.mmioWriteByte(DefaultConfig.IntcBase+powerCtrlOffset, 0x02)
	b.Halt(ctx)
}
