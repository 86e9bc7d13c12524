package memsim

import "testing"

func TestReadWriteByte(t *testing.T) {
	s := NewSpace(4096)
	s.WriteByte(0x10, 0xAB)
	if got := s.ReadByte(0x10); got != 0xAB {
		t.Errorf("expected 0xAB, got 0x%02x", got)
	}
}

func TestReadWriteWord(t *testing.T) {
	s := NewSpace(4096)
	s.WriteWord(0x20, 0xDEADBEEF)
	if got := s.ReadWord(0x20); got != 0xDEADBEEF {
		t.Errorf("expected 0xDEADBEEF, got 0x%08x", got)
	}
}

func TestReadWriteDword(t *testing.T) {
	s := NewSpace(4096)
	s.WriteDword(0x30, 0x0123456789ABCDEF)
	if got := s.ReadDword(0x30); got != 0x0123456789ABCDEF {
		t.Errorf("expected 0x0123456789ABCDEF, got 0x%016x", got)
	}
}

func TestCheckAddr(t *testing.T) {
	s := NewSpace(4096)
	if !s.CheckAddr(4095) {
		t.Errorf("expected 4095 to be in range")
	}
	if s.CheckAddr(4096) {
		t.Errorf("expected 4096 to be out of range")
	}
}

func TestAttrPerPage(t *testing.T) {
	s := NewSpace(8192)
	s.SetAttr(0x0010, 0x3)
	if got := s.GetAttr(0x0010); got != 0x3 {
		t.Errorf("expected attr 0x3, got 0x%x", got)
	}
	if got := s.GetAttr(0x1000); got != 0 {
		t.Errorf("expected attr of second page untouched, got 0x%x", got)
	}
}

func TestSize(t *testing.T) {
	s := NewSpace(65536)
	if s.Size() != 65536 {
		t.Errorf("expected 65536, got %d", s.Size())
	}
}
