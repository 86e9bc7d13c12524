package hwconfig

import "testing"

func TestCheckMagicValid(t *testing.T) {
	header := [4]byte{0xD0, 0x0D, 0xFE, 0xED}
	if err := CheckMagic(header); err != nil {
		t.Errorf("valid magic rejected: %v", err)
	}
}

func TestCheckMagicInvalid(t *testing.T) {
	header := [4]byte{0x00, 0x00, 0x00, 0x00}
	if err := CheckMagic(header); err == nil {
		t.Errorf("invalid magic accepted")
	}
}
