//go:build !nkarch_amd64 && !nkarch_arm64 && !nkarch_riscv64 && !nkarch_loongarch64 && !nkarch_mips64 && !nkarch_openrisc64 && !nkarch_powerpc64 && !nkarch_sparcv9

package platform

// This file only builds when no nkarch_<name> tag was passed to the
// compiler. The import below does not exist; its purpose is solely to
// turn "no architecture selected" into a hard compile error, the Go
// analogue of the original's compile_error! fallback.
import _ "github.com/nanokernel/nanokernel/kernel/platform/unsupportedtarget"
