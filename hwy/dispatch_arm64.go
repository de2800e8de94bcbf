//go:build arm64

package hwy

import "golang.org/x/sys/cpu"

func init() {
	if NoSimdEnv() {
		setScalarMode()
		return
	}

	// NEON (ASIMD) is mandatory on arm64; x/sys/cpu reports it on Linux.
	if cpu.ARM64.HasASIMD || !cpu.Initialized {
		currentLevel = DispatchNEON
		currentWidth = 16
		currentName = "neon"
		return
	}
	setScalarMode()
}

// HasFMA reports whether the CPU has fused multiply-add.
func HasFMA() bool {
	return true
}
