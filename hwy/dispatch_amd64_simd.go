//go:build amd64 && goexperiment.simd

package hwy

import (
	"simd/archsimd"

	"golang.org/x/sys/cpu"
)

// useAVX2 and useAVX512 switch the arithmetic of the 256- and 512-bit vector
// types from lane loops to archsimd instructions. Both stay false in scalar
// mode.
var (
	useAVX2   bool
	useAVX512 bool
)

func init() {
	// Check if SIMD is disabled via environment variable
	if NoSimdEnv() {
		setScalarMode()
		return
	}

	detectCPUFeatures()
}

func detectCPUFeatures() {
	// The 256-bit MulAdd is VFMADD, which needs FMA on top of AVX2.
	useAVX2 = archsimd.X86.AVX2() && cpu.X86.HasFMA
	useAVX512 = archsimd.X86.AVX512()

	switch {
	case useAVX512:
		currentLevel = DispatchAVX512
		currentWidth = 64
		currentName = "avx512"
	case useAVX2:
		currentLevel = DispatchAVX2
		currentWidth = 32
		currentName = "avx2"
	default:
		// SSE2 is baseline for amd64
		currentLevel = DispatchSSE2
		currentWidth = 16
		currentName = "sse2"
	}
}

// HasFMA reports whether the CPU has fused multiply-add.
func HasFMA() bool {
	return cpu.X86.HasFMA
}
