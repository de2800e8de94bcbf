package hwy

// This file provides the package-level operations kernels are written
// against. Each one forwards to the method of the concrete vector type so
// that generic kernels read the same whatever the width.

// Load creates a vector from the first NumLanes elements of src.
// Panics if src is shorter than one vector.
func Load[V Vector[T, V], T Floats](src []T) V {
	var zero V
	return zero.Load(src)
}

// Store writes all lanes of v to the start of dst.
// Panics if dst is shorter than one vector.
func Store[V Vector[T, V], T Floats](v V, dst []T) {
	v.Store(dst)
}

// Set creates a vector with all lanes set to value.
func Set[V Vector[T, V], T Floats](value T) V {
	var zero V
	return zero.Broadcast(value)
}

// MaxLanes returns the number of lanes in V.
func MaxLanes[V interface{ NumLanes() int }]() int {
	var zero V
	return zero.NumLanes()
}

// Add performs element-wise addition.
func Add[V Arith[V]](a, b V) V {
	return a.Add(b)
}

// Sub performs element-wise subtraction.
func Sub[V Arith[V]](a, b V) V {
	return a.Sub(b)
}

// Mul performs element-wise multiplication.
func Mul[V Arith[V]](a, b V) V {
	return a.Mul(b)
}

// MulAdd computes a*b + c element-wise.
func MulAdd[V Arith[V]](a, b, c V) V {
	return a.MulAdd(b, c)
}

// SlideUpLanes shifts lanes towards higher indices by n, filling with zero.
func SlideUpLanes[V interface{ SlideUpLanes(n int) V }](v V, n int) V {
	return v.SlideUpLanes(n)
}

// SlideDownLanes shifts lanes towards lower indices by n, filling with zero.
func SlideDownLanes[V interface{ SlideDownLanes(n int) V }](v V, n int) V {
	return v.SlideDownLanes(n)
}

// LanesFor returns how many elements of elemBytes fit in a vector of
// vecBytes. It never returns less than 1.
func LanesFor(vecBytes, elemBytes int) int {
	if elemBytes <= 0 || vecBytes < elemBytes {
		return 1
	}
	return vecBytes / elemBytes
}
