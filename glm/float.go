package glm

type float interface {
	~float32 | ~float64
}

type numeric interface {
	float | uint32
}

// Rad is an angle in radians.
type Rad float32
