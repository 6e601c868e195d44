package domain

// Flag names for the compiler selection arguments. The wrapped build tool
// is CMake, which reads the compiler executables from these cache entries.
const (
	CCompilerFlag   = "CMAKE_C_COMPILER"
	CXXCompilerFlag = "CMAKE_CXX_COMPILER"
)

// Argument is a single key/value build flag.
type Argument struct {
	Flag  string
	Value string
}

// ArgumentList is an ordered sequence of build flags. Order is part of the
// descriptor contract: compiler flags first, then one flag per variant in
// declaration order.
type ArgumentList []Argument
