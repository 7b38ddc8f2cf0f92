package utils

// Convert applies the Go numeric conversion from T to U. It is the generic
// counterpart of writing U(v) for concrete types and truncates or wraps in
// exactly the same way.
func Convert[U, T Number](v T) U {
	return U(v)
}
