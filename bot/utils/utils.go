package utils

func Ptr[T any](t T) *T {
	return &t
}

func Slice[T any](v ...T) []T {
	return v
}
