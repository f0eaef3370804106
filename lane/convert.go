package lane

import "math"

// Conversions between lane element types, truncating or rounding the way
// the corresponding vector instructions do.

// ConvertToInt32 converts float lanes to int32, truncating toward zero.
// Lanes outside the int32 range are undefined.
func ConvertToInt32[T Floats](v Vec[T]) Vec[int32] {
	result := make([]int32, len(v.data))
	for i := range result {
		result[i] = int32(v.data[i])
	}
	return Vec[int32]{data: result}
}

// ConvertToInt64 converts float lanes to int64, truncating toward zero.
// Lanes outside the int64 range are undefined.
func ConvertToInt64[T Floats](v Vec[T]) Vec[int64] {
	result := make([]int64, len(v.data))
	for i := range result {
		result[i] = int64(v.data[i])
	}
	return Vec[int64]{data: result}
}

// ConvertToFloat32 converts integer lanes to float32. Large 64-bit values
// lose precision.
func ConvertToFloat32[T Integers](v Vec[T]) Vec[float32] {
	result := make([]float32, len(v.data))
	for i := range result {
		result[i] = float32(v.data[i])
	}
	return Vec[float32]{data: result}
}

// ConvertToFloat64 converts integer lanes to float64. Values beyond 2^53
// lose precision.
func ConvertToFloat64[T Integers](v Vec[T]) Vec[float64] {
	result := make([]float64, len(v.data))
	for i := range result {
		result[i] = float64(v.data[i])
	}
	return Vec[float64]{data: result}
}

// Round rounds each lane to the nearest integer, half away from zero.
func Round[T Floats](v Vec[T]) Vec[T] {
	result := make([]T, len(v.data))
	for i := range result {
		result[i] = T(math.Round(float64(v.data[i])))
	}
	return Vec[T]{data: result}
}

// Trunc truncates each lane toward zero.
func Trunc[T Floats](v Vec[T]) Vec[T] {
	result := make([]T, len(v.data))
	for i := range result {
		result[i] = T(math.Trunc(float64(v.data[i])))
	}
	return Vec[T]{data: result}
}

// Ceil rounds each lane toward positive infinity.
func Ceil[T Floats](v Vec[T]) Vec[T] {
	result := make([]T, len(v.data))
	for i := range result {
		result[i] = T(math.Ceil(float64(v.data[i])))
	}
	return Vec[T]{data: result}
}

// Floor rounds each lane toward negative infinity.
func Floor[T Floats](v Vec[T]) Vec[T] {
	result := make([]T, len(v.data))
	for i := range result {
		result[i] = T(math.Floor(float64(v.data[i])))
	}
	return Vec[T]{data: result}
}
