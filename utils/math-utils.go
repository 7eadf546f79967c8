package utils

// Clamp limits v to the range [min, max].
func Clamp(min, max, v int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
