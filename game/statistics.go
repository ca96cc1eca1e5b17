package game

import "slices"

// Float is any floating point type the statistics helpers accept.
type Float interface {
	~float32 | ~float64
}

// Sum ...
func Sum[T Float](data []T) (result T) {
	for _, v := range data {
		result += v
	}
	return result
}

// Mean ...
func Mean[T Float](data []T) T {
	if len(data) == 0 {
		return 0
	}
	return Sum(data) / T(len(data))
}

// Median returns the median of data without modifying it.
func Median[T Float](data []T) T {
	n := len(data)
	if n == 0 {
		return 0
	}
	sorted := slices.Clone(data)
	slices.Sort(sorted)
	if n%2 != 0 {
		return sorted[n/2]
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2
}

// Max returns the largest value in data, or zero if it is empty.
func Max[T Float](data []T) (max T) {
	for i, v := range data {
		if i == 0 || v > max {
			max = v
		}
	}
	return max
}
