package ring

import "cmp"

// MinimalRotation returns the lexicographically smallest rotation of s,
// using Booth's failure-function scan over s doubled. Two cyclic orders are
// equal up to rotation iff their minimal rotations are equal.
//
// Complexity: O(n) time, O(n) memory.
func MinimalRotation[T cmp.Ordered](s []T) []T {
	n := len(s)
	if n == 0 {
		return []T{}
	}
	doubled := make([]T, 0, 2*n)
	doubled = append(doubled, s...)
	doubled = append(doubled, s...)

	f := make([]int, 2*n) // failure links
	for i := range f {
		f[i] = -1
	}
	k := 0 // start of the best rotation so far
	for j := 1; j < 2*n; j++ {
		i := f[j-k-1]
		for i != -1 && doubled[j] != doubled[k+i+1] {
			if doubled[j] < doubled[k+i+1] {
				k = j - i - 1
			}
			i = f[i]
		}
		if doubled[j] != doubled[k+i+1] { // here i == -1
			if doubled[j] < doubled[k] {
				k = j
			}
			f[j-k] = -1
		} else {
			f[j-k] = i + 1
		}
	}

	res := make([]T, n)
	copy(res, doubled[k:k+n])

	return res
}
