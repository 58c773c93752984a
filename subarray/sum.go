package subarray

// integral reports whether T is an integer type.
func integral[T Number]() bool {
	return T(1)/T(2) == 0
}

// maxWindowSumInt returns the best sum of k consecutive values, accumulated
// in int64 so that neither narrow element types nor float64 rounding
// distort it.
func maxWindowSumInt[T Number](nums []T, k int) int64 {
	var sum int64
	for _, x := range nums[:k] {
		sum += int64(x)
	}
	best := sum
	for i := k; i < len(nums); i++ {
		sum += int64(nums[i])
		sum -= int64(nums[i-k])
		best = max(best, sum)
	}

	return best
}

// maxWindowSumFloat is maxWindowSumInt for floating-point values. The window
// sum is Neumaier-compensated: c collects the low-order bits lost when large
// and small values are mixed.
func maxWindowSumFloat[T Number](nums []T, k int) float64 {
	var w compensated
	for _, x := range nums[:k] {
		w.add(float64(x))
	}
	best := w.value()
	for i := k; i < len(nums); i++ {
		w.add(float64(nums[i]))
		w.add(-float64(nums[i-k]))
		best = max(best, w.value())
	}

	return best
}

type compensated struct {
	sum float64
	c   float64
}

func (s *compensated) add(x float64) {
	t := s.sum + x
	if abs(s.sum) >= abs(x) {
		s.c += (s.sum - t) + x
	} else {
		s.c += (x - t) + s.sum
	}
	s.sum = t
}

func (s *compensated) value() float64 { return s.sum + s.c }

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}

	return x
}
