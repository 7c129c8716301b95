package util

// Map applies f to every element of slice
func Map[A, B any](slice []A, f func(A) B) []B {
	res := make([]B, len(slice))
	for i, a := range slice {
		res[i] = f(a)
	}
	return res
}

// MapErr applies f to every element of slice in order, and stops at the
// first error. No partial result is returned on failure.
func MapErr[A, B any](slice []A, f func(A) (B, error)) ([]B, error) {
	res := make([]B, len(slice))
	for i, a := range slice {
		b, err := f(a)
		if err != nil {
			return nil, err
		}
		res[i] = b
	}
	return res, nil
}
