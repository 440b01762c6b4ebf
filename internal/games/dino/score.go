package dino

// RoundToTen rounds n to the nearest multiple of ten. Exact halves go to
// the even multiple: 5 -> 0, 15 -> 20, 25 -> 20, -15 -> -20.
func RoundToTen(n int) int {
	q, r := n/10, n%10
	if r < 0 {
		q--
		r += 10
	}
	switch {
	case r > 5:
		q++
	case r == 5 && q%2 != 0:
		q++
	}
	return q * 10
}

// Points converts distance travelled into score.
func Points(distance int) int {
	return RoundToTen(distance) / 10
}
