package humancode

// renderRaw renders quintets (length L <= 31) as the bare z-base-32
// string, one character per symbol, no separators.
func renderRaw(quintets []byte) string {
	var buf [nn]byte
	for i, q := range quintets {
		buf[i] = quintetToChar(q)
	}
	return string(buf[:len(quintets)])
}

// renderPretty renders quintets the same way as renderRaw, but with a '-'
// inserted before every group of four after the first; never a trailing
// separator. 31 characters plus at most 7 separators fits comfortably
// under the 38-byte pretty buffer budget.
func renderPretty(quintets []byte) string {
	var buf [38]byte
	n := 0
	for i, q := range quintets {
		if i > 0 && i%4 == 0 {
			buf[n] = '-'
			n++
		}
		buf[n] = quintetToChar(q)
		n++
	}
	return string(buf[:n])
}
