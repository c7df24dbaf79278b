package planner

import "strconv"

// FormatRupees renders an amount as a rupee string with comma separators,
// e.g. 4800 -> "₹4,800". Used by both front ends so money always reads the
// same way.
func FormatRupees(n int64) string {
	if n < 0 {
		return "-" + FormatRupees(-n)
	}

	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return "₹" + s
	}

	var out []byte
	remainder := len(s) % 3
	if remainder > 0 {
		out = append(out, s[:remainder]...)
	}
	for i := remainder; i < len(s); i += 3 {
		if len(out) > 0 {
			out = append(out, ',')
		}
		out = append(out, s[i:i+3]...)
	}
	return "₹" + string(out)
}
