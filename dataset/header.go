package dataset

import "strconv"

// HasHeader reports whether column labels look like a genuine header. If any
// label parses as an integer the first row is assumed to be data, not names.
//
// Known limitation: a real header whose names happen to be integer strings is
// misclassified as headerless. Callers can work around it by passing the
// header explicitly.
func HasHeader(names []string) bool {
	for _, name := range names {
		if _, err := strconv.Atoi(name); err == nil {
			return false
		}
	}
	return true
}
