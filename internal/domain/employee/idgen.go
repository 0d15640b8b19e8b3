package employee

import (
	"math/rand/v2"
	"strconv"
	"time"
)

const suffixAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// NewEmployeeID builds an identifier from a prefix, the last six digits of the
// millisecond timestamp and three random uppercase alphanumerics. Uniqueness is
// probabilistic; the unique constraint on employees.employee_id is the real
// backstop and a collision surfaces as a storage error.
func NewEmployeeID(now time.Time) string {
	ts := strconv.FormatInt(now.UnixMilli(), 10)
	suffix := make([]byte, 3)
	for i := range suffix {
		suffix[i] = suffixAlphabet[rand.IntN(len(suffixAlphabet))]
	}
	return "EMP" + ts[len(ts)-6:] + string(suffix)
}
