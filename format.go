package shunt

import (
	"strconv"

	"fortio.org/safecast"
)

// Format formats a result. Whole numbers that fit in an int64 are formatted
// without a fractional part; anything else uses the fewest digits that
// represent x exactly.
func Format(x float64) string {
	if n, err := safecast.Convert[int64](x); err == nil {
		return strconv.FormatInt(n, 10)
	}
	return strconv.FormatFloat(x, 'f', -1, 64)
}
