package hufftree

import (
	"math"

	"github.com/op/go-logging"
)

var log = logging.MustGetLogger("hufftree")

// addFreq computes a + b using saturating addition.
func addFreq(a, b uint64) uint64 {
	sum := a + b
	if sum < a {
		sum = math.MaxUint64
	}
	return sum
}
