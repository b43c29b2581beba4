package village

import (
	"math/rand"
	"strconv"
	"strings"
	"time"
)

// Clock abstracts time retrieval so business logic is deterministic in tests.
type Clock interface {
	Now() time.Time
}

// RealClock returns the actual current time.
type RealClock struct{}

func (RealClock) Now() time.Time { return time.Now() }

// IDGenerator abstracts record ID generation so tests are deterministic.
type IDGenerator interface {
	New() string
}

const base36Alphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// RecordIDGenerator produces record IDs in the store's native format:
// a base-36 millisecond timestamp plus a short random base-36 suffix.
// IDs are practically unique at interactive operation rates, not globally.
type RecordIDGenerator struct {
	clock Clock
}

func NewRecordIDGenerator(clock Clock) *RecordIDGenerator {
	return &RecordIDGenerator{clock: clock}
}

func (g *RecordIDGenerator) New() string {
	ts := strconv.FormatInt(g.clock.Now().UnixMilli(), 36)

	var suffix strings.Builder
	for i := 0; i < 6; i++ {
		suffix.WriteByte(base36Alphabet[rand.Intn(len(base36Alphabet))])
	}
	return ts + suffix.String()
}
