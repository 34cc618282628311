package accumulatortesting

import (
	"math/rand"
	"testing"

	"github.com/datatrails/go-datatrails-common/logger"
)

type TestContext struct {
	Log  logger.Logger
	T    *testing.T
	Rand *rand.Rand
}

type TestConfig struct {
	// The leaf generator is seeded from Seed. Keep it fixed so that the
	// generated leaves are the same from run to run.
	Seed            int64
	TestLabelPrefix string
}

func NewTestContext(t *testing.T, cfg TestConfig) TestContext {
	c := TestContext{
		T:    t,
		Rand: rand.New(rand.NewSource(cfg.Seed)),
	}
	logger.New("INFO")
	c.Log = logger.Sugar.WithServiceName(cfg.TestLabelPrefix)
	return c
}

func (c *TestContext) GetLog() logger.Logger { return c.Log }

// Leaves returns n pseudo random leaves below 1<<62. The same seed always
// produces the same sequence.
func (c *TestContext) Leaves(n int) []uint64 {
	leaves := make([]uint64, n)
	for i := range leaves {
		leaves[i] = uint64(c.Rand.Int63n(1 << 62))
	}
	return leaves
}

// Sequence returns [first, first+n).
func Sequence(first uint64, n int) []uint64 {
	s := make([]uint64, n)
	for i := range s {
		s[i] = first + uint64(i)
	}
	return s
}
