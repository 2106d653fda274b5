package shiptesting

import (
	"testing"

	"github.com/datatrails/go-datatrails-common/logger"
	"github.com/stretchr/testify/require"
	"gotest.tools/v3/fs"
)

type TestContext struct {
	Log logger.Logger
	T   *testing.T

	// Dir is a scratch directory removed when the test ends.
	Dir *fs.Dir
}

type TestConfig struct {
	// LogLevel defaults to NOOP so searches stay quiet under go test.
	LogLevel        string
	TestLabelPrefix string
}

func NewTestContext(t *testing.T, cfg TestConfig) TestContext {
	c := TestContext{
		T: t,
	}
	level := cfg.LogLevel
	if level == "" {
		level = "NOOP"
	}
	logger.New(level)
	c.Log = logger.Sugar.WithServiceName(cfg.TestLabelPrefix)

	c.Dir = fs.NewDir(t, cfg.TestLabelPrefix)
	return c
}

func (c *TestContext) GetLog() logger.Logger { return c.Log }

// Path joins elements onto the scratch directory.
func (c *TestContext) Path(elem ...string) string {
	return c.Dir.Join(elem...)
}

// RequireShip fails the test unless lines draw a spaceship of the given
// period and offset under r.
func (c *TestContext) RequireShip(lines []string, r Rule, period, offset int) {
	c.T.Helper()
	moved, err := Displacement(lines, r, period)
	require.NoError(c.T, err)
	require.Equal(c.T, Cell{Row: offset}, moved.Abs(), "pattern:\n%s", joinLines(lines))
	for g := 1; g < period; g++ {
		sub, err := Displacement(lines, r, g)
		if err == nil {
			require.Equal(c.T, Cell{}, sub, "pattern repeats after %d generations", g)
		}
	}
}
