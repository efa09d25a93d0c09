package receipt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLocationClockReportsInLocation(t *testing.T) {
	loc := time.FixedZone("AST", -4*60*60)
	now := LocationClock(loc).Now()
	assert.Same(t, loc, now.Location())
}
