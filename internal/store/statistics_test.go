package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestUtcOffset(t *testing.T) {
	at := time.Date(2024, time.March, 10, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, "+00:00", utcOffset(at, nil))
	assert.Equal(t, "+00:00", utcOffset(at, time.UTC))
	assert.Equal(t, "+01:00", utcOffset(at, time.FixedZone("CET", 3600)))
	assert.Equal(t, "-03:30", utcOffset(at, time.FixedZone("NST", -(3*3600+1800))))
	assert.Equal(t, "+05:45", utcOffset(at, time.FixedZone("NPT", 5*3600+45*60)))
}
