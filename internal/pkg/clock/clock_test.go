package clock_test

import (
	"testing"
	"time"

	"icecream/internal/pkg/clock"

	"github.com/stretchr/testify/assert"
)

func TestSystem(t *testing.T) {
	before := time.Now().Add(-time.Second)

	now := clock.System().Now()

	assert.True(t, now.After(before))
	assert.Equal(t, time.UTC, now.Location())
	assert.Zero(t, now.Nanosecond()%int(time.Microsecond))
}

func TestFixed(t *testing.T) {
	at := time.Date(2024, 7, 1, 12, 0, 0, 0, time.UTC)
	c := clock.Fixed(at)

	assert.Equal(t, at, c.Now())
	assert.Equal(t, at, c.Now())
}
