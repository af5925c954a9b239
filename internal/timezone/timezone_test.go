package timezone

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLocation(t *testing.T) {
	assert.Equal(t, "America/Sao_Paulo", Location("America/Sao_Paulo").String())
	assert.Equal(t, DefaultTimezone, Location("").String())
	assert.Equal(t, DefaultTimezone, Location("Mars/Olympus").String())
}

func TestClockCurrent(t *testing.T) {
	fixed := time.Date(2030, 1, 1, 12, 0, 0, 0, time.UTC)
	c := NewClock("Europe/Rome")
	c.Now = func() time.Time { return fixed }

	got := c.Current()
	assert.True(t, got.Equal(fixed))
	assert.Equal(t, "Europe/Rome", got.Location().String())
	assert.Equal(t, 13, got.Hour())
}
