package linux

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTickClockConversion(t *testing.T) {
	c := TickClock{}
	assert.Equal(t, uint32(0), c.MsToTicks32(0))
	assert.Equal(t, uint32(1000), c.MsToTicks32(1000), "default rate is 1 kHz")

	c = TickClock{Hz: 32768}
	assert.Equal(t, uint32(32768), c.MsToTicks32(1000))
	assert.Equal(t, uint32(32), c.MsToTicks32(1), "rounds down")
	assert.Equal(t, c.MsToTicks32(4000000), c.MsToTicks32(4000000))
}

func TestTickClockDelay(t *testing.T) {
	var slept []time.Duration
	c := TickClock{Hz: 100, Sleep: func(d time.Duration) { slept = append(slept, d) }}

	c.Delay(c.MsToTicks32(1000))
	c.Delay(0)
	assert.Equal(t, []time.Duration{time.Second, 0}, slept)
}
