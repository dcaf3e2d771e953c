package linux

import "time"

// DefaultTickHz matches configTICK_RATE_HZ of the BL602 FreeRTOS port.
const DefaultTickHz = 1000

// TickClock emulates the porting-layer tick clock at a fixed rate.
type TickClock struct {
	Hz    uint32
	Sleep func(time.Duration) // time.Sleep when nil
}

// MsToTicks32 converts milliseconds to ticks, rounding down.
func (c TickClock) MsToTicks32(ms uint32) uint32 {
	return uint32(uint64(ms) * uint64(c.hz()) / 1000)
}

// Delay blocks for ticks ticks.
func (c TickClock) Delay(ticks uint32) {
	d := time.Duration(ticks) * time.Second / time.Duration(c.hz())
	if c.Sleep != nil {
		c.Sleep(d)
		return
	}
	time.Sleep(d)
}

func (c TickClock) hz() uint32 {
	if c.Hz == 0 {
		return DefaultTickHz
	}
	return c.Hz
}
