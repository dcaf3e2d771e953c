package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBlinkerTogglePattern(t *testing.T) {
	resetGlobals()
	f := newFakeHAL()
	b := NewBlinker(f)
	require.Equal(t, StateInit, b.State())

	require.NoError(t, b.Run())
	assert.Equal(t, StateDone, b.State())

	var levels []uint32
	for _, c := range f.named("output_set") {
		assert.Equal(t, uint32(LEDPin), c.args[0])
		levels = append(levels, c.args[1])
	}
	assert.Equal(t, []uint32{0, 1, 0, 1, 0, 1, 0, 1, 0, 1}, levels)

	// every set is followed by exactly one conversion of 1000 ms and one delay
	var sets int
	for i, c := range f.calls {
		if c.name != "output_set" {
			continue
		}
		sets++
		require.Greater(t, len(f.calls), i+2)
		assert.Equal(t, "ms_to_ticks", f.calls[i+1].name)
		assert.Equal(t, uint32(ToggleIntervalMs), f.calls[i+1].args[0])
		assert.Equal(t, "delay", f.calls[i+2].name)
		assert.Equal(t, uint32(1000), f.calls[i+2].args[0])
	}
	assert.Equal(t, ToggleCount, sets)
	assert.Equal(t, "delay", f.calls[len(f.calls)-1].name, "last set is followed by a delay too")
}

func TestBlinkerCallOrder(t *testing.T) {
	resetGlobals()
	f := newFakeHAL()
	require.NoError(t, NewBlinker(f).Run())

	names := f.names()
	require.Len(t, names, 2+3*ToggleCount)
	assert.Equal(t, []string{"puts", "enable_output"}, names[:2])
	assert.Equal(t, []uint32{uint32(LEDPin), 0, 0}, f.calls[1].args)
	assert.Equal(t, Banner, f.calls[0].text)
}

func TestBlinkerHaltsOnEnableFailure(t *testing.T) {
	resetGlobals()
	f := newFakeHAL()
	f.enableStatus = -19

	b := NewBlinker(f)
	err := b.Run()
	assert.Equal(t, ErrorCode(-19), CodeOf(err))
	assert.Equal(t, StateHalted, b.State())
	assert.Empty(t, f.named("output_set"))
	assert.Empty(t, f.named("delay"))

	// a halted sequencer stays halted
	assert.Error(t, b.Run())
	assert.Equal(t, StateHalted, b.State())
	assert.Len(t, f.named("enable_output"), 1)
}

func TestBlinkerHaltsOnSetFailureMidLoop(t *testing.T) {
	resetGlobals()
	f := newFakeHAL()
	f.setStatus = 4
	f.setFailAt = 4

	b := NewBlinker(f)
	err := b.Run()
	assert.Equal(t, ErrorCode(4), CodeOf(err))
	assert.Equal(t, StateHalted, b.State())
	assert.Equal(t, uint8(3), b.Step())
	assert.Len(t, f.named("output_set"), 4)
	assert.Len(t, f.named("delay"), 3, "no delay after the failed set")
}

func TestBlinkerRecordsEvents(t *testing.T) {
	resetGlobals()
	f := newFakeHAL()
	require.NoError(t, NewBlinker(f).Run())

	evs := Events()
	require.Len(t, evs, 2+ToggleCount)
	assert.Equal(t, StateInit, evs[0].State)
	assert.Equal(t, StateConfigurePin, evs[1].State)
	last := evs[len(evs)-1]
	assert.Equal(t, StateToggleLoop, last.State)
	assert.Equal(t, uint8(ToggleCount-1), last.Step)
	assert.Equal(t, uint32(1000), last.Value)
}

func TestStateString(t *testing.T) {
	cases := map[State]string{
		StateInit:         "init",
		StateConfigurePin: "configure_pin",
		StateToggleLoop:   "toggle_loop",
		StateDone:         "done",
		StateHalted:       "halted",
		State(99):         "unknown",
	}
	for s, want := range cases {
		assert.Equal(t, want, s.String())
	}
}
