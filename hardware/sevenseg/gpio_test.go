package sevenseg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	gpio "github.com/temoto/gpio-cdev-go"
	gpio_mock "github.com/temoto/gpio-cdev-go/mock"
	"github.com/temoto/quadseg/log2"
)

type lineRecorder struct {
	pending []byte
	flushed [][]byte
}

func newMockGpio(t testing.TB, pins PinMap) (*gpio_mock.MockChip, *gpio_mock.MockLines, *lineRecorder) {
	rec := &lineRecorder{}
	chip := &gpio_mock.MockChip{}
	lines := &gpio_mock.MockLines{}

	openArgs := []interface{}{gpio.GPIOHANDLE_REQUEST_OUTPUT, consumerLabel}
	for _, l := range pins.lines() {
		openArgs = append(openArgs, uint32(l))
	}
	chip.On("OpenLines", openArgs...).Return(lines, nil).Once()
	chip.On("Close").Return(nil)

	bulkArgs := make([]interface{}, len(pins.Digits)+len(pins.Segments))
	for i := range bulkArgs {
		bulkArgs[i] = mock.Anything
	}
	lines.On("SetBulk", bulkArgs...).Run(func(args mock.Arguments) {
		rec.pending = rec.pending[:0]
		for _, a := range args {
			rec.pending = append(rec.pending, a.(byte))
		}
	})
	lines.On("Flush").Return(nil).Run(func(mock.Arguments) {
		rec.flushed = append(rec.flushed, append([]byte(nil), rec.pending...))
	})
	lines.On("Close").Return(nil)
	return chip, lines, rec
}

var testPins = PinMap{
	Digits:   []int{4, 6, 5, 1},
	Segments: []int{10, 11, 12, 13, 14, 15, 16, 17},
}

func TestGpioOutputOneDigit(t *testing.T) {
	t.Parallel()

	chip, lines, rec := newMockGpio(t, testPins)
	out, err := OpenGpio(chip, testPins)
	require.NoError(t, err)
	require.Len(t, rec.flushed, 1)
	assert.Equal(t, make([]byte, 12), rec.flushed[0], "open must blank")

	m := NewMultiplexer(nil, textSource("1234"), out, log2.NewTest(t, log2.LDebug))
	for i := 0; i < 8; i++ {
		require.NoError(t, m.Refresh())
	}
	require.Len(t, rec.flushed, 9)
	for i, state := range rec.flushed[1:] {
		active := 0
		for d := 0; d < Digits; d++ {
			active += int(state[d])
		}
		assert.Equal(t, 1, active, "flush=%d state=%v", i, state)
		assert.Equal(t, byte(1), state[i%Digits])
	}
	// digit 1 shows '1': segments B C
	assert.Equal(t, []byte{1, 0, 0, 0, 0, 1, 1, 0, 0, 0, 0, 0}, rec.flushed[1])

	require.NoError(t, out.Close())
	lines.AssertExpectations(t)
	chip.AssertExpectations(t)
}

func TestGpioOutputActiveLow(t *testing.T) {
	t.Parallel()

	pins := PinMap{
		Digits:           []int{1, 2, 3, 4},
		Segments:         []int{5, 6, 7, 8, 9, 10, 11},
		DigitActiveLow:   true,
		SegmentActiveLow: true,
	}
	chip, _, rec := newMockGpio(t, pins)
	out, err := OpenGpio(chip, pins)
	require.NoError(t, err)
	require.NoError(t, out.Show(Toggle{Off: Digit4, On: Digit2}, Encode('7')))
	assert.Equal(t, []byte{1, 0, 1, 1, 0, 0, 0, 1, 1, 1, 1}, rec.flushed[1])
}

func TestPinMapValidate(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		pins PinMap
		ok   bool
	}{
		{"ok-dp", testPins, true},
		{"ok-no-dp", PinMap{Digits: []int{1, 2, 3, 4}, Segments: []int{5, 6, 7, 8, 9, 10, 11}}, true},
		{"few-digits", PinMap{Digits: []int{1, 2, 3}, Segments: testPins.Segments}, false},
		{"few-segments", PinMap{Digits: testPins.Digits, Segments: []int{20, 21}}, false},
		{"negative", PinMap{Digits: []int{1, 2, 3, -4}, Segments: []int{5, 6, 7, 8, 9, 10, 11}}, false},
		{"duplicate", PinMap{Digits: []int{1, 2, 3, 4}, Segments: []int{4, 6, 7, 8, 9, 10, 11}}, false},
	}
	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			err := c.pins.Validate()
			if c.ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}
