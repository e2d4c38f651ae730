package sevenseg

import (
	"github.com/juju/errors"
	gpio "github.com/temoto/gpio-cdev-go"
)

const consumerLabel = "quadseg"

type PinMap struct {
	// select lines for digit 1..4
	Digits []int `hcl:"digits"`
	// A B C D E F G, optional DP
	Segments []int `hcl:"segments"`

	DigitActiveLow   bool `hcl:"digit_active_low"`
	SegmentActiveLow bool `hcl:"segment_active_low"`
}

func (pm *PinMap) Validate() error {
	if len(pm.Digits) != Digits {
		return errors.NotValidf("pinmap digits=%v need %d lines", pm.Digits, Digits)
	}
	if n := len(pm.Segments); n != Segments && n != Segments-1 {
		return errors.NotValidf("pinmap segments=%v need %d or %d lines", pm.Segments, Segments-1, Segments)
	}
	seen := make(map[int]struct{}, Digits+Segments)
	for _, l := range pm.lines() {
		if l < 0 {
			return errors.NotValidf("pinmap line=%d", l)
		}
		if _, ok := seen[l]; ok {
			return errors.NotValidf("pinmap line=%d used twice", l)
		}
		seen[l] = struct{}{}
	}
	return nil
}

// digits first, then segments
func (pm *PinMap) lines() []int {
	ls := make([]int, 0, len(pm.Digits)+len(pm.Segments))
	ls = append(ls, pm.Digits...)
	return append(ls, pm.Segments...)
}

// GpioOutput holds all digit and segment lines in one line handle,
// so every update is a single set-values ioctl.
type GpioOutput struct {
	chip   gpio.Chiper
	lines  gpio.Lineser
	pins   PinMap
	values [Digits + Segments]byte
}

var _ Output = &GpioOutput{}

func OpenGpio(chip gpio.Chiper, pins PinMap) (*GpioOutput, error) {
	if err := pins.Validate(); err != nil {
		return nil, err
	}
	offsets := make([]uint32, 0, Digits+Segments)
	for _, l := range pins.lines() {
		offsets = append(offsets, uint32(l))
	}
	lines, err := chip.OpenLines(gpio.GPIOHANDLE_REQUEST_OUTPUT, consumerLabel, offsets...)
	if err != nil {
		return nil, errors.Annotatef(err, "gpio open lines=%v", offsets)
	}
	self := &GpioOutput{chip: chip, lines: lines, pins: pins}
	if err = self.Blank(); err != nil {
		_ = lines.Close()
		return nil, err
	}
	return self, nil
}

// OpenGpioChip opens GPIO character device, e.g. "/dev/gpiochip0".
func OpenGpioChip(path string, pins PinMap) (*GpioOutput, error) {
	chip, err := gpio.Open(path, consumerLabel)
	if err != nil {
		return nil, errors.Annotatef(err, "gpio open chip=%s", path)
	}
	self, err := OpenGpio(chip, pins)
	if err != nil {
		_ = chip.Close()
		return nil, err
	}
	return self, nil
}

func (self *GpioOutput) Show(t Toggle, p Pattern) error {
	return self.flush(t.On, true, p)
}

func (self *GpioOutput) Blank() error {
	return self.flush(0, false, Blank)
}

func (self *GpioOutput) Close() error {
	err := self.lines.Close()
	if self.chip != nil {
		if cerr := self.chip.Close(); err == nil {
			err = cerr
		}
	}
	return err
}

func (self *GpioOutput) flush(on Position, lit bool, p Pattern) error {
	for i := 0; i < Digits; i++ {
		self.values[i] = level(lit && Position(i) == on, self.pins.DigitActiveLow)
	}
	nseg := len(self.pins.Segments)
	for i := 0; i < nseg; i++ {
		self.values[Digits+i] = level(p.Lit(uint(i)), self.pins.SegmentActiveLow)
	}
	self.lines.SetBulk(self.values[:Digits+nseg]...)
	return self.lines.Flush()
}

func level(active, activeLow bool) byte {
	if active != activeLow {
		return 1
	}
	return 0
}
