// Package sevenseg drives a multiplexed 4 digit seven segment display.
//
// Only one digit is lit at any instant, refresh tick moves to the next digit
// fast enough for persistence of vision.
package sevenseg

import (
	"runtime"
	"sync/atomic"
	"time"

	"github.com/juju/errors"
	"github.com/temoto/alive/v2"
	"github.com/temoto/quadseg/log2"
	"golang.org/x/sys/unix"
)

const DefaultRefreshPeriod = 5 * time.Millisecond

// Output applies digit select and segment lines in one indivisible update.
type Output interface {
	Show(t Toggle, p Pattern) error
	Blank() error
	Close() error
}

// Source gives byte visible at digit position.
type Source interface {
	DigitChar(pos int) byte
}

type Multiplexer struct {
	alive  *alive.Alive
	log    *log2.Log
	out    Output
	src    Source
	period time.Duration
	nice   int

	pos      Position
	errCount uint32
}

type MultiplexerConfig struct {
	Period time.Duration
	// Nice for refresh thread, 0 keeps default
	Nice int
}

func NewMultiplexer(c *MultiplexerConfig, src Source, out Output, log *log2.Log) *Multiplexer {
	self := &Multiplexer{
		alive:  alive.NewAlive(),
		log:    log,
		out:    out,
		src:    src,
		period: DefaultRefreshPeriod,
		// first refresh lights Digit1
		pos: Digit4,
	}
	if c != nil {
		if c.Period != 0 {
			self.period = c.Period
		}
		self.nice = c.Nice
	}
	return self
}

func (self *Multiplexer) Position() Position { return self.pos }
func (self *Multiplexer) Errors() uint32     { return atomic.LoadUint32(&self.errCount) }

// Refresh lights next digit with its character.
// Not safe for concurrent use, only refresh loop calls it.
func (self *Multiplexer) Refresh() error {
	next, toggle := self.pos.Next()
	c := self.src.DigitChar(next.Index())
	if err := self.out.Show(toggle, Encode(c)); err != nil {
		atomic.AddUint32(&self.errCount, 1)
		return errors.Annotatef(err, "refresh %s char=%q", next.String(), c)
	}
	self.pos = next
	return nil
}

func (self *Multiplexer) Run() {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()
	if self.nice != 0 {
		// Linux: per thread priority
		if err := unix.Setpriority(unix.PRIO_PROCESS, unix.Gettid(), self.nice); err != nil {
			self.log.Error(errors.Annotatef(err, "refresh thread nice=%d", self.nice))
		}
	}

	tmr := time.NewTicker(self.period)
	defer tmr.Stop()
	stopch := self.alive.StopChan()
	var lastErr string
	for self.alive.IsRunning() {
		select {
		case <-tmr.C:
			if err := self.Refresh(); err != nil {
				// same error every 5ms is noise
				if s := err.Error(); s != lastErr {
					lastErr = s
					self.log.Error(err)
				}
			} else {
				lastErr = ""
			}
		case <-stopch:
		}
	}
	if err := self.out.Blank(); err != nil {
		self.log.Error(errors.Annotate(err, "blank on stop"))
	}
}

func (self *Multiplexer) Stop() { self.alive.Stop() }
