// Package text_display holds the text shown on the digits and scrolls it.
//
// Single writer (bus slave) publishes complete immutable frames,
// readers (multiplexer, scroll tick, telemetry) load one View at a time
// and never observe partially written text.
package text_display

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/juju/errors"
	"github.com/paulrosania/go-charset/charset"
	_ "github.com/paulrosania/go-charset/data"
	"github.com/temoto/alive/v2"
	"github.com/temoto/atomic_clock"
	"github.com/temoto/quadseg/hardware/twi"
	"github.com/temoto/quadseg/log2"
)

// Width is number of physical digits.
const Width = 4

const (
	DefaultScrollDelay = 800 * time.Millisecond
	DefaultGreeting    = "hello"
)

const blank byte = ' '

type Frame struct {
	Text [twi.Capacity]byte
	Len  uint8
	Gen  uint32
}

func (f *Frame) Bytes() []byte { return f.Text[:f.Len] }

// At returns blank past text length.
func (f *Frame) At(i int) byte {
	if i < 0 || i >= int(f.Len) {
		return blank
	}
	return f.Text[i]
}

// View is the unit of atomic publication: text and scroll window together.
type View struct {
	Frame  *Frame
	Offset uint8
}

func (v View) At(pos int) byte { return v.Frame.At(int(v.Offset) + pos) }

func (v View) Window() [Width]byte {
	var w [Width]byte
	for i := range w {
		w[i] = v.At(i)
	}
	return w
}

func (v View) String() string {
	w := v.Window()
	return fmt.Sprintf("%q@%d[%s]", v.Frame.Bytes(), v.Offset, w[:])
}

type TextDisplay struct { //nolint:maligned
	alive   *alive.Alive
	log     *log2.Log
	mu      sync.Mutex // writers only
	view    atomic.Value
	tr      atomic.Value
	updated atomic_clock.Clock

	tickd time.Duration
	upd   atomic.Value // chan<- View
}

var _ twi.Store = &TextDisplay{}

type TextDisplayConfig struct {
	Codepage    string
	Greeting    string
	ScrollDelay time.Duration
}

func NewTextDisplay(opt *TextDisplayConfig, log *log2.Log) (*TextDisplay, error) {
	if opt == nil {
		opt = &TextDisplayConfig{}
	}
	self := &TextDisplay{
		alive: alive.NewAlive(),
		log:   log,
		tickd: opt.ScrollDelay,
	}
	if self.tickd == 0 {
		self.tickd = DefaultScrollDelay
	}
	greeting := opt.Greeting
	if greeting == "" {
		greeting = DefaultGreeting
	}
	self.view.Store(&View{Frame: newFrame([]byte(greeting), 0)})

	if opt.Codepage != "" {
		if err := self.SetCodepage(opt.Codepage); err != nil {
			return nil, errors.Annotatef(err, "codepage=%s", opt.Codepage)
		}
	}
	return self, nil
}

func newFrame(text []byte, gen uint32) *Frame {
	f := &Frame{Gen: gen}
	n := copy(f.Text[:], text)
	f.Len = uint8(n)
	return f
}

func (self *TextDisplay) SetCodepage(cp string) error {
	tr, err := charset.TranslatorTo(cp)
	if err != nil {
		return err
	}
	self.tr.Store(tr)
	return nil
}

// SetUpdateChan receives every published view, slow receiver misses updates.
func (self *TextDisplay) SetUpdateChan(ch chan<- View) { self.upd.Store(ch) }

func (self *TextDisplay) View() View { return *self.load() }

// Text returns committed text. Result is shared, do not modify.
func (self *TextDisplay) Text() []byte { return self.load().Frame.Bytes() }

// DigitChar is the byte visible at digit position 0..Width-1.
func (self *TextDisplay) DigitChar(pos int) byte { return self.load().At(pos) }

// Updated returns time of last published text, zero before first message.
func (self *TextDisplay) Updated() time.Time {
	if self.updated.IsZero() {
		return time.Time{}
	}
	return time.Unix(0, self.updated.UnixNano())
}

// Publish replaces text, truncated to capacity, window restarts at 0.
func (self *TextDisplay) Publish(text []byte) {
	self.mu.Lock()
	defer self.mu.Unlock()

	prev := self.load()
	next := &View{Frame: newFrame(text, prev.Frame.Gen+1)}
	self.view.Store(next)
	self.updated.SetNow()
	self.log.Infof("display text=%q", next.Frame.Bytes())
	self.notify(next)
}

func (self *TextDisplay) ResetWindow() {
	self.mu.Lock()
	defer self.mu.Unlock()

	prev := self.load()
	if prev.Offset == 0 {
		return
	}
	next := &View{Frame: prev.Frame}
	self.view.Store(next)
	self.notify(next)
}

// Tick advances scroll window one position.
// Lock free: if text was published meanwhile, this tick is skipped.
func (self *TextDisplay) Tick() {
	prev := self.load()
	offset := scrollNext(int(prev.Frame.Len), int(prev.Offset))
	if offset == int(prev.Offset) {
		return
	}
	next := &View{Frame: prev.Frame, Offset: uint8(offset)}
	if self.view.CompareAndSwap(prev, next) {
		self.notify(next)
	}
}

func (self *TextDisplay) Run() {
	tmr := time.NewTicker(self.tickd)
	defer tmr.Stop()
	stopch := self.alive.StopChan()

	for self.alive.IsRunning() {
		select {
		case <-tmr.C:
			self.Tick()
		case <-stopch:
			return
		}
	}
}

func (self *TextDisplay) Stop() { self.alive.Stop() }

// Translate converts UTF-8 into configured codepage. Control characters are removed.
func (self *TextDisplay) Translate(s string) []byte {
	result := []byte(s)
	tr, ok := self.tr.Load().(charset.Translator)
	if ok && tr != nil {
		_, tb, err := tr.Translate(result, true)
		if err != nil {
			self.log.Error(errors.Annotatef(err, "translate text=%q", s))
		} else {
			// translator reuses single internal buffer, make a copy
			result = append([]byte(nil), tb...)
		}
	}
	out := result[:0]
	for _, b := range result {
		if b >= twi.PrintableMin {
			out = append(out, b)
		}
	}
	return out
}

func (self *TextDisplay) load() *View { return self.view.Load().(*View) }

func (self *TextDisplay) notify(v *View) {
	ch, _ := self.upd.Load().(chan<- View)
	if ch == nil {
		return
	}
	select {
	case ch <- *v:
	default:
	}
}

// Scroll policy:
// length <= Width: window fixed at 0, tail rendered blank
// length > Width: cyclic advance, wraps before window passes text end
func scrollNext(length, offset int) int {
	if length <= Width {
		return 0
	}
	offset++
	if offset+Width-1 >= length {
		return 0
	}
	return offset
}
