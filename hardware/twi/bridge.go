package twi

import (
	"expvar"
	"io"
	"os"
	"time"

	"github.com/goburrow/serial"
	"github.com/juju/errors"
	"github.com/temoto/alive/v2"
	"github.com/temoto/quadseg/helpers"
	"github.com/temoto/quadseg/log2"
)

// Bridge decodes bus events from an external bus interface stream.
// Stream format: two byte frames [condition][data].
// Transmit replies are written back as single byte [data].
type Bridge struct {
	alive *alive.Alive
	log   *log2.Log
	port  io.ReadWriteCloser
	h     Handler
}

type BridgeConfig struct {
	Driver  string // serial, file
	Device  string
	Baud    int
	Timeout time.Duration
}

const DefaultBridgeTimeout = 200 * time.Millisecond

// bytes through all bridges of process
var (
	statRx = expvar.NewInt("twi_bridge_rx")
	statTx = expvar.NewInt("twi_bridge_tx")
)

func OpenBridge(c *BridgeConfig, h Handler, log *log2.Log) (*Bridge, error) {
	var port io.ReadWriteCloser
	var err error
	switch c.Driver {
	case "serial":
		timeout := c.Timeout
		if timeout == 0 {
			timeout = DefaultBridgeTimeout
		}
		port, err = serial.Open(&serial.Config{
			Address:  c.Device,
			BaudRate: c.Baud,
			DataBits: 8,
			StopBits: 1,
			Parity:   "N",
			Timeout:  timeout,
		})
		if err != nil {
			return nil, errors.Annotatef(err, "twi bridge serial open device=%s", c.Device)
		}

	case "file":
		port, err = os.OpenFile(c.Device, os.O_RDWR, 0)
		if err != nil {
			return nil, errors.Annotatef(err, "twi bridge open device=%s", c.Device)
		}

	default:
		return nil, errors.NotValidf("twi bridge driver=%s valid: serial, file", c.Driver)
	}
	return NewBridge(port, h, log), nil
}

func NewBridge(port io.ReadWriteCloser, h Handler, log *log2.Log) *Bridge {
	return &Bridge{
		alive: alive.NewAlive(),
		log:   log,
		port:  helpers.NewStatPort(port, statRx, statTx),
		h:     h,
	}
}

// Run blocks until Stop() or stream end.
func (self *Bridge) Run() error {
	var frame [2]byte
	have := 0
	for self.alive.IsRunning() {
		n, err := self.port.Read(frame[have:])
		have += n
		if have == len(frame) {
			have = 0
			e := Event{Cond: Condition(frame[0]), Data: frame[1]}
			if r := self.h.Handle(e); r.Transmit {
				if _, werr := self.port.Write([]byte{r.Data}); werr != nil {
					return errors.Annotatef(werr, "twi bridge reply event=%s", e.String())
				}
			}
		}
		switch {
		case err == nil:
		case err == serial.ErrTimeout:
			// partial frame survives timeout
		case err == io.EOF:
			self.log.Infof("twi bridge stream end rx=%d tx=%d", statRx.Value(), statTx.Value())
			return nil
		case !self.alive.IsRunning():
			return nil
		default:
			return errors.Annotate(err, "twi bridge read")
		}
	}
	return nil
}

func (self *Bridge) Stop() {
	self.alive.Stop()
	if err := self.port.Close(); err != nil {
		self.log.Error(errors.Annotate(err, "twi bridge close"))
	}
}
