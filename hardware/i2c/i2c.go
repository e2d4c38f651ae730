// Package i2c is the bus controller side: talks to display over Linux I2C adapter.
package i2c

import (
	"sync"

	"github.com/juju/errors"
	"github.com/temoto/quadseg/hardware/twi"
	"periph.io/x/periph/conn/i2c"
	"periph.io/x/periph/conn/i2c/i2creg"
	"periph.io/x/periph/host"
)

// Bus is used to interact with the I2C bus.
type Bus interface {
	Tx(addr uint16, w, r []byte) error
	Close() error
}

type periphBus struct {
	bc i2c.BusCloser
}

func (self periphBus) Tx(addr uint16, w, r []byte) error { return self.bc.Tx(addr, w, r) }
func (self periphBus) Close() error                      { return self.bc.Close() }

// OpenBus opens adapter by periph name, e.g. "1" or "/dev/i2c-1". Empty name picks first available.
func OpenBus(name string) (Bus, error) {
	if _, err := host.Init(); err != nil {
		return nil, errors.Annotate(err, "periph/init")
	}
	bc, err := i2creg.Open(name)
	if err != nil {
		return nil, errors.Annotatef(err, "i2c open bus=%s", name)
	}
	return periphBus{bc: bc}, nil
}

// Client writes and reads display text at one slave address.
type Client struct {
	lk   sync.Mutex
	bus  Bus
	Addr uint16
}

func NewClient(bus Bus, addr uint16) *Client {
	if addr == 0 {
		addr = twi.SlaveAddress
	}
	return &Client{bus: bus, Addr: addr}
}

// WriteText sends text followed by NUL terminator in one write transaction.
// Bytes below 0x20 would terminate early, so they are rejected.
func (self *Client) WriteText(text []byte) error {
	for i, c := range text {
		if c < twi.PrintableMin {
			return errors.NotValidf("text[%d]=%02x control byte", i, c)
		}
	}
	buf := make([]byte, len(text)+1)
	copy(buf, text)

	self.lk.Lock()
	defer self.lk.Unlock()
	if err := self.bus.Tx(self.Addr, buf, nil); err != nil {
		return errors.Annotatef(err, "i2c write addr=%02x", self.Addr)
	}
	return nil
}

// ReadText reads full capacity plus terminator and cuts at first terminator.
func (self *Client) ReadText() ([]byte, error) {
	buf := make([]byte, twi.Capacity+1)

	self.lk.Lock()
	defer self.lk.Unlock()
	if err := self.bus.Tx(self.Addr, nil, buf); err != nil {
		return nil, errors.Annotatef(err, "i2c read addr=%02x", self.Addr)
	}
	return twi.CutText(buf), nil
}

func (self *Client) Close() error { return self.bus.Close() }

// MasterBus routes transactions to in-process slave handler.
// Lets client code run against emulated display.
type MasterBus struct {
	m *twi.Master
}

func NewMasterBus(h twi.Handler) *MasterBus { return &MasterBus{m: twi.NewMaster(h)} }

func (self *MasterBus) Tx(addr uint16, w, r []byte) error {
	if addr != twi.SlaveAddress {
		return errors.NotFoundf("i2c addr=%02x", addr)
	}
	if len(w) != 0 {
		self.m.Write(w, false)
	}
	if len(r) != 0 {
		copy(r, self.m.Read(len(r)))
	}
	return nil
}

func (self *MasterBus) Close() error { return nil }
