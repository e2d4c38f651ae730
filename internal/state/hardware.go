package state

import (
	"sync"
	"sync/atomic"

	"github.com/juju/errors"
	"github.com/temoto/quadseg/hardware/sevenseg"
	"github.com/temoto/quadseg/hardware/text_display"
	"github.com/temoto/quadseg/hardware/twi"
)

type hardware struct {
	Display struct {
		once
		d *text_display.TextDisplay
	}
	Bus struct {
		once
		slave  *twi.Slave
		master *twi.Master
	}
	Bridge struct {
		once
		b *twi.Bridge
	}
	Output struct {
		once
		// tests may set before Init
		out sevenseg.Output
	}
	Multiplexer struct {
		once
		m *sevenseg.Multiplexer
	}
}

func (g *Global) Display() (*text_display.TextDisplay, error) {
	x := &g.Hardware.Display
	_ = x.do(func() error {
		x.d, x.err = text_display.NewTextDisplay(g.Config.TextDisplayConfig(), g.Log)
		return x.err
	})
	return x.d, x.err
}

func (g *Global) MustDisplay() *text_display.TextDisplay {
	d, err := g.Display()
	if err != nil {
		g.Fatal(err)
	}
	if d == nil {
		g.Fatal(errors.Errorf("display is not configured"))
	}
	return d
}

// Slave is the only writer of display text.
func (g *Global) Slave() (*twi.Slave, error) {
	x := &g.Hardware.Bus
	_ = x.do(func() error {
		d, err := g.Display()
		if err != nil {
			return err
		}
		x.slave = twi.NewSlave(d, g.Log)
		x.master = twi.NewMaster(x.slave)
		return nil
	})
	return x.slave, x.err
}

// BusMaster emulates bus controller in process, remote commands go through it.
func (g *Global) BusMaster() (*twi.Master, error) {
	if _, err := g.Slave(); err != nil {
		return nil, err
	}
	return g.Hardware.Bus.master, nil
}

// Bridge returns nil,nil when bus driver is not configured.
func (g *Global) Bridge() (*twi.Bridge, error) {
	x := &g.Hardware.Bridge
	_ = x.do(func() error {
		if g.Config.Hardware.Bus.Driver == "" {
			g.Log.Infof("config: hardware.bus.driver=empty, bus bridge disabled")
			return nil
		}
		slave, err := g.Slave()
		if err != nil {
			return err
		}
		x.b, err = twi.OpenBridge(g.Config.BridgeConfig(), slave, g.Log)
		return err
	})
	return x.b, x.err
}

func (g *Global) Output() (sevenseg.Output, error) {
	x := &g.Hardware.Output
	_ = x.do(func() error {
		if x.out != nil {
			return nil
		}
		dc := &g.Config.Hardware.Display
		if dc.PinChip == "" {
			g.Log.Infof("config: hardware.display.pin_chip=empty, segments not driven")
			x.out = &sevenseg.MockOutput{}
			return nil
		}
		out, err := sevenseg.OpenGpioChip(dc.PinChip, dc.Pinmap)
		if err != nil {
			return errors.Annotate(err, "display gpio")
		}
		x.out = out
		return nil
	})
	return x.out, x.err
}

func (g *Global) Multiplexer() (*sevenseg.Multiplexer, error) {
	x := &g.Hardware.Multiplexer
	_ = x.do(func() error {
		d, err := g.Display()
		if err != nil {
			return err
		}
		out, err := g.Output()
		if err != nil {
			return err
		}
		x.m = sevenseg.NewMultiplexer(g.Config.MultiplexerConfig(), d, out, g.Log)
		return nil
	})
	return x.m, x.err
}

type once struct {
	sync.Mutex
	called uint32 // atomic bool
	err    error
}

func (o *once) done() bool {
	return atomic.LoadUint32(&o.called) == 1
}

func (o *once) do(f func() error) error {
	if o.done() { // fast path
		return o.err
	}
	o.Lock()
	defer o.Unlock()
	if o.done() {
		return o.err
	}
	o.err = f()
	atomic.StoreUint32(&o.called, 1)
	return o.err
}
