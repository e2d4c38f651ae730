package tele

import (
	"context"
	"time"

	"github.com/golang/protobuf/proto"
	"github.com/juju/errors"
	"github.com/temoto/alive/v2"
	"github.com/temoto/quadseg/hardware/text_display"
	"github.com/temoto/quadseg/helpers"
	"github.com/temoto/quadseg/internal/state"
	"github.com/temoto/quadseg/log2"
	tele_api "github.com/temoto/quadseg/tele"
	tele_config "github.com/temoto/quadseg/tele/config"
)

const logMsgDisabled = "tele disabled"

// Tele contract:
// - Init() fails only with invalid config, network issues ignored
// - Error/Report public API calls never block on network
// - new display text is reported once per message, scroll ticks are not reported
type tele struct { //nolint:maligned
	config    tele_config.Config
	log       *log2.Log
	transport Transporter
	alive     *alive.Alive
	updates   chan text_display.View
	deviceId  int32
}

func New() tele_api.Teler {
	return &tele{}
}
func NewWithTransporter(trans Transporter) tele_api.Teler {
	return &tele{transport: trans}
}

func (self *tele) Init(ctx context.Context, log *log2.Log, teleConfig tele_config.Config) error {
	self.config = teleConfig
	self.log = log
	if self.config.LogDebug {
		self.log.SetLevel(log2.LDebug)
	}
	self.alive = alive.NewAlive()
	if !self.config.Enabled {
		self.log.Infof(logMsgDisabled)
		return nil
	}
	self.deviceId = int32(self.config.DeviceId)

	// test code sets .transport
	if self.transport == nil { // production path
		self.transport = &transportMqtt{}
	}
	if err := self.transport.Init(ctx, log, teleConfig, self.onCommandMessage); err != nil {
		return errors.Annotate(err, "tele transport")
	}

	g := state.GetGlobal(ctx)
	d, err := g.Display()
	if err != nil {
		return errors.Annotate(err, "tele display")
	}
	self.updates = make(chan text_display.View, 8)
	d.SetUpdateChan(self.updates)
	if !self.alive.Add(1) {
		return errors.Errorf("code error tele Init after Close")
	}
	go self.worker(ctx)
	return nil
}

func (self *tele) Close() {
	if self.alive == nil {
		return
	}
	self.alive.Stop()
	self.alive.Wait()
	if self.config.Enabled {
		self.transport.Close()
	}
}

func (self *tele) Error(e error) {
	if !self.config.Enabled {
		return
	}
	self.log.Debugf("tele.Error err=%v", e)
	tm := &tele_api.Telemetry{Error: e.Error()}
	self.send(tm)
}

// Report sends full display state and counters.
func (self *tele) Report(ctx context.Context) error {
	if !self.config.Enabled {
		self.log.Infof(logMsgDisabled)
		return nil
	}
	g := state.GetGlobal(ctx)
	tm := &tele_api.Telemetry{
		BuildVersion: g.BuildVersion,
		Stat:         &tele_api.Telemetry_Stat{},
	}
	errs := make([]error, 0, 3)
	if d, err := g.Display(); err == nil {
		tm.Display = displayTele(d.View(), d.Updated())
	} else {
		errs = append(errs, err)
	}
	if slave, err := g.Slave(); err == nil {
		st := slave.Stat()
		tm.Stat.Transactions = st.Transactions
		tm.Stat.Messages = st.Messages
		tm.Stat.Dropped = st.Dropped
		tm.Stat.Ignored = st.Ignored
		tm.Stat.Transmitted = st.Transmitted
	} else {
		errs = append(errs, err)
	}
	if mux, err := g.Multiplexer(); err == nil {
		tm.Stat.RefreshErrors = mux.Errors()
	} else {
		errs = append(errs, err)
	}
	if err := helpers.FoldErrors(errs); err != nil {
		tm.Error = err.Error()
	}
	if !self.send(tm) {
		return errors.Errorf("tele report not sent")
	}
	return nil
}

func (self *tele) worker(ctx context.Context) {
	defer self.alive.Done()
	var tmrCh <-chan time.Time
	if self.config.ReportSec > 0 {
		tmr := time.NewTicker(time.Duration(self.config.ReportSec) * time.Second)
		defer tmr.Stop()
		tmrCh = tmr.C
	}
	stopch := self.alive.StopChan()
	lastGen := uint32(0)
	for {
		select {
		case v := <-self.updates:
			if v.Frame.Gen == lastGen {
				continue
			}
			lastGen = v.Frame.Gen
			self.send(&tele_api.Telemetry{Display: displayTele(v, time.Now())})

		case <-tmrCh:
			if err := self.Report(ctx); err != nil {
				self.log.Error(errors.Annotate(err, "tele periodic report"))
			}

		case <-stopch:
			return
		}
	}
}

func (self *tele) send(tm *tele_api.Telemetry) bool {
	tm.DeviceId = self.deviceId
	if tm.Time == 0 {
		tm.Time = time.Now().UnixNano()
	}
	payload, err := proto.Marshal(tm)
	if err != nil {
		self.log.Errorf("CRITICAL telemetry Marshal tm=%#v err=%v", tm, err)
		return false
	}
	return self.transport.SendTelemetry(payload)
}

func displayTele(v text_display.View, updated time.Time) *tele_api.Display {
	w := v.Window()
	td := &tele_api.Display{
		Text:   append([]byte(nil), v.Frame.Bytes()...),
		Offset: uint32(v.Offset),
		Gen:    v.Frame.Gen,
		Window: w[:],
	}
	if !updated.IsZero() {
		td.Updated = updated.UnixNano()
	}
	return td
}
