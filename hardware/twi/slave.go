package twi

import (
	"sync"
	"sync/atomic"

	"github.com/temoto/quadseg/log2"
)

// Store is the shared text buffer.
// Slave is the only writer. Text() result must not be modified.
type Store interface {
	ResetWindow()
	Publish(text []byte)
	Text() []byte
}

type Stat struct {
	Transactions uint32
	Messages     uint32
	Dropped      uint32 // overflow bytes
	Ignored      uint32 // events without effect in current state
	Transmitted  uint32
}

type Slave struct {
	mu    sync.Mutex
	log   *log2.Log
	store Store
	state State
	stat  Stat

	// write transaction
	staged     [Capacity]byte
	writeIndex int

	// read transaction, text is captured at SLA+R
	readText  []byte
	readIndex int
}

func NewSlave(store Store, log *log2.Log) *Slave {
	return &Slave{store: store, log: log}
}

// Handle runs one bus event to completion.
// Events from concurrent sources are serialized.
func (self *Slave) Handle(e Event) Reply {
	self.mu.Lock()
	defer self.mu.Unlock()

	prev := self.state
	var r Reply
	self.state, r = self.step(e)
	if self.log.Enabled(log2.LDebug) {
		self.log.Debugf("twi %s state %s->%s reply=%v", e.String(), prev.String(), self.state.String(), r)
	}
	return r
}

func (self *Slave) State() State {
	self.mu.Lock()
	defer self.mu.Unlock()
	return self.state
}

func (self *Slave) Stat() Stat {
	return Stat{
		Transactions: atomic.LoadUint32(&self.stat.Transactions),
		Messages:     atomic.LoadUint32(&self.stat.Messages),
		Dropped:      atomic.LoadUint32(&self.stat.Dropped),
		Ignored:      atomic.LoadUint32(&self.stat.Ignored),
		Transmitted:  atomic.LoadUint32(&self.stat.Transmitted),
	}
}

// step is the transition function: (state, event) -> (state, reply).
// Codes without meaning in current state leave state unchanged.
func (self *Slave) step(e Event) (State, Reply) {
	switch e.Cond {
	case CondOwnAddrWrite:
		atomic.AddUint32(&self.stat.Transactions, 1)
		self.writeIndex = 0
		self.store.ResetWindow()
		return StateReceivingWrite, Reply{}

	case CondDataReceivedAck:
		if self.state != StateReceivingWrite {
			atomic.AddUint32(&self.stat.Ignored, 1)
			return self.state, Reply{}
		}
		if e.Data < PrintableMin {
			self.commit()
			// bytes after terminator are ignored until next address match
			return StateIdle, Reply{}
		}
		if self.writeIndex < Capacity {
			self.staged[self.writeIndex] = e.Data
			self.writeIndex++
		} else {
			atomic.AddUint32(&self.stat.Dropped, 1)
		}
		return StateReceivingWrite, Reply{}

	case CondStop:
		// session closed without terminator
		if self.state == StateReceivingWrite && self.writeIndex > 0 {
			self.commit()
		}
		return StateIdle, Reply{}

	case CondOwnAddrRead:
		atomic.AddUint32(&self.stat.Transactions, 1)
		self.readText = self.store.Text()
		self.readIndex = 0
		return StateTransmittingRead, self.transmit()

	case CondDataTransmittedAck:
		if self.state != StateTransmittingRead {
			atomic.AddUint32(&self.stat.Ignored, 1)
			return self.state, Reply{}
		}
		if self.readIndex < Capacity {
			self.readIndex++
		}
		return StateTransmittingRead, self.transmit()

	case CondDataTransmittedNack, CondLastDataAck:
		self.readText = nil
		return StateIdle, Reply{}
	}

	atomic.AddUint32(&self.stat.Ignored, 1)
	return self.state, Reply{}
}

func (self *Slave) commit() {
	n := self.writeIndex
	self.writeIndex = 0
	atomic.AddUint32(&self.stat.Messages, 1)
	self.store.Publish(self.staged[:n])
}

// Positions past text length send terminator, stale bytes never leave.
func (self *Slave) transmit() Reply {
	atomic.AddUint32(&self.stat.Transmitted, 1)
	if self.readIndex < len(self.readText) {
		return Reply{Data: self.readText[self.readIndex], Transmit: true}
	}
	return Reply{Data: 0, Transmit: true}
}
