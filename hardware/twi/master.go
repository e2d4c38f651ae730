package twi

// Master produces the exact event sequence a bus controller causes on the slave.
// Used by telemetry remote commands and tests.
type Master struct {
	h Handler
}

func NewMaster(h Handler) *Master { return &Master{h: h} }

// Write sends text as one write transaction.
// terminate=true appends NUL, otherwise transaction ends with STOP only.
func (self *Master) Write(text []byte, terminate bool) {
	self.h.Handle(Event{Cond: CondOwnAddrWrite})
	for _, b := range text {
		self.h.Handle(Event{Cond: CondDataReceivedAck, Data: b})
	}
	if terminate {
		self.h.Handle(Event{Cond: CondDataReceivedAck, Data: 0})
	}
	self.h.Handle(Event{Cond: CondStop})
}

// Read acknowledges n-1 bytes and NACKs the last one.
func (self *Master) Read(n int) []byte {
	if n <= 0 {
		return nil
	}
	out := make([]byte, 0, n)
	r := self.h.Handle(Event{Cond: CondOwnAddrRead})
	out = append(out, r.Data)
	for len(out) < n {
		r = self.h.Handle(Event{Cond: CondDataTransmittedAck})
		out = append(out, r.Data)
	}
	self.h.Handle(Event{Cond: CondDataTransmittedNack})
	return out
}

// ReadText reads until terminator or Capacity.
func (self *Master) ReadText() []byte {
	return CutText(self.Read(Capacity + 1))
}

// CutText returns b up to first terminator.
func CutText(b []byte) []byte {
	for i, c := range b {
		if c < PrintableMin {
			return b[:i]
		}
	}
	return b
}
