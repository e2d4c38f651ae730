// Package twi implements the slave side of a two-wire (I2C) bus carrying display text.
//
// Slave accepts two transactions at SlaveAddress:
// - write: printable bytes (>= 0x20) appended to the text, first byte < 0x20 terminates,
//   bytes past Capacity are dropped silently
// - read: text streamed back one byte per acknowledged clock until master NACK
//
// Bus events arrive as two-wire slave status codes (Condition), one at a time,
// from a bridge stream (Bridge) or an in-process Master.
package twi

import "fmt"

const (
	SlaveAddress = 0x12
	Capacity     = 50

	// bytes below are terminators
	PrintableMin = 0x20
)

// Two-wire slave status codes.
type Condition byte

const (
	CondOwnAddrWrite        Condition = 0x60 // own SLA+W received, ACK returned
	CondArbLostAddrWrite    Condition = 0x68
	CondGeneralCall         Condition = 0x70
	CondArbLostGeneralCall  Condition = 0x78
	CondDataReceivedAck     Condition = 0x80
	CondDataReceivedNack    Condition = 0x88
	CondGeneralDataAck      Condition = 0x90
	CondGeneralDataNack     Condition = 0x98
	CondStop                Condition = 0xa0 // STOP or repeated START
	CondOwnAddrRead         Condition = 0xa8 // own SLA+R received, ACK returned
	CondArbLostAddrRead     Condition = 0xb0
	CondDataTransmittedAck  Condition = 0xb8
	CondDataTransmittedNack Condition = 0xc0
	CondLastDataAck         Condition = 0xc8
)

func (c Condition) String() string {
	switch c {
	case CondOwnAddrWrite:
		return "SLA+W"
	case CondArbLostAddrWrite:
		return "arb-lost-SLA+W"
	case CondGeneralCall:
		return "general-call"
	case CondArbLostGeneralCall:
		return "arb-lost-general-call"
	case CondDataReceivedAck:
		return "rx-ack"
	case CondDataReceivedNack:
		return "rx-nack"
	case CondGeneralDataAck:
		return "general-rx-ack"
	case CondGeneralDataNack:
		return "general-rx-nack"
	case CondStop:
		return "stop"
	case CondOwnAddrRead:
		return "SLA+R"
	case CondArbLostAddrRead:
		return "arb-lost-SLA+R"
	case CondDataTransmittedAck:
		return "tx-ack"
	case CondDataTransmittedNack:
		return "tx-nack"
	case CondLastDataAck:
		return "tx-last-ack"
	}
	return fmt.Sprintf("cond(%02x)", byte(c))
}

type Event struct {
	Cond Condition
	Data byte // valid for rx conditions
}

func (e Event) String() string {
	switch e.Cond {
	case CondDataReceivedAck, CondDataReceivedNack, CondGeneralDataAck, CondGeneralDataNack:
		return fmt.Sprintf("%s:%02x", e.Cond.String(), e.Data)
	}
	return e.Cond.String()
}

// Reply is slave response to an event.
// Transmit=true: Data must be loaded into bus data register (next byte for master).
type Reply struct {
	Data     byte
	Transmit bool
}

type Handler interface {
	Handle(Event) Reply
}

type HandlerFunc func(Event) Reply

func (f HandlerFunc) Handle(e Event) Reply { return f(e) }

type State uint8

const (
	StateIdle State = iota
	StateReceivingWrite
	StateTransmittingRead
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateReceivingWrite:
		return "receiving-write"
	case StateTransmittingRead:
		return "transmitting-read"
	}
	return fmt.Sprintf("state(%d)", uint8(s))
}
