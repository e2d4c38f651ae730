package helpers

import (
	"expvar"
	"io"
)

// StatPort counts bytes passing through stream in both directions.
type StatPort struct {
	io.ReadWriteCloser
	Rx *expvar.Int
	Tx *expvar.Int
}

var _ io.ReadWriteCloser = &StatPort{}

func NewStatPort(port io.ReadWriteCloser, rx, tx *expvar.Int) *StatPort {
	return &StatPort{ReadWriteCloser: port, Rx: rx, Tx: tx}
}

func (sp *StatPort) Read(p []byte) (n int, err error) {
	n, err = sp.ReadWriteCloser.Read(p)
	sp.Rx.Add(int64(n))
	return
}

func (sp *StatPort) Write(p []byte) (n int, err error) {
	n, err = sp.ReadWriteCloser.Write(p)
	sp.Tx.Add(int64(n))
	return
}
