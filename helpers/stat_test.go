package helpers

import (
	"bytes"
	"expvar"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type nopPort struct {
	io.Reader
	io.Writer
}

func (nopPort) Close() error { return nil }

func TestStatPort(t *testing.T) {
	t.Parallel()

	var rx, tx expvar.Int
	out := bytes.NewBuffer(nil)
	s := NewStatPort(nopPort{strings.NewReader(strings.Repeat(".", 1024)), out}, &rx, &tx)
	buf := make([]byte, 17)
	_, _ = s.Read(buf[:0])
	assert.Equal(t, int64(0), rx.Value())
	_, _ = s.Read(buf[:5])
	assert.Equal(t, int64(5), rx.Value())
	_, _ = s.Read(buf)
	assert.Equal(t, int64(22), rx.Value())

	_, _ = s.Write(buf[:3])
	assert.Equal(t, int64(3), tx.Value())
	assert.Equal(t, 3, out.Len())
	assert.Equal(t, int64(22), rx.Value())
	assert.NoError(t, s.Close())
}
