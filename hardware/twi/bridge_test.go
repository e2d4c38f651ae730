package twi

import (
	"bytes"
	"io"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/temoto/quadseg/log2"
)

type mockPort struct {
	r      io.Reader
	w      bytes.Buffer
	closed bool
}

func (self *mockPort) Read(b []byte) (int, error)  { return self.r.Read(b) }
func (self *mockPort) Write(b []byte) (int, error) { return self.w.Write(b) }
func (self *mockPort) Close() error                { self.closed = true; return nil }

func TestBridge(t *testing.T) {
	t.Parallel()

	stream := []byte{
		0x60, 0x00,
		0x80, 'h', 0x80, 'i', 0x80, 0x00,
		0xa0, 0x00,
		0xa8, 0x00, 0xb8, 0x00, 0xb8, 0x00, 0xc0, 0x00,
	}
	cases := []struct {
		name string
		r    io.Reader
	}{
		{"whole", bytes.NewReader(stream)},
		// frames split across reads must be reassembled
		{"one-byte", iotest.OneByteReader(bytes.NewReader(stream))},
	}
	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			store := &mockStore{}
			port := &mockPort{r: c.r}
			b := NewBridge(port, NewSlave(store, log2.NewTest(t, log2.LDebug)), log2.NewTest(t, log2.LDebug))
			require.NoError(t, b.Run())
			assert.Equal(t, "hi", string(store.text))
			assert.Equal(t, []byte("hi\x00"), port.w.Bytes())
			// counters are process wide, other tests add to them
			assert.GreaterOrEqual(t, statRx.Value(), int64(len(stream)))
			assert.GreaterOrEqual(t, statTx.Value(), int64(3))
			b.Stop()
			assert.True(t, port.closed)
		})
	}
}

func TestOpenBridgeInvalidDriver(t *testing.T) {
	t.Parallel()

	_, err := OpenBridge(&BridgeConfig{Driver: "carrier-pigeon"}, HandlerFunc(func(Event) Reply { return Reply{} }), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "carrier-pigeon")
}
