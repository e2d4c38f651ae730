package text_display

import (
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/temoto/quadseg/hardware/twi"
	"github.com/temoto/quadseg/log2"
)

func newTestDisplay(t testing.TB, text string) *TextDisplay {
	d, err := NewTextDisplay(&TextDisplayConfig{Greeting: "x"}, log2.NewTest(t, log2.LDebug))
	require.NoError(t, err)
	d.Publish([]byte(text))
	return d
}

func window(d *TextDisplay) string {
	w := d.View().Window()
	return string(w[:])
}

func TestGreeting(t *testing.T) {
	t.Parallel()

	d, err := NewTextDisplay(nil, nil)
	require.NoError(t, err)
	assert.Equal(t, "hello", string(d.Text()))
	assert.Equal(t, "hell", window(d))
	assert.True(t, d.Updated().IsZero())
}

func TestScrollHello(t *testing.T) {
	t.Parallel()

	d := newTestDisplay(t, "hello")
	assert.Equal(t, "hell", window(d))
	d.Tick()
	assert.Equal(t, uint8(1), d.View().Offset)
	assert.Equal(t, "ello", window(d))
	d.Tick()
	assert.Equal(t, uint8(0), d.View().Offset)
	assert.Equal(t, "hell", window(d))
}

func TestScrollShortPadded(t *testing.T) {
	t.Parallel()

	for _, s := range []string{"", "a", "ab", "abc"} {
		d := newTestDisplay(t, s)
		for tick := 0; tick < 10; tick++ {
			assert.Equal(t, (s + "    ")[:Width], window(d), "text=%q tick=%d", s, tick)
			assert.Equal(t, uint8(0), d.View().Offset)
			d.Tick()
		}
	}
}

func TestScrollExactWidth(t *testing.T) {
	t.Parallel()

	d := newTestDisplay(t, "1234")
	for tick := 0; tick < 20; tick++ {
		d.Tick()
		assert.Equal(t, uint8(0), d.View().Offset)
		assert.Equal(t, "1234", window(d))
	}
}

func TestScrollInvariant(t *testing.T) {
	t.Parallel()

	long := strings.Repeat("0123456789", 5)
	for n := Width + 1; n <= twi.Capacity; n++ {
		d := newTestDisplay(t, long[:n])
		for tick := 1; tick <= 3*n; tick++ {
			d.Tick()
			off := int(d.View().Offset)
			require.True(t, off >= 0 && off+Width-1 < n, "n=%d tick=%d offset=%d", n, tick, off)
			// cycle period is n-3
			if tick%(n-Width+1) == 0 {
				require.Equal(t, 0, off, "n=%d tick=%d", n, tick)
			} else {
				require.NotEqual(t, 0, off, "n=%d tick=%d", n, tick)
			}
		}
	}
}

func TestPublishTruncates(t *testing.T) {
	t.Parallel()

	long := strings.Repeat("x", 60)
	d := newTestDisplay(t, long)
	assert.Equal(t, long[:twi.Capacity], string(d.Text()))
	assert.False(t, d.Updated().IsZero())
}

func TestPublishResetsWindow(t *testing.T) {
	t.Parallel()

	d := newTestDisplay(t, "abcdefgh")
	d.Tick()
	d.Tick()
	require.Equal(t, "cdef", window(d))
	gen := d.View().Frame.Gen

	d.ResetWindow()
	assert.Equal(t, "abcd", window(d))
	assert.Equal(t, gen, d.View().Frame.Gen)

	d.Tick()
	d.Publish([]byte("xyzzy"))
	assert.Equal(t, "xyzz", window(d))
	assert.Equal(t, gen+1, d.View().Frame.Gen)
}

func TestUpdateChan(t *testing.T) {
	t.Parallel()

	d := newTestDisplay(t, "hello")
	ch := make(chan View, 4)
	d.SetUpdateChan(ch)
	d.Tick()
	assert.Equal(t, "ello", string(func() []byte { w := (<-ch).Window(); return w[:] }()))
	d.Publish([]byte("ok"))
	v := <-ch
	assert.Equal(t, "ok", string(v.Frame.Bytes()))
	assert.Equal(t, uint8(0), v.Offset)
}

// Readers concurrent with writer must always see consistent text+window.
func TestConcurrentReaders(t *testing.T) {
	t.Parallel()

	d := newTestDisplay(t, "aaaaaaaa")
	texts := []string{"aaaaaaaa", "bbbbbbbbbbbb", "cc", "dddd"}
	wg := sync.WaitGroup{}
	stop := make(chan struct{})
	wg.Add(2)
	go func() {
		defer wg.Done()
		for {
			select {
			case <-stop:
				return
			default:
				d.Tick()
			}
		}
	}()
	go func() {
		defer wg.Done()
		for {
			select {
			case <-stop:
				return
			default:
				v := d.View()
				s := string(v.Frame.Bytes())
				w := v.Window()
				for i, c := range w {
					if int(v.Offset)+i < len(s) {
						assert.Equal(t, s[0], c)
					} else {
						assert.Equal(t, byte(' '), c)
					}
				}
				assert.True(t, len(s) <= Width || int(v.Offset)+Width-1 < len(s))
			}
		}
	}()
	for i := 0; i < 1000; i++ {
		d.Publish([]byte(texts[i%len(texts)]))
	}
	close(stop)
	wg.Wait()
}

func TestTranslate(t *testing.T) {
	t.Parallel()

	d, err := NewTextDisplay(nil, log2.NewTest(t, log2.LDebug))
	require.NoError(t, err)
	assert.Equal(t, []byte("ab c"), d.Translate("a\tb c\n"))
}
