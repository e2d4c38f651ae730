package sevenseg

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/temoto/quadseg/log2"
)

type textSource string

func (s textSource) DigitChar(pos int) byte {
	if pos < len(s) {
		return s[pos]
	}
	return ' '
}

func TestCycle(t *testing.T) {
	t.Parallel()

	p := Digit1
	seen := []Position{}
	for i := 0; i < 8; i++ {
		next, toggle := p.Next()
		assert.Equal(t, p, toggle.Off)
		assert.Equal(t, next, toggle.On)
		assert.NotEqual(t, toggle.Off, toggle.On)
		seen = append(seen, next)
		p = next
	}
	assert.Equal(t, []Position{Digit2, Digit3, Digit4, Digit1, Digit2, Digit3, Digit4, Digit1}, seen)
	assert.Equal(t, "digit4", Digit4.String())
}

func TestRefresh(t *testing.T) {
	t.Parallel()

	out := &MockOutput{}
	m := NewMultiplexer(nil, textSource("h1="), out, log2.NewTest(t, log2.LDebug))
	for i := 0; i < 4*3; i++ {
		require.NoError(t, m.Refresh())
		lit := out.Lit()
		require.Len(t, lit, 1)
		assert.Equal(t, Position(i%Digits), lit[0])
		assert.Equal(t, lit[0], m.Position())
	}
	assert.Equal(t, [Digits]Pattern{Encode('h'), Encode('1'), Encode('='), Blank}, out.Patterns())
	assert.Equal(t, 12, out.Shows())
}

func TestRefreshError(t *testing.T) {
	t.Parallel()

	out := &MockOutput{Err: fmt.Errorf("line busy")}
	m := NewMultiplexer(nil, textSource("8888"), out, log2.NewTest(t, log2.LDebug))
	err := m.Refresh()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line busy")
	// position does not advance on failed update
	assert.Equal(t, Digit4, m.Position())
	assert.Equal(t, uint32(1), m.Errors())
}

func TestRunStop(t *testing.T) {
	t.Parallel()

	out := &MockOutput{}
	m := NewMultiplexer(&MultiplexerConfig{Period: time.Millisecond}, textSource("8888"), out, log2.NewTest(t, log2.LDebug))
	done := make(chan struct{})
	go func() {
		m.Run()
		close(done)
	}()
	require.Eventually(t, func() bool { return out.Shows() >= 8 }, time.Second, time.Millisecond)
	m.Stop()
	<-done
	assert.Empty(t, out.Lit())
}
