package emulate

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/temoto/quadseg/hardware/text_display"
	"github.com/temoto/quadseg/log2"
)

func TestRender(t *testing.T) {
	t.Parallel()

	d, err := text_display.NewTextDisplay(&text_display.TextDisplayConfig{Greeting: "18"}, log2.NewTest(t, log2.LDebug))
	require.NoError(t, err)
	expect := strings.Join([]string{
		`"18"@0[18  ]`,
		strings.Join([]string{"   ", " _ ", "   ", "   "}, " "),
		strings.Join([]string{"  |", "|_|", "   ", "   "}, " "),
		strings.Join([]string{"  | ", "|_| ", "    ", "    "}, " "),
	}, "\n")
	assert.Equal(t, expect, render(d.View()))
}
