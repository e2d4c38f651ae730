package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/temoto/quadseg/hardware/i2c"
	"github.com/temoto/quadseg/hardware/text_display"
	"github.com/temoto/quadseg/hardware/twi"
	"github.com/temoto/quadseg/log2"
)

func TestParseLine(t *testing.T) {
	t.Parallel()

	log := log2.NewTest(t, log2.LDebug)
	d, err := text_display.NewTextDisplay(nil, log)
	require.NoError(t, err)
	client := i2c.NewClient(i2c.NewMasterBus(twi.NewSlave(d, log)), 0)

	cases := []struct {
		line   string
		count  int
		expect string
		err    string
	}{
		{"", 0, "hello", ""},
		{"get s1", 2, "hello", ""},
		{"set 12:30", 1, "12:30", ""},
		{"loop=3 get", 3, "12:30", ""},
		{"get set  a b ", 2, "a b", ""},
		{"bad", 0, "", "word=0 bad not valid"},
		{"loop=x", 0, "", `word=0 loop=x: strconv.ParseUint: parsing "x": invalid syntax`},
	}
	for _, c := range cases {
		c := c
		t.Run(c.line, func(t *testing.T) {
			actions, err := parseLine(client, d, c.line)
			if c.err != "" {
				assert.EqualError(t, err, c.err)
				return
			}
			require.NoError(t, err)
			assert.Len(t, actions, c.count)
			for _, a := range actions {
				require.NoError(t, a())
			}
			text, err := client.ReadText()
			require.NoError(t, err)
			assert.Equal(t, c.expect, string(text))
		})
	}
}
