package state

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/juju/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/temoto/quadseg/hardware/sevenseg"
	"github.com/temoto/quadseg/hardware/text_display"
	"github.com/temoto/quadseg/log2"
	tele_api "github.com/temoto/quadseg/tele"
)

func TestReadConfig(t *testing.T) {
	t.Parallel()

	type Case struct {
		name      string
		input     string
		check     func(testing.TB, context.Context)
		expectErr string
	}
	cases := []Case{
		{"empty", "", func(t testing.TB, ctx context.Context) {
			g := GetGlobal(ctx)
			assert.Equal(t, text_display.DefaultScrollDelay, g.Config.TextDisplayConfig().ScrollDelay)
			assert.Equal(t, sevenseg.DefaultRefreshPeriod, g.Config.MultiplexerConfig().Period)
			d := g.MustDisplay()
			assert.Equal(t, text_display.DefaultGreeting, string(d.Text()))
			b, err := g.Bridge()
			assert.NoError(t, err)
			assert.Nil(t, b)
		}, ""},

		{"display",
			`hardware { display { greeting = "boot" scroll_delay_ms = 300 refresh_ms = 2 } }`,
			func(t testing.TB, ctx context.Context) {
				g := GetGlobal(ctx)
				assert.Equal(t, "boot", string(g.MustDisplay().Text()))
				assert.Equal(t, 300*time.Millisecond, g.Config.TextDisplayConfig().ScrollDelay)
				assert.Equal(t, 2*time.Millisecond, g.Config.MultiplexerConfig().Period)
			}, ""},

		{"serial-default-baud",
			`hardware { bus { driver = "serial" device = "/dev/null-serial" } }`,
			nil,
			"twi bridge serial open device=/dev/null-serial"},

		{"include",
			`include "greeting-dash" {}`,
			func(t testing.TB, ctx context.Context) {
				g := GetGlobal(ctx)
				assert.Equal(t, "----", string(g.MustDisplay().Text()))
			}, ""},
		{"include-optional", `include "missing" { optional = true }`, nil, ""},

		{"error-syntax", `hello`, nil, "key 'hello' expected start of object"},
		{"error-include-loop", `include "include-loop" {}`, nil, "config include loop: from=include-loop include=include-loop"},
		{"error-include-missing", `include "missing" {}`, nil, "config required name=missing"},
		{"error-driver", `hardware { bus { driver = "usb" } }`, nil, "hardware.bus.driver=usb"},
		{"error-device", `hardware { bus { driver = "file" } }`, nil, "hardware.bus.device=empty"},
		{"error-pinmap",
			`hardware { display { pin_chip = "/dev/gpiochip0" pinmap { digits = [1,2,3] segments = [4,5,6,7,8,9,10] } } }`,
			nil, "pinmap digits"},
		{"error-greeting", `hardware { display { greeting = "` + strings.Repeat("x", 51) + `" } }`, nil, "greeting length=51"},
		{"error-tele-broker", `tele { enable = true }`, nil, "tele.mqtt_broker=empty"},
		{"error-codepage", `hardware { display { codepage = "no-such-codepage" } }`, nil, "codepage=no-such-codepage"},
	}
	mkCheck := func(c Case) func(*testing.T) {
		return func(t *testing.T) {
			log := log2.NewTest(t, log2.LDebug)
			ctx, g := NewContext(log, tele_api.NewStub())
			g.Hardware.Output.out = &sevenseg.MockOutput{}

			fs := NewMockFullReader(map[string]string{
				"test-inline":   c.input,
				"empty":         "",
				"greeting-dash": `hardware { display { greeting = "----" } }`,
				"error-syntax":  "hello",
				"include-loop":  `include "include-loop" {}`,
			})
			cfg, err := ReadConfig(log, fs, "test-inline")
			if err == nil {
				err = g.Init(ctx, cfg)
			}
			if c.expectErr == "" {
				if err != nil {
					t.Fatalf("error expected=nil actual='%v'", errors.ErrorStack(err))
				}
				if c.check != nil {
					c.check(t, ctx)
				}
			} else {
				require.Error(t, err)
				if !strings.Contains(err.Error(), c.expectErr) {
					t.Fatalf("error expected='%s' actual='%v'", c.expectErr, err)
				}
			}
		}
	}
	for _, c := range cases {
		c := c
		t.Run(c.name, mkCheck(c))
	}
}

func TestFunctionalBundled(t *testing.T) {
	// not Parallel
	t.Logf("this test needs OS open|read|stat access to file `../../quadseg.hcl`")

	log := log2.NewTest(t, log2.LDebug)
	c := MustReadConfig(log, NewOsFullReader(), "../../quadseg.hcl")
	assert.Equal(t, "serial", c.Hardware.Bus.Driver)
	assert.Equal(t, []int{4, 17, 27, 22}, c.Hardware.Display.Pinmap.Digits)
	assert.True(t, c.Hardware.Display.Pinmap.DigitActiveLow)
	assert.Equal(t, -10, c.Hardware.Display.RefreshNice)
}
