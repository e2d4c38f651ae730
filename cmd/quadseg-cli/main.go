package main

import (
	"flag"
	"os"
	"strconv"
	"strings"
	"time"

	prompt "github.com/c-bata/go-prompt"
	"github.com/juju/errors"
	"github.com/temoto/quadseg/hardware/i2c"
	"github.com/temoto/quadseg/hardware/text_display"
	"github.com/temoto/quadseg/hardware/twi"
	"github.com/temoto/quadseg/helpers/cli"
	"github.com/temoto/quadseg/log2"
)

const usage = `syntax: commands separated by whitespace
(main)
- set TEXT  write TEXT to display, rest of line
- get       read text back
- sN        pause N milliseconds

(meta)
- loop=N    repeat N times all commands on this line
`

var log = log2.NewStderr(log2.LDebug)

func main() {
	cmdline := flag.NewFlagSet(os.Args[0], flag.ExitOnError)
	busName := cmdline.String("bus", "", "I2C adapter name or path, empty = first available")
	addr := cmdline.Uint("addr", twi.SlaveAddress, "slave address")
	codepage := cmdline.String("codepage", "", "translate text before sending")
	emulate := cmdline.Bool("emulate", false, "talk to in-memory display instead of hardware")
	_ = cmdline.Parse(os.Args[1:])

	log.SetFlags(log2.LInteractiveFlags)

	// display translates text and, in emulate mode, plays the slave role
	d, err := text_display.NewTextDisplay(&text_display.TextDisplayConfig{Codepage: *codepage}, log)
	if err != nil {
		log.Fatal(errors.ErrorStack(err))
	}
	var bus i2c.Bus
	if *emulate {
		bus = i2c.NewMasterBus(twi.NewSlave(d, log))
	} else if bus, err = i2c.OpenBus(*busName); err != nil {
		log.Fatal(errors.ErrorStack(err))
	}
	client := i2c.NewClient(bus, uint16(*addr))
	defer client.Close()

	cli.MainLoop("quadseg-cli", newExecutor(client, d), newCompleter(), nil)
}

type action func() error

func newCompleter() func(d prompt.Document) []prompt.Suggest {
	suggests := []prompt.Suggest{
		{Text: "set", Description: "write text, rest of line"},
		{Text: "get", Description: "read text back"},
		{Text: "sN", Description: "pause for N ms"},
		{Text: "loop=N", Description: "repeat line N times"},
		{Text: "help"},
	}

	return func(d prompt.Document) []prompt.Suggest {
		return prompt.FilterFuzzy(suggests, d.GetWordBeforeCursor(), true)
	}
}

func newExecutor(client *i2c.Client, d *text_display.TextDisplay) func(string) {
	return func(line string) {
		actions, err := parseLine(client, d, line)
		if err != nil {
			log.Errorf(errors.ErrorStack(err))
			return
		}
		for _, a := range actions {
			if err := a(); err != nil {
				log.Errorf(errors.ErrorStack(err))
				return
			}
		}
	}
}

func parseLine(client *i2c.Client, d *text_display.TextDisplay, line string) ([]action, error) {
	words := strings.Fields(line)
	actions := make([]action, 0, len(words))
	loop := 1
	for i, w := range words {
		switch {
		case w == "help":
			actions = append(actions, func() error { log.Infof(usage); return nil })
		case w == "get":
			actions = append(actions, func() error {
				text, err := client.ReadText()
				if err == nil {
					log.Infof("< %q", text)
				}
				return err
			})
		case w == "set":
			// set consumes the rest of line, spaces included
			rest := strings.TrimSpace(strings.SplitN(strings.TrimSpace(line), "set", 2)[1])
			text := d.Translate(rest)
			if len(text) > twi.Capacity {
				return nil, errors.NotValidf("text length=%d max=%d", len(text), twi.Capacity)
			}
			actions = append(actions, func() error {
				log.Debugf("> %q", text)
				return client.WriteText(text)
			})
			return repeat(actions, loop), nil
		case strings.HasPrefix(w, "loop="):
			n, err := strconv.ParseUint(w[5:], 10, 16)
			if err != nil {
				return nil, errors.Annotatef(err, "word=%d %s", i, w)
			}
			loop = int(n)
		case len(w) > 1 && w[0] == 's':
			ms, err := strconv.ParseUint(w[1:], 10, 32)
			if err != nil {
				return nil, errors.Annotatef(err, "word=%d %s", i, w)
			}
			pause := time.Duration(ms) * time.Millisecond
			actions = append(actions, func() error { time.Sleep(pause); return nil })
		default:
			return nil, errors.NotValidf("word=%d %s", i, w)
		}
	}
	return repeat(actions, loop), nil
}

func repeat(actions []action, n int) []action {
	result := make([]action, 0, len(actions)*n)
	for i := 0; i < n; i++ {
		result = append(result, actions...)
	}
	return result
}
