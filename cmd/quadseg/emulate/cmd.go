// Development mode: stdin lines are bus write transactions, visible digits are printed.
package emulate

import (
	"context"
	"fmt"
	"strings"

	prompt "github.com/c-bata/go-prompt"
	"github.com/juju/errors"
	"github.com/temoto/quadseg/cmd/quadseg/subcmd"
	"github.com/temoto/quadseg/hardware/sevenseg"
	"github.com/temoto/quadseg/hardware/text_display"
	"github.com/temoto/quadseg/helpers/cli"
	"github.com/temoto/quadseg/internal/state"
)

const usage = `syntax: one command per line
- TEXT    write transaction TEXT + terminator
- ?       read transaction, show text
- stat    bus slave counters
- tick    advance scroll window
`

var Mod = subcmd.Mod{Name: "emulate", Usage: "interactive bus master against in-memory display", Main: Main}

func Main(ctx context.Context, config *state.Config) error {
	g := state.GetGlobal(ctx)
	// hardware bus is not used in this mode
	config.Hardware.Bus.Driver = ""
	g.MustInit(ctx, config)

	d, err := g.Display()
	if err != nil {
		return errors.Annotate(err, "display")
	}
	m, err := g.BusMaster()
	if err != nil {
		return errors.Annotate(err, "bus")
	}
	slave, err := g.Slave()
	if err != nil {
		return errors.Annotate(err, "bus")
	}
	runDone := make(chan error, 1)
	go func() { runDone <- g.Run() }()

	exec := func(line string) {
		switch line {
		case "":
			return
		case "help":
			fmt.Print(usage)
			return
		case "?":
			fmt.Printf("text=%q\n", m.ReadText())
			return
		case "stat":
			fmt.Printf("%+v\n", slave.Stat())
			return
		case "tick":
			d.Tick()
		default:
			m.Write(d.Translate(line), true)
		}
		fmt.Println(render(d.View()))
	}
	suggests := []prompt.Suggest{
		{Text: "?", Description: "read back text"},
		{Text: "stat", Description: "bus slave counters"},
		{Text: "tick", Description: "advance scroll window"},
		{Text: "help"},
	}
	complete := func(doc prompt.Document) []prompt.Suggest {
		return prompt.FilterHasPrefix(suggests, doc.GetWordBeforeCursor(), true)
	}
	cli.MainLoop("quadseg", exec, complete, g.Stop)

	g.Stop()
	err = <-runDone
	g.Tele.Close()
	return err
}

// render draws window digits side by side.
func render(v text_display.View) string {
	w := v.Window()
	rows := [3][]string{}
	for _, c := range w {
		lines := strings.Split(sevenseg.Encode(c).String(), "\n")
		for i := range rows {
			rows[i] = append(rows[i], lines[i])
		}
	}
	return fmt.Sprintf("%s\n%s\n%s\n%s", v.String(), strings.Join(rows[0], " "), strings.Join(rows[1], " "), strings.Join(rows[2], " "))
}
