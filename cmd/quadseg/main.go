package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/juju/errors"
	"github.com/temoto/quadseg/cmd/quadseg/daemon"
	"github.com/temoto/quadseg/cmd/quadseg/emulate"
	"github.com/temoto/quadseg/cmd/quadseg/subcmd"
	"github.com/temoto/quadseg/internal/state"
	"github.com/temoto/quadseg/internal/tele"
	"github.com/temoto/quadseg/log2"
)

var log = log2.NewStderr(log2.LDebug)

var modules = []subcmd.Mod{
	daemon.Mod,
	emulate.Mod,
	{Name: "version", Usage: "print build version", Main: versionMain},
}

var BuildVersion string = "unknown" // set by ldflags -X

func main() {
	flagset := flag.NewFlagSet("quadseg", flag.ContinueOnError)
	flagConfig := flagset.String("config", "quadseg.hcl", "")
	flagset.Usage = func() {
		fmt.Fprintf(flagset.Output(), "Usage: quadseg [option...] command\n\nCommands:\n")
		for _, m := range modules {
			fmt.Fprintf(flagset.Output(), "  %-10s %s\n", m.Name, m.Usage)
		}
		fmt.Fprintf(flagset.Output(), "\nOptions:\n")
		flagset.PrintDefaults()
	}

	if subcmd.SdNotify("start") {
		// under systemd assume journal logging, remove timestamp
		log.SetFlags(log2.LServiceFlags)
	} else {
		log.SetFlags(log2.LInteractiveFlags)
	}

	if err := flagset.Parse(os.Args[1:]); err != nil {
		if err == flag.ErrHelp {
			os.Exit(0)
		}
		log.Fatal(err)
	}

	mod, err := subcmd.Parse(strings.Join(flagset.Args(), " "), modules)
	if err != nil {
		flagset.Usage()
		log.Fatal(err)
	}
	if mod.Name == "version" {
		if err := mod.Main(context.Background(), nil); err != nil {
			log.Fatal(err)
		}
		return
	}

	log.Infof("quadseg version=%s starting %s", BuildVersion, mod.Name)
	config := state.MustReadConfig(log, state.NewOsFullReader(), *flagConfig)
	ctx, g := state.NewContext(log, tele.New())
	g.BuildVersion = BuildVersion
	if err := mod.Main(ctx, config); err != nil {
		log.Fatal(errors.ErrorStack(err))
	}
}

func versionMain(ctx context.Context, config *state.Config) error {
	fmt.Printf("quadseg %s\n", BuildVersion)
	return nil
}
