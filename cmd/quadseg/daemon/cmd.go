// Main mode of operation: bus slave driving the digits.
package daemon

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/coreos/go-systemd/daemon"
	"github.com/juju/errors"
	"github.com/temoto/quadseg/cmd/quadseg/subcmd"
	"github.com/temoto/quadseg/internal/state"
)

var Mod = subcmd.Mod{Name: "run", Usage: "serve bus, drive display", Main: Main}

func Main(ctx context.Context, config *state.Config) error {
	g := state.GetGlobal(ctx)
	g.MustInit(ctx, config)
	g.Log.Debugf("config=%+v", g.Config.Hardware)

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		s := <-sigs
		g.Log.Infof("signal=%v stopping", s)
		g.Stop()
	}()

	subcmd.SdNotify(daemon.SdNotifyReady)
	g.Log.Debugf("init complete")

	err := g.Run()
	subcmd.SdNotify(daemon.SdNotifyStopping)
	g.Tele.Close()
	return errors.Annotate(err, "run")
}
