package state

import (
	"context"
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/juju/errors"
	"github.com/temoto/alive/v2"
	"github.com/temoto/quadseg/helpers"
	"github.com/temoto/quadseg/log2"
	tele_api "github.com/temoto/quadseg/tele"
)

type Global struct {
	Alive        *alive.Alive
	BuildVersion string
	Config       *Config
	Hardware     hardware // hardware.go
	Log          *log2.Log
	Tele         tele_api.Teler

	_copy_guard sync.Mutex //nolint:unused
}

const ContextKey = "run/state-global"

func NewContext(log *log2.Log, teler tele_api.Teler) (context.Context, *Global) {
	if log == nil {
		panic("code error NewContext() log=nil")
	}
	if teler == nil {
		teler = tele_api.NewStub()
	}

	g := &Global{
		Alive: alive.NewAlive(),
		Log:   log,
		Tele:  teler,
	}
	ctx := context.Background()
	ctx = context.WithValue(ctx, log2.ContextKey, log)
	ctx = context.WithValue(ctx, ContextKey, g)

	return ctx, g
}

func GetGlobal(ctx context.Context) *Global {
	v := ctx.Value(ContextKey)
	if v == nil {
		panic(fmt.Sprintf("context['%s'] is nil", ContextKey))
	}
	if g, ok := v.(*Global); ok {
		return g
	}
	panic(fmt.Sprintf("context['%s'] expected type *Global actual=%#v", ContextKey, v))
}

// If `Init` fails, consider `Global` is in broken state.
func (g *Global) Init(ctx context.Context, cfg *Config) error {
	g.Config = cfg

	g.Log.Infof("build version=%s", g.BuildVersion)
	if err := g.Config.Validate(); err != nil {
		return err
	}

	// display before tele, tele subscribes to display updates
	if _, err := g.Display(); err != nil {
		return errors.Annotate(err, "display init")
	}

	// Since tele is remote error reporting mechanism, it must be inited before anything else
	g.Config.Tele.BuildVersion = g.BuildVersion
	// Tele.Init gets g.Log clone before SetErrorFunc, so Tele.Log.Error doesn't recurse on itself
	if err := g.Tele.Init(ctx, g.Log.Clone(log2.LInfo), g.Config.Tele); err != nil {
		g.Tele = tele_api.Noop{}
		return errors.Annotate(err, "tele init")
	}
	g.Log.SetErrorFunc(g.Tele.Error)

	if g.BuildVersion == "unknown" {
		g.Error(fmt.Errorf("build version is not set, build with -ldflags='-X main.BuildVersion=...'"))
	} else if g.Config.Tele.DeviceId > 0 && strings.HasSuffix(g.BuildVersion, "-dirty") { // device_id<=0 is staging
		g.Error(fmt.Errorf("running development build with uncommited changes, bad idea for production"))
	}

	errs := make([]error, 0, 2)
	if _, err := g.Multiplexer(); err != nil {
		errs = append(errs, errors.Annotate(err, "multiplexer init"))
	}
	if _, err := g.Bridge(); err != nil {
		errs = append(errs, errors.Annotate(err, "bus init"))
	}
	return helpers.FoldErrors(errs)
}

func (g *Global) MustInit(ctx context.Context, cfg *Config) {
	err := g.Init(ctx, cfg)
	if err != nil {
		g.Fatal(err)
	}
}

// Run starts bus, refresh and scroll loops. Blocks until Stop.
func (g *Global) Run() error {
	d, err := g.Display()
	if err != nil {
		return err
	}
	mux, err := g.Multiplexer()
	if err != nil {
		return err
	}
	bridge, err := g.Bridge()
	if err != nil {
		return err
	}

	loops := []func(){d.Run, mux.Run}
	stops := []func(){d.Stop, mux.Stop}
	if bridge != nil {
		loops = append(loops, func() {
			if err := bridge.Run(); err != nil {
				g.Error(err, "bus bridge")
			}
			// bridge stream end is fatal for the daemon
			g.Stop()
		})
		stops = append(stops, bridge.Stop)
	}

	wg := sync.WaitGroup{}
	for _, fun := range loops {
		if !g.Alive.Add(1) {
			break
		}
		wg.Add(1)
		go func(f func()) {
			defer g.Alive.Done()
			defer wg.Done()
			f()
		}(fun)
	}

	<-g.Alive.StopChan()
	for _, stop := range stops {
		stop()
	}
	wg.Wait()
	return errors.Annotate(g.Hardware.Output.out.Close(), "display output close")
}

func (g *Global) Error(err error, args ...interface{}) {
	if err != nil {
		if len(args) != 0 {
			msg := args[0].(string)
			args = args[1:]
			err = errors.Annotatef(err, msg, args...)
		}
		g.Log.Error(err)
	}
}

func (g *Global) Fatal(err error, args ...interface{}) {
	if err != nil {
		g.Error(err, args...)
		g.StopWait(5 * time.Second)
		g.Log.Fatal(errors.ErrorStack(err))
		os.Exit(1)
	}
}

func (g *Global) Stop() {
	g.Alive.Stop()
}

func (g *Global) StopWait(timeout time.Duration) bool {
	g.Alive.Stop()
	select {
	case <-g.Alive.WaitChan():
		return true
	case <-time.After(timeout):
		return false
	}
}
