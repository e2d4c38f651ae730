package state

import (
	"context"
	"os"
	"testing"

	"github.com/temoto/quadseg/hardware/sevenseg"
	"github.com/temoto/quadseg/log2"
	tele_api "github.com/temoto/quadseg/tele"
)

// NewTestContext inits Global from inline config with in-memory display output.
func NewTestContext(t testing.TB, buildVersion string, confString string, teler tele_api.Teler) (context.Context, *Global) {
	fs := NewMockFullReader(map[string]string{
		"test-inline": confString,
	})

	var log *log2.Log
	if os.Getenv("quadseg_test_log_stderr") == "1" {
		log = log2.NewStderr(log2.LDebug) // useful with panics
	} else {
		log = log2.NewTest(t, log2.LDebug)
	}
	log.SetFlags(log2.LTestFlags)
	ctx, g := NewContext(log, teler)
	g.BuildVersion = buildVersion
	g.Hardware.Output.out = &sevenseg.MockOutput{}
	cfg, err := ReadConfig(log, fs, "test-inline")
	if err != nil {
		t.Fatal(err)
	}
	if err = g.Init(ctx, cfg); err != nil {
		t.Fatal(err)
	}
	return ctx, g
}
