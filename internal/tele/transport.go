package tele

import (
	"context"

	"github.com/temoto/quadseg/log2"
	tele_config "github.com/temoto/quadseg/tele/config"
)

// Tele transport contract:
// - Init fails only with invalid config, ignores network errors
// - Send* queue message for delivery, false means message is lost
// - hide "connection" concept from upstream API or errors
// - application may start without network available
type Transporter interface {
	Init(ctx context.Context, log *log2.Log, teleConfig tele_config.Config, onCommand CommandCallback) error
	Close()
	SendTelemetry(payload []byte) bool
	SendCommandResponse(topicSuffix string, payload []byte) bool
}

type CommandCallback func(context.Context, []byte) bool
