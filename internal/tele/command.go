package tele

import (
	"context"
	"fmt"
	"time"

	"github.com/golang/protobuf/proto"
	"github.com/juju/errors"
	"github.com/temoto/quadseg/hardware/twi"
	"github.com/temoto/quadseg/internal/state"
	tele_api "github.com/temoto/quadseg/tele"
)

const defaultReplyTopic = "cr"

var (
	errInvalidArg = fmt.Errorf("invalid arg")
)

func (self *tele) onCommandMessage(ctx context.Context, payload []byte) bool {
	cmd := new(tele_api.Command)
	err := proto.Unmarshal(payload, cmd)
	if err != nil {
		self.log.Errorf("tele command parse raw=%x err=%v", payload, err)
		return true
	}
	self.log.Debugf("tele command raw=%x task=%s", payload, cmd.String())

	r := tele_api.Response{CommandId: cmd.Id}
	now := time.Now().UnixNano()
	if cmd.Deadline != 0 && now > cmd.Deadline {
		err = fmt.Errorf("deadline")
	} else {
		err = self.dispatchCommand(ctx, cmd, &r)
	}
	self.commandReply(cmd, &r, err)
	return true
}

func (self *tele) dispatchCommand(ctx context.Context, cmd *tele_api.Command, r *tele_api.Response) error {
	switch task := cmd.Task.(type) {
	case *tele_api.Command_SetText:
		return self.cmdSetText(ctx, task.SetText, r)

	case *tele_api.Command_GetText:
		return self.cmdGetText(ctx, r)

	case *tele_api.Command_Report:
		return errors.Annotate(self.Report(ctx), "cmdReport")

	default:
		err := fmt.Errorf("unknown command=%s", cmd.String())
		self.log.Error(err)
		return err
	}
}

// Remote text goes through the same write transaction as bus master would send.
func (self *tele) cmdSetText(ctx context.Context, arg *tele_api.Command_ArgSetText, r *tele_api.Response) error {
	if arg == nil {
		return errInvalidArg
	}
	g := state.GetGlobal(ctx)
	d, err := g.Display()
	if err != nil {
		return errors.Annotate(err, "display")
	}
	m, err := g.BusMaster()
	if err != nil {
		return errors.Annotate(err, "bus")
	}
	text := d.Translate(arg.Text)
	if len(text) > twi.Capacity {
		self.log.Infof("tele set-text length=%d truncated to %d", len(text), twi.Capacity)
	}
	m.Write(text, true)
	r.Text = append([]byte(nil), d.Text()...)
	return nil
}

func (self *tele) cmdGetText(ctx context.Context, r *tele_api.Response) error {
	g := state.GetGlobal(ctx)
	m, err := g.BusMaster()
	if err != nil {
		return errors.Annotate(err, "bus")
	}
	r.Text = m.ReadText()
	return nil
}

func (self *tele) commandReply(c *tele_api.Command, r *tele_api.Response, e error) {
	if e != nil {
		r.Error = e.Error()
	}
	topic := c.ReplyTopic
	if topic == "" {
		topic = defaultReplyTopic
	}
	payload, err := proto.Marshal(r)
	if err != nil {
		self.log.Errorf("CRITICAL response Marshal r=%#v err=%v", r, err)
		return
	}
	if !self.transport.SendCommandResponse(topic, payload) {
		self.log.Errorf("tele command=%d response lost", c.Id)
	}
}
