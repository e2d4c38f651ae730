package state

import (
	"path/filepath"
	"sync"

	"github.com/hashicorp/hcl"
	"github.com/juju/errors"
	"github.com/temoto/quadseg/hardware/sevenseg"
	"github.com/temoto/quadseg/hardware/text_display"
	"github.com/temoto/quadseg/hardware/twi"
	"github.com/temoto/quadseg/helpers"
	"github.com/temoto/quadseg/log2"
	tele_config "github.com/temoto/quadseg/tele/config"
)

const DefaultBusBaud = 115200

type Config struct {
	// includeSeen contains absolute paths to prevent include loops
	includeSeen map[string]struct{}
	// only used for Unmarshal, do not access
	XXX_Include []ConfigSource `hcl:"include"`

	Hardware struct {
		// bus event bridge, empty driver = no bridge, text only from tele
		Bus struct {
			Driver    string `hcl:"driver"`
			Device    string `hcl:"device"`
			Baud      int    `hcl:"baud"`
			TimeoutMs int    `hcl:"timeout_ms"`
		} `hcl:"bus"`
		Display struct { //nolint:maligned
			Codepage      string `hcl:"codepage"`
			Greeting      string `hcl:"greeting"`
			ScrollDelayMs int    `hcl:"scroll_delay_ms"`
			RefreshMs     int    `hcl:"refresh_ms"`
			RefreshNice   int    `hcl:"refresh_nice"`
			// empty = no GPIO, segments rendered in memory only
			PinChip string          `hcl:"pin_chip"`
			Pinmap  sevenseg.PinMap `hcl:"pinmap"`
		} `hcl:"display"`
	} `hcl:"hardware"`

	Tele tele_config.Config `hcl:"tele"`

	_copy_guard sync.Mutex //nolint:unused
}

type ConfigSource struct {
	Name     string `hcl:"name,key"`
	Optional bool   `hcl:"optional"`
}

func (c *Config) BridgeConfig() *twi.BridgeConfig {
	bc := &c.Hardware.Bus
	return &twi.BridgeConfig{
		Driver:  bc.Driver,
		Device:  bc.Device,
		Baud:    bc.Baud,
		Timeout: helpers.IntMillisecondDefault(bc.TimeoutMs, twi.DefaultBridgeTimeout),
	}
}

func (c *Config) TextDisplayConfig() *text_display.TextDisplayConfig {
	dc := &c.Hardware.Display
	return &text_display.TextDisplayConfig{
		Codepage:    dc.Codepage,
		Greeting:    dc.Greeting,
		ScrollDelay: helpers.IntMillisecondDefault(dc.ScrollDelayMs, text_display.DefaultScrollDelay),
	}
}

func (c *Config) MultiplexerConfig() *sevenseg.MultiplexerConfig {
	dc := &c.Hardware.Display
	return &sevenseg.MultiplexerConfig{
		Period: helpers.IntMillisecondDefault(dc.RefreshMs, sevenseg.DefaultRefreshPeriod),
		Nice:   dc.RefreshNice,
	}
}

// Validate checks values and fills defaults.
func (c *Config) Validate() error {
	errs := make([]error, 0, 4)
	bc := &c.Hardware.Bus
	switch bc.Driver {
	case "":
	case "serial":
		if bc.Baud == 0 {
			bc.Baud = DefaultBusBaud
		}
		fallthrough
	case "file":
		if bc.Device == "" {
			errs = append(errs, errors.NotValidf("config: hardware.bus.device=empty driver=%s", bc.Driver))
		}
	default:
		errs = append(errs, errors.NotValidf("config: hardware.bus.driver=%s valid: serial, file", bc.Driver))
	}
	if bc.TimeoutMs < 0 {
		errs = append(errs, errors.NotValidf("config: hardware.bus.timeout_ms=%d", bc.TimeoutMs))
	}

	dc := &c.Hardware.Display
	if dc.ScrollDelayMs < 0 {
		errs = append(errs, errors.NotValidf("config: hardware.display.scroll_delay_ms=%d", dc.ScrollDelayMs))
	}
	if dc.RefreshMs < 0 {
		errs = append(errs, errors.NotValidf("config: hardware.display.refresh_ms=%d", dc.RefreshMs))
	}
	if len(dc.Greeting) > twi.Capacity {
		errs = append(errs, errors.NotValidf("config: hardware.display.greeting length=%d max=%d", len(dc.Greeting), twi.Capacity))
	}
	if dc.PinChip != "" {
		if err := dc.Pinmap.Validate(); err != nil {
			errs = append(errs, errors.Annotate(err, "config: hardware.display"))
		}
	}

	if c.Tele.Enabled && c.Tele.MqttBroker == "" {
		errs = append(errs, errors.NotValidf("config: tele.mqtt_broker=empty"))
	}
	return helpers.FoldErrors(errs)
}

func (c *Config) read(log *log2.Log, fs FullReader, source ConfigSource, errs *[]error) {
	norm := fs.Normalize(source.Name)
	if _, ok := c.includeSeen[norm]; ok {
		*errs = append(*errs, errors.Errorf("config duplicate source=%s", source.Name))
		return
	}
	log.Debugf("config reading source='%s' path=%s", source.Name, norm)
	c.includeSeen[source.Name] = struct{}{}
	c.includeSeen[norm] = struct{}{}

	bs, err := fs.ReadAll(norm)
	if bs == nil && err == nil {
		if !source.Optional {
			err = errors.NotFoundf("config required name=%s path=%s", source.Name, norm)
			*errs = append(*errs, err)
		}
		return
	}
	if err != nil {
		*errs = append(*errs, errors.Annotatef(err, "config source=%s", source.Name))
		return
	}

	err = hcl.Unmarshal(bs, c)
	if err != nil {
		err = errors.Annotatef(err, "config unmarshal source=%s content='%s'", source.Name, string(bs))
		*errs = append(*errs, err)
		return
	}

	var includes []ConfigSource
	includes, c.XXX_Include = c.XXX_Include, nil
	for _, include := range includes {
		includeNorm := fs.Normalize(include.Name)
		if _, ok := c.includeSeen[includeNorm]; ok {
			err = errors.Errorf("config include loop: from=%s include=%s", source.Name, include.Name)
			*errs = append(*errs, err)
			continue
		}
		c.read(log, fs, include, errs)
	}
}

func ReadConfig(log *log2.Log, fs FullReader, names ...string) (*Config, error) {
	if len(names) == 0 {
		log.Fatal("code error [Must]ReadConfig() without names")
	}

	if osfs, ok := fs.(*OsFullReader); ok {
		dir, name := filepath.Split(names[0])
		if err := osfs.SetBase(dir); err != nil {
			return nil, err
		}
		names[0] = name
	}
	c := &Config{
		includeSeen: make(map[string]struct{}),
	}
	errs := make([]error, 0, 8)
	for _, name := range names {
		c.read(log, fs, ConfigSource{Name: name}, &errs)
	}
	if len(errs) == 0 {
		errs = append(errs, c.Validate())
	}
	return c, helpers.FoldErrors(errs)
}

func MustReadConfig(log *log2.Log, fs FullReader, names ...string) *Config {
	c, err := ReadConfig(log, fs, names...)
	if err != nil {
		log.Fatal(errors.ErrorStack(err))
	}
	return c
}

// only for tests and tools that build config in code
func NewConfig() *Config {
	return &Config{includeSeen: make(map[string]struct{})}
}
