package app

import (
	"github.com/kbukum/hofkit/config"
	"github.com/kbukum/hofkit/observability"
	"github.com/kbukum/hofkit/selector"
	"github.com/kbukum/hofkit/server"
	"github.com/kbukum/hofkit/validation"
)

// ServiceName names the config files, env prefix and telemetry resource.
const ServiceName = "hofkit"

// Config is the hofkit application configuration.
//
//	name: hofkit
//	selection:
//	  tie_break: later
//	operations:
//	  custom:
//	    hypot: "math.sqrt(a*a + b*b)"
type Config struct {
	config.ServiceConfig `yaml:",inline" mapstructure:",squash"`

	Server        server.Config        `yaml:"server" mapstructure:"server"`
	Selection     SelectionConfig      `yaml:"selection" mapstructure:"selection"`
	Operations    OperationsConfig     `yaml:"operations" mapstructure:"operations"`
	Observability observability.Config `yaml:"observability" mapstructure:"observability"`
}

// SelectionConfig holds selector defaults.
type SelectionConfig struct {
	// TieBreak is used when a request does not name one: earlier or later.
	TieBreak string `yaml:"tie_break" mapstructure:"tie_break" json:"tie_break" validate:"omitempty,tiebreak"`
}

// OperationsConfig holds scripted operations, name to expression over a and b.
type OperationsConfig struct {
	Custom map[string]string `yaml:"custom" mapstructure:"custom" json:"custom" validate:"dive,keys,required,endkeys,required"`
}

// ApplyDefaults fills unset fields.
func (c *Config) ApplyDefaults() {
	if c.Name == "" {
		c.Name = ServiceName
	}
	c.ServiceConfig.ApplyDefaults()
	c.Server.ApplyDefaults()
	c.Observability.ApplyDefaults()
	if c.Selection.TieBreak == "" {
		c.Selection.TieBreak = selector.PreferEarlier.String()
	}
}

// Validate reports every invalid field at once.
func (c *Config) Validate() error {
	v := validation.New()
	v.Merge("config", c.ServiceConfig.Validate())
	v.Merge("server", c.Server.Validate())
	v.Merge("observability", c.Observability.Validate())
	v.Merge("selection", validation.Validate(c.Selection))
	v.Merge("operations", validation.Validate(c.Operations))
	return v.Err()
}

// DefaultTieBreak returns the configured tie policy.
func (c *Config) DefaultTieBreak() selector.TieBreak {
	tie, err := selector.ParseTieBreak(c.Selection.TieBreak)
	if err != nil {
		return selector.PreferEarlier
	}
	return tie
}

// Load reads config.yml/.env/HOFKIT_* into a Config, applies defaults and validates.
func Load(opts ...config.LoaderOption) (*Config, error) {
	cfg := &Config{}
	if err := config.LoadConfig(ServiceName, cfg, opts...); err != nil {
		return nil, err
	}
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
