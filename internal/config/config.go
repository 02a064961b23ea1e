/*
Package config holds the application configuration of the chomsky tools.

Configuration is layered: built-in defaults, then an optional configuration
file in NestedText format, then explicit overrides (usually from command-line
flags). Keys are

    tracing.adapter       tracing adapter, default "go"
    tracing.destination   optional trace output, e.g. "Stdout" or "file://trace.log"
    tracelevel.root       root trace level
    tracelevel.<key>      trace level for tracer <key>, e.g. tracelevel.chomsky.normalize
    names.proxy           prefix for terminal proxies, default "X"
    names.aux             prefix for auxiliary non-terminals, default "Y"
    display.style         output style: plain, tree or table

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package config

import (
	"github.com/knadh/koanf"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/file"
	"github.com/pkg/errors"

	"github.com/npillmayer/schuko/schukonf/koanfadapter"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
)

// AppTag identifies configuration files at OS-dependent default locations.
const AppTag = "chomsky"

// TracingKeys are the keys of all tracers of this module.
var TracingKeys = []string{
	"chomsky.grammar",
	"chomsky.normalize",
	"chomsky.gramtext",
	"chomsky.cli",
}

// Display styles.
const (
	StylePlain = "plain"
	StyleTree  = "tree"
	StyleTable = "table"
)

var defaults = map[string]interface{}{
	"tracing.adapter": "go",
	"tracelevel.root": "Error",
	"names.proxy":     "X",
	"names.aux":       "Y",
	"display.style":   StylePlain,
}

// defaultValues returns the defaults, including level "Error" for every
// tracer of this module.
func defaultValues() map[string]interface{} {
	values := make(map[string]interface{}, len(defaults)+len(TracingKeys))
	for k, v := range defaults {
		values[k] = v
	}
	for _, key := range TracingKeys {
		values["tracelevel."+key] = "Error"
	}
	return values
}

// Config is a schuko.Configuration backed by koanf.
type Config struct {
	*koanfadapter.KConf
}

type options struct {
	path      string
	locate    bool
	overrides map[string]interface{}
}

// Option configures loading of a configuration.
type Option func(*options)

// File loads the configuration file at path, in NestedText format.
func File(path string) Option {
	return func(o *options) {
		o.path = path
	}
}

// DefaultLocations searches OS-dependent default locations for a
// configuration file, if no file is given explicitly.
func DefaultLocations(search bool) Option {
	return func(o *options) {
		o.locate = search
	}
}

// Override sets a configuration value, taking precedence over defaults
// and configuration files.
func Override(key string, value interface{}) Option {
	return func(o *options) {
		if o.overrides == nil {
			o.overrides = make(map[string]interface{})
		}
		o.overrides[key] = value
	}
}

// TraceLevel overrides the trace level for the root tracer and every tracer
// of this module.
func TraceLevel(level string) Option {
	return func(o *options) {
		if level == "" {
			return
		}
		Override("tracelevel.root", level)(o)
		for _, key := range TracingKeys {
			Override("tracelevel."+key, level)(o)
		}
	}
}

// Load creates a configuration.
func Load(opts ...Option) (*Config, error) {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}
	k := koanf.New(".")
	if err := k.Load(confmap.Provider(defaultValues(), "."), nil); err != nil {
		return nil, errors.Wrap(err, "loading configuration defaults")
	}
	conf := &Config{}
	if o.path != "" {
		conf.KConf = koanfadapter.New(k, "", nil)
		if err := k.Load(file.Provider(o.path), koanfadapter.Parser()); err != nil {
			return nil, errors.Wrapf(err, "loading configuration %s", o.path)
		}
	} else if o.locate {
		conf.KConf = koanfadapter.New(k, AppTag, []string{"nt"})
		conf.InitFromDefaultFile()
	} else {
		conf.KConf = koanfadapter.New(k, "", nil)
	}
	if len(o.overrides) > 0 {
		if err := k.Load(confmap.Provider(o.overrides, "."), nil); err != nil {
			return nil, errors.Wrap(err, "applying configuration overrides")
		}
	}
	return conf, nil
}

// SetupTracing installs trace2go as the tracing selector, configured from c.
// Tracers which have been selected before will be replaced.
func (c *Config) SetupTracing() error {
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	if err := trace2go.ConfigureRoot(c, "tracelevel", trace2go.ReplaceTracers(true)); err != nil {
		return errors.Wrap(err, "configuring tracing")
	}
	tracing.SetTraceSelector(trace2go.Selector())
	return nil
}

// TeardownTracing detaches tracing, reverting to no-op tracers.
func TeardownTracing() {
	trace2go.Teardown()
}

// ProxyPrefix is the name prefix for terminal proxies.
func (c *Config) ProxyPrefix() string {
	return c.GetString("names.proxy")
}

// AuxPrefix is the name prefix for auxiliary non-terminals.
func (c *Config) AuxPrefix() string {
	return c.GetString("names.aux")
}

// DisplayStyle is the output style for grammars.
func (c *Config) DisplayStyle() string {
	switch s := c.GetString("display.style"); s {
	case StyleTree, StyleTable:
		return s
	}
	return StylePlain
}
