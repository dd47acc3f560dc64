package z3

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Param is one configuration key/value pair handed to Z3_set_param_value.
type Param struct {
	Key   string
	Value string
}

// Config is a snapshot of the parameters a Context is created with. It is a
// plain Go value: the native Z3_config only exists for the duration of
// NewContext.
type Config struct {
	params []Param
}

// NewConfig returns a configuration with model construction enabled so that
// Solver.Model and Model.Eval are meaningful without further setup.
func NewConfig() *Config {
	cfg := &Config{}
	cfg.Set("model", "true")
	return cfg
}

// Set assigns a parameter, replacing an earlier value for the same key.
func (cfg *Config) Set(key, value string) {
	for i := range cfg.params {
		if cfg.params[i].Key == key {
			cfg.params[i].Value = value
			return
		}
	}
	cfg.params = append(cfg.params, Param{Key: key, Value: value})
}

// Get returns the value recorded for key.
func (cfg *Config) Get(key string) (string, bool) {
	for _, p := range cfg.params {
		if p.Key == key {
			return p.Value, true
		}
	}
	return "", false
}

// Params returns the parameters in the order they were first set.
func (cfg *Config) Params() []Param {
	out := make([]Param, len(cfg.params))
	copy(out, cfg.params)
	return out
}

func (cfg *Config) clone() *Config {
	if cfg == nil {
		return NewConfig()
	}
	return &Config{params: cfg.Params()}
}

type configFile struct {
	Params yaml.Node `yaml:"params"`
}

// ParseConfig decodes a YAML document of the form
//
//	params:
//	  model: true
//	  timeout: 5000
//
// on top of the defaults of NewConfig. Keys keep their document order.
func ParseConfig(data []byte) (*Config, error) {
	var f configFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse z3 config: %w", err)
	}
	cfg := NewConfig()
	node := f.Params
	if node.Kind == 0 {
		return cfg, nil
	}
	if node.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("z3 config: params must be a mapping (line %d)", node.Line)
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		k, v := node.Content[i], node.Content[i+1]
		if v.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("z3 config: param %q must be a scalar (line %d)", k.Value, v.Line)
		}
		cfg.Set(k.Value, v.Value)
	}
	return cfg, nil
}

// LoadConfig reads a YAML configuration file, see ParseConfig.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read z3 config: %w", err)
	}
	return ParseConfig(data)
}
