package config

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"dario.cat/mergo"
)

// configBuilder collects partial configs. Each with* call appends a layer;
// build merges them so that non-zero values of later layers win. withJSON
// places its layer right above the defaults regardless of call order.
type configBuilder struct {
	configs []*StructuredConfig
	args    []string
	err     error

	hasDefaults bool
	flagSet     *flag.FlagSet
	flagArgs    []string
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{
		configs: make([]*StructuredConfig, 0, 4),
	}
}

func (b *configBuilder) build() (*StructuredConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occured during building config: %w", b.err)
	}

	config := new(StructuredConfig)
	for _, cfg := range b.configs {
		if err := mergo.Merge(config, cfg, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	return config, nil
}

func (b *configBuilder) withDefaults() *configBuilder {
	b.configs = append(b.configs, defaults())
	b.hasDefaults = true
	return b
}

func (b *configBuilder) withEnv() *configBuilder {
	envCfg := &StructuredConfig{}
	if err := parseEnv(envCfg); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, envCfg)
	return b
}

// withFlagSet overrides the flag set and arguments used by withFlags.
func (b *configBuilder) withFlagSet(fs *flag.FlagSet, args []string) *configBuilder {
	b.flagSet = fs
	b.flagArgs = args
	return b
}

func (b *configBuilder) withFlags() *configBuilder {
	fs, args := b.flagSet, b.flagArgs
	if fs == nil {
		fs = flag.NewFlagSet(os.Args[0], flag.ExitOnError)
		args = os.Args[1:]
	}

	flagsCfg, rest, err := parseFlags(fs, args)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, flagsCfg)
	b.args = rest
	return b
}

func (b *configBuilder) withJSON() *configBuilder {
	var jsonPath string
	for _, cfg := range b.configs {
		if cfg.JSONFilePath != "" {
			jsonPath = cfg.JSONFilePath
		}
	}

	if jsonPath == "" {
		return b
	}

	jsonCfg, err := parseJSON(jsonPath)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	pos := 0
	if b.hasDefaults {
		pos = 1
	}
	b.configs = append(b.configs[:pos], append([]*StructuredConfig{jsonCfg}, b.configs[pos:]...)...)

	return b
}
