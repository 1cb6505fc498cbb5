package main

import (
	"fmt"
	"os"

	"github.com/kelseyhightower/envconfig"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/tsawler/opine"
)

// Config holds the defaults of command line options, read from OPINE_*
// environment variables.
type Config struct {
	Language      string `envconfig:"LANGUAGE" default:"en"`
	Encoding      string `envconfig:"ENCODING" default:"utf-8"`
	LogLevel      string `envconfig:"LOG_LEVEL" default:"info"`
	Number        int    `envconfig:"NUMBER" default:"20"`
	Normalization string `envconfig:"NORMALIZATION"`
}

// LoadConfig reads the configuration from the environment.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("opine", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

// Validate checks if configuration is valid.
func (c *Config) Validate() error {
	if c.Number < 0 {
		return fmt.Errorf("number of lemmas must not be negative but is %d", c.Number)
	}
	return nil
}

// Normalization describes how text is rewritten before it is analyzed.
//
//	synonyms:
//	  laptop: notebook
//	abbreviations:
//	  z.B: zum Beispiel
//	emoticons: my_emoticons.csv
//	unify_emoticons: true
type Normalization struct {
	Synonyms       map[string]string `yaml:"synonyms"`
	Abbreviations  map[string]string `yaml:"abbreviations"`
	Emoticons      string            `yaml:"emoticons"`
	UnifyEmoticons *bool             `yaml:"unify_emoticons"`
}

// LoadNormalization reads a normalization file. An empty path yields the
// defaults: no synonyms, no abbreviations and the built-in emoticons.
func LoadNormalization(path string) (*Normalization, error) {
	result := &Normalization{}
	if path == "" {
		return result, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading normalization file: %w", err)
	}
	if err := yaml.Unmarshal(data, result); err != nil {
		return nil, fmt.Errorf("error parsing normalization file %s: %w", path, err)
	}
	return result, nil
}

// MinerOpts compiles the normalization to options for an opinion miner.
func (n *Normalization) MinerOpts(encoding string, logger *zap.Logger) ([]opine.MinerOpt, error) {
	synonyms, err := opine.CompileSynonyms(n.Synonyms)
	if err != nil {
		return nil, err
	}
	abbreviations, err := opine.CompileAbbreviations(n.Abbreviations)
	if err != nil {
		return nil, err
	}
	opts := []opine.MinerOpt{
		opine.WithLogger(logger),
		opine.WithSynonyms(synonyms),
		opine.WithAbbreviations(abbreviations),
	}

	if n.UnifyEmoticons != nil && !*n.UnifyEmoticons {
		return opts, nil
	}
	emoticons, err := n.emoticonTable(encoding)
	if err != nil {
		return nil, err
	}
	return append(opts, opine.WithEmoticons(emoticons)), nil
}

func (n *Normalization) emoticonTable(encoding string) (*opine.EmoticonTable, error) {
	if n.Emoticons == "" {
		return opine.DefaultEmoticons()
	}
	file, err := opine.OpenText(n.Emoticons, encoding)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return opine.ReadEmoticonCSV(file, n.Emoticons)
}
