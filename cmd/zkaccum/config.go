package main

import (
	"fmt"
	"os"

	"github.com/privacy-scaling-explorations/zk-kit-sub001/proofcodec"
	"gopkg.in/yaml.v3"
)

// Config specifies the file format of config files. Every field is optional,
// flags given on the command line take precedence.
type Config struct {
	LogLevel string `yaml:"log-level"`
	Encoding string `yaml:"encoding"`
	// CBORMaxArrayElements bounds every array in a CBOR proof read by verify.
	CBORMaxArrayElements int `yaml:"cbor-max-array-elements"`

	IMT struct {
		Depth int    `yaml:"depth"`
		Arity int    `yaml:"arity"`
		Zero  string `yaml:"zero"`
	} `yaml:"imt"`

	Tower struct {
		Height int `yaml:"height"`
		Width  int `yaml:"width"`
	} `yaml:"tower"`

	Checkpoint struct {
		Issuer     string `yaml:"issuer"`
		SigningKey string `yaml:"signing-key"` // path to a PEM encoded EC private key
	} `yaml:"checkpoint"`
}

func DefaultConfig() Config {
	var c Config
	c.LogLevel = "INFO"
	c.Encoding = string(proofcodec.EncodingJSON)
	c.CBORMaxArrayElements = 1 << 16
	c.IMT.Depth = 16
	c.IMT.Arity = 2
	c.IMT.Zero = "0"
	c.Tower.Height = 4
	c.Tower.Width = 4
	return c
}

// ReadConfig returns the defaults overlaid with filename, if it is not empty.
func ReadConfig(filename string) (Config, error) {
	c := DefaultConfig()
	if filename == "" {
		return c, nil
	}
	raw, err := os.ReadFile(filename)
	if err != nil {
		return Config{}, err
	}
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return Config{}, fmt.Errorf("failed to parse config %s: %v", filename, err)
	}
	return c, nil
}

func (c Config) Validate() error {
	switch proofcodec.Encoding(c.Encoding) {
	case proofcodec.EncodingJSON, proofcodec.EncodingCBOR:
	default:
		return fmt.Errorf("field invalid: encoding must be %s or %s, not %q",
			proofcodec.EncodingJSON, proofcodec.EncodingCBOR, c.Encoding)
	}
	if c.CBORMaxArrayElements < 16 {
		return fmt.Errorf("field invalid: cbor-max-array-elements must be at least 16")
	}
	if c.LogLevel == "" {
		return fmt.Errorf("field not provided: log-level")
	}
	return nil
}
