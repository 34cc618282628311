package main

import (
	"fmt"
	"os"

	"github.com/datatrails/go-datatrails-common/logger"
	"github.com/spf13/cobra"
)

var cmdMain = &cobra.Command{
	Use:               "zkaccum",
	Short:             "Build incremental accumulators over BN254 leaves and produce membership proofs",
	PersistentPreRunE: loadConfig,
	SilenceUsage:      true,
}

var flagMain struct {
	Config   string
	LogLevel string
	Encoding string
}

var (
	config Config
	log    logger.Logger
)

func init() {
	cmdMain.PersistentFlags().StringVarP(&flagMain.Config, "config", "c", "", "YAML file with default parameters")
	cmdMain.PersistentFlags().StringVar(&flagMain.LogLevel, "log-level", "", "Log level (default INFO)")
	cmdMain.PersistentFlags().StringVarP(&flagMain.Encoding, "encoding", "e", "", "Proof encoding, json or cbor (default json)")
}

func main() {
	err := cmdMain.Execute()
	if log != nil {
		logger.OnExit()
	}
	if err != nil {
		os.Exit(1)
	}
}

func loadConfig(cmd *cobra.Command, args []string) error {
	var err error
	config, err = ReadConfig(flagMain.Config)
	if err != nil {
		return err
	}
	if flagMain.LogLevel != "" {
		config.LogLevel = flagMain.LogLevel
	}
	if flagMain.Encoding != "" {
		config.Encoding = flagMain.Encoding
	}
	if err := config.Validate(); err != nil {
		return err
	}

	logger.New(config.LogLevel)
	log = logger.Sugar.WithServiceName("zkaccum")

	applyDefaults(cmd)
	return nil
}

// applyDefaults sets every flag the user did not pass from the config file.
func applyDefaults(cmd *cobra.Command) {
	defaults := map[string]string{
		"depth":  fmt.Sprint(config.IMT.Depth),
		"arity":  fmt.Sprint(config.IMT.Arity),
		"zero":   config.IMT.Zero,
		"height": fmt.Sprint(config.Tower.Height),
		"width":  fmt.Sprint(config.Tower.Width),
		"issuer": config.Checkpoint.Issuer,
		"key":    config.Checkpoint.SigningKey,
	}
	for name, value := range defaults {
		f := cmd.Flags().Lookup(name)
		if f == nil || f.Changed || value == "" {
			continue
		}
		_ = f.Value.Set(value)
	}
}
