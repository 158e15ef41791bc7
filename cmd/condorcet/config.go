package main

import (
	"encoding/json"
	"fmt"
	"io/ioutil"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/confio/tgrade-condorcet/x/condorcet/types"
)

func ValidateConfigCmd(logger zerolog.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "validate-config <config.json>",
		Short: "Validate a JSON encoded module config and print it as yaml",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			bz, err := ioutil.ReadFile(args[0])
			if err != nil {
				return errors.Wrap(err, "read config")
			}
			cfg, err := ValidateConfig(bz)
			if err != nil {
				return err
			}
			logger.Info().Str("voting_period", cfg.VotingPeriod.String()).Msg("config valid")
			_, err = fmt.Fprint(cmd.OutOrStdout(), cfg.String())
			return err
		},
	}
}

// ValidateConfig decodes and checks the config
func ValidateConfig(bz []byte) (types.Config, error) {
	var unchecked types.UncheckedConfig
	if err := json.Unmarshal(bz, &unchecked); err != nil {
		return types.Config{}, errors.Wrap(err, "parse config")
	}
	cfg, err := unchecked.IntoChecked()
	if err != nil {
		return types.Config{}, errors.Wrap(err, "invalid config")
	}
	return cfg, nil
}
