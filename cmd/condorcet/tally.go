package main

import (
	"fmt"
	"io/ioutil"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/spf13/cast"
	"github.com/spf13/cobra"
	flag "github.com/spf13/pflag"
	yaml "gopkg.in/yaml.v2"

	"github.com/confio/tgrade-condorcet/x/condorcet/types"
)

const flagQuorum = "quorum"

// BallotFile is the yaml input of the tally command. Power values may be
// numbers or strings.
type BallotFile struct {
	// Choices number of choices without none of the above
	Choices    uint32        `yaml:"choices"`
	TotalPower interface{}   `yaml:"total_power"`
	Ballots    []BallotEntry `yaml:"ballots"`
}

type BallotEntry struct {
	Voter   string      `yaml:"voter,omitempty"`
	Ranking []uint32    `yaml:"ranking"`
	Power   interface{} `yaml:"power"`
}

// TallyResult is printed by the tally command
type TallyResult struct {
	Candidates uint32     `yaml:"candidates"`
	PowerCast  string     `yaml:"power_cast"`
	TotalPower string     `yaml:"total_power"`
	QuorumMet  bool       `yaml:"quorum_met"`
	Winner     string     `yaml:"winner"`
	Pairwise   [][]string `yaml:"pairwise"`
}

func TallyCmd(logger zerolog.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tally <ballots.yaml>",
		Short: "Tally ranked ballots from a yaml file",
		Long: `Tally ranked ballots from a yaml file. None of the above is added as the last
candidate. Example file:

choices: 2
total_power: 100
ballots:
  - ranking: [0, 1, 2]
    power: 10
  - ranking: [2, 1, 0]
    power: "5"
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			bz, err := ioutil.ReadFile(args[0])
			if err != nil {
				return errors.Wrap(err, "read ballots")
			}
			var file BallotFile
			if err := yaml.Unmarshal(bz, &file); err != nil {
				return errors.Wrap(err, "parse ballots")
			}
			quorum, err := readQuorum(cmd.Flags())
			if err != nil {
				return err
			}
			res, err := TallyBallots(logger, file, quorum)
			if err != nil {
				return err
			}
			out, err := yaml.Marshal(res)
			if err != nil {
				return errors.Wrap(err, "encode result")
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), string(out))
			return err
		},
	}
	cmd.Flags().String(flagQuorum, types.DefaultQuorum.String(), "Quorum share of the total power")
	return cmd
}

func readQuorum(flags *flag.FlagSet) (sdk.Dec, error) {
	s, err := flags.GetString(flagQuorum)
	if err != nil {
		return sdk.Dec{}, err
	}
	quorum, err := sdk.NewDecFromStr(s)
	if err != nil {
		return sdk.Dec{}, errors.Wrap(err, "quorum")
	}
	return quorum, nil
}

// TallyBallots adds all ballots to a new tally
func TallyBallots(logger zerolog.Logger, file BallotFile, quorum sdk.Dec) (*TallyResult, error) {
	if file.Choices == 0 {
		return nil, types.ErrZeroChoices
	}
	candidates := file.Choices + 1
	totalPower, err := parsePower(file.TotalPower)
	if err != nil {
		return nil, errors.Wrap(err, "total power")
	}
	tally := types.NewTally(candidates, totalPower, 0, types.Expiration{})
	for i, b := range file.Ballots {
		vote, err := types.NewVote(b.Ranking, candidates)
		if err != nil {
			return nil, errors.Wrapf(err, "ballot %d", i)
		}
		power, err := parsePower(b.Power)
		if err != nil {
			return nil, errors.Wrapf(err, "ballot %d power", i)
		}
		if power.IsZero() {
			logger.Debug().Int("ballot", i).Str("voter", b.Voter).Msg("skipping ballot without power")
			continue
		}
		if power.GT(tally.PowerOutstanding()) {
			return nil, errors.Wrapf(types.ErrOverflow, "ballot %d exceeds outstanding power", i)
		}
		tally.AddVote(vote, power)
		logger.Debug().Int("ballot", i).Str("voter", b.Voter).Str("power", power.String()).Str("winner", tally.Winner().String()).Msg("ballot added")
	}
	if err := tally.ValidateBasic(); err != nil {
		return nil, err
	}
	logger.Info().Int("ballots", len(file.Ballots)).Str("winner", tally.Winner().String()).Msg("tally complete")

	res := TallyResult{
		Candidates: candidates,
		PowerCast:  tally.PowerCast().String(),
		TotalPower: tally.TotalPower().String(),
		QuorumMet:  tally.QuorumMet(quorum),
		Winner:     tally.Winner().String(),
		Pairwise:   make([][]string, candidates),
	}
	for i := uint32(0); i < candidates; i++ {
		res.Pairwise[i] = make([]string, candidates)
		for j := uint32(0); j < candidates; j++ {
			res.Pairwise[i][j] = tally.Pairwise(i, j).String()
		}
	}
	return &res, nil
}

func parsePower(v interface{}) (sdk.Uint, error) {
	if v == nil {
		return sdk.ZeroUint(), nil
	}
	s, err := cast.ToStringE(v)
	if err != nil {
		return sdk.Uint{}, err
	}
	return sdk.ParseUint(s)
}
