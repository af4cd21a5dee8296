package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/ringmix/config"
	"github.com/katalvlaran/ringmix/mixer"
	"github.com/katalvlaran/ringmix/ring"
	"github.com/katalvlaran/ringmix/sequence"
)

type mixOpts struct {
	input     string
	key       int64
	rounds    int
	showOrder bool
}

// mixResult is the structured output of the mix command.
type mixResult struct {
	Part        string   `json:"part" yaml:"part"`
	Key         int64    `json:"key" yaml:"key"`
	Rounds      int      `json:"rounds" yaml:"rounds"`
	Jump        int      `json:"jump" yaml:"jump"`
	Size        int      `json:"size" yaml:"size"`
	Coordinates [3]int64 `json:"coordinates" yaml:"coordinates"`
	Sum         int64    `json:"sum" yaml:"sum"`
	Order       []int64  `json:"order,omitempty" yaml:"order,omitempty"`
}

var exampleForMixCmd = `
mix part a using ./input/20a.txt:
  ringmix mix a

mix part b from an explicit file, as json:
  ringmix mix b --input ./my-input.txt -o json

override the preset:
  ringmix mix a --key 811589153 --rounds 10
`

// NewMixCmd returns the mix subcommand.
func NewMixCmd(a *app) *cobra.Command {
	opts := &mixOpts{}

	mixCmd := &cobra.Command{
		Use:     "mix PART",
		Short:   "Mix a sequence and print its grove-coordinate sum",
		Long:    "PART is a or b. Part a mixes once with key 1; part b multiplies every value by 811589153 and mixes ten times.",
		Example: exampleForMixCmd,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			part, err := mixer.ParsePart(args[0])
			if err != nil {
				return err
			}

			return runMix(cmd, a.cfg, part, opts)
		},
	}

	flags := mixCmd.Flags()
	flags.StringVarP(&opts.input, "input", "i", "", "input file (default: discovered in --input-dir)")
	flags.Int64Var(&opts.key, "key", 0, "decryption key, overrides the part preset")
	flags.IntVar(&opts.rounds, "rounds", 0, "mixing rounds, overrides the part preset")
	flags.BoolVar(&opts.showOrder, "show-order", false, "also print the mixed order in canonical rotation")
	flags.String("input-dir", "./input", "directory searched for the default input file")
	flags.Int("jump", 0, "ring stride, 0 picks sqrt(N/2)")
	flags.StringP("output", "o", config.OutputText, "output format, one of text, json, yaml")
	mustBind(a.v, config.KeyInputDir, flags.Lookup("input-dir"))
	mustBind(a.v, config.KeyJump, flags.Lookup("jump"))
	mustBind(a.v, config.KeyOutput, flags.Lookup("output"))

	return mixCmd
}

func runMix(cmd *cobra.Command, cfg *config.Config, part mixer.Part, opts *mixOpts) error {
	path := opts.input
	if path == "" {
		found, err := findInput(cfg.InputDir, part)
		if err != nil {
			return err
		}
		path = found
	}
	logrus.Debugf("reading input from %s", path)

	values, err := sequence.ReadFile(path)
	if err != nil {
		return err
	}

	mixOptions := append(part.Options(),
		mixer.WithContext(cmd.Context()),
		mixer.WithJump(cfg.Jump),
	)
	if cmd.Flags().Changed("key") {
		mixOptions = append(mixOptions, mixer.WithDecryptionKey(opts.key))
	}
	if cmd.Flags().Changed("rounds") {
		mixOptions = append(mixOptions, mixer.WithRounds(opts.rounds))
	}

	var started time.Time
	mixOptions = append(mixOptions, mixer.WithOnRound(func(round int) error {
		logrus.Debugf("round %d done in %v", round, time.Since(started))
		return nil
	}))

	m, err := mixer.New(values, mixOptions...)
	if err != nil {
		return errors.Wrapf(err, "failed to set up mixer for %s", path)
	}
	resolved := m.Options()
	logrus.Infof("mixing %d values from %s: part %s, key %d, %d rounds, jump %d",
		m.Len(), path, part, resolved.DecryptionKey, resolved.Rounds, m.Jump())

	started = time.Now()
	if err = m.Mix(); err != nil {
		return errors.Wrapf(err, "mixing stopped after %d rounds", m.RoundsDone())
	}
	logrus.Infof("mixed in %v", time.Since(started))

	coords, err := m.GroveCoordinates()
	if err != nil {
		return err
	}
	sum, err := m.GroveSum()
	if err != nil {
		return err
	}

	res := mixResult{
		Part:        part.String(),
		Key:         resolved.DecryptionKey,
		Rounds:      resolved.Rounds,
		Jump:        m.Jump(),
		Size:        m.Len(),
		Coordinates: coords,
		Sum:         sum,
	}
	if opts.showOrder {
		res.Order = ring.MinimalRotation(m.Values())
	}

	return writeResult(cmd.OutOrStdout(), cfg.Output, &res)
}

func writeResult(w io.Writer, output string, res *mixResult) error {
	switch output {
	case config.OutputText:
		if res.Order != nil {
			if _, err := fmt.Fprintf(w, "order = %v\n", res.Order); err != nil {
				return err
			}
		}
		_, err := fmt.Fprintf(w, "grove coordinate sum = %d\n", res.Sum)
		return err
	case config.OutputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	case config.OutputYAML:
		return encodeYAML(w, res)
	default:
		return errors.Errorf("unsupported output format %q", output)
	}
}
