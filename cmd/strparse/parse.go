package main

import (
	"github.com/spf13/cobra"
	"github.com/viant/strparse"
	"go.uber.org/zap"
)

var (
	tryMode bool
	absent  bool
)

var parseCmd = &cobra.Command{
	Use:   "parse <kind> [text...]",
	Short: "Convert text arguments into the given kind",
	Long: `Converts each text argument into the given kind and prints one JSON object per argument.

With --try the Try contract is used, otherwise the Parse contract.
With --absent a single absent (nil) input is converted instead of the arguments.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runParse,
}

func init() {
	parseCmd.Flags().BoolVar(&tryMode, "try", false, "use the Try contract")
	parseCmd.Flags().BoolVar(&absent, "absent", false, "convert an absent input")
}

func runParse(cmd *cobra.Command, args []string) error {
	kind, err := strparse.ParseKind(args[0])
	if err != nil {
		return err
	}
	var inputs []*string
	if absent {
		inputs = append(inputs, nil)
	}
	for _, arg := range args[1:] {
		inputs = append(inputs, strparse.Text(arg))
	}
	for _, text := range inputs {
		ret := convert(kind, text, tryMode)
		logger.Debug("converted",
			zap.Stringer("kind", kind),
			zap.Stringp("text", text),
			zap.Bool("try", tryMode),
			zap.Bool("ok", ret.Ok),
			zap.Error(ret.Error))
		if err := writeResult(cmd.OutOrStdout(), ret); err != nil {
			return err
		}
	}
	return nil
}
