package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/viant/strparse"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// manifest represents batch conversion document
type manifest struct {
	Cases []*batchCase `yaml:"cases"`
}

// batchCase represents a single batch conversion, a case without text converts an absent input
type batchCase struct {
	Kind string  `yaml:"kind"`
	Text *string `yaml:"text"`
	Try  bool    `yaml:"try"`
}

var batchCmd = &cobra.Command{
	Use:   "batch <manifest.yaml>",
	Short: "Convert cases listed in a YAML manifest",
	Long: `Converts every case of a YAML manifest and prints one JSON object per case.

Example manifest:

  cases:
    - kind: byte
      text: "300"
    - kind: int
      text: abc
      try: true
    - kind: decimal`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func runBatch(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read manifest: %w", err)
	}
	aManifest, err := loadManifest(data)
	if err != nil {
		return err
	}
	failed := 0
	for i, aCase := range aManifest.Cases {
		kind, err := strparse.ParseKind(aCase.Kind)
		if err != nil {
			return fmt.Errorf("case %d: %w", i, err)
		}
		ret := convert(kind, aCase.Text, aCase.Try)
		if !ret.Ok {
			failed++
		}
		if err := writeResult(cmd.OutOrStdout(), ret); err != nil {
			return err
		}
	}
	logger.Info("batch completed",
		zap.String("manifest", args[0]),
		zap.Int("cases", len(aManifest.Cases)),
		zap.Int("failed", failed))
	return nil
}

func loadManifest(data []byte) (*manifest, error) {
	ret := &manifest{}
	if err := yaml.Unmarshal(data, ret); err != nil {
		return nil, fmt.Errorf("failed to decode manifest: %w", err)
	}
	for i, aCase := range ret.Cases {
		if aCase == nil || aCase.Kind == "" {
			return nil, fmt.Errorf("case %d: kind was empty", i)
		}
	}
	return ret, nil
}
