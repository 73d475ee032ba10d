package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/job-matcher/internal/encoder"
	"github.com/jonathan/job-matcher/internal/vocab"
)

var initModelCmd = &cobra.Command{
	Use:   "init-model",
	Short: "Create a freshly initialized model snapshot",
	Long:  "Writes a model snapshot JSON with deterministically initialized weights and the default seed vocabulary. The same seed always produces the same snapshot.",
	RunE:  runInitModel,
}

var (
	initModelOutput    string
	initModelVocabSize int
	initModelHidden    int
	initModelHeads     int
	initModelLayers    int
	initModelMaxSeqLen int
	initModelFFDim     int
	initModelSeed      int64
)

func init() {
	defaults := encoder.DefaultConfig()

	initModelCmd.Flags().StringVarP(&initModelOutput, "out", "o", "", "Path to output model snapshot JSON (required)")
	initModelCmd.Flags().IntVar(&initModelVocabSize, "vocab-size", defaults.VocabSize, "Vocabulary capacity including reserved tokens")
	initModelCmd.Flags().IntVar(&initModelHidden, "hidden-dim", defaults.HiddenDim, "Hidden dimension")
	initModelCmd.Flags().IntVar(&initModelHeads, "num-heads", defaults.NumHeads, "Attention heads (must divide hidden-dim)")
	initModelCmd.Flags().IntVar(&initModelLayers, "num-layers", defaults.NumLayers, "Encoder layers")
	initModelCmd.Flags().IntVar(&initModelMaxSeqLen, "max-seq-len", defaults.MaxSeqLen, "Maximum sequence length")
	initModelCmd.Flags().IntVar(&initModelFFDim, "ff-dim", defaults.FFDim, "Feed-forward inner dimension")
	initModelCmd.Flags().Int64Var(&initModelSeed, "seed", 42, "Weight initialization seed")

	if err := initModelCmd.MarkFlagRequired("out"); err != nil {
		panic(fmt.Sprintf("failed to mark out flag as required: %v", err))
	}

	rootCmd.AddCommand(initModelCmd)
}

func runInitModel(_ *cobra.Command, _ []string) error {
	cfg := encoder.Config{
		VocabSize: initModelVocabSize,
		HiddenDim: initModelHidden,
		NumHeads:  initModelHeads,
		NumLayers: initModelLayers,
		MaxSeqLen: initModelMaxSeqLen,
		FFDim:     initModelFFDim,
		Dropout:   encoder.DefaultConfig().Dropout,
	}

	params, err := encoder.NewInitializedParameters(cfg, vocab.SeedTerms(), initModelSeed)
	if err != nil {
		return fmt.Errorf("failed to initialize model: %w", err)
	}

	blob, err := params.Marshal()
	if err != nil {
		return fmt.Errorf("failed to serialize model: %w", err)
	}

	if err := writeRawOutput(initModelOutput, blob); err != nil {
		return err
	}
	validateOutput("model_parameters.schema.json", initModelOutput)

	_, _ = fmt.Fprintf(os.Stdout, "Initialized %d-layer model (hidden %d, vocab %d) at %s\n",
		cfg.NumLayers, cfg.HiddenDim, cfg.VocabSize, initModelOutput)
	return nil
}
