package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/clauselens/clauselens/internal/model"
	"github.com/clauselens/clauselens/internal/pipeline"
	"github.com/spf13/cobra"
)

var summarySentences int

// summarizeCmd represents the summarize command
var summarizeCmd = &cobra.Command{
	Use:   "summarize <file|url>",
	Short: "Produce an extractive summary of a document",
	Long: `Summarize scores every sentence by legal keyword density and
position, then returns the top sentences in document order. The
summary is always verbatim text from the document itself.

Example:
  clauselens summarize contract.txt
  clauselens summarize contract.txt --sentences 3`,
	Args: cobra.ExactArgs(1),
	RunE: runSummarize,
}

func init() {
	rootCmd.AddCommand(summarizeCmd)

	summarizeCmd.Flags().IntVar(&summarySentences, "sentences", 5, "maximum sentences in the summary")
}

func runSummarize(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	cfg := model.DefaultConfig()
	cfg.Analysis.SummarySentences = summarySentences
	cfg.Output.Verbose = verbose

	p := pipeline.NewPipeline(cfg)

	doc, err := p.Load(ctx, args[0])
	if err != nil {
		return fmt.Errorf("load document: %w", err)
	}

	summary, err := p.Summarize(doc.Text)
	if err != nil {
		return fmt.Errorf("summarize: %w", err)
	}

	fmt.Println(summary.Text)
	if len(summary.KeyPoints) > 0 {
		fmt.Println("\nKey points:")
		for _, kp := range summary.KeyPoints {
			fmt.Printf("  - %s\n", kp)
		}
	}
	fmt.Printf("\nOriginal: %d words. Summary is %.0f%% of the original.\n", summary.WordCount, summary.CompressionRatio*100)

	return nil
}
