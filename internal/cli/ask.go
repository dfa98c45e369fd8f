package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/clauselens/clauselens/internal/model"
	"github.com/clauselens/clauselens/internal/pipeline"
	"github.com/spf13/cobra"
)

var askDoc string

// askCmd represents the ask command
var askCmd = &cobra.Command{
	Use:   "ask <question>",
	Short: "Ask a question about a document",
	Long: `Ask answers a question against one document using topic matching
over the document text. Answers are always verbatim sentences from
the document; nothing is generated.

Example:
  clauselens ask "what happens if I terminate early?" --doc contract.txt
  clauselens ask "who are the parties?" --doc https://example.com/terms`,
	Args: cobra.ExactArgs(1),
	RunE: runAsk,
}

func init() {
	rootCmd.AddCommand(askCmd)

	askCmd.Flags().StringVar(&askDoc, "doc", "", "document to ask about (file path or URL)")
	_ = askCmd.MarkFlagRequired("doc")
}

func runAsk(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	cfg := model.DefaultConfig()
	cfg.Output.Verbose = verbose

	p := pipeline.NewPipeline(cfg)

	doc, err := p.Load(ctx, askDoc)
	if err != nil {
		return fmt.Errorf("load document: %w", err)
	}

	answer := p.Ask(args[0], doc.Text)
	if answer.Topic != "" && verbose {
		fmt.Printf("[%s]\n", answer.Topic)
	}
	fmt.Println(answer.Answer)

	return nil
}
