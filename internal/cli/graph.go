package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/clauselens/clauselens/internal/model"
	"github.com/clauselens/clauselens/internal/pipeline"
	"github.com/spf13/cobra"
)

var graphJSON string

// graphCmd represents the graph command
var graphCmd = &cobra.Command{
	Use:   "graph <file|url>",
	Short: "Build the clause relationship graph for a document",
	Long: `Graph extracts clause blocks, classifies each one by category, and
infers pairwise relationships (sequential, conditional, reference,
conflict, same-category, dependency).

Example:
  clauselens graph contract.txt
  clauselens graph contract.txt --json graph.json`,
	Args: cobra.ExactArgs(1),
	RunE: runGraph,
}

func init() {
	rootCmd.AddCommand(graphCmd)

	graphCmd.Flags().StringVar(&graphJSON, "json", "", "write graph JSON to this path")
}

func runGraph(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	cfg := model.DefaultConfig()
	cfg.Output.Verbose = verbose

	p := pipeline.NewPipeline(cfg)

	doc, err := p.Load(ctx, args[0])
	if err != nil {
		return fmt.Errorf("load document: %w", err)
	}

	graph := p.GraphFromText(doc.Text)

	if graphJSON != "" {
		data, err := json.MarshalIndent(graph, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal graph: %w", err)
		}
		if err := os.WriteFile(graphJSON, data, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", graphJSON, err)
		}
		if verbose {
			fmt.Fprintf(os.Stderr, "Wrote graph: %s\n", graphJSON)
		}
	}

	fmt.Printf("Clauses: %d\n", graph.Stats.TotalClauses)
	fmt.Printf("Relationships: %d\n", len(graph.Relationships))
	for _, rel := range graph.Relationships {
		fmt.Printf("  %s -> %s (%s): %s\n", rel.From, rel.To, rel.Type, rel.Description)
	}

	return nil
}
