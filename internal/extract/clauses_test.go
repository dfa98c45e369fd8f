package extract

import (
	"strings"
	"testing"

	"github.com/clauselens/clauselens/internal/model"
)

func defaultExtractor() *ClauseExtractor {
	return NewClauseExtractor(model.AnalysisConfig{})
}

func TestClauseExtractor_SingleBlock(t *testing.T) {
	e := defaultExtractor()

	text := "The vendor will deliver the goods to the warehouse. The goods remain the property of the vendor until paid."
	blocks := e.Extract(text)

	if len(blocks) != 1 {
		t.Fatalf("Expected 1 block for marker-free text, got %d", len(blocks))
	}
	want := "The vendor will deliver the goods to the warehouse. The goods remain the property of the vendor until paid"
	if blocks[0].Text != want {
		t.Errorf("Expected sentences joined with '. ', got %q", blocks[0].Text)
	}
}

func TestClauseExtractor_MarkerFlushesBuffer(t *testing.T) {
	e := defaultExtractor()

	text := "The fees are payable within thirty days of invoice. " +
		"Whereas the contractor agrees to deliver the services on schedule. " +
		"The client will provide access to required systems."
	blocks := e.Extract(text)

	if len(blocks) != 2 {
		t.Fatalf("Expected marker sentence to open a new block, got %d blocks", len(blocks))
	}
	if blocks[0].Text != "The fees are payable within thirty days of invoice" {
		t.Errorf("Unexpected first block: %q", blocks[0].Text)
	}
	if !strings.HasPrefix(blocks[1].Text, "Whereas") {
		t.Errorf("Expected second block to start at the marker, got %q", blocks[1].Text)
	}
}

func TestClauseExtractor_MinClauseLengthFilter(t *testing.T) {
	e := defaultExtractor()

	// One sentence above the sentence threshold but below the clause
	// threshold, isolated by a following marker sentence
	text := "Rental costs ten dollars here. Whereas the landlord retains the right to inspect the premises on notice."
	blocks := e.Extract(text)

	for _, b := range blocks {
		if len(b.Text) < 30 {
			t.Errorf("Block below minimum clause length survived: %q", b.Text)
		}
	}
	if len(blocks) != 1 {
		t.Errorf("Expected only the marker block, got %d", len(blocks))
	}
}

func TestClauseExtractor_LengthCapFlushes(t *testing.T) {
	e := defaultExtractor()

	sentence := "The supplier will deliver replacement components to the customer site"
	parts := make([]string, 10)
	for i := range parts {
		parts[i] = sentence
	}
	text := strings.Join(parts, ". ") + "."

	blocks := e.Extract(text)

	if len(blocks) < 2 {
		t.Fatalf("Expected the length cap to split marker-free text, got %d blocks", len(blocks))
	}
	for i, b := range blocks {
		if b.Index != i {
			t.Errorf("Expected block %d to carry index %d, got %d", i, i, b.Index)
		}
	}
}

func TestClauseExtractor_EmptyInput(t *testing.T) {
	e := defaultExtractor()

	if blocks := e.Extract(""); len(blocks) != 0 {
		t.Errorf("Expected no blocks for empty input, got %d", len(blocks))
	}
}

func TestClauseExtractor_OrderPreserved(t *testing.T) {
	e := defaultExtractor()

	text := "Section one covers the payment of all applicable fees. " +
		"Section two covers the termination of this arrangement. " +
		"Section three covers the resolution of any disputes."
	blocks := e.Extract(text)

	if len(blocks) != 3 {
		t.Fatalf("Expected 3 blocks, got %d", len(blocks))
	}
	for i, want := range []string{"Section one", "Section two", "Section three"} {
		if !strings.HasPrefix(blocks[i].Text, want) {
			t.Errorf("Block %d out of order: %q", i, blocks[i].Text)
		}
	}
}

func TestClauseID(t *testing.T) {
	if got := ClauseID(0); got != "clause_1" {
		t.Errorf("Expected clause_1 for index 0, got %q", got)
	}
	if got := ClauseID(11); got != "clause_12" {
		t.Errorf("Expected clause_12 for index 11, got %q", got)
	}
}
