package service

import (
	"fmt"
	"strings"

	"github.com/aircloud/supportbot/internal/domain"
)

const (
	inventoryHeader = "CURRENT PRODUCT INVENTORY:"
	questionLabel   = "USER QUESTION: "
)

// BuildPrompt assembles the single text blob sent to the completion
// provider: the configured context, then the rendered inventory, then the
// labelled user question. A nil product slice means the catalog could not
// be read and the inventory section is omitted entirely; an empty catalog
// still renders the header.
func BuildPrompt(botContext string, products []*domain.Product, message string) string {
	var b strings.Builder

	b.WriteString(botContext)
	b.WriteString("\n\n")

	if products != nil {
		b.WriteString(inventoryHeader)
		b.WriteString("\n")
		for _, p := range products {
			fmt.Fprintf(&b, "- %s (%s): %s\n", p.Name, p.Price, p.Description)
		}
		b.WriteString("\n\n")
	}

	b.WriteString(questionLabel)
	b.WriteString(message)

	return b.String()
}
