package features

import (
	"strings"

	"github.com/KirkDiggler/rpg-importer/internal/entities/ddb"
	"github.com/KirkDiggler/rpg-importer/internal/entities/foundry"
)

// composeDescription renders the trait's snippet and description into the three
// part description payload. A snippet that only restates the description text is
// left out of the full value but is still used as the chat text.
func (e *Engine) composeDescription(doc *ddb.Document, trait Trait) foundry.Description {
	var snippet, description string
	if trait.Snippet != "" {
		snippet = e.renderer.Render(doc, trait.Snippet, trait)
	}
	if trait.Description != "" {
		description = e.renderer.Render(doc, trait.Description, trait)
	}

	chat := snippet
	if e.fixups.StripHTML(description) == snippet {
		snippet = ""
	}

	full := snippet
	if description != "" {
		full = description
		if snippet != "" {
			full += "<h3>Summary</h3>" + snippet
		}
	}

	value := full
	if e.preferSnippet && strings.TrimSpace(snippet) != "" {
		value = snippet
	}

	return foundry.Description{
		Value:        value,
		Chat:         chat,
		Unidentified: "",
	}
}
