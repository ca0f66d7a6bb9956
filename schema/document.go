package schema

// Document is a single stored record in the vector index.
type Document struct {
	ID       string
	Content  string
	Metadata map[string]any
}

// SearchResult pairs a document with its similarity score.
type SearchResult struct {
	Document Document
	Score    float64
}

// SearchOptions controls a single vector search.
type SearchOptions struct {
	TopK int
	// Filter is a boolean expression in the index's native filter language.
	// Empty means unfiltered.
	Filter string
	// Namespace selects a partition of the collection. Empty searches the
	// whole collection.
	Namespace string
	// Threshold drops results scoring below it. Zero disables the cut.
	Threshold float64
}

// Chat roles as sent to the completion endpoint.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// ChatMessage is one turn of a chat-completion conversation.
type ChatMessage struct {
	Role    string
	Content string
}
