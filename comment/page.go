package comment

// ContentPage is the page a comment belongs to. The pipeline only passes it
// through; ID is used for log context.
type ContentPage interface {
	ID() string
}
