package panels

import "strings"

// DetailsTitle is set into the top border of the details pane.
const DetailsTitle = "Details"

// DefaultDetails are the informational lines shown in the details pane.
var DefaultDetails = []string{
	"Item 1",
	"Item 2",
	"Item 3",
}

// RenderDetails joins lines for display inside the details pane.
func RenderDetails(lines []string) string {
	return strings.Join(lines, "\n")
}
