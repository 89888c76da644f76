package figma

// RawComponent is a single exported component node (one icon variant).
// Name is the raw property string, e.g. "Style=Filled, Size=20px, Mode=Light".
type RawComponent struct {
	ID             string
	Key            string
	Name           string
	Description    string
	ComponentSetID string
}

// LedgerName implements ledger.Subject.
func (c RawComponent) LedgerName() string { return c.Name }

// LedgerID implements ledger.Subject.
func (c RawComponent) LedgerID() string { return c.ID }

// RawComponentSet groups all variants of one icon family.
type RawComponentSet struct {
	ID          string
	Key         string
	Name        string
	Description string
}

// FileExport is the subset of a file response we care about.
// Components keep the order in which they appear in the response.
type FileExport struct {
	Name          string
	LastModified  string
	Version       string
	Components    []RawComponent
	ComponentSets map[string]RawComponentSet
}

// imageResponse is the body of the images endpoint.
// A null image url means the node could not be rendered.
type imageResponse struct {
	Err    *string            `json:"err"`
	Images map[string]*string `json:"images"`
}
