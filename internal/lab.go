package internal

import "fmt"

// LabKind selects one of the lab panel's two content surfaces
type LabKind string

const (
	LabVisual LabKind = "visual"
	LabCode   LabKind = "code"
)

// LabState is the lab panel's state
type LabState int

const (
	LabClosed LabState = iota
	LabVisualOpen
	LabCodeOpen
)

func (s LabState) String() string {
	switch s {
	case LabClosed:
		return "closed"
	case LabVisualOpen:
		return "visual"
	case LabCodeOpen:
		return "code"
	default:
		return fmt.Sprintf("LabState(%d)", int(s))
	}
}

// LabPanel tracks which side panel is visible. Open and Close are the only
// transitions.
type LabPanel struct {
	state       LabState
	visualShown bool
	codeShown   bool
	visual      string
}

// NewLabPanel returns a closed panel
func NewLabPanel() *LabPanel {
	return &LabPanel{state: LabClosed}
}

// Open shows the panel with exactly the surface for kind, hiding the other
// one whatever the previous state was.
func (p *LabPanel) Open(kind LabKind) {
	switch kind {
	case LabVisual:
		p.state = LabVisualOpen
		p.visualShown, p.codeShown = true, false
	case LabCode:
		p.state = LabCodeOpen
		p.visualShown, p.codeShown = false, true
	default:
		LogWarn("Ignoring request to open unknown lab kind %q", kind)
		return
	}
	LogDebug("Lab panel open: %s", p.state)
}

// Close hides the panel. The surface flags are left as they were.
func (p *LabPanel) Close() {
	p.state = LabClosed
	LogDebug("Lab panel closed")
}

// State returns the current state
func (p *LabPanel) State() LabState {
	return p.state
}

// Visible reports whether the panel container is shown
func (p *LabPanel) Visible() bool {
	return p.state != LabClosed
}

// VisualShown reports whether the visual surface is the selected one
func (p *LabPanel) VisualShown() bool {
	return p.visualShown
}

// CodeShown reports whether the code surface is the selected one
func (p *LabPanel) CodeShown() bool {
	return p.codeShown
}

// SetVisual replaces the visual surface's content
func (p *LabPanel) SetVisual(ref string) {
	p.visual = ref
}

// Visual returns the visual surface's content
func (p *LabPanel) Visual() string {
	return p.visual
}

// ImageRef builds the embedded image reference shown on the visual surface
func ImageRef(url string) string {
	return fmt.Sprintf("![Generated visual](%s)", url)
}
