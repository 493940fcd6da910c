package internal

import "testing"

func TestLabPanel_Transitions(t *testing.T) {
	tests := []struct {
		name       string
		ops        func(p *LabPanel)
		wantState  LabState
		wantVisual bool
		wantCode   bool
	}{
		{
			name:      "initial",
			ops:       func(p *LabPanel) {},
			wantState: LabClosed,
		},
		{
			name:       "open visual",
			ops:        func(p *LabPanel) { p.Open(LabVisual) },
			wantState:  LabVisualOpen,
			wantVisual: true,
		},
		{
			name:      "visual then code",
			ops:       func(p *LabPanel) { p.Open(LabVisual); p.Open(LabCode) },
			wantState: LabCodeOpen,
			wantCode:  true,
		},
		{
			name:       "code then visual",
			ops:        func(p *LabPanel) { p.Open(LabCode); p.Open(LabVisual) },
			wantState:  LabVisualOpen,
			wantVisual: true,
		},
		{
			name:      "open code twice",
			ops:       func(p *LabPanel) { p.Open(LabCode); p.Open(LabCode) },
			wantState: LabCodeOpen,
			wantCode:  true,
		},
		{
			name:      "close after code keeps surfaces",
			ops:       func(p *LabPanel) { p.Open(LabCode); p.Close() },
			wantState: LabClosed,
			wantCode:  true,
		},
		{
			name:       "close then reopen other kind",
			ops:        func(p *LabPanel) { p.Open(LabCode); p.Close(); p.Open(LabVisual) },
			wantState:  LabVisualOpen,
			wantVisual: true,
		},
		{
			name:      "unknown kind ignored",
			ops:       func(p *LabPanel) { p.Open(LabCode); p.Open(LabKind("audio")) },
			wantState: LabCodeOpen,
			wantCode:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewLabPanel()
			tt.ops(p)

			if p.State() != tt.wantState {
				t.Errorf("State() = %v, want %v", p.State(), tt.wantState)
			}
			if p.Visible() != (tt.wantState != LabClosed) {
				t.Errorf("Visible() = %v in state %v", p.Visible(), p.State())
			}
			if p.VisualShown() != tt.wantVisual {
				t.Errorf("VisualShown() = %v, want %v", p.VisualShown(), tt.wantVisual)
			}
			if p.CodeShown() != tt.wantCode {
				t.Errorf("CodeShown() = %v, want %v", p.CodeShown(), tt.wantCode)
			}
			if p.VisualShown() && p.CodeShown() {
				t.Error("both surfaces shown")
			}
		})
	}
}

func TestLabState_String(t *testing.T) {
	tests := map[LabState]string{
		LabClosed:     "closed",
		LabVisualOpen: "visual",
		LabCodeOpen:   "code",
		LabState(9):   "LabState(9)",
	}
	for state, want := range tests {
		if got := state.String(); got != want {
			t.Errorf("String() = %q, want %q", got, want)
		}
	}
}

func TestLabPanel_Visual(t *testing.T) {
	p := NewLabPanel()
	p.SetVisual(ImageRef("http://x/y.png"))

	if got := p.Visual(); got != "![Generated visual](http://x/y.png)" {
		t.Errorf("Visual() = %q", got)
	}
}
