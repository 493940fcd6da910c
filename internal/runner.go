package internal

import (
	"context"
	"fmt"
)

// RunningStatus is shown on the output surface while code executes
const RunningStatus = "Running..."

// CodeExecutor runs code remotely; *Client implements it
type CodeExecutor interface {
	RunRemoteCode(ctx context.Context, code string) (string, error)
}

// CodeRunner sends the editor contents for execution and owns the output
// surface. Each run is a single attempt.
type CodeRunner struct {
	exec   CodeExecutor
	editor Editor
	output string
}

// NewCodeRunner creates a runner reading from editor. editor may be nil
// until the editing surface exists; runs are no-ops until then.
func NewCodeRunner(exec CodeExecutor, editor Editor) *CodeRunner {
	return &CodeRunner{exec: exec, editor: editor}
}

// SetEditor attaches the editing surface
func (r *CodeRunner) SetEditor(editor Editor) {
	r.editor = editor
}

// Output returns what the output surface shows
func (r *CodeRunner) Output() string {
	return r.output
}

// Begin reads the editor and shows RunningStatus. ok is false when there is
// no editor to read.
func (r *CodeRunner) Begin() (code string, ok bool) {
	if r.editor == nil {
		LogDebug("Run requested before the editor is available")
		return "", false
	}
	r.output = RunningStatus
	return r.editor.Value(), true
}

// Execute performs the remote call for code obtained from Begin
func (r *CodeRunner) Execute(ctx context.Context, code string) (string, error) {
	return r.exec.RunRemoteCode(ctx, code)
}

// Finish replaces the running status with the output, or with an error
// description when the run failed.
func (r *CodeRunner) Finish(output string, err error) {
	if err != nil {
		LogWarn("Code run failed: %v", err)
		r.output = ErrorText(err)
		return
	}
	r.output = output
}

// RunCode does Begin, Execute and Finish in one call and returns the error, if
// any, that ended up on the output surface.
func (r *CodeRunner) RunCode(ctx context.Context) error {
	code, ok := r.Begin()
	if !ok {
		return nil
	}
	output, err := r.Execute(ctx, code)
	r.Finish(output, err)
	return err
}

// ErrorText is how failures are shown in place of a result
func ErrorText(err error) string {
	return fmt.Sprintf("Error: %v", err)
}
