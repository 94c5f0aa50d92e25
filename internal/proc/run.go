package proc

import (
	"context"
	"io"
	"os"

	"github.com/mmr-tortoise/runway/internal/fsops"
)

// Exec runs the program with caller-supplied sinks and returns the raw
// exit outcome with no capture of its own.
func (e *Executor) Exec(ctx context.Context, program string, args []string, stdout, stderr io.Writer) int {
	return e.Execute(ctx, program, args, stdout, stderr)
}

// Run executes the program with both output streams captured to one
// temporary file. On success the capture is discarded and Run returns
// (true, ""). On any failure it returns false plus the captured
// diagnostic text, which may be empty if the program never started.
// The temporary file is removed on every path.
func (e *Executor) Run(ctx context.Context, program string, args ...string) (ok bool, errText string) {
	path, f, err := fsops.TempFile()
	if err != nil {
		return false, err.Error()
	}
	defer os.Remove(path)

	code := e.Execute(ctx, program, args, f, f)
	f.Close()

	if code == 0 {
		return true, ""
	}
	data, _ := os.ReadFile(path)
	return false, string(data)
}

// IORun executes the program with two freshly created temporary sinks
// and returns the success flag plus the captured stdout and stderr
// contents. Both temporary files are removed before returning,
// regardless of outcome.
func (e *Executor) IORun(ctx context.Context, program string, args ...string) (ok bool, stdout, stderr string) {
	outPath, outF, err := fsops.TempFile()
	if err != nil {
		return false, "", err.Error()
	}
	defer os.Remove(outPath)

	errPath, errF, err := fsops.TempFile()
	if err != nil {
		outF.Close()
		return false, "", err.Error()
	}
	defer os.Remove(errPath)

	code := e.Execute(ctx, program, args, outF, errF)
	outF.Close()
	errF.Close()

	outData, _ := os.ReadFile(outPath)
	errData, _ := os.ReadFile(errPath)
	return code == 0, string(outData), string(errData)
}
