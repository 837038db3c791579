package typeshare

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/exec"
	"path/filepath"

	"go.scnd.dev/open/rpcgen/package/span"
)

var ErrGeneratorFailed = errors.New("type binding generator failed")

type Runner struct {
	Command  string
	Language string
	Verbose  bool
	Stdout   io.Writer
	Stderr   io.Writer
}

func NewRunner(command string, language string, verbose bool) *Runner {
	return &Runner{
		Command:  command,
		Language: language,
		Verbose:  verbose,
		Stdout:   os.Stdout,
		Stderr:   os.Stderr,
	}
}

func (r *Runner) Arguments(output string, root string) []string {
	return []string{"--lang", r.Language, "--output-file", output, root}
}

// Run writes the bindings of every type under root into output.
func (r *Runner) Run(ctx context.Context, output string, root string) error {
	s, ctx := span.With(ctx, "typeshare")
	defer s.End()
	s.Variable("output", output)

	// * ensure output directory
	if err := os.MkdirAll(filepath.Dir(output), 0o755); err != nil {
		return s.Error("unable to create bindings directory", err)
	}

	// * run generator
	arguments := r.Arguments(output, root)
	if r.Verbose {
		log.Printf("running %s %v", r.Command, arguments)
	}
	cmd := exec.CommandContext(ctx, r.Command, arguments...)
	cmd.Stdout = r.Stdout
	cmd.Stderr = r.Stderr
	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return s.Error(fmt.Sprintf("%s exited with status %d", r.Command, exitErr.ExitCode()), ErrGeneratorFailed)
		}
		return s.Error(fmt.Sprintf("unable to run %s", r.Command), errors.Join(ErrGeneratorFailed, err))
	}

	return nil
}
