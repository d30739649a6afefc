package cli

import (
	"context"
	"fmt"
	"io"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/pharos-game/lightray"
)

var (
	version = "dev" // semantic version (e.g., "v1.2.3")
	commit  string  // git commit SHA
	date    string  // build timestamp
)

// SetVersion sets the version information displayed by --version.
// It is called from main with values injected via ldflags.
func SetVersion(v, c, d string) {
	if v != "" {
		version = v
	}
	commit = c
	date = d
}

// Execute runs the lightray CLI with the given arguments (without the
// program name). The confirmation message goes to stdout and log output to
// stderr. A non-nil error means the image was not written.
func Execute(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	prev := lightray.Logger()
	defer lightray.SetLogger(prev)

	root := newRootCmd(stderr)
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)
	return root.ExecuteContext(ctx)
}

func newRootCmd(stderr io.Writer) *cobra.Command {
	root := &cobra.Command{
		Use:           "lightray",
		Short:         "Render the light ray sprite to " + lightray.OutputPath,
		Long:          `lightray renders a 100x300 pale yellow light ray that fades from opaque at the top to transparent at the bottom, and writes it as PNG to the working directory.`,
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logger := newLogger(stderr, charmlog.InfoLevel)
			lightray.SetLogger(slogLogger(logger))
			cmd.SetContext(withLogger(cmd.Context(), logger))
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd.Context(), cmd.OutOrStdout())
		},
	}
	root.SetVersionTemplate(fmt.Sprintf("lightray %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	return root
}

// runRender writes the default ray to lightray.OutputPath and prints the
// confirmation line to out.
func runRender(ctx context.Context, out io.Writer) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	if err := lightray.DefaultRay().Save(lightray.OutputPath); err != nil {
		return fmt.Errorf("save %s: %w", lightray.OutputPath, err)
	}
	prog.done("Rendered light ray")

	_, err := fmt.Fprintf(out, "Saved %s\n", lightray.OutputPath)
	return err
}
