package compose

import (
	"context"
	"errors"
	"fmt"
	"os"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"cssel/state"
)

// Run implements the render subcommand: read a selector document and
// print the assembled selectors.
func Run(ctx context.Context, cmd *cli.Command) error {
	env := state.EnvFromContext(ctx)

	if cmd.Args().Len() == 0 {
		return errors.New("no selector document specified")
	}
	if cmd.Args().Len() > 1 {
		env.Log.Warn("Malformed command line, too many documents", zap.Strings("ignoring", cmd.Args().Slice()[1:]))
	}

	fname := cmd.Args().Get(0)
	data, err := os.ReadFile(fname)
	if err != nil {
		return fmt.Errorf("unable to read selector document '%s': %w", fname, err)
	}

	doc, err := Load(data)
	if err != nil {
		return err
	}

	rendered, err := doc.Assemble(env.Log)
	if err != nil {
		return err
	}
	env.Log.Info("Assembled selectors", zap.String("document", fname), zap.Int("count", len(rendered)))

	withNames := cmd.Bool("names")
	for _, r := range rendered {
		if withNames {
			fmt.Fprintf(os.Stdout, "%s: %s\n", r.Name, r.Selector)
		} else {
			fmt.Fprintln(os.Stdout, r.Selector)
		}
	}
	return nil
}
