package cli

import (
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"regexnfa/internal/interpreter"
)

func runCmd(a *app) *SubCommand {
	sc := &SubCommand{EnvPrefix: "REGEXNFA"}
	sc.Cmd = &cobra.Command{
		Use:   "run <script>...",
		Short: "Check pattern expectations listed in script files",
		Long: `
Scripts define named patterns and expectations:

    pattern ab = "(ab)*";
    expect ab "abab" accept;
    expect "a+" "" reject;

Exits 0 when every expectation holds and 1 otherwise.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := interpreter.NewContext(a.log, a.options(sc.Conf)...)
			for _, path := range args {
				data, err := os.ReadFile(path)
				if err != nil {
					return errors.Wrapf(err, "reading %s", path)
				}
				script, err := interpreter.Parse(path, string(data))
				if err != nil {
					return err
				}
				if err := script.Exec(ctx); err != nil {
					return err
				}
				a.log.Info("script done", zap.String("path", path),
					zap.Int("passed", ctx.Report.Passed), zap.Int("failed", ctx.Report.Failed()))
			}
			if err := ctx.Report.Write(cmd.OutOrStdout()); err != nil {
				return err
			}
			if ctx.Report.Failed() > 0 {
				return &exitError{code: ExitNoMatch}
			}
			return nil
		},
	}
	return sc
}
