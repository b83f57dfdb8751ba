package cli

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"regexnfa/regexlib"
)

func matchCmd(a *app) *SubCommand {
	sc := &SubCommand{EnvPrefix: "REGEXNFA"}
	sc.Cmd = &cobra.Command{
		Use:   "match <pattern> <input>",
		Short: "Report whether pattern accepts the whole input",
		Long: `
Prints "accept" and exits 0 when the pattern accepts the entire input, prints
"reject" and exits 1 otherwise. Pattern errors exit 2.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			pattern, input := args[0], args[1]
			re, err := regexlib.NewRegex(pattern, a.options(sc.Conf)...)
			if err != nil {
				return errors.Wrapf(err, "compiling %q", pattern)
			}
			var ok bool
			if sc.Conf.GetBool("trace") {
				ok = re.NFA().MatchTrace(input, func(pos int, frontier []int) {
					a.log.Debug("frontier", zap.Int("pos", pos), zap.Ints("states", frontier))
				})
			} else {
				ok = re.Match(input)
			}
			if !ok {
				fmt.Fprintln(cmd.OutOrStdout(), "reject")
				return &exitError{code: ExitNoMatch}
			}
			fmt.Fprintln(cmd.OutOrStdout(), "accept")
			return nil
		},
	}
	sc.Cmd.Flags().Bool("trace", false, "Log the frontier after every input character at debug level.")
	return sc
}
