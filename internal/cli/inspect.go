package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"regexnfa/regexlib"
)

func tokensCmd() *SubCommand {
	sc := &SubCommand{EnvPrefix: "REGEXNFA"}
	sc.Cmd = &cobra.Command{
		Use:   "tokens <pattern>",
		Short: "List the tokens of a pattern",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			toks, err := regexlib.Tokens(args[0])
			out := cmd.OutOrStdout()
			for _, tok := range toks {
				fmt.Fprintf(out, "%-12s %c %d\n", tok.Kind, tok.Value, tok.Pos)
			}
			return err
		},
	}
	return sc
}

// yamlNode is the serialised form of a syntax tree node.
type yamlNode struct {
	Kind     string      `yaml:"kind"`
	Value    string      `yaml:"value,omitempty"`
	Children []*yamlNode `yaml:"children,omitempty"`
}

func toYAMLNode(n *regexlib.Node) *yamlNode {
	y := &yamlNode{Kind: n.Kind.String()}
	if n.Kind == regexlib.NodeLiteral {
		y.Value = string(rune(n.Value))
	}
	for _, c := range n.Children {
		y.Children = append(y.Children, toYAMLNode(c))
	}
	return y
}

func writeTree(w io.Writer, n *regexlib.Node, depth int) {
	fmt.Fprintf(w, "%s%s", strings.Repeat("  ", depth), n.Kind)
	if n.Kind == regexlib.NodeLiteral {
		fmt.Fprintf(w, " %c", n.Value)
	}
	fmt.Fprintln(w)
	for _, c := range n.Children {
		writeTree(w, c, depth+1)
	}
}

func astCmd() *SubCommand {
	sc := &SubCommand{EnvPrefix: "REGEXNFA"}
	sc.Cmd = &cobra.Command{
		Use:   "ast <pattern>",
		Short: "Print the syntax tree of a pattern",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := regexlib.Compile(args[0])
			if err != nil {
				return errors.Wrapf(err, "compiling %q", args[0])
			}
			out := cmd.OutOrStdout()
			switch format := sc.Conf.GetString("format"); format {
			case "tree":
				writeTree(out, root, 0)
			case "sexpr":
				fmt.Fprintln(out, root)
			case "yaml":
				enc := yaml.NewEncoder(out)
				enc.SetIndent(2)
				if err := enc.Encode(toYAMLNode(root)); err != nil {
					return errors.Wrap(err, "encoding tree")
				}
				return enc.Close()
			default:
				return errors.Errorf("unknown format %q, want one of [tree, sexpr, yaml]", format)
			}
			return nil
		},
	}
	sc.Cmd.Flags().String("format", "tree", "Output format, one of [tree, sexpr, yaml].")
	return sc
}

func dotCmd(a *app) *SubCommand {
	sc := &SubCommand{EnvPrefix: "REGEXNFA"}
	sc.Cmd = &cobra.Command{
		Use:   "dot <pattern>",
		Short: "Export the compiled automaton in Graphviz DOT format",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			re, err := regexlib.NewRegex(args[0], a.options(sc.Conf)...)
			if err != nil {
				return errors.Wrapf(err, "compiling %q", args[0])
			}
			outFile := sc.Conf.GetString("out")
			if outFile == "-" {
				return regexlib.WriteDOT(cmd.OutOrStdout(), re.NFA())
			}
			f, err := os.Create(outFile)
			if err != nil {
				return errors.Wrapf(err, "cannot create %s", outFile)
			}
			defer f.Close()
			if err := regexlib.WriteDOT(f, re.NFA()); err != nil {
				return errors.Wrapf(err, "writing %s", outFile)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "DOT written to %s\n", outFile)
			return nil
		},
	}
	sc.Cmd.Flags().StringP("out", "o", "-", "Output file, - for stdout.")
	return sc
}
