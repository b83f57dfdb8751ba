package interpreter

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"regexnfa/regexlib"
)

const sample = `
// named and inline patterns
pattern ab = "(ab)*";
pattern opt = "a?";

expect ab "ababab" accept;
expect ab "aba" reject;
expect opt "" accept;
expect "a+" "" reject;
expect "a|b" "c" accept;
`

func TestParseScript(t *testing.T) {
	s, err := Parse("sample.rx", sample)
	require.NoError(t, err)
	require.Len(t, s.Statements, 7)

	def := s.Statements[0].Define
	require.NotNil(t, def)
	require.Equal(t, "ab", def.Name)
	require.Equal(t, "(ab)*", def.Source)
	require.Equal(t, 3, def.Pos.Line)

	exp := s.Statements[5].Expect
	require.NotNil(t, exp)
	require.Nil(t, exp.Target.Name)
	require.Equal(t, "a+", *exp.Target.Source)
	require.Equal(t, "", exp.Input)
	require.Equal(t, "reject", exp.Verdict)
}

func TestParseScriptErrors(t *testing.T) {
	for _, src := range []string{
		`pattern = "a";`,
		`expect a "b" maybe;`,
		`pattern a = "a"`,
	} {
		_, err := Parse("bad.rx", src)
		require.Error(t, err, src)
	}
}

func TestExecReport(t *testing.T) {
	s, err := Parse("sample.rx", sample)
	require.NoError(t, err)

	for _, opts := range [][]regexlib.Option{nil, {regexlib.WithAcceptWalk()}} {
		ctx := NewContext(zaptest.NewLogger(t), opts...)
		require.NoError(t, s.Exec(ctx))
		require.Equal(t, 4, ctx.Report.Passed)
		require.Equal(t, 1, ctx.Report.Failed())

		f := ctx.Report.Failures[0]
		require.Equal(t, "a|b", f.Pattern)
		require.Equal(t, "c", f.Input)
		require.True(t, f.Want)
		require.False(t, f.Got)

		var buf bytes.Buffer
		require.NoError(t, ctx.Report.Write(&buf))
		require.Contains(t, buf.String(), `"a|b" on "c": want accept, got reject`)
		require.Contains(t, buf.String(), "4 passed, 1 failed")
	}
}

func TestExecUndefinedPattern(t *testing.T) {
	s, err := Parse("undef.rx", `expect nope "a" accept;`)
	require.NoError(t, err)
	err = s.Exec(NewContext(nil))
	require.Error(t, err)
	require.Contains(t, err.Error(), "undefined pattern nope")
}

func TestExecCompileError(t *testing.T) {
	s, err := Parse("bad.rx", `pattern broken = "a#b";`)
	require.NoError(t, err)
	err = s.Exec(NewContext(nil))

	var lerr *regexlib.LexError
	require.True(t, errors.As(err, &lerr), "%v", err)
	require.Equal(t, 1, lerr.Pos)
	require.Contains(t, err.Error(), "pattern broken")
}

func TestEnvironment(t *testing.T) {
	env := NewEnvironment()
	_, ok := env.Get("x")
	require.False(t, ok)

	env.Set("b", regexlib.MustRegex("b+"))
	env.Set("a", regexlib.MustRegex("a*"))
	re, ok := env.Get("a")
	require.True(t, ok)
	require.True(t, re.Match("aa"))
	require.Equal(t, `[a="a*" b="b+"]`, env.String())
}
