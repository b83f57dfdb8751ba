package interpreter

import (
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"regexnfa/regexlib"
)

// Script is a list of pattern definitions and expectations:
//
//	pattern ab = "(ab)*";
//	expect ab "abab" accept;
//	expect "a+" "" reject;
type Script struct {
	Statements []*Statement `parser:"@@*"`
}

type Statement struct {
	Define *Define `parser:"  @@ ';'"`
	Expect *Expect `parser:"| @@ ';'"`
}

type Define struct {
	Pos    lexer.Position
	Name   string `parser:"'pattern' @Ident"`
	Source string `parser:"'=' @String"`
}

type Expect struct {
	Pos     lexer.Position
	Target  *Target `parser:"'expect' @@"`
	Input   string  `parser:"@String"`
	Verdict string  `parser:"@('accept' | 'reject')"`
}

// Target is either a defined pattern name or an inline pattern.
type Target struct {
	Name   *string `parser:"  @Ident"`
	Source *string `parser:"| @String"`
}

var parser = participle.MustBuild[Script](participle.Unquote("String"))

func Parse(filename, data string) (*Script, error) {
	s, err := parser.ParseString(filename, data)
	if err != nil {
		return nil, errors.Wrap(err, "parsing script")
	}
	return s, nil
}

func (s *Script) Exec(ctx *Context) error {
	for _, stmt := range s.Statements {
		if err := stmt.Exec(ctx); err != nil {
			return err
		}
	}
	return nil
}

func (s *Statement) Exec(ctx *Context) error {
	switch {
	case s.Define != nil:
		re, err := regexlib.NewRegex(s.Define.Source, ctx.Options...)
		if err != nil {
			return errors.Wrapf(err, "%s: pattern %s", s.Define.Pos, s.Define.Name)
		}
		ctx.Env.Set(s.Define.Name, re)
		ctx.Log.Debug("pattern defined",
			zap.String("name", s.Define.Name),
			zap.String("source", s.Define.Source),
			zap.Int("states", re.NFA().Len()))
	case s.Expect != nil:
		return s.Expect.Exec(ctx)
	}
	return nil
}

func (e *Expect) Exec(ctx *Context) error {
	re, err := e.Target.Resolve(ctx)
	if err != nil {
		return errors.Wrapf(err, "%s", e.Pos)
	}
	want := e.Verdict == "accept"
	got := re.Match(e.Input)
	ctx.Report.Record(Result{
		Pos:     e.Pos,
		Pattern: re.String(),
		Input:   e.Input,
		Want:    want,
		Got:     got,
	})
	ctx.Log.Debug("expectation checked",
		zap.String("pattern", re.String()),
		zap.String("input", e.Input),
		zap.Bool("want", want),
		zap.Bool("got", got))
	return nil
}

func (t *Target) Resolve(ctx *Context) (*regexlib.Regex, error) {
	switch {
	case t.Name != nil:
		re, ok := ctx.Env.Get(*t.Name)
		if !ok {
			return nil, errors.Errorf("undefined pattern %s", *t.Name)
		}
		return re, nil
	case t.Source != nil:
		re, err := regexlib.NewRegex(*t.Source, ctx.Options...)
		if err != nil {
			return nil, errors.Wrapf(err, "pattern %q", *t.Source)
		}
		return re, nil
	}
	return nil, errors.New("invalid target")
}
