package interpreter

import (
	"go.uber.org/zap"

	"regexnfa/regexlib"
)

// Context stores the environment, build options and the running report

type Context struct {
	Env     *Environment
	Options []regexlib.Option
	Report  *Report
	Log     *zap.Logger
}

func NewContext(log *zap.Logger, opts ...regexlib.Option) *Context {
	if log == nil {
		log = zap.NewNop()
	}
	return &Context{
		Env:     NewEnvironment(),
		Options: opts,
		Report:  &Report{},
		Log:     log,
	}
}
