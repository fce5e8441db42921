package logger

import (
	"go.uber.org/zap"
)

type Field = zap.Field

var (
	String  = zap.String
	Strings = zap.Strings
	Int     = zap.Int
	Int64   = zap.Int64
	Bool    = zap.Bool
	ErrorF  = zap.Error
)
