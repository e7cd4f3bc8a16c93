package logger

import (
	"time"

	"go.uber.org/zap"
)

// Component names the subsystem emitting the entry.
func Component(v string) zap.Field { return zap.String("component", v) }

// Op names the operation in progress.
func Op(v string) zap.Field { return zap.String("op", v) }

// UserID identifies the account an entry relates to.
func UserID(v string) zap.Field { return zap.String("user_id", v) }

// Service names the API service wrapper.
func Service(v string) zap.Field { return zap.String("service", v) }

func Method(v string) zap.Field { return zap.String("method", v) }

func URL(v string) zap.Field { return zap.String("url", v) }

func Status(v int) zap.Field { return zap.Int("status", v) }

func Duration(v time.Duration) zap.Field { return zap.Duration("duration", v) }

func State(v string) zap.Field { return zap.String("state", v) }

func Count(v int) zap.Field { return zap.Int("count", v) }

// Err wraps err as a field.
func Err(err error) zap.Field { return zap.Error(err) }
