package observability

import (
	"fmt"
	"time"

	"go.uber.org/zap"
)

// Field aliases keep zap out of the call sites of other packages.
type Field = zap.Field

// String constructs a field with a string value.
func String(key, value string) Field { return zap.String(key, value) }

// Int constructs a field with an int value.
func Int(key string, value int) Field { return zap.Int(key, value) }

// Bool constructs a field with a bool value.
func Bool(key string, value bool) Field { return zap.Bool(key, value) }

// Duration constructs a field with a duration value.
func Duration(key string, value time.Duration) Field { return zap.Duration(key, value) }

// Time constructs a field with a time value.
func Time(key string, value time.Time) Field { return zap.Time(key, value) }

// Stringer constructs a field from a fmt.Stringer, such as a decimal amount.
func Stringer(key string, value fmt.Stringer) Field { return zap.Stringer(key, value) }

// Error constructs a field that carries an error.
func Error(err error) Field { return zap.Error(err) }
