package logger

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/vchandela/ddia-btree/btree"
)

// Logrus turns the alternating key/value args of tree events into logrus fields.
type Logrus struct {
	logger *logrus.Logger
}

// NewLogrus adapts l so it can be passed to btree.WithLogger. Events go to l, never to the
// package-level logrus logger.
func NewLogrus(l *logrus.Logger) btree.Logger {
	return &Logrus{logger: l}
}

func (l *Logrus) Error(msg string, args ...any) {
	l.logger.WithFields(argsToFields(args)).Error(msg)
}

func (l *Logrus) Warn(msg string, args ...any) {
	l.logger.WithFields(argsToFields(args)).Warn(msg)
}

func (l *Logrus) Info(msg string, args ...any) {
	l.logger.WithFields(argsToFields(args)).Info(msg)
}

// argsToFields pairs up alternating keys and values. Non-string keys are formatted with %v,
// a trailing key without a value is kept under "!BADKEY" like slog does.
func argsToFields(args []any) logrus.Fields {
	fields := logrus.Fields{}
	for i := 0; i < len(args); i += 2 {
		if i == len(args)-1 {
			fields["!BADKEY"] = args[i]
			break
		}
		key, ok := args[i].(string)
		if !ok {
			key = fmt.Sprint(args[i])
		}
		fields[key] = args[i+1]
	}
	return fields
}
