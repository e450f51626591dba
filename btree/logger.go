package btree

// Logger receives structural events from a BTree: root growth, root collapse and
// deletes of absent keys. Args alternate keys and values, so *slog.Logger fits as is;
// package logger adapts zap and logrus.
type Logger interface {
	Error(msg string, args ...any)
	Warn(msg string, args ...any)
	Info(msg string, args ...any)
}

// DiscardLogger drops every event. Trees use it unless WithLogger says otherwise.
type DiscardLogger struct{}

func (d DiscardLogger) Error(string, ...any) {}

func (d DiscardLogger) Warn(string, ...any) {}

func (d DiscardLogger) Info(string, ...any) {}
