package logging

import "context"

type LogEntry struct {
	Key   string
	Value interface{}
}

func Entry(k string, v interface{}) LogEntry {
	return LogEntry{Key: k, Value: v}
}

type Logger interface {
	Debug(ctx context.Context, msg string, entries ...LogEntry)
	Info(ctx context.Context, msg string, entries ...LogEntry)
	Warning(ctx context.Context, msg string, entries ...LogEntry)
	Error(ctx context.Context, msg string, entries ...LogEntry)
}

// Error logs err at the error level with the given entries appended.
func Error(ctx context.Context, log Logger, err error, entries ...LogEntry) {
	entries = append(entries, Entry("err", err))
	log.Error(ctx, "Unexpected error occurred.", entries...)
}
