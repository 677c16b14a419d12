package logging

import (
	"context"
	"os"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type loggingContextKey string

const TrackingIDKey loggingContextKey = "trackingID"

// WithTrackingId attaches a fresh tracking id to the context, so all log lines
// produced while processing one topic can be correlated.
func WithTrackingId(ctx context.Context) context.Context {
	trackingID := uuid.New().String()
	return context.WithValue(ctx, TrackingIDKey, trackingID)
}

type trackingIDFormatter struct {
	logrus.TextFormatter
}

func (f *trackingIDFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	if entry.Context == nil {
		return f.TextFormatter.Format(entry)
	}

	contextValueI := entry.Context.Value(TrackingIDKey)
	if contextValueI == nil {
		return f.TextFormatter.Format(entry)
	}

	trackingIDField, _ := contextValueI.(string)
	entry.Data["trackingID"] = trackingIDField

	return f.TextFormatter.Format(entry)
}

func Init() {
	level := logrus.InfoLevel
	if rawLevel := os.Getenv("LOG_LEVEL"); rawLevel != "" {
		parsedLevel, err := logrus.ParseLevel(rawLevel)
		if err == nil {
			level = parsedLevel
		}
	}

	logrus.SetLevel(level)
	logrus.SetFormatter(&trackingIDFormatter{
		TextFormatter: logrus.TextFormatter{
			TimestampFormat: "2006-01-02 15:04:05",
			FullTimestamp:   true,
		},
	})
}
