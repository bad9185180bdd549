package logger

import (
	"os"
	"time"

	"github.com/sirupsen/logrus"
)

var root = newRoot()

func newRoot() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(os.Stdout)
	log.SetFormatter(&logrus.JSONFormatter{
		TimestampFormat: time.RFC3339Nano,
		FieldMap: logrus.FieldMap{
			logrus.FieldKeyTime:  "ts",
			logrus.FieldKeyLevel: "level",
			logrus.FieldKeyMsg:   "message",
		},
	})
	log.SetLevel(logrus.InfoLevel)
	return log
}

// SetLevel sets the global log level from its string name.
// Unknown names are ignored and the current level kept.
func SetLevel(level string) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return
	}
	root.SetLevel(lvl)
}

// L returns the root logger
func L() *logrus.Logger {
	return root
}

// WithField returns an entry carrying one structured field
func WithField(key string, value interface{}) *logrus.Entry {
	return root.WithField(key, value)
}

// WithRequestID returns an entry carrying the request id, or a bare
// entry when the id is empty
func WithRequestID(requestID string) *logrus.Entry {
	if requestID == "" {
		return logrus.NewEntry(root)
	}
	return root.WithField("request_id", requestID)
}
