package logger

import (
	"github.com/sirupsen/logrus"
)

// Component-specific logger functions

// Store returns a logger for database operations
func Store() *logrus.Entry {
	return WithField("component", "store")
}

// HTTP returns a logger for HTTP handling
func HTTP() *logrus.Entry {
	return WithField("component", "http")
}

// CLI returns a logger for CLI operations
func CLI() *logrus.Entry {
	return WithField("component", "cli")
}
