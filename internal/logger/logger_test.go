package logger

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestComponentLoggers(t *testing.T) {
	assert.Equal(t, "store", Store().Data["component"])
	assert.Equal(t, "http", HTTP().Data["component"])
	assert.Equal(t, "cli", CLI().Data["component"])
}

func TestWithRequestID(t *testing.T) {
	entry := WithRequestID("req-1")
	assert.Equal(t, "req-1", entry.Data["request_id"])

	_, ok := WithRequestID("").Data["request_id"]
	assert.False(t, ok, "empty request ids must not produce a field")
}

func TestSetLevel(t *testing.T) {
	defer SetLevel("info")

	SetLevel("debug")
	assert.Equal(t, logrus.DebugLevel, L().GetLevel())

	SetLevel("not-a-level")
	assert.Equal(t, logrus.DebugLevel, L().GetLevel(), "unknown names keep the current level")
}
