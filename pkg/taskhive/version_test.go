package taskhive

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFullVersionInfo(t *testing.T) {
	t.Run("without build metadata", func(t *testing.T) {
		info := FullVersionInfo()

		assert.Contains(t, info, "Taskhive "+Version)
		assert.Contains(t, info, "API Version: "+APIVersion)
		assert.Contains(t, info, runtime.Version())
		assert.NotContains(t, info, "Git Commit")
		assert.NotContains(t, info, "Build Date")
	})

	t.Run("with injected build metadata", func(t *testing.T) {
		GitCommit = "abc1234"
		BuildDate = "2026-08-28"
		t.Cleanup(func() {
			GitCommit = ""
			BuildDate = ""
		})

		info := FullVersionInfo()
		assert.Contains(t, info, "Git Commit: abc1234")
		assert.Contains(t, info, "Build Date: 2026-08-28")
	})
}
