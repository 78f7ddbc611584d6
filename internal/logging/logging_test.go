package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  LogLevel
	}{
		{input: "debug", want: DEBUG},
		{input: "DEBUG", want: DEBUG},
		{input: "info", want: INFO},
		{input: "Warn", want: WARN},
		{input: "error", want: ERROR},
		{input: "fatal", want: FATAL},
		{input: "nonsense", want: INFO},
		{input: "", want: INFO},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, parseLevel(tt.input))
		})
	}
}

func TestShouldLogHonorsGlobalLevel(t *testing.T) {
	defer Initialize("info")

	logger := GetLogger("test")

	Initialize("warn")
	assert.False(t, logger.shouldLog(DEBUG))
	assert.False(t, logger.shouldLog(INFO))
	assert.True(t, logger.shouldLog(WARN))
	assert.True(t, logger.shouldLog(ERROR))

	// Loggers created before Initialize still follow the new level
	Initialize("debug")
	assert.True(t, logger.shouldLog(DEBUG))
}

func TestWithFieldDoesNotMutateParent(t *testing.T) {
	parent := GetLogger("test")
	child := parent.WithField("run_id", "abc")

	assert.Empty(t, parent.fields)
	assert.Equal(t, "abc", child.fields["run_id"])

	grandchild := child.WithField("section", "sla")
	assert.Len(t, child.fields, 1)
	assert.Len(t, grandchild.fields, 2)
}

func TestCloneFields(t *testing.T) {
	src := map[string]interface{}{"a": 1}
	dst := cloneFields(src)
	dst["b"] = 2

	assert.Len(t, src, 1)
	assert.Len(t, dst, 2)

	assert.NotNil(t, cloneFields(nil))
	assert.Empty(t, cloneFields(nil))
}

func TestField(t *testing.T) {
	f := Field("groups", 10)
	assert.Equal(t, "groups", f.Key)
	assert.Equal(t, 10, f.Value)
}
