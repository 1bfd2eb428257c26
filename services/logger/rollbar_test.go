package logsvc

import (
	"bytes"
	"fmt"
	"log"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/trezcool/gradebook/core"
)

func newTestLogger() (*RollbarLogger, *bytes.Buffer) {
	buf := new(bytes.Buffer)
	logger := NewRollbarLogger(log.New(buf, "", 0), &core.Config{Env: "TEST", Build: "test"})
	logger.Enable(false)
	return logger, buf
}

func TestRollbarLogger_print(t *testing.T) {
	logger, buf := newTestLogger()
	teacher := core.Person{ID: "t1", Name: "Mme Kapinga", Email: "kapinga@test.cd"}

	logger.Info("grades saved", map[string]interface{}{"class": "10A"}, teacher)
	logger.Error("rendering email", fmt.Errorf("boom"))
	logger.Warn("nothing to send")
	logger.Debug("debugging")

	got := buf.String()
	assert.Equal(t, "grades saved\nmap[class:10A]\nrendering email\nboom\nnothing to send\ndebugging\n", got)
	assert.NotContains(t, got, "Kapinga", "acting person is not printed")
}

func TestRollbarLogger_prepare(t *testing.T) {
	logger, _ := newTestLogger()
	first := core.Person{ID: "t1"}
	second := core.Person{ID: "t2"}
	extras := map[string]interface{}{"class": "10A"}

	args := logger.prepare("msg", []interface{}{first, extras, second})
	assert.Equal(t, []interface{}{"msg", extras}, args)

	args = logger.prepare("msg", nil)
	assert.Equal(t, []interface{}{"msg"}, args)
}
