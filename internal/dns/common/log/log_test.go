package log

import "testing"

type capturingLogger struct {
	msgs []string
}

func (c *capturingLogger) Info(_ map[string]any, msg string)  { c.msgs = append(c.msgs, msg) }
func (c *capturingLogger) Error(_ map[string]any, msg string) { c.msgs = append(c.msgs, msg) }
func (c *capturingLogger) Debug(_ map[string]any, msg string) { c.msgs = append(c.msgs, msg) }
func (c *capturingLogger) Warn(_ map[string]any, msg string)  { c.msgs = append(c.msgs, msg) }

func TestSetAndGetLogger(t *testing.T) {
	orig := GetLogger()
	defer SetLogger(orig)

	capture := &capturingLogger{}
	SetLogger(capture)

	Info(nil, "one")
	Warn(map[string]any{"k": "v"}, "two")
	Debug(nil, "three")
	Error(nil, "four")

	if len(capture.msgs) != 4 {
		t.Fatalf("captured %d messages, want 4", len(capture.msgs))
	}
	if capture.msgs[0] != "one" || capture.msgs[3] != "four" {
		t.Errorf("messages = %v", capture.msgs)
	}
}

func TestConfigureDoesNotPanic(t *testing.T) {
	orig := GetLogger()
	defer SetLogger(orig)

	for _, debug := range []string{"", "1", "trace"} {
		Configure(debug)
		if GetLogger() == nil {
			t.Errorf("Configure(%q) left a nil logger", debug)
		}
	}
}

func TestNoopLoggerDiscards(t *testing.T) {
	l := NewNoopLogger()
	l.Info(nil, "ignored")
	l.Error(nil, "ignored")
	l.Debug(nil, "ignored")
	l.Warn(nil, "ignored")
}
