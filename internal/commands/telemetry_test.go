package commands

import (
	"context"
	"testing"
	"time"

	"github.com/tidynest/sitekit/pkg/interfaces"
)

type recordingLogger struct {
	infoMsgs  []string
	errorMsgs []string
}

func (l *recordingLogger) Trace(string, ...any) {}
func (l *recordingLogger) Debug(string, ...any) {}
func (l *recordingLogger) Info(msg string, _ ...any) {
	l.infoMsgs = append(l.infoMsgs, msg)
}
func (l *recordingLogger) Warn(string, ...any) {}
func (l *recordingLogger) Error(msg string, _ ...any) {
	l.errorMsgs = append(l.errorMsgs, msg)
}
func (l *recordingLogger) Fatal(string, ...any) {}
func (l *recordingLogger) WithContext(context.Context) interfaces.Logger {
	return l
}

type fieldsRecordingLogger struct {
	recordingLogger
	fields map[string]any
}

func (l *fieldsRecordingLogger) WithFields(fields map[string]any) interfaces.Logger {
	l.fields = fields
	return l
}

func TestDefaultTelemetryPlainLogger(t *testing.T) {
	logger := &recordingLogger{}
	telemetry := DefaultTelemetry[testMessage](logger)

	// A logger without the FieldsLogger extension must still receive the
	// outcome events when fields are present.
	telemetry(context.Background(), testMessage{}, TelemetryInfo{
		Command:  "sitekit.test.message",
		Fields:   map[string]any{"slug": "/about"},
		Duration: 5 * time.Millisecond,
		Status:   TelemetryStatusSuccess,
	})

	if len(logger.infoMsgs) != 1 || logger.infoMsgs[0] != "command.telemetry.success" {
		t.Fatalf("info messages = %v", logger.infoMsgs)
	}
}

func TestDefaultTelemetryAttachesFields(t *testing.T) {
	logger := &fieldsRecordingLogger{}
	telemetry := DefaultTelemetry[testMessage](logger)

	telemetry(context.Background(), testMessage{}, TelemetryInfo{
		Command:  "sitekit.test.message",
		Fields:   map[string]any{"slug": "/about"},
		Duration: 5 * time.Millisecond,
		Status:   TelemetryStatusFailed,
	})

	if logger.fields["slug"] != "/about" {
		t.Errorf("fields = %v", logger.fields)
	}
	if len(logger.errorMsgs) != 1 || logger.errorMsgs[0] != "command.telemetry.failed" {
		t.Fatalf("error messages = %v", logger.errorMsgs)
	}
}
