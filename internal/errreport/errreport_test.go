package errreport

import (
	"errors"
	"testing"
)

func TestCaptureWithoutDSNDoesNotPanic(t *testing.T) {
	Init("", "test", "")
	Capture(errors.New("boom"), "test")
	Capture(nil, "test")
	Flush()
}
