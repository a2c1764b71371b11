package telemetry

import "testing"

func TestNewNeverReturnsNil(t *testing.T) {
	if New(false) == nil {
		t.Fatal("New(false) returned nil logger")
	}
	if New(true) == nil {
		t.Fatal("New(true) returned nil logger")
	}
}
