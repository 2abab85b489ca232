package main

import (
	"errors"
	"fmt"
	"testing"
)

func TestDegradedRunErrorDetection(t *testing.T) {
	err := fmt.Errorf("wrapped: %w", &DegradedRunError{Message: "2 of 9 benchmarks failed"})

	var degraded *DegradedRunError
	if !errors.As(err, &degraded) {
		t.Fatal("errors.As should find DegradedRunError through wrapping")
	}
	if degraded.Message != "2 of 9 benchmarks failed" {
		t.Errorf("message = %q", degraded.Message)
	}

	plain := errors.New("config error")
	if errors.As(plain, &degraded) {
		t.Error("plain errors must not classify as degraded runs")
	}
}
