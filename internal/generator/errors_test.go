package generator

import (
	"errors"
	"fmt"
	"testing"
)

func TestClassify(t *testing.T) {
	t.Parallel()

	quota := &ProviderError{Provider: "gemini", Class: ClassQuota, Err: errors.New("quota exceeded")}
	if got := Classify(quota); got != ClassQuota {
		t.Fatalf("unexpected class: %v", got)
	}

	wrapped := fmt.Errorf("all generator providers failed: %w", quota)
	if got := Classify(wrapped); got != ClassQuota {
		t.Fatalf("classification must survive wrapping, got %v", got)
	}

	if got := Classify(errors.New("plain")); got != ClassUnexpected {
		t.Fatalf("plain errors are unexpected, got %v", got)
	}
}

func TestFailureClassString(t *testing.T) {
	t.Parallel()

	if ClassQuota.String() != "quota" || ClassAPI.String() != "api" || ClassUnexpected.String() != "unexpected" {
		t.Fatal("unexpected class labels")
	}
}
