package schema

import (
	"encoding/json"
	"testing"
)

func TestValidateQuestionRequest_Valid(t *testing.T) {
	t.Parallel()

	req, err := ValidateQuestionRequest(json.RawMessage(`{"text": "The cat sat on the mat and looked outside."}`))
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if req.Text == "" {
		t.Fatal("expected text to survive validation")
	}
}

func TestValidateQuestionRequest_TargetLang(t *testing.T) {
	t.Parallel()

	req, err := ValidateQuestionRequest(json.RawMessage(`{"text": "The cat sat on the mat and looked outside.", "target_lang": "FR-fr"}`))
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if req.TargetLang != "fr" {
		t.Fatalf("expected target_lang normalized to primary subtag, got %q", req.TargetLang)
	}

	req, err = ValidateQuestionRequest(json.RawMessage(`{"text": "The cat sat on the mat and looked outside."}`))
	if err != nil {
		t.Fatalf("validate without target_lang: %v", err)
	}
	if req.TargetLang != "" {
		t.Fatalf("expected empty target_lang when absent, got %q", req.TargetLang)
	}
}

func TestValidateQuestionRequest_Invalid(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		payload string
	}{
		{"empty payload", ``},
		{"missing text", `{}`},
		{"blank text", `{"text": "   "}`},
		{"wrong type", `{"text": 42}`},
		{"unknown field", `{"text": "hello there my dear friend", "mode": "fast"}`},
		{"target_lang wrong type", `{"text": "hello there my dear friend", "target_lang": 7}`},
		{"target_lang not a code", `{"text": "hello there my dear friend", "target_lang": "123"}`},
		{"trailing content", `{"text": "hello"} {}`},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if _, err := ValidateQuestionRequest(json.RawMessage(tc.payload)); err == nil {
				t.Fatalf("expected %s to fail validation", tc.name)
			}
		})
	}
}
