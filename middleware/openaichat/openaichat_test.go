package openaichat_test

import (
	"testing"

	"github.com/reoring/kor/middleware/openaichat"
	"github.com/reoring/kor/prompt"
)

func TestMessages(t *testing.T) {
	msgs := []prompt.Message{
		{Role: prompt.RoleSystem, Content: "instructions"},
		{Role: prompt.RoleUser, Content: "It costs $10"},
		{Role: prompt.RoleAssistant, Content: "<price>$10</price>"},
	}
	out, err := openaichat.Messages(msgs)
	if err != nil {
		t.Fatalf("convert: %v", err)
	}
	if len(out) != 3 {
		t.Fatalf("expected 3 params, got %d", len(out))
	}
}

func TestMessages_UnknownRole(t *testing.T) {
	_, err := openaichat.Messages([]prompt.Message{{Role: "tool", Content: "x"}})
	if err == nil {
		t.Fatalf("expected error for unsupported role")
	}
}

func TestChatParams(t *testing.T) {
	params, err := openaichat.ChatParams("gpt-4o-mini", []prompt.Message{
		{Role: prompt.RoleUser, Content: "hi"},
	})
	if err != nil {
		t.Fatalf("convert: %v", err)
	}
	if string(params.Model) != "gpt-4o-mini" {
		t.Fatalf("model = %q", params.Model)
	}
	if len(params.Messages) != 1 {
		t.Fatalf("messages = %d", len(params.Messages))
	}
}
