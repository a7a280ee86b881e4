// Package openaichat adapts assembled prompts to the OpenAI chat-completion
// API, so callers can hand a rendered conversation straight to an
// openai-go client. Invoking the client stays the caller's business.
package openaichat

import (
	"fmt"

	openai "github.com/openai/openai-go/v3"

	"github.com/reoring/kor/prompt"
)

// Messages converts role-tagged prompt messages into chat-completion
// message params.
func Messages(msgs []prompt.Message) ([]openai.ChatCompletionMessageParamUnion, error) {
	out := make([]openai.ChatCompletionMessageParamUnion, 0, len(msgs))
	for _, m := range msgs {
		switch m.Role {
		case prompt.RoleSystem:
			out = append(out, openai.SystemMessage(m.Content))
		case prompt.RoleUser:
			out = append(out, openai.UserMessage(m.Content))
		case prompt.RoleAssistant:
			out = append(out, openai.AssistantMessage(m.Content))
		default:
			return nil, fmt.Errorf("kor: unsupported message role %q", m.Role)
		}
	}
	return out, nil
}

// ChatParams bundles converted messages into request params for the given
// model.
func ChatParams(model string, msgs []prompt.Message) (openai.ChatCompletionNewParams, error) {
	converted, err := Messages(msgs)
	if err != nil {
		return openai.ChatCompletionNewParams{}, err
	}
	return openai.ChatCompletionNewParams{
		Model:    openai.ChatModel(model),
		Messages: converted,
	}, nil
}
