package agent

import (
	"context"
	"fmt"

	"github.com/bankmcp/bankmcp/internal/errors"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	openai "github.com/sashabaranov/go-openai"
)

// systemPrompt is the persona the demo agent runs with.
const systemPrompt = `You are a helpful banking assistant.
Use the available tools to help users with their banking needs.
Always be clear and provide specific numbers when discussing finances.`

// maxToolRounds bounds the chat loop so a model that keeps asking for
// tools cannot spin forever.
const maxToolRounds = 8

// Agent drives a chat model against the dispatcher's tools.
type Agent struct {
	chat       *openai.Client
	model      string
	dispatcher *Dispatcher
}

// New assembles an agent from a chat client and a loaded dispatcher.
func New(chat *openai.Client, model string, dispatcher *Dispatcher) *Agent {
	return &Agent{
		chat:       chat,
		model:      model,
		dispatcher: dispatcher,
	}
}

// Run asks one question and keeps executing the model's tool calls
// until it answers in text. Returns the final answer.
func (a *Agent) Run(ctx context.Context, question string) (string, error) {
	runID := uuid.New().String()
	logger := log.With().Str("run_id", runID).Logger()
	logger.Info().Str("question", question).Msg("starting agent run")

	messages := []openai.ChatCompletionMessage{
		{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
		{Role: openai.ChatMessageRoleUser, Content: question},
	}

	for round := 0; round < maxToolRounds; round++ {
		resp, err := a.chat.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
			Model:    a.model,
			Messages: messages,
			Tools:    a.dispatcher.Tools(),
		})
		if err != nil {
			return "", errors.ChatFailed(err)
		}
		if len(resp.Choices) == 0 {
			return "", errors.ChatFailed(fmt.Errorf("response carried no choices"))
		}

		message := resp.Choices[0].Message
		if len(message.ToolCalls) == 0 {
			logger.Info().Int("rounds", round+1).Msg("agent run finished")
			return message.Content, nil
		}

		messages = append(messages, message)
		for _, call := range message.ToolCalls {
			logger.Info().
				Str("tool", call.Function.Name).
				Str("args", call.Function.Arguments).
				Msg("dispatching tool call")
			messages = append(messages, a.dispatcher.Dispatch(ctx, call))
		}
	}

	return "", errors.ChatFailed(fmt.Errorf("no final answer after %d tool rounds", maxToolRounds))
}
