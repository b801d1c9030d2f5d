package service

import (
	"context"
	"errors"

	"github.com/openai/openai-go"
)

// systemPrompt pins the assistant to the game's domain. It is prepended to
// every conversation and never echoed back to the caller.
const systemPrompt = "Soy un asistente especializado en responder preguntas relacionadas exclusivamente con " +
	"el videojuego 'The Binding of Isaac: Repentance'. Mis respuestas serán claras, concisas " +
	"y enfocadas en proporcionar información útil a los jugadores sobre mecánicas, objetos, " +
	"enemigos, secretos, personajes y cualquier otro aspecto del juego. Respondo siempre con cortesía, " +
	"sin extenderme demasiado, para evitar abrumar al usuario."

// ChatMessage is one role-tagged turn of a conversation. Conversations are
// never persisted, they live for one request only.
type ChatMessage struct {
	Role    string `json:"role" binding:"required"`
	Content string `json:"content" binding:"required"`
}

type ChatService struct {
	client *openai.Client
	model  openai.ChatModel
}

func NewChatService(client *openai.Client) *ChatService {
	return &ChatService{client: client, model: openai.ChatModelGPT3_5Turbo}
}

// Complete forwards the conversation history, with the system prompt
// prepended, and returns the provider's single assistant reply. One shot, no
// retry, no streaming.
func (s *ChatService) Complete(ctx context.Context, history []ChatMessage) (*ChatMessage, error) {
	messages := make([]ChatMessage, 0, len(history)+1)
	messages = append(messages, ChatMessage{Role: "system", Content: systemPrompt})
	messages = append(messages, history...)

	params := openai.ChatCompletionNewParams{
		Messages: openai.F([]openai.ChatCompletionMessageParamUnion{}),
		Model:    openai.F(s.model),
	}
	for _, message := range messages {
		var content any = message.Content
		params.Messages.Value = append(params.Messages.Value, openai.ChatCompletionMessageParam{
			Role:    openai.F(openai.ChatCompletionMessageParamRole(message.Role)),
			Content: openai.F(content),
		})
	}

	completion, err := s.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return nil, Upstream("Error interacting with OpenAI API", err)
	}
	if len(completion.Choices) == 0 {
		return nil, Upstream("Error interacting with OpenAI API", errors.New("empty completion"))
	}

	return &ChatMessage{
		Role:    "assistant",
		Content: completion.Choices[0].Message.Content,
	}, nil
}
