package services

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/kindredchat/kindred/kindred/config"
	"github.com/kindredchat/kindred/kindred/database/models"
	"github.com/kindredchat/kindred/kindred/favorability"
	openai "github.com/sashabaranov/go-openai"
)

// ReplyService wraps the chat-completion backend. The engine treats text
// generation as an opaque collaborator; this is the one place that knows
// about the model API.
type ReplyService struct {
	client *openai.Client
	model  string
}

func NewReplyService(apiKey, baseURL, model string) *ReplyService {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	if model == "" {
		model = openai.GPT4oMini
	}
	return &ReplyService{
		client: openai.NewClientWithConfig(cfg),
		model:  model,
	}
}

// GenerateReply produces the character's next message, colored by the
// current relationship stage and mood.
func (s *ReplyService) GenerateReply(ctx context.Context, relation *models.Relation, userMessage string) (string, error) {
	stage := favorability.StageByIndex(relation.Stage)
	system := fmt.Sprintf(
		"You are the AI companion %q chatting with a user. "+
			"Your relationship stage is %q (%s) and your current mood is %q. "+
			"Stay in character and let the stage and mood shape your tone.",
		relation.CharacterID, stage.Label, stage.Description, relation.Mood,
	)

	resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: s.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: userMessage},
		},
	})
	if err != nil {
		return "", fmt.Errorf("failed to generate reply: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no completion choices returned")
	}
	return resp.Choices[0].Message.Content, nil
}

// ScoreMessage asks the model to rate how a user message lands with the
// character, as a small signed favorability delta.
func (s *ReplyService) ScoreMessage(ctx context.Context, userMessage string) (int, error) {
	system := fmt.Sprintf(
		"Rate how the following chat message affects the speaker's relationship with an AI companion. "+
			"Answer with a single integer between %d and %d: negative for hurtful or dismissive messages, "+
			"positive for warm or engaged ones, 0 for neutral small talk. Output only the number.",
		config.MinMessageDelta, config.MaxMessageDelta,
	)

	resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       s.model,
		Temperature: 0,
		MaxTokens:   4,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: userMessage},
		},
	})
	if err != nil {
		return 0, fmt.Errorf("failed to score message: %w", err)
	}
	if len(resp.Choices) == 0 {
		return 0, fmt.Errorf("no completion choices returned")
	}

	delta, err := strconv.Atoi(strings.TrimSpace(resp.Choices[0].Message.Content))
	if err != nil {
		return 0, fmt.Errorf("unparseable score %q: %w", resp.Choices[0].Message.Content, err)
	}
	if delta < config.MinMessageDelta {
		delta = config.MinMessageDelta
	}
	if delta > config.MaxMessageDelta {
		delta = config.MaxMessageDelta
	}
	return delta, nil
}
