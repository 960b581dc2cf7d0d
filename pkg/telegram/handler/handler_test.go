package handler

import (
	"context"
	"strings"
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/okhramov/llm-telegram-bot/pkg/domain"
)

func textUpdate(text string) *tgbotapi.Update {
	return &tgbotapi.Update{
		Message: &tgbotapi.Message{
			MessageID: 7,
			Chat:      &tgbotapi.Chat{ID: 1},
			Text:      text,
		},
	}
}

func TestIsCommand(t *testing.T) {
	tests := []struct {
		text    string
		command string
		want    bool
	}{
		{"/prompt pirate", "/prompt", true},
		{"/prompt", "/prompt", true},
		{"/prompts", "/prompt", false},
		{"/prompts", "/prompts", true},
		{"/prompt@my_bot pirate", "/prompt", true},
		{"  /prompt pirate", "/prompt", true},
		{"hello", "/prompt", false},
		{"", "/prompt", false},
	}

	for _, test := range tests {
		if got := isCommand(textUpdate(test.text), test.command); got != test.want {
			t.Errorf("isCommand(%q, %q) = %v, want %v", test.text, test.command, got, test.want)
		}
	}
}

func TestHelp_ListsOnlyRegisteredCommands(t *testing.T) {
	outCh := make(chan domain.Response, 1)
	NewHelp(outCh).Handle(context.Background(), textUpdate("/help"))

	response := <-outCh
	if !strings.Contains(response.Text, "/prompts") {
		t.Errorf("help text %q misses /prompts", response.Text)
	}
	if strings.Contains(response.Text, "/balance") {
		t.Errorf("help text %q advertises /balance, but no balance handler is registered", response.Text)
	}
}

func TestHelp_IncludesExtraCommands(t *testing.T) {
	outCh := make(chan domain.Response, 1)
	NewHelp(outCh, BalanceHelp).Handle(context.Background(), textUpdate("/help"))

	response := <-outCh
	if !strings.Contains(response.Text, "/balance") {
		t.Errorf("help text %q misses the registered /balance entry", response.Text)
	}
}

type stubSetPromptService struct {
	err     error
	gotName string
}

func (s *stubSetPromptService) SetSystemPrompt(_ context.Context, _ int64, name string) error {
	s.gotName = name
	return s.err
}

func TestSetPrompt_MissingName(t *testing.T) {
	outCh := make(chan domain.Response, 1)
	h := NewSetPrompt(&stubSetPromptService{}, outCh)

	h.Handle(context.Background(), textUpdate("/prompt"))

	response := <-outCh
	if !strings.Contains(response.Text, "provide a prompt name") {
		t.Errorf("response = %q, want a usage hint", response.Text)
	}
}

func TestSetPrompt_UnknownPrompt(t *testing.T) {
	outCh := make(chan domain.Response, 1)
	svc := &stubSetPromptService{err: domain.ErrPromptNotFound}
	h := NewSetPrompt(svc, outCh)

	h.Handle(context.Background(), textUpdate("/prompt missing-name"))

	response := <-outCh
	if response.Err != nil {
		t.Errorf("unknown prompt surfaced as Err, want a user-facing text")
	}
	if !strings.Contains(response.Text, "not found") {
		t.Errorf("response = %q, want a not-found message", response.Text)
	}
	if svc.gotName != "missing-name" {
		t.Errorf("service called with %q", svc.gotName)
	}
}

func TestSetPrompt_Success(t *testing.T) {
	outCh := make(chan domain.Response, 1)
	h := NewSetPrompt(&stubSetPromptService{}, outCh)

	h.Handle(context.Background(), textUpdate("/prompt pirate"))

	response := <-outCh
	if !strings.Contains(response.Text, `"pirate"`) {
		t.Errorf("response = %q, want confirmation naming the prompt", response.Text)
	}
}

type stubAddPromptService struct {
	gotName    string
	gotContent string
}

func (s *stubAddPromptService) SavePrompt(_ context.Context, name, content string) error {
	s.gotName, s.gotContent = name, content
	return nil
}

func TestAddPrompt(t *testing.T) {
	tests := []struct {
		text        string
		wantUsage   bool
		wantName    string
		wantContent string
	}{
		{"/addprompt pirate You are a pirate.", false, "pirate", "You are a pirate."},
		{"/addprompt pirate", true, "", ""},
		{"/addprompt", true, "", ""},
	}

	for _, test := range tests {
		outCh := make(chan domain.Response, 1)
		svc := &stubAddPromptService{}
		h := NewAddPrompt(svc, outCh)

		h.Handle(context.Background(), textUpdate(test.text))

		response := <-outCh
		if test.wantUsage {
			if !strings.HasPrefix(response.Text, "Usage:") {
				t.Errorf("Handle(%q) response = %q, want usage message", test.text, response.Text)
			}
			continue
		}
		if svc.gotName != test.wantName || svc.gotContent != test.wantContent {
			t.Errorf("Handle(%q) saved (%q, %q), want (%q, %q)",
				test.text, svc.gotName, svc.gotContent, test.wantName, test.wantContent)
		}
	}
}

type stubChatService struct {
	reply string
	err   error
}

func (s *stubChatService) Reply(context.Context, int64, string) (string, error) {
	return s.reply, s.err
}

func TestChat_CanHandle(t *testing.T) {
	tests := []struct {
		text string
		want bool
	}{
		{"hello there", true},
		{"/prompt pirate", false},
		{"/anything", false},
		{"", false},
	}

	h := NewChat(&stubChatService{}, nil)
	for _, test := range tests {
		if got := h.CanHandle(textUpdate(test.text)); got != test.want {
			t.Errorf("CanHandle(%q) = %v, want %v", test.text, got, test.want)
		}
	}
}

func TestChat_RepliesToOriginalMessage(t *testing.T) {
	outCh := make(chan domain.Response, 1)
	h := NewChat(&stubChatService{reply: "hello!"}, outCh)

	h.Handle(context.Background(), textUpdate("hi"))

	response := <-outCh
	if response.Text != "hello!" {
		t.Errorf("response text = %q", response.Text)
	}
	if response.ReplyToMessageID != 7 {
		t.Errorf("ReplyToMessageID = %d, want 7", response.ReplyToMessageID)
	}
}
