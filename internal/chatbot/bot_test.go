package chatbot_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nikolayk812/apnadairy/internal/chatbot"
)

func TestReply(t *testing.T) {
	bot := chatbot.NewDefault()

	tests := []struct {
		name         string
		prompt       string
		wantContains string
	}{
		{
			name:         "keyword match",
			prompt:       "do you deliver on sundays?",
			wantContains: "every morning between 6 and 9 AM",
		},
		{
			name:         "case insensitive",
			prompt:       "What Is The PRICE Of Milk?",
			wantContains: "50 rupees per litre",
		},
		{
			name:         "keyword inside a longer word",
			prompt:       "tell me about murrah buffaloes",
			wantContains: "Murrah",
		},
		{
			name:         "earlier rule wins when several match",
			prompt:       "what is the delivery price?",
			wantContains: "50 rupees per litre",
		},
		{
			name:         "no match falls back",
			prompt:       "what is the weather like today?",
			wantContains: "I am not fully sure",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			answer, err := bot.Reply(tt.prompt)
			require.NoError(t, err)
			assert.Contains(t, answer, tt.wantContains)
		})
	}
}

func TestReplyEmptyPrompt(t *testing.T) {
	bot := chatbot.NewDefault()

	for _, prompt := range []string{"", "   ", "\n\t"} {
		_, err := bot.Reply(prompt)
		require.ErrorIs(t, err, chatbot.ErrEmptyPrompt)
	}
}

func TestReplyCustomRules(t *testing.T) {
	bot := chatbot.New([]chatbot.Rule{
		{Keywords: []string{"hello"}, Answer: "hi there"},
	}, "no idea")

	answer, err := bot.Reply("well HELLO!")
	require.NoError(t, err)
	assert.Equal(t, "hi there", answer)

	answer, err = bot.Reply("goodbye")
	require.NoError(t, err)
	assert.Equal(t, "no idea", answer)
}
