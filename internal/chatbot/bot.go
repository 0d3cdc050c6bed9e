package chatbot

import (
	"errors"
	"strings"
)

var ErrEmptyPrompt = errors.New("prompt is required")

// Rule maps a list of keyword substrings to one canned answer.
type Rule struct {
	Keywords []string
	Answer   string
}

// Bot is a scripted FAQ assistant: an ordered rule list scanned linearly
// against the lowercased prompt, first matching keyword wins, with a fixed
// fallback answer when nothing matches.
type Bot struct {
	rules    []Rule
	fallback string
}

func New(rules []Rule, fallback string) *Bot {
	return &Bot{rules: rules, fallback: fallback}
}

func (b *Bot) Reply(prompt string) (string, error) {
	if strings.TrimSpace(prompt) == "" {
		return "", ErrEmptyPrompt
	}

	lowered := strings.ToLower(prompt)
	for _, rule := range b.rules {
		for _, keyword := range rule.Keywords {
			if strings.Contains(lowered, keyword) {
				return rule.Answer, nil
			}
		}
	}

	return b.fallback, nil
}
