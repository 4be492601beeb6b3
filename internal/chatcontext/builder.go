// Package chatcontext assembles the bounded conversation a responder sees.
package chatcontext

import (
	"fmt"
	"sort"

	"github.com/jichangee/ai-chat/internal/model"
)

const DefaultQuotePreviewRunes = 100

type Options struct {
	// Limit bounds the history window; the quoted message comes on top.
	Limit             int
	QuotePreviewRunes int
}

type Result struct {
	History []model.RoleMessage
	// Prompt is the text responders receive; the stored user message
	// keeps the original text.
	Prompt string
}

// Build orders history chronologically whatever order it came in, keeps the
// most recent user/ai messages, and prepends the quoted message when it is
// not already part of the window.
func Build(history []model.Message, quoted *model.Message, text string, opts Options) Result {
	window := recent(history, opts.Limit)

	if quoted != nil && !containsID(window, quoted) {
		window = append([]model.Message{*quoted}, window...)
	}

	out := make([]model.RoleMessage, 0, len(window))
	for _, msg := range window {
		out = append(out, model.RoleMessage{Role: roleOf(msg), Content: msg.Content})
	}

	prompt := text
	if quoted != nil {
		prompt = QuotePrefix(*quoted, opts.QuotePreviewRunes) + "\n" + text
	}

	return Result{History: out, Prompt: prompt}
}

// QuotePrefix renders the reply marker put in front of the user's text.
func QuotePrefix(quoted model.Message, previewRunes int) string {
	if previewRunes <= 0 {
		previewRunes = DefaultQuotePreviewRunes
	}
	preview := []rune(quoted.Content)
	if len(preview) > previewRunes {
		preview = preview[:previewRunes]
	}
	return fmt.Sprintf("[reply to %s: \"%s...\"]", quoted.SenderName, string(preview))
}

func recent(history []model.Message, limit int) []model.Message {
	eligible := make([]model.Message, 0, len(history))
	for _, msg := range history {
		if msg.SenderType != model.SenderUser && msg.SenderType != model.SenderAI {
			continue
		}
		if msg.InFlight() {
			continue
		}
		eligible = append(eligible, msg)
	}

	sort.SliceStable(eligible, func(i, j int) bool {
		return eligible[i].CreatedAt.Before(eligible[j].CreatedAt)
	})

	if limit > 0 && len(eligible) > limit {
		eligible = eligible[len(eligible)-limit:]
	}
	return eligible
}

func containsID(window []model.Message, target *model.Message) bool {
	for _, msg := range window {
		if msg.ID == target.ID {
			return true
		}
	}
	return false
}

// roleOf maps the log's senders onto chat roles. Quoted feed items speak as
// the user, since they are material the user points the bots at.
func roleOf(msg model.Message) string {
	if msg.SenderType == model.SenderAI {
		return model.RoleAssistant
	}
	return model.RoleUser
}
