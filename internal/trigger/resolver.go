// Package trigger decides which bots answer a message.
//
// Precedence: an @all broadcast, then named @mentions, then keywords. The
// first rule yielding a non-empty set wins. A bot without valid keywords
// answers every message that reaches the keyword stage.
package trigger

import (
	"regexp"
	"strings"

	"github.com/jichangee/ai-chat/internal/model"
)

// DefaultPunctuation terminates a mention in scripts written without spaces.
const DefaultPunctuation = "，。！？、"

var (
	broadcastPattern = regexp.MustCompile(`(?i)@all(?:[\s\p{Zs}]|$)`)
	mentionToken     = regexp.MustCompile(`@([^\s\p{Zs}]+)`)
)

type Resolver struct {
	boundary string
}

type Option func(*Resolver)

// WithPunctuation replaces the punctuation set accepted after a mention.
func WithPunctuation(set string) Option {
	return func(r *Resolver) {
		r.boundary = boundaryPattern(set)
	}
}

func New(opts ...Option) *Resolver {
	r := &Resolver{boundary: boundaryPattern(DefaultPunctuation)}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve returns the bots to invoke for text, in roster order.
func (r *Resolver) Resolve(text string, bots []model.Bot) []model.Bot {
	if broadcastPattern.MatchString(text) {
		return active(bots)
	}

	if mentioned := r.mentioned(text, bots); len(mentioned) > 0 {
		return mentioned
	}

	return byKeyword(text, bots)
}

// Triggers reports whether Resolve would return at least one bot. Callers
// use it to pick streaming or batch mode before resolution proper.
func (r *Resolver) Triggers(text string, bots []model.Bot) bool {
	return len(r.Resolve(text, bots)) > 0
}

// IsMentioned reports whether text contains an @mention of name.
func (r *Resolver) IsMentioned(text, name string) bool {
	name = strings.TrimSpace(name)
	if name == "" {
		return false
	}
	pattern, err := regexp.Compile(`(?i)@` + regexp.QuoteMeta(name) + r.boundary)
	if err != nil {
		return false
	}
	return pattern.MatchString(text)
}

func (r *Resolver) mentioned(text string, bots []model.Bot) []model.Bot {
	var out []model.Bot
	for _, bot := range bots {
		if bot.IsActive && r.IsMentioned(text, bot.Name) {
			out = append(out, bot)
		}
	}
	return out
}

func byKeyword(text string, bots []model.Bot) []model.Bot {
	lower := strings.ToLower(text)

	var out []model.Bot
	for _, bot := range bots {
		if !bot.IsActive {
			continue
		}
		keywords := bot.ValidKeywords()
		if len(keywords) == 0 || containsAny(lower, keywords) {
			out = append(out, bot)
		}
	}
	return out
}

func containsAny(lowerText string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(lowerText, strings.ToLower(kw)) {
			return true
		}
	}
	return false
}

func active(bots []model.Bot) []model.Bot {
	var out []model.Bot
	for _, bot := range bots {
		if bot.IsActive {
			out = append(out, bot)
		}
	}
	return out
}

func boundaryPattern(punctuation string) string {
	alts := []string{`[\s\p{Zs}]`, `$`}
	for _, r := range punctuation {
		alts = append(alts, regexp.QuoteMeta(string(r)))
	}
	return "(?:" + strings.Join(alts, "|") + ")"
}

// ExtractMentions lists the @-tokens of text; "all" is reported once, first.
func ExtractMentions(text string) []string {
	var out []string
	if broadcastPattern.MatchString(text) {
		out = append(out, "all")
	}
	for _, m := range mentionToken.FindAllStringSubmatch(text, -1) {
		if strings.EqualFold(m[1], "all") {
			continue
		}
		out = append(out, m[1])
	}
	return out
}
