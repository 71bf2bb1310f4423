// Package caption wraps the completion service behind two stateless
// request/response operations: generating a caption from a topic and
// rewriting an existing caption shorter. Both are pure functions of their
// input plus the external credential state; nothing here touches storage.
package caption

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/arkodeep/socially/backend/internal/apperr"
	"go.uber.org/zap"
)

// Message roles mirror the completion service's role-tagged chat shape.
const (
	RoleSystem = "system"
	RoleUser   = "user"
)

type Message struct {
	Role    string
	Content string
}

// Params are the generation parameters forwarded to the completion call.
type Params struct {
	Temperature float32
	TopP        float32
	MaxTokens   int32
}

// Client is the completion service collaborator. It may fail with
// auth/rate-limit/timeout errors; the assistant reports those as
// generation failures.
type Client interface {
	Complete(ctx context.Context, messages []Message, params Params) (string, error)
}

// Assistant implements caption generation and improvement on top of a
// Client. A nil client means no credential is configured.
type Assistant struct {
	client Client
	log    *zap.Logger
}

func NewAssistant(client Client, log *zap.Logger) *Assistant {
	if log == nil {
		log = zap.NewNop()
	}
	return &Assistant{client: client, log: log}
}

// Configured reports whether a completion credential is available.
func (a *Assistant) Configured() bool { return a.client != nil }

// Generate produces a caption for the topic. Line count, tone and emoji
// use are derived from free-text cues in the topic itself. The result is
// rewritten to first person and trimmed to the requested line count; a
// wrong line count triggers a single strict retry before the best-effort
// trim.
func (a *Assistant) Generate(ctx context.Context, topic string) (string, error) {
	topic = strings.TrimSpace(topic)
	if topic == "" {
		return "", apperr.New(apperr.CodeValidation, "please enter what you want to post about")
	}
	if a.client == nil {
		return "", apperr.New(apperr.CodeUnavailable, "AI service is not configured")
	}

	cues := parseCues(topic)
	text, err := a.client.Complete(ctx, []Message{
		{Role: RoleSystem, Content: generateSystemPrompt(cues)},
		{Role: RoleUser, Content: fmt.Sprintf("Write exactly %d first-person %s line(s) about: %s", cues.Lines, cues.Tone, topic)},
	}, Params{Temperature: 0.75, TopP: 0.95, MaxTokens: 120})
	if err != nil {
		return "", apperr.Wrap(apperr.CodeGeneration, "failed to generate caption", err)
	}

	result := makeFirstPerson(strings.TrimSpace(text))
	if len(nonEmptyLines(result)) != cues.Lines {
		a.log.Debug("caption line count off, retrying strict",
			zap.Int("want", cues.Lines),
			zap.Int("got", len(nonEmptyLines(result))))
		retry, rerr := a.client.Complete(ctx, []Message{
			{Role: RoleSystem, Content: strictSystemPrompt(cues)},
			{Role: RoleUser, Content: "Topic: " + topic},
		}, Params{Temperature: 0.6, TopP: 0.9, MaxTokens: 80})
		if rerr == nil && strings.TrimSpace(retry) != "" {
			result = makeFirstPerson(strings.TrimSpace(retry))
		}
	}

	result = trimToLines(result, cues.Lines)
	if result == "" {
		return "", apperr.New(apperr.CodeGeneration, "could not generate a caption")
	}
	return result, nil
}

// Improve rewrites an existing caption shorter and punchier while keeping
// its meaning, with the same first-person normalization and length
// enforcement as Generate.
func (a *Assistant) Improve(ctx context.Context, existing string) (string, error) {
	existing = strings.TrimSpace(existing)
	if existing == "" {
		return "", apperr.New(apperr.CodeValidation, "caption cannot be empty")
	}
	if a.client == nil {
		return "", apperr.New(apperr.CodeUnavailable, "AI service is not configured")
	}

	cues := parseCues(existing)
	text, err := a.client.Complete(ctx, []Message{
		{Role: RoleSystem, Content: improveSystemPrompt(cues)},
		{Role: RoleUser, Content: fmt.Sprintf("Make this caption at most %d line(s), first-person, and better: %q", cues.Lines, existing)},
	}, Params{Temperature: 0.7, TopP: 0.9, MaxTokens: 100})
	if err != nil {
		return "", apperr.Wrap(apperr.CodeGeneration, "failed to improve caption", err)
	}

	result := trimToLines(makeFirstPerson(strings.TrimSpace(text)), cues.Lines)
	if result == "" {
		return "", apperr.New(apperr.CodeGeneration, "could not improve the caption")
	}
	return result, nil
}

func generateSystemPrompt(c constraints) string {
	var b strings.Builder
	fmt.Fprintf(&b, "You are a creative social media user writing a personal post. Write a %s caption from FIRST-PERSON perspective.\n\n", c.Tone)
	b.WriteString("STRICT RULES:\n")
	fmt.Fprintf(&b, "1. Write EXACTLY %d line(s). Each line is a complete thought.\n", c.Lines)
	b.WriteString("2. Use FIRST-PERSON ONLY: I, me, my, mine. NEVER use \"you\", \"your\", \"yours\".\n")
	b.WriteString("3. Start with the main point immediately. Write naturally, no corporate speak.\n")
	b.WriteString("4. NO hashtags. NO explanations, just the caption.\n")
	if c.Emoji {
		b.WriteString("5. End with 1-2 relevant emojis.\n")
	} else {
		b.WriteString("5. Do NOT use any emojis.\n")
	}
	return b.String()
}

func strictSystemPrompt(c constraints) string {
	emoji := "End with 1-2 emojis."
	if !c.Emoji {
		emoji = "No emojis."
	}
	return fmt.Sprintf("STRICT: Write EXACTLY %d line(s). Use FIRST-PERSON (I/me/my). Each line complete. No explanations. %s", c.Lines, emoji)
}

func improveSystemPrompt(c constraints) string {
	return fmt.Sprintf(`You are a social media editor who makes captions SHORTER and MORE IMPACTFUL.

STRICT RULES:
1. MAXIMUM %d line(s). Count your lines before responding.
2. Write from FIRST-PERSON perspective (I/me/my, NOT you/your).
3. Keep the original meaning, remove fluff and filler words.
4. NEVER mention that you are improving it. Just give the caption, no explanations.`, c.Lines)
}

var firstPersonRewrites = []struct {
	pattern     *regexp.Regexp
	replacement string
}{
	{regexp.MustCompile(`(?i)\byou should\b`), "I'll"},
	{regexp.MustCompile(`\bYou're\b`), "I'm"},
	{regexp.MustCompile(`\byou're\b`), "I'm"},
	{regexp.MustCompile(`\bYour\b`), "My"},
	{regexp.MustCompile(`\byour\b`), "my"},
	{regexp.MustCompile(`\bYou\b`), "I"},
	{regexp.MustCompile(`\byou\b`), "me"},
}

// makeFirstPerson rewrites second-person phrasing to first person with
// word-boundary replacements. Contractions and "you should" are handled
// before the bare pronouns so they are not split apart.
func makeFirstPerson(text string) string {
	for _, r := range firstPersonRewrites {
		text = r.pattern.ReplaceAllString(text, r.replacement)
	}
	return text
}

func nonEmptyLines(text string) []string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, strings.TrimSpace(line))
		}
	}
	return lines
}

// trimToLines keeps at most n non-empty lines.
func trimToLines(text string, n int) string {
	lines := nonEmptyLines(text)
	if len(lines) > n {
		lines = lines[:n]
	}
	return strings.Join(lines, "\n")
}
