package service

import (
	"encoding/json"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/idea-brand-coach/internal/ai"
	"github.com/MKhiriev/idea-brand-coach/internal/persona"
	"github.com/MKhiriev/idea-brand-coach/models"
)

// MaxTitleRunes caps generated session titles.
const MaxTitleRunes = 60

const (
	fieldsOpenTag  = "<fields>"
	fieldsCloseTag = "</fields>"
)

const titleInstruction = "Write a short title of at most six words for a conversation that starts " +
	"with the exchange below. Answer with the title only, without quotes or a trailing period."

func buildChatPrompt(
	p persona.Persona,
	session models.ChatSession,
	brandFields []models.FieldRecord,
	history []models.ChatMessage,
	userMessage models.ChatMessage,
	useKnowledge bool,
) []ai.Message {
	var sys strings.Builder
	sys.WriteString(p.SystemPrompt)

	if session.FieldLabel != nil || session.PageContext != nil {
		sys.WriteString("\n\nThe user opened this chat from ")
		switch {
		case session.FieldLabel != nil && session.PageContext != nil:
			fmt.Fprintf(&sys, "the %q field on the %s page.", *session.FieldLabel, *session.PageContext)
		case session.FieldLabel != nil:
			fmt.Fprintf(&sys, "the %q field.", *session.FieldLabel)
		default:
			fmt.Fprintf(&sys, "the %s page.", *session.PageContext)
		}
	}

	if len(brandFields) > 0 {
		sys.WriteString("\n\nThe user's current brand fields:\n")
		for _, f := range brandFields {
			if strings.TrimSpace(f.Content) == "" {
				continue
			}
			fmt.Fprintf(&sys, "- %s (%s): %s\n", f.FieldIdentifier, f.Category, f.Content)
		}
	}

	if useKnowledge && len(p.Knowledge) > 0 {
		sys.WriteString("\n\nReference knowledge:\n")
		for _, k := range p.Knowledge {
			fmt.Fprintf(&sys, "- %s\n", k)
		}
	}

	if len(p.ExtractableFields) > 0 {
		sys.WriteString("\n\nWhen the conversation gives you a clear value for one of these fields, ")
		sys.WriteString("append it after your answer as " + fieldsOpenTag + `{"identifier": "value"}` + fieldsCloseTag + ":\n")
		for _, f := range p.ExtractableFields {
			fmt.Fprintf(&sys, "- %s: %s\n", f.Identifier, f.Description)
		}
	}

	if len(history) > maxHistoryMessages {
		history = history[len(history)-maxHistoryMessages:]
	}

	prompt := make([]ai.Message, 0, len(history)+2)
	prompt = append(prompt, ai.Message{Role: string(models.RoleSystem), Content: strings.TrimSpace(sys.String())})
	for _, m := range history {
		if m.Role == models.RoleSystem {
			continue
		}
		prompt = append(prompt, ai.Message{Role: string(m.Role), Content: m.Content})
	}
	prompt = append(prompt, ai.Message{Role: string(models.RoleUser), Content: userContent(userMessage)})

	return prompt
}

// userContent renders attached images as links after the text.
func userContent(m models.ChatMessage) string {
	if m.Metadata == nil || m.Metadata.Kind != models.MetadataImageAttachments {
		return m.Content
	}

	var b strings.Builder
	b.WriteString(m.Content)
	b.WriteString("\n\nAttached images:")
	for _, img := range m.Metadata.Images {
		b.WriteString("\n- ")
		if img.Name != "" {
			b.WriteString(img.Name + ": ")
		}
		b.WriteString(img.URL)
	}
	return b.String()
}

// extractFields strips a trailing <fields>{...}</fields> block and returns
// the values of the identifiers p may fill, in catalog order.
func extractFields(content string, p persona.Persona) (string, []models.ExtractedField) {
	trimmed := strings.TrimSpace(content)
	if !strings.HasSuffix(trimmed, fieldsCloseTag) {
		return trimmed, nil
	}

	start := strings.LastIndex(trimmed, fieldsOpenTag)
	if start < 0 {
		return trimmed, nil
	}

	block := trimmed[start+len(fieldsOpenTag) : len(trimmed)-len(fieldsCloseTag)]
	answer := strings.TrimSpace(trimmed[:start])

	var values map[string]any
	if err := json.Unmarshal([]byte(block), &values); err != nil {
		return answer, nil
	}

	var extracted []models.ExtractedField
	for _, f := range p.ExtractableFields {
		raw, ok := values[f.Identifier]
		if !ok {
			continue
		}
		value, ok := raw.(string)
		if !ok || strings.TrimSpace(value) == "" {
			continue
		}
		extracted = append(extracted, models.ExtractedField{
			FieldIdentifier: f.Identifier,
			Category:        f.Category,
			Value:           strings.TrimSpace(value),
		})
	}

	return answer, extracted
}

func buildTitlePrompt(req models.TitleRequest) []ai.Message {
	var b strings.Builder
	fmt.Fprintf(&b, "User: %s", req.UserMessage)
	if req.AssistantResponse != "" {
		fmt.Fprintf(&b, "\nAssistant: %s", req.AssistantResponse)
	}

	return []ai.Message{
		{Role: string(models.RoleSystem), Content: titleInstruction},
		{Role: string(models.RoleUser), Content: b.String()},
	}
}

// cleanTitle keeps the first line, drops wrapping quotes and a trailing
// period, collapses whitespace and caps the length.
func cleanTitle(raw string) string {
	title := strings.TrimSpace(raw)
	if i := strings.IndexAny(title, "\r\n"); i >= 0 {
		title = title[:i]
	}

	title = strings.TrimPrefix(title, "Title:")
	title = strings.Trim(strings.TrimSpace(title), "\"'`“”‘’*")
	title = strings.TrimRight(title, ".")
	title = strings.Join(strings.Fields(title), " ")

	if utf8.RuneCountInString(title) > MaxTitleRunes {
		runes := []rune(title)
		title = strings.TrimSpace(string(runes[:MaxTitleRunes]))
	}

	return title
}
