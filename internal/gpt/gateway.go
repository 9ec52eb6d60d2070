package gpt

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/hammamikhairi/cozinha/internal/domain"
	"github.com/hammamikhairi/cozinha/internal/logger"
)

// ErrEmptyReply is returned when the model answers with nothing usable.
var ErrEmptyReply = errors.New("gpt: empty reply")

// Gateway turns the three AI features into chat requests. It is the
// only place prompts are built and replies are interpreted.
type Gateway struct {
	chat          Completer
	log           *logger.Logger
	suggestTokens int
}

var _ domain.Assistant = (*Gateway)(nil)

// GatewayOption configures the Gateway.
type GatewayOption func(*Gateway)

// WithSuggestionTokens caps the reply length of suggestion requests.
// Zero keeps the client default.
func WithSuggestionTokens(n int) GatewayOption {
	return func(g *Gateway) { g.suggestTokens = n }
}

// NewGateway creates a gateway over the given completer.
func NewGateway(chat Completer, log *logger.Logger, opts ...GatewayOption) *Gateway {
	g := &Gateway{chat: chat, log: log}
	for _, o := range opts {
		o(g)
	}
	return g
}

// Substitutions asks for three common substitutes for an ingredient.
func (g *Gateway) Substitutions(ctx context.Context, ingredient string) (string, error) {
	ingredient = strings.TrimSpace(ingredient)
	if ingredient == "" {
		return "", fmt.Errorf("gpt: substitutions: %w", domain.ErrNothingToSuggest)
	}

	reply, err := g.ask(ctx, fmt.Sprintf(promptSubstitutions, ingredient), Temperature(temperatureSubstitutions))
	if err != nil {
		g.log.Error("gpt: substitutions for %q: %v", ingredient, err)
		return "", err
	}
	return reply, nil
}

// NutritionSummary asks for a short nutritional profile of a recipe.
// ingredientsSummary is usually built with IngredientsSummary.
func (g *Gateway) NutritionSummary(ctx context.Context, title, ingredientsSummary string) (string, error) {
	reply, err := g.ask(ctx, fmt.Sprintf(promptNutrition, title, ingredientsSummary), Temperature(temperatureNutrition))
	if err != nil {
		g.log.Error("gpt: nutrition for %q: %v", title, err)
		return "", err
	}
	return reply, nil
}

// SuggestFromIngredients asks for two quick recipes that use the given
// ingredients. Any failure yields an empty, non-nil slice.
func (g *Gateway) SuggestFromIngredients(ctx context.Context, ingredients []string) []domain.Suggestion {
	cleaned := make([]string, 0, len(ingredients))
	for _, in := range ingredients {
		if in = strings.TrimSpace(in); in != "" {
			cleaned = append(cleaned, in)
		}
	}
	if len(cleaned) == 0 {
		g.log.Debug("gpt: suggestions skipped, no ingredients")
		return []domain.Suggestion{}
	}

	opts := []CallOption{Temperature(temperatureSuggestions)}
	if g.suggestTokens > 0 {
		opts = append(opts, MaxTokens(g.suggestTokens))
	}
	reply, err := g.ask(ctx, fmt.Sprintf(promptSuggestions, strings.Join(cleaned, ", ")), opts...)
	if err != nil {
		g.log.Error("gpt: suggestions: %v", err)
		return []domain.Suggestion{}
	}

	out, err := ParseSuggestions(reply)
	if err != nil {
		g.log.Error("gpt: failed to parse suggestions JSON: %v\nraw: %s", err, truncate(reply, 300))
		return []domain.Suggestion{}
	}
	g.log.Debug("gpt: %d suggestions", len(out))
	return out
}

func (g *Gateway) ask(ctx context.Context, prompt string, opts ...CallOption) (string, error) {
	reply, err := g.chat.Chat(ctx, []Message{
		TextMessage(RoleSystem, PromptSystem),
		TextMessage(RoleUser, prompt),
	}, opts...)
	if err != nil {
		return "", err
	}
	reply = strings.TrimSpace(reply)
	if reply == "" {
		return "", ErrEmptyReply
	}
	return reply, nil
}

// IngredientsSummary renders a recipe's ingredients the way the
// nutrition prompt expects: "200g Espaguete, 3unid Gemas de ovo".
func IngredientsSummary(r domain.Recipe) string {
	parts := make([]string, 0, len(r.Ingredients))
	for _, in := range r.Ingredients {
		parts = append(parts, domain.FormatAmount(in.Amount)+in.Unit+" "+in.Name)
	}
	return strings.Join(parts, ", ")
}

// ── Parsing ──────────────────────────────────────────────────────

// ParseSuggestions decodes a suggestions reply. It accepts a bare array
// or an object wrapping one, with or without a code fence. Every element
// must carry non-empty title, description and time strings; otherwise
// the whole reply is rejected.
func ParseSuggestions(raw string) ([]domain.Suggestion, error) {
	raw = stripCodeFence(raw)

	items, err := suggestionArray([]byte(raw))
	if err != nil {
		return nil, err
	}

	out := make([]domain.Suggestion, 0, len(items))
	for i, item := range items {
		var fields map[string]any
		if err := json.Unmarshal(item, &fields); err != nil {
			return nil, fmt.Errorf("item %d: %w", i, err)
		}

		var s domain.Suggestion
		for _, f := range []struct {
			key string
			dst *string
		}{
			{"title", &s.Title},
			{"description", &s.Description},
			{"time", &s.Time},
		} {
			v, ok := fields[f.key].(string)
			if !ok || strings.TrimSpace(v) == "" {
				return nil, fmt.Errorf("item %d: missing %q", i, f.key)
			}
			*f.dst = strings.TrimSpace(v)
		}
		out = append(out, s)
	}
	return out, nil
}

// suggestionArray finds the array of items: either the document itself
// or the first array-valued field of a top-level object.
func suggestionArray(data []byte) ([]json.RawMessage, error) {
	var items []json.RawMessage
	err := json.Unmarshal(data, &items)
	if err == nil {
		return items, nil
	}

	var obj map[string]json.RawMessage
	if json.Unmarshal(data, &obj) != nil {
		return nil, err
	}

	keys := make([]string, 0, len(obj))
	for k := range obj {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if json.Unmarshal(obj[k], &items) == nil {
			return items, nil
		}
	}
	return nil, errors.New("no array in reply object")
}

// stripCodeFence removes markdown code fences (```json ... ```) that
// models sometimes wrap around JSON despite instructions.
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```") {
		// Remove opening fence line.
		if idx := strings.Index(s, "\n"); idx != -1 {
			s = s[idx+1:]
		}
		// Remove closing fence.
		if idx := strings.LastIndex(s, "```"); idx != -1 {
			s = s[:idx]
		}
	}
	return strings.TrimSpace(s)
}
