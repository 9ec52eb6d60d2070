// Package conversation turns typed commands into intents and prints
// notifications for the terminal.
package conversation

import (
	"regexp"
	"strings"

	"github.com/hammamikhairi/cozinha/internal/logger"
)

// KeywordParser matches user input to intents using keywords and simple
// patterns. English and Portuguese keywords are both accepted.
type KeywordParser struct {
	log      *logger.Logger
	patterns []patternRule
}

// patternRule maps a regex to an intent. When the regex has a capture
// group, its first group becomes the payload.
type patternRule struct {
	regex  *regexp.Regexp
	intent IntentType
}

// NewKeywordParser creates a keyword-based intent parser.
func NewKeywordParser(log *logger.Logger) *KeywordParser {
	p := &KeywordParser{log: log}
	p.patterns = []patternRule{
		{regexp.MustCompile(`(?i)^(?:help|h|ajuda|\?)$`), IntentHelp},
		{regexp.MustCompile(`(?i)^(?:quit|exit|q|sair)$`), IntentQuit},

		{regexp.MustCompile(`(?i)^(?:list|ls|recipes|home|receitas|inicio|início)$`), IntentList},
		{regexp.MustCompile(`(?i)^(?:favorites|favs|favoritos)$`), IntentFavorites},
		{regexp.MustCompile(`(?i)^(?:search|find|buscar|busca)(?:\s+(.*))?$`), IntentSearch},
		{regexp.MustCompile(`(?i)^(?:category|cat|categoria)\s+(.+)$`), IntentCategory},
		{regexp.MustCompile(`(?i)^(?:difficulty|diff|dificuldade)\s+(.+)$`), IntentDifficulty},
		{regexp.MustCompile(`(?i)^(?:time|max|tempo)\s+(\d+)\s*(?:m|min)?$`), IntentMaxTime},
		{regexp.MustCompile(`(?i)^(?:reset|clear filters|limpar filtros|limpar)$`), IntentResetFilters},
		{regexp.MustCompile(`(?i)^(?:show|open|select|ver|abrir)\s+(.+)$`), IntentSelect},
		{regexp.MustCompile(`(?i)^(?:back|voltar)$`), IntentBack},
		{regexp.MustCompile(`(?i)^(?:fav|favorite|favoritar)(?:\s+(.+))?$`), IntentToggleFavorite},
		{regexp.MustCompile(`(?i)^(?:new|add recipe|nova|nova receita)\s+(.+)$`), IntentNewRecipe},
		{regexp.MustCompile(`(?i)^(?:profile|me|perfil)$`), IntentProfile},

		{regexp.MustCompile(`(?i)^(?:cook|start|cozinhar|começar)(?:\s+(.+))?$`), IntentStartCooking},
		{regexp.MustCompile(`(?i)^(?:next|n|done|próximo|proximo)$`), IntentNext},
		{regexp.MustCompile(`(?i)^(?:prev|previous|p|anterior)$`), IntentPrev},
		{regexp.MustCompile(`(?i)^(?:timer|t|pause|resume|pausar|iniciar)$`), IntentToggleTimer},
		{regexp.MustCompile(`(?i)^(?:reset timer|rt|reiniciar)$`), IntentResetTimer},
		{regexp.MustCompile(`(?i)^(?:finish|concluir|finalizar)$`), IntentFinish},
		{regexp.MustCompile(`(?i)^(?:stop|close|fechar|parar)$`), IntentStopCooking},
		{regexp.MustCompile(`(?i)^(?:status|where|progress|progresso)$`), IntentStatus},

		{regexp.MustCompile(`(?i)^(?:shop clear|clear shop|limpar lista)$`), IntentShopClear},
		{regexp.MustCompile(`(?i)^(?:shop|shopping|compras|lista)$`), IntentShopList},
		{regexp.MustCompile(`(?i)^(?:shop|buy|comprar)\s+(.+)$`), IntentShopAdd},

		{regexp.MustCompile(`(?i)^(?:sub|substitute|substituir)\s+(.+)$`), IntentSubstitute},
		{regexp.MustCompile(`(?i)^(?:nutrition|nutri|nutrição|nutricao)$`), IntentNutrition},
		{regexp.MustCompile(`(?i)^(?:suggest|ideas|sugerir|sugestões|sugestoes)(?:\s+(.+))?$`), IntentSuggest},
	}
	return p
}

// Parse converts user input into an intent.
func (p *KeywordParser) Parse(input string) Intent {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return Intent{Type: IntentUnknown}
	}

	p.log.Debug("parsing input: %q", trimmed)

	// A bare number opens the recipe at that position in the list.
	if len(trimmed) <= 3 && isDigits(trimmed) {
		return Intent{Type: IntentSelect, Payload: trimmed}
	}

	for _, rule := range p.patterns {
		m := rule.regex.FindStringSubmatch(trimmed)
		if m == nil {
			continue
		}
		p.log.Debug("matched intent: %s", rule.intent)
		in := Intent{Type: rule.intent}
		if len(m) > 1 {
			in.Payload = strings.TrimSpace(m[1])
		}
		return in
	}

	p.log.Debug("no match, returning unknown intent")
	return Intent{Type: IntentUnknown, Payload: trimmed}
}

// SplitList splits a comma- or semicolon-separated list, dropping blanks.
func SplitList(s string) []string {
	fields := strings.FieldsFunc(s, func(r rune) bool { return r == ',' || r == ';' })
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		if f = strings.TrimSpace(f); f != "" {
			out = append(out, f)
		}
	}
	return out
}

func isDigits(s string) bool {
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return len(s) > 0
}
