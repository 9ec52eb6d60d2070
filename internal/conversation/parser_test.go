package conversation

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hammamikhairi/cozinha/internal/domain"
	"github.com/hammamikhairi/cozinha/internal/logger"
)

func TestKeywordParser(t *testing.T) {
	parser := NewKeywordParser(logger.New(logger.LevelOff, nil))

	tests := []struct {
		input       string
		wantType    IntentType
		wantPayload string
	}{
		{"help", IntentHelp, ""},
		{"?", IntentHelp, ""},
		{"sair", IntentQuit, ""},
		{"q", IntentQuit, ""},

		// Browsing
		{"list", IntentList, ""},
		{"receitas", IntentList, ""},
		{"favoritos", IntentFavorites, ""},
		{"search carbonara", IntentSearch, "carbonara"},
		{"buscar  bowl de salmão ", IntentSearch, "bowl de salmão"},
		{"search", IntentSearch, ""},
		{"cat massas", IntentCategory, "massas"},
		{"dificuldade fácil", IntentDifficulty, "fácil"},
		{"time 18", IntentMaxTime, "18"},
		{"tempo 30 min", IntentMaxTime, "30"},
		{"limpar filtros", IntentResetFilters, ""},
		{"2", IntentSelect, "2"},
		{"show 3", IntentSelect, "3"},
		{"voltar", IntentBack, ""},
		{"fav", IntentToggleFavorite, ""},
		{"fav 2", IntentToggleFavorite, "2"},
		{"perfil", IntentProfile, ""},
		{"new Omelete | 10 | salgado | fácil | Bata", IntentNewRecipe, "Omelete | 10 | salgado | fácil | Bata"},

		// Cooking
		{"cook", IntentStartCooking, ""},
		{"cozinhar 1", IntentStartCooking, "1"},
		{"next", IntentNext, ""},
		{"n", IntentNext, ""},
		{"anterior", IntentPrev, ""},
		{"timer", IntentToggleTimer, ""},
		{"pause", IntentToggleTimer, ""},
		{"reset timer", IntentResetTimer, ""},
		{"concluir", IntentFinish, ""},
		{"fechar", IntentStopCooking, ""},
		{"status", IntentStatus, ""},

		// Shopping
		{"shop", IntentShopList, ""},
		{"shop clear", IntentShopClear, ""},
		{"shop 2", IntentShopAdd, "2"},
		{"comprar 1 kg arroz", IntentShopAdd, "1 kg arroz"},

		// AI
		{"sub 2", IntentSubstitute, "2"},
		{"nutrição", IntentNutrition, ""},
		{"suggest ovo, arroz", IntentSuggest, "ovo, arroz"},
		{"sugestões", IntentSuggest, ""},

		// Unknown
		{"flambé the cat", IntentUnknown, "flambé the cat"},
		{"", IntentUnknown, ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			intent := parser.Parse(tt.input)
			assert.Equal(t, tt.wantType, intent.Type, "type for %q: got %s", tt.input, intent.Type)
			assert.Equal(t, tt.wantPayload, intent.Payload)
		})
	}
}

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{"ovo", "arroz", "tomate"}, SplitList(" ovo, arroz ;; tomate,"))
	assert.Equal(t, []string{}, SplitList("  "))
}

func TestParseDraft(t *testing.T) {
	d, err := ParseDraft("Omelete | 10 | salgado | Fácil | Bata os ovos; Frite @3m ; | 2 unid ovo, 0,5 xícara leite, sal, 100 queijo")
	require.NoError(t, err)

	assert.Equal(t, "Omelete", d.Title)
	assert.Equal(t, 10, d.PrepTimeMinutes)
	assert.Equal(t, domain.CategorySavory, d.Category)
	assert.Equal(t, domain.DifficultyEasy, d.Difficulty)
	assert.Equal(t, []domain.DraftStep{
		{Description: "Bata os ovos"},
		{Description: "Frite", TimerSeconds: 180},
	}, d.Steps)
	assert.Equal(t, []domain.DraftIngredient{
		{Name: "ovo", Amount: 2, Unit: "unid"},
		{Name: "leite", Amount: 0.5, Unit: "xícara"},
		{Name: "sal"},
		{Name: "queijo", Amount: 100},
	}, d.Ingredients)
}

func TestParseDraftDecimalComma(t *testing.T) {
	d, err := ParseDraft("Bolo | 30 | doce | fácil | Misture | 0,5 xícara leite")
	require.NoError(t, err)
	require.Len(t, d.Ingredients, 1)
	assert.Equal(t, domain.DraftIngredient{Name: "leite", Amount: 0.5, Unit: "xícara"}, d.Ingredients[0])
}

func TestSplitIngredients(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"2 unid ovo, 0,5 xícara leite, sal", []string{"2 unid ovo", "0,5 xícara leite", "sal"}},
		{"1,5 kg farinha;2 ovo", []string{"1,5 kg farinha", "2 ovo"}},
		{"3 ovo,2 tomate", []string{"3 ovo", "2 tomate"}},
		{"sal,pimenta,", []string{"sal", "pimenta"}},
		{"  ", []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, splitIngredients(tt.in))
		})
	}
}

func TestParseDraftErrors(t *testing.T) {
	tests := []string{
		"Omelete | 10 | salgado",
		"Omelete | dez | salgado | fácil | Bata",
		"Omelete | 10 | churrasco | fácil | Bata",
		"Omelete | 10 | salgado | impossível | Bata",
		"Omelete | 10 | salgado | fácil | Frite @logo",
	}
	for _, in := range tests {
		_, err := ParseDraft(in)
		assert.Error(t, err, in)
	}
}

// recordingNotifier counts calls and can fail on demand.
type recordingNotifier struct {
	normal, urgent int
	err            error
}

func (r *recordingNotifier) Notify(context.Context, string) error {
	r.normal++
	return r.err
}

func (r *recordingNotifier) NotifyUrgent(context.Context, string) error {
	r.urgent++
	return r.err
}

func TestCLINotifier(t *testing.T) {
	var lines []string
	n := NewCLINotifier(logger.New(logger.LevelOff, nil), func(format string, a ...interface{}) {
		lines = append(lines, format)
	})
	require.NoError(t, n.Notify(context.Background(), "oi"))
	require.NoError(t, n.NotifyUrgent(context.Background(), "tempo esgotado"))
	assert.Len(t, lines, 2)
}

func TestMultiNotifier(t *testing.T) {
	boom := errors.New("no audio device")
	a := &recordingNotifier{err: boom}
	b := &recordingNotifier{}

	m := MultiNotifier{a, b}
	assert.ErrorIs(t, m.NotifyUrgent(context.Background(), "x"), boom)
	assert.NoError(t, MultiNotifier{b}.Notify(context.Background(), "y"))

	assert.Equal(t, 1, a.urgent)
	assert.Equal(t, 1, b.urgent)
	assert.Equal(t, 1, b.normal)
}
