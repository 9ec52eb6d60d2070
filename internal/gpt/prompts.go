package gpt

// Prompts live here so wording changes are a single-file edit. The app's
// audience is Portuguese-speaking, so the model is asked to answer in
// Portuguese.

// PromptSystem frames every request.
const PromptSystem = `Você é um assistente culinário objetivo. Responda sempre em português do Brasil, de forma curta e prática. Não use emojis.`

// promptSubstitutions asks for replacements for one ingredient.
// %q is the ingredient name.
const promptSubstitutions = `Sugira 3 substitutos comuns para o ingrediente %q em receitas culinárias. Formate como uma lista curta.`

// promptNutrition asks for a brief nutritional read of a recipe.
// Arguments: recipe title, ingredients summary.
const promptNutrition = `Analise brevemente o perfil nutricional da receita %q com os ingredientes: %s. Destaque pontos positivos e calorias estimadas.`

// promptSuggestions asks for quick recipes from what the user has at
// home. The argument is the comma-joined ingredient list.
const promptSuggestions = `Com base nestes ingredientes: %s, sugira 2 receitas rápidas.

Responda SOMENTE com um array JSON, sem texto antes ou depois e sem blocos de código:
[
  {"title": "nome da receita", "description": "descrição curta", "time": "tempo estimado, ex.: 20 min"}
]
Os três campos são obrigatórios em cada item.`

// Per-feature sampling temperatures.
const (
	temperatureSubstitutions = 0.7
	temperatureNutrition     = 0.5
	temperatureSuggestions   = 0.7
)
