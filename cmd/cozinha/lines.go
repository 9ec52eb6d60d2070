package main

import (
	"fmt"
	"math/rand"
)

// lines.go centralises every user-facing sentence. Keep lines short and
// direct.

// ── Greeting / Global ────────────────────────────────────────────

func lineWelcome() string {
	return "Olá! O que vamos cozinhar hoje?"
}

func lineBye() string {
	return "Até a próxima!"
}

func lineUnknown(input string) string {
	return pick(
		fmt.Sprintf("Não entendi %q. Digite help para ver os comandos.", input),
		fmt.Sprintf("Hmm, %q? Tente help.", input),
	)
}

// ── Browsing ─────────────────────────────────────────────────────

func lineInvalidSelection(payload string) string {
	return fmt.Sprintf("Seleção inválida: %s. Escolha um número da lista.", payload)
}

func linePickRecipeFirst() string {
	return "Abra uma receita primeiro (digite o número dela)."
}

func lineFavoriteOn(title string) string {
	return fmt.Sprintf("%s adicionada aos favoritos.", title)
}

func lineFavoriteOff(title string) string {
	return fmt.Sprintf("%s removida dos favoritos.", title)
}

func lineRecipeAdded(title string) string {
	return fmt.Sprintf("Receita %q criada. Ela aparece no topo da lista.", title)
}

func lineInvalidRecipe(err error) string {
	return fmt.Sprintf("Não consegui criar a receita: %v", err)
}

func lineBadNumber(payload string) string {
	return fmt.Sprintf("%q não é um número válido.", payload)
}

func lineProfile(recipes, favorites, authored int) string {
	return fmt.Sprintf("%d receitas no catálogo, %d favoritas, %d criadas por você.", recipes, favorites, authored)
}

// ── Cooking ──────────────────────────────────────────────────────

func lineCookingStart(title string) string {
	return fmt.Sprintf("Modo cozinha: %s. Vamos lá!", title)
}

func lineNoSteps(title string) string {
	return fmt.Sprintf("%s não tem passos para seguir.", title)
}

func lineNoSession() string {
	return "Nenhuma receita em preparo. Use cook para começar."
}

func lineLastStep() string {
	return "Este é o último passo. Digite finish quando terminar."
}

func lineNotLastStep() string {
	return "Ainda faltam passos. Avance até o último para concluir."
}

func lineFirstStep() string {
	return "Você já está no primeiro passo."
}

func lineNoTimer() string {
	return "Este passo não tem timer."
}

func lineTimerDone() string {
	return "O timer já terminou. Use reset timer para recomeçar."
}

func lineTimeUp(step int, description string) string {
	return fmt.Sprintf("Tempo esgotado! Passo %d: %s", step, description)
}

func lineCookingDone(title string) string {
	return pick(
		fmt.Sprintf("Pronto! %s está finalizada. Bom apetite!", title),
		fmt.Sprintf("%s concluída. Bom apetite!", title),
	)
}

func lineCookingClosed() string {
	return "Modo cozinha encerrado."
}

// ── Shopping ─────────────────────────────────────────────────────

func lineShopAdded(item string) string {
	return fmt.Sprintf("Adicionado à lista: %s", item)
}

func lineShopCleared() string {
	return "Lista de compras limpa."
}

// ── AI ───────────────────────────────────────────────────────────

func lineAIDisabled() string {
	return "A IA está desativada. Configure GPT_CHAT_KEY e GPT_CHAT_ENDPOINT."
}

func lineAIBusy() string {
	return "Já estou consultando isso, aguarde."
}

func lineThinking() string {
	return pick("Consultando a IA...", "Pensando...", "Um momento...")
}

func lineSuggestUsage() string {
	return "Diga o que você tem em casa: suggest ovo, arroz, tomate"
}

func lineSubstitutesFor(name string) string {
	return fmt.Sprintf("Substitutos para %s:", name)
}

func lineNutritionFor(title string) string {
	return fmt.Sprintf("Nutrição de %s:", title)
}

func pick(options ...string) string {
	return options[rand.Intn(len(options))]
}
