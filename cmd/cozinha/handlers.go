package main

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/hammamikhairi/cozinha/internal/app"
	"github.com/hammamikhairi/cozinha/internal/conversation"
	"github.com/hammamikhairi/cozinha/internal/cooking"
	"github.com/hammamikhairi/cozinha/internal/display"
	"github.com/hammamikhairi/cozinha/internal/domain"
	"github.com/hammamikhairi/cozinha/internal/filter"
	"github.com/hammamikhairi/cozinha/internal/logger"
)

type cliApp struct {
	state    *app.State
	parser   *conversation.KeywordParser
	notifier domain.Notifier
	log      *logger.Logger
	ui       *display.UI

	// listed is the last list shown; typed numbers index into it. Only
	// touched by the run goroutine.
	listed []domain.Recipe

	shown          panelLog
	pendingSuggest atomic.Bool
}

// panelLog remembers the last panel reply printed, by sequence number.
type panelLog struct {
	mu  sync.Mutex
	seq uint64
}

// claim reports whether p is a reply not printed yet and records it.
func (l *panelLog) claim(p app.Panel) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	if !p.Open() || p.Seq == l.seq {
		return false
	}
	l.seq = p.Seq
	return true
}

func (a *cliApp) say(text string) {
	a.ui.PrintChat(text)
}

func (a *cliApp) sayUrgent(text string) {
	a.ui.PrintUrgent(text)
}

func (a *cliApp) run(ctx context.Context) {
	a.say(lineWelcome())
	a.ui.Println("")
	a.showList()

	uiCh := a.ui.InputChan()
	for {
		var input string
		var ok bool

		select {
		case <-ctx.Done():
			return
		case input, ok = <-uiCh:
			if !ok {
				return
			}
		}

		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}

		intent := a.parser.Parse(input)
		a.log.Debug("intent: %s (payload=%q)", intent.Type, intent.Payload)
		if !a.handleIntent(ctx, intent) {
			return
		}
	}
}

// handleIntent dispatches one command. Returns false when the user quits.
func (a *cliApp) handleIntent(ctx context.Context, intent conversation.Intent) bool {
	switch intent.Type {
	case conversation.IntentHelp:
		a.ui.PrintBlock(display.Help())
	case conversation.IntentQuit:
		a.say(lineBye())
		return false

	case conversation.IntentList:
		a.state.Deselect()
		a.state.SetView(domain.ViewHome)
		a.showList()
	case conversation.IntentFavorites:
		a.state.Deselect()
		a.state.SetView(domain.ViewFavorites)
		a.showList()
	case conversation.IntentSearch:
		a.state.SetQuery(intent.Payload)
		a.showList()
	case conversation.IntentCategory:
		a.setCategory(intent.Payload)
	case conversation.IntentDifficulty:
		a.setDifficulty(intent.Payload)
	case conversation.IntentMaxTime:
		a.setMaxTime(intent.Payload)
	case conversation.IntentResetFilters:
		a.state.ResetFilters()
		a.showList()
	case conversation.IntentSelect:
		a.selectRecipe(intent.Payload)
	case conversation.IntentBack:
		a.state.Deselect()
		a.showList()
	case conversation.IntentToggleFavorite:
		a.toggleFavorite(intent.Payload)
	case conversation.IntentNewRecipe:
		a.newRecipe(intent.Payload)
	case conversation.IntentProfile:
		p := a.state.Profile()
		a.say(lineProfile(p.Recipes, p.Favorites, p.Authored))

	case conversation.IntentStartCooking:
		a.startCooking(intent.Payload)
	case conversation.IntentNext:
		a.advance()
	case conversation.IntentPrev:
		a.retreat()
	case conversation.IntentToggleTimer:
		a.toggleTimer()
	case conversation.IntentResetTimer:
		a.resetTimer()
	case conversation.IntentFinish:
		a.finish()
	case conversation.IntentStopCooking:
		a.stopCooking()
	case conversation.IntentStatus:
		a.status()

	case conversation.IntentShopAdd:
		a.shopAdd(intent.Payload)
	case conversation.IntentShopList:
		a.ui.PrintBlock(display.ShoppingList(a.state.ShoppingList()))
	case conversation.IntentShopClear:
		a.state.ClearShoppingList()
		a.say(lineShopCleared())

	case conversation.IntentSubstitute:
		a.substitute(ctx, intent.Payload)
	case conversation.IntentNutrition:
		a.nutrition(ctx)
	case conversation.IntentSuggest:
		a.suggest(ctx, intent.Payload)

	default:
		a.say(lineUnknown(intent.Payload))
	}
	return true
}

// ── Browsing ─────────────────────────────────────────────────────

func (a *cliApp) showList() {
	a.listed = a.state.Visible()
	a.ui.PrintBlock(display.RecipeList(a.listed, a.state.Criteria(), a.state.View()))
}

func (a *cliApp) setCategory(payload string) {
	if isAll(payload) {
		a.state.SetCategory(filter.AllCategories)
		a.showList()
		return
	}
	c, err := domain.ParseCategory(payload)
	if err != nil {
		a.say(lineUnknown(payload))
		return
	}
	a.state.SetCategory(filter.OnlyCategory(c))
	a.showList()
}

func (a *cliApp) setDifficulty(payload string) {
	if isAll(payload) {
		a.state.SetDifficulty(filter.AllDifficulties)
		a.showList()
		return
	}
	d, err := domain.ParseDifficulty(payload)
	if err != nil {
		a.say(lineUnknown(payload))
		return
	}
	a.state.SetDifficulty(filter.OnlyDifficulty(d))
	a.showList()
}

func (a *cliApp) setMaxTime(payload string) {
	n, err := strconv.Atoi(payload)
	if err != nil || n < 0 {
		a.say(lineBadNumber(payload))
		return
	}
	a.state.SetMaxPrepTime(n)
	a.showList()
}

func (a *cliApp) selectRecipe(payload string) {
	id, ok := a.resolveRecipe(payload)
	if !ok {
		a.say(lineInvalidSelection(payload))
		return
	}
	r, err := a.state.Select(id)
	if err != nil {
		a.say(lineInvalidSelection(payload))
		return
	}
	a.ui.PrintBlock(display.RecipeDetail(r))
}

func (a *cliApp) toggleFavorite(payload string) {
	id, ok := a.targetRecipe(payload)
	if !ok {
		a.say(linePickRecipeFirst())
		return
	}
	a.state.ToggleFavorite(id)
	r, ok := a.findRecipe(id)
	if !ok {
		return
	}
	if r.IsFavorite {
		a.say(lineFavoriteOn(r.Title))
	} else {
		a.say(lineFavoriteOff(r.Title))
	}
}

func (a *cliApp) findRecipe(id string) (domain.Recipe, bool) {
	for _, r := range a.state.Catalog() {
		if r.ID == id {
			return r, true
		}
	}
	return domain.Recipe{}, false
}

func (a *cliApp) newRecipe(payload string) {
	d, err := conversation.ParseDraft(payload)
	if err == nil {
		var r domain.Recipe
		r, err = a.state.AddRecipe(d)
		if err == nil {
			a.say(lineRecipeAdded(r.Title))
			a.showList()
			return
		}
	}
	a.sayUrgent(lineInvalidRecipe(err))
	a.ui.PrintHint(conversation.DraftUsage)
}

// resolveRecipe maps a list number or a title fragment to a recipe id.
func (a *cliApp) resolveRecipe(payload string) (string, bool) {
	if n, err := strconv.Atoi(payload); err == nil {
		if n < 1 || n > len(a.listed) {
			return "", false
		}
		return a.listed[n-1].ID, true
	}
	needle := strings.ToLower(payload)
	for _, r := range a.state.Catalog() {
		if strings.Contains(strings.ToLower(r.Title), needle) {
			return r.ID, true
		}
	}
	return "", false
}

// targetRecipe resolves payload, or falls back to the open recipe.
func (a *cliApp) targetRecipe(payload string) (string, bool) {
	if payload != "" {
		return a.resolveRecipe(payload)
	}
	r, ok := a.state.Selected()
	return r.ID, ok
}

// ingredientAt maps a 1-based number from the detail view to an
// ingredient of the open recipe.
func (a *cliApp) ingredientAt(payload string) (domain.Ingredient, bool) {
	n, err := strconv.Atoi(payload)
	if err != nil {
		return domain.Ingredient{}, false
	}
	r, ok := a.state.Selected()
	if !ok || n < 1 || n > len(r.Ingredients) {
		return domain.Ingredient{}, false
	}
	return r.Ingredients[n-1], true
}

// ── Cooking ──────────────────────────────────────────────────────

func (a *cliApp) startCooking(payload string) {
	id, ok := a.targetRecipe(payload)
	if !ok {
		a.say(linePickRecipeFirst())
		return
	}
	sess, err := a.state.StartCooking(id)
	if errors.Is(err, domain.ErrNoSteps) {
		if r, ok := a.findRecipe(id); ok {
			a.say(lineNoSteps(r.Title))
		}
		return
	}
	if err != nil {
		a.say(lineInvalidSelection(payload))
		return
	}
	a.say(lineCookingStart(sess.Recipe().Title))
	a.showStep(sess)
}

// session returns the active session, telling the user when there is none.
func (a *cliApp) session() (*cooking.Session, bool) {
	sess, err := a.state.Cooking()
	if err != nil {
		a.say(lineNoSession())
		return nil, false
	}
	return sess, true
}

func (a *cliApp) showStep(sess *cooking.Session) {
	a.ui.PrintBlock(display.StepView(sess.Snapshot()))
}

func (a *cliApp) advance() {
	sess, ok := a.session()
	if !ok {
		return
	}
	if !sess.Advance() {
		a.say(lineLastStep())
		return
	}
	a.showStep(sess)
}

func (a *cliApp) retreat() {
	sess, ok := a.session()
	if !ok {
		return
	}
	if !sess.Retreat() {
		a.say(lineFirstStep())
		return
	}
	a.showStep(sess)
}

func (a *cliApp) toggleTimer() {
	sess, ok := a.session()
	if !ok {
		return
	}
	st := sess.Snapshot()
	switch {
	case !st.HasTimer:
		a.say(lineNoTimer())
	case st.Remaining == 0:
		a.say(lineTimerDone())
	default:
		sess.ToggleTimer()
		a.ui.PrintHint(display.TimerLabel(sess.Snapshot()))
	}
}

func (a *cliApp) resetTimer() {
	sess, ok := a.session()
	if !ok {
		return
	}
	if !sess.ResetTimer() {
		a.say(lineNoTimer())
		return
	}
	a.ui.PrintHint(display.TimerLabel(sess.Snapshot()))
}

func (a *cliApp) finish() {
	sess, ok := a.session()
	if !ok {
		return
	}
	if !sess.Finish() {
		a.say(lineNotLastStep())
		return
	}
	a.state.StopCooking()
	a.say(lineCookingDone(sess.Recipe().Title))
}

func (a *cliApp) stopCooking() {
	if _, err := a.state.Cooking(); err != nil {
		a.say(lineNoSession())
		return
	}
	a.state.StopCooking()
	a.say(lineCookingClosed())
}

func (a *cliApp) status() {
	if sess, ok := a.session(); ok {
		a.showStep(sess)
	}
}

// timeUp runs on the session's scheduler goroutine.
func (a *cliApp) timeUp(ctx context.Context, st cooking.State) {
	if err := a.notifier.NotifyUrgent(ctx, lineTimeUp(st.StepIndex+1, st.Step.Description)); err != nil {
		a.log.Warn("time's up notification failed: %v", err)
	}
}

// ── Shopping ─────────────────────────────────────────────────────

func (a *cliApp) shopAdd(payload string) {
	if in, ok := a.ingredientAt(payload); ok {
		a.state.AddIngredientToShoppingList(in.ID)
		a.say(lineShopAdded(in.ShoppingLine()))
		return
	}
	a.state.AddToShoppingList(payload)
	a.say(lineShopAdded(payload))
}

// ── AI ───────────────────────────────────────────────────────────

func (a *cliApp) substitute(ctx context.Context, payload string) {
	if !a.state.AIEnabled() {
		a.say(lineAIDisabled())
		return
	}
	name := payload
	if in, ok := a.ingredientAt(payload); ok {
		name = in.Name
	}
	if !a.state.LookupSubstitutions(ctx, name) {
		a.say(lineAIBusy())
		return
	}
	a.ui.PrintHint(lineThinking())
}

func (a *cliApp) nutrition(ctx context.Context) {
	if !a.state.AIEnabled() {
		a.say(lineAIDisabled())
		return
	}
	if _, ok := a.state.Selected(); !ok {
		a.say(linePickRecipeFirst())
		return
	}
	if !a.state.LookupNutrition(ctx) {
		a.say(lineAIBusy())
		return
	}
	a.ui.PrintHint(lineThinking())
}

func (a *cliApp) suggest(ctx context.Context, payload string) {
	if !a.state.AIEnabled() {
		a.say(lineAIDisabled())
		return
	}
	items := conversation.SplitList(payload)
	if len(items) == 0 {
		a.say(lineSuggestUsage())
		return
	}
	a.pendingSuggest.Store(true)
	if !a.state.Suggest(ctx, items) {
		a.say(lineAIBusy())
		return
	}
	a.ui.PrintHint(lineThinking())
}

// onAIChange runs on the AI goroutine whenever a reply lands. A panel
// that hasn't been shown yet wins; otherwise the reply was suggestions.
func (a *cliApp) onAIChange() {
	p := a.state.Panel()
	if !a.shown.claim(p) {
		if a.pendingSuggest.Swap(false) {
			a.ui.PrintBlock(display.Suggestions(a.state.Suggestions()))
		}
		return
	}

	switch p.Kind {
	case app.PanelSubstitution:
		a.say(lineSubstitutesFor(p.Subject))
	case app.PanelNutrition:
		a.say(lineNutritionFor(p.Subject))
	}
	a.ui.PrintInstruction(p.Text)
}

func isAll(s string) bool {
	switch strings.ToLower(s) {
	case "all", "todos", "todas", "*":
		return true
	}
	return false
}
