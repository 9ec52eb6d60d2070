// Package app holds the application-state aggregate: catalog, filter
// criteria, active view, selected recipe, cooking session, shopping list
// and AI panels. The CLI drives it exclusively through the transition
// methods below.
package app

import (
	"sync"

	"github.com/hammamikhairi/cozinha/internal/catalog"
	"github.com/hammamikhairi/cozinha/internal/cooking"
	"github.com/hammamikhairi/cozinha/internal/domain"
	"github.com/hammamikhairi/cozinha/internal/filter"
	"github.com/hammamikhairi/cozinha/internal/gpt"
	"github.com/hammamikhairi/cozinha/internal/logger"
	"github.com/hammamikhairi/cozinha/internal/shopping"
)

// Option configures the state.
type Option func(*State)

// WithStore uses an existing catalog store instead of a seeded one.
func WithStore(store *catalog.Store) Option {
	return func(s *State) {
		s.store = store
	}
}

// WithAssistant enables the AI features. Without it every lookup is
// refused.
func WithAssistant(a domain.Assistant) Option {
	return func(s *State) {
		s.assistant = a
	}
}

// WithCookingOptions passes options to every cooking session started.
func WithCookingOptions(opts ...cooking.Option) Option {
	return func(s *State) {
		s.cookingOpts = append(s.cookingOpts, opts...)
	}
}

// WithOnChange registers a callback fired after background work (AI
// replies) changes the state. It runs outside the state lock.
func WithOnChange(fn func()) Option {
	return func(s *State) {
		s.onChange = fn
	}
}

// Profile holds the counters shown on the profile screen.
type Profile struct {
	Recipes   int
	Favorites int
	Authored  int
}

// State is the single owner of everything the UI shows. Safe for
// concurrent use: the UI goroutine and AI goroutines both touch it.
type State struct {
	store       *catalog.Store
	assistant   domain.Assistant
	tracker     *gpt.Tracker
	shopping    *shopping.List
	cookingOpts []cooking.Option
	onChange    func()
	log         *logger.Logger

	mu       sync.Mutex
	criteria filter.Criteria
	view     domain.View
	selected string
	session  *cooking.Session

	// gen changes whenever the user navigates; AI replies issued under an
	// older generation are dropped.
	gen         uint64
	panel       Panel
	panelSeq    uint64
	suggestions []domain.Suggestion

	wg sync.WaitGroup
}

// New creates the application state.
func New(log *logger.Logger, opts ...Option) *State {
	s := &State{
		tracker:     gpt.NewTracker(),
		shopping:    shopping.New(),
		log:         log,
		criteria:    filter.DefaultCriteria(),
		view:        domain.ViewHome,
		suggestions: []domain.Suggestion{},
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.store == nil {
		s.store = catalog.NewStore(log.With("catalog"))
	}
	return s
}

// ── Filters and views ────────────────────────────────────────────

// Criteria returns the active filter criteria.
func (s *State) Criteria() filter.Criteria {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.criteria
}

// SetQuery sets the free-text search.
func (s *State) SetQuery(q string) {
	s.updateCriteria(func(c *filter.Criteria) { c.Query = q })
}

// SetCategory sets the category selector.
func (s *State) SetCategory(sel filter.CategorySelector) {
	s.updateCriteria(func(c *filter.Criteria) { c.Category = sel })
}

// SetDifficulty sets the difficulty selector.
func (s *State) SetDifficulty(sel filter.DifficultySelector) {
	s.updateCriteria(func(c *filter.Criteria) { c.Difficulty = sel })
}

// SetMaxPrepTime sets the prep-time ceiling in minutes.
func (s *State) SetMaxPrepTime(minutes int) {
	s.updateCriteria(func(c *filter.Criteria) { c.MaxPrepTime = minutes })
}

// ResetFilters restores the default criteria.
func (s *State) ResetFilters() {
	s.updateCriteria(func(c *filter.Criteria) { *c = c.Reset() })
}

func (s *State) updateCriteria(fn func(*filter.Criteria)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(&s.criteria)
	s.log.Debug("criteria: query=%q category=%s difficulty=%s max=%d",
		s.criteria.Query, s.criteria.Category, s.criteria.Difficulty, s.criteria.MaxPrepTime)
}

// View returns the active tab.
func (s *State) View() domain.View {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.view
}

// SetView switches tabs. Leaving a view discards pending AI replies.
func (s *State) SetView(v domain.View) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.view == v {
		return
	}
	s.view = v
	s.navigateLocked()
}

// Visible returns the recipes the current view shows.
func (s *State) Visible() []domain.Recipe {
	s.mu.Lock()
	c, v := s.criteria, s.view
	s.mu.Unlock()
	return filter.Apply(s.store.All(), c, v)
}

// ── Catalog ──────────────────────────────────────────────────────

// Catalog returns the whole catalog, unfiltered.
func (s *State) Catalog() []domain.Recipe {
	return s.store.All()
}

// Select opens a recipe's detail view.
func (s *State) Select(id string) (domain.Recipe, error) {
	r, err := s.store.Get(id)
	if err != nil {
		return domain.Recipe{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.selected != id {
		s.selected = id
		s.navigateLocked()
	}
	return r, nil
}

// Deselect closes the detail view.
func (s *State) Deselect() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.selected == "" {
		return
	}
	s.selected = ""
	s.navigateLocked()
}

// Selected returns the recipe in the detail view, if any.
func (s *State) Selected() (domain.Recipe, bool) {
	s.mu.Lock()
	id := s.selected
	s.mu.Unlock()
	if id == "" {
		return domain.Recipe{}, false
	}
	r, err := s.store.Get(id)
	return r, err == nil
}

// ToggleFavorite flips a recipe's favorite flag. Unknown ids are ignored.
func (s *State) ToggleFavorite(id string) {
	s.store.ToggleFavorite(id)
}

// AddRecipe validates and stores a new recipe.
func (s *State) AddRecipe(d domain.Draft) (domain.Recipe, error) {
	return s.store.Add(d)
}

// Profile returns the profile counters.
func (s *State) Profile() Profile {
	return Profile{
		Recipes:   s.store.Len(),
		Favorites: s.store.Favorites(),
		Authored:  s.store.AuthoredBy(catalog.DefaultAuthor),
	}
}

// ── Cooking ──────────────────────────────────────────────────────

// StartCooking opens cooking mode for a recipe, closing any session
// already running.
func (s *State) StartCooking(id string) (*cooking.Session, error) {
	r, err := s.store.Get(id)
	if err != nil {
		return nil, err
	}
	sess, err := cooking.Start(r, s.cookingOpts...)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	old := s.session
	s.session = sess
	s.selected = id
	s.navigateLocked()
	s.mu.Unlock()

	if old != nil {
		old.Close()
	}
	return sess, nil
}

// Cooking returns the active session.
func (s *State) Cooking() (*cooking.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.session == nil || s.session.Closed() {
		return nil, domain.ErrNoActiveSession
	}
	return s.session, nil
}

// StopCooking closes cooking mode. No-op when nothing is cooking.
func (s *State) StopCooking() {
	s.mu.Lock()
	sess := s.session
	s.session = nil
	if sess != nil {
		s.navigateLocked()
	}
	s.mu.Unlock()

	if sess != nil {
		sess.Close()
	}
}

// ── Shopping list ────────────────────────────────────────────────

// AddToShoppingList appends a free-text item.
func (s *State) AddToShoppingList(item string) {
	s.shopping.Add(item)
}

// AddIngredientToShoppingList appends the shopping line of one of the
// selected recipe's ingredients. Reports false when there is no such
// ingredient.
func (s *State) AddIngredientToShoppingList(ingredientID string) bool {
	r, ok := s.Selected()
	if !ok {
		return false
	}
	for _, in := range r.Ingredients {
		if in.ID == ingredientID {
			s.shopping.Add(in.ShoppingLine())
			return true
		}
	}
	return false
}

// ClearShoppingList empties the list.
func (s *State) ClearShoppingList() {
	s.shopping.Clear()
}

// ShoppingList returns the list items in order.
func (s *State) ShoppingList() []string {
	return s.shopping.Items()
}

// ── Internal ─────────────────────────────────────────────────────

// navigateLocked starts a new generation and closes the AI panel.
func (s *State) navigateLocked() {
	s.gen++
	s.panel = Panel{}
}

func (s *State) changed() {
	if s.onChange != nil {
		s.onChange()
	}
}
