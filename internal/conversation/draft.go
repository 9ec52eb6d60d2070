package conversation

import (
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/hammamikhairi/cozinha/internal/domain"
)

// DraftUsage documents the one-line recipe format accepted by ParseDraft.
const DraftUsage = "new <título> | <minutos> | <categoria> | <dificuldade> | <passo; passo @5m; ...> [| <200 g espaguete, 3 unid ovo, ...>]"

// ParseDraft reads a one-line recipe:
//
//	Omelete | 10 | salgado | fácil | Bata os ovos; Frite @3m | 2 unid ovo, sal
//
// A step ending in "@<duration>" gets a timer. Field-level rules (title
// length, positive prep time, ...) are left to the catalog's validator.
func ParseDraft(line string) (domain.Draft, error) {
	parts := strings.Split(line, "|")
	if len(parts) < 5 || len(parts) > 6 {
		return domain.Draft{}, fmt.Errorf("expected 5 or 6 fields separated by |, got %d", len(parts))
	}
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}

	minutes, err := strconv.Atoi(parts[1])
	if err != nil {
		return domain.Draft{}, fmt.Errorf("prep time %q: %w", parts[1], err)
	}
	cat, err := domain.ParseCategory(parts[2])
	if err != nil {
		return domain.Draft{}, err
	}
	diff, err := domain.ParseDifficulty(parts[3])
	if err != nil {
		return domain.Draft{}, err
	}

	d := domain.Draft{
		Title:           parts[0],
		PrepTimeMinutes: minutes,
		Category:        cat,
		Difficulty:      diff,
	}

	for _, raw := range strings.Split(parts[4], ";") {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}
		step, err := parseStep(raw)
		if err != nil {
			return domain.Draft{}, err
		}
		d.Steps = append(d.Steps, step)
	}

	if len(parts) == 6 {
		for _, raw := range splitIngredients(parts[5]) {
			d.Ingredients = append(d.Ingredients, parseIngredient(raw))
		}
	}
	return d, nil
}

// splitIngredients splits on ";" and on "," except a comma between two
// digits, which is a decimal comma ("0,5 xícara leite").
func splitIngredients(s string) []string {
	runes := []rune(s)
	out := []string{}
	start := 0
	flush := func(end int) {
		if f := strings.TrimSpace(string(runes[start:end])); f != "" {
			out = append(out, f)
		}
		start = end + 1
	}
	for i, r := range runes {
		switch r {
		case ';':
			flush(i)
		case ',':
			if i > 0 && i < len(runes)-1 && unicode.IsDigit(runes[i-1]) && unicode.IsDigit(runes[i+1]) {
				continue
			}
			flush(i)
		}
	}
	flush(len(runes))
	return out
}

func parseStep(raw string) (domain.DraftStep, error) {
	idx := strings.LastIndex(raw, "@")
	if idx == -1 {
		return domain.DraftStep{Description: raw}, nil
	}

	dur, err := time.ParseDuration(strings.TrimSpace(raw[idx+1:]))
	if err != nil {
		return domain.DraftStep{}, fmt.Errorf("step timer in %q: %w", raw, err)
	}
	return domain.DraftStep{
		Description:  strings.TrimSpace(raw[:idx]),
		TimerSeconds: int(dur.Seconds()),
	}, nil
}

// parseIngredient reads "<amount> <unit> <name>", "<amount> <name>" or
// just "<name>". A decimal comma is accepted.
func parseIngredient(raw string) domain.DraftIngredient {
	fields := strings.Fields(raw)
	amount, err := strconv.ParseFloat(strings.Replace(fields[0], ",", ".", 1), 64)
	if err != nil || len(fields) == 1 {
		return domain.DraftIngredient{Name: raw}
	}
	if len(fields) == 2 {
		return domain.DraftIngredient{Amount: amount, Name: fields[1]}
	}
	return domain.DraftIngredient{
		Amount: amount,
		Unit:   fields[1],
		Name:   strings.Join(fields[2:], " "),
	}
}
