package bank

import (
	"fmt"
	"strings"
)

// Validate checks the compiled-in bank. It always passes once init() has run,
// and exists so tests and the CLI can assert it explicitly.
func Validate() error {
	return validateCategories(defaultBank.categories)
}

// validateCategories performs all structural checks on the given categories.
// Returns a combined error describing all problems found, or nil if valid.
func validateCategories(categories []Category) error {
	var errs []string

	if len(categories) == 0 {
		errs = append(errs, "bank has no categories")
	}

	seen := make(map[string]bool, len(categories))
	for i, c := range categories {
		if c.ID == "" {
			errs = append(errs, fmt.Sprintf("category %d: empty ID", i))
		} else if seen[c.ID] {
			errs = append(errs, fmt.Sprintf("duplicate category ID: %q", c.ID))
		}
		seen[c.ID] = true

		if c.Name == "" {
			errs = append(errs, fmt.Sprintf("category %q: empty name", c.ID))
		}
		if len(c.Questions) == 0 {
			errs = append(errs, fmt.Sprintf("category %q has no questions", c.ID))
		}

		for j, q := range c.Questions {
			prefix := fmt.Sprintf("category %q question %d", c.ID, j)
			errs = append(errs, validateQuestion(prefix, q)...)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("question bank validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}

func validateQuestion(prefix string, q Question) []string {
	var errs []string

	if strings.TrimSpace(q.Prompt) == "" {
		errs = append(errs, prefix+": empty prompt")
	}
	if len(q.Options) != OptionsPerQuestion {
		errs = append(errs, fmt.Sprintf("%s: want %d options, got %d", prefix, OptionsPerQuestion, len(q.Options)))
	}

	opts := make(map[string]bool, len(q.Options))
	for _, o := range q.Options {
		if opts[o] {
			errs = append(errs, fmt.Sprintf("%s: duplicate option %q", prefix, o))
		}
		opts[o] = true
	}

	if !opts[q.Answer] {
		errs = append(errs, fmt.Sprintf("%s: answer %q is not one of the options", prefix, q.Answer))
	}
	return errs
}
