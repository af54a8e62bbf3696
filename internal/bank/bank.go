package bank

import "slices"

// OptionsPerQuestion is the number of choices every question offers.
const OptionsPerQuestion = 4

// Question is a single multiple-choice prompt.
type Question struct {
	Prompt  string
	Options []string
	Answer  string // exact text of the correct option
}

// IsCorrect reports whether option matches the correct answer exactly.
func (q Question) IsCorrect(option string) bool {
	return option == q.Answer
}

// HasOption reports whether option is one of the question's choices.
func (q Question) HasOption(option string) bool {
	return slices.Contains(q.Options, option)
}

// Category groups an ordered list of questions under a topic.
type Category struct {
	ID        string
	Name      string
	Icon      string
	Questions []Question
}

// Bank is the read-only question bank with a precomputed ID index.
type Bank struct {
	categories []Category
	byID       map[string]*Category
}

// defaultBank is the compiled-in bank, built and validated by init().
var defaultBank *Bank

func init() {
	b, err := New(seedCategories())
	if err != nil {
		panic(err)
	}
	defaultBank = b
}

// Default returns the compiled-in question bank.
func Default() *Bank {
	return defaultBank
}

// New validates categories and builds a Bank from them.
// The categories are deep-copied so later changes to the input do not leak in.
func New(categories []Category) (*Bank, error) {
	if err := validateCategories(categories); err != nil {
		return nil, err
	}

	b := &Bank{
		categories: make([]Category, len(categories)),
		byID:       make(map[string]*Category, len(categories)),
	}
	for i, c := range categories {
		qs := make([]Question, len(c.Questions))
		for j, q := range c.Questions {
			q.Options = slices.Clone(q.Options)
			qs[j] = q
		}
		c.Questions = qs
		b.categories[i] = c
	}
	for i := range b.categories {
		b.byID[b.categories[i].ID] = &b.categories[i]
	}
	return b, nil
}

// Category returns the category with the given ID.
func (b *Bank) Category(id string) (*Category, bool) {
	c, ok := b.byID[id]
	return c, ok
}

// Categories returns all categories in declaration order.
func (b *Bank) Categories() []*Category {
	out := make([]*Category, len(b.categories))
	for i := range b.categories {
		out[i] = &b.categories[i]
	}
	return out
}

// Len returns the number of categories.
func (b *Bank) Len() int {
	return len(b.categories)
}
