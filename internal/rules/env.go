package rules

import (
	"fmt"

	"github.com/google/cel-go/cel"
)

// Registry manages the CEL environment that bust rules are compiled against.
type Registry struct {
	env *cel.Env
}

// NewRegistry declares the roll variables visible to rule expressions.
func NewRegistry() (*Registry, error) {
	env, err := cel.NewEnv(
		cel.Variable("sum", cel.IntType),
		cel.Variable("dice", cel.ListType(cel.IntType)),
		cel.Variable("round", cel.IntType),
		cel.Variable("banked", cel.IntType),
	)
	if err != nil {
		return nil, err
	}
	return &Registry{env: env}, nil
}

// Compile checks an expression and prepares it for repeated evaluation.
func (r *Registry) Compile(expression string) (cel.Program, error) {
	ast, iss := r.env.Compile(expression)
	if iss.Err() != nil {
		return nil, iss.Err()
	}
	return r.env.Program(ast)
}

// Eval executes a CEL expression against the provided roll.
func (r *Registry) Eval(expression string, roll RollContext) (any, error) {
	prog, err := r.Compile(expression)
	if err != nil {
		return nil, err
	}
	out, _, err := prog.Eval(roll.activation())
	if err != nil {
		return nil, err
	}
	return out.Value(), nil
}

type compiledRule struct {
	Rule
	prog cel.Program
}

// Book is an ordered set of compiled bust rules. The first matching rule wins.
type Book struct {
	rules []compiledRule
}

// NewBook compiles rules in order. Every rule must produce a boolean.
func NewBook(rules []Rule) (*Book, error) {
	reg, err := NewRegistry()
	if err != nil {
		return nil, fmt.Errorf("failed to build rule environment: %w", err)
	}

	book := &Book{}
	probe := RollContext{Dice: []int{3, 4}, Sum: 7}
	for i, rule := range rules {
		if !rule.Outcome.Valid() {
			return nil, fmt.Errorf("rule %d (%q): %w: %q", i+1, rule.When, ErrUnknownOutcome, rule.Outcome)
		}
		prog, err := reg.Compile(rule.When)
		if err != nil {
			return nil, fmt.Errorf("rule %d (%q): %w", i+1, rule.When, err)
		}
		out, _, err := prog.Eval(probe.activation())
		if err != nil {
			return nil, fmt.Errorf("rule %d (%q): %w", i+1, rule.When, err)
		}
		if _, ok := out.Value().(bool); !ok {
			return nil, fmt.Errorf("rule %d (%q) must evaluate to a bool, got %T", i+1, rule.When, out.Value())
		}
		book.rules = append(book.rules, compiledRule{Rule: rule, prog: prog})
	}
	return book, nil
}

// Default returns the standard book: 7 keeps the banked score, 2 wipes it.
func Default() *Book {
	book, err := NewBook(DefaultRules)
	if err != nil {
		panic(fmt.Sprintf("rules: default book does not compile: %v", err))
	}
	return book
}

// Rules returns the source rules in evaluation order.
func (b *Book) Rules() []Rule {
	out := make([]Rule, len(b.rules))
	for i, r := range b.rules {
		out[i] = r.Rule
	}
	return out
}

// Classify returns the outcome of the first rule matching the roll, or Continue.
func (b *Book) Classify(roll RollContext) (Outcome, error) {
	vars := roll.activation()
	for _, r := range b.rules {
		out, _, err := r.prog.Eval(vars)
		if err != nil {
			return "", fmt.Errorf("rule %q: %w", r.When, err)
		}
		if matched, _ := out.Value().(bool); matched {
			return r.Outcome, nil
		}
	}
	return Continue, nil
}
