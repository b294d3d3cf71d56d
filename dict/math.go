// Package dict carries the built-in mathematical dictionary: the static
// table of alias groups, symbols, descriptions and templates the editor
// shell loads at process start.
package dict

import "github.com/batteryspecial/QED/types"

var commands = []*types.Command{
	// logic & quantifiers
	{Aliases: []string{"forall", "for all"}, Latex: `\forall`, Description: "universal quantifier"},
	{Aliases: []string{"exists", "there exists"}, Latex: `\exists`, Description: "existential quantifier"},
	{Aliases: []string{"s.t.", "such that"}, Latex: `\text{ s.t. }`, Description: "such that"},
	{Aliases: []string{"not", "neg"}, Latex: `\neg`, Description: "logical negation"},
	{Aliases: []string{"and", "wedge"}, Latex: `\land`, Description: "logical conjunction"},
	{Aliases: []string{"or", "vee"}, Latex: `\lor`, Description: "logical disjunction"},
	{Aliases: []string{"implies", "=>"}, Latex: `\implies`, Description: "implication"},
	{Aliases: []string{"iff", "<=>"}, Latex: `\iff`, Description: "if and only if"},
	{Aliases: []string{"therefore"}, Latex: `\therefore`, Description: "therefore"},
	{Aliases: []string{"because"}, Latex: `\because`, Description: "because"},
	{Aliases: []string{"qed"}, Latex: `\blacksquare`, Description: "end of proof"},

	// sets
	{Aliases: []string{"in", "an element of", "element of"}, Latex: `\in`, Description: "set membership"},
	{Aliases: []string{"notin", "not in"}, Latex: `\notin`, Description: "negated membership"},
	{Aliases: []string{"subset"}, Latex: `\subseteq`, Description: "subset"},
	{Aliases: []string{"union", "cup"}, Latex: `\cup`, Description: "set union"},
	{Aliases: []string{"intersect", "cap"}, Latex: `\cap`, Description: "set intersection"},
	{Aliases: []string{"setminus"}, Latex: `\setminus`, Description: "set difference"},
	{Aliases: []string{"emptyset", "empty set"}, Latex: `\emptyset`, Description: "empty set"},
	{Aliases: []string{"RR", "reals"}, Latex: `\mathbb{R}`, Description: "real numbers"},
	{Aliases: []string{"ZZ", "integers"}, Latex: `\mathbb{Z}`, Description: "integers"},
	{Aliases: []string{"NN", "naturals"}, Latex: `\mathbb{N}`, Description: "natural numbers"},
	{Aliases: []string{"QQ", "rationals"}, Latex: `\mathbb{Q}`, Description: "rational numbers"},
	{Aliases: []string{"CC", "complexes"}, Latex: `\mathbb{C}`, Description: "complex numbers"},

	// operators & relations
	{Aliases: []string{"int", "integral"}, Latex: `\int`, Description: "integral"},
	{Aliases: []string{"sum"}, Latex: `\sum`, Description: "summation"},
	{Aliases: []string{"prod", "product"}, Latex: `\prod`, Description: "product"},
	{Aliases: []string{"inf", "infinity"}, Latex: `\infty`, Description: "infinity"},
	{Aliases: []string{"partial"}, Latex: `\partial`, Description: "partial derivative"},
	{Aliases: []string{"nabla", "grad"}, Latex: `\nabla`, Description: "gradient"},
	{Aliases: []string{"pm", "plus minus"}, Latex: `\pm`, Description: "plus or minus"},
	{Aliases: []string{"times", "cross"}, Latex: `\times`, Description: "multiplication cross"},
	{Aliases: []string{"cdot", "dot"}, Latex: `\cdot`, Description: "multiplication dot"},
	{Aliases: []string{"leq", "<="}, Latex: `\leq`, Description: "less than or equal"},
	{Aliases: []string{"geq", ">="}, Latex: `\geq`, Description: "greater than or equal"},
	{Aliases: []string{"neq", "!="}, Latex: `\neq`, Description: "not equal"},
	{Aliases: []string{"approx"}, Latex: `\approx`, Description: "approximately equal"},
	{Aliases: []string{"equiv"}, Latex: `\equiv`, Description: "equivalence"},
	{Aliases: []string{"to", "->"}, Latex: `\to`, Description: "maps to / tends to"},
	{Aliases: []string{"mapsto"}, Latex: `\mapsto`, Description: "maps to (element level)"},
	{Aliases: []string{"dots", "..."}, Latex: `\dots`, Description: "ellipsis"},

	// greek letters
	{Aliases: []string{"alpha"}, Latex: `\alpha`, Description: "greek alpha"},
	{Aliases: []string{"beta"}, Latex: `\beta`, Description: "greek beta"},
	{Aliases: []string{"gamma"}, Latex: `\gamma`, Description: "greek gamma"},
	{Aliases: []string{"delta"}, Latex: `\delta`, Description: "greek delta"},
	{Aliases: []string{"epsilon", "eps"}, Latex: `\varepsilon`, Description: "greek epsilon"},
	{Aliases: []string{"theta"}, Latex: `\theta`, Description: "greek theta"},
	{Aliases: []string{"lambda"}, Latex: `\lambda`, Description: "greek lambda"},
	{Aliases: []string{"mu"}, Latex: `\mu`, Description: "greek mu"},
	{Aliases: []string{"pi"}, Latex: `\pi`, Description: "greek pi"},
	{Aliases: []string{"sigma"}, Latex: `\sigma`, Description: "greek sigma"},
	{Aliases: []string{"phi"}, Latex: `\varphi`, Description: "greek phi"},
	{Aliases: []string{"omega"}, Latex: `\omega`, Description: "greek omega"},
}

var templates = []*types.Template{
	{
		Patterns:    []string{"mod {}"},
		Latex:       `\!\pmod{$0}`,
		Description: "congruence modulus",
	},
	{
		AliasGroups: [][]string{{"if", "when"}, {"then"}},
		Latex:       `$0 \implies $1`,
		Description: "implication between two clauses",
	},
	{
		Patterns:    []string{"sqrt {}"},
		Latex:       `\sqrt{$0}`,
		Description: "square root",
	},
	{
		Patterns:    []string{"{} over {}"},
		Latex:       `\frac{$0}{$1}`,
		Description: "fraction",
	},
	{
		Patterns:    []string{"{} choose {}"},
		Latex:       `\binom{$0}{$1}`,
		Description: "binomial coefficient",
	},
	{
		AliasGroups: [][]string{{"sum from"}, {"to"}},
		Latex:       `\sum_{$0}^{$1}`,
		Description: "bounded summation",
	},
	{
		Patterns:    []string{"abs {}"},
		Latex:       `\left|$0\right|`,
		Description: "absolute value",
	},
	{
		Patterns:    []string{"vec {}"},
		Latex:       `\vec{$0}`,
		Description: "vector arrow",
	},
	{
		Patterns:    []string{"bar {}"},
		Latex:       `\overline{$0}`,
		Description: "overline",
	},
}

// Commands returns the built-in command table. The slice is fresh on every
// call so callers may append without aliasing the package data.
func Commands() []*types.Command {
	return append([]*types.Command(nil), commands...)
}

// Templates returns the built-in template table, fresh on every call.
func Templates() []*types.Template {
	return append([]*types.Template(nil), templates...)
}

// Dictionary describes the built-in tables as (commands, templates) in one
// call, the shape the qed constructors consume.
func Dictionary() ([]*types.Command, []*types.Template) {
	return Commands(), Templates()
}
