// Package rules provides ordered rule chains for sequence evaluation.
//
// A Chain is exclusive: rules are tried in priority order and the first
// matching rule produces the result. A Checklist is inclusive: every
// matching check contributes a finding, in declaration order.
package rules

// Rule pairs a predicate with the result it produces when it matches.
type Rule[In, Out any] struct {
	Name  string
	When  func(In) bool
	Build func(In) Out
}

// Chain is a priority-ordered list of rules.
type Chain[In, Out any] struct {
	rules    []Rule[In, Out]
	fallback func(In) Out
}

// NewChain creates a chain that returns fallback when no rule matches.
func NewChain[In, Out any](fallback func(In) Out, rules ...Rule[In, Out]) *Chain[In, Out] {
	return &Chain[In, Out]{rules: rules, fallback: fallback}
}

// Evaluate returns the result of the first matching rule and its name.
// The name is empty when the fallback was used.
func (c *Chain[In, Out]) Evaluate(in In) (Out, string) {
	for _, rule := range c.rules {
		if rule.When(in) {
			return rule.Build(in), rule.Name
		}
	}
	return c.fallback(in), ""
}

// Rule returns the named rule, for testing a single rule in isolation.
func (c *Chain[In, Out]) Rule(name string) (Rule[In, Out], bool) {
	for _, rule := range c.rules {
		if rule.Name == name {
			return rule, true
		}
	}
	return Rule[In, Out]{}, false
}

// Names lists rule names in priority order.
func (c *Chain[In, Out]) Names() []string {
	names := make([]string, len(c.rules))
	for i, rule := range c.rules {
		names[i] = rule.Name
	}
	return names
}

// Check is a non-exclusive rule producing a finding.
type Check[In any] struct {
	Name    string
	When    func(In) bool
	Message func(In) string
}

// Checklist collects findings from every matching check.
type Checklist[In any] struct {
	checks []Check[In]
}

// NewChecklist creates a checklist from checks in reporting order.
func NewChecklist[In any](checks ...Check[In]) *Checklist[In] {
	return &Checklist[In]{checks: checks}
}

// Collect returns the message of every matching check, in order.
func (c *Checklist[In]) Collect(in In) []string {
	var findings []string
	for _, check := range c.checks {
		if check.When(in) {
			findings = append(findings, check.Message(in))
		}
	}
	return findings
}

// Names lists check names in reporting order.
func (c *Checklist[In]) Names() []string {
	names := make([]string, len(c.checks))
	for i, check := range c.checks {
		names[i] = check.Name
	}
	return names
}
