package cslex

import (
	"fmt"
	"regexp"
	"strings"
	"sync"
)

// Rule pairs a regular expression with the token kind it produces. Patterns
// are always anchored to the start of the scan buffer.
type Rule struct {
	Pattern string
	Kind    Kind
}

type compiledRule struct {
	re   *regexp.Regexp
	kind Kind
}

// RuleSet is an ordered, immutable list of rules. The first rule that matches
// the scan buffer wins. A RuleSet can be shared by any number of scanners.
type RuleSet struct {
	rules []compiledRule
}

func NewRuleSet(rules ...Rule) (*RuleSet, error) {
	rs := &RuleSet{rules: make([]compiledRule, 0, len(rules))}
	for _, r := range rules {
		pattern := r.Pattern
		if !strings.HasPrefix(pattern, "^") {
			pattern = "^" + pattern
		}
		re, err := regexp.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("token rule %s %q: %w", r.Kind, r.Pattern, err)
		}
		rs.rules = append(rs.rules, compiledRule{re: re, kind: r.Kind})
	}
	return rs, nil
}

func (rs *RuleSet) Len() int {
	return len(rs.rules)
}

// Match returns the kind of the first rule matching buf.
func (rs *RuleSet) Match(buf []byte) (Kind, bool) {
	for _, r := range rs.rules {
		if r.re.Match(buf) {
			return r.kind, true
		}
	}
	return 0, false
}

var defaultRules = []Rule{
	{`^;`, End},
	{`^[-.~!$%^&*+=|:?]`, Operator},
	{`^/[^/]`, Slash},
	{`^,`, ListSeparator},
	{`^\(`, GroupOpen},
	{`^\)`, GroupClose},
	{`^\{`, BlockOpen},
	{`^\}`, BlockClose},
	{`^[a-zA-Z_][a-zA-Z0-9_]*[^a-zA-Z0-9_]$`, Identifier},
	{`^([0-9]+)[.]([0-9]+)[^0-9]$`, FloatLiteral},
	{`^([0-9]+)[^0-9.]$`, IntLiteral},
	{`^"([^\\"]|\\.)*"`, StringLiteral},
	{`^\[`, ListOpen},
	{`^\]`, ListClose},
	{`^#([a-zA-Z]+) `, Directive},
}

var (
	defaultOnce sync.Once
	defaultSet  *RuleSet
)

// DefaultRules returns the C-Slim token rules. They are compiled on first use
// and shared afterwards.
func DefaultRules() *RuleSet {
	defaultOnce.Do(func() {
		rs, err := NewRuleSet(defaultRules...)
		if err != nil {
			panic(err)
		}
		defaultSet = rs
	})
	return defaultSet
}
