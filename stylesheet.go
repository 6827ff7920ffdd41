package proseml

import (
	"fmt"
	"math"
	"strings"

	"github.com/aymerick/douceur/css"
	"github.com/aymerick/douceur/parser"
)

const articleRule = "article {width: 800px; margin: 40px auto;}"

// StyleSheet returns the generated stylesheet rules for cfg, in order. Later
// rules may override earlier ones. It returns an empty list when CSS is
// disabled.
func StyleSheet(cfg Config) []string {
	if !cfg.CSS {
		return []string{}
	}
	textAlign := "left"
	if cfg.Justify {
		textAlign = "justify"
	}
	return []string{
		fmt.Sprintf("body {font-family: '%s'; font-size: %dpt;}", cfg.FontFamily, cfg.FontSize),
		fmt.Sprintf("p {text-align: %s; line-height: %d%%;}", textAlign, lineHeightPercent(cfg.LineHeight)),
		"h1, h2 {color: rgb(66, 113, 174);}",
		"h3, h4 {color: rgb(50, 50, 50);}",
		"h1, h2, h3, h4 {page-break-after: avoid;}",
		"a {color: rgb(66, 113, 174);}",
		".title {font-size: 2.5em;}",
		".tags {color: rgb(245, 135, 31); font-weight: bold;}",
		".break {text-align: left;}",
		".sep {text-align: center; margin-top: 1em; margin-bottom: 1em;}",
		".skip {margin-top: 1em; margin-bottom: 1em;}",
		".synopsis {font-style: italic;}",
		".comment {font-style: italic; color: rgb(100, 100, 100);}",
	}
}

// lineHeightPercent rounds half to even, so 1.125 gives 112.
func lineHeightPercent(multiplier float64) int {
	return int(math.RoundToEven(100 * multiplier))
}

// ParseExtraCSS parses a user stylesheet and returns its rules in the
// single-line form used by StyleSheet. At-rules are rejected.
func ParseExtraCSS(src string) ([]string, error) {
	sheet, err := parser.Parse(src)
	if err != nil {
		return nil, &ExtraCSSError{Err: err}
	}
	rules := make([]string, 0, len(sheet.Rules))
	for _, rule := range sheet.Rules {
		if rule.Kind != css.QualifiedRule {
			return nil, &ExtraCSSError{Rule: rule.Name, Err: ErrUnsupportedRule}
		}
		rules = append(rules, formatRule(rule))
	}
	return rules, nil
}

func formatRule(rule *css.Rule) string {
	decls := make([]string, 0, len(rule.Declarations))
	for _, d := range rule.Declarations {
		value := d.Value
		if d.Important {
			value += " !important"
		}
		decls = append(decls, d.Property+": "+value+";")
	}
	return strings.TrimSpace(rule.Prelude) + " {" + strings.Join(decls, " ") + "}"
}
