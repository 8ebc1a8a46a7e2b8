package service

import (
	"regexp"
	"strings"

	"legalease-backend/models"
)

// The rewriter turns adult-register answers into age-appropriate text.
// Every step is a pure string transform: identical (text, level) input
// always produces byte-identical output. Order matters and is fixed:
// term substitution, then line splitting, then truncation, then the
// disclaimer suffix.

const (
	longLineThreshold = 300
	teenMaxLines      = 10
	childMaxLines     = 6

	teenDisclaimer  = "Note: This is a simplified explanation for learning. For a real legal problem, talk to a trusted adult or a lawyer."
	childDisclaimer = "Remember: this is just to help you learn! If you or your family have a real problem with the law, talk to a grown-up you trust."

	bulletOverflowLine = "• (and more, ask a grown-up)"
)

// substitution pairs a precompiled whole-word pattern with its simpler
// replacement
type substitution struct {
	pattern     *regexp.Regexp
	replacement string
}

func compileSubstitutions(pairs [][2]string) []substitution {
	subs := make([]substitution, 0, len(pairs))
	for _, p := range pairs {
		subs = append(subs, substitution{
			pattern:     regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(p[0]) + `\b`),
			replacement: p[1],
		})
	}
	return subs
}

// teenSubstitutions rewrites legal jargon for a 15-year-old reader.
// Applied in declaration order; multi-word terms come before their
// single-word prefixes so the longer term wins.
var teenSubstitutions = compileSubstitutions([][2]string{
	{"cognizable offence", "crime where the police can act without a court order"},
	{"non-bailable offences", "serious crimes where a judge decides on release"},
	{"bailable offences", "less serious crimes where release is a right"},
	{"encumbrance certificate", "record showing the property has no pending loans"},
	{"specific performance", "a court order making someone keep their promise"},
	{"coparcenary", "shared family inheritance"},
	{"plaintiff", "person who filed the case"},
	{"defendant", "person being sued or accused"},
	{"jurisdiction", "the area a court is in charge of"},
	{"affidavit", "written statement made under oath"},
	{"litigation", "court case"},
	{"conciliation", "guided settlement talk"},
	{"rescission", "cancelling the deal"},
	{"retrenchment", "being laid off"},
	{"remuneration", "pay"},
	{"magistrate", "local judge"},
	{"devolves", "passes on"},
	{"evidentiary", "proof-related"},
	{"attested", "signed as witnessed"},
	{"pursuant to", "according to"},
})

// childSubstitutions covers the teen concepts plus extra simplification
// for a 12-year-old reader
var childSubstitutions = compileSubstitutions([][2]string{
	{"cognizable offence", "crime the police can act on right away"},
	{"non-bailable offences", "very serious crimes"},
	{"bailable offences", "less serious crimes"},
	{"encumbrance certificate", "paper showing the property is free of loans"},
	{"specific performance", "a judge making someone keep a promise"},
	{"coparcenary", "family inheritance"},
	{"plaintiff", "person who complained"},
	{"defendant", "person being blamed"},
	{"jurisdiction", "area"},
	{"affidavit", "promise in writing"},
	{"litigation", "court fight"},
	{"conciliation", "talk to fix things"},
	{"rescission", "cancelling"},
	{"retrenchment", "losing a job"},
	{"remuneration", "pay"},
	{"magistrate", "judge"},
	{"devolves", "goes"},
	{"evidentiary", "proof"},
	{"attested", "signed by witnesses"},
	{"pursuant to", "because of"},
	{"compensation", "money to make up for a loss"},
	{"maintenance", "money for living costs"},
	{"provisions", "rules"},
	{"statutes", "written laws"},
	{"statute", "written law"},
	{"entitled to", "allowed to get"},
	{"obligation", "duty"},
	{"accused", "person who may have done it"},
	{"evidence", "proof"},
	{"registered", "officially recorded"},
	{"petition", "request to a court"},
	{"constitutional", "from the country's most important law"},
})

// childExplainers are appended once, after the first occurrence of the
// trigger word, so the youngest readers get the concept inline
var childExplainers = []struct {
	trigger     string
	pattern     *regexp.Regexp
	parenthetic string
}{
	{"court", regexp.MustCompile(`(?i)\bcourts?\b`), " (a place where a judge decides problems)"},
	{"lawyer", regexp.MustCompile(`(?i)\blawyers?\b`), " (a person whose job is to help people with the law)"},
	{"contract", regexp.MustCompile(`(?i)\bcontracts?\b`), " (a written promise the law makes people keep)"},
}

var (
	boldMarker   = regexp.MustCompile(`\*\*`)
	markdownLink = regexp.MustCompile(`\[([^\]]*)\]\([^)]*\)`)
	numberedItem = regexp.MustCompile(`^\s*\d+[.)]\s+`)
	bulletItem   = regexp.MustCompile(`^\s*[-*•]\s+`)
)

// Simplify rewrites text for the target reading level. For the lawyer
// level it is the identity function.
func Simplify(text string, level models.Level) string {
	switch level {
	case models.LevelTeen:
		return simplifyForTeen(text)
	case models.LevelChild:
		return simplifyForChild(text)
	default:
		return text
	}
}

func simplifyForTeen(text string) string {
	out := applySubstitutions(text, teenSubstitutions)

	lines := nonEmptyLines(out)
	for i, line := range lines {
		if len(line) > longLineThreshold {
			lines[i] = firstTwoSentences(line)
		}
	}
	if len(lines) > teenMaxLines {
		lines = lines[:teenMaxLines]
	}

	return strings.Join(lines, "\n") + "\n\n" + teenDisclaimer
}

func simplifyForChild(text string) string {
	out := applySubstitutions(text, childSubstitutions)

	// Strip markdown decoration the youngest readers should not see
	out = boldMarker.ReplaceAllString(out, "")
	out = markdownLink.ReplaceAllString(out, "$1")

	lines := nonEmptyLines(out)

	// Collapse every list style to a uniform bullet
	for i, line := range lines {
		if numberedItem.MatchString(line) {
			lines[i] = "• " + numberedItem.ReplaceAllString(line, "")
		} else if bulletItem.MatchString(line) {
			lines[i] = "• " + bulletItem.ReplaceAllString(line, "")
		}
	}

	lines = trimBulletRuns(lines)

	for i, line := range lines {
		if len(line) > longLineThreshold {
			lines[i] = firstTwoSentences(line)
		}
	}
	if len(lines) > childMaxLines {
		lines = lines[:childMaxLines]
	}

	joined := strings.Join(lines, "\n")
	joined = addChildExplainers(joined)

	return joined + "\n\n" + childDisclaimer
}

func applySubstitutions(text string, subs []substitution) string {
	for _, s := range subs {
		text = s.pattern.ReplaceAllString(text, s.replacement)
	}
	return text
}

func nonEmptyLines(text string) []string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimRight(line, " \t")
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}

// trimBulletRuns keeps only the first three bullets of any run of four
// or more consecutive bullet lines, appending a fixed overflow line
func trimBulletRuns(lines []string) []string {
	isBullet := func(s string) bool { return strings.HasPrefix(s, "• ") }

	var out []string
	i := 0
	for i < len(lines) {
		if !isBullet(lines[i]) {
			out = append(out, lines[i])
			i++
			continue
		}
		j := i
		for j < len(lines) && isBullet(lines[j]) {
			j++
		}
		run := lines[i:j]
		if len(run) >= 4 {
			out = append(out, run[:3]...)
			out = append(out, bulletOverflowLine)
		} else {
			out = append(out, run...)
		}
		i = j
	}
	return out
}

// addChildExplainers appends a parenthetical after the first occurrence
// of each trigger word only
func addChildExplainers(text string) string {
	for _, e := range childExplainers {
		loc := e.pattern.FindStringIndex(text)
		if loc == nil {
			continue
		}
		// Skip if an explanation already follows
		rest := text[loc[1]:]
		if strings.HasPrefix(rest, " (") {
			continue
		}
		text = text[:loc[1]] + e.parenthetic + rest
	}
	return text
}

// firstTwoSentences cuts a long line down to at most its first two
// sentences
func firstTwoSentences(line string) string {
	parts := strings.SplitAfter(line, ". ")
	if len(parts) <= 2 {
		return line
	}
	return strings.TrimRight(parts[0]+parts[1], " ")
}
