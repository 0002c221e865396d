package analyzer

import (
	"strings"

	"github.com/jdkato/prose/v2"
)

// Analyze tokenizes and tags the utterance, preserving original order and
// character offsets. It never fails: empty input yields an empty slice and
// a tagger failure degrades to whitespace tokenization with empty tags.
func (a *Analyzer) Analyze(text string) []Token {
	if strings.TrimSpace(text) == "" {
		return []Token{}
	}

	doc, err := prose.NewDocument(text, prose.WithExtraction(false))
	if err != nil {
		return fallbackTokens(text)
	}

	proseTokens := doc.Tokens()
	tokens := make([]Token, 0, len(proseTokens))
	cursor := 0
	for _, pt := range proseTokens {
		start := strings.Index(text[cursor:], pt.Text)
		if start < 0 {
			// Tokenizer normalized the surface form; skip offset tracking
			// for this token rather than guessing.
			start = 0
		}
		start += cursor
		end := start + len(pt.Text)
		cursor = end

		tokens = append(tokens, Token{
			Text:  pt.Text,
			Lemma: lemma(pt.Text),
			Tag:   pt.Tag,
			Start: start,
			End:   end,
		})
	}

	assignRoles(tokens)
	return tokens
}

// fallbackTokens is the degraded path when the tagger is unavailable.
func fallbackTokens(text string) []Token {
	var tokens []Token
	cursor := 0
	for _, field := range strings.Fields(text) {
		start := strings.Index(text[cursor:], field) + cursor
		end := start + len(field)
		cursor = end
		tokens = append(tokens, Token{
			Text:  field,
			Lemma: lemma(field),
			Role:  RoleModifier,
			Start: start,
			End:   end,
		})
	}
	return tokens
}

// assignRoles derives a coarse dependency role per token: pronouns and
// nominals before the first verb are subjects, verbs are predicates,
// nominals after a verb are objects, everything else is a modifier.
func assignRoles(tokens []Token) {
	seenVerb := false
	for i := range tokens {
		switch {
		case strings.HasPrefix(tokens[i].Tag, "VB") || tokens[i].Tag == "MD":
			tokens[i].Role = RolePredicate
			seenVerb = true
		case strings.HasPrefix(tokens[i].Tag, "NN") || tokens[i].Tag == "PRP":
			if seenVerb {
				tokens[i].Role = RoleObject
			} else {
				tokens[i].Role = RoleSubject
			}
		default:
			tokens[i].Role = RoleModifier
		}
	}
}

// irregularLemmas covers the irregular forms the intent rules care about.
var irregularLemmas = map[string]string{
	"did":   "do",
	"done":  "done",
	"got":   "get",
	"gotta": "gotta",
	"wrote": "write",
	"made":  "make",
	"sent":  "send",
	"went":  "go",
	"is":    "be",
	"am":    "be",
	"are":   "be",
	"was":   "be",
	"were":  "be",
	"has":   "have",
	"had":   "have",
	"'ve":   "have",
	"'m":    "be",
	"'s":    "be",
	"'ll":   "will",
	"'d":    "would",
	"n't":   "not",
}

// knownLemmas anchors suffix stripping: a stripped candidate is only
// accepted when it lands on a word the rule tables use.
var knownLemmas = map[string]bool{
	"complete": true, "finish": true, "accomplish": true, "manage": true,
	"handle": true, "wrap": true, "delete": true, "remove": true,
	"cancel": true, "show": true, "list": true, "display": true,
	"do": true, "add": true, "create": true, "submit": true,
	"prepare": true, "review": true, "build": true, "design": true,
	"research": true, "write": true, "study": true, "plan": true,
	"organize": true, "task": true, "need": true, "want": true,
	"report": true, "assignment": true, "project": true, "homework": true,
	"presentation": true, "essay": true, "chapter": true, "deadline": true,
}

// lemma lowercases and conservatively strips inflection suffixes.
func lemma(word string) string {
	w := strings.ToLower(word)
	if l, ok := irregularLemmas[w]; ok {
		return l
	}
	w = strings.TrimSuffix(w, "'s")

	for _, suffix := range []string{"ed", "ing", "s"} {
		if !strings.HasSuffix(w, suffix) || len(w) <= len(suffix)+2 {
			continue
		}
		stem := w[:len(w)-len(suffix)]
		for _, candidate := range []string{stem, stem + "e", trimDoubledFinal(stem)} {
			if knownLemmas[candidate] {
				return candidate
			}
		}
	}
	return w
}

// trimDoubledFinal undoes consonant doubling ("wrapp" -> "wrap").
func trimDoubledFinal(s string) string {
	if len(s) >= 2 && s[len(s)-1] == s[len(s)-2] {
		return s[:len(s)-1]
	}
	return s
}
