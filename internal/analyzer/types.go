package analyzer

// Token is one annotated token of an utterance. Start/End are byte offsets
// into the original text.
type Token struct {
	Text  string
	Lemma string
	Tag   string // Penn Treebank POS tag
	Role  string // coarse dependency role: subj | pred | obj | mod
	Start int
	End   int
}

// Coarse dependency roles assigned by the analyzer.
const (
	RoleSubject   = "subj"
	RolePredicate = "pred"
	RoleObject    = "obj"
	RoleModifier  = "mod"
)
