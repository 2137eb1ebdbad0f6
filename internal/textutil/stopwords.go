package textutil

// stopWords is the fixed stop-word set stripped during tokenization.
var stopWords = map[string]struct{}{
	"the": {}, "and": {}, "for": {}, "are": {}, "but": {}, "not": {},
	"you": {}, "all": {}, "can": {}, "had": {}, "her": {}, "was": {},
	"one": {}, "our": {}, "out": {}, "has": {}, "him": {}, "his": {},
	"how": {}, "its": {}, "may": {}, "new": {}, "now": {}, "old": {},
	"see": {}, "two": {}, "way": {}, "who": {}, "did": {}, "get": {},
	"let": {}, "say": {}, "she": {}, "too": {}, "use": {}, "that": {},
	"with": {}, "have": {}, "this": {}, "will": {}, "your": {},
	"from": {}, "they": {}, "know": {}, "want": {}, "been": {},
	"much": {}, "some": {}, "time": {}, "very": {}, "when": {},
	"come": {}, "here": {}, "just": {}, "like": {}, "long": {},
	"make": {}, "many": {}, "more": {}, "most": {}, "over": {},
	"such": {}, "take": {}, "than": {}, "them": {}, "well": {},
	"were": {}, "what": {}, "into": {}, "only": {}, "other": {},
	"their": {}, "there": {}, "these": {}, "thing": {}, "think": {},
	"which": {}, "would": {}, "about": {}, "after": {}, "being": {},
	"every": {}, "where": {}, "while": {}, "could": {}, "should": {},
	"because": {}, "through": {}, "between": {}, "without": {},
	"also": {}, "each": {}, "does": {}, "doing": {}, "during": {},
	"before": {}, "under": {}, "again": {}, "then": {}, "once": {},
	"both": {}, "those": {}, "same": {}, "own": {},
}

// IsStopWord reports whether the token is in the fixed stop-word set.
func IsStopWord(token string) bool {
	_, ok := stopWords[token]
	return ok
}
