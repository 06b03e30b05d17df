package tag

// closedClass maps function words to their tags. Lookup happens before
// any suffix rule, so "does" never falls through to the plural rule.
var closedClass = map[string]string{
	// determiners
	"the": "DT", "a": "DT", "an": "DT", "this": "DT", "that": "DT",
	"these": "DT", "those": "DT", "each": "DT", "every": "DT",
	"some": "DT", "any": "DT", "no": "DT", "all": "DT", "both": "DT",

	// prepositions
	"of": "IN", "in": "IN", "on": "IN", "at": "IN", "by": "IN",
	"for": "IN", "with": "IN", "from": "IN", "into": "IN", "over": "IN",
	"under": "IN", "about": "IN", "after": "IN", "before": "IN",
	"between": "IN", "through": "IN", "during": "IN", "against": "IN",
	"without": "IN", "within": "IN", "as": "IN", "like": "IN",
	"than": "IN", "if": "IN", "because": "IN", "while": "IN",
	"since": "IN", "until": "IN",

	"to": "TO",

	// pronouns
	"i": "PRP", "you": "PRP", "he": "PRP", "she": "PRP", "it": "PRP",
	"we": "PRP", "they": "PRP", "me": "PRP", "him": "PRP", "her": "PRP",
	"us": "PRP", "them": "PRP", "itself": "PRP", "themselves": "PRP",

	"my": "PRP$", "your": "PRP$", "his": "PRP$", "its": "PRP$",
	"our": "PRP$", "their": "PRP$",

	// conjunctions
	"and": "CC", "or": "CC", "but": "CC", "nor": "CC", "yet": "CC",
	"so": "CC",

	// modals
	"can": "MD", "could": "MD", "will": "MD", "would": "MD",
	"shall": "MD", "should": "MD", "may": "MD", "might": "MD",
	"must": "MD",

	// auxiliaries and copulas
	"is": "VBZ", "are": "VBP", "am": "VBP", "was": "VBD", "were": "VBD",
	"be": "VB", "been": "VBN", "being": "VBG",
	"has": "VBZ", "have": "VBP", "had": "VBD", "having": "VBG",
	"do": "VBP", "does": "VBZ", "did": "VBD", "done": "VBN",

	// wh-words
	"which": "WDT", "who": "WP", "whom": "WP", "whose": "WP$",
	"what": "WP", "where": "WRB", "when": "WRB", "why": "WRB",
	"how": "WRB",

	// frequent adverbs
	"not": "RB", "n't": "RB", "very": "RB", "too": "RB", "also": "RB",
	"then": "RB", "there": "RB", "here": "RB", "now": "RB",
	"just": "RB", "only": "RB", "more": "RBR", "most": "RBS",
	"well": "RB", "even": "RB", "still": "RB", "never": "RB",
	"always": "RB", "often": "RB", "again": "RB",
}

// verbForms tags frequent verbs whose form gives no suffix signal.
var verbForms = map[string]string{
	"go": "VB", "make": "VB", "take": "VB", "get": "VB", "come": "VB",
	"see": "VB", "know": "VB", "give": "VB", "find": "VB", "tell": "VB",
	"become": "VB", "leave": "VB", "bring": "VB", "begin": "VB",
	"keep": "VB", "hold": "VB", "write": "VB", "stand": "VB",
	"hear": "VB", "mean": "VB", "meet": "VB", "run": "VB", "pay": "VB",
	"sit": "VB", "speak": "VB", "lead": "VB", "grow": "VB",
	"lose": "VB", "fall": "VB", "send": "VB", "build": "VB",
	"break": "VB", "spend": "VB", "rise": "VB", "drive": "VB",
	"buy": "VB", "wear": "VB", "choose": "VB", "use": "VB",
	"need": "VB", "want": "VB", "help": "VB", "show": "VB",
	"move": "VB", "turn": "VB", "start": "VB", "put": "VB",
	"say": "VB", "think": "VB", "look": "VB", "work": "VB",
	"call": "VB", "try": "VB", "ask": "VB", "feel": "VB", "seem": "VB",
	"let": "VB", "read": "VB", "set": "VB", "play": "VB",

	"went": "VBD", "said": "VBD", "made": "VBD", "took": "VBD",
	"got": "VBD", "came": "VBD", "saw": "VBD", "knew": "VBD",
	"gave": "VBD", "found": "VBD", "told": "VBD", "became": "VBD",
	"left": "VBD", "brought": "VBD", "began": "VBD", "kept": "VBD",
	"held": "VBD", "wrote": "VBD", "stood": "VBD", "heard": "VBD",
	"meant": "VBD", "met": "VBD", "ran": "VBD", "paid": "VBD",
	"sat": "VBD", "spoke": "VBD", "led": "VBD", "grew": "VBD",
	"lost": "VBD", "fell": "VBD", "sent": "VBD", "built": "VBD",
	"broke": "VBD", "spent": "VBD", "rose": "VBD", "drove": "VBD",
	"bought": "VBD", "wore": "VBD", "chose": "VBD", "felt": "VBD",
	"thought": "VBD", "understood": "VBD", "drew": "VBD",
}

var irregularNouns = map[string]string{
	"men": "man", "women": "woman", "children": "child",
	"people": "person", "feet": "foot", "teeth": "tooth",
	"mice": "mouse", "geese": "goose", "data": "datum",
}

var irregularVerbs = map[string]string{
	"is": "be", "are": "be", "am": "be", "was": "be", "were": "be",
	"been": "be", "being": "be",
	"has": "have", "had": "have", "having": "have",
	"does": "do", "did": "do", "done": "do",
	"went": "go", "gone": "go", "goes": "go",
	"said": "say", "made": "make", "took": "take", "got": "get",
	"came": "come", "saw": "see", "seen": "see", "knew": "know",
	"known": "know", "gave": "give", "given": "give", "found": "find",
	"told": "tell", "became": "become", "left": "leave",
	"brought": "bring", "began": "begin", "begun": "begin",
	"kept": "keep", "held": "hold", "wrote": "write",
	"written": "write", "stood": "stand", "heard": "hear",
	"meant": "mean", "met": "meet", "ran": "run", "paid": "pay",
	"sat": "sit", "spoke": "speak", "spoken": "speak", "led": "lead",
	"grew": "grow", "grown": "grow", "lost": "lose", "fell": "fall",
	"fallen": "fall", "sent": "send", "built": "build",
	"broke": "break", "broken": "break", "spent": "spend",
	"rose": "rise", "risen": "rise", "drove": "drive",
	"driven": "drive", "bought": "buy", "wore": "wear", "worn": "wear",
	"chose": "choose", "chosen": "choose", "felt": "feel",
	"thought": "think", "understood": "understand", "drew": "draw",
	"drawn": "draw",
}
