package parser

// Similarity thresholds: above matchThreshold the parser rewrites the
// verb silently; above suggestThreshold it offers the nearest command
// back to the player instead.
const (
	matchThreshold   = 0.5
	suggestThreshold = 0.34
)

type Parser struct {
	registry *Registry
}

func New() *Parser {
	return &Parser{registry: DefaultRegistry()}
}

func (p *Parser) RegisterCommand(c CommandDef) {
	p.registry.RegisterCommand(c)
}

// Parse resolves one line of input to a canonical command, forgiving
// typos and spoken aliases on the verb. Arguments pass through as-is;
// the session layer validates them.
func (p *Parser) Parse(raw string) Intent {
	intent := Intent{
		Raw:        raw,
		Normalised: normaliseInput(raw),
	}
	tokens := tokenise(intent.Normalised)
	if len(tokens) == 0 {
		return intent
	}

	verb, args := tokens[0], tokens[1:]
	if canonical, ok := p.registry.exact(verb); ok {
		intent.Verb = canonical
		intent.Args = args
		intent.Confidence = 1
		return intent
	}

	nearest, score := p.registry.nearest(verb)
	switch {
	case score >= matchThreshold:
		intent.Verb = nearest
		intent.Args = args
		intent.Confidence = score
	case score >= suggestThreshold:
		intent.Suggestion = nearest
		intent.Confidence = score
	}
	return intent
}
