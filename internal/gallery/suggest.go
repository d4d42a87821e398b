package gallery

import "github.com/sahilm/fuzzy"

// Suggestions returns up to n card names that fuzzily match the committed
// search term. It only offers names when the search matched nothing, since
// otherwise the gallery already shows the cards.
func (p *Pipeline) Suggestions(n int) []string {
	term := p.criteria.SearchTerm
	if term == "" || n <= 0 || p.Status() != StatusNoMatches {
		return nil
	}

	seen := make(map[string]bool, len(p.cards))
	names := make([]string, 0, len(p.cards))
	for _, c := range p.cards {
		if c.DisplayName == "" || seen[c.DisplayName] {
			continue
		}
		seen[c.DisplayName] = true
		names = append(names, c.DisplayName)
	}

	matches := fuzzy.Find(term, names)
	out := make([]string, 0, min(n, len(matches)))
	for _, m := range matches {
		if len(out) == n {
			break
		}
		out = append(out, m.Str)
	}
	return out
}
