package contacting

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/agnivade/levenshtein"
	"github.com/maestria/maestria-api/internal/domain"
	"github.com/maestria/maestria-api/internal/usecases/collecting"
	"github.com/maestria/maestria-api/internal/workspace"
)

// Distância normalizada máxima para considerar dois nomes parecidos.
const fuzzyThreshold = 0.4

type Service struct {
	*collecting.Service[domain.Contact]
}

func NewService(state workspace.State) *Service {
	return &Service{
		Service: collecting.NewService(state, "contacts", collecting.Contacts),
	}
}

// Search filtra por tipo e por trecho de nome, empresa, documento ou email.
// Sem resultados por trecho, recorre à semelhança de nome ordenada pela distância.
func (s *Service) Search(term string, kind domain.ContactType) []domain.Contact {
	term = strings.ToLower(strings.TrimSpace(term))

	ofKind := func(c domain.Contact) bool {
		switch kind {
		case "":
			return true
		case domain.ContactTypeSupplier:
			return c.IsSupplier()
		case domain.ContactTypeClient:
			return c.IsClient()
		default:
			return c.Type == kind
		}
	}

	exact := s.List(func(c domain.Contact) bool {
		return ofKind(c) && (term == "" || strings.Contains(haystack(c), term))
	})
	if len(exact) > 0 || term == "" {
		return exact
	}

	type scored struct {
		contact  domain.Contact
		distance float64
	}
	var candidates []scored
	for _, c := range s.List(ofKind) {
		if d := bestDistance(term, c); d < fuzzyThreshold {
			candidates = append(candidates, scored{contact: c, distance: d})
		}
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].distance < candidates[j].distance
	})

	out := make([]domain.Contact, 0, len(candidates))
	for _, c := range candidates {
		out = append(out, c.contact)
	}
	return out
}

// BestMatch retorna o contato cujo nome ou empresa mais se aproxima de name.
func (s *Service) BestMatch(name string) (domain.Contact, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return domain.Contact{}, false
	}

	var (
		best     domain.Contact
		bestDist = fuzzyThreshold
		found    bool
	)
	for _, c := range s.List(nil) {
		if d := bestDistance(name, c); d < bestDist {
			best, bestDist, found = c, d, true
		}
	}
	return best, found
}

func haystack(c domain.Contact) string {
	return strings.ToLower(strings.Join([]string{c.Name, c.Company, c.TaxID, c.Email}, " "))
}

func bestDistance(term string, c domain.Contact) float64 {
	best := 1.0
	for _, field := range []string{c.Name, c.Company} {
		if field == "" {
			continue
		}
		if d := normalizedDistance(term, strings.ToLower(field)); d < best {
			best = d
		}
	}
	return best
}

func normalizedDistance(a, b string) float64 {
	longest := max(utf8.RuneCountInString(a), utf8.RuneCountInString(b))
	if longest == 0 {
		return 0
	}
	return float64(levenshtein.ComputeDistance(a, b)) / float64(longest)
}
