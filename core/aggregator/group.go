// ABOUTME: Row aggregator groups provider rows into the author/model/provider presentation form
// ABOUTME: Grouping keeps first-seen order at every level and never reorders rows

package aggregator

import (
	"strings"

	"opencosts-api/core/domain"
)

// AuthorOf derives the display author from a model name: text before the first
// colon when present, otherwise text before the first slash. Display only.
func AuthorOf(modelName string) string {
	if author, _, found := strings.Cut(modelName, ":"); found {
		return strings.TrimSpace(author)
	}
	author, _, _ := strings.Cut(modelName, "/")
	return strings.TrimSpace(author)
}

// GroupByAuthor nests rows as author -> model name -> providers. Authors and models
// appear in first-seen order and providers keep row order.
func GroupByAuthor(rows []domain.ProviderRow) []domain.AuthorGroup {
	groups := make([]domain.AuthorGroup, 0)
	authorIndex := make(map[string]int)
	modelIndex := make(map[string]map[string]int)

	for _, row := range rows {
		author := AuthorOf(row.ModelName)

		ai, ok := authorIndex[author]
		if !ok {
			ai = len(groups)
			authorIndex[author] = ai
			modelIndex[author] = make(map[string]int)
			groups = append(groups, domain.AuthorGroup{Name: author, Models: []domain.ModelGroup{}})
		}

		mi, ok := modelIndex[author][row.ModelName]
		if !ok {
			mi = len(groups[ai].Models)
			modelIndex[author][row.ModelName] = mi
			groups[ai].Models = append(groups[ai].Models, domain.ModelGroup{
				Name: row.ModelName,
				URL:  row.ModelURL,
				ID:   row.ModelID,
			})
		}

		model := &groups[ai].Models[mi]
		model.Providers = append(model.Providers, row)
	}

	for ai := range groups {
		for mi := range groups[ai].Models {
			model := &groups[ai].Models[mi]
			model.Prices = SummarizePrices(model.Providers)
		}
	}

	return groups
}
