package recipe

import (
	"github.com/TwelveIterations/intellij-to-openrewrite/internal/migmap"
)

// Build assembles the recipe for one migration map. name must already be
// sanitized and entries already filtered to class kind; entry order is
// preserved in the rule list. Pure construction, no I/O.
func Build(name string, entries []migmap.Entry) Recipe {
	rules := make([]ChangeType, 0, len(entries))
	for _, e := range entries {
		rules = append(rules, ChangeType{
			Type:                      TypeChangeType,
			OldFullyQualifiedTypeName: e.OldName,
			NewFullyQualifiedTypeName: e.NewName,
			IgnoreDefinition:          true,
		})
	}

	return Recipe{
		Type:        TypeRecipe,
		Name:        Namespace + "." + name,
		DisplayName: name,
		Description: Description,
		Tags:        Tags,
		RecipeList:  rules,
	}
}
