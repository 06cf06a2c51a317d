package recipe

// OpenRewrite schema constants. Every generated recipe shares the same
// namespace, description, and tags; only the name and rule list vary.
const (
	// TypeRecipe identifies the declarative recipe schema.
	TypeRecipe = "specs.openrewrite.org/v1beta/recipe"
	// TypeChangeType is the rename rule emitted per class entry.
	TypeChangeType = "org.openrewrite.java.ChangeType"
	// Namespace prefixes every generated recipe name.
	Namespace = "org.openrewrite.java.migrate"
	// Description is attached to every generated recipe.
	Description = "Automatically generated from an IntelliJ IDEA migration map."
	// Extension is the output file extension, including the dot.
	Extension = ".yml"
)

// Tags attached to every generated recipe.
var Tags = []string{"java", "migration"}

// Recipe is one OpenRewrite recipe document.
type Recipe struct {
	Type        string       `yaml:"type"`
	Name        string       `yaml:"name"`
	DisplayName string       `yaml:"displayName"`
	Description string       `yaml:"description"`
	Tags        []string     `yaml:"tags"`
	RecipeList  []ChangeType `yaml:"recipeList"`
}

// ChangeType rewrites references to one fully-qualified type name.
// IgnoreDefinition leaves the type's own declaration untouched, so only
// usages are renamed.
type ChangeType struct {
	Type                      string `yaml:"type"`
	OldFullyQualifiedTypeName string `yaml:"oldFullyQualifiedTypeName"`
	NewFullyQualifiedTypeName string `yaml:"newFullyQualifiedTypeName"`
	IgnoreDefinition          bool   `yaml:"ignoreDefinition"`
}
