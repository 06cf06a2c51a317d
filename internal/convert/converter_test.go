package convert

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/TwelveIterations/intellij-to-openrewrite/internal/recipe"
)

const twoClassMap = `<?xml version="1.0" encoding="UTF-8"?>
<migrationMap>
  <name value="Test Migration" />
  <entry oldName="com.old.Foo" newName="com.new.Foo" type="class" />
  <entry oldName="com.old" newName="com.new" type="package" />
  <entry oldName="com.old.Bar" newName="com.new.Bar" type="class" />
</migrationMap>`

// writeFile creates a file (and its parent directories) under root.
func writeFile(t *testing.T, root, rel, content string) {
	t.Helper()

	path := filepath.Join(root, rel)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func readRecipe(t *testing.T, path string) recipe.Recipe {
	t.Helper()

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var r recipe.Recipe
	require.NoError(t, yaml.Unmarshal(data, &r))

	return r
}

func TestConvert(t *testing.T) {
	in, out := t.TempDir(), t.TempDir()
	writeFile(t, in, "migration.xml", twoClassMap)

	count, err := New(nil).Convert(in, out)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	r := readRecipe(t, filepath.Join(out, "Test-Migration.yml"))
	assert.Equal(t, recipe.Namespace+".Test-Migration", r.Name)
	assert.Equal(t, "Test-Migration", r.DisplayName)
	require.Len(t, r.RecipeList, 2)
	for _, rule := range r.RecipeList {
		assert.True(t, rule.IgnoreDefinition)
	}
	assert.Equal(t, "com.old.Foo", r.RecipeList[0].OldFullyQualifiedTypeName)
	assert.Equal(t, "com.old.Bar", r.RecipeList[1].OldFullyQualifiedTypeName)
}

func TestConvert_EmptyTree(t *testing.T) {
	in, out := t.TempDir(), t.TempDir()
	writeFile(t, in, "sub/notes.txt", "nothing to see")

	count, err := New(nil).Convert(in, out)
	require.NoError(t, err)
	assert.Zero(t, count)

	files, err := os.ReadDir(out)
	require.NoError(t, err)
	assert.Empty(t, files)
}

func TestConvert_NestedDiscovery(t *testing.T) {
	in, out := t.TempDir(), t.TempDir()
	writeFile(t, in, "a/b/c/d/migration.xml", twoClassMap)

	count, err := New(nil).Convert(in, out)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestConvert_FileNameFallback(t *testing.T) {
	in, out := t.TempDir(), t.TempDir()
	writeFile(t, in, "my map.xml", `<migrationMap>
  <entry oldName="a.B" newName="c.D" type="class" />
</migrationMap>`)

	count, err := New(nil).Convert(in, out)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	// No declared name: base name minus extension, sanitized.
	r := readRecipe(t, filepath.Join(out, "my-map.yml"))
	assert.Equal(t, recipe.Namespace+".my-map", r.Name)
	require.Len(t, r.RecipeList, 1)
}

func TestConvert_SingleEntryMap(t *testing.T) {
	in, out := t.TempDir(), t.TempDir()
	writeFile(t, in, "single.xml", `<migrationMap>
  <name value="Single" />
  <entry oldName="a.B" newName="c.D" type="class" />
</migrationMap>`)

	count, err := New(nil).Convert(in, out)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	r := readRecipe(t, filepath.Join(out, "Single.yml"))
	require.Len(t, r.RecipeList, 1)
}

func TestConvert_OnlyNonClassEntries(t *testing.T) {
	in, out := t.TempDir(), t.TempDir()
	writeFile(t, in, "pkgonly.xml", `<migrationMap>
  <name value="Packages" />
  <entry oldName="com.old" newName="com.new" type="package" />
</migrationMap>`)

	count, err := New(nil).Convert(in, out)
	require.NoError(t, err)
	assert.Zero(t, count)

	files, err := os.ReadDir(out)
	require.NoError(t, err)
	assert.Empty(t, files)
}

func TestConvert_UnrelatedXML(t *testing.T) {
	in, out := t.TempDir(), t.TempDir()
	writeFile(t, in, "pom.xml", `<project><artifactId>x</artifactId></project>`)

	count, err := New(nil).Convert(in, out)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestConvert_MalformedFileDoesNotAbortBatch(t *testing.T) {
	in, out := t.TempDir(), t.TempDir()
	writeFile(t, in, "a/broken.xml", `<migrationMap><entry oldName=`)
	writeFile(t, in, "b/good.xml", twoClassMap)

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	count, err := New(logger).Convert(in, out)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	// The failure is logged with the offending path.
	assert.Contains(t, buf.String(), "broken.xml")
}

func TestConvert_CreatesNestedOutputDir(t *testing.T) {
	in := t.TempDir()
	out := filepath.Join(t.TempDir(), "deep", "er", "out")
	writeFile(t, in, "migration.xml", twoClassMap)

	count, err := New(nil).Convert(in, out)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	_, err = os.Stat(filepath.Join(out, "Test-Migration.yml"))
	assert.NoError(t, err)
}

func TestConvert_MissingInputDir(t *testing.T) {
	_, err := New(nil).Convert(filepath.Join(t.TempDir(), "nope"), t.TempDir())
	assert.Error(t, err)
}

func TestConvertReport(t *testing.T) {
	in, out := t.TempDir(), t.TempDir()
	writeFile(t, in, "good.xml", twoClassMap)
	writeFile(t, in, "pom.xml", `<project />`)
	writeFile(t, in, "pkgonly.xml", `<migrationMap>
  <entry oldName="com.old" newName="com.new" type="package" />
</migrationMap>`)
	writeFile(t, in, "broken.xml", `<migrationMap><entry`)

	rep, err := New(nil).ConvertReport(in, out)
	require.NoError(t, err)

	assert.Equal(t, 1, rep.Count())
	require.Len(t, rep.Written, 1)
	assert.Equal(t, 2, rep.Written[0].Rules)
	assert.Equal(t, filepath.Join(out, "Test-Migration.yml"), rep.Written[0].Dest)

	require.Len(t, rep.Skipped, 3)
	reasons := map[string]string{}
	for _, s := range rep.Skipped {
		reasons[filepath.Base(s.Source)] = s.Reason
	}
	assert.Equal(t, ReasonNotMigrationMap, reasons["pom.xml"])
	assert.Equal(t, ReasonNoClassEntries, reasons["pkgonly.xml"])
	assert.Equal(t, ReasonParseFailed, reasons["broken.xml"])
}

func TestConvert_NameCollisionLastWriterWins(t *testing.T) {
	in, out := t.TempDir(), t.TempDir()
	writeFile(t, in, "a.xml", `<migrationMap>
  <name value="Same Name" />
  <entry oldName="a.A" newName="b.A" type="class" />
</migrationMap>`)
	writeFile(t, in, "b.xml", `<migrationMap>
  <name value="Same Name" />
  <entry oldName="a.B" newName="b.B" type="class" />
</migrationMap>`)

	count, err := New(nil).Convert(in, out)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	// Both conversions count, but only one file survives.
	files, err := os.ReadDir(out)
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, "Same-Name.yml", files[0].Name())
}
