// Package migmap locates and parses IntelliJ IDEA migration map files.
//
// A migration map is an XML document enumerating old->new fully-qualified
// identifier renames for the IDE's legacy Migrate refactoring. Recognized
// shape:
//
//	<migrationMap>
//	  <name value="Test Migration" />
//	  <entry oldName="com.old.Foo" newName="com.new.Foo" type="class" />
//	  <entry oldName="com.old" newName="com.new" type="package" />
//	</migrationMap>
//
// Non-migration XML files routinely share a tree with migration maps, so
// recognition is deliberately forgiving: a wrong root element or an entry
// missing one of its attributes means "not a migration map", not an error.
package migmap
