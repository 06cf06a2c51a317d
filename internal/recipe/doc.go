// Package recipe models OpenRewrite rename recipes and writes them as YAML.
//
// Each recipe carries one ChangeType rule per class rename, with
// ignoreDefinition set so the rewrite touches references only, never the
// type's own declaration site.
//
// Generated document shape:
//
//	type: specs.openrewrite.org/v1beta/recipe
//	name: org.openrewrite.java.migrate.Test-Migration
//	displayName: Test-Migration
//	description: Automatically generated from an IntelliJ IDEA migration map.
//	tags:
//	  - java
//	  - migration
//	recipeList:
//	  - type: org.openrewrite.java.ChangeType
//	    oldFullyQualifiedTypeName: com.old.Foo
//	    newFullyQualifiedTypeName: com.new.Foo
//	    ignoreDefinition: true
package recipe
