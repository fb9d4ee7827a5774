// Package maven reads Maven coordinates from POM descriptors.
//
// # Overview
//
// A POM is scanned with a streaming XML decoder. The first groupId, the
// first artifactId and the first version element found anywhere in the
// document supply the [Coordinate]; nesting is ignored, so a POM whose
// <parent> block comes first reports the parent's values for any field the
// parent declares before the project does.
//
//	c, err := maven.ParseCoordinate(f)
//	// c.GroupID, c.ArtifactID, c.Version
//
// # Tables
//
// Coordinates are keyed by the file's base name (filename without the
// ".pom" suffix). A [TableBuilder] collects them during a scan and
// [TableBuilder.Build] freezes the result into a read-only [Table]:
//
//	b := maven.NewTableBuilder()
//	b.Put("guava-33.0.0-jre", c)
//	table := b.Build()
//	c, ok := table.Lookup("guava-33.0.0-jre")
package maven
