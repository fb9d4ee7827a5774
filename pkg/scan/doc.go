// Package scan indexes the classes of every jar under a directory tree by
// Maven coordinate.
//
// # Overview
//
// A scan runs two independent depth-first walks over the same root:
//
//  1. [Collect] parses every *.pom file and builds a [maven.Table] keyed by
//     the pom's base name (filename without ".pom").
//  2. [List] opens every *.jar file, lists its top-level classes, looks up
//     the jar's base name in the table and writes one [sink.Record] per class.
//
// [Scanner.Run] composes both passes and returns a single [Report].
//
// # Traversal
//
// Siblings are visited in lexical order, so two scans of an unchanged tree
// produce identical output. Symbolic links to files are followed; symbolic
// links to directories are not, which keeps the walk free of cycles.
//
// # Failures
//
// A malformed pom, an unreadable directory or a jar that is not a zip is
// recorded as a [Failure] in the report and the walk continues. Only
// context cancellation and output write failures stop a scan.
//
// # Missing coordinates
//
// A jar whose base name has no pom is handled according to [MissingPolicy]:
// [MissingSkip] reports it and emits nothing, [MissingEmpty] emits its
// classes with empty coordinate fields.
//
// [maven.Table]: github.com/matzehuels/jarindex/pkg/maven.Table
// [sink.Record]: github.com/matzehuels/jarindex/pkg/sink.Record
package scan
