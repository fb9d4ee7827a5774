// Package sink writes class records as tab-separated lines.
//
// Each [Record] renders as
//
//	groupId<TAB>artifactId<TAB>version<TAB>className<EOL>
//
// where EOL is selected with a [LineEnding]. A [Writer] wraps any
// io.Writer (typically os.Stdout); [OpenAppend] opens a file in append mode
// so repeated runs accumulate output without truncating earlier content.
package sink
