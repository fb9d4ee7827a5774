package sink

import (
	"bufio"
	"io"
	"os"

	"github.com/matzehuels/jarindex/pkg/errors"
)

// Sink receives records from the class lister.
type Sink interface {
	Write(Record) error
}

// Writer is a buffered Sink over an io.Writer.
// It is not safe for concurrent use.
type Writer struct {
	bw     *bufio.Writer
	eol    LineEnding
	closer io.Closer
	count  int
}

// NewWriter returns a Writer that renders records with eol into w.
// The caller keeps ownership of w; Close only flushes.
func NewWriter(w io.Writer, eol LineEnding) *Writer {
	return &Writer{bw: bufio.NewWriter(w), eol: eol}
}

// OpenAppend opens path for appending, creating it if absent, and returns a
// Writer that owns the file. Existing content is never truncated.
func OpenAppend(path string, eol LineEnding) (*Writer, error) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeOutputWrite, err, "open output %s", path)
	}
	w := NewWriter(f, eol)
	w.closer = f
	return w, nil
}

// Write renders r and buffers it.
func (w *Writer) Write(r Record) error {
	if _, err := w.bw.WriteString(r.Format(w.eol)); err != nil {
		return errors.Wrap(errors.ErrCodeOutputWrite, err, "write record for %s", r.ClassName)
	}
	w.count++
	return nil
}

// Count returns the number of records written so far.
func (w *Writer) Count() int { return w.count }

// Flush writes any buffered records to the underlying writer.
func (w *Writer) Flush() error {
	if err := w.bw.Flush(); err != nil {
		return errors.Wrap(errors.ErrCodeOutputWrite, err, "flush output")
	}
	return nil
}

// Close flushes buffered records and, for writers created by OpenAppend,
// closes the file. The file is closed even when the flush fails.
func (w *Writer) Close() error {
	err := w.Flush()
	if w.closer != nil {
		if cerr := w.closer.Close(); cerr != nil && err == nil {
			err = errors.Wrap(errors.ErrCodeOutputWrite, cerr, "close output")
		}
		w.closer = nil
	}
	return err
}

// Collector is an in-memory Sink.
type Collector struct {
	Records []Record
}

// Write appends r.
func (c *Collector) Write(r Record) error {
	c.Records = append(c.Records, r)
	return nil
}

var (
	_ Sink = (*Writer)(nil)
	_ Sink = (*Collector)(nil)
)
