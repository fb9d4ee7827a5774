package maven

import (
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding/ianaindex"

	"github.com/matzehuels/jarindex/pkg/errors"
)

// Coordinate is a Maven artifact coordinate triple.
type Coordinate struct {
	GroupID    string `json:"groupId"`
	ArtifactID string `json:"artifactId"`
	Version    string `json:"version"`
}

// String returns the coordinate in "groupId:artifactId:version" form.
func (c Coordinate) String() string {
	return c.GroupID + ":" + c.ArtifactID + ":" + c.Version
}

// coordinate fields in the order they are reported when missing.
var fields = []string{"groupId", "artifactId", "version"}

// ParseCoordinate decodes a POM document from r and returns the text of the
// first groupId, artifactId and version elements in document order.
//
// The whole document is decoded, so a syntax error after the three elements
// still fails the parse. Element text includes the text of any children and
// is returned untrimmed. Errors carry [errors.ErrCodeXMLParse].
func ParseCoordinate(r io.Reader) (Coordinate, error) {
	dec := xml.NewDecoder(r)
	dec.CharsetReader = charsetReader

	var (
		found   = make(map[string]string, len(fields))
		capture string // element currently being captured
		depth   int    // nesting depth inside the captured element
		text    strings.Builder
		sawRoot bool
	)

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return Coordinate{}, errors.Wrap(errors.ErrCodeXMLParse, err, "malformed pom")
		}

		switch t := tok.(type) {
		case xml.StartElement:
			sawRoot = true
			if capture != "" {
				depth++
				continue
			}
			if isField(t.Name.Local) {
				if _, done := found[t.Name.Local]; !done {
					capture = t.Name.Local
					depth = 0
					text.Reset()
				}
			}
		case xml.EndElement:
			if capture == "" {
				continue
			}
			if depth > 0 {
				depth--
				continue
			}
			found[capture] = text.String()
			capture = ""
		case xml.CharData:
			if capture != "" {
				text.Write(t)
			}
		}
	}

	if !sawRoot {
		return Coordinate{}, errors.New(errors.ErrCodeXMLParse, "malformed pom: no root element")
	}
	for _, f := range fields {
		if _, ok := found[f]; !ok {
			return Coordinate{}, errors.New(errors.ErrCodeXMLParse, "pom has no <%s> element", f)
		}
	}

	return Coordinate{
		GroupID:    found["groupId"],
		ArtifactID: found["artifactId"],
		Version:    found["version"],
	}, nil
}

func isField(name string) bool {
	for _, f := range fields {
		if f == name {
			return true
		}
	}
	return false
}

// charsetReader lets the decoder read POMs declared in legacy encodings
// such as ISO-8859-1, which the xml package rejects on its own.
func charsetReader(label string, input io.Reader) (io.Reader, error) {
	enc, err := ianaindex.IANA.Encoding(label)
	if err != nil {
		return nil, err
	}
	if enc == nil {
		return nil, fmt.Errorf("unsupported charset: %s", label)
	}
	return enc.NewDecoder().Reader(input), nil
}
