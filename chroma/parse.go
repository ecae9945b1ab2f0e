package chroma

import (
	"io"
	"os"
	"strconv"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
	"github.com/pkg/errors"
)

// Table listings are the text form emitted by the chroma tool chain: eight
// select/data word pairs, one pair per line, optionally comma separated,
// with '#' or '//' comments.
//
//	# 24-bit GPIO chroma
//	0x000003c0, 0x08000000,
//	0x00000140, 0x08010010,
//	...

var listingLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Comment", Pattern: `(?:#|//)[^\n]*`},
	{Name: "Word", Pattern: `0[xX][0-9a-fA-F]+|[0-9]+`},
	{Name: "Comma", Pattern: `,`},
	{Name: "Whitespace", Pattern: `[ \t\r\n]+`},
})

type word uint32

func (w *word) Capture(values []string) error {
	v, err := strconv.ParseUint(values[0], 0, 32)
	if err != nil {
		return err
	}
	*w = word(v)
	return nil
}

type listingPair struct {
	Select word `parser:"@Word Comma?"`
	Data   word `parser:"@Word Comma?"`
}

type listing struct {
	Pairs []*listingPair `parser:"@@*"`
}

var listingParser = participle.MustBuild[listing](
	participle.Lexer(listingLexer),
	participle.Elide("Comment", "Whitespace"),
)

// ParseTable parses a table listing from r. The listing must hold exactly
// eight entries.
func ParseTable(r io.Reader) (Table, error) {
	l, err := listingParser.Parse("", r)
	if err != nil {
		return Table{}, errors.Wrap(err, "parse table listing")
	}
	return tableOf(l)
}

// ParseTableString parses a table listing from a string.
func ParseTableString(input string) (Table, error) {
	l, err := listingParser.ParseString("", input)
	if err != nil {
		return Table{}, errors.Wrap(err, "parse table listing")
	}
	return tableOf(l)
}

// ParseTableFile parses a table listing from a file.
func ParseTableFile(filename string) (Table, error) {
	f, err := os.Open(filename)
	if err != nil {
		return Table{}, errors.Wrap(err, "open table listing")
	}
	defer f.Close()
	return ParseTable(f)
}

func tableOf(l *listing) (Table, error) {
	var t Table
	if len(l.Pairs) != len(t) {
		return t, errors.Errorf("table listing holds %d entries, want %d", len(l.Pairs), len(t))
	}
	for i, p := range l.Pairs {
		t[i] = Entry{Select: uint32(p.Select), Data: uint32(p.Data)}
	}
	return t, nil
}
