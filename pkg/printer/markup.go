package printer

import "strings"

// Alignment markers understood by the printer agent. Every line of a receipt
// document starts with exactly one of these.
const (
	AlignLeft   = "[L]"
	AlignCenter = "[C]"
	AlignRight  = "[R]"
)

// Font sizes accepted by the <font> tag.
const (
	FontBig  = "big"
	FontTall = "tall"
)

// Bold wraps text in the agent's bold tag.
func Bold(s string) string {
	return "<b>" + s + "</b>"
}

// Underline wraps text in the agent's underline tag.
func Underline(s string) string {
	return "<u>" + s + "</u>"
}

// Font wraps text in the agent's font-size tag. Use FontBig or FontTall.
func Font(size, s string) string {
	return "<font size='" + size + "'>" + s + "</font>"
}

// Document builds a line-markup receipt for the printer agent.
// Lines are joined with "\n" and the document carries no trailing newline,
// which is what the agent expects.
type Document struct {
	lines []string
	width int // characters per line (30 for 48mm paper)
}

// NewDocument creates a markup document with the given character width.
func NewDocument(charWidth int) *Document {
	if charWidth <= 0 {
		charWidth = 30
	}
	return &Document{width: charWidth}
}

// Left appends a left-aligned line.
func (d *Document) Left(s string) *Document {
	d.lines = append(d.lines, AlignLeft+s)
	return d
}

// Center appends a center-aligned line.
func (d *Document) Center(s string) *Document {
	d.lines = append(d.lines, AlignCenter+s)
	return d
}

// Right appends a right-aligned line.
func (d *Document) Right(s string) *Document {
	d.lines = append(d.lines, AlignRight+s)
	return d
}

// Blank appends an empty left-aligned line.
func (d *Document) Blank() *Document {
	return d.Left("")
}

// BlankLines appends n empty lines.
func (d *Document) BlankLines(n int) *Document {
	for i := 0; i < n; i++ {
		d.Blank()
	}
	return d
}

// Pair appends a line with a left-aligned and a right-aligned part.
// Example: "[L]Balance :[R]NAFL 25.00"
func (d *Document) Pair(left, right string) *Document {
	d.lines = append(d.lines, AlignLeft+left+AlignRight+right)
	return d
}

// Separator appends a centered full-width line of the given character.
func (d *Document) Separator(char byte) *Document {
	return d.Center(strings.Repeat(string(char), d.width))
}

// Rule appends a centered dashed separator.
func (d *Document) Rule() *Document {
	return d.Separator('-')
}

// DoubleRule appends a centered "=" separator.
func (d *Document) DoubleRule() *Document {
	return d.Separator('=')
}

// Raw appends an already-marked-up line verbatim.
func (d *Document) Raw(line string) *Document {
	d.lines = append(d.lines, line)
	return d
}

// String returns the assembled markup text.
func (d *Document) String() string {
	return strings.Join(d.lines, "\n")
}
