package printer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDocumentLines(t *testing.T) {
	doc := NewDocument(30).
		Center(Underline(Font(FontBig, "Merpol"))).
		Blank().
		DoubleRule().
		Pair("Balance :", "NAFL 12.50").
		Rule().
		Center(Bold("No Cash Refunds"))

	want := "[C]<u><font size='big'>Merpol</font></u>\n" +
		"[L]\n" +
		"[C]==============================\n" +
		"[L]Balance :[R]NAFL 12.50\n" +
		"[C]------------------------------\n" +
		"[C]<b>No Cash Refunds</b>"

	assert.Equal(t, want, doc.String())
}

func TestDocumentNoTrailingNewline(t *testing.T) {
	doc := NewDocument(0).Left("last")
	assert.Equal(t, "[L]last", doc.String())
}

func TestDocumentDefaultWidth(t *testing.T) {
	doc := NewDocument(-1).Rule()
	assert.Len(t, doc.String(), len("[C]")+30)
}

func TestBlankLines(t *testing.T) {
	doc := NewDocument(30).BlankLines(2)
	assert.Equal(t, "[L]\n[L]", doc.String())
}
