package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"jsfront/internal/diag"
	"jsfront/internal/source"
)

var (
	errorColor   = color.New(color.FgRed, color.Bold)
	warningColor = color.New(color.FgYellow, color.Bold)
	infoColor    = color.New(color.FgCyan, color.Bold)
)

// Pretty renders every diagnostic in the bag as
//
//	<path>:<line>:<col>: <SEV> <CODE>: <message>
//
// followed, when the file is available in the set, by the source line with a
// ^~~~ underline beneath the offending span. Call bag.Sort() first for a
// stable listing.
func Pretty(w io.Writer, bag *diag.Bag, files *source.Set, opts PrettyOpts) {
	for _, d := range bag.Items() {
		loc := d.Primary
		prefix := loc.Start.String()
		if loc.FileName != "" {
			prefix = loc.FileName + ":" + prefix
		}
		fmt.Fprintf(w, "%s: %s %s: %s\n", prefix, severityLabel(d.Severity, opts.Color), d.Code.ID(), d.Message)

		if !opts.Preview || files == nil {
			continue
		}
		file, ok := files.Get(loc.FileName)
		if !ok {
			continue
		}
		writePreview(w, file, loc)
	}
}

func severityLabel(sev diag.Severity, useColor bool) string {
	if !useColor {
		return sev.String()
	}
	switch sev {
	case diag.SevError:
		return errorColor.Sprint(sev)
	case diag.SevWarning:
		return warningColor.Sprint(sev)
	default:
		return infoColor.Sprint(sev)
	}
}

// writePreview prints the start line of the span with a caret underline.
// Column positions count bytes; the underline is aligned by display width so
// tabs and wide runes in the preview do not skew the caret.
func writePreview(w io.Writer, file *source.File, loc source.Location) {
	line := file.Line(loc.Start.Line)
	col := int(loc.Start.Column)
	if col > len(line) {
		col = len(line)
	}

	spanLen := int(loc.Len())
	if spanLen < 1 {
		spanLen = 1
	}
	if col+spanLen > len(line) {
		spanLen = len(line) - col
		if spanLen < 1 {
			spanLen = 1
		}
	}

	gutter := fmt.Sprintf("%5d | ", loc.Start.Line)
	fmt.Fprintf(w, "%s%s\n", gutter, line)

	pad := runewidth.StringWidth(line[:col])
	width := runewidth.StringWidth(line[col:min(col+spanLen, len(line))])
	if width < 1 {
		width = 1
	}
	underline := "^" + strings.Repeat("~", width-1)
	fmt.Fprintf(w, "%s%s%s\n", strings.Repeat(" ", len(gutter)-2)+"| ", strings.Repeat(" ", pad), underline)
}
