package render

import (
	"fmt"
	"strings"
)

// SVGSurface renders DrawRect calls into a standalone SVG document.
type SVGSurface struct {
	width  int
	height int
	sb     strings.Builder
}

// NewSVGSurface creates an SVG surface with a fixed document size.
func NewSVGSurface(width, height int) *SVGSurface {
	s := &SVGSurface{width: width, height: height}
	s.sb.WriteString(fmt.Sprintf(
		`<svg width="%d" height="%d" xmlns="http://www.w3.org/2000/svg">`+"\n",
		width, height))
	return s
}

// attrEscaper keeps color strings from breaking out of their XML
// attributes; a hostile or mistyped config yields odd colors, not
// malformed markup.
var attrEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
)

// DrawRect appends one rect element. Implements Surface.
func (s *SVGSurface) DrawRect(x, y, width, height int, fill, outline string) {
	s.sb.WriteString(fmt.Sprintf(
		`  <rect x="%d" y="%d" width="%d" height="%d" fill="%s" stroke="%s"/>`+"\n",
		x, y, width, height, attrEscaper.Replace(fill), attrEscaper.Replace(outline)))
}

// String closes the document and returns the full SVG markup. The
// surface stays usable; further DrawRect calls extend the same document.
func (s *SVGSurface) String() string {
	return s.sb.String() + "</svg>\n"
}

// Size returns the document dimensions the surface was created with.
func (s *SVGSurface) Size() (width, height int) {
	return s.width, s.height
}
