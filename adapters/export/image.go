// Package export renders a priced quote into downloadable files: a PNG
// invoice image and an XLSX breakdown workbook.
package export

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"strings"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"oneway-quote/core/output"
	"oneway-quote/internal/errors"
)

const (
	margin     = 24
	lineHeight = 20
	headerRows = 2
)

var (
	brandColor = color.RGBA{R: 0x3b, G: 0x49, B: 0xdf, A: 0xff}
	inkColor   = color.RGBA{R: 0x1e, G: 0x29, B: 0x3b, A: 0xff}
	mutedColor = color.RGBA{R: 0x94, G: 0xa3, B: 0xb8, A: 0xff}
	alertColor = color.RGBA{R: 0xe1, G: 0x1d, B: 0x48, A: 0xff}
)

type lineStyle int

const (
	styleHeader lineStyle = iota
	styleBody
	styleMuted
	styleDiscount
	styleTotal
	styleRule
)

// imageLine is one rendered row: Left is drawn at the margin, Right is
// right-aligned.
type imageLine struct {
	Left  string
	Right string
	Style lineStyle
}

// ImageRenderer draws the invoice as a PNG
type ImageRenderer struct {
	money *output.Money
	width int
	face  font.Face
}

// NewImageRenderer creates a renderer producing images width pixels wide
func NewImageRenderer(money *output.Money, width int) *ImageRenderer {
	return &ImageRenderer{money: money, width: width, face: basicfont.Face7x13}
}

// Render encodes the invoice image as PNG into w
func (r *ImageRenderer) Render(w io.Writer, doc *output.Document) error {
	img := r.Draw(doc)
	if err := png.Encode(w, img); err != nil {
		return errors.Export("encode invoice png", err)
	}
	return nil
}

// Draw rasterizes the invoice; the height grows with the number of lines
func (r *ImageRenderer) Draw(doc *output.Document) *image.RGBA {
	lines := r.layout(doc)
	height := margin*2 + len(lines)*lineHeight
	img := image.NewRGBA(image.Rect(0, 0, r.width, height))

	xdraw.Draw(img, img.Bounds(), image.NewUniform(color.White), image.Point{}, xdraw.Src)
	band := image.Rect(0, 0, r.width, margin+headerRows*lineHeight)
	xdraw.Draw(img, band, image.NewUniform(brandColor), image.Point{}, xdraw.Src)

	for i, line := range lines {
		baseline := margin + i*lineHeight + r.face.Metrics().Ascent.Ceil()
		if line.Style == styleRule {
			y := margin + i*lineHeight + lineHeight/2
			xdraw.Draw(img, image.Rect(margin, y, r.width-margin, y+1), image.NewUniform(mutedColor), image.Point{}, xdraw.Src)
			continue
		}

		ink := r.inkFor(line.Style)
		r.drawText(img, line.Left, margin, baseline, ink)
		if line.Right != "" {
			x := r.width - margin - font.MeasureString(r.face, line.Right).Ceil()
			r.drawText(img, line.Right, x, baseline, ink)
		}
	}
	return img
}

func (r *ImageRenderer) drawText(img *image.RGBA, s string, x, y int, ink color.Color) {
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(ink),
		Face: r.face,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(s)
}

func (r *ImageRenderer) inkFor(style lineStyle) color.Color {
	switch style {
	case styleHeader:
		return color.White
	case styleMuted:
		return mutedColor
	case styleDiscount:
		return alertColor
	case styleTotal:
		return brandColor
	default:
		return inkColor
	}
}

// layout turns the document into rows. basicfont only covers ASCII, so the
// chat decorations of the text invoice are left out.
func (r *ImageRenderer) layout(doc *output.Document) []imageLine {
	b := doc.Breakdown
	lines := []imageLine{
		{Left: "RINCIAN PENAWARAN JASA", Right: output.FormatDate(doc.Date), Style: styleHeader},
		{Left: "by " + asciiOnly(doc.Business), Style: styleHeader},
		{Left: "Klien: " + asciiOnly(orDash(doc.Client)), Style: styleBody},
		{Left: "Toko: " + asciiOnly(orDash(doc.Shop)), Style: styleBody},
		{Style: styleRule},
	}

	items := doc.Lines()
	if len(items) == 0 {
		lines = append(lines, imageLine{Left: "(Belum ada layanan dipilih)", Style: styleMuted})
	}
	for _, item := range items {
		switch item.Kind {
		case output.LineService:
			lines = append(lines, imageLine{
				Left:  fmt.Sprintf("%s (%dx)", item.Label, item.Count),
				Right: r.money.Format(item.Total),
				Style: styleBody,
			})
		case output.LineLogo:
			lines = append(lines, imageLine{Left: item.Label, Right: r.money.Format(item.Total), Style: styleBody})
			lines = append(lines, imageLine{Left: "  " + asciiOnly(item.Detail), Style: styleMuted})
		default:
			lines = append(lines, imageLine{Left: asciiOnly(item.Label), Right: r.money.Format(item.Total), Style: styleBody})
		}
	}

	lines = append(lines,
		imageLine{Style: styleRule},
		imageLine{Left: "Subtotal", Right: r.money.Format(b.Subtotal), Style: styleBody},
		imageLine{Left: "Diskon", Right: "-" + r.money.Format(b.Discount), Style: styleDiscount},
		imageLine{Left: "TOTAL BAYAR", Right: r.money.Format(b.GrandTotal), Style: styleTotal},
	)
	return lines
}

func asciiOnly(s string) string {
	return strings.Map(func(r rune) rune {
		if r < 0x20 || r > 0x7e {
			return '?'
		}
		return r
	}, s)
}

func orDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}
