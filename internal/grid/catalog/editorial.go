package catalog

import "grid-studio/internal/grid/geometry"

// ============================================================
// Editorial
// ============================================================

var editorial = []entry{
	{"manuscript", "Manuscript", manuscript},
	{"ratio-2-1", "2:1 Ratio", ratio21},
	{"ratio-1-2", "1:2 Ratio", ratio12},
	{"pull-quote", "Pull Quote", pullQuote},
	{"layout-book-page", "Book Page", bookPage},
	{"feature", "Feature", feature},
	{"layout-dual-header", "Dual Header", dualHeader},
	{"layout-hero-split", "Hero Split", heroSplit},
	{"layout-sidebar-stack", "Sidebar Stack", sidebarStack},
	{"layout-poster-block", "Poster Block", posterBlock},
	{"layout-news-mix", "News Mix", newsMix},
	{"layout-catalog", "Catalog", catalogTiles},
	{"asymmetric-compound", "Asymmetric", asymmetricCompound},
}

// placeholder: блок изображения: рамка и косой крест.
func placeholder(p *geometry.Plan, x, y, w, h float64) {
	p.Rect(x, y, w, h)
	p.Line(x, y, x+w, y+h)
	p.Line(x+w, y, x, y+h)
}

func manuscript(f geometry.Frame, p *geometry.Plan) {
	p.Rect(f.X+f.W*0.1, f.Y, f.W*0.8, f.H)
}

func ratio21(f geometry.Frame, p *geometry.Plan) {
	a := (f.W - f.Gutter) / 3
	p.Rect(f.X, f.Y, a*2, f.H)
	p.Rect(f.X+a*2+f.Gutter, f.Y, a, f.H)
}

func ratio12(f geometry.Frame, p *geometry.Plan) {
	a := (f.W - f.Gutter) / 3
	p.Rect(f.X, f.Y, a, f.H)
	p.Rect(f.X+a+f.Gutter, f.Y, a*2, f.H)
}

func feature(f geometry.Frame, p *geometry.Plan) {
	x, y, w, h, g := f.X, f.Y, f.W, f.H, f.Gutter
	fw := w * 0.6
	p.Rect(x, y, fw, h*0.65)
	p.Rect(x, y+h*0.65+g, fw, h*0.35-g)
	p.Rect(x+fw+g, y, w-fw-g, h)
}

func pullQuote(f geometry.Frame, p *geometry.Plan) {
	x, y, w, h := f.X, f.Y, f.W, f.H
	p.Rect(x, y, w, h)
	p.Rect(x+w*0.15, y+h*0.35, w*0.7, h*0.3)
}

func dualHeader(f geometry.Frame, p *geometry.Plan) {
	x, y, w, h, g := f.X, f.Y, f.W, f.H, f.Gutter
	imgH := h * 0.35
	imgW := (w - g) / 2
	placeholder(p, x, y, imgW, imgH)
	placeholder(p, x+imgW+g, y, imgW, imgH)

	colW := (w - g*2) / 3
	colY := y + imgH + g
	colH := h - imgH - g
	for i := 0; i < 3; i++ {
		p.Rect(x+float64(i)*(colW+g), colY, colW, colH)
	}
}

func sidebarStack(f geometry.Frame, p *geometry.Plan) {
	x, y, w, h, g := f.X, f.Y, f.W, f.H, f.Gutter
	leftW := w * 0.55
	rightW := w - leftW - g
	topH := h * 0.65
	rightImgH := (topH - g) / 2
	placeholder(p, x, y, leftW, topH)
	placeholder(p, x+leftW+g, y, rightW, rightImgH)
	placeholder(p, x+leftW+g, y+rightImgH+g, rightW, rightImgH)
	p.Rect(x, y+topH+g, w, h-topH-g)
}

func heroSplit(f geometry.Frame, p *geometry.Plan) {
	x, y, w, h, g := f.X, f.Y, f.W, f.H, f.Gutter
	heroW := w * 0.65
	heroH := h * 0.6
	sideW := w - heroW - g
	placeholder(p, x, y, heroW, heroH)
	p.Rect(x+heroW+g, y, sideW, heroH)
	p.Rect(x, y+heroH+g, w, h-heroH-g)
}

func posterBlock(f geometry.Frame, p *geometry.Plan) {
	x, y, w, h, g := f.X, f.Y, f.W, f.H, f.Gutter
	topH := h * 0.55
	placeholder(p, x, y, w, topH)
	botH := h - topH - g
	cellW := (w - g*3) / 4
	for i := 0; i < 4; i++ {
		p.Rect(x+float64(i)*(cellW+g), y+topH+g, cellW, botH)
	}
}

func catalogTiles(f geometry.Frame, p *geometry.Plan) {
	x, y, w, h, g := f.X, f.Y, f.W, f.H, f.Gutter
	const nc, nr = 3, 2
	cellW := (w - g*(nc-1)) / nc
	cellH := (h - g*(nr-1)) / nr
	imgH := cellH * 0.7
	for row := 0; row < nr; row++ {
		for col := 0; col < nc; col++ {
			bx := x + float64(col)*(cellW+g)
			by := y + float64(row)*(cellH+g)
			placeholder(p, bx, by, cellW, imgH)
			p.Rect(bx, by+imgH, cellW, cellH-imgH)
		}
	}
}

func newsMix(f geometry.Frame, p *geometry.Plan) {
	x, y, w, h, g := f.X, f.Y, f.W, f.H, f.Gutter
	largeW := w * 0.55
	largeH := h * 0.65
	placeholder(p, x, y, largeW, largeH)
	p.Rect(x, y+largeH+g, largeW, h-largeH-g)

	smallW := w - largeW - g
	smallH := (h - g*2) / 3
	for i := 0; i < 3; i++ {
		sy := y + float64(i)*(smallH+g)
		imgH := smallH * 0.5
		placeholder(p, x+largeW+g, sy, smallW, imgH)
		p.Rect(x+largeW+g, sy+imgH, smallW, smallH-imgH)
	}
}

func bookPage(f geometry.Frame, p *geometry.Plan) {
	x, y, w, h, g := f.X, f.Y, f.W, f.H, f.Gutter
	marginL := w * 0.12
	marginR := w * 0.08
	marginT := h * 0.1
	contentW := w - marginL - marginR
	contentH := h - marginT - h*0.12
	imgH := contentH * 0.4
	p.Rect(x+marginL, y+marginT, contentW, contentH)
	placeholder(p, x+marginL, y+marginT, contentW, imgH)
	ruleY := y + marginT + imgH + g*2
	p.Line(x+marginL, ruleY, x+marginL+contentW, ruleY)
}

// asymmetricCompound: широкая колонна в треть ширины и шесть узких.
func asymmetricCompound(f geometry.Frame, p *geometry.Plan) {
	x, y, w, h, g := f.X, f.Y, f.W, f.H, f.Gutter
	acw := w / 3
	p.Rect(x, y, acw, h)
	rest := w - acw - g
	colW := (rest - g*5) / 6
	for i := 0; i < 6; i++ {
		p.Rect(x+acw+g+float64(i)*(colW+g), y, colW, h)
	}
}
