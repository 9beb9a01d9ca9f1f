package catalog

import "grid-studio/internal/grid/geometry"

// ============================================================
// Interface skeletons
// ============================================================

var interfaces = []entry{
	{"ui-gutenberg", "Gutenberg", uiGutenberg},
	{"ui-app-shell", "App Shell", uiAppShell},
	{"ui-three-panel", "Three Panel", uiThreePanel},
	{"ui-dashboard", "Dashboard", uiDashboard},
	{"ui-canvas", "Canvas Layout", uiCanvas},
	{"ui-chat-artifact", "Chat + Artifact", uiChatArtifact},
	{"ui-agent-workflow", "Agent Workflow", uiAgentWorkflow},
}

// hdiv: горизонтальный разделитель панели [x, x+w] на уровне y.
func hdiv(p *geometry.Plan, x, w, y float64) {
	p.Line(x, y, x+w, y)
}

func uiGutenberg(f geometry.Frame, p *geometry.Plan) {
	x, y, w, h := f.X, f.Y, f.W, f.H
	cx, cy := f.CX(), f.CY()
	p.Line(x, cy, x+w, cy)
	p.Line(cx, y, cx, y+h)
	p.Line(x, y, x+w, y+h)
	p.Rect(x, y, w*0.22, h*0.22)
	p.Rect(x+w*0.78, y+h*0.78, w*0.22, h*0.22)
}

func uiAppShell(f geometry.Frame, p *geometry.Plan) {
	x, y, w, h, g := f.X, f.Y, f.W, f.H, f.Gutter
	headerH := h * 0.07
	sideW := w * 0.22
	sideY := y + headerH + g
	sideH := h - headerH - g
	contentX := x + sideW + g
	contentW := w - sideW - g

	p.Rect(x, y, w, headerH)
	p.Line(x+w*0.15, y, x+w*0.15, y+headerH)
	p.Rect(x, sideY, sideW, sideH)
	hdiv(p, x, sideW, sideY+sideH*0.12)
	hdiv(p, x, sideW, sideY+sideH*0.35)
	hdiv(p, x, sideW, sideY+sideH*0.58)
	p.Rect(contentX, sideY, contentW, sideH)
	hdiv(p, contentX, contentW, sideY+sideH*0.05)
}

func uiThreePanel(f geometry.Frame, p *geometry.Plan) {
	x, y, w, h, g := f.X, f.Y, f.W, f.H, f.Gutter
	unit := (w - g*2) / 4
	leftW, centerW, rightW := unit, unit*2, unit
	leftX := x
	centerX := x + leftW + g
	rightX := centerX + centerW + g

	p.Rect(leftX, y, leftW, h)
	p.Rect(centerX, y, centerW, h)
	p.Rect(rightX, y, rightW, h)

	hdiv(p, leftX, leftW, y+h*0.12)
	hdiv(p, leftX, leftW, y+h*0.45)
	hdiv(p, centerX, centerW, y+h*0.12)
	hdiv(p, centerX, centerW, y+h*0.55)
	hdiv(p, rightX, rightW, y+h*0.12)
	hdiv(p, rightX, rightW, y+h*0.4)
	hdiv(p, rightX, rightW, y+h*0.65)
}

func uiDashboard(f geometry.Frame, p *geometry.Plan) {
	x, y, w, h, g := f.X, f.Y, f.W, f.H, f.Gutter
	headerH := h * 0.07
	sideW := w * 0.22
	sideY := y + headerH + g
	sideH := h - headerH - g
	contentX := x + sideW + g
	contentY := sideY
	contentW := w - sideW - g
	cellW := (contentW - g) / 2
	cellH := (sideH - g) / 2

	p.Rect(x, y, w, headerH)
	p.Line(x+w*0.15, y, x+w*0.15, y+headerH)
	p.Rect(x, sideY, sideW, sideH)
	hdiv(p, x, sideW, sideY+sideH*0.15)
	hdiv(p, x, sideW, sideY+sideH*0.4)
	hdiv(p, x, sideW, sideY+sideH*0.65)

	placeholder(p, contentX, contentY, cellW, cellH)
	p.Rect(contentX+cellW+g, contentY, cellW, cellH)
	p.Rect(contentX, contentY+cellH+g, cellW, cellH)
	p.Rect(contentX+cellW+g, contentY+cellH+g, cellW, cellH)
}

func uiCanvas(f geometry.Frame, p *geometry.Plan) {
	x, y, w, h, g := f.X, f.Y, f.W, f.H, f.Gutter
	leftW := w * 0.28
	rightW := w - leftW - g
	rightX := x + leftW + g

	p.Rect(x, y, leftW, h)
	hdiv(p, x, leftW, y+h*0.08)
	hdiv(p, x, leftW, y+h*0.42)
	hdiv(p, x, leftW, y+h*0.5)
	p.Rect(rightX, y, rightW, h)
	hdiv(p, rightX, rightW, y+h*0.06)
	hdiv(p, rightX, rightW, y+h*0.95)
}

func uiChatArtifact(f geometry.Frame, p *geometry.Plan) {
	x, y, w, h, g := f.X, f.Y, f.W, f.H, f.Gutter
	chatW := w * 0.38
	artW := w - chatW - g
	artX := x + chatW + g

	p.Rect(x, y, chatW, h)
	hdiv(p, x, chatW, y+h*0.07)
	hdiv(p, x, chatW, y+h*0.82)
	p.Rect(x+chatW*0.08, y+h*0.85, chatW*0.84, h*0.1)
	p.Rect(artX, y, artW, h)
	hdiv(p, artX, artW, y+h*0.06)
}

func uiAgentWorkflow(f geometry.Frame, p *geometry.Plan) {
	x, y, w, h, g := f.X, f.Y, f.W, f.H, f.Gutter
	headerH := h * 0.1
	statusH := h * 0.05
	colY := y + headerH + g
	colH := h - headerH - statusH - g*2
	colW := (w - g*2) / 3
	colX := [3]float64{x, x + colW + g, x + colW*2 + g*2}
	statusY := y + h - statusH

	p.Rect(x, y, w, headerH)
	for _, cx := range colX {
		p.Rect(cx, colY, colW, colH)
	}
	for _, cx := range colX {
		hdiv(p, cx, colW, colY+colH*0.1)
	}
	bridgeY := colY + colH*0.5
	p.Line(colX[0]+colW, bridgeY, colX[1], bridgeY)
	p.Line(colX[1]+colW, bridgeY, colX[2], bridgeY)
	hdiv(p, x, w, statusY)
}
