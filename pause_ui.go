package main

import (
	"image/color"
	"log"

	"golang.design/x/clipboard"
	"golang.org/x/image/font/basicfont"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/milk9111/downhill/common"
)

// pauseUI wraps an ebitenui menu shown while the frame loop is held.
type pauseUI struct {
	ui *ebitenui.UI
}

func (p *pauseUI) update() {
	if p == nil || p.ui == nil {
		return
	}
	p.ui.Update()
}

func (p *pauseUI) draw(screen *ebiten.Image) {
	if p == nil || p.ui == nil {
		return
	}
	p.ui.Draw(screen)
}

// newPauseUI builds the centered pause menu: Resume, Copy Seed,
// Restart (same slope), Quit. Buttons use colored nine-slices and the
// built-in basic font, so no theme assets are needed.
func newPauseUI(g *Game) *pauseUI {
	entries := []menuEntry{
		{"Resume", func() { g.phase = phasePlaying }},
		{"Copy Seed", func() { g.copySeed() }},
		{"Restart", func() { g.restart(true); g.phase = phasePlaying }},
		{"Quit", func() { g.quit = true }},
	}
	return &pauseUI{ui: buildMenu("Paused", g.seedLabel, entries)}
}

// newGameOverUI builds the terminal menu: Retry replays the same seed,
// New Run rolls a fresh one.
func newGameOverUI(g *Game) *pauseUI {
	entries := []menuEntry{
		{"Retry", func() { g.restart(true) }},
		{"New Run", func() { g.restart(false) }},
		{"Copy Seed", func() { g.copySeed() }},
		{"Quit", func() { g.quit = true }},
	}
	return &pauseUI{ui: buildMenu("Game Over", g.seedLabel, entries)}
}

type menuEntry struct {
	label   string
	clicked func()
}

func buildMenu(title string, subtitle func() string, entries []menuEntry) *ebitenui.UI {
	// semi-transparent panel background
	panelImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x00, G: 0x00, B: 0x10, A: 200})
	btnImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x33, G: 0x33, B: 0x44, A: 255})

	goFace := ebtext.NewGoXFace(basicfont.Face7x13)
	var face ebtext.Face = goFace

	btnTextColor := &widget.ButtonTextColor{Idle: color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}}

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(panelImg),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(10),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 20, Bottom: 20, Left: 30, Right: 30}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(common.BaseWidth/2, common.BaseHeight/2),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{HorizontalPosition: widget.AnchorLayoutPositionCenter, VerticalPosition: widget.AnchorLayoutPositionCenter}),
		),
	)

	panel.AddChild(widget.NewText(
		widget.TextOpts.Text(title, &face, color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}),
		widget.TextOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})),
	))
	if subtitle != nil {
		panel.AddChild(widget.NewText(
			widget.TextOpts.Text(subtitle(), &face, color.NRGBA{R: 0x88, G: 0x88, B: 0x99, A: 0xff}),
			widget.TextOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})),
		))
	}

	for _, e := range entries {
		clicked := e.clicked
		panel.AddChild(widget.NewButton(
			widget.ButtonOpts.Image(&widget.ButtonImage{Idle: btnImg, Pressed: btnImg}),
			widget.ButtonOpts.Text(e.label, &face, btnTextColor),
			widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})),
			widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
				clicked()
			}),
		))
	}

	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)
	root.AddChild(panel)

	return &ebitenui.UI{Container: root}
}

func (g *Game) seedLabel() string {
	return "seed: " + g.seedStr
}

// copySeed puts the session seed on the system clipboard so a run can
// be shared and replayed.
func (g *Game) copySeed() {
	if !g.clipboardReady {
		log.Printf("Game: clipboard unavailable, seed is %s", g.seedStr)
		return
	}
	clipboard.Write(clipboard.FmtText, []byte(g.seedStr))
	log.Printf("Game: seed copied to clipboard")
}
