//go:build ebiten

package ui

import (
	"image"
	"image/color"
	"strconv"

	"lifepaint/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// Source is what the HUD reads from a session.
type Source interface {
	Parameters() core.ParameterSnapshot
	core.ParameterControlsProvider
	core.IntParameterSetter
}

// HUD renders the status panel to the right of the board.
type HUD struct {
	src        Source
	width      int
	panel      *ebiten.Image
	lastHeight int
	snapshot   core.ParameterSnapshot

	controls     []hudControlState
	panelOffsetX int

	pixel *ebiten.Image
}

// NewHUD constructs a HUD for the provided session and panel width.
func NewHUD(src Source, width int) *HUD {
	if width < 0 {
		width = 0
	}
	h := &HUD{src: src, width: width}
	if width > 0 {
		h.pixel = ebiten.NewImage(1, 1)
		h.pixel.Fill(color.White)
	}
	for _, ctrl := range src.ParameterControls() {
		h.controls = append(h.controls, hudControlState{control: ctrl})
	}
	return h
}

// Width returns the panel width in pixels.
func (h *HUD) Width() int {
	if h == nil {
		return 0
	}
	return h.width
}

// Update refreshes the cached snapshot and handles clicks on the panel. It
// reports whether the click was consumed.
func (h *HUD) Update(panelOffsetX int) bool {
	if h == nil {
		return false
	}
	h.panelOffsetX = panelOffsetX
	h.snapshot = h.src.Parameters()
	h.layout()
	h.refreshControlValues()
	return h.handleInput()
}

// Draw paints the panel at offsetX.
func (h *HUD) Draw(screen *ebiten.Image, offsetX int) {
	if h == nil || h.width <= 0 {
		return
	}
	height := screen.Bounds().Dy()
	if height <= 0 {
		return
	}
	if h.panel == nil || h.lastHeight != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.lastHeight = height
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})
	h.drawSnapshot()
	h.drawControls()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func (h *HUD) rows() int {
	n := 0
	for _, group := range h.snapshot.Groups {
		n += 1 + len(group.Params)
	}
	return n
}

func (h *HUD) layout() {
	top := controlsTop + h.rows()*rowHeight + sectionGap
	for i := range h.controls {
		rowTop := top + i*lineHeight
		buttonY := rowTop + (lineHeight-buttonSize)/2
		plusRect := image.Rect(h.width-panelPadding-buttonSize, buttonY, h.width-panelPadding, buttonY+buttonSize)
		minusRect := image.Rect(plusRect.Min.X-buttonGap-buttonSize, buttonY, plusRect.Min.X-buttonGap, buttonY+buttonSize)
		h.controls[i].top = rowTop
		h.controls[i].minusRect = minusRect
		h.controls[i].plusRect = plusRect
	}
}

func (h *HUD) refreshControlValues() {
	for i := range h.controls {
		state := &h.controls[i]
		state.hasValue = false
		param, ok := h.snapshot.Lookup(state.control.Key)
		if !ok {
			continue
		}
		parsed, err := strconv.Atoi(param.Value)
		if err != nil {
			continue
		}
		state.value = parsed
		state.hasValue = true
	}
}

func (h *HUD) handleInput() bool {
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return false
	}
	mx, my := ebiten.CursorPosition()
	if mx < h.panelOffsetX {
		return false
	}
	px := mx - h.panelOffsetX
	for i := range h.controls {
		state := &h.controls[i]
		if !state.hasValue {
			continue
		}
		if pointInRect(px, my, state.minusRect) {
			h.applyAdjustment(state, -1)
			return true
		}
		if pointInRect(px, my, state.plusRect) {
			h.applyAdjustment(state, 1)
			return true
		}
	}
	return true
}

func (h *HUD) applyAdjustment(state *hudControlState, direction int) {
	step := state.control.Step
	if step <= 0 {
		step = 1
	}
	target := state.control.Clamp(state.value + direction*step)
	if target == state.value {
		return
	}
	if h.src.SetIntParameter(state.control.Key, target) {
		state.value = target
	}
}

func (h *HUD) canAdjust(state *hudControlState, direction int) bool {
	if !state.hasValue {
		return false
	}
	step := state.control.Step
	if step <= 0 {
		step = 1
	}
	return state.control.Clamp(state.value+direction*step) != state.value
}

func (h *HUD) drawSnapshot() {
	face := basicfont.Face7x13
	text.Draw(h.panel, "Game of Life", face, panelPadding, panelPadding+headerBaseline, headerColor)
	y := controlsTop
	for _, group := range h.snapshot.Groups {
		text.Draw(h.panel, group.Name, face, panelPadding, y+labelBaseline, dimColor)
		y += rowHeight
		for _, param := range group.Params {
			text.Draw(h.panel, param.Label, face, panelPadding+8, y+labelBaseline, labelColor)
			bounds := text.BoundString(face, param.Value)
			text.Draw(h.panel, param.Value, face, h.width-panelPadding-bounds.Dx(), y+labelBaseline, labelColor)
			y += rowHeight
		}
	}
}

func (h *HUD) drawControls() {
	face := basicfont.Face7x13
	for i := range h.controls {
		state := &h.controls[i]
		text.Draw(h.panel, state.control.Label, face, panelPadding, state.top+lineHeight/2+5, labelColor)
		h.drawButton(state.minusRect, "-", h.canAdjust(state, -1))
		h.drawButton(state.plusRect, "+", h.canAdjust(state, 1))
	}
}

func (h *HUD) drawButton(rect image.Rectangle, label string, enabled bool) {
	if h.pixel == nil {
		return
	}
	bg := color.RGBA{R: 54, G: 56, B: 64, A: 255}
	fg := color.RGBA{R: 230, G: 230, B: 240, A: 255}
	if !enabled {
		bg = color.RGBA{R: 32, G: 34, B: 40, A: 255}
		fg = color.RGBA{R: 120, G: 120, B: 130, A: 255}
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(rect.Dx()), float64(rect.Dy()))
	op.GeoM.Translate(float64(rect.Min.X), float64(rect.Min.Y))
	op.ColorScale.ScaleWithColor(bg)
	h.panel.DrawImage(h.pixel, op)

	face := basicfont.Face7x13
	bounds := text.BoundString(face, label)
	x := rect.Min.X + (rect.Dx()-bounds.Dx())/2
	y := rect.Min.Y + (rect.Dy()-bounds.Dy())/2 + bounds.Dy()
	text.Draw(h.panel, label, face, x, y, fg)
}

func pointInRect(x, y int, rect image.Rectangle) bool {
	return x >= rect.Min.X && x < rect.Max.X && y >= rect.Min.Y && y < rect.Max.Y
}

type hudControlState struct {
	control  core.ParameterControl
	value    int
	hasValue bool

	top       int
	minusRect image.Rectangle
	plusRect  image.Rectangle
}

var (
	headerColor = color.RGBA{R: 200, G: 200, B: 210, A: 255}
	labelColor  = color.RGBA{R: 220, G: 220, B: 230, A: 255}
	dimColor    = color.RGBA{R: 160, G: 160, B: 170, A: 255}
)

const (
	panelPadding   = 12
	lineHeight     = 36
	rowHeight      = 18
	sectionGap     = 8
	buttonSize     = 24
	buttonGap      = 6
	headerBaseline = 18
	labelBaseline  = 13
	controlsTop    = panelPadding + headerBaseline + 14
)
