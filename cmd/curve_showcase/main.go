// cmd/curve_showcase/main.go
// Interactive viewer for the easing catalog and keyframe sequences.
//
// Usage:
//   go run ./cmd/curve_showcase --config=cmd/curve_showcase/config.yaml

package main

import (
	"errors"
	"flag"
	"fmt"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/quasilyte/gdata/v2"

	"github.com/decker502/keyframe/pkg/config"
	"github.com/decker502/keyframe/pkg/easing"
	"github.com/decker502/keyframe/pkg/store"
)

var (
	configPath = flag.String("config", "cmd/curve_showcase/config.yaml", "Config file path")
	verbose    = flag.Bool("verbose", false, "Verbose logging")
)

const infoBarHeight = 25

// Game is the ebiten game driving the showcase.
type Game struct {
	config *ShowcaseConfig
	layout *GridLayout

	cells        []Cell
	currentPage  int
	totalPages   int
	cellsPerPage int

	paused   bool
	showHelp bool

	store *store.PlaybackStore
}

// NewGame loads the configuration and builds every cell.
func NewGame(configPath string) (*Game, error) {
	cfg, err := LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	cells, err := buildCells(cfg)
	if err != nil {
		return nil, err
	}
	if len(cells) == 0 {
		return nil, errors.New("nothing to show")
	}
	log.Printf("[Showcase] Loaded %d cells", len(cells))

	game := &Game{
		config:       cfg,
		cells:        cells,
		cellsPerPage: cfg.CellsPerPage(),
		showHelp:     true,
		store:        store.NewPlaybackStore(openStore(cfg)),
	}
	game.totalPages = (len(cells) + game.cellsPerPage - 1) / game.cellsPerPage

	for _, cell := range cells {
		seqCell, ok := cell.(*SequenceCell)
		if !ok {
			continue
		}
		if err := seqCell.RestoreFrom(game.store); err != nil {
			log.Printf("[Showcase] Warning: failed to restore %s: %v", seqCell.Name(), err)
		}
	}

	game.loadPage(0)
	return game, nil
}

// buildCells creates a cell per configured curve followed by one per
// sequence in the sequence file.
func buildCells(cfg *ShowcaseConfig) ([]Cell, error) {
	playback := cfg.Global.Playback

	curves := cfg.Curves
	if len(curves) == 0 {
		curves = easing.Names()
	}

	cells := make([]Cell, 0, len(curves))
	for _, text := range curves {
		fn, err := easing.Parse(text)
		if err != nil {
			return nil, fmt.Errorf("failed to parse curve %q: %w", text, err)
		}
		cell, err := NewCurveCell(text, fn, playback.Period, playback.Points)
		if err != nil {
			return nil, err
		}
		cells = append(cells, cell)
	}

	if cfg.SequenceFile == "" {
		return cells, nil
	}

	file, err := config.LoadSequenceFile(cfg.SequenceFile)
	if err != nil {
		return nil, err
	}
	for i := range file.Sequences {
		cell, err := NewSequenceCell(&file.Sequences[i], playback.Points)
		if err != nil {
			return nil, err
		}
		cells = append(cells, cell)
	}
	return cells, nil
}

// openStore opens persistent storage, falling back to memory only.
func openStore(cfg *ShowcaseConfig) *gdata.Manager {
	if !cfg.Global.Store.Enabled {
		return nil
	}
	m, err := gdata.Open(gdata.Config{AppName: cfg.Global.Store.AppName})
	if err != nil {
		log.Printf("[Showcase] Warning: failed to open storage: %v (positions will not be saved)", err)
		return nil
	}
	return m
}

// loadPage shows the cells of page pageNum.
func (g *Game) loadPage(pageNum int) {
	if pageNum < 0 || pageNum >= g.totalPages {
		return
	}

	start := pageNum * g.cellsPerPage
	end := min(start+g.cellsPerPage, len(g.cells))

	g.layout = NewGridLayout(&g.config.Global.Grid, g.cells[start:end], infoBarHeight)
	g.currentPage = pageNum

	if *verbose {
		log.Printf("[Showcase] Page %d/%d: cells %d-%d", pageNum+1, g.totalPages, start, end-1)
	}
}

// saveSnapshots records the position of every sequence cell.
func (g *Game) saveSnapshots() {
	for _, cell := range g.cells {
		seqCell, ok := cell.(*SequenceCell)
		if !ok {
			continue
		}
		if err := g.store.Save(seqCell.Snapshot()); err != nil {
			log.Printf("[Showcase] Warning: %v", err)
		}
	}
}

// Update handles input and advances every cell, including those on other
// pages.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.saveSnapshots()
		return ebiten.Termination
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.showHelp = !g.showHelp
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyPageDown) {
		g.loadPage(g.currentPage + 1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyPageUp) {
		g.loadPage(g.currentPage - 1)
	}

	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyRight):
		g.layout.MoveSelection(1)
	case inpututil.IsKeyJustPressed(ebiten.KeyLeft):
		g.layout.MoveSelection(-1)
	case inpututil.IsKeyJustPressed(ebiten.KeyDown):
		g.layout.MoveSelection(g.config.Global.Grid.Columns)
	case inpututil.IsKeyJustPressed(ebiten.KeyUp):
		g.layout.MoveSelection(-g.config.Global.Grid.Columns)
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		if i := g.layout.GetCellAt(x, y); i >= 0 {
			g.layout.SetSelectedIndex(i)
		}
	}

	// R reverses the selected cell, or every cell on the page when nothing
	// is selected.
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		if cell := g.layout.GetCell(g.layout.GetSelectedIndex()); cell != nil {
			cell.Reverse()
		} else {
			for i := range g.layout.GetCellCount() {
				g.layout.GetCell(i).Reverse()
			}
		}
	}

	if g.paused {
		return nil
	}

	dt := g.config.Global.Playback.Speed / float64(g.config.Global.Playback.TPS)
	for _, cell := range g.cells {
		cell.Update(dt)
	}
	return nil
}

// Draw renders the grid, the info bar and the help panel.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{50, 50, 50, 255})

	g.layout.Render(screen)
	g.drawInfoBar(screen)

	if g.showHelp {
		g.drawHelp(screen)
	}
}

func (g *Game) drawInfoBar(screen *ebiten.Image) {
	info := fmt.Sprintf("TPS: %.1f | Page %d/%d | Cells: %d | Selected: ",
		ebiten.ActualTPS(), g.currentPage+1, g.totalPages, g.layout.GetCellCount())

	if cell := g.layout.GetCell(g.layout.GetSelectedIndex()); cell != nil {
		info += fmt.Sprintf("%s (%s)", cell.Name(), cell.Info())
	} else {
		info += "none"
	}
	if g.paused {
		info += " | PAUSED"
	}

	ebitenutil.DebugPrintAt(screen, info, 10, 5)
}

func (g *Game) drawHelp(screen *ebiten.Image) {
	help := "Controls:\n" +
		"  PageDown/PageUp - next/previous page\n" +
		"  Arrows          - move selection\n" +
		"  Left click      - select cell\n" +
		"  Space           - pause/resume\n" +
		"  R               - reverse selected (or all)\n" +
		"  H               - show/hide help\n" +
		"  ESC             - save positions and quit\n"

	helpWidth, helpHeight := 330, 130
	helpX := g.config.Global.Window.Width - helpWidth - 20
	helpY := g.config.Global.Window.Height - helpHeight - 20

	vector.DrawFilledRect(screen, float32(helpX), float32(helpY), float32(helpWidth), float32(helpHeight), color.RGBA{0, 0, 0, 180}, false)
	ebitenutil.DebugPrintAt(screen, help, helpX+10, helpY+10)
}

// Layout keeps the configured logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.config.Global.Window.Width, g.config.Global.Window.Height
}

func main() {
	flag.Parse()

	if *verbose {
		log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	}

	game, err := NewGame(*configPath)
	if err != nil {
		log.Fatalf("[Showcase] Failed to start: %v", err)
	}

	ebiten.SetWindowSize(game.config.Global.Window.Width, game.config.Global.Window.Height)
	ebiten.SetWindowTitle(game.config.Global.Window.Title)
	ebiten.SetTPS(game.config.Global.Playback.TPS)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
