package assets

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"path"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/lafriks/go-tiled"
)

var (
	//go:embed all:levels
	assetFS embed.FS

	//go:embed all:images
	imageFS embed.FS
)

// Load error taxonomy. Both are fatal: a failed level load aborts world
// setup, a failed tile lookup means the loaded level data is corrupt.
var (
	ErrLoad       = errors.New("level load")
	ErrTileLookup = errors.New("unknown tile id")
)

// Tile is one catalog entry: the tile's source image and dimensions plus
// the texture resolved at load time. Immutable after load.
type Tile struct {
	ID      uint32
	Image   string
	Width   int
	Height  int
	Texture *ebiten.Image
}

// Catalog maps tile ids to tiles. Built once per level load, read-only
// during simulation.
type Catalog map[uint32]Tile

// Get looks up a tile by id. A miss indicates corrupt level data and is
// not recoverable mid-frame.
func (c Catalog) Get(id uint32) (Tile, error) {
	t, ok := c[id]
	if !ok {
		return Tile{}, fmt.Errorf("%w: %d", ErrTileLookup, id)
	}
	return t, nil
}

// Layer is a flat row-major grid of catalog tile ids; empty is -1. The
// source format's 1-based indices are converted at load time.
type Layer struct {
	Name  string
	Cells []int32
}

// Cell returns the catalog tile id at (col,row), or -1 for empty.
func (l *Layer) Cell(width, col, row int) int32 {
	return l.Cells[row*width+col]
}

type PlayerSpawn struct {
	X float64
	Y float64
}

type Level struct {
	Name       string
	Width      int // tiles
	Height     int // tiles
	TileWidth  int // pixels
	TileHeight int // pixels
	Layers     []Layer
	Catalog    Catalog
	Spawn      *PlayerSpawn
}

// PixelWidth returns the world width in pixels.
func (l *Level) PixelWidth() float64 {
	return float64(l.Width * l.TileWidth)
}

// PixelHeight returns the world height in pixels.
func (l *Level) PixelHeight() float64 {
	return float64(l.Height * l.TileHeight)
}

type LevelLoader struct{}

func NewLevelLoader() *LevelLoader {
	return &LevelLoader{}
}

// Load parses and validates a TMX level, builds the tile catalog and the
// grid layers, and binds every referenced tile texture. Any missing or
// malformed field is a fatal ErrLoad.
func (l *LevelLoader) Load(levelPath string) (*Level, error) {
	m, err := tiled.LoadFile(levelPath, tiled.WithFileSystem(assetFS))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrLoad, levelPath, err)
	}

	level, err := buildLevel(m, levelPath)
	if err != nil {
		return nil, err
	}

	if err := bindTextures(level, path.Dir(levelPath)); err != nil {
		return nil, err
	}
	return level, nil
}

// MustLoad is Load for world setup, where a bad level aborts the program.
func (l *LevelLoader) MustLoad(levelPath string) *Level {
	level, err := l.Load(levelPath)
	if err != nil {
		panic(err)
	}
	return level
}

// buildLevel validates dimensions, registers every tileset tile into the
// catalog, and converts the layer data. It never touches the GPU, so the
// parsing and indexing rules are testable on synthetic maps.
func buildLevel(m *tiled.Map, name string) (*Level, error) {
	if err := validateMap(m, name); err != nil {
		return nil, err
	}

	catalog, err := buildCatalog(m, name)
	if err != nil {
		return nil, err
	}

	layers, err := buildGrid(m, name)
	if err != nil {
		return nil, err
	}

	level := &Level{
		Name:       name,
		Width:      m.Width,
		Height:     m.Height,
		TileWidth:  m.TileWidth,
		TileHeight: m.TileHeight,
		Layers:     layers,
		Catalog:    catalog,
	}

	for _, og := range m.ObjectGroups {
		if og.Name != "PlayerSpawn" {
			continue
		}
		for _, o := range og.Objects {
			level.Spawn = &PlayerSpawn{X: o.X, Y: o.Y}
			break
		}
	}

	return level, nil
}

func validateMap(m *tiled.Map, name string) error {
	if m.Width <= 0 || m.Height <= 0 {
		return fmt.Errorf("%w: %s: map dimensions %dx%d", ErrLoad, name, m.Width, m.Height)
	}
	if m.TileWidth <= 0 || m.TileHeight <= 0 {
		return fmt.Errorf("%w: %s: tile dimensions %dx%d", ErrLoad, name, m.TileWidth, m.TileHeight)
	}
	if len(m.Tilesets) == 0 {
		return fmt.Errorf("%w: %s: no tilesets", ErrLoad, name)
	}
	for _, layer := range m.Layers {
		if len(layer.Tiles) != m.Width*m.Height {
			return fmt.Errorf("%w: %s: layer %q has %d cells, want %d",
				ErrLoad, name, layer.Name, len(layer.Tiles), m.Width*m.Height)
		}
	}
	return nil
}

// buildCatalog registers every tile of every referenced tileset. Duplicate
// tile ids across tilesets have no defined precedence and are fatal rather
// than silently overwritten.
func buildCatalog(m *tiled.Map, name string) (Catalog, error) {
	catalog := Catalog{}
	for _, ts := range m.Tilesets {
		for _, t := range ts.Tiles {
			if t.Image == nil || t.Image.Source == "" {
				return nil, fmt.Errorf("%w: %s: tile %d in %q has no image", ErrLoad, name, t.ID, ts.Name)
			}
			if _, dup := catalog[t.ID]; dup {
				return nil, fmt.Errorf("%w: %s: duplicate tile id %d across tilesets", ErrLoad, name, t.ID)
			}
			catalog[t.ID] = Tile{
				ID:     t.ID,
				Image:  t.Image.Source,
				Width:  t.Image.Width,
				Height: t.Image.Height,
			}
		}
	}
	return catalog, nil
}

// buildGrid converts each tile layer into a flat row-major grid of catalog
// ids, resolving the source format's 1-based convention here so render
// lookups need no offset branch.
func buildGrid(m *tiled.Map, name string) ([]Layer, error) {
	layers := make([]Layer, 0, len(m.Layers))
	for _, src := range m.Layers {
		cells := make([]int32, len(src.Tiles))
		for i, t := range src.Tiles {
			if t.IsNil() {
				cells[i] = -1
				continue
			}
			cells[i] = int32(t.ID)
		}
		layers = append(layers, Layer{Name: src.Name, Cells: cells})
	}
	if len(layers) == 0 {
		return nil, fmt.Errorf("%w: %s: no tile layers", ErrLoad, name)
	}
	return layers, nil
}

// bindTextures resolves each catalog tile's image, relative to the level
// document's directory, into an ebiten texture.
func bindTextures(level *Level, dir string) error {
	for id, tile := range level.Catalog {
		imgPath := path.Join(dir, tile.Image)
		data, err := assetFS.ReadFile(imgPath)
		if err != nil {
			return fmt.Errorf("%w: %s: tile image %s: %v", ErrLoad, level.Name, imgPath, err)
		}
		img, _, err := ebitenutil.NewImageFromReader(bytes.NewReader(data))
		if err != nil {
			return fmt.Errorf("%w: %s: decode %s: %v", ErrLoad, level.Name, imgPath, err)
		}
		tile.Texture = img
		level.Catalog[id] = tile
	}
	return nil
}

type ImageLoader struct {
	cache map[string]*ebiten.Image
}

func NewImageLoader() *ImageLoader {
	return &ImageLoader{cache: make(map[string]*ebiten.Image)}
}

func (l *ImageLoader) MustLoadImage(path string) *ebiten.Image {
	if img, ok := l.cache[path]; ok {
		return img
	}

	data, err := imageFS.ReadFile(path)
	if err != nil {
		panic(fmt.Sprintf("failed to read image file %s: %v", path, err))
	}

	img, _, err := ebitenutil.NewImageFromReader(bytes.NewReader(data))
	if err != nil {
		panic(fmt.Sprintf("failed to decode image %s: %v", path, err))
	}

	l.cache[path] = img
	return img
}

var imageLoader = NewImageLoader()

// GetSpriteSheet returns the sprite sheet for an entity directory and
// animation name, e.g. GetSpriteSheet("player", "idle").
func GetSpriteSheet(dir, name string) *ebiten.Image {
	return imageLoader.MustLoadImage(fmt.Sprintf("images/spritesheets/%s/%s.png", dir, name))
}

// GetObjectImage returns a static object sprite from images/objects.
func GetObjectImage(name string) *ebiten.Image {
	return imageLoader.MustLoadImage(fmt.Sprintf("images/objects/%s", name))
}

// GetUIImage returns an overlay image from images/ui.
func GetUIImage(name string) *ebiten.Image {
	return imageLoader.MustLoadImage(fmt.Sprintf("images/ui/%s", name))
}
