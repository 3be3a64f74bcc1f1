package assets

import (
	"errors"
	"testing"

	"github.com/lafriks/go-tiled"
)

func testTileset() *tiled.Tileset {
	return &tiled.Tileset{
		Name: "terrain",
		Tiles: []*tiled.TilesetTile{
			{ID: 0, Image: &tiled.Image{Source: "tiles/grass.png", Width: 16, Height: 16}},
			{ID: 1, Image: &tiled.Image{Source: "tiles/dirt.png", Width: 16, Height: 16}},
		},
	}
}

func testMap() *tiled.Map {
	ts := testTileset()
	return &tiled.Map{
		Width:      2,
		Height:     2,
		TileWidth:  16,
		TileHeight: 16,
		Tilesets:   []*tiled.Tileset{ts},
		Layers: []*tiled.Layer{
			{
				Name: "ground",
				Tiles: []*tiled.LayerTile{
					{ID: 0, Tileset: ts},
					{ID: 1, Tileset: ts},
					{Nil: true},
					{ID: 0, Tileset: ts},
				},
			},
		},
	}
}

func TestValidateMap(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*tiled.Map)
		wantOK bool
	}{
		{"valid", func(m *tiled.Map) {}, true},
		{"zero width", func(m *tiled.Map) { m.Width = 0 }, false},
		{"negative height", func(m *tiled.Map) { m.Height = -1 }, false},
		{"zero tile size", func(m *tiled.Map) { m.TileWidth = 0 }, false},
		{"no tilesets", func(m *tiled.Map) { m.Tilesets = nil }, false},
		{"short layer", func(m *tiled.Map) { m.Layers[0].Tiles = m.Layers[0].Tiles[:3] }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := testMap()
			tt.mutate(m)
			err := validateMap(m, "test")
			if tt.wantOK && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			if !tt.wantOK {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if !errors.Is(err, ErrLoad) {
					t.Errorf("error %v is not ErrLoad", err)
				}
			}
		})
	}
}

func TestBuildCatalog(t *testing.T) {
	catalog, err := buildCatalog(testMap(), "test")
	if err != nil {
		t.Fatal(err)
	}
	if len(catalog) != 2 {
		t.Fatalf("catalog has %d tiles, want 2", len(catalog))
	}

	tile, err := catalog.Get(1)
	if err != nil {
		t.Fatal(err)
	}
	if tile.Image != "tiles/dirt.png" || tile.Width != 16 {
		t.Errorf("tile 1 = %+v", tile)
	}

	_, err = catalog.Get(99)
	if !errors.Is(err, ErrTileLookup) {
		t.Errorf("missing id error = %v, want ErrTileLookup", err)
	}
}

func TestBuildCatalogRejectsDuplicateIDs(t *testing.T) {
	m := testMap()
	m.Tilesets = append(m.Tilesets, &tiled.Tileset{
		Name: "other",
		Tiles: []*tiled.TilesetTile{
			{ID: 1, Image: &tiled.Image{Source: "tiles/water.png", Width: 16, Height: 16}},
		},
	})
	if _, err := buildCatalog(m, "test"); !errors.Is(err, ErrLoad) {
		t.Errorf("duplicate id error = %v, want ErrLoad", err)
	}
}

func TestBuildCatalogRejectsMissingImage(t *testing.T) {
	m := testMap()
	m.Tilesets[0].Tiles[0].Image = nil
	if _, err := buildCatalog(m, "test"); !errors.Is(err, ErrLoad) {
		t.Errorf("missing image error = %v, want ErrLoad", err)
	}
}

func TestBuildGrid(t *testing.T) {
	layers, err := buildGrid(testMap(), "test")
	if err != nil {
		t.Fatal(err)
	}
	if len(layers) != 1 {
		t.Fatalf("got %d layers, want 1", len(layers))
	}

	layer := layers[0]
	if layer.Name != "ground" {
		t.Errorf("layer name = %q", layer.Name)
	}

	want := []int32{0, 1, -1, 0}
	for i, w := range want {
		if layer.Cells[i] != w {
			t.Errorf("cell %d = %d, want %d", i, layer.Cells[i], w)
		}
	}
}

func TestBuildGridRejectsEmptyLayerList(t *testing.T) {
	m := testMap()
	m.Layers = nil
	if _, err := buildGrid(m, "test"); !errors.Is(err, ErrLoad) {
		t.Errorf("no layers error = %v, want ErrLoad", err)
	}
}

func TestLayerCellRowMajor(t *testing.T) {
	// 3 wide, 2 tall
	layer := Layer{Cells: []int32{0, 1, 2, 3, 4, 5}}

	tests := []struct {
		col, row int
		want     int32
	}{
		{0, 0, 0},
		{2, 0, 2},
		{0, 1, 3},
		{2, 1, 5},
	}
	for _, tt := range tests {
		if got := layer.Cell(3, tt.col, tt.row); got != tt.want {
			t.Errorf("Cell(3, %d, %d) = %d, want %d", tt.col, tt.row, got, tt.want)
		}
	}
}

func TestLevelPixelBounds(t *testing.T) {
	level := &Level{Width: 20, Height: 15, TileWidth: 16, TileHeight: 16}
	if level.PixelWidth() != 320 {
		t.Errorf("PixelWidth = %v, want 320", level.PixelWidth())
	}
	if level.PixelHeight() != 240 {
		t.Errorf("PixelHeight = %v, want 240", level.PixelHeight())
	}
}

func TestBuildLevelReadsSpawn(t *testing.T) {
	m := testMap()
	m.ObjectGroups = []*tiled.ObjectGroup{
		{
			Name: "PlayerSpawn",
			Objects: []*tiled.Object{
				{X: 96, Y: 80},
			},
		},
	}

	level, err := buildLevel(m, "test")
	if err != nil {
		t.Fatal(err)
	}
	if level.Spawn == nil {
		t.Fatal("spawn not picked up from object group")
	}
	if level.Spawn.X != 96 || level.Spawn.Y != 80 {
		t.Errorf("spawn = %+v", level.Spawn)
	}
}
