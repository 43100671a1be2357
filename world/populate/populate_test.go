package populate

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/df-mc/hexworld/world"
	"github.com/lucasb-eyer/go-colorful"
)

type testBiome string

func (b testBiome) Name() string             { return string(b) }
func (testBiome) Elevation() (min, max int) { return 0, 10 }
func (testBiome) Colour(float64, *world.Cell, world.Context) colorful.Color {
	return colorful.Color{R: 0.5, G: 0.5, B: 0.5}
}

func newRand() *rand.Rand {
	return rand.New(rand.NewPCG(1, 2))
}

func makeCells(b world.Biome, n int) []*world.Cell {
	cells := make([]*world.Cell, n)
	for i := range cells {
		cells[i] = &world.Cell{Q: i, X: float64(i), Z: float64(-i), Height: 2, HeightNorm: float64(i) / float64(n), Biome: b}
	}
	return cells
}

func TestDensityBounds(t *testing.T) {
	b := testBiome("plains")
	cells := makeCells(b, 50)
	if placed, _ := (Tree{Density: 0}).Populate(cells, b, newRand(), Placement{HeightStep: 1}); len(placed) != 0 {
		t.Fatalf("density 0 placed %d trees", len(placed))
	}
	if placed, _ := (Tree{Density: 1}).Populate(cells, b, newRand(), Placement{HeightStep: 1}); len(placed) != len(cells) {
		t.Fatalf("density 1 placed %d trees, want %d", len(placed), len(cells))
	}
}

func TestDensityIsPerCell(t *testing.T) {
	b := testBiome("plains")
	cells := makeCells(b, 4000)
	placed, _ := (Wheat{Density: 0.25}).Populate(cells, b, newRand(), Placement{HeightStep: 1})
	ratio := float64(len(placed)) / float64(len(cells))
	if ratio < 0.2 || ratio > 0.3 {
		t.Fatalf("expected roughly a quarter of the cells to get wheat, got ratio %f", ratio)
	}
}

func TestSkipsWaterAndOtherBiomes(t *testing.T) {
	b, other := testBiome("plains"), testBiome("desert")
	cells := makeCells(b, 10)
	cells[0].Water = true
	cells[1].Biome = other
	placed, _ := (Sheep{Density: 1}).Populate(cells, b, newRand(), Placement{HeightStep: 1})
	if len(placed) != 8 {
		t.Fatalf("placed %d sheep, want 8", len(placed))
	}
	for _, inst := range placed {
		pos := inst.Position()
		if pos[0] == cells[0].X || pos[0] == cells[1].X {
			t.Fatalf("sheep placed on excluded cell at %v", pos)
		}
	}
}

func TestOccupation(t *testing.T) {
	b := testBiome("plains")
	cells := makeCells(b, 10)
	if placed, _ := (Wheat{Density: 1}).Populate(cells, b, newRand(), Placement{HeightStep: 1}); len(placed) != 10 {
		t.Fatalf("placed %d wheat, want 10", len(placed))
	}
	for _, c := range cells {
		if !c.Occupied {
			t.Fatalf("wheat did not reserve cell %d", c.Q)
		}
	}
	if placed, _ := (Sheep{Density: 1}).Populate(cells, b, newRand(), Placement{HeightStep: 1}); len(placed) != 0 {
		t.Fatalf("sheep placed on %d occupied cells", len(placed))
	}
	if placed, _ := (Tree{Density: 1}).Populate(cells, b, newRand(), Placement{HeightStep: 1}); len(placed) != 0 {
		t.Fatalf("trees placed on %d occupied cells", len(placed))
	}
}

func TestTreeReserve(t *testing.T) {
	b := testBiome("forest")
	cells := makeCells(b, 10)
	(Tree{Density: 1}).Populate(cells, b, newRand(), Placement{HeightStep: 1})
	for _, c := range cells {
		if c.Occupied {
			t.Fatal("tree without Reserve occupied a cell")
		}
	}
	(Tree{Density: 1, Reserve: true}).Populate(cells, b, newRand(), Placement{HeightStep: 1})
	for _, c := range cells {
		if !c.Occupied {
			t.Fatal("tree with Reserve did not occupy its cell")
		}
	}
}

func TestHeightNormGates(t *testing.T) {
	b := testBiome("mountains")
	cells := makeCells(b, 100)
	placed, _ := (Tree{Density: 1, MaxHeightNorm: 0.4}).Populate(cells, b, newRand(), Placement{HeightStep: 1})
	if len(placed) != 41 {
		t.Fatalf("placed %d trees below the gate, want 41", len(placed))
	}
	placed, _ = (Tree{Density: 1, MinHeightNorm: 0.6}).Populate(makeCells(b, 100), b, newRand(), Placement{HeightStep: 1})
	if len(placed) != 40 {
		t.Fatalf("placed %d trees above the gate, want 40", len(placed))
	}
}

func TestPlacementHeightAndInvalidCells(t *testing.T) {
	b := testBiome("plains")
	cells := makeCells(b, 4)
	cells[0].Height = 0
	cells[1].X = math.NaN()
	cells[2].Height = 3
	placed, skipped := (Wheat{Density: 1, Scale: 2}).Populate(cells, b, newRand(), Placement{HeightStep: 0.5})
	if skipped != 1 {
		t.Fatalf("skipped %d cells, want 1", skipped)
	}
	if len(placed) != 2 {
		t.Fatalf("placed %d wheat, want 2", len(placed))
	}
	if y := placed[0].Position()[1]; y != 1.5 {
		t.Fatalf("wheat placed at y=%f, want 1.5", y)
	}
	if s := placed[0].Transform.At(0, 0); math.Abs(s-2) > 1e-9 {
		t.Fatalf("wheat scale %f, want 2", s)
	}
}

func TestDeterministic(t *testing.T) {
	b := testBiome("plains")
	a, _ := (Tree{Density: 0.5, ScaleJitter: 0.2}).Populate(makeCells(b, 200), b, newRand(), Placement{HeightStep: 1})
	c, _ := (Tree{Density: 0.5, ScaleJitter: 0.2}).Populate(makeCells(b, 200), b, newRand(), Placement{HeightStep: 1})
	if len(a) != len(c) {
		t.Fatalf("different number of trees: %d vs %d", len(a), len(c))
	}
	for i := range a {
		if a[i].Transform != c[i].Transform {
			t.Fatalf("tree %d differs between runs", i)
		}
	}
}
