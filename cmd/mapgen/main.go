// Command mapgen renders generated dungeon levels as ASCII, for eyeballing
// the generator without starting a server.
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/babysitterd/chasm/internal/dungeon"
	"github.com/babysitterd/chasm/internal/entity"
)

func main() {
	seed := flag.Int64("seed", 0, "Generation seed (default: random based on current time)")
	level := flag.Int("level", 1, "Dungeon level to generate (affects spawn tables)")
	width := flag.Int("width", 0, "Map width (default: 80)")
	height := flag.Int("height", 0, "Map height (default: 43)")
	showEntities := flag.Bool("entities", true, "Draw monsters, items and stairs")
	flag.Parse()

	genSeed := *seed
	if genSeed == 0 {
		genSeed = time.Now().UnixNano()
	}

	params := dungeon.DefaultParams()
	if *width > 0 {
		params.MapWidth = *width
	}
	if *height > 0 {
		params.MapHeight = *height
	}

	rng := rand.New(rand.NewSource(genSeed))
	gen := dungeon.NewGenerator(params, rng)

	arena := entity.NewArena()
	playerID := arena.Add(entity.NewPlayer(0, 0, 100, 1, 2))

	m, err := gen.Generate(*level, arena, playerID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Generation failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("seed=%d level=%d size=%dx%d\n\n", genSeed, *level, m.Width, m.Height)
	render(m, arena, *showEntities)
	if *showEntities {
		printCensus(arena, playerID)
	}
}

// render draws walls as '#', floor as '.', and entity glyphs on top.
func render(m *dungeon.Map, arena *entity.Arena, showEntities bool) {
	glyphs := make(map[[2]int]string)
	if showEntities {
		for _, id := range arena.IDs() {
			e := arena.Get(id)
			if e == nil {
				continue
			}
			pos := [2]int{e.X, e.Y}
			// Blocking entities win the tile over items and remains.
			if _, taken := glyphs[pos]; !taken || e.Blocks {
				glyphs[pos] = e.Glyph
			}
		}
	}

	for y := 0; y < m.Height; y++ {
		line := make([]byte, 0, m.Width)
		for x := 0; x < m.Width; x++ {
			if g, ok := glyphs[[2]int{x, y}]; ok {
				line = append(line, g[0])
				continue
			}
			if m.At(x, y).Blocked {
				line = append(line, '#')
			} else {
				line = append(line, '.')
			}
		}
		fmt.Println(string(line))
	}
}

// printCensus summarizes what the generator placed.
func printCensus(arena *entity.Arena, playerID entity.ID) {
	counts := make(map[string]int)
	for _, id := range arena.IDs() {
		if id == playerID {
			continue
		}
		if e := arena.Get(id); e != nil {
			counts[e.Name]++
		}
	}

	fmt.Println()
	for name, n := range counts {
		fmt.Printf("%4d %s\n", n, name)
	}
}
