package main

import (
	"flag"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/kpango/glg"

	"github.com/gucio321/figicons/pkg/outline"
	"github.com/gucio321/figicons/pkg/viewer"
)

func main() {
	inputDir := flag.String("i", "src/svg", "Icon directory")
	filter := flag.String("f", "", "Only show icons whose name contains this (case-insensitive)")
	flag.Parse()

	entries, err := os.ReadDir(*inputDir)
	if err != nil {
		glg.Fatal(err)
	}

	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })

	var icons []*outline.Outline
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != ".svg" {
			continue
		}

		name := strings.TrimSuffix(e.Name(), ".svg")
		if *filter != "" && !strings.Contains(strings.ToLower(name), strings.ToLower(*filter)) {
			continue
		}

		data, err := os.ReadFile(filepath.Join(*inputDir, e.Name()))
		if err != nil {
			glg.Fatal(err)
		}

		o, err := outline.Parse(name, data)
		if err != nil {
			glg.Warnf("Skipping %s: %v", e.Name(), err)
			continue
		}

		icons = append(icons, o)
	}

	if len(icons) == 0 {
		glg.Fatalf("No icons found in %s", *inputDir)
	}

	glg.Infof("Showing %d icons", len(icons))

	ebiten.SetWindowSize(800, 600)
	ebiten.SetWindowTitle("figicons - " + *inputDir)
	if err := ebiten.RunGame(viewer.NewViewer(icons)); err != nil {
		glg.Fatal(err)
	}
}
