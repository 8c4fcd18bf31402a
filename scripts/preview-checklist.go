package main

import (
	"fmt"
	"os"

	"github.com/pokecollect/pokecollect/internal/collectible"
	"github.com/pokecollect/pokecollect/internal/export"
)

func main() {
	// Create sample records
	boulderImg := "https://pokemon.fandom.com/images/boulderbadge.png"
	boulder := collectible.NewRecord("Boulder Badge", &boulderImg, "is given out at Pewter City Gym.")
	boulder.League = "Indigo League"

	zephyr := collectible.NewRecord("Zephyr Badge", nil, "is given out at Violet City Gym.")
	zephyr.League = "Johto League"

	champion := collectible.NewRecord("Champion Ribbon", nil, "A Ribbon awarded for entering the Hall of Fame.")

	badges := []*collectible.Record{boulder, zephyr}
	ribbons := []*collectible.Record{champion}

	// Generate the Markdown checklist
	checklist := export.Checklist(badges, ribbons)

	// Write to file (owner read/write only)
	filename := "preview-checklist.md"
	if err := os.WriteFile(filename, []byte(checklist), 0600); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing file: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("✅ Generated checklist file: %s\n\n", filename)
	fmt.Println("Open it in any Markdown viewer to check the rendering.")
	fmt.Println("\nFile contents preview:")
	fmt.Println("---")
	fmt.Println(checklist)
}
