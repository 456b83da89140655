package main

import (
	"strconv"

	"aiss/internal/catalog"
	"aiss/internal/render"
)

// printCategories lists every registered category with its key trait.
func printCategories(console *render.Console) {
	rows := make([][]string, 0, len(catalog.All()))
	for _, d := range catalog.All() {
		rows = append(rows, []string{
			d.ID,
			d.DisplayName,
			strconv.Itoa(len(d.Fields)),
			d.KeyTrait,
		})
	}
	console.RenderListing("Categories", []string{"ID", "Name", "Fields", "Key Trait"}, rows)
}
