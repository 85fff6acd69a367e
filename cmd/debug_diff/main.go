package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"asset-reconciler/core/importer"
	"asset-reconciler/core/reconcile"
)

// Prints the layer diff between two local manifests without touching any
// container.
func main() {
	if len(os.Args) != 3 {
		fmt.Println("usage: debug_diff <current> <new>")
		os.Exit(2)
	}

	imp := importer.NewManifestImporter(importer.NewFSSource(""))
	ctx := context.Background()

	current, err := imp.Import(ctx, os.Args[1])
	if err != nil {
		fmt.Printf("Failed to import %s: %v\n", os.Args[1], err)
		os.Exit(1)
	}
	incoming, err := imp.Import(ctx, os.Args[2])
	if err != nil {
		fmt.Printf("Failed to import %s: %v\n", os.Args[2], err)
		os.Exit(1)
	}

	res := reconcile.Diff(current, incoming)
	data, _ := json.MarshalIndent(res, "", "  ")
	fmt.Println(string(data))
	fmt.Println(reconcile.NewSummary(current, incoming.Path, res).String())
}
