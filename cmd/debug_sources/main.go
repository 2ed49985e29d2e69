package main

import (
	"context"
	"fmt"
	"log"
	"sort"

	"url-reconciler/core/config"
	"url-reconciler/core/database"
	"url-reconciler/core/reconcile"
	"url-reconciler/core/storage"
	"url-reconciler/feature/sources"
)

func main() {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatal(err)
	}
	ctx := context.Background()

	deps := sources.Deps{Bucket: cfg.Storage.Bucket}
	kinds := sources.Kinds(cfg.SourceA, cfg.SourceB)
	if kinds[sources.KindObject] {
		if deps.Storage, err = storage.NewClient(cfg.Storage); err != nil {
			log.Fatal(err)
		}
	}
	if kinds[sources.KindTable] {
		if deps.DB, err = database.Connect(cfg.Database); err != nil {
			log.Fatal(err)
		}
		if sqlDB, err := deps.DB.DB(); err == nil {
			defer sqlDB.Close()
		}
	}
	if kinds[sources.KindPostgres] {
		pool, err := sources.NewPool(ctx, cfg.Postgres)
		if err != nil {
			log.Fatal(err)
		}
		defer pool.Close()
		deps.Postgres = pool
	}
	if kinds[sources.KindSheets] {
		if deps.Sheets, err = sources.NewSheetsService(ctx, cfg.Sheets); err != nil {
			log.Fatal(err)
		}
	}

	sides := map[string]sources.Config{"A": cfg.SourceA, "B": cfg.SourceB}
	ids := map[string]map[int64]int{}

	for _, side := range []string{"A", "B"} {
		src, err := sources.FromConfig(sides[side], deps)
		if err != nil {
			log.Fatalf("source %s: %v", side, err)
		}
		pairs, err := src.Load(ctx)
		if err != nil {
			log.Fatalf("source %s: %v", side, err)
		}

		fmt.Printf("=== SOURCE %s: %s ===\n", side, src.Name())
		fmt.Printf("Rows with numeric id: %d\n", len(pairs))
		ids[side] = countIDs(pairs)

		blank := 0
		for _, p := range pairs {
			if p.URL == "" {
				blank++
			}
		}
		fmt.Printf("Blank URLs:           %d\n", blank)

		if dups := duplicates(ids[side]); len(dups) > 0 {
			fmt.Printf("Duplicate ids:        %v\n", dups)
		}
		for i, p := range pairs {
			if i == 5 {
				break
			}
			fmt.Printf("  %d -> %s\n", p.ID, p.URL)
		}
		fmt.Println()
	}

	common := 0
	for id := range ids["A"] {
		if _, ok := ids["B"][id]; ok {
			common++
		}
	}
	fmt.Println("=== OVERLAP ===")
	fmt.Printf("Common ids: %d\n", common)
	fmt.Printf("Only in A:  %d\n", len(ids["A"])-common)
	fmt.Printf("Only in B:  %d\n", len(ids["B"])-common)
}

func countIDs(pairs []reconcile.URLPair) map[int64]int {
	counts := make(map[int64]int, len(pairs))
	for _, p := range pairs {
		counts[p.ID]++
	}
	return counts
}

func duplicates(counts map[int64]int) []int64 {
	var dups []int64
	for id, n := range counts {
		if n > 1 {
			dups = append(dups, id)
		}
	}
	sort.Slice(dups, func(i, j int) bool { return dups[i] < dups[j] })
	return dups
}
