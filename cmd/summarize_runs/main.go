// summarize_runs reads the result.json of several solve runs and lists the
// reachable ones by how much longer their beam is than the straight line.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"
	"sort"

	"github.com/jdginn/go-lightpath/lightpath/view"
)

type Summary struct {
	File        string
	Reflections int
	Length      float64
	// Beam length minus straight-line source to target distance
	Detour float64
	GainDB float64
}

func loadResult(path string) (view.ResultJSON, error) {
	f, err := os.Open(path)
	if err != nil {
		return view.ResultJSON{}, err
	}
	defer f.Close()

	var result view.ResultJSON
	if err := json.NewDecoder(f).Decode(&result); err != nil {
		return view.ResultJSON{}, fmt.Errorf("decoding %s: %w", path, err)
	}
	return result, nil
}

// summarize returns nil for unreachable results.
func summarize(file string, r view.ResultJSON) *Summary {
	if !r.Reachable || r.Beam == nil || r.Source == nil || r.Target == nil {
		return nil
	}
	direct := math.Hypot(r.Target.X-r.Source.X, r.Target.Y-r.Source.Y)
	return &Summary{
		File:        file,
		Reflections: len(r.Beam.Bounces),
		Length:      r.Beam.Length,
		Detour:      r.Beam.Length - direct,
		GainDB:      r.Beam.GainDB,
	}
}

func writeSummaries(w io.Writer, summaries []Summary) {
	sort.SliceStable(summaries, func(i, j int) bool {
		return summaries[i].Detour < summaries[j].Detour
	})
	for _, s := range summaries {
		fmt.Fprintf(w, "%s: %d reflections, length %.4f, detour %.4f, %.2fdB\n", s.File, s.Reflections, s.Length, s.Detour, s.GainDB)
	}
}

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: summarize_runs <result.json>...")
		os.Exit(1)
	}

	var summaries []Summary
	unreachable := 0
	for _, file := range os.Args[1:] {
		result, err := loadResult(file)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Cannot read %s: %v\n", file, err)
			os.Exit(2)
		}
		if s := summarize(file, result); s != nil {
			summaries = append(summaries, *s)
		} else {
			unreachable++
		}
	}

	writeSummaries(os.Stdout, summaries)
	if unreachable > 0 {
		fmt.Printf("%d unreachable\n", unreachable)
	}
}
