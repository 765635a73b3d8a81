// checkscene reports puzzle scenes whose end points sit inside obstacles or on
// mirrors, or whose mirrors cannot reflect.
package main

import (
	"fmt"
	"log"

	"github.com/alecthomas/kong"

	"github.com/jdginn/go-lightpath/lightpath"
	"github.com/jdginn/go-lightpath/lightpath/config"
)

type CheckCmd struct {
	Config string `arg:"" name:"config" help:"puzzle file to check" type:"existingfile"`
}

func checkScene(p *config.Puzzle) []string {
	var problems []string
	ends := []struct {
		name string
		p    *lightpath.Point
	}{
		{"source", p.Query.Source},
		{"target", p.Query.Target},
	}
	for _, end := range ends {
		if end.p == nil {
			problems = append(problems, fmt.Sprintf("%s is missing", end.name))
			continue
		}
		if p.World.Contains(*end.p) {
			problems = append(problems, fmt.Sprintf("%s (%.3f, %.3f) is inside an obstacle", end.name, end.p.X, end.p.Y))
		}
		for i, m := range p.Query.Mirrors {
			if lightpath.IsOnSegment(*end.p, m.A, m.B) {
				problems = append(problems, fmt.Sprintf("%s lies on mirror %d", end.name, i))
			}
		}
	}
	for i, m := range p.Query.Mirrors {
		if m.Degenerate() {
			problems = append(problems, fmt.Sprintf("mirror %d is degenerate and will never reflect", i))
		}
	}
	return problems
}

func (c CheckCmd) Run() error {
	cfg, err := config.LoadFromFile(c.Config, config.LoadOptions{ResolvePaths: true, MergeFiles: true})
	if err != nil {
		return err
	}
	puzzle, err := cfg.Build()
	if err != nil {
		return err
	}
	problems := checkScene(puzzle)
	for _, p := range problems {
		fmt.Println("  -", p)
	}
	if len(problems) > 0 {
		return fmt.Errorf("%s: %d problems", c.Config, len(problems))
	}
	fmt.Println(c.Config, "ok")
	return nil
}

func main() {
	var cli CheckCmd
	ctx := kong.Parse(&cli)
	if err := ctx.Run(); err != nil {
		log.Fatal(err)
	}
}
