// Builds a search tree from key=value arguments, or from "set"/"del" lines
// on stdin, and prints its level-by-level view to stdout.
//
// Example run:
// $ searchtree-levels 5=five 3=three 8=eight 1=one 4=four 7=seven 9=nine
// five
// three eight
// one four seven nine
package main

import (
	"bufio"
	"os"
	"strings"

	_ "github.com/anacrolix/envpprof"
	"github.com/anacrolix/log"
	"github.com/anacrolix/tagflag"

	"github.com/anacrolix/searchtree"
)

func main() {
	flags := struct {
		tagflag.StartPos
		Assignments []string `arity:"*" help:"key=value entries; stdin is read if none are given"`
	}{}
	tagflag.Parse(&flags, tagflag.Description(
		"Prints the breadth-first levels of a binary search tree built from the given entries."))
	t := searchtree.New[string, string]()
	if len(flags.Assignments) == 0 {
		readOps(t, os.Stdin)
	} else {
		for _, arg := range flags.Assignments {
			key, value, ok := strings.Cut(arg, "=")
			if !ok {
				log.Printf("skipping malformed assignment %q", arg)
				continue
			}
			if !t.Insert(key, value) {
				log.Printf("duplicate key %q ignored", key)
			}
		}
	}
	err := t.WriteLevels(os.Stdout)
	if err != nil {
		log.Printf("error writing levels: %v", err)
		os.Exit(1)
	}
	if !t.Empty() {
		log.Printf("%v entries, keys %q through %q",
			t.Len(), t.Min().Value.Key, t.Max().Value.Key)
	}
}

// Applies "set KEY VALUE" and "del KEY" lines to the tree. Blank lines and
// #-comments are skipped.
func readOps(t *searchtree.Tree[string, string], f *os.File) {
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		switch {
		case fields[0] == "set" && len(fields) == 3:
			t.Insert(fields[1], fields[2])
		case fields[0] == "del" && len(fields) == 2:
			t.Erase(fields[1])
		default:
			log.Printf("skipping unrecognized op %q", line)
		}
	}
	if err := scanner.Err(); err != nil {
		log.Printf("error reading ops: %v", err)
		os.Exit(1)
	}
}
