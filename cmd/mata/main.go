// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/samo538/mata/afa"
	"github.com/samo538/mata/parsec"
	"github.com/samo538/mata/textfmt"
)

var worklist = flag.Bool("worklist", false, "use the worklist emptiness test instead of the fixpoint one")
var backward = flag.Bool("backward", false, "use a backward emptiness test instead of a forward one")

func path2Reader(p string) (io.Reader, error) {
	if p == "-" {
		return os.Stdin, nil
	}
	return os.Open(p)
}

func main() {
	flag.Usage = func() {
		p := os.Args[0]
		_, p = filepath.Split(p)
		fmt.Fprintf(os.Stderr, usage, p, p)
		flag.PrintDefaults()
		fmt.Fprintln(os.Stderr)
	}
	flag.Parse()
	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(1)
	}

	r, err := path2Reader(flag.Arg(0))
	if err != nil {
		log.Fatalf("error opening %q: %s", flag.Arg(0), err)
	}

	aut := afa.New(0)
	states := parsec.NewStateMap()
	if err := textfmt.ReadAfa(r, aut, states, nil); err != nil {
		log.Fatalf("error reading %q: %s", flag.Arg(0), err)
	}

	empty, err := decide(aut)
	if err != nil {
		log.Fatalf("error deciding emptiness: %s", err)
	}
	if empty {
		fmt.Println("empty")
		os.Exit(10)
	}
	fmt.Println("nonempty")
	os.Exit(20)
}

func decide(aut *afa.Afa) (bool, error) {
	switch {
	case *backward && *worklist:
		return aut.EmptyBackwardWorklist()
	case *backward:
		return aut.EmptyBackwardFixpoint()
	case *worklist:
		return aut.EmptyForwardWorklist()
	default:
		return aut.EmptyForwardFixpoint()
	}
}
