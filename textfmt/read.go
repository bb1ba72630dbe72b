// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package textfmt

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/samo538/mata/afa"
	"github.com/samo538/mata/formula"
	"github.com/samo538/mata/parsec"
)

// ReadSection scans r line by line, exactly like the teacher's dimacs
// readers: a line is either blank, a "@Type" header, a "%Key: v1 v2"
// dict entry, or a whitespace-separated body line. A leading '#' marks
// a comment line, skipped entirely.
func ReadSection(r io.Reader) (parsec.Section, error) {
	sec := parsec.Section{Dict: map[string][]string{}}
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		switch {
		case line == "" || strings.HasPrefix(line, "#"):
			continue
		case strings.HasPrefix(line, "@"):
			sec.Type = strings.TrimSpace(line[1:])
		case strings.HasPrefix(line, "%"):
			rest := line[1:]
			key, val, ok := strings.Cut(rest, ":")
			if !ok {
				return parsec.Section{}, fmt.Errorf("textfmt: malformed dict line %q", line)
			}
			sec.Dict[strings.TrimSpace(key)] = strings.Fields(val)
		default:
			sec.Body = append(sec.Body, strings.Fields(line))
		}
	}
	if err := sc.Err(); err != nil {
		return parsec.Section{}, err
	}
	return sec, nil
}

// ReadAfa scans r for a textfmt AFA description and constructs aut from
// it, using states to assign dense state ids and symbols (or, if
// symbols is nil, an on-the-fly parsec.SymbolMap) to resolve symbol
// names.
func ReadAfa(r io.Reader, aut *afa.Afa, states *parsec.StateMap, symbols *parsec.SymbolMap) error {
	sec, err := ReadSection(r)
	if err != nil {
		return err
	}
	if symbols == nil {
		symbols = parsec.NewSymbolMap()
	}
	b := formula.NewBuilder()
	return parsec.Construct(aut, sec, symbols, NewDNFParser(b), states)
}
