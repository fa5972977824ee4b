// SPDX-License-Identifier: MIT
// Package: tempograph/codec
//
// tg.go - the .tg text format, the authoritative round-trip form.
//
// Layout (emission order is the game's insertion order):
//
//	// targets: <id>[,<id>...]              directive, only when targets exist
//	node <id>: label["<label>"], owner[<owner>]
//	                                        blank separator line
//	edge <src> -> <dst>[: <polish-constraint>]
//
// Contract:
//   - WriteTG(EncodeTG(g)) round-trips through ReadTG: same node set, same
//     labels/owners/targets, same edge list with structurally equal
//     constraints. The game name is not part of the format.
//   - The Always constraint has no textual form: its edge line carries no
//     clause, and a clause-less line reads back as Always.
//   - Reading is line-classified and never fatal; see ReadReport.
//
// Complexity: writing O(V + E), reading O(V + E) over the input lines.

package codec

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/katalvlaran/tempograph/game"
	"github.com/katalvlaran/tempograph/temporal"
)

// File-local method tags for error context.
const (
	methodWriteTG = "WriteTG"
	methodReadTG  = "ReadTG"
)

// Line productions. Anchored and whitespace-tolerant; ids are word-shaped
// (letters, digits, underscore) per the corpus the format comes from. The
// label clause is optional on read (benchmark files omit it) and the label
// then defaults to the id.
var (
	tgNodeRE    = regexp.MustCompile(`^node\s+(\w+)\s*:\s*(?:label\["([^"]*)"\]\s*,\s*)?owner\[(\d+)\]$`)
	tgEdgeRE    = regexp.MustCompile(`^edge\s+(\w+)\s*->\s*(\w+)\s*(?::\s*(.+))?$`)
	tgTargetsRE = regexp.MustCompile(`^//\s*targets:\s*(.*)$`)
)

// WriteTG serializes g to w in the .tg form. Returns ErrNilGame for a nil
// game, otherwise the first writer error, wrapped.
func WriteTG(w io.Writer, g *game.Game) error {
	if g == nil {
		return fmt.Errorf("%s: %w", methodWriteTG, ErrNilGame)
	}

	// 1) Targets directive ahead of the declarations it references.
	if ts := g.Targets(); len(ts) > 0 {
		if _, err := fmt.Fprintf(w, "// targets: %s\n", strings.Join(ts, ",")); err != nil {
			return fmt.Errorf("%s: %w", methodWriteTG, err)
		}
	}

	// 2) Node declarations, insertion order, label always written.
	for _, n := range g.Nodes() {
		if _, err := fmt.Fprintf(w, "node %s: label[\"%s\"], owner[%d]\n", n.ID, n.Label, n.Owner); err != nil {
			return fmt.Errorf("%s: %w", methodWriteTG, err)
		}
	}

	// 3) Blank separator, then edge declarations, insertion order.
	if _, err := io.WriteString(w, "\n"); err != nil {
		return fmt.Errorf("%s: %w", methodWriteTG, err)
	}
	for _, e := range g.Edges() {
		clause := e.Constraint.Polish()
		if clause != "" {
			clause = ": " + clause
		}
		if _, err := fmt.Fprintf(w, "edge %s -> %s%s\n", e.From, e.To, clause); err != nil {
			return fmt.Errorf("%s: %w", methodWriteTG, err)
		}
	}

	return nil
}

// EncodeTG renders g as an in-memory .tg document. Writing to a
// strings.Builder cannot fail, so the only error path is a nil game, which
// yields the empty string.
func EncodeTG(g *game.Game) string {
	var sb strings.Builder
	if err := WriteTG(&sb, g); err != nil {
		return ""
	}

	return sb.String()
}

// tgDirective is a parked "// targets:" line, resolved after the scan so the
// directive may precede the node declarations it references.
type tgDirective struct {
	line int
	text string
	ids  []string
}

// ReadTG parses a .tg document back into a game. Each line is a node
// declaration, an edge declaration, a directive or plain comment (leading
// //), blank, or a recorded error; nothing in the format aborts the scan.
// The returned error is reserved for reader failures.
//
// Recovery rules:
//   - a line matching neither production → ErrMalformedLine entry, skipped;
//   - duplicate node id → entry wrapping game.ErrDuplicateNode, skipped;
//   - unparseable edge constraint → entry wrapping temporal.ErrMalformed,
//     edge kept with Always, DroppedConstraints incremented;
//   - targets directive naming an undeclared id → entry wrapping
//     game.ErrNodeNotFound, other listed ids still marked.
//
// Out-of-range owners load as written: the range check belongs to
// game.Validate, so defective files stay inspectable.
func ReadTG(r io.Reader) (*game.Game, ReadReport, error) {
	var rep ReadReport
	if r == nil {
		return nil, rep, fmt.Errorf("%s: %w", methodReadTG, ErrNilReader)
	}

	g := game.NewGame("")
	var directives []tgDirective

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		rep.Lines++
		line := strings.TrimSpace(sc.Text())

		// 1) Blank lines and comments; the targets directive is parked.
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "//") {
			if m := tgTargetsRE.FindStringSubmatch(line); m != nil {
				directives = append(directives, tgDirective{line: rep.Lines, text: line, ids: splitIDList(m[1])})
			}
			continue
		}

		// 2) Node production.
		if m := tgNodeRE.FindStringSubmatch(line); m != nil {
			owner, err := strconv.Atoi(m[3])
			if err != nil {
				rep.Errors = append(rep.Errors, LineError{Line: rep.Lines, Text: line, Err: fmt.Errorf("owner %q: %w", m[3], ErrMalformedLine)})
				continue
			}
			if err = g.AddNode(m[1], m[2], owner); err != nil {
				rep.Errors = append(rep.Errors, LineError{Line: rep.Lines, Text: line, Err: err})
				continue
			}
			rep.Nodes++
			continue
		}

		// 3) Edge production, Always fallback on constraint trouble.
		if m := tgEdgeRE.FindStringSubmatch(line); m != nil {
			c := temporal.Always()
			if clause := strings.TrimSpace(m[3]); clause != "" {
				parsed, err := temporal.ParsePolish(clause)
				if err != nil {
					rep.Errors = append(rep.Errors, LineError{Line: rep.Lines, Text: line, Err: err})
					rep.DroppedConstraints++
				} else {
					c = parsed
				}
			}
			if err := g.AddEdge(m[1], m[2], c); err != nil {
				rep.Errors = append(rep.Errors, LineError{Line: rep.Lines, Text: line, Err: err})
				continue
			}
			rep.Edges++
			continue
		}

		rep.Errors = append(rep.Errors, LineError{Line: rep.Lines, Text: line, Err: ErrMalformedLine})
	}
	if err := sc.Err(); err != nil {
		return nil, rep, fmt.Errorf("%s: %w", methodReadTG, err)
	}

	// 4) Resolve parked directives against the complete node set.
	for _, d := range directives {
		for _, id := range d.ids {
			if err := g.MarkTarget(id); err != nil {
				rep.Errors = append(rep.Errors, LineError{Line: d.line, Text: d.text, Err: err})
			}
		}
	}

	return g, rep, nil
}

// splitIDList splits a comma-separated id list, trimming whitespace around
// items and dropping empty ones ("a, b," → [a b]).
func splitIDList(csv string) []string {
	parts := strings.Split(csv, ",")
	ids := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			ids = append(ids, p)
		}
	}

	return ids
}
