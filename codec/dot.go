// SPDX-License-Identifier: MIT
// Package: tempograph/codec
//
// dot.go - the .dot projection for DOT-consuming tooling.
//
// Layout (emission order is the game's insertion order):
//
//	digraph <name> {
//	    <id> [name="<id>", player=<owner>[, target=1]];
//	                                        blank separator line
//	    <src> -> <dst>[ [constraint="<infix-constraint>"]];
//	}
//
// Contract:
//   - WriteDOT is a projection, not a round-trip format: node labels are not
//     written, and constraints appear only as infix attribute text.
//   - ReadDOT recovers the structure (ids, players, targets, edges, name).
//     Infix is never parsed back, so every constraint attribute is counted in
//     ReadReport.DroppedConstraints and its edge reads as Always. Structural
//     inspection and validation work on the result; constraint-faithful
//     loading goes through ReadTG.
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
	methodWriteDOT = "WriteDOT"
	methodReadDOT  = "ReadDOT"
)

// Line productions. Ids and graph names are word-shaped; attribute lists
// never nest brackets in this projection, so [^\]]* is the attr body. The
// trailing semicolon is optional on read.
var (
	dotHeaderRE = regexp.MustCompile(`^digraph\s+(\w+)\s*\{$`)
	dotNodeRE   = regexp.MustCompile(`^(\w+)\s*\[([^\]]*)\]\s*;?$`)
	dotEdgeRE   = regexp.MustCompile(`^(\w+)\s*->\s*(\w+)\s*(?:\[([^\]]*)\])?\s*;?$`)

	dotPlayerRE     = regexp.MustCompile(`player\s*=\s*(\d+)`)
	dotTargetRE     = regexp.MustCompile(`target\s*=\s*1`)
	dotConstraintRE = regexp.MustCompile(`constraint\s*=\s*"`)
)

// WriteDOT serializes g to w in the .dot form. Returns ErrNilGame for a nil
// game, otherwise the first writer error, wrapped.
func WriteDOT(w io.Writer, g *game.Game) error {
	if g == nil {
		return fmt.Errorf("%s: %w", methodWriteDOT, ErrNilGame)
	}

	// 1) Header. NewGame guarantees a non-empty name.
	if _, err := fmt.Fprintf(w, "digraph %s {\n", g.Name()); err != nil {
		return fmt.Errorf("%s: %w", methodWriteDOT, err)
	}

	// 2) Node statements, insertion order.
	for _, n := range g.Nodes() {
		target := ""
		if n.Target {
			target = ", target=1"
		}
		if _, err := fmt.Fprintf(w, "    %s [name=\"%s\", player=%d%s];\n", n.ID, n.ID, n.Owner, target); err != nil {
			return fmt.Errorf("%s: %w", methodWriteDOT, err)
		}
	}

	// 3) Blank separator, then edge statements, insertion order.
	if _, err := io.WriteString(w, "\n"); err != nil {
		return fmt.Errorf("%s: %w", methodWriteDOT, err)
	}
	for _, e := range g.Edges() {
		attr := ""
		if infix := e.Constraint.Infix(); infix != "" {
			attr = fmt.Sprintf(" [constraint=\"%s\"]", infix)
		}
		if _, err := fmt.Fprintf(w, "    %s -> %s%s;\n", e.From, e.To, attr); err != nil {
			return fmt.Errorf("%s: %w", methodWriteDOT, err)
		}
	}

	// 4) Footer.
	if _, err := io.WriteString(w, "}\n"); err != nil {
		return fmt.Errorf("%s: %w", methodWriteDOT, err)
	}

	return nil
}

// EncodeDOT renders g as an in-memory .dot document. A nil game yields the
// empty string.
func EncodeDOT(g *game.Game) string {
	var sb strings.Builder
	if err := WriteDOT(&sb, g); err != nil {
		return ""
	}

	return sb.String()
}

// Parked statements: the digraph name arrives mid-scan, and game.NewGame
// fixes the name at construction, so ReadDOT classifies first and builds the
// game after the scan. Line/text ride along for error attribution.
type dotNode struct {
	id     string
	owner  int
	target bool
	line   int
	text   string
}

type dotEdge struct {
	from, to string
	line     int
	text     string
}

// ReadDOT parses a .dot document into a structurally equivalent game. Each
// line is the header, a node statement, an edge statement, a brace, blank,
// comment (leading //), or a recorded error; nothing in the format aborts
// the scan. The returned error is reserved for reader failures.
//
// Recovery rules:
//   - a line matching no production → ErrMalformedLine entry, skipped;
//   - a node statement without a player attribute → ErrMalformedLine entry;
//   - duplicate node id → entry wrapping game.ErrDuplicateNode, skipped;
//   - constraint attribute on an edge → DroppedConstraints incremented,
//     edge admitted with Always (not an error entry);
//   - missing header → name falls back to game.DefaultName.
func ReadDOT(r io.Reader) (*game.Game, ReadReport, error) {
	var rep ReadReport
	if r == nil {
		return nil, rep, fmt.Errorf("%s: %w", methodReadDOT, ErrNilReader)
	}

	var (
		name  string
		nodes []dotNode
		edges []dotEdge
	)

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		rep.Lines++
		line := strings.TrimSpace(sc.Text())

		// 1) Blank lines, comments, closing brace.
		if line == "" || line == "}" || strings.HasPrefix(line, "//") {
			continue
		}

		// 2) Header; the first one names the game.
		if m := dotHeaderRE.FindStringSubmatch(line); m != nil {
			if name == "" {
				name = m[1]
			}
			continue
		}

		// 3) Edge statement. Checked before the node production: both start
		// with an id, the arrow disambiguates.
		if m := dotEdgeRE.FindStringSubmatch(line); m != nil {
			if dotConstraintRE.MatchString(m[3]) {
				rep.DroppedConstraints++
			}
			edges = append(edges, dotEdge{from: m[1], to: m[2], line: rep.Lines, text: line})
			continue
		}

		// 4) Node statement; player is the one required attribute.
		if m := dotNodeRE.FindStringSubmatch(line); m != nil {
			pm := dotPlayerRE.FindStringSubmatch(m[2])
			if pm == nil {
				rep.Errors = append(rep.Errors, LineError{Line: rep.Lines, Text: line, Err: fmt.Errorf("missing player attribute: %w", ErrMalformedLine)})
				continue
			}
			owner, err := strconv.Atoi(pm[1])
			if err != nil {
				rep.Errors = append(rep.Errors, LineError{Line: rep.Lines, Text: line, Err: fmt.Errorf("player %q: %w", pm[1], ErrMalformedLine)})
				continue
			}
			nodes = append(nodes, dotNode{id: m[1], owner: owner, target: dotTargetRE.MatchString(m[2]), line: rep.Lines, text: line})
			continue
		}

		rep.Errors = append(rep.Errors, LineError{Line: rep.Lines, Text: line, Err: ErrMalformedLine})
	}
	if err := sc.Err(); err != nil {
		return nil, rep, fmt.Errorf("%s: %w", methodReadDOT, err)
	}

	// 5) Build the game from the parked statements.
	g := game.NewGame(name)
	for _, n := range nodes {
		if err := g.AddNode(n.id, "", n.owner); err != nil {
			rep.Errors = append(rep.Errors, LineError{Line: n.line, Text: n.text, Err: err})
			continue
		}
		rep.Nodes++
		if n.target {
			if err := g.MarkTarget(n.id); err != nil {
				rep.Errors = append(rep.Errors, LineError{Line: n.line, Text: n.text, Err: err})
			}
		}
	}
	for _, e := range edges {
		if err := g.AddEdge(e.from, e.to, temporal.Always()); err != nil {
			rep.Errors = append(rep.Errors, LineError{Line: e.line, Text: e.text, Err: err})
			continue
		}
		rep.Edges++
	}

	return g, rep, nil
}
