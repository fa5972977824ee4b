// SPDX-License-Identifier: MIT
// Package: tempograph/regions
//
// parse.go - extraction of winning regions from solver stdout.
//
// Neither output format is owned by this module, so both parsers are
// tolerant by construction: they collect what matches and never fail. An
// absent section simply yields no entry, and a missing map entry is a nil
// Set, which reads as empty. Callers that must distinguish "solver said
// empty" from "solver said nothing" check key presence.

package regions

import (
	"regexp"
	"strconv"
	"strings"
)

// Timed-solver output, one region per line:
//
//	W_0 = {"s0", "s1"}
//	W_10000 = {}
var (
	timedRegionRE = regexp.MustCompile(`W_(\d+)\s*=\s*\{([^}]*)\}`)
	quotedIDRE    = regexp.MustCompile(`"([^"]+)"`)
)

// Player-solver output, sectioned:
//
//	Player 0:
//	Winning regions:
//	  {s0, s1}
var (
	playerHeadRE   = regexp.MustCompile(`Player\s+(\d+):`)
	winningBlockRE = regexp.MustCompile(`Winning regions:\s*\{([^}]*)\}`)
)

// ParseTimed extracts every `W_<t> = {...}` region from text, keyed by the
// time index. Ids are the quoted strings inside the braces; `{}` is the
// empty region. A repeated time index keeps the last occurrence.
func ParseTimed(text string) map[int]Set {
	out := make(map[int]Set)
	for _, m := range timedRegionRE.FindAllStringSubmatch(text, -1) {
		t, err := strconv.Atoi(m[1])
		if err != nil {
			continue // digits too large to index a region; leave it unparsed
		}
		ids := Set{}
		for _, q := range quotedIDRE.FindAllStringSubmatch(m[2], -1) {
			ids = ids.Add(q[1])
		}
		out[t] = ids
	}

	return out
}

// ParsePlayers extracts per-player regions from sectioned text: each
// `Player <n>:` heading owns everything up to the next heading, and the
// first `Winning regions: {...}` inside the section is that player's
// region, bare comma-separated ids. A section without a region block
// contributes nothing.
func ParsePlayers(text string) map[int]Set {
	out := make(map[int]Set)
	heads := playerHeadRE.FindAllStringSubmatchIndex(text, -1)
	for i, h := range heads {
		player, err := strconv.Atoi(text[h[2]:h[3]])
		if err != nil {
			continue
		}

		end := len(text)
		if i+1 < len(heads) {
			end = heads[i+1][0]
		}
		section := text[h[1]:end]

		wm := winningBlockRE.FindStringSubmatch(section)
		if wm == nil {
			continue
		}
		ids := Set{}
		for _, id := range strings.Split(wm[1], ",") {
			if id = strings.TrimSpace(id); id != "" {
				ids = ids.Add(id)
			}
		}
		out[player] = ids
	}

	return out
}
