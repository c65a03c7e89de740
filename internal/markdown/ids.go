package markdown

import (
	"strconv"

	gmast "github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"

	"git.home.luguber.info/inful/doclinks/internal/anchor"
)

// headingIDs makes heading anchors unique within one document. The first
// "Intro" heading gets "intro", the next "intro_2", and so on.
type headingIDs struct {
	used map[string]bool
}

// NewHeadingIDs returns a parser.IDs for a single document.
func NewHeadingIDs() parser.IDs {
	return &headingIDs{used: make(map[string]bool)}
}

func (h *headingIDs) Generate(value []byte, _ gmast.NodeKind) []byte {
	base := anchor.Anchorize(string(value))
	id := base
	for i := 2; h.used[id]; i++ {
		id = base + "_" + strconv.Itoa(i)
	}
	h.used[id] = true
	return []byte(id)
}

// Put reserves an explicitly assigned id.
func (h *headingIDs) Put(value []byte) {
	h.used[string(value)] = true
}
