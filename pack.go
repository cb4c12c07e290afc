package atlas

import (
	"fmt"

	"github.com/ForeverZer0/rectpack"
)

// PackRequest is one named rectangle submitted to a placement service.
// Dimensions are in pixels, or in block-grid units under MipWithBlock.
type PackRequest struct {
	ID     int
	Width  int
	Height int
}

// Placement is the page and offset a placement service assigned to one
// request. Width and Height echo the request dimensions; rectangles are
// never rotated.
type Placement struct {
	Page   int
	X, Y   int
	Width  int
	Height int
}

// Packer is the placement service consumed by CreateAtlas. Pack arranges the
// requests into at most maxPages non-overlapping width x height bins and
// returns a placement for every request ID, or an error when the budget is
// infeasible. Implementations must be deterministic: identical input must
// produce identical placements.
type Packer interface {
	Pack(width, height, maxPages int, reqs []PackRequest) (map[int]Placement, error)
}

// maxRectsPacker places rectangles with github.com/ForeverZer0/rectpack's
// MaxRects best-short-side-fit heuristic, filling one page at a time:
// whatever does not fit on the current page is offered to the next.
type maxRectsPacker struct {
	heuristic rectpack.Heuristic
}

// NewMaxRectsPacker returns the default placement service. Candidates are
// ordered largest area first and rotation is disabled so placements always
// match the requested orientation.
func NewMaxRectsPacker() Packer {
	return &maxRectsPacker{heuristic: rectpack.MaxRectsBSSF}
}

func (p *maxRectsPacker) Pack(width, height, maxPages int, reqs []PackRequest) (map[int]Placement, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("bin size %dx%d cannot hold any rectangle", width, height)
	}

	placements := make(map[int]Placement, len(reqs))
	pending := reqs

	for page := 0; page < maxPages && len(pending) > 0; page++ {
		pk, err := rectpack.NewPacker(width, height, p.heuristic)
		if err != nil {
			return nil, err
		}
		pk.AllowFlip(false)
		pk.Sorter(rectpack.SortArea, false)
		for _, req := range pending {
			pk.InsertSize(req.ID, req.Width, req.Height)
		}
		pk.Pack()

		for _, rect := range pk.Rects() {
			placements[rect.ID] = Placement{
				Page:   page,
				X:      rect.X,
				Y:      rect.Y,
				Width:  rect.Width,
				Height: rect.Height,
			}
		}

		unpacked := pk.Unpacked()
		next := make([]PackRequest, 0, len(unpacked))
		for _, size := range unpacked {
			next = append(next, PackRequest{ID: size.ID, Width: size.Width, Height: size.Height})
		}
		pending = next
	}

	if len(pending) > 0 {
		return nil, fmt.Errorf("cannot fit %d of %d rectangles within %d page(s) of %dx%d",
			len(pending), len(reqs), maxPages, width, height)
	}
	return placements, nil
}
