package slice

import (
	"fmt"

	"github.com/hexlattice/contourpress/geom"
	"github.com/hexlattice/contourpress/mesh"
	"github.com/hexlattice/contourpress/stage"
)

// Iterator drives the stage iterator and a fixed height step across a
// whole mesh, skipping cleanly over stage boundaries: heights keep
// counting in absolute Z from the first slab's floor plus one layer
// height, and a height that would fall below the next slab's floor is
// moved to that floor plus one layer height instead of erroring.
type Iterator struct {
	stages  *stage.Iterator
	cfg     Config
	cur     *stage.Stage
	next    float64
	started bool
	done    bool
}

// NewIterator starts an Iterator over m using cfg.
func NewIterator(m *mesh.Mesh, cfg Config) *Iterator {
	return &Iterator{stages: stage.NewIterator(m), cfg: cfg}
}

// pending advances past exhausted stages and returns the stage and
// height the next slice should be built from, without building it.
func (it *Iterator) pending() (*stage.Stage, float64, bool, error) {
	if it.cfg.LayerHeight <= 0 {
		return nil, 0, false, fmt.Errorf("slice: layer height must be positive, got %g", it.cfg.LayerHeight)
	}
	for it.cur == nil || it.next > it.cur.Max-geom.Epsilon {
		s, ok, err := it.stages.Next()
		if err != nil {
			return nil, 0, false, err
		}
		if !ok {
			return nil, 0, false, nil
		}
		it.cur = s
		if !it.started || it.next < s.Min {
			it.next = s.Min + it.cfg.LayerHeight
			it.started = true
		}
	}
	return it.cur, it.next, true, nil
}

// Next returns the next Slice in ascending height order. ok is false
// once the mesh's full height range has been covered.
func (it *Iterator) Next() (*Slice, bool, error) {
	if it.done {
		return nil, false, nil
	}
	st, h, ok, err := it.pending()
	if err != nil {
		it.done = true
		return nil, false, err
	}
	if !ok {
		it.done = true
		return nil, false, nil
	}
	sl, err := BuildSlice(st, h)
	if err != nil {
		it.done = true
		return nil, false, err
	}
	it.next = h + it.cfg.LayerHeight
	return sl, true, nil
}
