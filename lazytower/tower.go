package lazytower

import (
	"fmt"
	"math/big"
	"slices"

	"github.com/privacy-scaling-explorations/zk-kit-sub001/accumulator"
	"github.com/privacy-scaling-explorations/zk-kit-sub001/bloom"
)

var (
	ErrTowerFull       = fmt.Errorf("%w: the tower is full", accumulator.ErrCapacity)
	ErrTowerEmpty      = fmt.Errorf("%w: the tower is empty", accumulator.ErrCapacity)
	ErrHistoryDisabled = fmt.Errorf("%w: the tower keeps no history", accumulator.ErrValidation)
)

// Tower is a lazy tower accumulator of height H and width W.
type Tower[N comparable] struct {
	height int
	width  int
	hash   accumulator.Hash2Function[N]

	// levels[lv] is the live buffer of level lv, never empty once created.
	levels [][]N
	// fullLevels[lv] is every value ever written to level lv. The live
	// buffer is always its suffix. Nil with HistoryNone.
	fullLevels [][]N
	history    HistoryPolicy
	count      int

	filter *bloom.Filter
	encode func(N) []byte
}

// New creates an empty tower of the given height and width.
func New[N comparable](height, width int, hash accumulator.Hash2Function[N], opts ...Option[N]) (*Tower[N], error) {
	if hash == nil {
		return nil, fmt.Errorf("%w: a hash function is required", accumulator.ErrValidation)
	}
	if height < 1 {
		return nil, fmt.Errorf("%w: height %d must be at least 1", accumulator.ErrValidation, height)
	}
	if width < 2 || width > accumulator.MaxLevelLength {
		return nil, fmt.Errorf(
			"%w: width %d must be in [2, %d]", accumulator.ErrValidation, width, accumulator.MaxLevelLength)
	}

	var o Options[N]
	for _, opt := range opts {
		opt(&o)
	}

	t := &Tower[N]{
		height:  height,
		width:   width,
		hash:    hash,
		history: o.history,
	}
	if o.encode != nil && o.history == HistoryFull {
		filter, err := bloom.New(o.expected, bloom.DefaultBitsPerElement, bloom.DefaultK)
		if err != nil {
			return nil, fmt.Errorf("%w: membership filter: %v", accumulator.ErrValidation, err)
		}
		t.filter = filter
		t.encode = o.encode
	}
	return t, nil
}

func (t *Tower[N]) Height() int { return t.height }

func (t *Tower[N]) Width() int { return t.width }

// Len returns the number of items added.
func (t *Tower[N]) Len() int { return t.count }

// Capacity returns the number of items a tower of this shape accepts before
// Add fails, W*(W^H-1)/(W-1). It returns false if that does not fit an int.
func (t *Tower[N]) Capacity() (int, bool) {
	p, ok := accumulator.PowInt(t.width, t.height)
	if !ok {
		return 0, false
	}
	// p-1 is divisible by W-1
	n := (p - 1) / (t.width - 1)
	if n > int(^uint(0)>>1)/t.width {
		return 0, false
	}
	return n * t.width, true
}

// Add appends item, cascading full levels upwards. A full tower is left
// unchanged and ErrTowerFull is returned.
func (t *Tower[N]) Add(item N) error {
	// Find the first level with room before writing anything.
	top := 0
	for top < len(t.levels) && len(t.levels[top]) == t.width {
		top++
	}
	if top == t.height {
		return ErrTowerFull
	}

	toAdd := item
	for lv := 0; ; lv++ {
		if lv == len(t.levels) {
			t.levels = append(t.levels, []N{toAdd})
			t.appendHistory(lv, toAdd)
			break
		}
		if len(t.levels[lv]) < t.width {
			t.levels[lv] = append(t.levels[lv], toAdd)
			t.appendHistory(lv, toAdd)
			break
		}
		t.appendHistory(lv, toAdd)
		carry := accumulator.Fold(t.hash, t.levels[lv])
		t.levels[lv] = append(t.levels[lv][:0], toAdd)
		toAdd = carry
	}

	t.count++
	if t.filter != nil {
		t.filter.Insert(t.encode(item))
	}
	return nil
}

func (t *Tower[N]) appendHistory(lv int, value N) {
	if t.history != HistoryFull {
		return
	}
	if lv == len(t.fullLevels) {
		t.fullLevels = append(t.fullLevels, nil)
	}
	t.fullLevels[lv] = append(t.fullLevels[lv], value)
}

// IndexOf returns the position in insertion order of the first item equal to
// item, or -1.
func (t *Tower[N]) IndexOf(item N) (int, error) {
	if t.history != HistoryFull {
		return -1, ErrHistoryDisabled
	}
	if len(t.fullLevels) == 0 {
		return -1, nil
	}
	if t.filter != nil && !t.filter.MaybeContains(t.encode(item)) {
		return -1, nil
	}
	return slices.Index(t.fullLevels[0], item), nil
}

// Has reports whether item was ever added.
func (t *Tower[N]) Has(item N) (bool, error) {
	i, err := t.IndexOf(item)
	return i >= 0, err
}

// Digests returns the digest of each live level, level 0 first.
func (t *Tower[N]) Digests() []N {
	digests := make([]N, len(t.levels))
	for lv, level := range t.levels {
		digests[lv] = accumulator.Fold(t.hash, level)
	}
	return digests
}

// DigestOfDigests is the commitment to the whole tower: the fold of the
// level digests taken from the top level down. It is the zero value of N for
// an empty tower.
func (t *Tower[N]) DigestOfDigests() N {
	digests := t.Digests()
	slices.Reverse(digests)
	return accumulator.Fold(t.hash, digests)
}

// LevelLengths packs the live length of each level, 4 bits per level with
// level 0 in the low bits.
func (t *Tower[N]) LevelLengths() *big.Int {
	lengths := make([]int, len(t.levels))
	for lv, level := range t.levels {
		lengths[lv] = len(level)
	}
	return accumulator.PackLevelLengths(lengths)
}

// Levels returns a copy of the live levels, level 0 first.
func (t *Tower[N]) Levels() [][]N {
	levels := make([][]N, len(t.levels))
	for lv, level := range t.levels {
		levels[lv] = slices.Clone(level)
	}
	return levels
}

// IsFull reports whether the next Add would fail.
func (t *Tower[N]) IsFull() bool {
	if len(t.levels) < t.height {
		return false
	}
	for _, level := range t.levels {
		if len(level) < t.width {
			return false
		}
	}
	return true
}
