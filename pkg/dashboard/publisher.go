// Package dashboard reacts to selection changes by recomputing the affected
// view models and publishing them to a Sink.
//
// A Publisher processes one event at a time, to completion. It is not safe
// for concurrent use; the caller serializes events the way a UI event loop
// does.
package dashboard

import (
	"fmt"
	"io"
	"log"

	"github.com/anrid/us-population/pkg/derive"
	"github.com/anrid/us-population/pkg/selection"
	"github.com/anrid/us-population/pkg/stats"
)

type State int

const (
	Idle State = iota
	Recomputing
	Published
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Recomputing:
		return "recomputing"
	case Published:
		return "published"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

type Publisher struct {
	store   *stats.Store
	sink    Sink
	log     *log.Logger
	current selection.Selection
	state   State
	observe func(State)
}

// New returns a Publisher holding sel as the current selection. Nothing is
// published until PublishAll or the first change. A nil logger discards.
func New(store *stats.Store, sink Sink, sel selection.Selection, logger *log.Logger) (*Publisher, error) {
	if err := sel.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidValue, err)
	}
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Publisher{
		store:   store,
		sink:    sink,
		log:     logger,
		current: sel,
	}, nil
}

// Observe registers fn to be called on every state transition.
func (p *Publisher) Observe(fn func(State)) {
	p.observe = fn
}

func (p *Publisher) Selection() selection.Selection {
	return p.current
}

func (p *Publisher) State() State {
	return p.state
}

func (p *Publisher) transition(s State) {
	p.state = s
	if p.observe != nil {
		p.observe(s)
	}
}

// PublishAll recomputes and publishes every slot for the current selection.
func (p *Publisher) PublishAll() error {
	return p.run(Slots(), p.current)
}

// OnSelectionChanged applies a new value for field and publishes the slots
// that depend on it. It returns the slots published, in order.
//
// FieldKey takes a selection.Key or string, FieldTheme a selection.Theme or
// string, and the size fields a selection.Viewport. An invalid value leaves
// the current selection untouched. A size event equal to the current size is
// coalesced: nothing is recomputed and no slots are returned.
//
// The new selection becomes current only once every affected slot is
// published. On a sink error the previous selection stays current, so the
// same event can be retried.
func (p *Publisher) OnSelectionChanged(field Field, value interface{}) ([]Slot, error) {
	slots, err := Affected(field)
	if err != nil {
		return nil, err
	}

	next, err := apply(p.current, field, value)
	if err != nil {
		return nil, err
	}

	if (field == FieldLineSize || field == FieldHeatmapSize) && next == p.current {
		return nil, nil
	}

	if err := p.run(slots, next); err != nil {
		return nil, err
	}
	p.current = next
	return slots, nil
}

func apply(sel selection.Selection, field Field, value interface{}) (selection.Selection, error) {
	switch field {
	case FieldKey:
		s, ok := asString(value)
		if !ok {
			return sel, fmt.Errorf("%w: %s wants a key, got %T", ErrInvalidValue, field, value)
		}
		k, err := selection.ParseKey(s)
		if err != nil {
			return sel, fmt.Errorf("%w: %v", ErrInvalidValue, err)
		}
		return sel.WithKey(k), nil

	case FieldTheme:
		s, ok := asString(value)
		if !ok {
			return sel, fmt.Errorf("%w: %s wants a theme, got %T", ErrInvalidValue, field, value)
		}
		t, err := selection.ParseTheme(s)
		if err != nil {
			return sel, fmt.Errorf("%w: %v", ErrInvalidValue, err)
		}
		return sel.WithTheme(t), nil

	case FieldLineSize, FieldHeatmapSize:
		v, ok := value.(selection.Viewport)
		if !ok {
			return sel, fmt.Errorf("%w: %s wants a viewport, got %T", ErrInvalidValue, field, value)
		}
		if v.Width < 0 || v.Height < 0 {
			return sel, fmt.Errorf("%w: negative size %gx%g", ErrInvalidValue, v.Width, v.Height)
		}
		if field == FieldLineSize {
			return sel.WithLine(v), nil
		}
		return sel.WithHeatmap(v), nil
	}
	return sel, fmt.Errorf("%w: %q", ErrUnknownField, field)
}

func asString(v interface{}) (string, bool) {
	switch v := v.(type) {
	case string:
		return v, true
	case selection.Key:
		return string(v), true
	case selection.Theme:
		return string(v), true
	}
	return "", false
}

func (p *Publisher) run(slots []Slot, sel selection.Selection) error {
	p.transition(Recomputing)

	d := &derivation{store: p.store, sel: sel}
	values := make([]interface{}, len(slots))
	for i, slot := range slots {
		values[i] = d.value(slot)
	}
	for _, err := range d.warnings {
		p.log.Printf("%s: %v", sel.Key, err)
	}

	for i, slot := range slots {
		if err := p.sink.Publish(slot, values[i]); err != nil {
			p.transition(Idle)
			return fmt.Errorf("publish %s: %w", slot, err)
		}
	}
	p.transition(Published)

	p.transition(Idle)
	return nil
}

// derivation computes the view models of one event. Intermediate results
// shared by several slots are computed once.
type derivation struct {
	store *stats.Store
	sel   selection.Selection

	selected    []stats.Record
	hasSelected bool
	sorted      []stats.Record
	hasSorted   bool
	diffs       []derive.DifferenceRow
	hasDiffs    bool
	above       int
	below       int
	hasShares   bool

	warnings []error
}

func (d *derivation) selectedRecords() []stats.Record {
	if !d.hasSelected {
		d.selected = d.store.FilterByYear(d.sel.Key)
		d.hasSelected = true
	}
	return d.selected
}

func (d *derivation) sortedRecords() []stats.Record {
	if !d.hasSorted {
		d.sorted = derive.SortByPopulation(d.selectedRecords())
		d.hasSorted = true
		if err := derive.CheckRankable(len(d.sorted)); err != nil {
			d.warnings = append(d.warnings, err)
		}
	}
	return d.sorted
}

func (d *derivation) differences() []derive.DifferenceRow {
	if !d.hasDiffs {
		d.diffs = derive.ComputeDifferences(d.store.Records(), d.sel.Key)
		d.hasDiffs = true
	}
	return d.diffs
}

func (d *derivation) shares() (int, int) {
	if !d.hasShares {
		diffs := d.differences()
		d.above, d.below = derive.ComputeGrowthShares(diffs, derive.DistinctStates(diffs))
		d.hasShares = true
	}
	return d.above, d.below
}

func (d *derivation) value(slot Slot) interface{} {
	switch slot {
	case SlotTitle:
		return derive.Title(d.sel.Key)
	case SlotGains:
		return derive.MakeGainsText(d.differences(), d.sel.Key)
	case SlotLosses:
		return derive.MakeLossesText(d.differences(), d.sel.Key)
	case SlotAbove:
		above, _ := d.shares()
		return derive.Donut(above, "Above", derive.Above)
	case SlotBelow:
		_, below := d.shares()
		return derive.Donut(below, "Below", derive.Below)
	case SlotChoropleth:
		return derive.Choropleth(d.selectedRecords(), d.sel.Theme)
	case SlotHeatmap:
		v := d.sel.Heatmap
		return derive.Heatmap(d.store.YearRecords(), d.sel.Theme, v.Width, v.Height)
	case SlotLine:
		v := d.sel.Line
		return derive.LineSeries(d.store.YearlyTotals(), v.Width, v.Height, v.Resolution())
	case SlotTop5:
		return derive.RankTop5(d.sortedRecords())
	case SlotBottom5:
		return derive.RankBottom5(d.sortedRecords())
	}
	panic(fmt.Sprintf("dashboard: no derivation for slot %q", slot))
}
