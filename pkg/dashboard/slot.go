package dashboard

import (
	"errors"
	"fmt"
)

// Slot names an output consumed by one rendering widget.
type Slot string

const (
	SlotTitle      Slot = "population_md"
	SlotGains      Slot = "gains_md"
	SlotLosses     Slot = "losses_md"
	SlotAbove      Slot = "above_view"
	SlotBelow      Slot = "below_view"
	SlotChoropleth Slot = "choropleth_view"
	SlotHeatmap    Slot = "heatmap_view"
	SlotLine       Slot = "line_view"
	SlotTop5       Slot = "top5"
	SlotBottom5    Slot = "bottom5"
)

// Slots lists every slot in publish order.
func Slots() []Slot {
	return []Slot{
		SlotTitle, SlotLine, SlotGains, SlotLosses, SlotAbove, SlotBelow,
		SlotChoropleth, SlotHeatmap, SlotTop5, SlotBottom5,
	}
}

var (
	ErrUnknownField = errors.New("unknown selection field")
	ErrInvalidValue = errors.New("invalid selection value")
)

// Field names a user-controlled input.
type Field string

const (
	FieldKey         Field = "selectedComponentOrYear"
	FieldTheme       Field = "selectedColorTheme"
	FieldLineSize    Field = "line_size"
	FieldHeatmapSize Field = "heatmap_size"
)

// dependencies maps each input to the slots derived from it.
var dependencies = map[Field][]Slot{
	FieldKey: {
		SlotTitle, SlotGains, SlotLosses, SlotAbove, SlotBelow,
		SlotChoropleth, SlotTop5, SlotBottom5,
	},
	FieldTheme:       {SlotChoropleth, SlotHeatmap},
	FieldLineSize:    {SlotLine},
	FieldHeatmapSize: {SlotHeatmap},
}

// Affected returns the slots to recompute when field changes.
func Affected(field Field) ([]Slot, error) {
	slots, ok := dependencies[field]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownField, field)
	}
	return append([]Slot(nil), slots...), nil
}
