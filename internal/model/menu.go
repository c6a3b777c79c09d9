package model

// Size enumerates the portion sizes a menu item can be ordered in.
type Size string

const (
	SizeQuarter Size = "Quarter"
	SizeHalf    Size = "Half"
	SizeFull    Size = "Full"
)

// SpiceLevel enumerates the supported spice preparations.
type SpiceLevel string

const (
	SpiceMild   SpiceLevel = "mild"
	SpiceMedium SpiceLevel = "medium"
	SpiceHot    SpiceLevel = "hot"
)

// SizeOption describes one orderable portion size and its price delta
// relative to the item's base price.
type SizeOption struct {
	Size       Size    `json:"size"`
	PriceDelta float64 `json:"priceDelta"`
}

// AddOn describes an optional extra that can be attached to a line item.
type AddOn struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// MenuItem represents one dish in the restaurant catalogue.
type MenuItem struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	Description  string       `json:"description"`
	Category     string       `json:"category"`
	BasePrice    float64      `json:"basePrice"`
	Sizes        []SizeOption `json:"sizes,omitempty"`
	SpiceLevels  []SpiceLevel `json:"spiceLevels,omitempty"`
	AddOns       []AddOn      `json:"addOns,omitempty"`
	IsVegetarian bool         `json:"isVegetarian"`
	IsAvailable  bool         `json:"isAvailable"`
	PrepMinutes  int          `json:"prepMinutes"`
}

// SizeOption returns the size option matching the given size, if any.
func (m *MenuItem) SizeOption(size Size) (SizeOption, bool) {
	for _, opt := range m.Sizes {
		if opt.Size == size {
			return opt, true
		}
	}
	return SizeOption{}, false
}

// SupportsSpice reports whether the item can be prepared at the given spice level.
// Items with no declared spice levels accept any of the known levels.
func (m *MenuItem) SupportsSpice(level SpiceLevel) bool {
	if len(m.SpiceLevels) == 0 {
		return level == SpiceMild || level == SpiceMedium || level == SpiceHot
	}
	for _, l := range m.SpiceLevels {
		if l == level {
			return true
		}
	}
	return false
}

// AddOn returns the add-on with the given name, if the item offers it.
func (m *MenuItem) AddOn(name string) (AddOn, bool) {
	for _, a := range m.AddOns {
		if a.Name == name {
			return a, true
		}
	}
	return AddOn{}, false
}
