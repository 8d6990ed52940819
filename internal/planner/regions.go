package planner

import (
	"slices"
	"strings"
)

// OtherRegion is the region of any country missing from a RegionTable. It has
// no neighbours.
const OtherRegion = "Other"

// RegionGroup names a region and the countries in it.
type RegionGroup struct {
	Name      string
	Countries []string
}

// RegionTable maps countries to regions and regions to their neighbours. It is
// immutable after construction and safe for concurrent use.
type RegionTable struct {
	regions  []string
	country  map[string]string
	adjacent map[string][]string
}

// NewRegionTable builds a table from groups and an adjacency list. A country
// listed in more than one group belongs to the first. Adjacency is taken as
// given; it is not made symmetric.
func NewRegionTable(groups []RegionGroup, adjacency map[string][]string) *RegionTable {
	t := &RegionTable{
		regions:  make([]string, 0, len(groups)),
		country:  make(map[string]string),
		adjacent: make(map[string][]string, len(adjacency)),
	}
	for _, g := range groups {
		t.regions = append(t.regions, g.Name)
		for _, c := range g.Countries {
			key := strings.ToLower(c)
			if _, ok := t.country[key]; !ok {
				t.country[key] = g.Name
			}
		}
	}
	for r, ns := range adjacency {
		t.adjacent[r] = slices.Clone(ns)
	}
	return t
}

// Region returns the region of country, or OtherRegion. Lookup ignores case
// and surrounding whitespace.
func (t *RegionTable) Region(country string) string {
	if r, ok := t.country[strings.ToLower(strings.TrimSpace(country))]; ok {
		return r
	}
	return OtherRegion
}

// Adjacent returns a copy of the regions listed as neighbours of region.
func (t *RegionTable) Adjacent(region string) []string {
	return slices.Clone(t.adjacent[region])
}

// IsAdjacent reports whether to is listed as a neighbour of from.
func (t *RegionTable) IsAdjacent(from, to string) bool {
	return slices.Contains(t.adjacent[from], to)
}

// Regions returns the region names in declaration order.
func (t *RegionTable) Regions() []string {
	return slices.Clone(t.regions)
}

var defaultRegionGroups = []RegionGroup{
	{"East Asia", []string{"Japan", "South Korea", "China", "Taiwan", "Hong Kong", "Macau", "Mongolia"}},
	{"Southeast Asia", []string{"Thailand", "Vietnam", "Malaysia", "Singapore", "Indonesia", "Philippines", "Cambodia", "Laos", "Myanmar", "Brunei"}},
	{"South Asia", []string{"India", "Nepal", "Sri Lanka", "Bangladesh", "Pakistan", "Bhutan", "Maldives"}},
	{"Middle East", []string{"United Arab Emirates", "Turkey", "Israel", "Jordan", "Saudi Arabia", "Qatar", "Oman", "Lebanon", "Iran", "Iraq"}},
	{"Western Europe", []string{"France", "Spain", "Portugal", "United Kingdom", "Ireland", "Belgium", "Netherlands", "Luxembourg", "Monaco"}},
	{"Central Europe", []string{"Germany", "Austria", "Switzerland", "Czech Republic", "Poland", "Hungary", "Slovakia", "Slovenia", "Liechtenstein"}},
	{"Southern Europe", []string{"Italy", "Greece", "Croatia", "Malta", "Cyprus", "Albania", "Montenegro", "Serbia", "Bosnia and Herzegovina"}},
	{"Northern Europe", []string{"Norway", "Sweden", "Finland", "Denmark", "Iceland", "Estonia", "Latvia", "Lithuania"}},
	{"Eastern Europe", []string{"Russia", "Ukraine", "Romania", "Bulgaria", "Belarus", "Moldova"}},
	{"North America", []string{"United States", "Canada", "Mexico"}},
	{"Central America", []string{"Costa Rica", "Panama", "Guatemala", "Belize", "Honduras", "Nicaragua", "El Salvador"}},
	{"Caribbean", []string{"Jamaica", "Cuba", "Dominican Republic", "Puerto Rico", "Bahamas", "Barbados", "Trinidad and Tobago", "Aruba", "Turks and Caicos", "Cayman Islands", "Antigua and Barbuda", "St. Lucia", "St. Barts", "St. Barthélemy", "Anguilla"}},
	{"South America", []string{"Brazil", "Argentina", "Chile", "Peru", "Colombia", "Ecuador", "Bolivia", "Uruguay", "Paraguay", "Venezuela"}},
	{"Oceania", []string{"Australia", "New Zealand", "Fiji", "French Polynesia", "Cook Islands"}},
	{"Africa North", []string{"Morocco", "Egypt", "Tunisia", "Algeria", "Libya"}},
	{"Africa East", []string{"Kenya", "Tanzania", "Ethiopia", "Uganda", "Rwanda"}},
	{"Africa South", []string{"South Africa", "Botswana", "Zimbabwe", "Namibia", "Mozambique"}},
	{"Africa West", []string{"Ghana", "Nigeria", "Senegal", "Ivory Coast", "Cameroon"}},
	{"Pacific Islands", []string{"Seychelles", "Mauritius", "Maldives"}},
}

var defaultAdjacency = map[string][]string{
	"Southeast Asia":  {"East Asia", "South Asia", "Oceania"},
	"East Asia":       {"Southeast Asia", "South Asia"},
	"South Asia":      {"Southeast Asia", "Middle East"},
	"Oceania":         {"Southeast Asia"},
	"Middle East":     {"South Asia", "Africa North", "Eastern Europe"},
	"Africa North":    {"Middle East", "Africa West", "Africa East", "Africa South"},
	"Africa West":     {"Africa North", "Africa East", "Africa South"},
	"Africa East":     {"Africa North", "Africa West", "Africa South", "Middle East"},
	"Africa South":    {"Africa North", "Africa West", "Africa East"},
	"Western Europe":  {"Central Europe", "Southern Europe", "Northern Europe"},
	"Central Europe":  {"Western Europe", "Southern Europe", "Eastern Europe", "Northern Europe"},
	"Southern Europe": {"Western Europe", "Central Europe", "Eastern Europe", "Middle East"},
	"Northern Europe": {"Western Europe", "Central Europe", "Eastern Europe"},
	"Eastern Europe":  {"Central Europe", "Southern Europe", "Northern Europe", "Middle East"},
	"North America":   {"Central America", "Caribbean"},
	"Central America": {"North America", "South America", "Caribbean"},
	"Caribbean":       {"North America", "Central America", "South America"},
	"South America":   {"Central America", "Caribbean"},
}

// DefaultRegionTable returns the built-in world table.
func DefaultRegionTable() *RegionTable {
	return NewRegionTable(defaultRegionGroups, defaultAdjacency)
}
