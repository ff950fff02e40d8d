package app

import "sort"

type Kind int

const (
	KindPNG Kind = iota
	KindICO
)

func (k Kind) String() string {
	switch k {
	case KindPNG:
		return "png"
	case KindICO:
		return "ico"
	default:
		return "unknown"
	}
}

// Output is one file the generator writes. PNG outputs carry exactly one
// size; ICO outputs carry one size per frame, in frame order.
type Output struct {
	Name  string
	Kind  Kind
	Sizes []int
	Note  string
}

// DefaultPlan is the fixed set of files a desktop bundle needs.
func DefaultPlan() []Output {
	return []Output{
		{Name: "32x32.png", Kind: KindPNG, Sizes: []int{32}},
		{Name: "128x128.png", Kind: KindPNG, Sizes: []int{128}},
		{Name: "128x128@2x.png", Kind: KindPNG, Sizes: []int{256}},
		{Name: "icon.ico", Kind: KindICO, Sizes: []int{16, 32, 48, 256}},
		{
			Name:  "icon.icns.png",
			Kind:  KindPNG,
			Sizes: []int{512},
			Note:  "icon.icns written as a PNG placeholder; build the real icns with iconutil on macOS",
		},
	}
}

// PreviewSizes returns every distinct size the plan renders, ascending.
func PreviewSizes(plan []Output) []int {
	seen := make(map[int]bool)
	var sizes []int
	for _, out := range plan {
		for _, s := range out.Sizes {
			if !seen[s] {
				seen[s] = true
				sizes = append(sizes, s)
			}
		}
	}
	sort.Ints(sizes)
	return sizes
}
