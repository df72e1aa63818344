package types

import (
	"fmt"
)

const (
	// DefaultStandardCategories is the number of regular categories seeded
	// at genesis.
	DefaultStandardCategories = 10
	// DefaultStandardSupply is the initial supply of each regular category.
	DefaultStandardSupply = 120
	// DefaultRareSupply is the initial supply of the single rare category.
	DefaultRareSupply = 6
)

// CategorySupply tracks one category's mintable units. Remaining only
// shrinks; a category at zero is exhausted for good.
type CategorySupply struct {
	Id            uint64 `json:"id"`
	Name          string `json:"name"`
	InitialSupply uint64 `json:"initial_supply"`
	Remaining     uint64 `json:"remaining"`
}

// Collection is the singleton supply root for the whole catalog.
type Collection struct {
	Authority   string           `json:"authority"`
	Categories  []CategorySupply `json:"categories"`
	TotalMinted uint64           `json:"total_minted"`
}

// Category returns the category with the given id.
func (c Collection) Category(id uint64) (CategorySupply, bool) {
	for _, cat := range c.Categories {
		if cat.Id == id {
			return cat, true
		}
	}
	return CategorySupply{}, false
}

// TotalRemaining sums the remaining units across all categories.
func (c Collection) TotalRemaining() uint64 {
	var total uint64
	for _, cat := range c.Categories {
		total += cat.Remaining
	}
	return total
}

// Item is one minted collectible, keyed by its serial number.
type Item struct {
	Serial     uint64 `json:"serial"`
	CategoryId uint64 `json:"category_id"`
	Owner      string `json:"owner"`
}

// CategoryDenom builds the bank denom for a category's collectibles.
func CategoryDenom(categoryId uint64) string {
	return fmt.Sprintf("%s/%d", DenomPrefix, categoryId)
}

// DefaultCategories returns the seed catalog: ten regular categories plus
// one rare with a six-unit run.
func DefaultCategories() []CategorySupply {
	categories := make([]CategorySupply, 0, DefaultStandardCategories+1)
	for i := 0; i < DefaultStandardCategories; i++ {
		categories = append(categories, CategorySupply{
			Id:            uint64(i),
			Name:          fmt.Sprintf("standard-%d", i),
			InitialSupply: DefaultStandardSupply,
			Remaining:     DefaultStandardSupply,
		})
	}
	categories = append(categories, CategorySupply{
		Id:            DefaultStandardCategories,
		Name:          "rare",
		InitialSupply: DefaultRareSupply,
		Remaining:     DefaultRareSupply,
	})
	return categories
}
