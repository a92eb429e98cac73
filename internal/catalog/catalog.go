// Package catalog serves the storefront's mock listings: the featured deals
// on the landing page, the browse deals, and the per-store item lists. Data
// lives in an embedded YAML fixture; there is no live inventory behind it.
package catalog

import (
	_ "embed"
	"fmt"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/girishsunnykumar006-arch/bitesaver/internal/domain"
)

//go:embed catalog.yaml
var fixture []byte

// Catalog names used as the namespace half of cart keys. Deal ids restart
// from 1 in each deal list, so the namespace is what keeps a featured deal
// and a browse deal with the same id from merging in a cart.
const (
	SourceFeatured = "featured"
	SourceBrowse   = "browse"
	SourceStore    = "store"
)

// Deal is one discounted surprise bag in a deal list. Distance and rating
// are only populated for browse deals.
type Deal struct {
	ID            int     `yaml:"id" json:"id"`
	Store         string  `yaml:"store" json:"store"`
	OriginalPrice int64   `yaml:"original_price" json:"original_price"`
	Price         int64   `yaml:"price" json:"price"`
	Discount      int     `yaml:"discount" json:"discount"`
	Distance      float64 `yaml:"distance,omitempty" json:"distance,omitempty"`
	Rating        float64 `yaml:"rating,omitempty" json:"rating,omitempty"`
	Image         string  `yaml:"image" json:"image"`
}

// FoodItem is one listing on a store's item page.
type FoodItem struct {
	ID            int    `yaml:"id" json:"id"`
	Name          string `yaml:"name" json:"name"`
	Price         int64  `yaml:"price" json:"price"`
	OriginalPrice int64  `yaml:"original_price" json:"original_price"`
	Discount      int    `yaml:"discount" json:"discount"`
	Image         string `yaml:"image" json:"image"`
}

// StoreProfile is one vendor in the store directory. Stores without listed
// items still appear in the directory.
type StoreProfile struct {
	ID         int        `yaml:"id" json:"id"`
	Name       string     `yaml:"name" json:"name"`
	Category   string     `yaml:"category" json:"category"`
	PickupTime string     `yaml:"pickup_time" json:"pickup_time"`
	Items      []FoodItem `yaml:"items,omitempty" json:"items,omitempty"`
}

type fixtureData struct {
	Featured []Deal         `yaml:"featured"`
	Browse   []Deal         `yaml:"browse"`
	Stores   []StoreProfile `yaml:"stores"`
}

// Catalog indexes the fixture for key lookups.
type Catalog struct {
	data fixtureData

	featuredByID  map[int]Deal
	browseByID    map[int]Deal
	storesByID    map[int]StoreProfile
	itemsByID     map[int]FoodItem
	itemStoreName map[int]string
}

// Load parses the embedded fixture and builds the lookup indexes.
func Load() (*Catalog, error) {
	var data fixtureData
	if err := yaml.Unmarshal(fixture, &data); err != nil {
		return nil, fmt.Errorf("failed to parse catalog fixture: %w", err)
	}

	c := &Catalog{
		data:          data,
		featuredByID:  make(map[int]Deal, len(data.Featured)),
		browseByID:    make(map[int]Deal, len(data.Browse)),
		storesByID:    make(map[int]StoreProfile, len(data.Stores)),
		itemsByID:     make(map[int]FoodItem),
		itemStoreName: make(map[int]string),
	}
	for _, d := range data.Featured {
		c.featuredByID[d.ID] = d
	}
	for _, d := range data.Browse {
		c.browseByID[d.ID] = d
	}
	for _, s := range data.Stores {
		c.storesByID[s.ID] = s
		for _, it := range s.Items {
			if _, dup := c.itemsByID[it.ID]; dup {
				return nil, fmt.Errorf("duplicate store item id %d in catalog fixture", it.ID)
			}
			c.itemsByID[it.ID] = it
			c.itemStoreName[it.ID] = s.Name
		}
	}
	return c, nil
}

func (c *Catalog) Featured() []Deal {
	return c.data.Featured
}

func (c *Catalog) BrowseDeals() []Deal {
	return c.data.Browse
}

func (c *Catalog) Stores() []StoreProfile {
	return c.data.Stores
}

// StoreListing returns one store's profile with its items. Stores that exist
// in the directory but list nothing yield ErrUnknownStore.
func (c *Catalog) StoreListing(storeID int) (StoreProfile, error) {
	s, ok := c.storesByID[storeID]
	if !ok || len(s.Items) == 0 {
		return StoreProfile{}, fmt.Errorf("%w: %d", domain.ErrUnknownStore, storeID)
	}
	return s, nil
}

// Entry resolves a cart key to the entry a cart add needs. Store items carry
// a "Store - Item" label, matching how the item pages present them.
func (c *Catalog) Entry(key domain.ItemKey) (domain.CartEntry, error) {
	switch key.Catalog {
	case SourceFeatured, SourceBrowse:
		byID := c.featuredByID
		if key.Catalog == SourceBrowse {
			byID = c.browseByID
		}
		d, ok := byID[key.ID]
		if !ok {
			return domain.CartEntry{}, fmt.Errorf("%w: %s#%d", domain.ErrUnknownItem, key.Catalog, key.ID)
		}
		return domain.CartEntry{
			Key:           key,
			Store:         d.Store,
			Discount:      d.Discount,
			Price:         decimal.NewFromInt(d.Price),
			OriginalPrice: decimal.NewFromInt(d.OriginalPrice),
			Image:         d.Image,
		}, nil
	case SourceStore:
		it, ok := c.itemsByID[key.ID]
		if !ok {
			return domain.CartEntry{}, fmt.Errorf("%w: %s#%d", domain.ErrUnknownItem, key.Catalog, key.ID)
		}
		return domain.CartEntry{
			Key:           key,
			Store:         fmt.Sprintf("%s - %s", c.itemStoreName[key.ID], it.Name),
			Discount:      it.Discount,
			Price:         decimal.NewFromInt(it.Price),
			OriginalPrice: decimal.NewFromInt(it.OriginalPrice),
			Image:         it.Image,
		}, nil
	default:
		return domain.CartEntry{}, fmt.Errorf("%w: unknown catalog %q", domain.ErrUnknownItem, key.Catalog)
	}
}
