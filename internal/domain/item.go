package domain

// Item is one lootable item from the server_loots catalog.
// Price is in the game's currency-agnostic value unit; Quality is 0-100.
type Item struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Type    string `json:"type"`
	Price   int    `json:"price"`
	Quality int    `json:"quality"`
}

// Weight returns the sampling weight of the item: 1 / (price + 1).
// Cheaper items roll more often; the weight is always positive.
func (i Item) Weight() float64 {
	return 1.0 / float64(i.Price+1)
}

// FallbackIDBase is the reserved ID range for the starter items below.
// The range sits far above real server_loots IDs so a fallback reward
// written to an inventory slot never collides with a catalog item.
const FallbackIDBase = 900000

// FallbackItems is the starter item list substituted whenever a case's
// eligibility filter yields no candidates. Cases must never present an
// empty item set.
func FallbackItems() []Item {
	return []Item{
		{ID: FallbackIDBase + 1, Name: "Бутылка воды", Type: "drink", Price: 50, Quality: 100},
		{ID: FallbackIDBase + 2, Name: "Консервы", Type: "food", Price: 100, Quality: 100},
		{ID: FallbackIDBase + 3, Name: "Аптечка", Type: "medical", Price: 200, Quality: 100},
		{ID: FallbackIDBase + 4, Name: "Патроны 9мм", Type: "ammo", Price: 150, Quality: 100},
		{ID: FallbackIDBase + 5, Name: "Нож", Type: "weapon", Price: 300, Quality: 100},
		{ID: FallbackIDBase + 6, Name: "Топор", Type: "tool", Price: 500, Quality: 100},
		{ID: FallbackIDBase + 7, Name: "Бинты", Type: "medical", Price: 80, Quality: 100},
		{ID: FallbackIDBase + 8, Name: "Веревка", Type: "material", Price: 120, Quality: 100},
	}
}
