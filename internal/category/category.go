package category

// Subcategory is one leaf of the catalog taxonomy.
type Subcategory struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Category groups products for browsing.
type Category struct {
	ID            string        `json:"id"`
	Name          string        `json:"name"`
	Subcategories []Subcategory `json:"subcategories"`
}

// Catalog is the boutique taxonomy served by the categories endpoint. The
// set is fixed; products reference these ids in their category fields.
func Catalog() []Category {
	return []Category{
		{
			ID:   "bijoux",
			Name: "Bijoux",
			Subcategories: []Subcategory{
				{ID: "colliers", Name: "Colliers"},
				{ID: "bracelets", Name: "Bracelets"},
				{ID: "bagues", Name: "Bagues"},
			},
		},
		{
			ID:   "tech",
			Name: "Tech",
			Subcategories: []Subcategory{
				{ID: "ecouteurs", Name: "Écouteurs Sans Fil"},
				{ID: "casques", Name: "Casques Bluetooth"},
				{ID: "ventilateurs", Name: "Ventilateurs Miniatures"},
			},
		},
	}
}
