package product

// sampleProducts is the default boutique catalog inserted on first start.
var sampleProducts = []Product{
	{
		Name:        "Collier Élégant Doré",
		Price:       25000,
		Category:    "bijoux",
		Subcategory: "colliers",
		Image:       "/images/collier-dore.jpg",
		Description: "Magnifique collier doré pour toutes occasions",
		Rating:      4.8,
		Reviews:     23,
	},
	{
		Name:        "Bagues Dorées Set de 3",
		Price:       15000,
		Category:    "bijoux",
		Subcategory: "bagues",
		Image:       "/images/bagues-set.jpg",
		Description: "Ensemble de 3 bagues dorées élégantes",
		Rating:      4.5,
		Reviews:     18,
	},
	{
		Name:        "Bracelet Argent Délicat",
		Price:       18000,
		Category:    "bijoux",
		Subcategory: "bracelets",
		Image:       "/images/bracelet-argent.jpg",
		Description: "Bracelet en argent avec finition délicate",
		Rating:      4.7,
		Reviews:     31,
	},
	{
		Name:        "AirPods Pro Sans Fil",
		Price:       85000,
		Category:    "tech",
		Subcategory: "ecouteurs",
		Image:       "/images/airpods-pro.jpg",
		Description: "Écouteurs sans fil de haute qualité avec réduction de bruit",
		Rating:      4.9,
		Reviews:     156,
	},
	{
		Name:        "Casque Bluetooth Premium",
		Price:       75000,
		Category:    "tech",
		Subcategory: "casques",
		Image:       "/images/casque-premium.jpg",
		Description: "Casque audio bluetooth avec son haute fidélité",
		Rating:      4.6,
		Reviews:     89,
	},
	{
		Name:        "Écouteurs Colorés Set",
		Price:       35000,
		Category:    "tech",
		Subcategory: "ecouteurs",
		Image:       "/images/ecouteurs-colores.jpg",
		Description: "Collection d'écouteurs sans fil colorés",
		Rating:      4.3,
		Reviews:     67,
	},
	{
		Name:        "Ventilateur Miniature USB",
		Price:       12000,
		Category:    "tech",
		Subcategory: "ventilateurs",
		Image:       "/images/ventilateur-usb.jpg",
		Description: "Ventilateur portable miniature avec câble USB",
		Rating:      4.1,
		Reviews:     42,
	},
}
