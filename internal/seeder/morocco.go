package seeder

// Fixed pools of Moroccan sample data. Everything generated by the seeder
// is drawn from these tables so the output stays regionally plausible.

var moroccanFirstNames = []string{
	"Ahmed", "Mohammed", "Fatima", "Aicha", "Hassan", "Youssef", "Sanae", "Karim",
	"Laila", "Omar", "Nadia", "Rachid", "Samira", "Khalid", "Souad", "Mehdi",
	"Salma", "Amine", "Nour", "Reda", "Imane", "Bilal", "Houda", "Anass",
	"Sara", "Hamza", "Zineb", "Yassine", "Meriem", "Adil", "Nabila", "Tarik",
	"Hafsa", "Walid", "Khadija", "Said", "Amina", "Jamal", "Latifa", "Nabil",
}

var moroccanLastNames = []string{
	"Alaoui", "Benali", "Bennani", "Berrada", "Chraibi", "El Fassi", "El Idrissi",
	"El Malki", "El Ouazzani", "Fassi", "Filali", "Hajji", "Hamdaoui", "Idrissi",
	"Kettani", "Lahlou", "Lamrani", "Mansouri", "Mekouar", "Ouazzani", "Rahali",
	"Saadi", "Tazi", "Touimi", "Zahiri", "Zouhair", "Amrani", "Bouazza", "Cherkaoui",
	"Dahbi", "El Amrani", "El Bakkali", "El Haddadi", "El Harrak", "El Kettani",
	"El Yousfi", "Fadili",
}

// Region is one of the twelve administrative regions of Morocco with its
// centroid coordinates and main cities.
type Region struct {
	Name   string
	Lat    float64
	Lng    float64
	Cities []string
}

var moroccanRegions = []Region{
	{Name: "Casablanca-Settat", Lat: 33.5731, Lng: -7.5898, Cities: []string{"Casablanca", "Settat", "Mohammedia", "El Jadida"}},
	{Name: "Rabat-Salé-Kénitra", Lat: 34.0209, Lng: -6.8416, Cities: []string{"Rabat", "Salé", "Kénitra", "Témara"}},
	{Name: "Fès-Meknès", Lat: 34.0331, Lng: -5.0003, Cities: []string{"Fès", "Meknès", "Sefrou", "Ifrane"}},
	{Name: "Marrakech-Safi", Lat: 31.6295, Lng: -7.9811, Cities: []string{"Marrakech", "Safi", "Essaouira", "El Kelâa"}},
	{Name: "Tanger-Tétouan-Al Hoceïma", Lat: 35.7595, Lng: -5.8340, Cities: []string{"Tanger", "Tétouan", "Al Hoceïma", "Larache"}},
	{Name: "Oriental", Lat: 34.6814, Lng: -1.9076, Cities: []string{"Oujda", "Nador", "Berkane", "Taourirt"}},
	{Name: "Béni Mellal-Khénifra", Lat: 32.3373, Lng: -6.3498, Cities: []string{"Béni Mellal", "Khénifra", "Azilal", "Khouribga"}},
	{Name: "Souss-Massa", Lat: 30.4278, Lng: -9.5981, Cities: []string{"Agadir", "Taroudant", "Tiznit", "Oulad Teima"}},
	{Name: "Drâa-Tafilalet", Lat: 31.6295, Lng: -4.7278, Cities: []string{"Errachidia", "Ouarzazate", "Zagora", "Tinghir"}},
	{Name: "Guelmim-Oued Noun", Lat: 28.9869, Lng: -10.0528, Cities: []string{"Guelmim", "Sidi Ifni", "Tan-Tan", "Assa"}},
	{Name: "Laâyoune-Sakia El Hamra", Lat: 27.1536, Lng: -13.2033, Cities: []string{"Laâyoune", "Boujdour", "Tarfaya", "Smara"}},
	{Name: "Dakhla-Oued Ed-Dahab", Lat: 23.6849, Lng: -15.9582, Cities: []string{"Dakhla", "Aousserd", "Bir Anzarane"}},
}

// Category describes a commodity sold by cooperatives. The slice below is
// priority-ordered: during inference the first category whose keyword
// matches a word of the cooperative name wins.
//
// A zero PriceMin/PriceMax means the generic price range applies and the
// unit is drawn at random from genericUnits.
type Category struct {
	Name      string
	Keywords  []string // Arabic, English, French commodity names
	Products  []string // localized product name pool
	PriceMin  float64
	PriceMax  float64
	Unit      string
	ImageBase int // picsum seed block for this category
}

var productCategories = []Category{
	{
		Name:     "Argan",
		Keywords: []string{"زيت الأركان", "Argan Oil", "Huile d'Argan"},
		Products: []string{
			"زيت الأركان العضوي الممتاز", "Premium Organic Argan Oil",
			"زيت الأركان للبشرة", "Cosmetic Argan Oil",
			"حبات الأركان الخام", "Raw Argan Nuts",
		},
		PriceMin: 150, PriceMax: 500, Unit: "liter", ImageBase: 100,
	},
	{
		Name:     "Olive",
		Keywords: []string{"زيت الزيتون", "Olive Oil", "Huile d'Olive"},
		Products: []string{
			"زيت الزيتون البكر الممتاز", "Extra Virgin Olive Oil",
			"زيتون أخضر", "Green Olives",
			"زيتون أسود", "Black Olives",
		},
		PriceMin: 150, PriceMax: 500, Unit: "liter", ImageBase: 200,
	},
	{
		Name:     "Honey",
		Keywords: []string{"عسل", "Honey", "Miel"},
		Products: []string{
			"عسل الأركان", "Argan Honey",
			"عسل الزهور البرية", "Wildflower Honey",
			"عسل الجبل", "Mountain Honey",
		},
		PriceMin: 80, PriceMax: 300, Unit: "kg", ImageBase: 300,
	},
	{
		Name:     "Dates",
		Keywords: []string{"تمر", "Dates", "Dattes"},
		Products: []string{
			"تمر المجهول", "Medjool Dates",
			"تمر العجوة", "Ajwa Dates",
			"معجون التمر", "Date Paste",
		},
		PriceMin: 40, PriceMax: 120, Unit: "kg", ImageBase: 400,
	},
	{
		Name:     "Saffron",
		Keywords: []string{"زعفران", "Saffron", "Safran"},
		Products: []string{
			"زعفران خيوط ممتاز", "Premium Saffron Threads",
			"زعفران مطحون", "Ground Saffron",
		},
		PriceMin: 800, PriceMax: 2000, Unit: "100g", ImageBase: 500,
	},
	{
		Name:     "Almonds",
		Keywords: []string{"لوز", "Almonds", "Amandes"},
		Products: []string{
			"لوز عضوي", "Organic Almonds",
			"لوز محمص", "Roasted Almonds",
		},
		PriceMin: 60, PriceMax: 150, Unit: "kg", ImageBase: 600,
	},
	{
		Name:     "Spices",
		Keywords: []string{"بهارات", "Spices", "Épices"},
		Products: []string{
			"رأس الحانوت", "Ras el Hanout",
			"كمون", "Cumin Seeds",
			"كزبرة", "Coriander Seeds",
		},
		PriceMin: 30, PriceMax: 150, Unit: "100g", ImageBase: 700,
	},
	{Name: "Couscous", Keywords: []string{"كسكس", "Couscous"}, ImageBase: 800},
	{Name: "Tea", Keywords: []string{"شاي", "Tea", "Thé"}, ImageBase: 900},
	{Name: "Ceramics", Keywords: []string{"فخار", "Ceramics", "Céramique"}, ImageBase: 1000},
	{Name: "Wool", Keywords: []string{"صوف", "Wool", "Laine"}, ImageBase: 1100},
	{Name: "Leather", Keywords: []string{"جلد", "Leather", "Cuir"}, ImageBase: 1200},
}

// Price range and units applied when a category has no dedicated pricing.
const (
	genericPriceMin = 50
	genericPriceMax = 300
)

var genericUnits = []string{"kg", "piece", "set", "100g"}

var streetTypes = []string{"Avenue", "Rue", "Boulevard", "Route", "Place", "Quartier"}

var streetNames = []string{
	"Mohammed V", "Hassan II", "Al Massira", "Zerktouni", "Moulay Ismail",
	"Ibn Battuta", "Al Qods", "Annakhil", "Atlas", "des FAR",
	"Allal Ben Abdellah", "Oued Eddahab", "Bir Anzarane", "La Corniche",
	"Abdelmoumen", "Al Wahda",
}
