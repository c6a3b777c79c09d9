package catalog

import "github.com/yzxsolutions/soofi-mandi-sub000/internal/model"

// Menu categories.
const (
	CategoryMandi     = "mandi"
	CategoryStarters  = "starters"
	CategoryBreads    = "breads"
	CategoryDesserts  = "desserts"
	CategoryBeverages = "beverages"
)

var allSpiceLevels = []model.SpiceLevel{model.SpiceMild, model.SpiceMedium, model.SpiceHot}

var mandiAddOns = []model.AddOn{
	{Name: "Extra Rice", Price: 50},
	{Name: "Peri Peri Sauce", Price: 30},
	{Name: "Fresh Salad", Price: 40},
}

// Seed returns the restaurant's menu dataset. Base prices are for the
// Quarter portion; size deltas are folded into the unit price at add time.
func Seed() []model.MenuItem {
	return []model.MenuItem{
		{
			ID:          "chicken-mandi",
			Name:        "Chicken Mandi",
			Description: "Slow-cooked chicken over fragrant mandi rice with signature spices",
			Category:    CategoryMandi,
			BasePrice:   180,
			Sizes: []model.SizeOption{
				{Size: model.SizeQuarter, PriceDelta: 0},
				{Size: model.SizeHalf, PriceDelta: 140},
				{Size: model.SizeFull, PriceDelta: 260},
			},
			SpiceLevels: allSpiceLevels,
			AddOns:      mandiAddOns,
			IsAvailable: true,
			PrepMinutes: 25,
		},
		{
			ID:          "mutton-mandi",
			Name:        "Mutton Mandi",
			Description: "Tender mutton slow-roasted over smoked mandi rice",
			Category:    CategoryMandi,
			BasePrice:   260,
			Sizes: []model.SizeOption{
				{Size: model.SizeQuarter, PriceDelta: 0},
				{Size: model.SizeHalf, PriceDelta: 200},
				{Size: model.SizeFull, PriceDelta: 380},
			},
			SpiceLevels: allSpiceLevels,
			AddOns:      mandiAddOns,
			IsAvailable: true,
			PrepMinutes: 35,
		},
		{
			ID:          "fish-mandi",
			Name:        "Fish Mandi",
			Description: "Spiced kingfish fillet over saffron mandi rice",
			Category:    CategoryMandi,
			BasePrice:   240,
			Sizes: []model.SizeOption{
				{Size: model.SizeQuarter, PriceDelta: 0},
				{Size: model.SizeHalf, PriceDelta: 170},
				{Size: model.SizeFull, PriceDelta: 320},
			},
			SpiceLevels: allSpiceLevels,
			AddOns:      mandiAddOns,
			IsAvailable: true,
			PrepMinutes: 30,
		},
		{
			ID:          "mutton-haneeth",
			Name:        "Mutton Haneeth",
			Description: "Yemeni-style pit-roasted mutton, weekends only",
			Category:    CategoryMandi,
			BasePrice:   320,
			Sizes: []model.SizeOption{
				{Size: model.SizeHalf, PriceDelta: 0},
				{Size: model.SizeFull, PriceDelta: 280},
			},
			SpiceLevels: allSpiceLevels,
			AddOns:      mandiAddOns,
			IsAvailable: false,
			PrepMinutes: 45,
		},
		{
			ID:          "veg-mandi",
			Name:        "Vegetable Mandi",
			Description: "Seasonal vegetables and paneer over mandi rice",
			Category:    CategoryMandi,
			BasePrice:   160,
			Sizes: []model.SizeOption{
				{Size: model.SizeHalf, PriceDelta: 0},
				{Size: model.SizeFull, PriceDelta: 120},
			},
			SpiceLevels:  allSpiceLevels,
			AddOns:       mandiAddOns,
			IsVegetarian: true,
			IsAvailable:  true,
			PrepMinutes:  20,
		},
		{
			ID:          "chicken-65",
			Name:        "Chicken 65",
			Description: "Crisp-fried chicken tossed with curry leaves and chillies",
			Category:    CategoryStarters,
			BasePrice:   190,
			SpiceLevels: []model.SpiceLevel{model.SpiceMedium, model.SpiceHot},
			IsAvailable: true,
			PrepMinutes: 15,
		},
		{
			ID:           "hummus-platter",
			Name:         "Hummus Platter",
			Description:  "Classic hummus with olive oil, served with warm khubz",
			Category:     CategoryStarters,
			BasePrice:    120,
			IsVegetarian: true,
			IsAvailable:  true,
			PrepMinutes:  10,
		},
		{
			ID:           "khubz",
			Name:         "Khubz Basket",
			Description:  "Freshly baked Arabic flatbread, four pieces",
			Category:     CategoryBreads,
			BasePrice:    50,
			IsVegetarian: true,
			IsAvailable:  true,
			PrepMinutes:  8,
		},
		{
			ID:           "kunafa",
			Name:         "Kunafa",
			Description:  "Warm shredded pastry layered with cheese and sugar syrup",
			Category:     CategoryDesserts,
			BasePrice:    140,
			IsVegetarian: true,
			IsAvailable:  true,
			PrepMinutes:  12,
		},
		{
			ID:           "gulab-jamun",
			Name:         "Gulab Jamun",
			Description:  "Soft milk dumplings soaked in rose syrup, two pieces",
			Category:     CategoryDesserts,
			BasePrice:    80,
			IsVegetarian: true,
			IsAvailable:  true,
			PrepMinutes:  5,
		},
		{
			ID:           "mint-lemonade",
			Name:         "Mint Lemonade",
			Description:  "Fresh lime and mint over crushed ice",
			Category:     CategoryBeverages,
			BasePrice:    70,
			IsVegetarian: true,
			IsAvailable:  true,
			PrepMinutes:  5,
		},
		{
			ID:           "saudi-chai",
			Name:         "Saudi Chai",
			Description:  "Cardamom tea brewed the traditional way",
			Category:     CategoryBeverages,
			BasePrice:    40,
			IsVegetarian: true,
			IsAvailable:  true,
			PrepMinutes:  5,
		},
	}
}
