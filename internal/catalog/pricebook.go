package catalog

// Default returns the built-in FitMunch price book. Prices are rough AUD
// supermarket estimates, not live data; the pricefeed importer can overlay
// fresher numbers via SetPrice.
//
// Order matters: compound keys that would otherwise be shadowed by a shorter
// generic key ("coconut milk" vs "milk", "fish oil" vs "fish") come first.
func Default() *Catalog {
	c := New()

	// Supplements
	c.Add("protein powder", Entry{Price: 35.00, Unit: "1kg", Per: "1", Aisle: "Supplements"})
	c.Add("whey", Entry{Price: 34.00, Unit: "900g", Per: "1", Aisle: "Supplements"})
	c.Add("creatine", Entry{Price: 25.00, Unit: "500g", Per: "1", Aisle: "Supplements"})
	c.Add("fish oil", Entry{Price: 15.00, Unit: "200 capsules", Per: "1", Aisle: "Supplements"})
	c.Add("multivitamin", Entry{Price: 15.00, Unit: "60 tablets", Per: "1", Aisle: "Supplements"})
	c.Add("protein bar", Entry{Price: 3.50, Unit: "each", Per: "1", Aisle: "Supplements"})

	// Pantry items that shadow fresh produce or dairy keys
	c.Add("peanut butter", Entry{Price: 5.00, Unit: "375g", Per: "1", Aisle: "Pantry"})
	c.Add("almond butter", Entry{Price: 8.50, Unit: "250g", Per: "1", Aisle: "Pantry"})
	c.Add("tomato paste", Entry{Price: 1.50, Unit: "140g", Per: "1", Aisle: "Pantry"})
	c.Add("passata", Entry{Price: 2.20, Unit: "700g", Per: "1", Aisle: "Pantry"})
	c.Add("coconut milk", Entry{Price: 2.00, Unit: "400ml can", Per: "1", Aisle: "Pantry"})
	c.Add("almond milk", Entry{Price: 2.80, Unit: "1L", Per: "1", Aisle: "Pantry"})
	c.Add("oat milk", Entry{Price: 2.90, Unit: "1L", Per: "1", Aisle: "Pantry"})
	c.Add("soy sauce", Entry{Price: 2.80, Unit: "250ml", Per: "1", Aisle: "Pantry"})
	c.Add("olive oil", Entry{Price: 9.00, Unit: "750ml", Per: "1", Aisle: "Pantry"})
	c.Add("coconut oil", Entry{Price: 8.00, Unit: "300ml", Per: "1", Aisle: "Pantry"})
	c.Add("brown rice", Entry{Price: 4.20, Unit: "1kg", Per: "1", Aisle: "Pantry"})
	c.Add("tuna", Entry{Price: 1.80, Unit: "95g can", Per: "1", Aisle: "Pantry"})
	c.Add("stock", Entry{Price: 2.50, Unit: "1L", Per: "1", Aisle: "Pantry"})
	c.Add("chickpea", Entry{Price: 1.30, Unit: "400g can", Per: "1", Aisle: "Pantry"})
	c.Add("lentil", Entry{Price: 1.60, Unit: "400g can", Per: "1", Aisle: "Pantry"})
	c.Add("black beans", Entry{Price: 1.30, Unit: "400g can", Per: "1", Aisle: "Pantry"})
	c.Add("kidney beans", Entry{Price: 1.30, Unit: "400g can", Per: "1", Aisle: "Pantry"})
	c.Add("baked beans", Entry{Price: 1.80, Unit: "420g can", Per: "1", Aisle: "Pantry"})

	// Meat & Seafood
	c.Add("chicken", Entry{Price: 3.25, Unit: "500g", Per: "1", Aisle: "Meat & Seafood"})
	c.Add("beef", Entry{Price: 9.00, Unit: "500g", Per: "1", Aisle: "Meat & Seafood"})
	c.Add("mince", Entry{Price: 7.50, Unit: "500g", Per: "1", Aisle: "Meat & Seafood"})
	c.Add("lamb", Entry{Price: 12.00, Unit: "500g", Per: "1", Aisle: "Meat & Seafood"})
	c.Add("pork", Entry{Price: 8.00, Unit: "500g", Per: "1", Aisle: "Meat & Seafood"})
	c.Add("bacon", Entry{Price: 6.50, Unit: "250g", Per: "1", Aisle: "Meat & Seafood"})
	c.Add("ham", Entry{Price: 5.00, Unit: "200g", Per: "1", Aisle: "Meat & Seafood"})
	c.Add("turkey", Entry{Price: 8.50, Unit: "500g", Per: "1", Aisle: "Meat & Seafood"})
	c.Add("sausage", Entry{Price: 5.50, Unit: "500g", Per: "1", Aisle: "Meat & Seafood"})
	c.Add("salmon", Entry{Price: 12.50, Unit: "2 fillets", Per: "1", Aisle: "Meat & Seafood"})
	c.Add("prawn", Entry{Price: 14.00, Unit: "500g", Per: "1", Aisle: "Meat & Seafood"})
	c.Add("fish", Entry{Price: 9.50, Unit: "2 fillets", Per: "1", Aisle: "Meat & Seafood"})

	// Produce
	c.Add("sweet potato", Entry{Price: 3.50, Unit: "1kg", Per: "1", Aisle: "Produce"})
	c.Add("spring onion", Entry{Price: 2.80, Unit: "bunch", Per: "1", Aisle: "Produce"})
	c.Add("tomato", Entry{Price: 4.50, Unit: "1kg", Per: "1", Aisle: "Produce"})
	c.Add("onion", Entry{Price: 2.00, Unit: "1kg", Per: "1", Aisle: "Produce"})
	c.Add("garlic", Entry{Price: 1.20, Unit: "bulb", Per: "1", Aisle: "Produce"})
	c.Add("potato", Entry{Price: 4.00, Unit: "2kg", Per: "1", Aisle: "Produce"})
	c.Add("broccoli", Entry{Price: 3.50, Unit: "each", Per: "1", Aisle: "Produce"})
	c.Add("spinach", Entry{Price: 3.00, Unit: "280g bag", Per: "1", Aisle: "Produce"})
	c.Add("lettuce", Entry{Price: 2.50, Unit: "each", Per: "1", Aisle: "Produce"})
	c.Add("kale", Entry{Price: 3.50, Unit: "bunch", Per: "1", Aisle: "Produce"})
	c.Add("carrot", Entry{Price: 2.00, Unit: "1kg", Per: "1", Aisle: "Produce"})
	c.Add("capsicum", Entry{Price: 2.80, Unit: "each", Per: "1", Aisle: "Produce"})
	c.Add("cucumber", Entry{Price: 2.20, Unit: "each", Per: "1", Aisle: "Produce"})
	c.Add("zucchini", Entry{Price: 3.20, Unit: "1kg", Per: "1", Aisle: "Produce"})
	c.Add("mushroom", Entry{Price: 4.50, Unit: "500g", Per: "1", Aisle: "Produce"})
	c.Add("avocado", Entry{Price: 2.50, Unit: "each", Per: "1", Aisle: "Produce"})
	c.Add("banana", Entry{Price: 3.50, Unit: "1kg", Per: "1", Aisle: "Produce"})
	c.Add("apple", Entry{Price: 4.50, Unit: "1kg", Per: "1", Aisle: "Produce"})
	c.Add("berries", Entry{Price: 4.80, Unit: "punnet", Per: "1", Aisle: "Produce"})
	c.Add("lemon", Entry{Price: 1.00, Unit: "each", Per: "1", Aisle: "Produce"})
	c.Add("lime", Entry{Price: 0.80, Unit: "each", Per: "1", Aisle: "Produce"})
	c.Add("ginger", Entry{Price: 2.00, Unit: "100g", Per: "1", Aisle: "Produce"})
	c.Add("coriander", Entry{Price: 2.50, Unit: "bunch", Per: "1", Aisle: "Produce"})
	c.Add("parsley", Entry{Price: 2.50, Unit: "bunch", Per: "1", Aisle: "Produce"})
	c.Add("pumpkin", Entry{Price: 3.00, Unit: "1kg", Per: "1", Aisle: "Produce"})
	c.Add("corn", Entry{Price: 1.50, Unit: "each", Per: "1", Aisle: "Produce"})
	c.Add("beans", Entry{Price: 4.00, Unit: "500g", Per: "1", Aisle: "Produce"})

	// Dairy & Eggs
	c.Add("egg", Entry{Price: 5.50, Unit: "dozen", Per: "1", Aisle: "Dairy & Eggs"})
	c.Add("milk", Entry{Price: 3.10, Unit: "2L", Per: "1", Aisle: "Dairy & Eggs"})
	c.Add("yoghurt", Entry{Price: 5.00, Unit: "1kg tub", Per: "1", Aisle: "Dairy & Eggs"})
	c.Add("yogurt", Entry{Price: 5.00, Unit: "1kg tub", Per: "1", Aisle: "Dairy & Eggs"})
	c.Add("cottage cheese", Entry{Price: 5.00, Unit: "500g", Per: "1", Aisle: "Dairy & Eggs"})
	c.Add("feta", Entry{Price: 5.50, Unit: "200g", Per: "1", Aisle: "Dairy & Eggs"})
	c.Add("cheese", Entry{Price: 7.00, Unit: "500g block", Per: "1", Aisle: "Dairy & Eggs"})
	c.Add("butter", Entry{Price: 6.00, Unit: "500g", Per: "1", Aisle: "Dairy & Eggs"})
	c.Add("cream", Entry{Price: 3.00, Unit: "300ml", Per: "1", Aisle: "Dairy & Eggs"})

	// Bakery
	c.Add("bread", Entry{Price: 3.80, Unit: "loaf", Per: "1", Aisle: "Bakery"})
	c.Add("wrap", Entry{Price: 4.00, Unit: "8 pack", Per: "1", Aisle: "Bakery"})
	c.Add("roll", Entry{Price: 3.50, Unit: "6 pack", Per: "1", Aisle: "Bakery"})
	c.Add("bagel", Entry{Price: 4.50, Unit: "5 pack", Per: "1", Aisle: "Bakery"})
	c.Add("muffin", Entry{Price: 4.50, Unit: "6 pack", Per: "1", Aisle: "Bakery"})

	// Pantry
	c.Add("rice", Entry{Price: 3.50, Unit: "1kg", Per: "1", Aisle: "Pantry"})
	c.Add("pasta", Entry{Price: 2.20, Unit: "500g", Per: "1", Aisle: "Pantry"})
	c.Add("oats", Entry{Price: 4.00, Unit: "1kg", Per: "1", Aisle: "Pantry"})
	c.Add("quinoa", Entry{Price: 6.00, Unit: "500g", Per: "1", Aisle: "Pantry"})
	c.Add("flour", Entry{Price: 2.50, Unit: "1kg", Per: "1", Aisle: "Pantry"})
	c.Add("sugar", Entry{Price: 2.80, Unit: "1kg", Per: "1", Aisle: "Pantry"})
	c.Add("honey", Entry{Price: 7.00, Unit: "500g", Per: "1", Aisle: "Pantry"})
	c.Add("oil", Entry{Price: 6.00, Unit: "750ml", Per: "1", Aisle: "Pantry"})
	c.Add("sauce", Entry{Price: 3.50, Unit: "bottle", Per: "1", Aisle: "Pantry"})
	c.Add("salt", Entry{Price: 1.50, Unit: "500g", Per: "1", Aisle: "Pantry"})
	c.Add("pepper", Entry{Price: 2.50, Unit: "grinder", Per: "1", Aisle: "Pantry"})
	c.Add("paprika", Entry{Price: 3.00, Unit: "jar", Per: "1", Aisle: "Pantry"})
	c.Add("cumin", Entry{Price: 3.00, Unit: "jar", Per: "1", Aisle: "Pantry"})
	c.Add("oregano", Entry{Price: 3.00, Unit: "jar", Per: "1", Aisle: "Pantry"})
	c.Add("cinnamon", Entry{Price: 3.00, Unit: "jar", Per: "1", Aisle: "Pantry"})
	c.Add("almond", Entry{Price: 11.00, Unit: "500g", Per: "1", Aisle: "Pantry"})
	c.Add("walnut", Entry{Price: 12.00, Unit: "500g", Per: "1", Aisle: "Pantry"})
	c.Add("chia", Entry{Price: 6.50, Unit: "500g", Per: "1", Aisle: "Pantry"})
	c.Add("chocolate", Entry{Price: 5.00, Unit: "block", Per: "1", Aisle: "Pantry"})
	c.Add("coffee", Entry{Price: 12.00, Unit: "500g", Per: "1", Aisle: "Pantry"})

	// Frozen
	c.Add("ice cream", Entry{Price: 6.00, Unit: "2L", Per: "1", Aisle: "Frozen"})
	c.Add("peas", Entry{Price: 2.80, Unit: "500g", Per: "1", Aisle: "Frozen"})
	c.Add("frozen", Entry{Price: 4.50, Unit: "bag", Per: "1", Aisle: "Frozen"})

	return c
}
