// Package achievements carries the client-side presentation catalog for
// server-defined achievements. The server only sends a type, a title, and
// an unlocked flag; icons and descriptions are looked up here by type.
package achievements

import "github.com/ecotrack/ecotrack-cli/internal/models"

// PreviewSize is how many achievements the profile preview shows.
const PreviewSize = 3

var icons = map[string]string{
	"first_checkin":           "🌱",
	"streak_3":                "🔥",
	"streak_7":                "⚡",
	"streak_30":               "👑",
	"habits_5":                "✅",
	"score_80":                "🏆",
	"carbon_reducer":          "🌍",
	"water_saver":             "💧",
	"energy_efficient":        "⚡",
	"waste_warrior":           "🗑️",
	"plant_based":             "🥬",
	"recycler":                "♻️",
	"composter":               "🌱",
	"bike_rider":              "🚴",
	"public_transport":        "🚌",
	"carpooler":               "👥",
	"solar_user":              "☀️",
	"local_eater":             "🍎",
	"seasonal_shopper":        "🍂",
	"plastic_free":            "🚫",
	"zero_waste":              "♻️",
	"tree_planter":            "🌳",
	"beach_cleaner":           "🏖️",
	"community_volunteer":     "🤝",
	"sustainable_shopper":     "🛒",
	"repair_master":           "🔧",
	"upcycler":                "♻️",
	"thrift_shopper":          "👕",
	"digital_nomad":           "💻",
	"paperless":               "📱",
	"smart_thermostat":        "🏠",
	"rainwater_collector":     "🌧️",
	"herb_gardener":           "🌿",
	"sustainable_fashion":     "👗",
	"minimalist":              "📦",
	"conscious_consumer":      "🧠",
	"carbon_neutral":          "🌱",
	"sustainability_educator": "📚",
	"green_tech":              "🔬",
	"biodiversity_protector":  "🦋",
	"ocean_guardian":          "🐋",
	"climate_activist":        "🌍",
	"sustainable_traveler":    "✈️",
	"green_builder":           "🏗️",
	"renewable_energy":        "⚡",
	"sustainable_farmer":      "👨‍🌾",
	"wildlife_protector":      "🦁",
	"clean_air":               "💨",
	"water_conservation":      "💧",
	"soil_health":             "🌱",
	"pollution_fighter":       "🛡️",
	"sustainable_design":      "🎨",
	"green_innovation":        "💡",
	"circular_economy":        "🔄",
	"sustainable_future":      "🔮",
}

var descriptions = map[string]string{
	"first_checkin":           "Complete your first daily check-in",
	"streak_3":                "Maintain a 3-day streak",
	"streak_7":                "Maintain a 7-day streak",
	"streak_30":               "Maintain a 30-day streak",
	"habits_5":                "Complete 5 habits in one day",
	"score_80":                "Reach 80+ sustainability score",
	"carbon_reducer":          "Reduce your carbon footprint by 20%",
	"water_saver":             "Save 1000 liters of water",
	"energy_efficient":        "Use 30% less energy",
	"waste_warrior":           "Reduce waste by 50%",
	"plant_based":             "Go plant-based for a week",
	"recycler":                "Recycle 100 items",
	"composter":               "Start composting at home",
	"bike_rider":              "Bike 50 miles this month",
	"public_transport":        "Use public transport 20 times",
	"carpooler":               "Carpool 10 times",
	"solar_user":              "Switch to solar energy",
	"local_eater":             "Eat local food for a month",
	"seasonal_shopper":        "Buy seasonal produce",
	"plastic_free":            "Go plastic-free for a week",
	"zero_waste":              "Achieve zero waste for a month",
	"tree_planter":            "Plant 10 trees",
	"beach_cleaner":           "Clean up a beach",
	"community_volunteer":     "Volunteer 20 hours",
	"sustainable_shopper":     "Buy only sustainable products",
	"repair_master":           "Repair 5 broken items",
	"upcycler":                "Upcycle 10 items",
	"thrift_shopper":          "Buy 20 second-hand items",
	"digital_nomad":           "Work remotely for a month",
	"paperless":               "Go paperless for 3 months",
	"smart_thermostat":        "Install smart home devices",
	"rainwater_collector":     "Collect rainwater",
	"herb_gardener":           "Grow your own herbs",
	"sustainable_fashion":     "Buy only sustainable fashion",
	"minimalist":              "Declutter 100 items",
	"conscious_consumer":      "Research all purchases",
	"carbon_neutral":          "Achieve carbon neutrality",
	"sustainability_educator": "Teach 10 people about sustainability",
	"green_tech":              "Use green technology",
	"biodiversity_protector":  "Protect local biodiversity",
	"ocean_guardian":          "Protect marine life",
	"climate_activist":        "Participate in climate action",
	"sustainable_traveler":    "Travel sustainably",
	"green_builder":           "Build with sustainable materials",
	"renewable_energy":        "Use 100% renewable energy",
	"sustainable_farmer":      "Support sustainable farming",
	"wildlife_protector":      "Protect wildlife habitats",
	"clean_air":               "Improve air quality",
	"water_conservation":      "Conserve water resources",
	"soil_health":             "Improve soil health",
	"pollution_fighter":       "Reduce pollution",
	"sustainable_design":      "Design sustainable solutions",
	"green_innovation":        "Create green innovations",
	"circular_economy":        "Support circular economy",
	"sustainable_future":      "Build a sustainable future",
}

// Icon returns the emoji for an achievement type. Unknown types get the
// trophy so a newer server can ship types this client has never seen.
func Icon(achievementType string) string {
	if icon, ok := icons[achievementType]; ok {
		return icon
	}
	return "🏆"
}

// Description returns the unlock criteria text for an achievement type.
func Description(achievementType string) string {
	if desc, ok := descriptions[achievementType]; ok {
		return desc
	}
	return "Achievement unlocked!"
}

// Preview selects the achievements shown on the dashboard profile card:
// the first PreviewSize unlocked ones, unless fewer than PreviewSize are
// unlocked, in which case the first PreviewSize overall.
func Preview(all []models.Achievement) []models.Achievement {
	unlocked := make([]models.Achievement, 0, PreviewSize)
	for _, a := range all {
		if a.Unlocked {
			unlocked = append(unlocked, a)
		}
	}
	if len(unlocked) >= PreviewSize {
		return unlocked[:PreviewSize]
	}
	if len(all) > PreviewSize {
		return all[:PreviewSize]
	}
	return all
}
