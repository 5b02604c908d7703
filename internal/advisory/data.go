package advisory

import "github.com/farmassist/farmassist/server/pkg/models"

// builtinEntries is the built-in advisory data, keyed by canonical crop
// name. Maize guidance lives under "corn" to match the normalizer's
// vocabulary.
var builtinEntries = map[string]map[string]Entry{

	models.CropTomato: {
		"late blight": {
			Risk:     models.RiskHigh,
			Advisory: "Late blight spreads rapidly in cool, humid weather and can destroy the crop quickly.",
			Pesticide: &models.Pesticide{
				Name:   "Mancozeb 75% WP",
				Dosage: "2–2.5 g per litre of water",
				Safety: "Wear gloves and mask. Avoid spraying during rainfall.",
			},
		},
		"early blight": {
			Risk:     models.RiskMedium,
			Advisory: "Early blight causes leaf spots and weakens the plant. Remove affected leaves and maintain field hygiene.",
			Pesticide: &models.Pesticide{
				Name:   "Chlorothalonil 75% WP",
				Dosage: "2 g per litre of water",
				Safety: "Do not spray during strong winds.",
			},
		},
		"bacterial wilt": {
			Risk:     models.RiskHigh,
			Advisory: "Bacterial wilt causes sudden wilting. Avoid waterlogging and use disease-free seedlings.",
			Pesticide: &models.Pesticide{
				Name:   "Copper Oxychloride",
				Dosage: "3 g per litre of water",
				Safety: "Avoid excessive application.",
			},
		},
		"septoria leaf spot": {
			Risk:     models.RiskHigh,
			Advisory: "Septoria leaf spot spreads rapidly in warm, humid conditions. Remove infected leaves and avoid overhead irrigation.",
			Pesticide: &models.Pesticide{
				Name:   "Chlorothalonil 75% WP",
				Dosage: "2 g per litre of water",
				Safety: "Wear gloves and mask. Avoid spraying during windy conditions.",
			},
		},
	},

	models.CropRice: {
		"blast disease": {
			Risk:     models.RiskHigh,
			Advisory: "Rice blast spreads rapidly in humid conditions. Avoid excess nitrogen fertilizer.",
			Pesticide: &models.Pesticide{
				Name:   "Tricyclazole 75% WP",
				Dosage: "0.6 g per litre of water",
				Safety: "Use protective clothing while spraying.",
			},
		},
		"brown spot": {
			Risk:     models.RiskMedium,
			Advisory: "Brown spot occurs in nutrient-deficient fields. Apply balanced fertilizers.",
			Pesticide: &models.Pesticide{
				Name:   "Mancozeb 75% WP",
				Dosage: "2 g per litre of water",
				Safety: "Do not mix with other chemicals unless advised.",
			},
		},
		"bacterial leaf blight": {
			Risk:     models.RiskHigh,
			Advisory: "Bacterial leaf blight spreads through irrigation water. Maintain proper field drainage.",
			Pesticide: &models.Pesticide{
				Name:   "Copper Hydroxide",
				Dosage: "2.5 g per litre of water",
				Safety: "Avoid spraying near water bodies.",
			},
		},
	},

	models.CropWheat: {
		"wheat rust": {
			Risk:     models.RiskHigh,
			Advisory: "Wheat rust spreads via wind-borne spores. Early spraying is critical.",
			Pesticide: &models.Pesticide{
				Name:   "Propiconazole 25% EC",
				Dosage: "1 ml per litre of water",
				Safety: "Avoid skin contact.",
			},
		},
		"powdery mildew": {
			Risk:     models.RiskMedium,
			Advisory: "Powdery mildew develops in cool and humid conditions. Ensure good air circulation.",
			Pesticide: &models.Pesticide{
				Name:   "Sulfur 80% WP",
				Dosage: "2 g per litre of water",
				Safety: "Do not spray during high temperature.",
			},
		},
		"karnal bunt": {
			Risk:     models.RiskHigh,
			Advisory: "Karnal bunt affects grain quality. Use certified seeds and follow crop rotation.",
			Pesticide: &models.Pesticide{
				Name:   "Carbendazim 50% WP",
				Dosage: "2 g per kg seed (seed treatment)",
				Safety: "Wear gloves during seed treatment.",
			},
		},
	},

	models.CropCorn: {
		"gray leaf spot": {
			Risk:     models.RiskHigh,
			Advisory: "Gray leaf spot is a common fungal disease in maize. Avoid continuous maize cropping.",
			Pesticide: &models.Pesticide{
				Name:   "Propiconazole 25% EC",
				Dosage: "1 ml per litre of water",
				Safety: "Use protective equipment while spraying.",
			},
		},
		"leaf blight": {
			Risk:     models.RiskMedium,
			Advisory: "Leaf blight reduces photosynthesis. Practice crop rotation and residue management.",
			Pesticide: &models.Pesticide{
				Name:   "Mancozeb 75% WP",
				Dosage: "2 g per litre of water",
				Safety: "Avoid spraying during rain.",
			},
		},
		"corn smut": {
			Risk:     models.RiskHigh,
			Advisory: "Corn smut forms galls on plant parts. Remove infected plants immediately.",
			Pesticide: &models.Pesticide{
				Name:   "Carbendazim 50% WP",
				Dosage: "1 g per litre of water",
				Safety: "Do not exceed recommended dosage.",
			},
		},
	},

	models.CropPotato: {
		"late blight": {
			Risk:     models.RiskHigh,
			Advisory: "Potato late blight spreads rapidly in moist conditions. Destroy infected foliage.",
			Pesticide: &models.Pesticide{
				Name:   "Metalaxyl + Mancozeb",
				Dosage: "2 g per litre of water",
				Safety: "Avoid repeated use of same fungicide.",
			},
		},
		"early blight": {
			Risk:     models.RiskMedium,
			Advisory: "Early blight weakens plants. Ensure balanced fertilization.",
			Pesticide: &models.Pesticide{
				Name:   "Chlorothalonil",
				Dosage: "2 g per litre of water",
				Safety: "Wash hands after spraying.",
			},
		},
	},

	models.CropCotton: {
		"bollworm": {
			Risk:     models.RiskHigh,
			Advisory: "Bollworm damages cotton bolls and reduces yield. Regular monitoring is essential.",
			Pesticide: &models.Pesticide{
				Name:   "Spinosad 45% SC",
				Dosage: "0.3 ml per litre of water",
				Safety: "Avoid spraying during flowering stage.",
			},
		},
		"leaf curl virus": {
			Risk:     models.RiskHigh,
			Advisory: "Leaf curl virus spreads through whiteflies. Control vector population.",
			Pesticide: &models.Pesticide{
				Name:   "Imidacloprid 17.8% SL",
				Dosage: "0.3 ml per litre of water",
				Safety: "Avoid spraying during peak sunlight.",
			},
		},
	},

	models.CropSugarcane: {
		"red rot": {
			Risk:     models.RiskHigh,
			Advisory: "Red rot is a destructive disease. Use resistant varieties and destroy infected canes.",
			Pesticide: &models.Pesticide{
				Name:   "Carbendazim 50% WP",
				Dosage: "1 g per litre of water",
				Safety: "Do not spray near water channels.",
			},
		},
		"smut": {
			Risk:     models.RiskHigh,
			Advisory: "Sugarcane smut spreads through infected seed material. Use disease-free setts.",
			Pesticide: &models.Pesticide{
				Name:   "Propiconazole",
				Dosage: "1 ml per litre of water",
				Safety: "Wear protective gear while spraying.",
			},
		},
	},
}
