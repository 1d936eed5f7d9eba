package guide

import (
	"fmt"
	"strings"
)

// welcomeMessage opens every new conversation and doubles as the
// help/unknown reply.
const welcomeMessage = "Hello! 👋 I'm your **High-Tech Virtual Tour Guide** for Sri Lanka! 🇱🇰\n\n" +
	"I'm powered by advanced AI and real-time APIs to provide you with:\n\n" +
	"🗺️ **Smart Trip Planning** - \"Plan a 3-hour trip to Kandy\"\n" +
	"🌤️ **Real-time Weather** - \"Weather in Colombo\"\n" +
	"🍽️ **Restaurant Discovery** - \"Restaurants in Galle\"\n" +
	"🏨 **Hotel Recommendations** - \"Hotels in Anuradhapura\"\n" +
	"📍 **Place Information** - \"Tell me about Sigiriya\"\n" +
	"🎯 **Attraction Lists** - \"Attractions in Negombo\"\n\n" +
	"What would you like to explore in Sri Lanka today?"

const helpResponse = "I'd be happy to help! 😊 I'm your personal Sri Lankan travel assistant, and I can do quite a lot for you:\n\n" +
	"🗺️ **Plan amazing trips** - from quick 2-hour tours to multi-day adventures\n" +
	"🌤️ **Check real-time weather** - so you know what to wear and where to go\n" +
	"🍽️ **Find incredible restaurants** - from street food to fine dining\n" +
	"🏨 **Recommend perfect hotels** - for every budget and style\n" +
	"📍 **Share fascinating info** - about Sri Lanka's amazing places and history\n" +
	"🎯 **Suggest must-see attractions** - tailored to your interests\n\n" +
	"Just ask me anything about Sri Lanka - I love talking about this incredible country!"

const generalResponse = "I'm your personal Virtual Tour Guide for Sri Lanka! 🇱🇰 I'm absolutely passionate about helping people discover the incredible beauty and culture of this amazing island.\n\n" +
	"Here's what I can help you with:\n\n" +
	"🗺️ **Trip Planning** - \"Plan a 3-hour trip to Kandy\" or \"Plan a 2-day adventure in Galle\"\n" +
	"🌤️ **Weather Updates** - \"What's the weather like in Colombo?\"\n" +
	"🍽️ **Food Discovery** - \"Best restaurants in Negombo\" or \"Where to eat in Anuradhapura\"\n" +
	"🏨 **Accommodation** - \"Hotels in Sigiriya\" or \"Where to stay in Trincomalee\"\n" +
	"📍 **Place Information** - \"Tell me about the Temple of the Tooth\" or \"What's special about Ella?\"\n" +
	"🎯 **Attractions** - \"Top things to do in Bentota\" or \"Must-see places in Jaffna\"\n\n" +
	"I love talking about Sri Lanka's rich history, stunning landscapes, delicious food, and warm people. What would you like to explore? I'm here to make your Sri Lankan adventure absolutely amazing! 😊"

// simpleResponses answers bare conversational tokens that reach the
// general builder without matching an earlier rule.
var simpleResponses = map[string]string{
	"hello":     "Hello there! 👋 I'm your friendly Virtual Tour Guide for Sri Lanka! I'm here to help you discover the most amazing places, plan perfect trips, find the best restaurants, and make your Sri Lankan adventure absolutely unforgettable. What would you like to explore today?",
	"hi":        "Hi! 🌴 Welcome to Sri Lanka! I'm so excited to help you plan an incredible journey through this beautiful island. Whether you want to explore ancient temples, relax on pristine beaches, or discover hidden gems, I'm here to make it happen! What's on your mind?",
	"help":      helpResponse,
	"thanks":    "You're so welcome! 😊 I absolutely love helping people discover the magic of Sri Lanka. Feel free to ask me anything else - I'm here to make your journey amazing!",
	"thank you": "You're very welcome! 🎉 It makes me so happy to help you explore Sri Lanka. Have an absolutely wonderful time, and don't hesitate to ask if you need anything else!",
	"yes":       "Great! I'm excited to help you with that! What would you like to know or plan?",
	"no":        "No problem at all! Is there something else I can help you with instead?",
	"ok":        "Perfect! What would you like to explore or plan?",
	"okay":      "Awesome! I'm here and ready to help you discover Sri Lanka! What's on your mind?",
}

// greetingResponses keys on the greeting kind the classifier extracted.
var greetingResponses = map[string]string{
	"hello": "Hello! 👋 How can I help with your travel plans today?\n\n" +
		"Try: **Tell me about Sigiriya** or **Plan a 2-hour tour in Kandy**.",
	"hi": "Hi! 🌴 Welcome to Sri Lanka! I'm so excited to help you plan an incredible journey through this beautiful island. Whether you want to explore ancient temples, relax on pristine beaches, or discover hidden gems, I'm here to make it happen! What's on your mind?",
	"good morning": "Good morning! ☀️ Ready to explore? I can share quick facts or build a mini tour.\n\n" +
		"Try: **Tell me about Galle** or **Plan a 3-hour tour in Kandy**.",
	"good afternoon": "Good afternoon! 🌤️ Looking for places to visit or a short itinerary?\n\n" +
		"Try: **Facts about Ella** or **Plan a 2-hour tour in Colombo**.",
	"good evening": "Good evening! 🌙 I can suggest highlights and plan a quick tour.\n\n" +
		"Try: **Tell me about Sigiriya** or **Plan a 2-hour tour in Galle**.",
	"thanks":      "You're so welcome! 😊 I absolutely love helping people discover the magic of Sri Lanka. Feel free to ask me anything else - I'm here to make your journey amazing!",
	"thank you":   "You're very welcome! 🎉 It makes me so happy to help you explore Sri Lanka. Have an absolutely wonderful time, and don't hesitate to ask if you need anything else!",
	"bye":         "Goodbye! 🌅 Have a wonderful time exploring Sri Lanka, and come back whenever you need travel tips!",
	"how are you": "I'm doing great, thanks for asking! 😊 I'm always happy when I get to talk about Sri Lanka. What can I help you discover today?",
	"no":          "No problem at all! Is there something else I can help you with instead?",
}

const genericGreeting = "Hello! I'm glad you're here. I can share quick facts about places or plan a mini tour.\n\n" +
	"Try: **Tell me about Sigiriya** or **Plan a 2-hour tour in Kandy**."

const transportationResponse = "**🚌 Transportation to %s**\n\nHere are the best ways to reach %s:\n\n" +
	"**🚗 By Road:**\n• **Bus:** Regular buses from Colombo and major cities\n• **Car:** Rent a car for flexibility and comfort\n• **Taxi:** Private taxi services available\n\n" +
	"**🚂 By Train:**\n• Scenic train routes available from Colombo\n• Book in advance for popular routes\n\n" +
	"**✈️ By Air:**\n• Domestic flights available to major cities\n• International airport connections\n\n" +
	"**💡 Tips:**\n• Book transportation in advance during peak season\n• Consider traffic conditions for road travel\n• Train journeys offer beautiful scenery\n\n" +
	"Need specific details about any transportation option? Just ask! 😊"

const historyResponse = "**📜 History of %s**\n\n%s has a fascinating historical background:\n\n" +
	"**🏛️ Ancient Heritage:**\n• Rich cultural traditions dating back centuries\n• Important archaeological sites and monuments\n• UNESCO World Heritage sites\n\n" +
	"**👑 Royal Connections:**\n• Former royal capitals and kingdoms\n• Ancient palaces and temples\n• Historical artifacts and treasures\n\n" +
	"**🌍 Colonial Influence:**\n• Portuguese, Dutch, and British colonial periods\n• Architectural influences from different eras\n• Cultural blending and heritage\n\n" +
	"**🎯 Must-Visit Historical Sites:**\n• Ancient temples and monuments\n• Museums with rich collections\n• Heritage buildings and structures\n\n" +
	"Want to know more about specific historical periods or sites? I'd love to share more details! 🏛️"

const bestTimeResponse = "**📅 Best Time to Visit %s**\n\n" +
	"**🌞 Peak Season (December - March):**\n• **Weather:** Dry and pleasant\n• **Temperature:** 25-30°C\n• **Best for:** Sightseeing, beaches, outdoor activities\n• **Note:** Higher prices and crowds\n\n" +
	"**🌧️ Monsoon Season (May - September):**\n• **Weather:** Rainy but lush green landscapes\n• **Temperature:** 22-28°C\n• **Best for:** Photography, fewer crowds, lower prices\n• **Note:** Some outdoor activities may be limited\n\n" +
	"**🍂 Shoulder Season (October - November, April):**\n• **Weather:** Mixed conditions\n• **Temperature:** 24-29°C\n• **Best for:** Balanced experience\n• **Note:** Good value for money\n\n" +
	"**💡 Pro Tips:**\n• Book accommodations in advance for peak season\n• Pack accordingly for weather conditions\n• Consider local festivals and events\n\n" +
	"Planning your trip timing perfectly? I can help you plan the ideal itinerary! 📅"

const costResponse = "**💰 Cost of Visiting %s**\n\n" +
	"**🏨 Accommodation:**\n• **Budget:** LKR 2,000-5,000 per night\n• **Mid-range:** LKR 5,000-15,000 per night\n• **Luxury:** LKR 15,000+ per night\n\n" +
	"**🍽️ Food & Dining:**\n• **Street Food:** LKR 200-500 per meal\n• **Local Restaurants:** LKR 500-1,500 per meal\n• **Fine Dining:** LKR 2,000+ per meal\n\n" +
	"**🚌 Transportation:**\n• **Bus:** LKR 100-500 per trip\n• **Train:** LKR 200-800 per journey\n• **Taxi:** LKR 1,000-3,000 per day\n\n" +
	"**🎯 Attractions:**\n• **Temples:** LKR 500-2,000 entry\n• **National Parks:** LKR 2,000-5,000 entry\n• **Guided Tours:** LKR 3,000-10,000 per day\n\n" +
	"**📊 Daily Budget Estimates:**\n• **Backpacker:** LKR 3,000-5,000\n• **Mid-range:** LKR 8,000-15,000\n• **Luxury:** LKR 20,000+\n\n" +
	"Need help planning your budget? I can create a detailed cost breakdown! 💰"

const distanceResponse = "**📏 Distance Information**\n\nHere are the distances from major cities in Sri Lanka:\n\n" +
	"**🚗 From Colombo:**\n• **To Kandy:** ~115 km (2-3 hours)\n• **To Galle:** ~120 km (2-3 hours)\n• **To Anuradhapura:** ~205 km (4-5 hours)\n• **To Sigiriya:** ~170 km (3-4 hours)\n• **To Trincomalee:** ~260 km (5-6 hours)\n• **To Nuwara Eliya:** ~180 km (4-5 hours)\n• **To Jaffna:** ~400 km (8-10 hours)\n\n" +
	"**🚂 By Train:**\n• **Colombo to Kandy:** ~3 hours\n• **Colombo to Galle:** ~3 hours\n• **Colombo to Anuradhapura:** ~5 hours\n\n" +
	"**✈️ By Air:**\n• **Colombo to Jaffna:** ~1 hour\n• **Colombo to Trincomalee:** ~45 minutes\n\n" +
	"**💡 Travel Tips:**\n• Consider traffic conditions for road travel\n• Book train tickets in advance\n• Domestic flights available for longer distances\n\n" +
	"Need specific directions or route planning? I can help you plan the perfect journey! 🗺️"

const recommendationsResponse = "**⭐ My Top Recommendations for Sri Lanka**\n\n" +
	"**🏛️ Must-Visit Cultural Sites:**\n• **Temple of the Tooth Relic** (Kandy)\n• **Sigiriya Rock Fortress**\n• **Anuradhapura Ancient City**\n• **Polonnaruwa Archaeological Park**\n• **Galle Fort** (UNESCO World Heritage)\n\n" +
	"**🏖️ Beautiful Beaches:**\n• **Mirissa Beach** (whale watching)\n• **Unawatuna Beach** (swimming)\n• **Bentota Beach** (water sports)\n• **Trincomalee** (diving)\n• **Negombo Beach** (close to airport)\n\n" +
	"**🌄 Natural Wonders:**\n• **Ella** (hiking and views)\n• **Nuwara Eliya** (tea plantations)\n• **Yala National Park** (wildlife safari)\n• **Horton Plains** (hiking)\n• **Adam's Peak** (pilgrimage)\n\n" +
	"**🍽️ Food Experiences:**\n• **Rice and Curry** (traditional)\n• **Hoppers** (local breakfast)\n• **Kottu Roti** (street food)\n• **Fresh Seafood** (coastal areas)\n• **Tea Tasting** (tea plantations)\n\n" +
	"Based on your interests, I can create personalized recommendations! What type of experience are you looking for? ⭐"

const comparisonResponse = "**⚖️ Comparison Guide**\n\nI'd love to help you compare different destinations, accommodations, or experiences in Sri Lanka!\n\n" +
	"**🏙️ Popular City Comparisons:**\n• **Colombo vs Kandy** (modern vs cultural)\n• **Galle vs Negombo** (historic vs beach)\n• **Ella vs Nuwara Eliya** (adventure vs tea country)\n\n" +
	"**🏨 Accommodation Comparisons:**\n• **Hotels vs Guesthouses** (luxury vs budget)\n• **Beach vs City Hotels** (location preferences)\n\n" +
	"**🚌 Transportation Comparisons:**\n• **Bus vs Train vs Taxi** (cost vs comfort vs speed)\n• **Car Rental vs Guided Tours** (flexibility vs expertise)\n\n" +
	"**🎯 What would you like to compare?**\n• Specific destinations or cities\n• Types of accommodations\n• Transportation options\n• Activities or experiences\n\n" +
	"Tell me what you'd like to compare, and I'll give you a detailed analysis! ⚖️"

const activitiesResponse = "**🎯 %s in %s**\n\n" +
	"**🏔️ Hiking & Nature:**\n• **Ella Rock** (challenging hike with stunning views)\n• **Little Adam's Peak** (easier hike, great for beginners)\n• **Horton Plains** (plateau hiking and World's End)\n• **Sinharaja Forest** (rainforest trekking)\n\n" +
	"**📸 Photography Spots:**\n• **Sigiriya Rock** (iconic fortress)\n• **Tea Plantations** (Nuwara Eliya and Ella)\n• **Beach Sunsets** (coastal beauty)\n• **Wildlife Safaris** (animal photography)\n\n" +
	"**🌙 Nightlife:**\n• **Colombo** (bars, clubs, and restaurants)\n• **Negombo** (beachside nightlife)\n• **Unawatuna** (beach parties)\n\n" +
	"**🛍️ Shopping:**\n• **Colombo** (modern malls and markets)\n• **Kandy** (cultural souvenirs)\n• **Galle** (antiques and crafts)\n• **Local Markets** (authentic experiences)\n\n" +
	"**💡 Activity Tips:**\n• Book in advance for popular activities\n• Check weather conditions\n• Respect local customs\n\n" +
	"Want more details about any specific activity? I can provide detailed information! 🎯"

// listItem is one entry of the curated beach / temple lists.
type listItem struct {
	Name        string
	Description string
	Features    string
}

var beachesByPlace = map[string][]listItem{
	"colombo": {
		{"Mount Lavinia Beach", "Popular beach with restaurants and water sports", "Swimming, dining, beach bars"},
		{"Negombo Beach", "Close to airport, great for first/last day", "Easy access, beach hotels"},
		{"Dehiwala Beach", "Local beach with calm waters", "Family-friendly, less crowded"},
		{"Wellawatta Beach", "Urban beach with good facilities", "Beach volleyball, food stalls"},
	},
	"galle": {
		{"Unawatuna Beach", "Famous crescent-shaped beach with coral reef", "Snorkeling, diving, beach bars"},
		{"Mirissa Beach", "Whale watching capital with beautiful sunsets", "Whale watching, surfing, beach parties"},
		{"Hikkaduwa Beach", "Popular beach with coral reef and marine life", "Snorkeling, diving, beach resorts"},
		{"Bentota Beach", "Long sandy beach with water sports", "Jet skiing, windsurfing, beach hotels"},
		{"Weligama Beach", "Famous for stilt fishing and surfing", "Surfing, fishing culture, photography"},
	},
	"trincomalee": {
		{"Nilaveli Beach", "Pristine beach with crystal clear waters", "Swimming, snorkeling, diving"},
		{"Uppuveli Beach", "Beautiful beach with calm waters", "Swimming, beach resorts, fishing"},
		{"Marble Beach", "Unique beach with marble-like rocks", "Photography, swimming, unique landscape"},
		{"Pigeon Island", "Marine national park with coral reef", "Diving, snorkeling, marine life"},
	},
	"jaffna": {
		{"Casuarina Beach", "Northern beach with unique landscape", "Swimming, beach walks, local culture"},
		{"Point Pedro Beach", "Northernmost beach of Sri Lanka", "Photography, fishing, historical significance"},
		{"Nagadeepa Beach", "Near Nagadeepa temple, peaceful setting", "Religious significance, peaceful atmosphere"},
	},
}

var defaultBeaches = []listItem{
	{"Mirissa Beach", "Whale watching and surfing paradise", "Whale watching, surfing, beach parties"},
	{"Unawatuna Beach", "Crescent-shaped beach with coral reef", "Snorkeling, diving, beach bars"},
	{"Bentota Beach", "Long sandy beach with water sports", "Jet skiing, windsurfing, beach hotels"},
	{"Hikkaduwa Beach", "Popular beach with marine life", "Snorkeling, diving, beach resorts"},
	{"Negombo Beach", "Close to Colombo airport", "Easy access, beach hotels, fishing"},
	{"Trincomalee Beaches", "Pristine beaches in the east", "Swimming, diving, marine national parks"},
	{"Arugam Bay", "Surfing capital of Sri Lanka", "Surfing, beach parties, wildlife"},
	{"Kalpitiya Beach", "Kite surfing and dolphin watching", "Kite surfing, dolphin watching, fishing"},
}

var templesByPlace = map[string][]listItem{
	"jaffna": {
		{"Nallur Kandaswamy Temple", "Most important Hindu temple in Jaffna", "Daily pujas, annual festival, architecture"},
		{"Nagadeepa Purana Vihara", "Ancient Buddhist temple on Nagadeepa island", "Pilgrimage site, boat access, historical"},
	},
	"kandy": {
		{"Temple of the Tooth Relic", "Most sacred Buddhist temple in Sri Lanka", "Sacred relic, daily ceremonies, UNESCO site"},
		{"Lankatilaka Vihara", "Ancient Buddhist temple with unique architecture", "Ancient architecture, religious significance"},
		{"Gadaladeniya Temple", "Stone temple with South Indian influence", "Stone architecture, historical importance"},
		{"Embekka Devalaya", "Wooden temple famous for intricate carvings", "Wooden architecture, detailed carvings"},
	},
	"colombo": {
		{"Gangaramaya Temple", "Famous Buddhist temple with museum", "Museum, library, cultural center"},
		{"Kelaniya Raja Maha Vihara", "Ancient temple with beautiful murals", "Ancient murals, religious ceremonies"},
		{"Sri Ponnambalawaneswaram Temple", "Hindu temple with Dravidian architecture", "Hindu architecture, religious festivals"},
	},
	"anuradhapura": {
		{"Sri Maha Bodhi", "Sacred Bodhi tree, oldest in the world", "Sacred tree, pilgrimage site, ancient history"},
		{"Ruwanwelisaya", "Great stupa built by King Dutugemunu", "Ancient stupa, architectural marvel"},
		{"Abhayagiri Vihara", "Ancient monastery complex", "Archaeological site, ancient monastery"},
		{"Jetavanaramaya", "Massive ancient stupa", "World's tallest stupa, architectural wonder"},
	},
	"polonnaruwa": {
		{"Gal Vihara", "Rock temple with four Buddha statues", "Rock carvings, ancient art, UNESCO site"},
		{"Rankot Vihara", "Large ancient stupa", "Ancient stupa, archaeological significance"},
	},
	"dambulla": {
		{"Dambulla Cave Temple", "UNESCO World Heritage site with cave temples", "Cave temples, ancient paintings, UNESCO site"},
		{"Golden Temple", "Modern temple complex with golden Buddha", "Modern architecture, golden Buddha statue"},
	},
}

var defaultTemples = []listItem{
	{"Temple of the Tooth Relic (Kandy)", "Most sacred Buddhist temple", "Sacred relic, UNESCO World Heritage"},
	{"Dambulla Cave Temple", "Ancient cave temple complex", "Cave temples, ancient paintings, UNESCO site"},
	{"Gangaramaya Temple (Colombo)", "Famous Buddhist temple with museum", "Museum, cultural center, architecture"},
	{"Sri Maha Bodhi (Anuradhapura)", "Sacred Bodhi tree", "Sacred tree, pilgrimage site, ancient history"},
	{"Nallur Kandaswamy Temple (Jaffna)", "Important Hindu temple", "Hindu architecture, annual festivals"},
	{"Gal Vihara (Polonnaruwa)", "Rock temple with Buddha statues", "Rock carvings, ancient art, UNESCO site"},
}

const beachTips = "**💡 Beach Tips:**\n" +
	"• Best time: December to March (dry season)\n" +
	"• Bring sunscreen and water\n" +
	"• Check weather conditions\n" +
	"• Respect marine life and coral reefs\n\n" +
	"Need more details about any specific beach? Just ask! 🏖️"

const templeTips = "**💡 Temple Visit Tips:**\n" +
	"• Dress modestly (cover shoulders and knees)\n" +
	"• Remove shoes before entering\n" +
	"• Respect religious ceremonies\n" +
	"• Some temples have entry fees\n" +
	"• Photography may be restricted\n\n" +
	"Need more details about any specific temple? Just ask! 🛕"

func renderList(header string, items []listItem, tips string) string {
	var b strings.Builder
	b.WriteString(header)
	b.WriteString("\n\n")
	for i, item := range items {
		fmt.Fprintf(&b, "**%d. %s** ⭐\n", i+1, item.Name)
		fmt.Fprintf(&b, "   📍 %s\n", item.Description)
		fmt.Fprintf(&b, "   🎯 Features: %s\n\n", item.Features)
	}
	b.WriteString(tips)
	return b.String()
}

// transportationTips answers the "transportation tips" follow-up after an
// itinerary, tiered by how the traveler typically moves around that city.
func transportationTips(city string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "**Transportation Tips for %s:**\n\n", city)
	switch strings.ToLower(city) {
	case "colombo", "kandy", "galle":
		b.WriteString("• **Tuk-tuks**: Negotiate fares upfront; ~LKR 200-500 for short trips\n")
		b.WriteString("• **Buses**: Cheap and frequent; ask locals for routes\n")
		b.WriteString("• **Taxis**: Use apps like PickMe or Uber for convenience\n")
		b.WriteString("• **Walking**: City centers are walkable; carry water\n")
	case "anuradhapura", "polonnaruwa", "sigiriya":
		b.WriteString("• **Private driver**: Best for cultural triangle sites\n")
		b.WriteString("• **Bus**: Budget option; longer travel times\n")
		b.WriteString("• **Bicycle**: Rent locally for temple circuits\n")
		b.WriteString("• **Walking**: Many sites within walking distance\n")
	default:
		b.WriteString("• **Local transport**: Ask hotel/hostel for best options\n")
		b.WriteString("• **Tuk-tuks**: Always negotiate fares before starting\n")
		b.WriteString("• **Walking**: Explore city centers on foot\n")
		b.WriteString("• **Private hire**: Consider for day trips\n")
	}
	return b.String()
}

// diningRecommendations answers the "local dining recommendations"
// follow-up after an itinerary.
func diningRecommendations(city string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "**Local Dining Recommendations for %s:**\n\n", city)
	switch strings.ToLower(city) {
	case "colombo":
		b.WriteString("• **Street food**: Galle Face Green evening vendors\n")
		b.WriteString("• **Local cuisine**: Pettah Market area restaurants\n")
		b.WriteString("• **Seafood**: Mount Lavinia Beach restaurants\n")
		b.WriteString("• **Traditional**: Try hoppers, kottu, and curry\n")
	case "kandy":
		b.WriteString("• **Local spots**: Around Temple of the Tooth area\n")
		b.WriteString("• **Traditional**: Kandyan rice and curry\n")
		b.WriteString("• **Street food**: Lake area evening stalls\n")
		b.WriteString("• **Cultural**: Try local sweets and tea\n")
	case "galle":
		b.WriteString("• **Fort area**: Colonial-style cafes and restaurants\n")
		b.WriteString("• **Seafood**: Fresh catch near the harbor\n")
		b.WriteString("• **Local**: Try Galle's unique coastal cuisine\n")
		b.WriteString("• **Cafes**: Dutch Hospital area for modern dining\n")
	default:
		b.WriteString("• **Local restaurants**: Ask hotel staff for recommendations\n")
		b.WriteString("• **Street food**: Try local specialties safely\n")
		b.WriteString("• **Traditional**: Look for rice and curry houses\n")
		b.WriteString("• **Fresh**: Opt for busy local eateries\n")
	}
	return b.String()
}

var defaultSuggestions = []string{
	"Plan a 3-hour trip to Kandy",
	"Weather in Colombo",
	"Tell me about Sigiriya",
	"Restaurants in Galle",
}

// suggestionsFor picks contextual suggestion chips by response type and the
// place the reply was about.
func suggestionsFor(responseType, place string) []string {
	if place == "" {
		place = "Colombo"
	}
	switch responseType {
	case "trip_plan", "itinerary":
		return []string{
			fmt.Sprintf("Weather in %s", place),
			fmt.Sprintf("Restaurants in %s", place),
			fmt.Sprintf("Hotels in %s", place),
			fmt.Sprintf("Plan a 2-day trip to %s", place),
		}
	case "weather":
		return []string{
			fmt.Sprintf("Plan a trip to %s", place),
			fmt.Sprintf("Restaurants in %s", place),
			fmt.Sprintf("Attractions in %s", place),
			"Weather in Kandy",
		}
	case "restaurants":
		return []string{
			fmt.Sprintf("Hotels in %s", place),
			fmt.Sprintf("Attractions in %s", place),
			fmt.Sprintf("Weather in %s", place),
			fmt.Sprintf("Plan a trip to %s", place),
		}
	case "hotels":
		return []string{
			fmt.Sprintf("Restaurants in %s", place),
			fmt.Sprintf("Attractions in %s", place),
			fmt.Sprintf("Weather in %s", place),
			fmt.Sprintf("Plan a trip to %s", place),
		}
	case "place_info", "facts":
		return []string{
			fmt.Sprintf("Weather in %s", place),
			fmt.Sprintf("Plan a trip to %s", place),
			fmt.Sprintf("Attractions in %s", place),
			"Tell me about Kandy",
		}
	case "attractions":
		return []string{
			fmt.Sprintf("Plan a trip to %s", place),
			fmt.Sprintf("Restaurants in %s", place),
			fmt.Sprintf("Hotels in %s", place),
			fmt.Sprintf("Weather in %s", place),
		}
	default:
		return defaultSuggestions
	}
}
