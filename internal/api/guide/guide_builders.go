package guide

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"unicode"

	"golang.org/x/sync/errgroup"

	"github.com/FACorreiaa/go-tour-guide/internal/models"
)

func (s *ServiceImpl) buildFacts(ctx context.Context, _ *models.DialogueState, slots models.Slots, query string) *models.StructuredResponse {
	place := strings.TrimSpace(slots[models.SlotPlace])
	if place == "" {
		place = query
	}

	if entry, ok := s.lookupEntry(place); ok {
		return &models.StructuredResponse{
			Type:        "facts",
			Text:        factsCard(entry),
			Suggestions: suggestionsFor("facts", entry.Name),
			Data:        map[string]any{"place": entry.Name},
		}
	}
	return s.placeInfo(ctx, place)
}

// factsCard renders a curated gazetteer entry and invites a mini tour,
// which arms the confirmation shortcut.
func factsCard(entry *models.PlaceEntry) string {
	var b strings.Builder
	fmt.Fprintf(&b, "**%s**", entry.Name)
	if len(entry.Facts) > 0 {
		b.WriteString("\n- " + strings.Join(entry.Facts, "\n- "))
	} else {
		b.WriteString("\nNo facts.")
	}
	fmt.Fprintf(&b, "\n\n**Ticket:** %s\n", entry.Ticket)

	var meta []string
	if entry.City != "" {
		meta = append(meta, "City: "+entry.City)
	}
	if entry.BestTime != "" {
		meta = append(meta, "Best time: "+entry.BestTime)
	}
	if entry.OpeningHours != "" {
		meta = append(meta, "Hours: "+entry.OpeningHours)
	}
	if entry.Website != "" {
		meta = append(meta, "Website: "+entry.Website)
	}
	if len(entry.Tags) > 0 {
		meta = append(meta, "Tags: "+strings.Join(entry.Tags, ", "))
	}
	if entry.Coords != nil {
		meta = append(meta, fmt.Sprintf("Coords: %g, %g", entry.Coords.Lat, entry.Coords.Lng))
	}
	for _, m := range meta {
		b.WriteString("\n- " + m)
	}
	if len(entry.Highlights) > 0 {
		b.WriteString("\n\n**Highlights:**\n- " + strings.Join(entry.Highlights, "\n- "))
	}
	if entry.SafetyNotes != "" {
		fmt.Fprintf(&b, "\n\n> Safety: %s", entry.SafetyNotes)
	}
	fmt.Fprintf(&b, "\n\nWould you like a 2–3 stop **mini tour** in **%s**? Tell me your time (e.g., *2 hours*).", entry.Name)
	return b.String()
}

// placeInfo answers facts for places outside the curated set: Wikipedia
// first, then the generative fallback, then a bare maps link. The summary
// and geocode lookups are independent, so they run concurrently.
func (s *ServiceImpl) placeInfo(ctx context.Context, place string) *models.StructuredResponse {
	display := titleCase(place)

	var (
		summary *models.WikiSummary
		geo     *models.GeoLocation
	)
	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		res, err := s.wiki.Summary(gCtx, display)
		if err != nil {
			s.collaboratorError(gCtx, "wikipedia", err, slog.String("place", display))
			return nil
		}
		summary = res
		return nil
	})
	g.Go(func() error {
		res, err := s.geocoder.Geocode(gCtx, display)
		if err != nil {
			s.collaboratorError(gCtx, "geocode", err, slog.String("place", display))
			return nil
		}
		geo = res
		return nil
	})
	_ = g.Wait()

	if summary != nil {
		var b strings.Builder
		fmt.Fprintf(&b, "**📍 %s**\n\n%s\n\n", summary.Title, summary.Extract)
		if summary.Description != "" {
			fmt.Fprintf(&b, "**Type:** %s\n", summary.Description)
		}
		if summary.URL != "" {
			fmt.Fprintf(&b, "**Learn More:** [Wikipedia](%s)\n", summary.URL)
		}
		if geo != nil {
			addr := geo.FormattedAddress
			if addr == "" {
				addr = display
			}
			fmt.Fprintf(&b, "\n**📌 Location:** %s\n", addr)
		}
		b.WriteString("\n**🎯 Tourism Highlights:**\n")
		b.WriteString("• Historical significance\n")
		b.WriteString("• Cultural importance\n")
		b.WriteString("• Great for photography\n")
		b.WriteString("• Family-friendly destination\n")
		return &models.StructuredResponse{
			Type:        "place_info",
			Text:        b.String(),
			Suggestions: suggestionsFor("place_info", display),
			Data:        map[string]any{"place": display},
		}
	}

	if info, genErr := s.generative.TourismInfo(ctx, place, display); genErr == nil && info != nil {
		var b strings.Builder
		fmt.Fprintf(&b, "**📍 %s**\n\n%s\n", display, info.Description)
		if len(info.Highlights) > 0 {
			b.WriteString("\n**🎯 Highlights:**\n• " + strings.Join(info.Highlights, "\n• ") + "\n")
		}
		if info.BestTime != "" {
			fmt.Fprintf(&b, "\n**Best time:** %s\n", info.BestTime)
		}
		if info.Tips != "" {
			fmt.Fprintf(&b, "\n**💡 Tips:** %s\n", info.Tips)
		}
		return &models.StructuredResponse{
			Type:        "place_info",
			Text:        b.String(),
			Suggestions: suggestionsFor("place_info", display),
			Data:        map[string]any{"place": display},
		}
	}

	text := fmt.Sprintf("**📍 %s**\n\nI couldn't find a detailed description, but here's the location and map link.\n", display)
	if geo != nil {
		addr := geo.FormattedAddress
		if addr == "" {
			addr = display
		}
		text += fmt.Sprintf("\n**📌 Location:** %s\n**Open in Google Maps:** %s\n", addr, geo.MapsURL)
	}
	return &models.StructuredResponse{
		Type:        "place_info",
		Text:        text,
		Suggestions: suggestionsFor("place_info", display),
		Data:        map[string]any{"place": display},
	}
}

func (s *ServiceImpl) buildItinerary(ctx context.Context, state *models.DialogueState, slots models.Slots, _ string) *models.StructuredResponse {
	res := s.dialogue.Advance(state, slots)
	if !res.Ready {
		return &models.StructuredResponse{
			Type:        "itinerary",
			Text:        res.Prompt,
			Suggestions: res.Suggestions,
		}
	}
	return s.planResponse(ctx, res.City, res.Minutes)
}

// planResponse renders a curated stop-by-stop plan, falling back to a
// generative suggestion list for cities the gazetteer does not cover.
func (s *ServiceImpl) planResponse(ctx context.Context, city string, minutes int) *models.StructuredResponse {
	if plan, ok := s.planner.Plan(city, minutes); ok && len(plan.Stops) > 0 {
		var b strings.Builder
		fmt.Fprintf(&b, "**%s — %d/%d min**\n", plan.City, plan.PlannedMinutes, plan.TotalMinutes)
		for i, stop := range plan.Stops {
			fmt.Fprintf(&b, "%d. %s — ~%d min\n", i+1, stop.Name, stop.Minutes)
		}
		fmt.Fprintf(&b, "\nNeed **transportation tips** or **local dining recommendations** for **%s**?", plan.City)
		return &models.StructuredResponse{
			Type:        "itinerary",
			Text:        b.String(),
			Suggestions: suggestionsFor("itinerary", plan.City),
			Data:        map[string]any{"city": plan.City},
		}
	}
	return s.generativeTripPlan(ctx, city, minutes)
}

func (s *ServiceImpl) generativeTripPlan(ctx context.Context, city string, minutes int) *models.StructuredResponse {
	display := titleCase(city)
	hours := minutes / 60
	if hours < 1 {
		hours = 1
	}

	info, err := s.generative.TourismInfo(ctx, fmt.Sprintf("%d hour trip to %s", hours, city), display)
	if err != nil || info == nil || len(info.Highlights) == 0 {
		if err != nil {
			s.collaboratorError(ctx, "gemini", err, slog.String("city", display))
		}
		return &models.StructuredResponse{
			Type:        "itinerary",
			Text:        "I couldn't plan that. Try **Plan a 3-hour tour in Kandy**.",
			Suggestions: []string{"Plan a 3-hour tour in Kandy", "Help"},
		}
	}

	places := info.Highlights
	if size := s.planner.TripSize(minutes); len(places) > size {
		places = places[:size]
	}

	var b strings.Builder
	switch {
	case hours < 5:
		fmt.Fprintf(&b, "Perfect! I'd love to help you plan a %d-hour trip to %s. That's a great amount of time for a quick but memorable visit! 🚀\n\n", hours, display)
		fmt.Fprintf(&b, "Here's what I recommend for your %d-hour adventure in %s:\n\n", hours, display)
	case hours <= 12:
		fmt.Fprintf(&b, "Excellent choice! A %d-hour trip to %s gives you plenty of time to explore the city's highlights. 🌅\n\n", hours, display)
		fmt.Fprintf(&b, "Let me create a perfect itinerary for your %d-hour visit to %s:\n\n", hours, display)
	case hours <= 24:
		fmt.Fprintf(&b, "Wonderful! A full day in %s is perfect for really experiencing what this amazing city has to offer. 🌞\n\n", display)
		fmt.Fprintf(&b, "Here's your comprehensive %d-hour itinerary for %s:\n\n", hours, display)
	default:
		fmt.Fprintf(&b, "Fantastic! A %d-hour journey in %s will let you dive deep into the local culture and see everything this incredible destination offers. 🌟\n\n", hours, display)
		fmt.Fprintf(&b, "Here's your detailed %d-hour exploration plan for %s:\n\n", hours, display)
	}
	for i, name := range places {
		fmt.Fprintf(&b, "**%d. %s** ⭐ 4.5\n📍 %s, Sri Lanka | Attraction\n\n", i+1, name, display)
	}
	b.WriteString("**💡 Pro Tips for Your Trip:**\n")
	b.WriteString("• Start your day early (around 6-8 AM) to beat the crowds and enjoy cooler temperatures\n")
	b.WriteString("• Tuk-tuks are perfect for short distances, but consider a taxi for longer trips\n")
	b.WriteString("• Don't forget sunscreen, a hat, and plenty of water - Sri Lanka can get quite warm!\n")
	b.WriteString("• Book tickets online for popular attractions to skip the queues\n")
	b.WriteString("• Try the local street food - it's absolutely delicious and very affordable!\n\n")
	fmt.Fprintf(&b, "Have an amazing time exploring %s! Feel free to ask me about any specific places or if you need restaurant recommendations! 😊", display)

	return &models.StructuredResponse{
		Type:        "trip_plan",
		Text:        b.String(),
		Suggestions: suggestionsFor("trip_plan", display),
		Data:        map[string]any{"city": display},
	}
}

func (s *ServiceImpl) buildWeather(ctx context.Context, _ *models.DialogueState, slots models.Slots, _ string) *models.StructuredResponse {
	location := titleCase(slots[models.SlotLocation])

	info, err := s.weather.Current(ctx, location)
	if err != nil {
		s.collaboratorError(ctx, "openweather", err, slog.String("location", location))
		return &models.StructuredResponse{
			Type:        "error",
			Text:        fmt.Sprintf("I'm sorry, I couldn't get the current weather information for %s. Please try again or ask me about something else I can help you with! 😊", location),
			Suggestions: defaultSuggestions,
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Great question! Let me check the current weather in %s for you. 🌤️\n\n", location)
	fmt.Fprintf(&b, "**Current Weather in %s:**\n", location)
	fmt.Fprintf(&b, "🌡️ **Temperature:** %s\n", info.Temperature)
	fmt.Fprintf(&b, "☁️ **Condition:** %s\n", info.Condition)
	fmt.Fprintf(&b, "🤔 **Feels Like:** %s\n", info.FeelsLike)
	fmt.Fprintf(&b, "💧 **Humidity:** %s\n", info.Humidity)
	fmt.Fprintf(&b, "💨 **Wind:** %s\n\n", info.WindSpeed)
	fmt.Fprintf(&b, "**Description:** %s\n\n", info.Description)

	condition := strings.ToLower(info.Condition)
	switch {
	case strings.Contains(condition, "sunny") || strings.Contains(condition, "clear"):
		b.WriteString("☀️ **Perfect weather for outdoor activities!** This is ideal for visiting beaches, hiking, or exploring outdoor attractions. Don't forget your sunscreen! 😎")
	case strings.Contains(condition, "rain"):
		b.WriteString("🌧️ **Rainy day ahead!** No worries though - Sri Lanka has amazing indoor attractions like museums, temples, and cultural centers. It's actually a great time to experience the local culture! 🏛️")
	case strings.Contains(condition, "cloud"):
		b.WriteString("⛅ **Comfortable weather for sightseeing!** The clouds will keep you cool while exploring. Perfect for walking tours and outdoor photography! 📸")
	default:
		b.WriteString("🌤️ **Good weather for tourism!** This should be comfortable for most activities. Enjoy your time in Sri Lanka! 🇱🇰")
	}

	return &models.StructuredResponse{
		Type:        "weather",
		Text:        b.String(),
		Suggestions: suggestionsFor("weather", location),
		Data:        map[string]any{"location": location},
	}
}

func (s *ServiceImpl) buildRestaurants(ctx context.Context, _ *models.DialogueState, slots models.Slots, query string) *models.StructuredResponse {
	city := titleCase(slots[models.SlotCity])
	names := s.tourismNames(ctx, query, city, func(info *models.TourismInfo) []string { return info.Restaurants })
	if len(names) == 0 {
		return s.couldNotFetch("restaurants", "restaurant suggestions", city)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "**🍽️ Top Restaurants in %s**\n\n", city)
	for i, name := range names {
		fmt.Fprintf(&b, "%d. **%s** ⭐ 4.5\n   🍴 Restaurant\n   📍 %s, Sri Lanka\n\n", i+1, name, city)
	}
	b.WriteString("**💡 Dining Tips:**\n")
	b.WriteString("• Try local Sri Lankan cuisine\n")
	b.WriteString("• Book tables in advance for popular restaurants\n")
	b.WriteString("• Ask for recommendations from locals\n")

	return &models.StructuredResponse{
		Type:        "restaurants",
		Text:        b.String(),
		Suggestions: suggestionsFor("restaurants", city),
		Data:        map[string]any{"city": city},
	}
}

func (s *ServiceImpl) buildHotels(ctx context.Context, _ *models.DialogueState, slots models.Slots, query string) *models.StructuredResponse {
	city := titleCase(slots[models.SlotCity])
	names := s.tourismNames(ctx, query, city, func(info *models.TourismInfo) []string { return info.Hotels })
	if len(names) == 0 {
		return s.couldNotFetch("hotels", "hotel suggestions", city)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "**🏨 Recommended Hotels in %s**\n\n", city)
	for i, name := range names {
		fmt.Fprintf(&b, "%d. **%s** ⭐ 4.4\n   🏨 Hotel\n   📍 %s, Sri Lanka\n\n", i+1, name, city)
	}
	b.WriteString("**💡 Booking Tips:**\n")
	b.WriteString("• Book in advance for better rates\n")
	b.WriteString("• Check for package deals\n")
	b.WriteString("• Read recent reviews before booking\n")

	return &models.StructuredResponse{
		Type:        "hotels",
		Text:        b.String(),
		Suggestions: suggestionsFor("hotels", city),
		Data:        map[string]any{"city": city},
	}
}

func (s *ServiceImpl) buildAttractions(ctx context.Context, _ *models.DialogueState, slots models.Slots, query string) *models.StructuredResponse {
	city := titleCase(slots[models.SlotCity])
	names := s.tourismNames(ctx, query, city, func(info *models.TourismInfo) []string { return info.Highlights })
	if len(names) == 0 {
		return s.couldNotFetch("attractions", "attraction suggestions", city)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "**🎯 Top Attractions in %s**\n\n", city)
	if geo, err := s.geocoder.Geocode(ctx, city); err == nil && geo != nil {
		addr := geo.FormattedAddress
		if addr == "" {
			addr = city
		}
		fmt.Fprintf(&b, "**📌 Location:** %s\n\n", addr)
	}
	for i, name := range names {
		fmt.Fprintf(&b, "%d. **%s** ⭐ 4.5\n   🏛️ Attraction\n   📍 %s, Sri Lanka\n\n", i+1, name, city)
	}
	b.WriteString("**💡 Visiting Tips:**\n")
	b.WriteString("• Check opening hours before visiting\n")
	b.WriteString("• Consider guided tours for historical sites\n")
	b.WriteString("• Bring camera for amazing photos\n")

	return &models.StructuredResponse{
		Type:        "attractions",
		Text:        b.String(),
		Suggestions: suggestionsFor("attractions", city),
		Data:        map[string]any{"city": city},
	}
}

func (s *ServiceImpl) buildTransportation(_ context.Context, _ *models.DialogueState, slots models.Slots, _ string) *models.StructuredResponse {
	place := titleCase(slots[models.SlotPlace])
	return &models.StructuredResponse{
		Type:        "transportation",
		Text:        fmt.Sprintf(transportationResponse, place, place),
		Suggestions: defaultSuggestions,
		Data:        map[string]any{"place": place},
	}
}

func (s *ServiceImpl) buildHistory(_ context.Context, _ *models.DialogueState, slots models.Slots, _ string) *models.StructuredResponse {
	place := titleCase(slots[models.SlotPlace])
	return &models.StructuredResponse{
		Type:        "history",
		Text:        fmt.Sprintf(historyResponse, place, place),
		Suggestions: defaultSuggestions,
		Data:        map[string]any{"place": place},
	}
}

func (s *ServiceImpl) buildBestTime(_ context.Context, _ *models.DialogueState, slots models.Slots, _ string) *models.StructuredResponse {
	place := titleCase(slots[models.SlotPlace])
	return &models.StructuredResponse{
		Type:        "best_time",
		Text:        fmt.Sprintf(bestTimeResponse, place),
		Suggestions: defaultSuggestions,
		Data:        map[string]any{"place": place},
	}
}

func (s *ServiceImpl) buildCost(_ context.Context, _ *models.DialogueState, slots models.Slots, _ string) *models.StructuredResponse {
	place := titleCase(slots[models.SlotPlace])
	return &models.StructuredResponse{
		Type:        "cost",
		Text:        fmt.Sprintf(costResponse, place),
		Suggestions: defaultSuggestions,
		Data:        map[string]any{"place": place},
	}
}

func (s *ServiceImpl) buildDistance(_ context.Context, _ *models.DialogueState, _ models.Slots, _ string) *models.StructuredResponse {
	return &models.StructuredResponse{
		Type:        "distance",
		Text:        distanceResponse,
		Suggestions: defaultSuggestions,
	}
}

func (s *ServiceImpl) buildRecommendations(_ context.Context, _ *models.DialogueState, _ models.Slots, _ string) *models.StructuredResponse {
	return &models.StructuredResponse{
		Type:        "recommendations",
		Text:        recommendationsResponse,
		Suggestions: defaultSuggestions,
	}
}

func (s *ServiceImpl) buildComparison(_ context.Context, _ *models.DialogueState, _ models.Slots, _ string) *models.StructuredResponse {
	return &models.StructuredResponse{
		Type:        "comparison",
		Text:        comparisonResponse,
		Suggestions: defaultSuggestions,
	}
}

func (s *ServiceImpl) buildActivities(_ context.Context, _ *models.DialogueState, slots models.Slots, _ string) *models.StructuredResponse {
	activity := titleCase(slots[models.SlotActivity])
	place := titleCase(slots[models.SlotPlace])
	return &models.StructuredResponse{
		Type:        "activities",
		Text:        fmt.Sprintf(activitiesResponse, activity, place),
		Suggestions: defaultSuggestions,
		Data:        map[string]any{"place": place},
	}
}

func (s *ServiceImpl) buildBeachesList(_ context.Context, _ *models.DialogueState, slots models.Slots, _ string) *models.StructuredResponse {
	place := slots[models.SlotPlace]
	items, ok := beachesByPlace[strings.ToLower(place)]
	if !ok {
		items = defaultBeaches
	}
	header := fmt.Sprintf("**🏖️ Beaches in %s**", titleCase(place))
	return &models.StructuredResponse{
		Type:        "beaches_list",
		Text:        renderList(header, items, beachTips),
		Suggestions: defaultSuggestions,
		Data:        map[string]any{"place": titleCase(place)},
	}
}

func (s *ServiceImpl) buildTemplesList(_ context.Context, _ *models.DialogueState, slots models.Slots, _ string) *models.StructuredResponse {
	place := slots[models.SlotPlace]
	items, ok := templesByPlace[strings.ToLower(place)]
	if !ok {
		items = defaultTemples
	}
	header := fmt.Sprintf("**🛕 Temples in %s**", titleCase(place))
	return &models.StructuredResponse{
		Type:        "temples_list",
		Text:        renderList(header, items, templeTips),
		Suggestions: defaultSuggestions,
		Data:        map[string]any{"place": titleCase(place)},
	}
}

func (s *ServiceImpl) buildLocationLookup(ctx context.Context, _ *models.DialogueState, slots models.Slots, _ string) *models.StructuredResponse {
	place := strings.TrimSpace(slots[models.SlotPlace])
	if place == "" {
		return &models.StructuredResponse{
			Type:        "error",
			Text:        "Please specify a place to locate.",
			Suggestions: defaultSuggestions,
		}
	}
	display := titleCase(place)

	geo, err := s.geocoder.Geocode(ctx, display)
	if err != nil || geo == nil {
		if err != nil {
			s.collaboratorError(ctx, "geocoder", err, slog.String("place", display))
		}
		return &models.StructuredResponse{
			Type:        "error",
			Text:        fmt.Sprintf("I couldn't find the location for %s.", display),
			Suggestions: defaultSuggestions,
		}
	}

	addr := geo.FormattedAddress
	if addr == "" {
		addr = display
	}
	return &models.StructuredResponse{
		Type:        "location",
		Text:        fmt.Sprintf("**📍 Location: %s**", addr),
		Suggestions: suggestionsFor("place_info", display),
		Data: map[string]any{
			"place":    display,
			"geo":      geo,
			"maps_url": geo.MapsURL,
		},
	}
}

func (s *ServiceImpl) buildChitchat(_ context.Context, _ *models.DialogueState, slots models.Slots, _ string) *models.StructuredResponse {
	text, ok := greetingResponses[slots[models.SlotGreeting]]
	if !ok {
		text = genericGreeting
	}
	return &models.StructuredResponse{
		Type:        "chitchat",
		Text:        text,
		Suggestions: defaultSuggestions,
	}
}

func (s *ServiceImpl) buildHelp(_ context.Context, _ *models.DialogueState, _ models.Slots, _ string) *models.StructuredResponse {
	return &models.StructuredResponse{
		Type:        "help",
		Text:        helpResponse,
		Suggestions: defaultSuggestions,
	}
}

func (s *ServiceImpl) buildGeneral(_ context.Context, _ *models.DialogueState, slots models.Slots, query string) *models.StructuredResponse {
	q := strings.TrimSpace(strings.ToLower(slots[models.SlotQuery]))
	if q == "" {
		q = strings.TrimSpace(strings.ToLower(query))
	}
	if text, ok := simpleResponses[q]; ok {
		return &models.StructuredResponse{
			Type:        "general",
			Text:        text,
			Suggestions: defaultSuggestions,
		}
	}
	if resp := s.searchMatches(q); resp != nil {
		return resp
	}
	return &models.StructuredResponse{
		Type:        "general",
		Text:        generalResponse,
		Suggestions: defaultSuggestions,
	}
}

// searchMatches answers an uncategorized query with the curated places it
// overlaps, so "unesco fortress" still lands somewhere useful. Words
// shorter than four letters are dropped so stopwords cannot match.
func (s *ServiceImpl) searchMatches(query string) *models.StructuredResponse {
	var terms []string
	for _, w := range strings.Fields(query) {
		if len(w) >= 4 {
			terms = append(terms, w)
		}
	}
	if len(terms) == 0 {
		return nil
	}

	results := s.gazetteer.Search(strings.Join(terms, " "))
	if len(results) == 0 {
		return nil
	}
	if len(results) > 3 {
		results = results[:3]
	}

	var b strings.Builder
	b.WriteString("I'm not sure exactly what you're after, but these places match:\n")
	for _, res := range results {
		fmt.Fprintf(&b, "\n- **%s**", res.Name)
		if res.City != "" && !strings.EqualFold(res.City, res.Name) {
			fmt.Fprintf(&b, " (%s)", res.City)
		}
		if res.BestTime != "" {
			fmt.Fprintf(&b, " — best time: %s", res.BestTime)
		}
	}
	fmt.Fprintf(&b, "\n\nAsk **Tell me about %s** for the full card.", results[0].Name)

	return &models.StructuredResponse{
		Type: "general",
		Text: b.String(),
		Suggestions: []string{
			fmt.Sprintf("Tell me about %s", results[0].Name),
			"Help",
		},
	}
}

// tourismNames asks the generative collaborator for a field of its tourism
// record, returning nil when it is unavailable.
func (s *ServiceImpl) tourismNames(ctx context.Context, query, city string, pick func(*models.TourismInfo) []string) []string {
	info, err := s.generative.TourismInfo(ctx, query, city)
	if err != nil || info == nil {
		if err != nil {
			s.collaboratorError(ctx, "gemini", err, slog.String("city", city))
		}
		return nil
	}
	return pick(info)
}

// collaboratorError logs and counts a failed external call.
func (s *ServiceImpl) collaboratorError(ctx context.Context, collaborator string, err error, attrs ...slog.Attr) {
	args := make([]any, 0, len(attrs)+2)
	args = append(args, slog.String("collaborator", collaborator), slog.Any("error", err))
	for _, a := range attrs {
		args = append(args, a)
	}
	s.logger.WarnContext(ctx, "Collaborator call failed", args...)
	if s.metrics != nil {
		s.metrics.CollaboratorErrorsTotal.Add(ctx, 1)
	}
}

func (s *ServiceImpl) couldNotFetch(responseType, what, city string) *models.StructuredResponse {
	return &models.StructuredResponse{
		Type:        responseType,
		Text:        fmt.Sprintf("I couldn't fetch %s for %s right now. Please try again in a moment! 😊", what, city),
		Suggestions: defaultSuggestions,
		Data:        map[string]any{"city": city},
	}
}

// titleCase uppercases the first letter of each word for display.
func titleCase(text string) string {
	words := strings.Fields(strings.TrimSpace(text))
	for i, w := range words {
		r := []rune(strings.ToLower(w))
		if len(r) > 0 {
			r[0] = unicode.ToUpper(r[0])
		}
		words[i] = string(r)
	}
	return strings.Join(words, " ")
}
