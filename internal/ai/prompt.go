package ai

import (
	"fmt"
	"strings"
)

const scoreSystemPrompt = "Score cities 0-100 for interest match. Return only comma-separated numbers."

const expandSystemPrompt = `You help identify travel-relevant keywords for niche interests.

Examples:
- "Pokemon" → anime, japanese, gaming, akihabara, tokyo
- "Ferrari" → cars, italian, automotive, luxury, racing
- "Star Wars" → movies, tunisia, ireland, filming locations
- "K-pop" → korean, music, seoul, entertainment

Return ONLY comma-separated travel keywords (no brackets, quotes).`

func scorePrompt(summaries, interests []string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Interests: %s\nCities:\n", strings.Join(interests, ", "))
	for i, s := range summaries {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "%d. %s", i+1, s)
	}
	b.WriteString("\n\nScores:")
	return b.String()
}

func expandPrompt(words []string) string {
	return "What travel keywords match: " + strings.Join(words, ", ")
}

func suggestPrompt(destination string, days int, interests, activities []string) string {
	sample := "typical activities"
	if len(activities) > 0 {
		sample = strings.Join(activities[:min(3, len(activities))], ", ")
	}
	return fmt.Sprintf(`Create a %d-day itinerary for %s based on these interests: %s.

Available activities: %s

Format: Day 1: [activity]. Day 2: [activity]. Day 3: [activity]...
Cover ALL %d days. Keep each day to 8-10 words maximum.`,
		days, destination, strings.Join(interests[:min(4, len(interests))], ", "), sample, days)
}
