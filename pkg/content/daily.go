package content

import (
	"github.com/akeil/tripjournal"
)

// DailyPages builds the daily page records for a trip.
//
// Every day gets an observation prompt, even days a second one and a
// reflection prompt. Interest prompts are spread over the trip: interest
// i (0-based) appears on days where day % (i+2) == 1. At most four prompts
// are kept per day.
func DailyPages(location string, days int, p Prompts, interests []string) []journal.DailyPage {
	obs := p.Observation
	if len(obs) == 0 {
		obs = defaultObservationPrompts
	}
	refl := p.Reflection
	if len(refl) == 0 {
		refl = defaultReflectionPrompts
	}

	pages := make([]journal.DailyPage, 0, days)
	for day := 1; day <= days; day++ {
		var prompts []string
		prompts = append(prompts, obs[(day-1)%len(obs)])
		if day%2 == 0 && len(obs) > 1 {
			prompts = append(prompts, obs[day%len(obs)])
		}

		for i, interest := range interests {
			ip := p.Interests[interest]
			if len(ip) == 0 {
				continue
			}
			if day%(i+2) == 1 {
				prompts = append(prompts, ip[(day-1+i)%len(ip)])
			}
		}

		if day%2 == 0 {
			prompts = append(prompts, refl[(day-1)%len(refl)])
		}

		if len(prompts) > journal.MaxDailyPrompts {
			prompts = prompts[:journal.MaxDailyPrompts]
		}

		pages = append(pages, journal.DailyPage{
			Day:          day,
			Location:     location,
			Prompts:      prompts,
			SketchPrompt: SketchPrompt(day, location),
			Mood:         true,
			Weather:      true,
		})
	}
	return pages
}
