package survey

import (
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/dtalero78/siigo-retiros/internal/model"
)

// CountEntry is one bucket of a categorical breakdown. Buckets keep
// first-seen order so repeated runs over the same records produce the
// same report.
type CountEntry struct {
	Value string `json:"value"`
	Count int    `json:"count"`
}

// AreaBreakdown summarizes one area's records.
type AreaBreakdown struct {
	Area              string  `json:"area"`
	Count             int     `json:"count"`
	AverageExperience float64 `json:"average_experience"`
	WouldRecommendPct float64 `json:"would_recommend_pct"`
	WouldReturnPct    float64 `json:"would_return_pct"`
}

// SatisfactionEntry is the mean rating for one satisfaction item.
type SatisfactionEntry struct {
	Item    string  `json:"item"`
	Average float64 `json:"average"`
	Count   int     `json:"count"`
}

// Report is the aggregate view over a set of canonical records.
type Report struct {
	Total             int                 `json:"total"`
	AverageExperience float64             `json:"average_experience"`
	WouldRecommendPct float64             `json:"would_recommend_pct"`
	WouldReturnPct    float64             `json:"would_return_pct"`
	ExitReasons       []CountEntry        `json:"exit_reasons"`
	Countries         []CountEntry        `json:"countries"`
	Tenures           []CountEntry        `json:"tenures"`
	Areas             []AreaBreakdown     `json:"areas"`
	Satisfaction      []SatisfactionEntry `json:"satisfaction"`
}

// counter accumulates categorical buckets preserving insertion order.
type counter struct {
	order  []string
	counts map[string]int
}

func newCounter() *counter {
	return &counter{counts: map[string]int{}}
}

func (c *counter) add(value string) {
	value = strings.TrimSpace(value)
	if value == "" {
		return
	}
	if _, seen := c.counts[value]; !seen {
		c.order = append(c.order, value)
	}
	c.counts[value]++
}

func (c *counter) entries() []CountEntry {
	out := make([]CountEntry, 0, len(c.order))
	for _, v := range c.order {
		out = append(out, CountEntry{Value: v, Count: c.counts[v]})
	}
	return out
}

// Aggregate reduces canonical records to a Report. It is deterministic
// and does no I/O; records with missing or unparseable fields simply do
// not contribute to the affected measure.
func Aggregate(records []model.Response) Report {
	report := Report{
		Total:        len(records),
		ExitReasons:  []CountEntry{},
		Countries:    []CountEntry{},
		Tenures:      []CountEntry{},
		Areas:        []AreaBreakdown{},
		Satisfaction: []SatisfactionEntry{},
	}

	var expSum, expCount int
	var recommendYes, returnYes int

	reasons := newCounter()
	countries := newCounter()
	tenures := newCounter()

	areaOrder := []string{}
	areaCount := map[string]int{}
	areaExpSum := map[string]int{}
	areaExpCount := map[string]int{}
	areaRecommendYes := map[string]int{}
	areaReturnYes := map[string]int{}

	satOrder := []string{}
	satSum := map[string]float64{}
	satCount := map[string]int{}

	for i := range records {
		r := &records[i]

		if r.ExperienceRating != nil {
			expSum += *r.ExperienceRating
			expCount++
		}
		if model.TriStateFromAnswer(r.WouldRecommend) == model.TriYes {
			recommendYes++
		}
		if model.TriStateFromAnswer(r.WouldReturn) == model.TriYes {
			returnYes++
		}

		reasons.add(r.ExitReasonCategory)
		countries.add(r.Country)
		tenures.add(r.Tenure)

		if area := strings.TrimSpace(r.Area); area != "" {
			if _, seen := areaCount[area]; !seen {
				areaOrder = append(areaOrder, area)
			}
			areaCount[area]++
			if r.ExperienceRating != nil {
				areaExpSum[area] += *r.ExperienceRating
				areaExpCount[area]++
			}
			if model.TriStateFromAnswer(r.WouldRecommend) == model.TriYes {
				areaRecommendYes[area]++
			}
			if model.TriStateFromAnswer(r.WouldReturn) == model.TriYes {
				areaReturnYes[area]++
			}
		}

		ratings := r.SatisfactionMap()
		for _, item := range sortedKeys(ratings) {
			n, err := strconv.ParseFloat(strings.TrimSpace(ratings[item]), 64)
			if err != nil {
				continue
			}
			if _, seen := satCount[item]; !seen {
				satOrder = append(satOrder, item)
			}
			satSum[item] += n
			satCount[item]++
		}
	}

	if expCount > 0 {
		report.AverageExperience = round2(float64(expSum) / float64(expCount))
	}
	if report.Total > 0 {
		report.WouldRecommendPct = round1(float64(recommendYes) / float64(report.Total) * 100)
		report.WouldReturnPct = round1(float64(returnYes) / float64(report.Total) * 100)
	}

	report.ExitReasons = reasons.entries()
	report.Countries = countries.entries()
	report.Tenures = tenures.entries()

	for _, area := range areaOrder {
		b := AreaBreakdown{Area: area, Count: areaCount[area]}
		if areaExpCount[area] > 0 {
			b.AverageExperience = round2(float64(areaExpSum[area]) / float64(areaExpCount[area]))
		}
		b.WouldRecommendPct = round1(float64(areaRecommendYes[area]) / float64(areaCount[area]) * 100)
		b.WouldReturnPct = round1(float64(areaReturnYes[area]) / float64(areaCount[area]) * 100)
		report.Areas = append(report.Areas, b)
	}

	for _, item := range satOrder {
		report.Satisfaction = append(report.Satisfaction, SatisfactionEntry{
			Item:    item,
			Average: round2(satSum[item] / float64(satCount[item])),
			Count:   satCount[item],
		})
	}

	return report
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func round2(v float64) float64 { return math.Round(v*100) / 100 }
func round1(v float64) float64 { return math.Round(v*10) / 10 }
