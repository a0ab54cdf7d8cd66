package observability

import (
	"sync"
	"sync/atomic"
)

type StatsSnapshot struct {
	PagesFetched      uint64            `json:"pages_fetched"`
	URLsDiscovered    uint64            `json:"urls_discovered"`
	RecipesExtracted  uint64            `json:"recipes_extracted"`
	PagesSkipped      uint64            `json:"pages_skipped"`
	ErrorsTotal       uint64            `json:"errors_total"`
	FetchSecondsAvg   float64           `json:"fetch_seconds_avg"`
	RecipesBySite     map[string]uint64 `json:"recipes_by_site,omitempty"`
	ErrorsByType      map[string]uint64 `json:"errors_by_type,omitempty"`
	ErrorsByComponent map[string]uint64 `json:"errors_by_component,omitempty"`
}

var (
	pagesFetched     uint64
	urlsDiscovered   uint64
	recipesExtracted uint64
	pagesSkipped     uint64
	errorsTotal      uint64

	fetchCount uint64
	fetchNanos uint64

	statsMu           sync.Mutex
	recipesBySite     = map[string]uint64{}
	errorsByType      = map[string]uint64{}
	errorsByComponent = map[string]uint64{}
)

func IncPagesFetched(_ string) {
	atomic.AddUint64(&pagesFetched, 1)
}

func AddURLsDiscovered(_ string, n int) {
	if n <= 0 {
		return
	}
	atomic.AddUint64(&urlsDiscovered, uint64(n))
}

func IncRecipeExtracted(site string) {
	if site == "" {
		site = "unknown"
	}
	atomic.AddUint64(&recipesExtracted, 1)
	statsMu.Lock()
	recipesBySite[site]++
	statsMu.Unlock()
}

func IncPageSkipped(_ string) {
	atomic.AddUint64(&pagesSkipped, 1)
}

func ObserveFetchDuration(_ string, seconds float64) {
	if seconds <= 0 {
		return
	}
	atomic.AddUint64(&fetchCount, 1)
	atomic.AddUint64(&fetchNanos, uint64(seconds*1e9))
}

func IncError(errType, component string) {
	if errType == "" {
		errType = ErrorUnknown
	}
	if component == "" {
		component = "unknown"
	}
	atomic.AddUint64(&errorsTotal, 1)
	statsMu.Lock()
	errorsByType[errType]++
	errorsByComponent[component]++
	statsMu.Unlock()
}

func Snapshot() StatsSnapshot {
	statsMu.Lock()
	siteCopy := copyMap(recipesBySite)
	errorsTypeCopy := copyMap(errorsByType)
	errorsComponentCopy := copyMap(errorsByComponent)
	statsMu.Unlock()

	count := atomic.LoadUint64(&fetchCount)
	avg := 0.0
	if count > 0 {
		avg = float64(atomic.LoadUint64(&fetchNanos)) / float64(count) / 1e9
	}

	return StatsSnapshot{
		PagesFetched:      atomic.LoadUint64(&pagesFetched),
		URLsDiscovered:    atomic.LoadUint64(&urlsDiscovered),
		RecipesExtracted:  atomic.LoadUint64(&recipesExtracted),
		PagesSkipped:      atomic.LoadUint64(&pagesSkipped),
		ErrorsTotal:       atomic.LoadUint64(&errorsTotal),
		FetchSecondsAvg:   avg,
		RecipesBySite:     siteCopy,
		ErrorsByType:      errorsTypeCopy,
		ErrorsByComponent: errorsComponentCopy,
	}
}

func copyMap(src map[string]uint64) map[string]uint64 {
	if len(src) == 0 {
		return map[string]uint64{}
	}
	out := make(map[string]uint64, len(src))
	for k, v := range src {
		out[k] = v
	}
	return out
}
