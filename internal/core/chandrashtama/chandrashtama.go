// Package chandrashtama derives the cautionary nakshatra for each nakshatra
// window of a day and renders the bilingual warnings shown next to it
package chandrashtama

import (
	"fmt"
	"maps"

	"panchang/internal/core/displaytime"
	"panchang/internal/core/nakshatra"
)

// Payload keys written by Merge
const (
	KeyResults         = "chandrashtama"
	KeyWarnings        = "chandrashtamaWarnings"
	KeyWarningsEnglish = "chandrashtamaWarningsEnglish"
)

const (
	cautionTamil      = "%s நட்சத்திரக்காரர்களுக்கு சந்திராஷ்டமம்: கவனமாக இருக்கவும்"
	cautionEnglish    = "Chandrashtama for %s nakshatra: exercise caution"
	unresolvedTamil   = "நட்சத்திரம் கண்டறிய முடியவில்லை: %s"
	unresolvedEnglish = "Unable to determine Chandrashtama for nakshatra: %s"
)

// Entry is one nakshatra window as the provider reports it
type Entry struct {
	Name  string `json:"name" validate:"required,max=128"`
	Start string `json:"start" validate:"max=64"`
	End   string `json:"end" validate:"required,max=64"`
}

// Result is the chandrashtama annotation of one Entry
type Result struct {
	CurrentNakshatra        string `json:"currentNakshatra"`
	CurrentNakshatraEndTime string `json:"currentNakshatraEndTime"`
	ChandrashtamaNakshatra  string `json:"chandrashtamaNakshatra"`
	Caution                 string `json:"caution"`
	CautionInEnglish        string `json:"cautionInEnglish"`

	Strategy                      nakshatra.Strategy        `json:"strategy"`
	CurrentIndex                  int                       `json:"currentIndex"`
	ChandrashtamaIndex            int                       `json:"chandrashtamaIndex"`
	ChandrashtamaNakshatraEnglish string                    `json:"chandrashtamaNakshatraEnglish"`
	Window                        displaytime.DisplayWindow `json:"window"`
}

// Engine resolves entries against a nakshatra resolver
type Engine struct {
	r *nakshatra.Resolver
}

var std = &Engine{r: nakshatra.Default()}

// Default is the engine over the canonical cycle
func Default() *Engine { return std }

// NewEngine wraps r, which must cover the full cycle
func NewEngine(r *nakshatra.Resolver) (*Engine, error) {
	if r == nil {
		return std, nil
	}
	if r.Size() != nakshatra.Size {
		return nil, fmt.Errorf("chandrashtama: resolver covers %d names, want %d", r.Size(), nakshatra.Size)
	}
	return &Engine{r: r}, nil
}

// Resolve annotates every entry, in order. Names that cannot be resolved
// produce an Unknown result; the batch itself never fails
func (e *Engine) Resolve(entries []Entry) []Result {
	out := make([]Result, 0, len(entries))
	for _, en := range entries {
		out = append(out, e.one(en))
	}
	return out
}

func (e *Engine) one(en Entry) Result {
	w := displaytime.Window{Start: en.Start, End: en.End}.Display()
	res := Result{
		CurrentNakshatra:        en.Name,
		CurrentNakshatraEndTime: w.EndDisplay,
		Window:                  w,
	}

	r := e.r.Resolve(en.Name)
	res.Strategy = r.Strategy
	if !r.Resolved() {
		res.CurrentIndex = -1
		res.ChandrashtamaIndex = -1
		res.ChandrashtamaNakshatra = nakshatra.Unknown
		res.ChandrashtamaNakshatraEnglish = nakshatra.Unknown
		res.Caution = fmt.Sprintf(unresolvedTamil, en.Name)
		res.CautionInEnglish = fmt.Sprintf(unresolvedEnglish, en.Name)
		return res
	}

	ci := nakshatra.ChandrashtamaIndex(r.Index)
	target, _ := nakshatra.At(ci)
	res.CurrentIndex = r.Index
	res.ChandrashtamaIndex = ci
	res.ChandrashtamaNakshatra = target.Tamil
	res.ChandrashtamaNakshatraEnglish = target.English
	res.Caution = fmt.Sprintf(cautionTamil, target.Tamil)
	res.CautionInEnglish = fmt.Sprintf(cautionEnglish, target.English)
	return res
}

// Resolve runs the default engine
func Resolve(entries []Entry) []Result { return std.Resolve(entries) }

// Warnings projects the Tamil cautions in order
func Warnings(results []Result) []string {
	out := make([]string, len(results))
	for i, r := range results {
		out[i] = r.Caution
	}
	return out
}

// WarningsEnglish projects the English cautions in order
func WarningsEnglish(results []Result) []string {
	out := make([]string, len(results))
	for i, r := range results {
		out[i] = r.CautionInEnglish
	}
	return out
}

// Merge returns a shallow copy of payload carrying the results and both
// warning projections. payload itself is left untouched
func Merge(payload map[string]any, results []Result) map[string]any {
	out := make(map[string]any, len(payload)+3)
	maps.Copy(out, payload)
	if results == nil {
		results = []Result{}
	}
	out[KeyResults] = results
	out[KeyWarnings] = Warnings(results)
	out[KeyWarningsEnglish] = WarningsEnglish(results)
	return out
}

// Entries pulls the nakshatra windows out of a decoded panchang payload
// Items that are not objects or carry no name are skipped
func Entries(payload map[string]any) []Entry {
	items, _ := payload["nakshatra"].([]any)
	out := make([]Entry, 0, len(items))
	for _, it := range items {
		m, ok := it.(map[string]any)
		if !ok {
			continue
		}
		name, _ := m["name"].(string)
		if name == "" {
			continue
		}
		start, _ := m["start"].(string)
		end, _ := m["end"].(string)
		out = append(out, Entry{Name: name, Start: start, End: end})
	}
	return out
}

// Enrich resolves the payload's own nakshatra windows and merges the results
func (e *Engine) Enrich(payload map[string]any) map[string]any {
	return Merge(payload, e.Resolve(Entries(payload)))
}
