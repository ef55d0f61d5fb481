package questions

import "github.com/avikamggh/ai-interviewer/pkg/resume"

// Composition slice sizes. Tunable constants, not configuration: changing
// them changes the product, not the deployment.
const (
	generalLead       = 2
	technicalPerSkill = 2
	behavioralCount   = 3

	// DefaultCap bounds the selected question set.
	DefaultCap = 8
)

// Options tunes selection behavior.
type Options struct {
	// Cap bounds the output length; zero means DefaultCap.
	Cap int
	// AllowRepeats lets the padding step revisit general questions that are
	// already in the set when the catalog cannot otherwise fill the cap.
	// When false (default) the set is simply shorter.
	AllowRepeats bool
}

func (o Options) limit() int {
	if o.Cap <= 0 {
		return DefaultCap
	}
	return o.Cap
}

// Select composes an ordered question set from the analysis and one
// language's catalog. The composition is fixed: a general lead-in, technical
// questions per detected skill in the fixed skill order, behavioral
// questions, then general padding up to the cap. The output is fully
// deterministic for a given (analysis, catalog, options) triple.
func Select(analysis resume.Analysis, cat Catalog, opts Options) []string {
	limit := opts.limit()
	out := make([]string, 0, limit)

	out = append(out, head(cat.General, generalLead)...)

	for _, skill := range resume.Skills {
		if !analysis.Profile[skill] {
			continue
		}
		out = append(out, head(cat.Technical[skill], technicalPerSkill)...)
	}

	out = append(out, head(cat.Behavioral, behavioralCount)...)

	out = pad(out, cat.General, limit, opts.AllowRepeats)

	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

// SelectAll runs the same selection independently for every supported
// language, producing parallel question sets.
func SelectAll(analysis resume.Analysis, opts Options) map[Language][]string {
	out := make(map[Language][]string, len(Languages))
	for _, lang := range Languages {
		cat, ok := ForLanguage(lang)
		if !ok {
			continue
		}
		out[lang] = Select(analysis, cat, opts)
	}
	return out
}

func head(list []string, n int) []string {
	if n > len(list) {
		n = len(list)
	}
	return list[:n]
}

// pad appends general questions beyond the lead-in slice until the cap is
// reached or the pool is exhausted. Without AllowRepeats each pool entry is
// used at most once and entries already present in the set are skipped.
func pad(out, general []string, limit int, allowRepeats bool) []string {
	if len(out) >= limit || len(general) <= generalLead {
		return out
	}
	pool := general[generalLead:]
	if allowRepeats {
		for i := 0; len(out) < limit; i++ {
			out = append(out, pool[i%len(pool)])
		}
		return out
	}
	used := make(map[string]bool, len(out))
	for _, q := range out {
		used[q] = true
	}
	for _, q := range pool {
		if len(out) >= limit {
			break
		}
		if used[q] {
			continue
		}
		used[q] = true
		out = append(out, q)
	}
	return out
}
