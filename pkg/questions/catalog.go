package questions

import (
	"fmt"

	"github.com/avikamggh/ai-interviewer/pkg/resume"
)

// Language enumerates the interview languages. The set is closed: adding a
// language means adding a fully parallel catalog, there is no partial
// fallback between languages.
type Language string

const (
	LanguageEnglish Language = "english"
	LanguageHindi   Language = "hindi"
)

// Languages lists every supported language.
var Languages = []Language{LanguageEnglish, LanguageHindi}

// Catalog holds the static question data for one language, partitioned into
// the three category groups. Catalogs are loaded once at process start and
// never mutated.
type Catalog struct {
	General    []string
	Behavioral []string
	Technical  map[resume.Skill][]string
}

var catalogs = map[Language]Catalog{
	LanguageEnglish: englishCatalog,
	LanguageHindi:   hindiCatalog,
}

// ForLanguage returns the catalog for the given language.
func ForLanguage(lang Language) (Catalog, bool) {
	c, ok := catalogs[lang]
	return c, ok
}

// Validate checks that every supported language carries a usable catalog.
// An empty category group is a deployment error, not a runtime condition.
func Validate() error {
	for _, lang := range Languages {
		c, ok := catalogs[lang]
		if !ok {
			return fmt.Errorf("no catalog for language %q", lang)
		}
		if len(c.General) == 0 {
			return fmt.Errorf("catalog %q has no general questions", lang)
		}
		if len(c.Behavioral) == 0 {
			return fmt.Errorf("catalog %q has no behavioral questions", lang)
		}
		for _, skill := range resume.Skills {
			if len(c.Technical[skill]) == 0 {
				return fmt.Errorf("catalog %q has no technical questions for %q", lang, skill)
			}
		}
	}
	return nil
}
