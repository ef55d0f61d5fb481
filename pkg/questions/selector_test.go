package questions

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/avikamggh/ai-interviewer/pkg/resume"
)

func TestCatalogsAreValid(t *testing.T) {
	require.NoError(t, Validate())
}

func TestSelectDeterministic(t *testing.T) {
	a := resume.Analyze("senior react and python developer, sql databases")
	cat, ok := ForLanguage(LanguageEnglish)
	require.True(t, ok)

	first := Select(a, cat, Options{})
	second := Select(a, cat, Options{})
	require.Equal(t, first, second)
}

func TestSelectBoundedAndNonEmpty(t *testing.T) {
	cat, _ := ForLanguage(LanguageEnglish)

	// No detected skills still yields a non-empty, capped set.
	empty := Select(resume.Analyze(""), cat, Options{})
	require.NotEmpty(t, empty)
	require.LessOrEqual(t, len(empty), DefaultCap)

	// Many detected skills must still respect the cap.
	all := Select(resume.Analyze("javascript python react nodejs sql html api"), cat, Options{})
	require.Len(t, all, DefaultCap)
}

func TestSelectComposition(t *testing.T) {
	a := resume.Analyze("python developer")
	cat, _ := ForLanguage(LanguageEnglish)

	got := Select(a, cat, Options{})

	// 2 general, then python technical, then behavioral, then padding.
	require.Equal(t, cat.General[0], got[0])
	require.Equal(t, cat.General[1], got[1])
	require.Equal(t, cat.Technical[resume.SkillPython][0], got[2])
	require.Equal(t, cat.Technical[resume.SkillPython][1], got[3])
	require.Equal(t, cat.Behavioral[0], got[4])
	require.Equal(t, cat.Behavioral[1], got[5])
	require.Equal(t, cat.Behavioral[2], got[6])
	require.Equal(t, cat.General[2], got[7])
}

func TestSelectSkillOrderIsFixed(t *testing.T) {
	// react is detected via the javascript pattern too, so javascript
	// questions must come before react questions.
	a := resume.Analyze("react and redux")
	cat, _ := ForLanguage(LanguageEnglish)

	got := Select(a, cat, Options{})
	require.Equal(t, cat.Technical[resume.SkillJavaScript][0], got[2])
	require.Equal(t, cat.Technical[resume.SkillReact][0], got[4])
}

func TestSelectPaddingSkipsUsedGenerals(t *testing.T) {
	small := Catalog{
		General:    []string{"g1", "g2", "g3"},
		Behavioral: []string{"b1"},
		Technical:  map[resume.Skill][]string{},
	}
	got := Select(resume.Analyze(""), small, Options{})
	// Without repeats the catalog simply cannot fill the cap.
	require.Equal(t, []string{"g1", "g2", "b1", "g3"}, got)
}

func TestSelectPaddingWithRepeats(t *testing.T) {
	small := Catalog{
		General:    []string{"g1", "g2", "g3"},
		Behavioral: []string{"b1"},
		Technical:  map[resume.Skill][]string{},
	}
	got := Select(resume.Analyze(""), small, Options{AllowRepeats: true})
	require.Len(t, got, DefaultCap)
	require.Equal(t, []string{"g1", "g2", "b1", "g3", "g3", "g3", "g3", "g3"}, got)
}

func TestSelectCustomCap(t *testing.T) {
	cat, _ := ForLanguage(LanguageEnglish)
	got := Select(resume.Analyze("python"), cat, Options{Cap: 4})
	require.Len(t, got, 4)
}

func TestSelectAllParallelLanguages(t *testing.T) {
	a := resume.Analyze("5 years of experience, react and sql")
	sets := SelectAll(a, Options{})

	require.Len(t, sets, len(Languages))
	require.Len(t, sets[LanguageHindi], len(sets[LanguageEnglish]))

	en, _ := ForLanguage(LanguageEnglish)
	hi, _ := ForLanguage(LanguageHindi)
	require.Equal(t, en.General[0], sets[LanguageEnglish][0])
	require.Equal(t, hi.General[0], sets[LanguageHindi][0])
}
