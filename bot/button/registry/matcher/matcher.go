package matcher

type Matcher interface {
	Matches(customId string) bool
}

// FuncMatcher matches custom ids with embedded data, e.g. prefixed session
// ids.
type FuncMatcher struct {
	Func func(customId string) bool
}

func (m *FuncMatcher) Matches(customId string) bool {
	return m.Func(customId)
}
