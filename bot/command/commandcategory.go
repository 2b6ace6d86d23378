package command

type Category string

const (
	General  Category = "ℹ️ General"
	Settings Category = "🔧 Settings"
)

var Categories = []Category{
	General,
	Settings,
}

func (c Category) ToRawString() string {
	switch c {
	case General:
		return "general"
	case Settings:
		return "settings"
	default:
		return string(c)
	}
}
