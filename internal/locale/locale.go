// Package locale renders user-visible framework strings through an x/text
// message catalog.
package locale

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"

	"github.com/atomicstack/helium/internal/world"
)

// Message keys.
const (
	TabNotAvailable = "tab.not_available"
	TabNonExist     = "tab.non_exist"
	DockButtons     = "widget.dock_buttons"
	HelpActions     = "help.actions"
)

var supported = []language.Tag{language.English, language.SimplifiedChinese}

var (
	builder = catalog.NewBuilder(catalog.Fallback(language.English))
	matcher = language.NewMatcher(supported)
)

func init() {
	set := func(tag language.Tag, key, msg string) {
		if err := builder.SetString(tag, key, msg); err != nil {
			panic(err)
		}
	}
	set(language.English, TabNotAvailable, "This tab is not available right now.")
	set(language.English, TabNonExist, "Tab %s does not exist.")
	set(language.English, DockButtons, "Tabs")
	set(language.English, HelpActions, "%d actions registered")

	set(language.SimplifiedChinese, TabNotAvailable, "此标签页当前不可用。")
	set(language.SimplifiedChinese, TabNonExist, "标签页 %s 不存在。")
	set(language.SimplifiedChinese, DockButtons, "标签页")
	set(language.SimplifiedChinese, HelpActions, "已注册 %d 个操作")
}

// Locale is the world resource carrying the active printer. The zero value
// prints English.
type Locale struct {
	tag     language.Tag
	printer *message.Printer
}

// New returns the locale best matching name, e.g. "en", "zh-CN". Unknown or
// empty names select English.
func New(name string) *Locale {
	tag := language.English
	if name != "" {
		if parsed, err := language.Parse(name); err == nil {
			_, idx, _ := matcher.Match(parsed)
			tag = supported[idx]
		}
	}
	return &Locale{tag: tag, printer: message.NewPrinter(tag, message.Catalog(builder))}
}

// Tag returns the selected language.
func (l *Locale) Tag() language.Tag {
	if l.printer == nil {
		return language.English
	}
	return l.tag
}

// Sprintf formats the catalog message stored under key.
func (l *Locale) Sprintf(key string, args ...any) string {
	if l.printer == nil {
		*l = *New("")
	}
	return l.printer.Sprintf(key, args...)
}

var fallback = New("")

// T formats key with the world's locale, or English when none is installed.
func T(w *world.World, key string, args ...any) string {
	if l, ok := world.Get[Locale](w); ok {
		return l.Sprintf(key, args...)
	}
	return fallback.Sprintf(key, args...)
}

// Plugin returns a plugin installing the locale matching name.
func Plugin(name string) world.Plugin {
	return world.PluginFunc(func(w *world.World) {
		world.Insert(w, New(name))
	})
}

// Supported reports whether name parses and matches a catalog language.
// The empty name selects the default and is always supported.
func Supported(name string) bool {
	if name == "" {
		return true
	}
	parsed, err := language.Parse(name)
	if err != nil {
		return false
	}
	_, _, confidence := matcher.Match(parsed)
	return confidence != language.No
}
