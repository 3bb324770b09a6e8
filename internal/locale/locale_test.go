package locale

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"

	"github.com/atomicstack/helium/internal/world"
)

func TestEnglishDefault(t *testing.T) {
	l := New("")
	assert.Equal(t, language.English, l.Tag())
	assert.Equal(t, "Tab demo.tab does not exist.", l.Sprintf(TabNonExist, "demo.tab"))
}

func TestChinese(t *testing.T) {
	l := New("zh-Hans")
	assert.Equal(t, language.SimplifiedChinese, l.Tag())
	assert.Equal(t, "此标签页当前不可用。", l.Sprintf(TabNotAvailable))
}

func TestUnknownFallsBackToEnglish(t *testing.T) {
	assert.Equal(t, language.English, New("not a tag!").Tag())
	assert.Equal(t, "This tab is not available right now.", New("fr").Sprintf(TabNotAvailable))
}

func TestZeroValuePrintsEnglish(t *testing.T) {
	var l Locale
	assert.Equal(t, "Tabs", l.Sprintf(DockButtons))
}

func TestWorldLookup(t *testing.T) {
	w := world.New()
	assert.Equal(t, "3 actions registered", T(w, HelpActions, 3))

	world.AddPlugins(w, Plugin("zh-Hans"))
	assert.Equal(t, "已注册 3 个操作", T(w, HelpActions, 3))
}

func TestSupported(t *testing.T) {
	assert.True(t, Supported(""))
	assert.True(t, Supported("en"))
	assert.True(t, Supported("zh-CN"))
	assert.False(t, Supported("fr"))
	assert.False(t, Supported("not a tag!"))
}
