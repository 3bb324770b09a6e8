package table

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestFormatPadsColumns(t *testing.T) {
	rows := [][]string{
		{"quit", "Quit the application"},
		{"basic.log_clicked", "Log a click"},
	}
	got := Format(rows, []Alignment{AlignLeft, AlignLeft})
	assert.Equal(t, []string{
		"quit               Quit the application",
		"basic.log_clicked  Log a click",
	}, got)
}

func TestFormatRightAlign(t *testing.T) {
	got := Format([][]string{{"1", "a"}, {"100", "b"}}, []Alignment{AlignRight})
	assert.Equal(t, []string{"  1  a", "100  b"}, got)
}

func TestFormatIgnoresEscapeSequences(t *testing.T) {
	styled := lipgloss.NewStyle().Bold(true).Render("ab")
	got := Format([][]string{{styled, "x"}, {"abcd", "y"}}, nil)
	assert.Equal(t, styled+"    x", got[0])
	assert.Equal(t, "abcd  y", got[1])
}

func TestFormatEmpty(t *testing.T) {
	assert.Nil(t, Format(nil, nil))
}
