package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/botwire/botwire/codec"
)

var (
	typeNameStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#87CEEB"))

	fieldStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	scalarStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA"))

	memberStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F4D06F"))

	unknownStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

func stdoutIsTTY() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// renderValue prints a decoded value as an indented tree. Styling is
// applied only when styled is true; piped output stays plain.
func renderValue(v *codec.Value, styled bool) string {
	r := &renderer{styled: styled}
	var b strings.Builder
	r.write(&b, v, 0)
	b.WriteByte('\n')
	return b.String()
}

type renderer struct {
	styled bool
}

func (r *renderer) style(s lipgloss.Style, text string) string {
	if !r.styled {
		return text
	}
	return s.Render(text)
}

func (r *renderer) write(b *strings.Builder, v *codec.Value, depth int) {
	indent := strings.Repeat("  ", depth)

	switch v.Kind() {
	case codec.ValBool:
		b.WriteString(r.style(scalarStyle, strconv.FormatBool(v.Bool())))
	case codec.ValInt:
		b.WriteString(r.style(scalarStyle, strconv.FormatInt(v.Int(), 10)))
	case codec.ValFloat:
		b.WriteString(r.style(scalarStyle, strconv.FormatFloat(v.Float(), 'g', -1, 64)))
	case codec.ValString:
		b.WriteString(r.style(scalarStyle, strconv.Quote(v.Str())))
	case codec.ValEnum:
		b.WriteString(r.style(scalarStyle, v.Str()))
		b.WriteString(r.style(unknownStyle, " ("+v.TypeName()+")"))

	case codec.ValSeq:
		if v.Len() == 0 {
			b.WriteString("[]")
			return
		}
		b.WriteString("[\n")
		for i := 0; i < v.Len(); i++ {
			b.WriteString(indent)
			b.WriteString("  ")
			r.write(b, v.At(i), depth+1)
			b.WriteByte('\n')
		}
		b.WriteString(indent)
		b.WriteByte(']')

	case codec.ValEntity:
		b.WriteString(r.style(typeNameStyle, v.TypeName()))
		b.WriteString(" {\n")
		for _, name := range v.FieldNames() {
			f, _ := v.Field(name)
			b.WriteString(indent)
			b.WriteString("  ")
			b.WriteString(r.style(fieldStyle, name))
			b.WriteString(": ")
			r.write(b, f, depth+1)
			b.WriteByte('\n')
		}
		if unknown := v.Unknown(); len(unknown) > 0 {
			b.WriteString(indent)
			b.WriteString("  ")
			b.WriteString(r.style(unknownStyle, fmt.Sprintf("(+%d undeclared)", len(unknown))))
			b.WriteByte('\n')
		}
		b.WriteString(indent)
		b.WriteByte('}')

	case codec.ValVariant:
		// Rendered as group/member so the resolution is visible.
		b.WriteString(r.style(memberStyle, v.TypeName()+"/"))
		r.write(b, v.MemberValue(), depth)
	}
}
