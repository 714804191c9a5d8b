// Package disasm renders instruction words as text.
package disasm

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"

	"github.com/ezrec/ucsynth/inst"
)

// Line renders one word as its hex value followed by its disassembly.
func Line(w inst.Word) string {
	return fmt.Sprintf("%v  %v", w, w.Decode())
}

// Listing writes a numbered listing of instruction words.
type Listing struct {
	Output io.Writer // Destination of the listing.
	Color  bool      // If set, colorizes each line by opcode class.

	classColor map[inst.CodeClass]*color.Color
}

// NewListing creates a listing writing to out.
func NewListing(out io.Writer, colorize bool) (lst *Listing) {
	lst = &Listing{
		Output: out,
		Color:  colorize,
		classColor: map[inst.CodeClass]*color.Color{
			inst.CLASS_CONTROL:  color.New(color.FgWhite),
			inst.CLASS_SCALED:   color.New(color.FgCyan),
			inst.CLASS_SHAPED:   color.New(color.FgBlue),
			inst.CLASS_OUTPUT:   color.New(color.FgGreen),
			inst.CLASS_RESERVED: color.New(color.FgRed),
		},
	}

	return
}

// sprint renders text in the color of a class.
func (lst *Listing) sprint(class inst.CodeClass, text string) string {
	c, ok := lst.classColor[class]
	if !ok {
		return text
	}

	if lst.Color {
		c.EnableColor()
	} else {
		c.DisableColor()
	}

	return c.Sprint(text)
}

// Write writes the listing of words, one per line.
func (lst *Listing) Write(words []inst.Word) (err error) {
	_, err = fmt.Fprintf(lst.Output, ";;\n;; Disassembly (%d words)\n;;\n", len(words))
	if err != nil {
		return
	}

	for n, w := range words {
		text := fmt.Sprintf("%4d: %v", n, Line(w))
		_, err = fmt.Fprintln(lst.Output, lst.sprint(w.Class(), text))
		if err != nil {
			return
		}
	}

	return
}

// ParseWord parses a word in hex, with or without a 0x prefix.
func ParseWord(text string) (w inst.Word, err error) {
	digits := strings.TrimPrefix(strings.ToLower(text), "0x")
	value, err := strconv.ParseUint(digits, 16, 16)
	if err != nil {
		err = ErrParseWord(text)
		return
	}

	w = inst.Word(value)
	return
}

// ReadWords parses whitespace separated hex words, ignoring ';' comments.
func ReadWords(input io.Reader) (words []inst.Word, err error) {
	scanner := bufio.NewScanner(input)

	lineno := 0
	for scanner.Scan() {
		lineno++
		line := strings.Split(scanner.Text(), ";")[0]
		for _, field := range strings.Fields(line) {
			var w inst.Word
			w, err = ParseWord(field)
			if err != nil {
				err = &ErrLine{LineNo: lineno, Err: err}
				return
			}
			words = append(words, w)
		}
	}

	err = scanner.Err()
	return
}
