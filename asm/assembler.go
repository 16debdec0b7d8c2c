package asm

import (
	"bufio"
	"io"
	"log"
	"maps"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"unicode"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/renik/symcode/machine"
)

// Predefined system equates
var sysEquate = map[string]string{
	"LINENO": "0",
}

// Assembler is a single pass assembler for the machine's instruction
// set.
type Assembler struct {
	Verbose bool     // If set, verbosely logs the assembler actions.
	Opcode  []Opcode // List of generated opcodes.

	predefine map[string]string // Predefines
	Label     map[string]int    // Map of labels to cell addresses.
	Equate    map[string]string // Map of equates.

	links []link // Label references awaiting the final link pass.
}

// link records a cell to be patched with a label's address.
type link struct {
	opcode int // Index into Opcode.
	cell   int // Index into the opcode's Cells.
	label  string
}

// Predefine defines a new equate or redefines an existing equate.
func (asm *Assembler) Predefine(equ string, value string) {
	if asm.predefine == nil {
		asm.predefine = map[string]string{equ: value}
	} else {
		asm.predefine[equ] = value
	}
}

// mnemonic describes one instruction: its opcode, its operand count,
// and which operand (1 based) is a write destination, 0 for none.
type mnemonic struct {
	op    machine.Opcode
	args  int
	write int
}

var opMap = map[string]mnemonic{
	"add":  {op: machine.OP_ADD, args: 3, write: 3},
	"mul":  {op: machine.OP_MUL, args: 3, write: 3},
	"in":   {op: machine.OP_IN, args: 1, write: 1},
	"out":  {op: machine.OP_OUT, args: 1},
	"jnz":  {op: machine.OP_JNZ, args: 2},
	"jz":   {op: machine.OP_JZ, args: 2},
	"lt":   {op: machine.OP_LT, args: 3, write: 3},
	"eq":   {op: machine.OP_EQ, args: 3, write: 3},
	"arb":  {op: machine.OP_ARB, args: 1},
	"halt": {op: machine.OP_HALT},
}

// isLabel reports whether word is a valid label name.
func isLabel(word string) bool {
	for n, r := range word {
		switch {
		case r == '_', unicode.IsLetter(r):
		case n > 0 && unicode.IsDigit(r):
		default:
			return false
		}
	}

	return len(word) > 0
}

// parseOperand splits an operand word into its addressing mode and its
// value. A '#' prefix selects immediate mode, '@' relative, bare words
// are position mode. A non-numeric word is a label reference, patched
// during the final link pass.
func parseOperand(word string) (mode machine.Mode, value int64, label string, err error) {
	switch {
	case strings.HasPrefix(word, "#"):
		mode = machine.MODE_IMMEDIATE
		word = word[1:]
	case strings.HasPrefix(word, "@"):
		mode = machine.MODE_RELATIVE
		word = word[1:]
	}

	value, err = strconv.ParseInt(word, 0, 64)
	if err == nil {
		return
	}

	if isLabel(word) {
		label = word
		err = nil
		return
	}

	err = ErrParseNumber(word)

	return
}

// parenEval does compile-time $(...) evaluations.
func (asm *Assembler) parenEval(expr string) (value int64, err error) {
	thread := starlark.Thread{}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{}
	for key, str := range asm.Equate {
		v64, _err := strconv.ParseInt(str, 0, 64)
		if _err != nil {
			// Ignore non-integer equates. They may be labels
			// or something else.
			continue
		}
		pred[key] = starlark.MakeInt64(v64)
	}
	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, pred)
	if err != nil {
		return
	}
	st_rc, ok := dict["rc"]
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	st_int, ok := st_rc.(starlark.Int)
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	value, ok = st_int.Int64()
	if !ok {
		err = ErrParseExpression(expr)
	}

	return
}

// parseLine expands a single line into substituted words, handling
// .equ definitions and label definitions along the way.
func (asm *Assembler) parseLine(line string, lineno int) (words []string, err error) {
	// Set line number.
	asm.Equate["LINENO"] = strconv.Itoa(lineno)

	// Do $() evaluations
	re := regexp.MustCompile(`\$\([^\$]*\)`)
	line = re.ReplaceAllStringFunc(line, func(str string) string {
		value, _err := asm.parenEval(str[2 : len(str)-1])
		if _err != nil {
			err = _err
		}
		return strconv.FormatInt(value, 10)
	})
	if err != nil {
		return
	}

	words = strings.Fields(line)

	if len(words) == 0 {
		return
	}

	// .equ CONST VALUE
	if words[0] == ".equ" {
		if len(words) != 3 {
			err = ErrEquateSyntax
			return
		}
		_, ok := asm.Equate[words[1]]
		if ok {
			err = ErrEquateDuplicate
			return
		}
		asm.Equate[words[1]] = words[2]
		words = words[:0]
		return
	}

	for n, word := range words {
		// Check for equate next
		equate, ok := asm.Equate[word]
		if ok {
			words[n] = equate
		}
	}

	for strings.HasSuffix(words[0], ":") {
		label := words[0][:len(words[0])-1]
		_, ok := asm.Label[label]
		if ok {
			err = ErrLabelDuplicate
			return
		}

		if asm.Label == nil {
			asm.Label = make(map[string]int, 16)
		}
		asm.Label[label] = asm.currentAddr()
		words = words[1:]
		if len(words) == 0 {
			return
		}
	}

	return
}

// currentAddr gets the cell address following the last opcode.
func (asm *Assembler) currentAddr() int {
	if len(asm.Opcode) == 0 {
		return 0
	}

	last := asm.Opcode[len(asm.Opcode)-1]

	return last.Addr + len(last.Cells)
}

// parseWords assembles the words of a line into an opcode.
func (asm *Assembler) parseWords(words []string, lineno int) (err error) {
	// no-op
	if len(words) == 0 {
		return
	}

	initial_words := words
	name := words[0]
	words = words[1:]
	index := len(asm.Opcode)

	var cells []int64

	defer func() {
		if err != nil || len(cells) == 0 {
			return
		}
		opcode := Opcode{LineNo: lineno, Addr: asm.currentAddr(), Words: initial_words, Cells: cells}
		asm.Opcode = append(asm.Opcode, opcode)
	}()

	// .data VALUE...
	if name == ".data" {
		if len(words) == 0 {
			err = ErrValueMissing
			return
		}
		for n, word := range words {
			var value int64
			value, err = strconv.ParseInt(word, 0, 64)
			if err != nil {
				if !isLabel(word) {
					err = ErrParseNumber(word)
					return
				}
				err = nil
				asm.links = append(asm.links, link{opcode: index, cell: n, label: word})
			}
			cells = append(cells, value)
		}
		return
	}

	mn, ok := opMap[name]
	if !ok {
		err = ErrOpcodeInvalid
		return
	}
	if len(words) < mn.args {
		err = ErrValueMissing
		return
	}
	if len(words) > mn.args {
		err = ErrExtraArgs
		return
	}

	cells = append(cells, int64(mn.op))
	scale := int64(100)
	for n, word := range words {
		var mode machine.Mode
		var value int64
		var label string
		mode, value, label, err = parseOperand(word)
		if err != nil {
			return
		}
		if mode == machine.MODE_IMMEDIATE && n+1 == mn.write {
			err = ErrDestImmediate
			return
		}
		cells[0] += scale * int64(mode)
		scale *= 10
		if len(label) > 0 {
			asm.links = append(asm.links, link{opcode: index, cell: n + 1, label: label})
		}
		cells = append(cells, value)
	}

	return
}

// Parse parses an input stream into a Program containing opcodes.
func (asm *Assembler) Parse(input io.Reader) (prog *Program, err error) {
	scanner := bufio.NewScanner(input)

	var line string
	var lineno int

	defer func() {
		if err != nil {
			err = &ErrSyntax{LineNo: lineno, Line: line, Err: err}
		}
	}()

	clear(asm.Label)
	asm.Opcode = asm.Opcode[:0]
	asm.links = asm.links[:0]
	asm.Equate = maps.Clone(sysEquate)
	for attr, val := range asm.predefine {
		asm.Equate[attr] = val
	}

	for scanner.Scan() {
		text := scanner.Text()
		lineno += 1

		if asm.Verbose {
			log.Printf("asm: %v: %v", lineno, text)
		}

		text_comment := strings.Split(text, ";")
		line = strings.TrimSpace(text_comment[0])

		var words []string
		words, err = asm.parseLine(line, lineno)
		if err != nil {
			return
		}

		err = asm.parseWords(words, lineno)
		if err != nil {
			return
		}
	}

	// Final linking of labels.
	for _, l := range asm.links {
		addr, ok := asm.Label[l.label]
		if !ok {
			err = ErrLabelMissing(l.label)
			return
		}
		asm.Opcode[l.opcode].Cells[l.cell] = int64(addr)
	}

	prog = &Program{
		Opcodes: slices.Clone(asm.Opcode),
	}

	return
}
