// Package controlflow walks through loops, a subroutine with guaranteed
// cleanup and a multi-way branch, printing every step in order.
package controlflow

import (
	"strconv"

	m "jdemo.dev/pkg/jdemo/internal/model"
)

// DemoName identifies the control-flow demo.
const DemoName = "jump"

// Printed messages.
const (
	LoopDoneMessage  = "Goto funcionando"
	RightMessage     = "Retorno correto"
	WrongMessage     = "Retorno errado"
	CleanupMessage   = "Jsr e ret funcionando"
	DefaultCaseLabel = "default"
)

// Section titles. "Tabbleswitch" is printed as spelled.
const (
	loopTitle       = "Teste GOTO"
	subroutineTitle = "Teste jsr e ret"
	branchTitle     = "Teste Tabbleswitch"
)

const (
	countLimit  = 10
	branchValue = 2
)

// Printer receives console lines in order.
type Printer interface {
	Println(text string)
}

// CountWhile prints 0 through limit-1 using a condition-only loop.
func CountWhile(p Printer, limit int) {
	i := 0
	for i < limit {
		p.Println(strconv.Itoa(i))
		i++
	}
}

// CountFor prints 0 through limit-1 using a three-clause loop.
func CountFor(p Printer, limit int) {
	for i := 0; i < limit; i++ {
		p.Println(strconv.Itoa(i))
	}
}

// Subroutine returns 1 when ok is true and 0 otherwise. The cleanup line is
// printed exactly once on every return path, after the branch message and
// before the caller sees the result.
func Subroutine(p Printer, ok bool) int32 {
	defer p.Println(CleanupMessage)

	if ok {
		p.Println(RightMessage)
		return 1
	}

	p.Println(WrongMessage)

	return 0
}

// Branch selects one of the cases 1 to 4, or the default, prints
// "<case> <value>" and returns the selected case label.
func Branch(p Printer, value int32) string {
	var label string

	switch value {
	case 1:
		label = "1"
	case 2:
		label = "2"
	case 3:
		label = "3"
	case 4:
		label = "4"
	default:
		label = DefaultCaseLabel
	}

	p.Println(label + " " + strconv.FormatInt(int64(value), 10))

	return label
}

// Demo runs both loops, the subroutine with a true argument and the branch
// on the value 2.
func Demo() m.Report {
	loops := m.Section{Title: loopTitle}
	CountWhile(&loops, countLimit)
	CountFor(&loops, countLimit)
	loops.Println(LoopDoneMessage)

	subroutine := m.Section{Title: subroutineTitle}
	Subroutine(&subroutine, true)

	branch := m.Section{Title: branchTitle}
	Branch(&branch, branchValue)

	return m.Report{
		Name:     DemoName,
		Sections: []m.Section{loops, subroutine, branch},
	}
}
