package conversion

import (
	"fmt"

	m "jdemo.dev/pkg/jdemo/internal/model"
)

// DemoName identifies the conversion demo.
const DemoName = "conversion"

// step is one printed group: a source value and the kinds it is cast to,
// in print order.
type step struct {
	source  Value
	targets []Kind
}

func demoSteps() []step {
	return []step{
		{source: IntValue(1), targets: []Kind{Long, Double, Float, Byte, Char, Short}},
		{source: LongValue(1), targets: []Kind{Int, Float, Double}},
		{source: FloatValue(1.1), targets: []Kind{Int, Long, Double}},
		{source: DoubleValue(1.1), targets: []Kind{Int, Long, Float}},
	}
}

// Section casts source to every target kind and records one line per result.
func Section(source Value, targets ...Kind) m.Section {
	section := m.Section{
		Title: fmt.Sprintf("%s - Valor Inicial: %s", source.Kind(), source),
	}

	for _, to := range targets {
		section.Add(m.Entry(to.String(), Convert(source, to).String()))
	}

	return section
}

// Demo runs the conversion walkthrough over the int, long, float and
// double scratch values.
func Demo() m.Report {
	steps := demoSteps()

	report := m.Report{
		Name:     DemoName,
		Sections: make([]m.Section, 0, len(steps)),
	}

	for _, s := range steps {
		report.Sections = append(report.Sections, Section(s.source, s.targets...))
	}

	return report
}
