package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/uberbrodt/postuple/tuple"
)

type scenario struct {
	name string
	run  func(w io.Writer, opts []tuple.BuildOpt) error
}

var scenarios = []scenario{
	{"A", scenarioA},
	{"B", scenarioB},
	{"C", scenarioC},
}

// runScenarios prints each scenario's slots. A construction the strict
// contract refuses is printed, not returned.
func runScenarios(w io.Writer, permissive bool) error {
	var opts []tuple.BuildOpt
	if permissive {
		opts = append(opts, tuple.Permissive())
	}

	for _, s := range scenarios {
		fmt.Fprintf(w, "scenario %s:\n", s.name)
		err := s.run(w, opts)
		if rejected(err) {
			fmt.Fprintf(w, "  rejected: %v\n", err)
			continue
		}
		if err != nil {
			return fmt.Errorf("scenario %s: %w", s.name, err)
		}
	}
	return nil
}

func rejected(err error) bool {
	return errors.Is(err, tuple.ErrMissingIndex) ||
		errors.Is(err, tuple.ErrDuplicateIndex) ||
		errors.Is(err, tuple.ErrShapeMismatch)
}

func scenarioA(w io.Writer, opts []tuple.BuildOpt) error {
	raw, err := tuple.NewBuilder(tuple.Shape4[bool, rune, float64, int](), opts...).
		Add(tuple.At(1, false), tuple.At(3, 3.14), tuple.At(2, 'm')).
		Build()
	if err != nil {
		return err
	}
	t, err := tuple.Wrap4[bool, rune, float64, int](raw)
	if err != nil {
		return err
	}
	defer t.Release()

	b, err := t.Slot1().Peek()
	if err != nil {
		return err
	}
	c, err := t.Slot2().Peek()
	if err != nil {
		return err
	}
	d, err := t.Slot3().Peek()
	if err != nil {
		return err
	}
	i, err := t.Slot4().Peek()
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "  1: %t\n  2: %c\n  3: %g\n  4: %d\n", b, c, d, i)
	return nil
}

func scenarioB(w io.Writer, opts []tuple.BuildOpt) error {
	raw, err := tuple.NewBuilder(tuple.Shape3[bool, int16, string](), opts...).
		Add(tuple.At(1, false), tuple.At(2, 4), tuple.At(3, "pink pig")).
		Build()
	if err != nil {
		return err
	}
	t, err := tuple.Wrap3[bool, int16, string](raw)
	if err != nil {
		return err
	}
	defer t.Release()

	if err := t.Slot3().Set("black dog"); err != nil {
		return err
	}
	s, err := t.Slot3().Take()
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "  3: %s\n", s)
	return nil
}

func scenarioC(w io.Writer, opts []tuple.BuildOpt) error {
	d := 3.0
	raw, err := tuple.NewBuilder(tuple.Shape6[int, int, int, *float64, string, bool](), opts...).
		Add(tuple.At(4, &d)).
		Build()
	if err != nil {
		return err
	}
	t, err := tuple.Wrap6[int, int, int, *float64, string, bool](raw)
	if err != nil {
		return err
	}
	defer t.Release()

	p, err := t.Slot4().Peek()
	if err != nil {
		return err
	}
	if err := t.Slot5().Set("ciao"); err != nil {
		return err
	}
	s, err := t.Slot5().Take()
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "  4: -> %g\n  5: %s\n", *p, s)
	return nil
}
