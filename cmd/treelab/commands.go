package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/urfave/cli/v2"

	"github.com/katalvlaran/lvtree/bst"
	"github.com/katalvlaran/lvtree/dlist"
	"github.com/katalvlaran/lvtree/render"
)

const (
	defaultCount = 7
	defaultMax   = 100
)

var (
	deleteValues = []int{50, 30, 70, 20, 40, 60, 80}
	depthValues  = []int{50, 30, 70, 20, 40, 60, 80, 10, 25, 35, 45}
	fullValues   = []int{50, 30, 70, 20, 40, 60, 80, 10, 35, 55, 75}
)

var errBadRange = errors.New("count must be within 0..max")

var cmdRandom = &cli.Command{
	Name:  "random",
	Usage: "build a tree from distinct random values and print every traversal",
	Flags: []cli.Flag{
		&cli.IntFlag{
			Name:  "count",
			Usage: "how many values to insert",
			Value: defaultCount,
		},
		&cli.IntFlag{
			Name:  "max",
			Usage: "values are drawn from 1..max",
			Value: defaultMax,
		},
	},
	Action: func(cctx *cli.Context) error {
		faker := gofakeit.New(cctx.Int64("seed"))
		return randomReport(cctx.App.Writer, faker, cctx.Int("count"), cctx.Int("max"))
	},
}

var cmdDelete = &cli.Command{
	Name:      "delete",
	Usage:     "delete a value from the seven-node tree and show the levels before and after",
	ArgsUsage: "<value>",
	Action: func(cctx *cli.Context) error {
		arg := cctx.Args().First()
		if arg == "" {
			return fmt.Errorf("need to provide a value to delete")
		}
		v, err := strconv.Atoi(arg)
		if err != nil {
			return fmt.Errorf("value must be an integer: %w", err)
		}
		deleteReport(cctx.App.Writer, v)
		return nil
	},
}

var cmdManual = &cli.Command{
	Name:  "manual",
	Usage: "show a hand-built tree that keeps a duplicate 50 under 60",
	Action: func(cctx *cli.Context) error {
		manualReport(cctx.App.Writer)
		return nil
	},
}

var cmdDepth = &cli.Command{
	Name:  "depth",
	Usage: "report the maximum depth of an eleven-node tree",
	Action: func(cctx *cli.Context) error {
		depthReport(cctx.App.Writer)
		return nil
	},
}

var cmdFull = &cli.Command{
	Name:  "full",
	Usage: "count and list nodes that have both children",
	Action: func(cctx *cli.Context) error {
		fullReport(cctx.App.Writer)
		return nil
	},
}

var cmdSymmetric = &cli.Command{
	Name:  "symmetric",
	Usage: "check a mirrored and a lopsided tree for symmetry",
	Action: func(cctx *cli.Context) error {
		symmetricReport(cctx.App.Writer)
		return nil
	},
}

var cmdList = &cli.Command{
	Name:  "list",
	Usage: "doubly linked list, stack and queue demo",
	Action: func(cctx *cli.Context) error {
		return listReport(cctx.App.Writer)
	},
}

var cmdAll = &cli.Command{
	Name:  "all",
	Usage: "run every tree report except delete",
	Action: func(cctx *cli.Context) error {
		w := cctx.App.Writer
		faker := gofakeit.New(cctx.Int64("seed"))
		if err := randomReport(w, faker, defaultCount, defaultMax); err != nil {
			return err
		}
		manualReport(w)
		depthReport(w)
		fullReport(w)
		symmetricReport(w)
		return nil
	},
}

func header(w io.Writer, title string) {
	rule := strings.Repeat("=", 60)
	fmt.Fprintf(w, "%s\n%s\n%s\n", rule, title, rule)
}

func drawn(w io.Writer, t *bst.Tree[int]) {
	fmt.Fprintln(w, render.Of(t))
}

// distinctValues draws count distinct values from 1..maxValue.
func distinctValues(faker *gofakeit.Faker, count, maxValue int) ([]int, error) {
	if count < 0 || count > maxValue {
		return nil, fmt.Errorf("%w: count %d, max %d", errBadRange, count, maxValue)
	}
	pool := make([]int, maxValue)
	for i := range pool {
		pool[i] = i + 1
	}
	faker.ShuffleInts(pool)
	return pool[:count], nil
}

func randomReport(w io.Writer, faker *gofakeit.Faker, count, maxValue int) error {
	values, err := distinctValues(faker, count, maxValue)
	if err != nil {
		return err
	}
	slog.Debug("random values drawn", "count", count, "max", maxValue, "values", values)

	header(w, fmt.Sprintf("Tree of %d random values", count))
	fmt.Fprintf(w, "inserting: %v\n", values)
	t := bst.From(values...)
	drawn(w, t)
	fmt.Fprintf(w, "preorder:    %v\n", t.PreOrder())
	fmt.Fprintf(w, "inorder:     %v\n", t.InOrder())
	fmt.Fprintf(w, "postorder:   %v\n", t.PostOrder())
	fmt.Fprintf(w, "level-order: %v\n", t.LevelOrder())
	return nil
}

func deleteReport(w io.Writer, v int) {
	header(w, "Deleting a value")
	t := bst.From(deleteValues...)
	fmt.Fprintf(w, "inserting: %v\n", deleteValues)
	fmt.Fprintf(w, "levels before: %v\n", t.LevelOrder())
	drawn(w, t)

	if !t.Contains(v) {
		slog.Info("delete target missing", "value", v)
		fmt.Fprintf(w, "%d not found in tree\n", v)
		return
	}
	t.Delete(v)
	slog.Info("deleted value", "value", v, "depth", t.MaxDepth())
	fmt.Fprintf(w, "%d deleted\n", v)
	fmt.Fprintf(w, "levels after: %v\n", t.LevelOrder())
	drawn(w, t)
}

func manualReport(w io.Writer) {
	header(w, "Hand-built tree")
	t := bst.NewOrderedFromShape(&bst.Shape[int]{
		Value: 50,
		Left: &bst.Shape[int]{
			Value: 30,
			Left:  &bst.Shape[int]{Value: 20},
			Right: &bst.Shape[int]{Value: 40},
		},
		Right: &bst.Shape[int]{
			Value: 60,
			Left:  &bst.Shape[int]{Value: 50},
			Right: &bst.Shape[int]{Value: 70},
		},
	})
	drawn(w, t)
	fmt.Fprintf(w, "level-order: %v\n", t.LevelOrder())
}

func depthReport(w io.Writer) {
	header(w, "Maximum depth")
	t := bst.From(depthValues...)
	drawn(w, t)
	fmt.Fprintf(w, "max depth: %d\n", t.MaxDepth())
	for i, level := range t.Levels() {
		fmt.Fprintf(w, "  depth %d: %v\n", i+1, level)
	}
}

func fullReport(w io.Writer) {
	header(w, "Nodes with both children")
	t := bst.From(fullValues...)
	drawn(w, t)
	fmt.Fprintf(w, "full nodes: %d\n", t.CountFullNodes())
	for _, v := range t.FullNodes() {
		fmt.Fprintf(w, "  node %d\n", v)
	}
}

func symmetricReport(w io.Writer) {
	header(w, "Symmetry")
	leaf := func(v int) *bst.Shape[int] { return &bst.Shape[int]{Value: v} }

	mirrored := bst.NewOrderedFromShape(&bst.Shape[int]{
		Value: 1,
		Left:  &bst.Shape[int]{Value: 2, Left: leaf(3), Right: leaf(4)},
		Right: &bst.Shape[int]{Value: 2, Left: leaf(4), Right: leaf(3)},
	})
	drawn(w, mirrored)
	fmt.Fprintf(w, "symmetric: %t\n\n", mirrored.IsSymmetric())

	lopsided := bst.NewOrderedFromShape(&bst.Shape[int]{
		Value: 1,
		Left:  &bst.Shape[int]{Value: 2, Right: leaf(3)},
		Right: &bst.Shape[int]{Value: 2, Right: leaf(3)},
	})
	drawn(w, lopsided)
	fmt.Fprintf(w, "symmetric: %t\n", lopsided.IsSymmetric())
}

func listReport(w io.Writer) error {
	header(w, "Doubly linked list")
	l := dlist.FromSlice([]any{42, "hello", 3.14, true})
	fmt.Fprintf(w, "list:      %v (len %d)\n", l, l.Len())
	if err := l.Insert(2, "inserted"); err != nil {
		return err
	}
	fmt.Fprintf(w, "insert@2:  %v\n", l)
	removed, err := l.Remove(0)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "remove@0:  %v -> %v\n", removed, l)
	fmt.Fprintf(w, "index of true: %d\n", l.IndexOf(true))
	l.Reverse()
	fmt.Fprintf(w, "reversed:  %v\n", l)

	header(w, "Stack and queue")
	s := dlist.NewStack[int]()
	for _, v := range []int{1, 2, 3} {
		s.Push(v)
	}
	fmt.Fprintf(w, "stack: %v\n", s)
	top, err := s.Pop()
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "popped %d, stack: %v\n", top, s)

	q := dlist.NewQueue[string]()
	for _, v := range []string{"A", "B", "C"} {
		q.Enqueue(v)
	}
	fmt.Fprintf(w, "queue: %v\n", q)
	front, err := q.Dequeue()
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "dequeued %s, queue: %v\n", front, q)
	return nil
}
