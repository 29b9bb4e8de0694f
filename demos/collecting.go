package demos

import (
	"cmp"
	"context"
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/kbukum/streamkit/collect"
	"github.com/kbukum/streamkit/compare"
	"github.com/kbukum/streamkit/errors"
	"github.com/kbukum/streamkit/optional"
	"github.com/kbukum/streamkit/pipeline"
)

func init() {
	defaultRegistry.MustRegister(Problem{ID: 5, Slug: "collect", Title: "Collect Results", Run: runCollect})
	defaultRegistry.MustRegister(Problem{ID: 6, Slug: "dedupe-highest", Title: "Remove Duplicates Keeping the Highest", Run: runDedupeHighest})
	defaultRegistry.MustRegister(Problem{ID: 7, Slug: "flatmap", Title: "Flatten Nested Structures", Run: runFlatMap})
}

// sortedKeys lists the keys of m in ascending order.
func sortedKeys[K cmp.Ordered, V any](m map[K]V) []K {
	return slices.Sorted(maps.Keys(m))
}

func orderID(o order) string      { return o.ID }
func orderProduct(o order) string { return o.Product }
func orderPrice(o order) float64  { return o.Price }

func keepFirst[V any](existing, _ V) V { return existing }

func runCollect(ctx context.Context, env *Env) error {
	r := env.Report
	src := pipeline.FromSlice(orders())
	names := pipeline.Transform(src, orderProduct)

	r.Section("Lists and sets")
	list, err := pipeline.Aggregate(ctx, names, collect.ToList[string]())
	if err != nil {
		return err
	}
	r.Result("List", list)
	set, err := pipeline.ToSet(ctx, names)
	if err != nil {
		return err
	}
	r.Result("Distinct products", len(set))
	r.Result("Sorted set", sortedKeys(set))

	r.Section("Maps")
	byID, err := pipeline.ToMap(ctx, src, orderID, orderPrice)
	if err != nil {
		return err
	}
	r.Result("Price by order id", byID)

	if _, err := pipeline.ToMap(ctx, src, orderProduct, orderPrice); errors.Is(err, errors.ErrCodeDuplicateKey) {
		r.Result("Price by product without merge", err)
	} else if err != nil {
		return err
	}
	first, err := pipeline.ToMapMerge(ctx, src, orderProduct, orderPrice, keepFirst[float64])
	if err != nil {
		return err
	}
	r.Result("Keep first", first)
	summed, err := pipeline.ToMapMerge(ctx, src, orderProduct, orderPrice, func(a, b float64) float64 { return a + b })
	if err != nil {
		return err
	}
	r.Result("Revenue by product", summed)

	ordered, err := pipeline.Aggregate(ctx, src, collect.ToOrderedMap(orderProduct,
		func(order) int { return 1 },
		func(a, b int) int { return a + b },
	))
	if err != nil {
		return err
	}
	r.Result("Insertion-ordered keys", ordered.Keys())
	r.Result("Insertion-ordered counts", ordered.Values())

	r.Section("Joining")
	for _, j := range []struct {
		label                 string
		delim, prefix, suffix string
	}{
		{"Comma", ", ", "", ""},
		{"Bracketed", ", ", "[", "]"},
		{"Piped", " | ", "<", ">"},
	} {
		s, err := pipeline.Aggregate(ctx, names, collect.Joining(j.delim, j.prefix, j.suffix))
		if err != nil {
			return err
		}
		r.Result(j.label, s)
	}

	r.Section("Numeric collectors")
	count, err := pipeline.Aggregate(ctx, src, collect.Counting[order]())
	if err != nil {
		return err
	}
	r.Result("Counting", count)
	total, err := pipeline.Aggregate(ctx, src, collect.Summing(orderPrice))
	if err != nil {
		return err
	}
	r.Result("Summing", fmt.Sprintf("%.1f", total))
	avg, err := pipeline.Aggregate(ctx, src, collect.Averaging(orderPrice))
	if err != nil {
		return err
	}
	r.Result("Averaging", fmt.Sprintf("%.1f", avg))
	return nil
}

func productName(p product) string   { return p.Name }
func productPrice(p product) float64 { return p.Price }

// byPriceDesc orders products from most to least expensive, then by name.
func byPriceDesc() compare.Comparator[product] {
	return compare.ThenBy(compare.By(productPrice).Reversed(), productName)
}

// highestPerName keeps the most expensive product of each name, most
// expensive first.
func highestPerName(ctx context.Context, items []product) ([]product, error) {
	best, err := pipeline.ToMapMerge(ctx, pipeline.FromSlice(items), productName,
		func(p product) product { return p },
		compare.By(productPrice).Max,
	)
	if err != nil {
		return nil, err
	}
	return pipeline.Collect(ctx, pipeline.Sorted(pipeline.FromSeq(maps.Values(best)), byPriceDesc()))
}

// highestPerNameGrouped is highestPerName built from GroupingBy and MaxBy.
func highestPerNameGrouped(ctx context.Context, items []product) ([]product, error) {
	groups, err := pipeline.Aggregate(ctx, pipeline.FromSlice(items), collect.GroupingBy(productName,
		collect.CollectingAndThen(collect.MaxBy(compare.By(productPrice)), func(o optional.Optional[product]) product {
			return o.OrElse(product{})
		}),
	))
	if err != nil {
		return nil, err
	}
	return pipeline.Collect(ctx, pipeline.Sorted(pipeline.FromSeq(maps.Values(groups)), byPriceDesc()))
}

func runDedupeHighest(ctx context.Context, env *Env) error {
	r := env.Report
	items := products()
	r.Result("Input", items)

	r.Section("Merge on collision")
	best, err := highestPerName(ctx, items)
	if err != nil {
		return err
	}
	r.Result("Highest per product", best)

	r.Section("Group then pick the maximum")
	grouped, err := highestPerNameGrouped(ctx, items)
	if err != nil {
		return err
	}
	r.Result("Highest per product", grouped)

	r.Section("First occurrence only")
	firsts, err := pipeline.Collect(ctx, pipeline.DistinctBy(pipeline.FromSlice(items), productName))
	if err != nil {
		return err
	}
	r.Result("Distinct by name", firsts)
	return nil
}

func purchaseAmount(p purchase) float64 { return p.Amount }

// allPurchases flattens every customer's orders. Customers without orders
// contribute nothing.
func allPurchases(cs []customer) *pipeline.Pipeline[purchase] {
	return pipeline.FlatMapSlice(pipeline.FromSlice(cs), func(c customer) []purchase { return c.Orders })
}

func runFlatMap(ctx context.Context, env *Env) error {
	r := env.Report
	cs := customers()

	r.Section("Orders across customers")
	all, err := pipeline.Collect(ctx, allPurchases(cs))
	if err != nil {
		return err
	}
	r.Result("All orders", all)
	r.Result("Order count", len(all))

	total, err := pipeline.Sum(ctx, allPurchases(cs), purchaseAmount)
	if err != nil {
		return err
	}
	r.Result("Total amount", fmt.Sprintf("%.1f", total))

	big, err := pipeline.Collect(ctx, pipeline.Filter(allPurchases(cs), func(p purchase) bool { return p.Amount > 2000 }))
	if err != nil {
		return err
	}
	r.Result("Orders above 2000", big)

	labelled, err := pipeline.Collect(ctx, pipeline.FlatMap(pipeline.FromSlice(cs),
		func(ctx context.Context, c customer) (pipeline.Iterator[string], error) {
			inner := pipeline.Transform(pipeline.FromSlice(c.Orders), func(p purchase) string {
				return c.Name + ": " + p.ID
			})
			return inner.Iter(ctx), nil
		},
	))
	if err != nil {
		return err
	}
	r.Result("Customer orders", labelled)

	r.Section("Nested values")
	nested := [][]int{{1, 2}, {3, 4, 5}, {6}}
	flat, err := pipeline.Collect(ctx, pipeline.FlatMapSlice(pipeline.FromSlice(nested), func(xs []int) []int { return xs }))
	if err != nil {
		return err
	}
	r.Result("Flattened", flat)

	sentences := []string{"streams are lazy", "collectors are composable", "lazy streams compose"}
	words, err := pipeline.Collect(ctx, pipeline.Distinct(pipeline.FlatMapSlice(pipeline.FromSlice(sentences), strings.Fields)))
	if err != nil {
		return err
	}
	r.Result("Distinct words", words)
	return nil
}
