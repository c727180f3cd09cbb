// Command lvmine mines frequent itemsets and association rules from
// transaction files.
//
//	lvmine mine     -i baskets.csv -s 3
//	lvmine rules    -i baskets.csv -s 3 -c 0.6
//	lvmine tree     -i baskets.csv -s 3 --dot
//	lvmine generate -n 1000 --items 20 --seed 42 -o csv
package main

import (
	"context"
	"os"
	"os/signal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
