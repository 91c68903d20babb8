// ABOUTME: Basic example showing a pricing run with the OpenCosts library
// ABOUTME: Demonstrates minimal configuration, grouping and CSV output

package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	opencosts "opencosts-api/opencosts-lib"
)

func main() {
	client, err := opencosts.NewClient(
		opencosts.WithTimeout(20*time.Second),
		opencosts.WithLogger(opencosts.DefaultLogger("warn")),
	)
	if err != nil {
		log.Fatal("Failed to create client:", err)
	}

	snapshot, err := client.Run(context.Background(), []string{"Sonnet 4", "Kimi K2"})
	if err != nil {
		log.Fatalf("Run failed: %v", err)
	}

	for _, author := range client.Group(snapshot.Rows) {
		fmt.Printf("%s\n", author.Name)
		for _, model := range author.Models {
			fmt.Printf("  %s: %d providers, avg in %s, avg out %s\n",
				model.Name, len(model.Providers), model.Prices.AverageInputPrice, model.Prices.AverageOutputPrice)
		}
	}

	if err := client.WriteCSV(os.Stdout, snapshot.Rows, true); err != nil {
		log.Fatal(err)
	}
}
