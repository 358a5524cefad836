// Command catalog ranks the persisted catalog against the persisted profile
// and prints the result, for checking what the engine will serve without
// starting it.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/mvaldez/scholarmatch/internal/catalog"
	"github.com/mvaldez/scholarmatch/internal/match"
	"github.com/mvaldez/scholarmatch/internal/models"
)

func main() {
	dataDir := flag.String("data", "data", "data directory holding the JSON documents")
	search := flag.String("search", "", "search filter")
	deadline := flag.String("deadline", "", "deadline bucket: week, month, quarter, halfyear")
	limit := flag.Int("limit", 20, "max rows to print")
	flag.Parse()

	persister, err := catalog.NewFilePersister(*dataDir)
	if err != nil {
		log.Fatalf("Failed to open data dir: %v", err)
	}
	store := catalog.NewStore(persister)

	filters := models.FilterSet{Search: *search, Deadline: *deadline}
	scholarships := store.Scholarships()
	ranked := match.Rank(scholarships, filters, store.Profile(), time.Now())
	stats := match.ComputeStats(scholarships, len(ranked))

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"Score", "Title", "Provider", "Amount", "Deadline", "Field", "Location"})
	for i, r := range ranked {
		if i >= *limit {
			break
		}
		t.AppendRow(table.Row{r.Score, r.Title, r.Provider, r.Amount, r.Deadline, r.Field, r.Location})
	}
	t.Render()

	fmt.Printf("Catalog: %d entries, $%d total, avg sentiment %.2f, %d matching\n",
		stats.TotalScholarships, stats.TotalAmount, stats.AvgSentiment, stats.Matching)
}
