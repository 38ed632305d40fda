// Package sample generates demo datasets exercising every semantic type the
// inference engine can detect, including realistic null noise.
package sample

import (
	"math/rand"
	"strconv"
	"time"

	"github.com/brianvoe/gofakeit/v6"

	"sqlforge/internal/dataset"
)

// nullTokens is the noise vocabulary injected at the configured rate. Mixing
// spellings keeps demo data honest about real CSV exports.
var nullTokens = []string{"", "NULL", "N/A", "none"}

// Options controls dataset generation.
type Options struct {
	Rows     int
	NullRate float64 // per-cell probability of a null token, 0..1
	Seed     int64   // 0 seeds from the clock
}

// Generate returns a dataset with one column per semantic type. The id
// column stays sequential and never null so generated DDL shows both
// nullability outcomes. A non-zero seed makes the output reproducible.
func Generate(opts Options) dataset.Dataset {
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	faker := gofakeit.New(seed)
	rng := rand.New(rand.NewSource(seed))

	rate := opts.NullRate
	if rate < 0 {
		rate = 0
	}
	if rate > 1 {
		rate = 1
	}

	n := opts.Rows
	if n < 0 {
		n = 0
	}

	end := time.Now()
	start := end.AddDate(-1, 0, 0)

	headers := []string{"id", "name", "email", "phone", "website", "signup_date", "active", "score", "balance"}
	rows := make([][]string, 0, n)
	for i := 0; i < n; i++ {
		row := []string{
			strconv.Itoa(i + 1),
			faker.Name(),
			faker.Email(),
			faker.PhoneFormatted(),
			faker.URL(),
			faker.DateRange(start, end).Format("2006-01-02"),
			strconv.FormatBool(faker.Bool()),
			strconv.FormatFloat(faker.Price(1, 100), 'f', 2, 64),
			"$" + strconv.FormatFloat(faker.Price(1, 1000), 'f', 2, 64),
		}
		for c := 1; c < len(row); c++ {
			if rng.Float64() < rate {
				row[c] = nullTokens[rng.Intn(len(nullTokens))]
			}
		}
		rows = append(rows, row)
	}
	return dataset.Dataset{Headers: headers, Rows: rows}
}
