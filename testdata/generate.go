package main

import (
	"encoding/csv"
	"log"
	"os"
	"strconv"

	"github.com/klauspost/compress/gzip"
	"github.com/parquet-go/parquet-go"
)

type Phone struct {
	Name   string  `parquet:"name"`
	Brand  string  `parquet:"brand"`
	Price  int64   `parquet:"price"`
	Rating float64 `parquet:"rating"`
}

var phones = []Phone{
	{Name: "iphone 15 pro", Brand: "apple", Price: 999, Rating: 4.9},
	{Name: "galaxy s23 ultra", Brand: "samsung", Price: 1199, Rating: 4.8},
	{Name: "redmi note 12", Brand: "xiaomi", Price: 199, Rating: 4.6},
	{Name: "poco x5 pro", Brand: "xiaomi", Price: 299, Rating: 4.4},
	{Name: "c4", Brand: "xiaomi", Price: 1000, Rating: 5.0},
}

func records() [][]string {
	out := [][]string{{"name", "brand", "price", "rating"}}
	for _, p := range phones {
		rating := strconv.FormatFloat(p.Rating, 'f', 1, 64)
		out = append(out, []string{p.Name, p.Brand, strconv.FormatInt(p.Price, 10), rating})
	}
	return out
}

func writeCSV(path string, gzipped bool) {
	file, err := os.Create(path)
	if err != nil {
		log.Fatal(err)
	}
	defer file.Close()

	var w *csv.Writer
	if gzipped {
		zw := gzip.NewWriter(file)
		defer zw.Close()
		w = csv.NewWriter(zw)
	} else {
		w = csv.NewWriter(file)
	}
	if err := w.WriteAll(records()); err != nil {
		log.Fatal(err)
	}
}

func writeParquet(path string) {
	file, err := os.Create(path)
	if err != nil {
		log.Fatal(err)
	}
	defer file.Close()

	writer := parquet.NewGenericWriter[Phone](file)
	defer writer.Close()

	if _, err := writer.Write(phones); err != nil {
		log.Fatal(err)
	}
}

func main() {
	writeCSV("phones.csv", false)
	writeCSV("phones.csv.gz", true)
	writeParquet("phones.parquet")

	log.Printf("Generated phones.csv, phones.csv.gz and phones.parquet with %d phones", len(phones))
}
