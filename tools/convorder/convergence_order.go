// Command convorder fits convergence rates to the CSV tables emitted by the
// experiment drivers. Each record is one study row: title, N, then one or
// more error columns. For every title it reports the least squares slope of
// log10(error) against N (spectral rate, digits per node) and against
// log10(N) (algebraic order).
package main

import (
	"bufio"
	"encoding/csv"
	"flag"
	"fmt"
	"math"
	"os"
	"sort"
	"strconv"

	"gonum.org/v1/gonum/stat"
)

var (
	csvFile string
)

func main() {
	csvFilePtr := flag.String("csvFile", csvFile, "file containing entries of a convergence study")
	flag.Parse()
	csvFile = *csvFilePtr
	if len(csvFile) == 0 {
		flag.Usage()
		os.Exit(1)
	}
	fmt.Printf("Input file: %v\n", csvFile)
	studies := readCSV(csvFile)
	titles := make([]string, 0, len(studies))
	for title := range studies {
		titles = append(titles, title)
	}
	sort.Strings(titles)
	for _, title := range titles {
		cs := studies[title]
		fmt.Printf("Title = %s\n", title)
		for col := range cs.errs {
			fmt.Printf("column %d: %6.3f digits/node (spectral), order %6.2f (algebraic)\n",
				col+1, -cs.spectralRate(col), -cs.algebraicOrder(col))
		}
	}
}

type ConvergenceStudy struct {
	title string
	numN  []float64
	errs  [][]float64 // one slice per error column
}

func (cs *ConvergenceStudy) Add(n float64, errs []float64) {
	cs.numN = append(cs.numN, n)
	if cs.errs == nil {
		cs.errs = make([][]float64, len(errs))
	}
	for i, e := range errs {
		cs.errs[i] = append(cs.errs[i], e)
	}
}

func (cs *ConvergenceStudy) spectralRate(col int) float64 {
	_, slope := stat.LinearRegression(cs.numN, logs(cs.errs[col]), nil, false)
	return slope
}

func (cs *ConvergenceStudy) algebraicOrder(col int) float64 {
	_, slope := stat.LinearRegression(logs(cs.numN), logs(cs.errs[col]), nil, false)
	return slope
}

func logs(v []float64) (r []float64) {
	r = make([]float64, len(v))
	for i, val := range v {
		r[i] = math.Log10(val + 1.e-17)
	}
	return
}

func readCSV(csvFile string) (studies map[string]*ConvergenceStudy) {
	studies = make(map[string]*ConvergenceStudy)
	f, err := os.Open(csvFile)
	if err != nil {
		panic(err)
	}
	defer f.Close()
	r := csv.NewReader(bufio.NewReader(f))
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		panic(err)
	}
	for i, rec := range records {
		if i == 0 || len(rec) < 3 {
			continue
		}
		title := rec[0]
		n, err := strconv.ParseFloat(rec[1], 64)
		if err != nil {
			panic(err)
		}
		var errs []float64
		for _, field := range rec[2:] {
			var e float64
			if _, err = fmt.Sscanf(field, "%f", &e); err != nil {
				panic(err)
			}
			errs = append(errs, e)
		}
		cs, ok := studies[title]
		if !ok {
			cs = &ConvergenceStudy{title: title}
			studies[title] = cs
		}
		cs.Add(n, errs)
	}
	return
}
