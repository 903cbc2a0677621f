package main

import (
	"bufio"
	"encoding/csv"
	"flag"
	"fmt"
	"math"
	"os"
	"strconv"
)

var (
	csvFile string
)

// Reads the CSV written by "advect1d convergence" and prints the observed order of accuracy
// between each pair of successive grids.
func main() {
	csvFilePtr := flag.String("csvFile", csvFile, "file containing entries of a convergence study")
	flag.Parse()
	csvFile = *csvFilePtr
	if len(csvFile) == 0 {
		flag.Usage()
		os.Exit(1)
	}
	fmt.Printf("Input file: %v\n", csvFile)
	studies, order, err := readCSV(csvFile)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	for _, key := range order {
		cs := studies[key]
		fmt.Printf("Scheme = %s, Courant = %5.2f\n", cs.title, cs.courant)
		fmt.Printf("%8s %12s %12s %12s %8s %8s %8s\n", "Cells", "L1", "L2", "LInf", "p(L1)", "p(L2)", "p(LInf)")
		for i := range cs.numPTS {
			fmt.Printf("%8d %12.4e %12.4e %12.4e", cs.numPTS[i], cs.l1[i], cs.l2[i], cs.lInf[i])
			if i > 0 {
				fmt.Printf(" %8.3f %8.3f %8.3f",
					cs.Order(cs.l1, i), cs.Order(cs.l2, i), cs.Order(cs.lInf, i))
			}
			fmt.Println()
		}
	}
}

type ConvergenceStudy struct {
	title        string
	courant      float64
	numPTS       []int
	l1, l2, lInf []float64
}

func NewConvergenceStudy(title string, courant float64) *ConvergenceStudy {
	return &ConvergenceStudy{
		title:   title,
		courant: courant,
	}
}

func (cs *ConvergenceStudy) Add(numPTS int, l1, l2, lInf float64) {
	cs.numPTS = append(cs.numPTS, numPTS)
	cs.l1 = append(cs.l1, l1)
	cs.l2 = append(cs.l2, l2)
	cs.lInf = append(cs.lInf, lInf)
}

// Order is the observed order between entries i-1 and i of norm
func (cs *ConvergenceStudy) Order(norm []float64, i int) float64 {
	ratio := float64(cs.numPTS[i]) / float64(cs.numPTS[i-1])
	return math.Log(norm[i-1]/norm[i]) / math.Log(ratio)
}

func readCSV(csvFile string) (studies map[string]*ConvergenceStudy, order []string, err error) {
	var (
		records [][]string
		f       *os.File
		ok      bool
		cs      *ConvergenceStudy
		vals    [4]float64
	)
	studies = make(map[string]*ConvergenceStudy)
	if f, err = os.Open(csvFile); err != nil {
		return
	}
	defer f.Close()
	r := csv.NewReader(bufio.NewReader(f))
	if records, err = r.ReadAll(); err != nil {
		return
	}
	for i, rec := range records {
		if i == 0 {
			continue
		}
		if len(rec) != 6 {
			err = fmt.Errorf("line %d: expected 6 fields, have %d", i+1, len(rec))
			return
		}
		title, cellstxt := rec[0], rec[1]
		var cells int
		if cells, err = strconv.Atoi(cellstxt); err != nil {
			return
		}
		for j := range vals {
			if vals[j], err = strconv.ParseFloat(rec[j+2], 64); err != nil {
				return
			}
		}
		key := title + "@" + rec[2]
		if cs, ok = studies[key]; !ok {
			cs = NewConvergenceStudy(title, vals[0])
			studies[key] = cs
			order = append(order, key)
		}
		cs.Add(cells, vals[1], vals[2], vals[3])
	}
	return
}
