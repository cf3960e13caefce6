// Command seekbench is the interactive driver for the search benchmark
// library. It owns the dataset handle, all console formatting, and raw-input
// validation; the core packages stay pure and only ever see a slice plus a
// target value.
package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/seekbench/bench"
	"github.com/katalvlaran/seekbench/dataset"
	"github.com/katalvlaran/seekbench/nearest"
	"github.com/katalvlaran/seekbench/search"
)

// Default random-generation parameters, matching the benchmark convention of
// a million unique elements spread over ten million candidate values.
const (
	defaultGenCount = 1_000_000
	defaultGenMin   = 1
	defaultGenMax   = 10_000_000
)

func main() {
	in := bufio.NewScanner(os.Stdin)
	var data dataset.Dataset

	for {
		printMenu()
		choice, ok := promptInt(in, "> Enter choice: ")
		if !ok {
			return // stdin closed
		}

		switch choice {
		case 1:
			data = loadDataset(in, data)
		case 2:
			data = generateDataset(data)
		case 3:
			runSearch(in, data, search.JumpSearch)
		case 4:
			runSearch(in, data, search.InterpolationSearch)
		case 5:
			saveDataset(in, data)
		case 6:
			fmt.Println("Exiting. Goodbye!")

			return
		default:
			fmt.Println("Invalid choice. Please enter a number between 1 and 6.")
		}
	}
}

func printMenu() {
	fmt.Println()
	fmt.Println("-------------------------------------------------")
	fmt.Println("|     Search Algorithm Performance Study        |")
	fmt.Println("-------------------------------------------------")
	fmt.Println("| 1. Load Dataset from File                     |")
	fmt.Println("| 2. Generate Random Dataset                    |")
	fmt.Println("| 3. Search (Jump Search)                       |")
	fmt.Println("| 4. Search (Interpolation Search)              |")
	fmt.Println("| 5. Save Dataset to File                       |")
	fmt.Println("| 6. Exit                                       |")
	fmt.Println("-------------------------------------------------")
}

// promptInt keeps asking until a line parses as an integer.
// The second return is false once stdin is exhausted.
func promptInt(in *bufio.Scanner, prompt string) (int, bool) {
	for {
		fmt.Print(prompt)
		if !in.Scan() {
			return 0, false
		}
		v, err := strconv.Atoi(strings.TrimSpace(in.Text()))
		if err != nil {
			fmt.Println("Invalid input. Please enter a valid integer.")
			continue
		}

		return v, true
	}
}

// promptLine reads one non-empty line, or returns false on EOF.
func promptLine(in *bufio.Scanner, prompt string) (string, bool) {
	for {
		fmt.Print(prompt)
		if !in.Scan() {
			return "", false
		}
		if text := strings.TrimSpace(in.Text()); text != "" {
			return text, true
		}
	}
}

// loadDataset ingests a file and returns the new dataset, or the previous
// one unchanged when the load fails.
func loadDataset(in *bufio.Scanner, prev dataset.Dataset) dataset.Dataset {
	path, ok := promptLine(in, "> Enter file path: ")
	if !ok {
		return prev
	}

	d, stats, err := dataset.LoadFile(path)
	for _, w := range stats.Warnings {
		if errors.Is(w.Err, strconv.ErrRange) {
			fmt.Printf("Warning: line %d: number out of range: %q. Skipping.\n", w.Line, w.Text)
		} else {
			fmt.Printf("Warning: line %d: %q is not a valid integer. Skipping.\n", w.Line, w.Text)
		}
	}
	if err != nil {
		fmt.Println("Error:", err)

		return prev
	}

	fmt.Printf("Dataset loaded and sorted: %d unique elements (%d parsed, %d duplicates removed).\n",
		stats.Size, stats.Parsed, stats.Duplicates)

	return d
}

func generateDataset(prev dataset.Dataset) dataset.Dataset {
	d, err := dataset.Generate(defaultGenCount, defaultGenMin, defaultGenMax)
	if err != nil {
		fmt.Println("Error:", err)

		return prev
	}
	fmt.Printf("Dataset generated and sorted: %d unique elements in [%d, %d].\n",
		len(d), defaultGenMin, defaultGenMax)

	return d
}

func saveDataset(in *bufio.Scanner, data dataset.Dataset) {
	if len(data) == 0 {
		fmt.Println("No dataset loaded! Please load or generate a dataset first.")

		return
	}
	path, ok := promptLine(in, "> Enter file path: ")
	if !ok {
		return
	}
	if err := dataset.SaveFile(path, data); err != nil {
		fmt.Println("Error:", err)

		return
	}
	fmt.Printf("Dataset saved: %d values to %s.\n", len(data), path)
}

// runSearch times the chosen strategy over the current dataset and prints
// the outcome; on a miss it adds the closest-values context.
func runSearch(in *bufio.Scanner, data dataset.Dataset, s search.Strategy) {
	if len(data) == 0 {
		fmt.Println("No dataset loaded! Please load or generate a dataset first.")

		return
	}
	target, ok := promptInt(in, "> Enter value to search: ")
	if !ok {
		return
	}

	res, avg, err := bench.Average(s, data, target, bench.DefaultTrials)
	if err != nil {
		fmt.Println("Error:", err)

		return
	}

	if res.Found {
		fmt.Printf("Value %d found at index %d.\n", target, res.Index)
	} else {
		fmt.Printf("Value %d not found.\n", target)
		if closest := nearest.Closest(data, target); len(closest) > 0 {
			fmt.Println("Closest values in the dataset:")
			for _, v := range closest {
				fmt.Printf("%d ", v)
			}
			fmt.Println()
		}
	}
	fmt.Printf("%s Time (avg of %d runs): %.3f ms\n", s, bench.DefaultTrials, avg.Seconds()*1e3)
}
