// SPDX-License-Identifier: GPL-3.0-only

package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"celgen-server/commons/ddd"
	"celgen-server/export"
	"celgen-server/generator"

	"github.com/nyaruka/phonenumbers"
)

func main() {
	var (
		count    int
		modeFlag string
		dddFlag  string
		outBase  string
		selftest bool
	)
	flag.IntVar(&count, "count", 0, "How many numbers to generate (prompted when omitted)")
	flag.StringVar(&modeFlag, "mode", "", "Generation mode: ddd or all (prompted when omitted)")
	flag.StringVar(&dddFlag, "ddd", "", "Area code for ddd mode, e.g. 11")
	flag.StringVar(&outBase, "out", "", "Output base name (default numbers_br)")
	flag.BoolVar(&selftest, "selftest", false, "Run the generation self-test and exit")
	flag.Parse()

	if selftest {
		runSelftest()
		return
	}

	printBanner()
	reader := bufio.NewReader(os.Stdin)

	if count <= 0 {
		count = askInt(reader, "How many numbers do you want to generate? ")
	}

	var mode generator.Mode
	switch strings.ToLower(modeFlag) {
	case "ddd":
		mode = generator.ModeFixedDDD
	case "all":
		mode = generator.ModeAllDDDs
	case "":
		mode = askMode(reader)
	default:
		fmt.Printf("Unknown mode %q, expected ddd or all.\n", modeFlag)
		os.Exit(1)
	}

	dddCode := dddFlag
	if mode == generator.ModeFixedDDD {
		if dddCode == "" {
			dddCode = askDDD(reader)
		}
		if !ddd.IsValid(dddCode) {
			fmt.Printf("%q is not an assigned Brazilian area code.\n", dddCode)
			os.Exit(1)
		}
		fmt.Printf("\nBase shape for fixed-DDD mode:\n")
		fmt.Printf("  DDD: %s | leading digit (nono digito): 9 | number: 00000000\n", dddCode)
	} else {
		fmt.Println("\nRandom mode over ALL Brazilian DDDs selected.")
	}

	if outBase == "" {
		fmt.Print("\nOutput base name (ENTER = numbers_br): ")
		line, _ := reader.ReadString('\n')
		outBase = strings.TrimSpace(line)
	}

	numbers, err := generator.New().Generate(count, mode, dddCode)
	if err != nil {
		fmt.Println("[ERROR]", err)
		os.Exit(1)
	}

	records := export.FromNumbers(numbers)
	baseName := export.BaseName(outBase, mode, dddCode, time.Now())
	csvPath, txtPath, err := export.WriteFiles(baseName, records)
	if err != nil {
		fmt.Println("[ERROR]", err)
		os.Exit(1)
	}

	fmt.Println("\nFiles written:")
	fmt.Println(" -", csvPath)
	fmt.Println(" -", txtPath)

	fmt.Println("\nSample records (up to 5):")
	for i, r := range records {
		if i == 5 {
			break
		}
		fmt.Printf("  %s  |  %s\n", r.E164, r.National)
	}
	fmt.Println("\nDone.")
}

func printBanner() {
	fmt.Println(strings.Repeat("=", 70))
	fmt.Println(" BRAZILIAN MOBILE NUMBER GENERATOR")
	fmt.Println(strings.Repeat("=", 70))
	fmt.Println("- Mobile numbers always start with the ninth digit 9.")
	fmt.Println("- Valid DDDs recognized:", len(ddd.Codes()))
	fmt.Println()
}

func askInt(reader *bufio.Reader, prompt string) int {
	for {
		fmt.Print(prompt)
		line, _ := reader.ReadString('\n')
		raw := strings.TrimSpace(line)
		val, err := strconv.Atoi(raw)
		if err != nil {
			fmt.Println("Please type a valid integer.")
			continue
		}
		if val < 1 {
			fmt.Println("The minimum value is 1.")
			continue
		}
		return val
	}
}

func askMode(reader *bufio.Reader) generator.Mode {
	fmt.Println("Choose the mode:")
	fmt.Println("  [1] Fixed DDD")
	fmt.Println("  [2] Random over ALL Brazilian DDDs")
	for {
		fmt.Print("Option (1/2): ")
		line, _ := reader.ReadString('\n')
		switch strings.TrimSpace(line) {
		case "1":
			return generator.ModeFixedDDD
		case "2":
			return generator.ModeAllDDDs
		}
		fmt.Println("Invalid option. Type 1 or 2.")
	}
}

func askDDD(reader *bufio.Reader) string {
	for {
		fmt.Print("Enter the DDD (e.g. 11): ")
		line, _ := reader.ReadString('\n')
		code := strings.TrimSpace(line)
		if ddd.IsValid(code) {
			return code
		}
		fmt.Println("Invalid DDD. Try again.")
	}
}

// runSelftest exercises the generation, formatting and file round-trip
// guarantees end to end.
func runSelftest() {
	fail := func(format string, args ...any) {
		fmt.Printf("[SELFTEST] FAILED: "+format+"\n", args...)
		os.Exit(1)
	}

	g := generator.New()

	fixed, err := g.Generate(10, generator.ModeFixedDDD, "11")
	if err != nil {
		fail("fixed-mode generation: %v", err)
	}
	if len(fixed) != 10 {
		fail("expected 10 fixed-mode numbers, got %d", len(fixed))
	}
	for _, n := range fixed {
		if !strings.HasPrefix(n.E164(), "+5511") {
			fail("wrong DDD in E.164 %s", n.E164())
		}
	}

	all, err := g.Generate(50, generator.ModeAllDDDs, "")
	if err != nil {
		fail("all-DDDs generation: %v", err)
	}
	if len(all) != 50 {
		fail("expected 50 numbers, got %d", len(all))
	}
	seen := map[string]bool{}
	for _, n := range all {
		mobile := n.Mobile()
		if len(mobile) != 9 || mobile[0] != '9' {
			fail("malformed mobile portion %s", mobile)
		}
		for i := 0; i < len(mobile); i++ {
			if mobile[i] < '0' || mobile[i] > '9' {
				fail("non-digit in mobile portion %s", mobile)
			}
		}
		if !ddd.IsValid(n.DDD) {
			fail("unassigned DDD %s", n.DDD)
		}
		if seen[n.E164()] {
			fail("duplicate number %s", n.E164())
		}
		seen[n.E164()] = true

		parsed, err := phonenumbers.Parse(n.E164(), "BR")
		if err != nil {
			fail("libphonenumber rejected %s: %v", n.E164(), err)
		}
		if parsed.GetCountryCode() != 55 {
			fail("unexpected country code %d for %s", parsed.GetCountryCode(), n.E164())
		}
	}

	tmpDir, err := os.MkdirTemp("", "celgen-selftest")
	if err != nil {
		fail("temp dir: %v", err)
	}
	defer os.RemoveAll(tmpDir)

	records := export.FromNumbers(fixed[:5])
	base := filepath.Join(tmpDir, "selftest_out")
	csvPath, txtPath, err := export.WriteFiles(base, records)
	if err != nil {
		fail("write outputs: %v", err)
	}

	readBack, err := export.ReadCSV(csvPath)
	if err != nil {
		fail("read CSV back: %v", err)
	}
	if len(readBack) != len(records) {
		fail("CSV round-trip lost records: %d vs %d", len(readBack), len(records))
	}
	for i := range records {
		if readBack[i] != records[i] {
			fail("CSV round-trip changed record %d: %v vs %v", i, records[i], readBack[i])
		}
	}

	lines, err := export.ReadTXT(txtPath)
	if err != nil {
		fail("read TXT back: %v", err)
	}
	if len(lines) != len(records) {
		fail("TXT round-trip lost lines: %d vs %d", len(lines), len(records))
	}
	for i, line := range lines {
		if line != records[i].E164 {
			fail("TXT line %d mismatch: %s vs %s", i, line, records[i].E164)
		}
	}

	fmt.Println("[SELFTEST] OK")
}
