package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	memogen "github.com/Walidelmasri/MemoGeneratorV1"
)

func main() {
	var (
		inputFile string
		outputDir string
		banner    string
		footer    string
		fontDir   string
		pageSize  string
		landscape bool
		verbose   bool
	)

	flag.StringVar(&inputFile, "input", "", "Input memo YAML file path")
	flag.StringVar(&outputDir, "output", ".", "Output directory")
	flag.StringVar(&banner, "banner", "", "Banner image (overrides the memo file)")
	flag.StringVar(&footer, "footer", "", "Footer image (overrides the memo file)")
	flag.StringVar(&fontDir, "fonts", "", "Directory holding the TrueType fonts")
	flag.StringVar(&pageSize, "page", "a4", "Page size: a4, a3, a5, letter or legal")
	flag.BoolVar(&landscape, "landscape", false, "Use landscape orientation")
	flag.BoolVar(&verbose, "verbose", false, "Enable verbose logging")
	flag.Parse()

	if inputFile == "" {
		fmt.Println("Error: input file is required")
		flag.Usage()
		os.Exit(1)
	}

	m, err := readMemo(inputFile)
	if err != nil {
		fmt.Printf("Error reading memo: %v\n", err)
		os.Exit(1)
	}
	if banner != "" {
		m.Banner = banner
	}
	if footer != "" {
		m.Footer = footer
	}

	opts := []memogen.Option{
		memogen.WithFontDirectory(fontDir),
		memogen.WithDebug(verbose),
		memogen.WithResourcePath(m.dir),
	}
	sizeOpt, err := pageSizeOption(pageSize)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	opts = append(opts, sizeOpt)
	if landscape {
		opts = append(opts, memogen.WithPageOrientation(memogen.PageOrientationLandscape))
	}

	options := memogen.DefaultOptions()
	for _, o := range opts {
		o(&options)
	}
	generator := memogen.NewWithOptions(options)

	in, err := m.input(generator)
	if err != nil {
		fmt.Printf("Error loading memo assets: %v\n", err)
		os.Exit(1)
	}

	path, err := generator.GenerateToFile(in, outputDir)
	if err != nil {
		fmt.Printf("Error generating memo: %v\n", err)
		os.Exit(1)
	}

	if verbose {
		fmt.Printf("Successfully generated %s from %s\n", path, inputFile)
	}
}

func pageSizeOption(name string) (memogen.Option, error) {
	switch strings.ToLower(name) {
	case "", "a4":
		return memogen.WithPageSizeA4(), nil
	case "letter":
		return memogen.WithPageSizeLetter(), nil
	case "legal":
		return memogen.WithPageSizeLegal(), nil
	case "a3":
		return memogen.WithPageSizeA3(), nil
	case "a5":
		return memogen.WithPageSizeA5(), nil
	}
	return nil, fmt.Errorf("unknown page size %q", name)
}
