package main

import (
	"fmt"
	"log"
	"os"

	"github.com/osuushi/convexhull"
	"github.com/pkg/profile"
	kingpin "gopkg.in/alecthomas/kingpin.v2"
)

// Command line front end for the hull algorithm. Reads a CSV file of "x,y"
// points, computes the convex hull, and writes the hull vertices' input
// indices to the output file, one per line.

var (
	inputFile  = kingpin.Arg("input", "CSV file of x,y coordinates, one point per line.").Required().String()
	outputFile = kingpin.Flag("output", "File to write hull indices to.").Short('o').Default("output.txt").String()
	epsilon    = kingpin.Flag("epsilon", "Collinearity tolerance for the orientation predicate.").Default("1e-12").Float64()
	cpuProfile = kingpin.Flag("profile", "Write a CPU profile to the current directory.").Bool()
)

func main() {
	kingpin.Parse()
	if *cpuProfile {
		defer profile.Start(profile.ProfilePath(".")).Stop()
	}

	in, err := os.Open(*inputFile)
	if err != nil {
		log.Fatalf("Could not open %q: %v", *inputFile, err)
	}
	defer in.Close()

	source := &convexhull.CSVPointSource{R: in}
	points, err := source.ReadPoints()
	if err != nil {
		log.Fatalf("Could not read points: %v", err)
	}
	fmt.Printf("Read %d points from %s\n", len(points), *inputFile)

	indices, err := convexhull.ConvexHullWithEpsilon(points, *epsilon)
	if err != nil {
		log.Fatalf("Could not compute hull: %v", err)
	}

	out, err := os.Create(*outputFile)
	if err != nil {
		log.Fatalf("Could not create %q: %v", *outputFile, err)
	}
	defer out.Close()

	sink := &convexhull.LineResultSink{W: out}
	if err := sink.WriteIndices(indices); err != nil {
		log.Fatalf("Could not write result: %v", err)
	}
	fmt.Printf("Hull has %d vertices; indices written to %s\n", len(indices), *outputFile)
}
