package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/kahefi/ontograph"
	"github.com/kahefi/ontograph/reason"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// nolint:gochecknoglobals
var rootCmd = &cobra.Command{
	Use:   "ontograph-inspect",
	Short: "Decode an ontology file and run closure/membership queries",
	Long:  `ontograph-inspect loads a Turtle or JSON-LD ontology file, decodes it into an Ontology, and prints closure/membership query results to stdout.`,
}

func subClassesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "subclasses [file] [classIRI]",
		Short: "Print the transitive subclasses of a class",
		Args:  cobra.ExactArgs(2),
		Run: func(cmd *cobra.Command, args []string) {
			ont := loadOntologyOrExit(args[0])
			c := requireClass(ont, args[1])
			for _, sub := range reason.SubClassesOf(c, ont.Classes).Classes() {
				fmt.Println(sub.GetURI())
			}
		},
	}
}

func equivalentClassesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "equivalent-classes [file] [classIRI]",
		Short: "Print the classes equivalent to a class",
		Args:  cobra.ExactArgs(2),
		Run: func(cmd *cobra.Command, args []string) {
			ont := loadOntologyOrExit(args[0])
			c := requireClass(ont, args[1])
			for _, eq := range reason.EquivalentClassesOf(c, ont.Classes).Classes() {
				fmt.Println(eq.GetURI())
			}
		},
	}
}

func disjointClassesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "disjoint-classes [file] [classIRI]",
		Short: "Print the classes disjoint with a class",
		Args:  cobra.ExactArgs(2),
		Run: func(cmd *cobra.Command, args []string) {
			ont := loadOntologyOrExit(args[0])
			c := requireClass(ont, args[1])
			for _, dis := range reason.DisjointClassesOf(c, ont.Classes).Classes() {
				fmt.Println(dis.GetURI())
			}
		},
	}
}

func membersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "members [file] [classIRI]",
		Short: "Print the facts and literals belonging to a class",
		Args:  cobra.ExactArgs(2),
		Run: func(cmd *cobra.Command, args []string) {
			ont := loadOntologyOrExit(args[0])
			c := requireClass(ont, args[1])
			data := reason.MembersOf(c, ont)
			for _, f := range data.Facts() {
				fmt.Println(f.GetURI())
			}
			for _, l := range data.Literals() {
				fmt.Println(l.Lexical)
			}
		},
	}
}

// Helper functions

func loadOntologyOrExit(path string) *ontograph.Ontology {
	if !fileExists(path) {
		fmt.Printf("Error: file '%s' does not exist.\n", path)
		os.Exit(1)
	}

	file, err := os.Open(path)
	if err != nil {
		fmt.Printf("Error opening file '%s': %v\n", path, err)
		os.Exit(1)
	}
	defer file.Close()

	var store *ontograph.MemoryStore
	if wantsJSONLD(path) {
		store, err = ontograph.ParseFromJSONLD(file)
	} else {
		store, err = ontograph.ParseFromTurtle(file)
	}
	if err != nil {
		fmt.Printf("Error parsing '%s': %v\n", path, err)
		os.Exit(1)
	}

	ont, warnings, err := ontograph.FromGraph(store, ontograph.DecodeOptions{})
	if err != nil {
		fmt.Printf("Error decoding ontology from '%s': %v\n", path, err)
		os.Exit(1)
	}
	for _, w := range warnings {
		fmt.Printf("warning: %s\n", w.Message)
	}
	return ont
}

func requireClass(ont *ontograph.Ontology, iri string) *ontograph.Class {
	c, err := ont.RequireClassByURI(iri)
	if err != nil {
		fmt.Printf("Error: class '%s' not found in ontology.\n", iri)
		os.Exit(1)
	}
	return c
}

func fileExists(filename string) bool {
	info, err := os.Stat(filename)
	if os.IsNotExist(err) {
		return false
	}
	return !info.IsDir()
}

func isJSONLDFile(filename string) bool {
	ext := strings.ToLower(filename[strings.LastIndex(filename, ".")+1:])
	return ext == "jsonld" || ext == "json"
}

// wantsJSONLD resolves the effective file format: an explicit --format flag
// or ONTOGRAPH_FORMAT env var (bound through viper) takes precedence over
// sniffing the file extension.
func wantsJSONLD(filename string) bool {
	switch strings.ToLower(viper.GetString("format")) {
	case "jsonld", "json":
		return true
	case "turtle", "ttl":
		return false
	default:
		return isJSONLDFile(filename)
	}
}
