// ontograph-inspect loads a Turtle or JSON-LD ontology file, decodes it, and
// prints closure/membership query results to stdout. It is a thin consumer
// of the ontograph/reason public surface, not part of the core library.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/viper"
)

// Call once before Execute.
func Init() {
	viper.SetEnvPrefix("ONTOGRAPH")
	viper.AutomaticEnv()

	rootCmd.PersistentFlags().String("format", "", "ontology file format override: turtle or jsonld (env ONTOGRAPH_FORMAT)")
	_ = viper.BindPFlag("format", rootCmd.PersistentFlags().Lookup("format"))

	rootCmd.AddCommand(subClassesCmd())
	rootCmd.AddCommand(equivalentClassesCmd())
	rootCmd.AddCommand(disjointClassesCmd())
	rootCmd.AddCommand(membersCmd())
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func main() {
	Init()
	Execute()
}
