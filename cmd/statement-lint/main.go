// statement-lint validates serialized statement JSON documents against the
// embedded statement schema. Documents come from file arguments or stdin;
// an optional YAML profile extends the verb and activity-type vocabulary
// used for warnings. The first invalid document stops the run with a
// non-zero exit.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/seanpm2001/xapi/schema"
	"github.com/seanpm2001/xapi/vocabulary"
)

func main() {
	profilePath := flag.String("profile", "", "YAML vocabulary profile for verb and activity-type checks")
	printSchema := flag.Bool("print-schema", false, "Print the embedded statement schema and exit")
	flag.Parse()

	if *printSchema {
		fmt.Println(schema.StatementSchema)
		return
	}

	log.Printf("Statement Lint")

	knownTypes := defaultActivityTypes()
	if *profilePath != "" {
		profile, err := loadProfileFile(*profilePath)
		if err != nil {
			log.Fatalf("Failed to load profile: %v", err)
		}
		profile.Register()
		for _, at := range profile.ActivityTypes {
			knownTypes[at.ID] = true
		}
		log.Printf("  Profile: %s (%d verbs, %d activity types)",
			profile.Name, len(profile.Verbs), len(profile.ActivityTypes))
	}

	paths := flag.Args()
	if len(paths) == 0 {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			log.Fatalf("Failed to read stdin: %v", err)
		}
		if err := lintDocument("stdin", data, knownTypes); err != nil {
			log.Fatalf("✗ stdin: %v", err)
		}
		log.Printf("  ✓ stdin")
		log.Printf("✅ 1 document valid")
		return
	}

	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			log.Fatalf("Failed to read %s: %v", path, err)
		}
		if err := lintDocument(path, data, knownTypes); err != nil {
			log.Fatalf("✗ %s: %v", path, err)
		}
		log.Printf("  ✓ %s", path)
	}
	log.Printf("✅ %d documents valid", len(paths))
}

// loadProfileFile opens and parses a YAML vocabulary profile.
func loadProfileFile(path string) (*vocabulary.Profile, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return vocabulary.LoadProfile(file)
}
