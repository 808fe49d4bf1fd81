package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/pkg/errors"
)

// Supported subcommands:
// - validate: Check a plan export directory (manifest + CSV) without importing
// - import:   Validate, then push the planned visits to a running API

func main() {
	validateCmd := flag.NewFlagSet("validate", flag.ExitOnError)
	importCmd := flag.NewFlagSet("import", flag.ExitOnError)

	// validate parameters
	validateDir := validateCmd.String("dir", "./data/plan", "Plan export directory to validate")

	// import parameters
	importDir := importCmd.String("dir", "./data/plan", "Plan export directory to import")
	importAPI := importCmd.String("api", "http://localhost:8080", "Base URL of the running fieldtrack API")

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	flags := planFlags{
		Validate: validateFlags{
			cmd: validateCmd,
			dir: validateDir,
		},
		Import: importFlags{
			cmd: importCmd,
			dir: importDir,
			api: importAPI,
		},
	}

	if err := runSubcommand(ctx, &flags); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

type planFlags struct {
	Validate validateFlags
	Import   importFlags
}

type validateFlags struct {
	cmd *flag.FlagSet
	dir *string
}

type importFlags struct {
	cmd *flag.FlagSet
	dir *string
	api *string
}

func runSubcommand(ctx context.Context, flags *planFlags) error {
	switch os.Args[1] {
	case "validate":
		if err := flags.Validate.cmd.Parse(os.Args[2:]); err != nil {
			return errors.Wrap(err, "failed to parse validate flags")
		}

		return runValidate(*flags.Validate.dir)
	case "import":
		if err := flags.Import.cmd.Parse(os.Args[2:]); err != nil {
			return errors.Wrap(err, "failed to parse import flags")
		}

		return runImport(ctx, *flags.Import.dir, *flags.Import.api)
	default:
		printUsage()

		return errors.New("unknown subcommand")
	}
}

func printUsage() {
	fmt.Println("Usage: planimport <subcommand> [flags]")
	fmt.Println()
	fmt.Println("Subcommands:")
	fmt.Println("  validate   Check a plan export directory without importing")
	fmt.Println("  import     Validate and push the planned visits to the API")
	fmt.Println()
	fmt.Println("Run 'planimport <subcommand> -h' for subcommand flags.")
}
