// cmd/tools/registry-updater/main.go
//
// Maintains configs/operation-registry.json. "generate" rebuilds the file
// from the dispatcher's own metadata; "validate" checks an existing file
// against the structural invariants and compiles every schema.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/rob-foulkrod/verification/internal/common/validation"
	"github.com/rob-foulkrod/verification/internal/textops"
	"github.com/rob-foulkrod/verification/pkg/registry"
)

const defaultRegistryPath = "configs/operation-registry.json"

func main() {
	generateCmd := flag.NewFlagSet("generate", flag.ExitOnError)
	validateCmd := flag.NewFlagSet("validate", flag.ExitOnError)

	generatePath := generateCmd.String("path", defaultRegistryPath, "Path to registry file")
	generateVersion := generateCmd.String("version", "1.0.0", "Registry version to stamp")

	validatePath := validateCmd.String("path", defaultRegistryPath, "Path to registry file")

	if len(os.Args) < 2 {
		help()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "generate":
		generateCmd.Parse(os.Args[2:])
		reg := buildRegistry(*generateVersion)
		if err := registry.SaveRegistry(*generatePath, reg); err != nil {
			fmt.Printf("Error writing registry: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Wrote %d operations to %s\n", len(reg.Operations), *generatePath)

	case "validate":
		validateCmd.Parse(os.Args[2:])
		reg, err := registry.LoadRegistry(*validatePath)
		if err != nil {
			fmt.Printf("Error loading registry: %v\n", err)
			os.Exit(1)
		}
		if err := reg.Validate(); err != nil {
			fmt.Printf("Registry invalid: %v\n", err)
			os.Exit(1)
		}
		for _, op := range reg.Operations {
			if err := validation.CheckSchema(op.InputSchema); err != nil {
				fmt.Printf("Operation %s input schema: %v\n", op.ID, err)
				os.Exit(1)
			}
			if err := validation.CheckSchema(op.OutputSchema); err != nil {
				fmt.Printf("Operation %s output schema: %v\n", op.ID, err)
				os.Exit(1)
			}
		}
		fmt.Printf("Registry %s is valid (%d operations)\n", *validatePath, len(reg.Operations))

	default:
		help()
		os.Exit(1)
	}
}

func buildRegistry(version string) *registry.OperationRegistry {
	infos := textops.Operations()
	ops := make([]registry.Operation, len(infos))
	for i, info := range infos {
		ops[i] = registry.Operation{
			ID:           info.ID,
			DisplayName:  info.DisplayName,
			Description:  info.Description,
			Category:     info.Category,
			Version:      version,
			OutputKeys:   info.OutputKeys,
			InputSchema:  info.InputSchema,
			OutputSchema: info.OutputSchema,
		}
	}

	return &registry.OperationRegistry{
		Version:     version,
		LastUpdated: time.Now().UTC().Format(time.RFC3339),
		Operations:  ops,
	}
}

func help() {
	fmt.Println("Usage: registry-updater <command> [flags]")
	fmt.Println("Commands:")
	fmt.Println("  generate  Rebuild the registry file from operation metadata")
	fmt.Println("  validate  Check an existing registry file")
}
