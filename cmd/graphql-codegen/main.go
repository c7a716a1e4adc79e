// Command graphql-codegen generates statically-typed declarations from
// GraphQL schema files.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"
)

func main() {
	cmd := &cli.Command{
		Name:  "graphql-codegen",
		Usage: "Generate typed declarations from GraphQL schemas",
		Commands: []*cli.Command{
			generateCommand(),
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
