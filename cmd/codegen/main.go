package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/delaneyj/asyncparty/cmd/codegen/templates"
	"github.com/urfave/cli/v3"
)

const genericParamCountKey = "count"

func main() {
	cmd := &cli.Command{
		Name:  "generate",
		Usage: "Generate the typed emitter wrappers",
		Flags: []cli.Flag{
			&cli.UintFlag{
				Name:  genericParamCountKey,
				Usage: "Highest emitter arity to generate",
				Value: 8,
			},
		},
		Action: generate,
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func generate(ctx context.Context, cmd *cli.Command) error {
	start := time.Now()
	log.Printf("Codegen for typed emitters started !")
	defer func() {
		log.Printf("Codegen for typed emitters finished in %v", time.Since(start))
	}()

	genericParamCount := cmd.Uint(genericParamCountKey)
	log.Printf("Arities: %d", genericParamCount)

	contents := templates.TypedGen(int(genericParamCount))
	if err := os.WriteFile("emitter/typed.go", []byte(contents), 0644); err != nil {
		return err
	}

	return nil
}
