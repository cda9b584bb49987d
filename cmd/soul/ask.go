package main

import (
	"context"
	"fmt"
	"strings"
)

type askCmd struct {
	Online onlineConfig `embed:""`

	DryRun   bool     `help:"Print the prompt instead of calling the generator"`
	Question []string `arg:"" help:"Question to ask"`
}

func (c *askCmd) Run(g *globals) error {
	ctx := context.Background()

	svc, _, sum, err := buildService(g, c.Online)
	if err != nil {
		return err
	}

	question := strings.Join(c.Question, " ")

	if c.DryRun {
		for _, line := range sum.Diagnostics() {
			fmt.Printf("# %s\n", line)
		}
		p, err := svc.BuildPrompt(ctx, question, nil)
		if err != nil {
			return err
		}
		fmt.Println(p)
		return nil
	}

	reply, err := svc.Respond(ctx, question, nil)
	if err != nil {
		return err
	}

	fmt.Println(reply)

	return nil
}
