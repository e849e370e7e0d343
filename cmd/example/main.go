package main

import (
	"context"
	"log"
	"os"
	"strings"

	"github.com/goliatone/go-postflow"
)

const (
	lunch     = "I ate a salad for lunch today"
	dinner    = " and a steak for dinner"
	delicious = " and it was delicious!"
)

func main() {
	cfg := postflow.DefaultConfig()
	if level := strings.TrimSpace(os.Getenv("POSTFLOW_LOG_LEVEL")); level != "" {
		cfg.Logging.Enabled = true
		cfg.Logging.Level = level
	}

	module, err := postflow.New(cfg)
	if err != nil {
		log.Fatalf("initialise postflow: %v", err)
	}
	ctx := postflow.ContextWithFields(context.Background(), map[string]any{
		"run": "example",
	})
	logger := module.Logger("postflow.example").WithContext(ctx)

	runDynamic(module)
	logger.Info("example.dynamic.ok")

	runTypestate(module)
	logger.Info("example.typestate.ok")
}

func runDynamic(module *postflow.Module) {
	p := module.NewPost()

	p.AddText(lunch)
	expect("draft", p.Content(), "")

	p.RequestReview()
	expect("pending review", p.Content(), "")

	p.AddText(dinner)
	expect("text added during review", p.Content(), "")

	p.Reject()
	expect("rejected", p.Content(), "")

	p.RequestReview()
	expect("review requested again", p.Content(), "")

	p.Approve()
	expect("approved once", p.Content(), "")

	p.Approve()
	expect("published", p.Content(), lunch)
}

func runTypestate(module *postflow.Module) {
	draft := module.NewDraft()
	draft.AddText(lunch)
	draft.AddText(delicious)

	pending := draft.RequestReview()
	approved := pending.Approve()
	published := approved.Approve()

	expect("typestate published", published.Content(), lunch+delicious)
}

func expect(step, got, want string) {
	if got != want {
		log.Fatalf("%s: want content %q, got %q", step, want, got)
	}
}
