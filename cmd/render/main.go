package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"landdoc-backend/internal/application/documents"
	"landdoc-backend/internal/config"
	"landdoc-backend/internal/database"
	"landdoc-backend/internal/store"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// render generates the print-ready HTML for one contract document. The
// output file is what the headless-browser PDF renderer consumes.
func main() {
	idFlag := flag.String("id", "", "contract document id (uuid)")
	outFlag := flag.String("out", "", "output HTML file (default stdout)")
	saveFlag := flag.Bool("save", false, "also persist the HTML back onto the document as a cached draft")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fatal("config load", err)
	}
	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	id, err := uuid.Parse(*idFlag)
	if err != nil {
		fatal("invalid -id", err)
	}

	db, err := database.Open(cfg.DatabaseURL)
	if err != nil {
		fatal("database open", err)
	}

	ctx := context.Background()
	st := &store.Store{DB: db}
	doc, err := st.LoadDocument(ctx, id)
	if err != nil {
		fatal("load document", err)
	}

	svc := &documents.Service{
		Engine:               documents.NewEngine(cfg.TemplateDir),
		Appender:             &documents.Appender{StorageDir: cfg.StorageDir},
		DefaultDepositPeriod: cfg.DefaultDepositPeriod,
	}
	html, err := svc.Generate(doc)
	if err != nil {
		fatal("generate", err)
	}

	if *saveFlag {
		if err := st.SaveRenderedHTML(ctx, id, html); err != nil {
			fatal("save rendered html", err)
		}
	}

	if *outFlag == "" {
		fmt.Print(html)
		return
	}
	if err := os.WriteFile(*outFlag, []byte(html), 0o644); err != nil {
		fatal("write output", err)
	}
	log.Info().Str("out", *outFlag).Msg("document written")
}

func fatal(msg string, err error) {
	log.Error().Err(err).Msg(msg)
	fmt.Fprintf(os.Stderr, "%s: %v\n", msg, err)
	os.Exit(1)
}
