package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"

	"github.com/mikhailocampo/rift-rewind-hackathon/internal/config"
	"github.com/mikhailocampo/rift-rewind-hackathon/internal/errors"
	"github.com/mikhailocampo/rift-rewind-hackathon/internal/models"
	"github.com/mikhailocampo/rift-rewind-hackathon/internal/parser"
	"github.com/mikhailocampo/rift-rewind-hackathon/internal/report"
	"github.com/mikhailocampo/rift-rewind-hackathon/internal/summary"
)

// Version information
const Version = "0.1.0"

// CLI defines the command-line interface
var CLI struct {
	Debug   bool             `help:"Enable debug logging." short:"d"`
	Version kong.VersionFlag `help:"Show version information." short:"v"`

	Structure  StructureCmd  `cmd:"" help:"Print a bounded structural summary of a JSON file."`
	Match      MatchCmd      `cmd:"" help:"Inspect a match summary file."`
	Timeline   TimelineCmd   `cmd:"" help:"Inspect a match timeline file."`
	Challenges ChallengesCmd `cmd:"" help:"Inspect the challenges metrics of a match file."`
}

// Context holds the runtime context shared by all commands
type Context struct {
	Debug  bool
	Config *config.Config
	Out    io.Writer
}

// StructureCmd summarizes any JSON file with configurable bounds.
type StructureCmd struct {
	Input    string `arg:"" help:"Path to the JSON file." type:"path"`
	MaxDepth int    `help:"Recursion budget; deeper content degrades to a type marker." short:"D" default:"-1"`
	MaxItems int    `help:"Array elements retained before the omission marker." short:"n" default:"-1"`
	Hints    bool   `help:"Print snake_case schema hints for top-level object keys." short:"H"`
}

// Run executes the structure command
func (c *StructureCmd) Run(ctx *Context) error {
	doc, err := loadDocument(ctx, c.Input)
	if err != nil {
		return err
	}

	// Negative flag values mean "not set"; fall back to the config.
	opts := ctx.Config.Options()
	if c.MaxDepth >= 0 {
		opts.MaxDepth = c.MaxDepth
	}
	if c.MaxItems >= 0 {
		opts.MaxArrayItems = c.MaxItems
	}

	sum, err := summary.Summarize(doc.Root, opts)
	if err != nil {
		return err
	}
	out, err := summary.Render(sum)
	if err != nil {
		return err
	}
	fmt.Fprintln(ctx.Out, out)

	if c.Hints {
		if obj, ok := doc.Root.(*models.JSONObject); ok {
			report.SchemaHints(ctx.Out, obj, c.Input)
		}
	}
	return nil
}

// MatchCmd runs the match-summary inspection report.
type MatchCmd struct {
	Input string `arg:"" help:"Path to the match JSON file." type:"path"`
}

// Run executes the match command
func (c *MatchCmd) Run(ctx *Context) error {
	doc, err := loadDocument(ctx, c.Input)
	if err != nil {
		return err
	}
	return report.Match(ctx.Out, doc, c.Input)
}

// TimelineCmd runs the match-timeline inspection report.
type TimelineCmd struct {
	Input string `arg:"" help:"Path to the timeline JSON file." type:"path"`
}

// Run executes the timeline command
func (c *TimelineCmd) Run(ctx *Context) error {
	doc, err := loadDocument(ctx, c.Input)
	if err != nil {
		return err
	}
	return report.Timeline(ctx.Out, doc, c.Input)
}

// ChallengesCmd runs the challenges-field inspection report.
type ChallengesCmd struct {
	Input string `arg:"" help:"Path to the match JSON file." type:"path"`
}

// Run executes the challenges command
func (c *ChallengesCmd) Run(ctx *Context) error {
	doc, err := loadDocument(ctx, c.Input)
	if err != nil {
		return err
	}
	return report.Challenges(ctx.Out, doc)
}

// loadDocument parses the input file, logging the outcome in debug mode
func loadDocument(ctx *Context, path string) (models.Document, error) {
	doc, err := parser.ParseFile(path)
	if err != nil {
		return models.Document{}, err
	}
	if ctx.Debug {
		fmt.Fprintf(os.Stderr, "parsed %s (root is array: %t)\n", path, doc.RootIsArray)
	}
	return doc, nil
}

func main() {
	// Parse CLI arguments with Kong
	k := kong.Must(&CLI,
		kong.Name("riftscope"),
		kong.Description("Explore the structure of Riot match telemetry JSON files."),
		kong.UsageOnError(),
		kong.Vars{"version": fmt.Sprintf("riftscope version %s", Version)},
	)

	ctx, err := k.Parse(os.Args[1:])
	if err != nil {
		// kong.UsageOnError() already printed the usage
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", errors.UserFriendlyError(err))
		os.Exit(1)
	}

	err = ctx.Run(&Context{
		Debug:  CLI.Debug || cfg.Debug,
		Config: cfg,
		Out:    os.Stdout,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", errors.UserFriendlyError(err))
		fmt.Fprintf(os.Stderr, "\nFor help, run: riftscope --help\n")
		os.Exit(1)
	}
}
