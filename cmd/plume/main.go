// cmd/plume/main.go
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"plume/internal/builder"
	"plume/internal/config"
	"plume/internal/scaffold"
	"plume/internal/server"
)

// Project layout. These are conventions, not flags: a plume site is a
// directory with these names in it.
const (
	contentDir  = "content"
	templateDir = "templates"
	staticDir   = "static"
	outputDir   = "public"
	configFile  = "site.yaml"
)

var cli struct {
	Verbose bool `short:"v" help:"Enable verbose logging."`
	Unsafe  bool `help:"Disable HTML sanitization. Allows all raw HTML."`

	Build struct{} `cmd:"" help:"Build the site into the output directory."`

	Serve struct {
		Port int `short:"p" default:"1313" help:"Port for the local development server."`
	} `cmd:"" help:"Run a local dev server with auto-rebuild and live reload."`

	New struct {
		Site struct {
			Name string `arg:"" help:"Directory to scaffold the new site in."`
		} `cmd:"" help:"Create a new site skeleton."`
		Post struct {
			Title string `arg:"" help:"Title of the new post."`
		} `cmd:"" help:"Create a new post from the archetype."`
	} `cmd:"" help:"Scaffold a new site or post."`
}

func main() {
	ctx := kong.Parse(&cli,
		kong.Name("plume"),
		kong.Description("plume - a quiet static blog generator"),
	)

	logLevel := slog.LevelInfo
	if cli.Verbose {
		logLevel = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	})))

	if err := run(ctx.Command()); err != nil {
		slog.Error("Operation failed", "error", err)
		os.Exit(1)
	}
}

func run(command string) error {
	opts := builder.BuildOptions{
		Unsafe: cli.Unsafe,
		Debug:  cli.Verbose,
	}

	switch command {
	case "build":
		pageCount, err := runBuild(opts)
		if err != nil {
			return err
		}
		slog.Info("Build complete", "pages", pageCount, "output", outputDir)
		return nil

	case "serve":
		buildFunc := func(buildOpts builder.BuildOptions) error {
			_, err := runBuild(buildOpts)
			return err
		}
		return server.Run(cli.Serve.Port, outputDir, buildFunc, opts)

	case "new site <name>":
		return scaffold.CreateNewSite(cli.New.Site.Name)

	case "new post <title>":
		return scaffold.CreateNewPost(cli.New.Post.Title, configFile)

	default:
		return fmt.Errorf("unknown command %q", command)
	}
}

// runBuild loads the site configuration and templates, then runs the
// full pipeline over the default project layout.
func runBuild(opts builder.BuildOptions) (int, error) {
	site, err := config.LoadSiteConfig(configFile)
	if err != nil {
		return 0, fmt.Errorf("failed to load site config: %w", err)
	}
	tmpl, err := builder.LoadTemplates(templateDir, site.Template)
	if err != nil {
		return 0, fmt.Errorf("failed to load templates: %w", err)
	}
	return builder.BuildSite(outputDir, contentDir, staticDir, site, tmpl, opts)
}
