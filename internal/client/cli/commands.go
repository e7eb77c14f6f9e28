package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"path"
	"time"

	"github.com/dmitrijs2005/satstream/internal/filex"
	"github.com/dmitrijs2005/satstream/internal/server/auth"
	"github.com/dmitrijs2005/satstream/internal/server/models"
)

// tokenValidity is the lifetime of tokens minted by the token command.
const tokenValidity = 24 * time.Hour

func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func parse(fs *flag.FlagSet, args []string, required ...string) error {
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrUsage, fs.Name(), err)
	}
	seen := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { seen[f.Name] = true })
	for _, r := range required {
		if !seen[r] {
			return fmt.Errorf("%w: %s: -%s is required", ErrUsage, fs.Name(), r)
		}
	}
	return nil
}

func init() {
	register(command{name: "token", usage: "-u <principal>  mint a development access token", run: (*App).token})
	register(command{name: "ping", usage: "check the server", run: (*App).ping})
	register(command{name: "create", usage: "-r <recipient> -rate <sats/s> -duration <s> -locked <sats>", run: (*App).create})
	register(command{name: "claim", usage: "-id <stream>", run: (*App).claim})
	register(command{name: "topup", usage: "-id <stream> -amount <sats>", run: (*App).topUp})
	register(command{name: "cancel", usage: "-id <stream>", run: (*App).cancel})
	register(command{name: "reclaim", usage: "-id <stream>", run: (*App).reclaim})
	register(command{name: "get", usage: "-id <stream>", run: (*App).get})
	register(command{name: "list", usage: "streams you send or receive", run: (*App).list})
	register(command{name: "template-create", usage: "-name <n> [-desc <d>] -duration <s> -rate <sats/s>", run: (*App).templateCreate})
	register(command{name: "template-use", usage: "-id <template> -r <recipient> -locked <sats>", run: (*App).templateUse})
	register(command{name: "templates", usage: "list templates", run: (*App).templates})
	register(command{name: "stats", usage: "your stream statistics", run: (*App).stats})
	register(command{name: "global-stats", usage: "ledger statistics", run: (*App).globalStats})
	register(command{name: "export", usage: "[-o <dir>]  upload a statement and print its download URL", run: (*App).export})
}

func (a *App) token(ctx context.Context, args []string) error {
	fs := newFlagSet("token")
	principal := fs.String("u", "", "principal")
	if err := parse(fs, args, "u"); err != nil {
		return err
	}
	token, err := auth.GenerateToken(models.Principal(*principal), []byte(a.config.SecretKey), tokenValidity)
	if err != nil {
		return err
	}
	return a.print(map[string]string{"access_token": token})
}

func (a *App) ping(ctx context.Context, args []string) error {
	api, err := a.client()
	if err != nil {
		return err
	}
	if err := api.Ping(ctx); err != nil {
		return err
	}
	return a.print(map[string]string{"status": "OK"})
}

func (a *App) create(ctx context.Context, args []string) error {
	fs := newFlagSet("create")
	recipient := fs.String("r", "", "recipient")
	rate := fs.Uint64("rate", 0, "sats per second")
	duration := fs.Uint64("duration", 0, "duration in seconds")
	locked := fs.Uint64("locked", 0, "sats to lock")
	if err := parse(fs, args, "r", "rate", "duration", "locked"); err != nil {
		return err
	}
	api, err := a.client()
	if err != nil {
		return err
	}
	id, err := api.CreateStream(ctx, *recipient, *rate, *duration, *locked)
	if err != nil {
		return err
	}
	return a.print(map[string]uint64{"stream_id": id})
}

func (a *App) streamID(name string, args []string) (uint64, error) {
	fs := newFlagSet(name)
	id := fs.Uint64("id", 0, "stream id")
	if err := parse(fs, args, "id"); err != nil {
		return 0, err
	}
	return *id, nil
}

func (a *App) claim(ctx context.Context, args []string) error {
	id, err := a.streamID("claim", args)
	if err != nil {
		return err
	}
	api, err := a.client()
	if err != nil {
		return err
	}
	amount, err := api.ClaimStream(ctx, id)
	if err != nil {
		return err
	}
	return a.print(map[string]uint64{"claimed": amount})
}

func (a *App) topUp(ctx context.Context, args []string) error {
	fs := newFlagSet("topup")
	id := fs.Uint64("id", 0, "stream id")
	amount := fs.Uint64("amount", 0, "sats to add")
	if err := parse(fs, args, "id", "amount"); err != nil {
		return err
	}
	api, err := a.client()
	if err != nil {
		return err
	}
	if err := api.TopUpStream(ctx, *id, *amount); err != nil {
		return err
	}
	return a.print(map[string]bool{"ok": true})
}

func (a *App) cancel(ctx context.Context, args []string) error {
	id, err := a.streamID("cancel", args)
	if err != nil {
		return err
	}
	api, err := a.client()
	if err != nil {
		return err
	}
	res, err := api.CancelStream(ctx, id)
	if err != nil {
		return err
	}
	return a.print(res)
}

func (a *App) reclaim(ctx context.Context, args []string) error {
	id, err := a.streamID("reclaim", args)
	if err != nil {
		return err
	}
	api, err := a.client()
	if err != nil {
		return err
	}
	amount, err := api.ReclaimUnclaimed(ctx, id)
	if err != nil {
		return err
	}
	return a.print(map[string]uint64{"reclaimed": amount})
}

func (a *App) get(ctx context.Context, args []string) error {
	id, err := a.streamID("get", args)
	if err != nil {
		return err
	}
	api, err := a.client()
	if err != nil {
		return err
	}
	s, err := api.GetStream(ctx, id)
	if err != nil {
		return err
	}
	return a.print(s)
}

func (a *App) list(ctx context.Context, args []string) error {
	api, err := a.client()
	if err != nil {
		return err
	}
	streams, err := api.ListStreams(ctx)
	if err != nil {
		return err
	}
	return a.print(streams)
}

func (a *App) templateCreate(ctx context.Context, args []string) error {
	fs := newFlagSet("template-create")
	name := fs.String("name", "", "template name")
	desc := fs.String("desc", "", "description")
	duration := fs.Uint64("duration", 0, "duration in seconds")
	rate := fs.Uint64("rate", 0, "sats per second")
	if err := parse(fs, args, "name", "duration", "rate"); err != nil {
		return err
	}
	api, err := a.client()
	if err != nil {
		return err
	}
	id, err := api.CreateTemplate(ctx, *name, *desc, *duration, *rate)
	if err != nil {
		return err
	}
	return a.print(map[string]uint64{"template_id": id})
}

func (a *App) templateUse(ctx context.Context, args []string) error {
	fs := newFlagSet("template-use")
	id := fs.Uint64("id", 0, "template id")
	recipient := fs.String("r", "", "recipient")
	locked := fs.Uint64("locked", 0, "sats to lock")
	if err := parse(fs, args, "id", "r", "locked"); err != nil {
		return err
	}
	api, err := a.client()
	if err != nil {
		return err
	}
	streamID, err := api.CreateStreamFromTemplate(ctx, *id, *recipient, *locked)
	if err != nil {
		return err
	}
	return a.print(map[string]uint64{"stream_id": streamID})
}

func (a *App) templates(ctx context.Context, args []string) error {
	api, err := a.client()
	if err != nil {
		return err
	}
	list, err := api.ListTemplates(ctx)
	if err != nil {
		return err
	}
	return a.print(list)
}

func (a *App) stats(ctx context.Context, args []string) error {
	api, err := a.client()
	if err != nil {
		return err
	}
	st, err := api.UserStats(ctx)
	if err != nil {
		return err
	}
	return a.print(st)
}

func (a *App) globalStats(ctx context.Context, args []string) error {
	api, err := a.client()
	if err != nil {
		return err
	}
	st, err := api.GlobalStats(ctx)
	if err != nil {
		return err
	}
	return a.print(st)
}

func (a *App) export(ctx context.Context, args []string) error {
	fs := newFlagSet("export")
	dir := fs.String("o", "", "download the statement into this directory")
	if err := parse(fs, args); err != nil {
		return err
	}
	api, err := a.client()
	if err != nil {
		return err
	}
	res, err := api.ExportStatement(ctx)
	if err != nil {
		return err
	}
	if *dir == "" {
		return a.print(res)
	}

	body, err := a.download(ctx, res.Url)
	if err != nil {
		return fmt.Errorf("download statement: %w", err)
	}
	file, err := filex.WriteFile(*dir, path.Base(res.Key), body)
	if err != nil {
		return err
	}
	return a.print(map[string]string{"key": res.Key, "url": res.Url, "file": file})
}
