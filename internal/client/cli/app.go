package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/dmitrijs2005/satstream/internal/client/client"
	"github.com/dmitrijs2005/satstream/internal/client/config"
	"github.com/dmitrijs2005/satstream/internal/netx"
	pb "github.com/dmitrijs2005/satstream/internal/proto"
	"golang.org/x/term"
)

// isTerminal is a test seam for term.IsTerminal.
var isTerminal = term.IsTerminal

// apiClient is the server surface the commands need. *client.GRPCClient
// satisfies it.
type apiClient interface {
	Ping(ctx context.Context) error
	CreateStream(ctx context.Context, recipient string, satsPerSec, durationSecs, totalLocked uint64) (uint64, error)
	ClaimStream(ctx context.Context, id uint64) (uint64, error)
	TopUpStream(ctx context.Context, id, amount uint64) error
	CancelStream(ctx context.Context, id uint64) (*pb.CancelStreamResponse, error)
	ReclaimUnclaimed(ctx context.Context, id uint64) (uint64, error)
	GetStream(ctx context.Context, id uint64) (*pb.Stream, error)
	ListStreams(ctx context.Context) ([]*pb.Stream, error)
	CreateTemplate(ctx context.Context, name, description string, durationSecs, satsPerSec uint64) (uint64, error)
	CreateStreamFromTemplate(ctx context.Context, templateID uint64, recipient string, totalLocked uint64) (uint64, error)
	ListTemplates(ctx context.Context) ([]*pb.StreamTemplate, error)
	UserStats(ctx context.Context) (*pb.UserStats, error)
	GlobalStats(ctx context.Context) (*pb.GlobalStats, error)
	ExportStatement(ctx context.Context) (*pb.ExportStatementResponse, error)
	Close() error
}

// ErrUsage reports a malformed command line.
var ErrUsage = errors.New("usage")

type App struct {
	config *config.Config
	out    io.Writer
	indent bool

	// dial opens the server connection on first use; the token command
	// never needs one.
	dial func() (apiClient, error)
	api  apiClient

	download func(ctx context.Context, url string) ([]byte, error)
}

func NewApp(c *config.Config) *App {
	return &App{
		config: c,
		out:    os.Stdout,
		indent: isTerminal(int(os.Stdout.Fd())),
		dial: func() (apiClient, error) {
			return client.NewStreamClient(c.ServerEndpointAddr, c.AccessToken, c.RequestTimeout)
		},
		download: func(ctx context.Context, url string) ([]byte, error) {
			return netx.DownloadFromPresignedURL(ctx, nil, url)
		},
	}
}

func (a *App) client() (apiClient, error) {
	if a.api == nil {
		api, err := a.dial()
		if err != nil {
			return nil, err
		}
		a.api = api
	}
	return a.api, nil
}

// Close releases the server connection, if one was opened.
func (a *App) Close() error {
	if a.api == nil {
		return nil
	}
	return a.api.Close()
}

func (a *App) print(v any) error {
	enc := json.NewEncoder(a.out)
	if a.indent {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(v)
}

type command struct {
	name  string
	usage string
	run   func(a *App, ctx context.Context, args []string) error
}

var commands = map[string]command{}

func register(c command) { commands[c.name] = c }

// Usage writes the list of commands to w.
func Usage(w io.Writer) {
	fmt.Fprintln(w, "usage: satstream-cli [-a addr] [-t token] [-r seconds] [-s secret] [-c file] <command> [flags]")
	fmt.Fprintln(w, "commands:")
	names := make([]string, 0, len(commands))
	for n := range commands {
		names = append(names, n)
	}
	sort.Strings(names)
	for _, n := range names {
		fmt.Fprintf(w, "  %-16s %s\n", n, commands[n].usage)
	}
}

// Run executes the subcommand named by args[0].
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: missing command", ErrUsage)
	}
	cmd, ok := commands[args[0]]
	if !ok {
		return fmt.Errorf("%w: unknown command %q", ErrUsage, args[0])
	}
	return cmd.run(a, ctx, args[1:])
}
